package catalog

import (
	"io"
	"net/http"
	"os"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/transform"

	"github.com/LilChaewon/Schedule-Wizard/internal/course"
)

const (
	fetchTimeout = 10 * time.Second
	// Caps the response body so a misbehaving source cannot OOM us.
	maxCatalogSize = 20 * 1024 * 1024
)

// LoadOptions selects where the raw export comes from. File wins over
// URL; with neither set the sample catalog is returned directly.
type LoadOptions struct {
	URL      string
	File     string
	Semester string
	Year     int
}

// Load acquires and parses the catalog for a term. Every failure path
// (fetch error, non-OK status, unreadable file, empty parse) falls
// back to the built-in sample so callers always receive a usable,
// non-empty catalog.
func Load(opts LoadOptions) *course.Catalog {
	raw, err := readRaw(opts)
	if err != nil {
		logrus.WithError(err).Warn("catalog source unavailable, using sample data")
		return Sample(opts.Semester, opts.Year)
	}
	if raw == "" {
		return Sample(opts.Semester, opts.Year)
	}

	cat := Parse(decodeCharset(raw), opts.Semester, opts.Year)
	if len(cat.Courses) == 0 {
		logrus.Warn("no courses found in catalog source, using sample data")
		return Sample(opts.Semester, opts.Year)
	}
	return cat
}

func readRaw(opts LoadOptions) (string, error) {
	switch {
	case opts.File != "":
		b, err := os.ReadFile(opts.File)
		if err != nil {
			return "", errors.WithStack(err)
		}
		return string(b), nil
	case opts.URL != "":
		return fetch(opts.URL)
	default:
		return "", nil
	}
}

func fetch(url string) (string, error) {
	client := &http.Client{Timeout: fetchTimeout}
	resp, err := client.Get(url)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxCatalogSize))
	if err != nil {
		return "", errors.WithStack(err)
	}
	return string(b), nil
}

// decodeCharset transcodes CP949/EUC-KR exports to UTF-8. Exports
// saved from the registrar's own tooling are usually EUC-KR; ones
// re-saved by hand are UTF-8, often with a BOM.
func decodeCharset(raw string) string {
	if utf8.ValidString(raw) {
		return raw
	}
	decoded, _, err := transform.String(korean.EUCKR.NewDecoder(), raw)
	if err != nil {
		logrus.WithError(err).Warn("EUC-KR decode failed, parsing as-is")
		return raw
	}
	return decoded
}
