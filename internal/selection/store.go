// Package selection persists the user's chosen course identifiers as
// a single named key-value entry.
package selection

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// The entry name the selection lives under.
const selectionKey = "user-schedule"

// Store reads and writes the selected course identifier set. A
// missing or malformed entry loads as an empty selection.
type Store interface {
	Load() ([]string, error)
	Save(courseIDs []string) error
}

// FileStore keeps the entry as a JSON array in <dir>/<key>.json.
type FileStore struct {
	Dir string
}

// NewFileStore places the store under the user config directory. When
// no config directory is resolvable a NoopStore is returned, so the
// absence of a persistence layer is a no-op rather than a failure.
func NewFileStore() Store {
	base, err := os.UserConfigDir()
	if err != nil {
		logrus.WithError(err).Debug("no user config dir, selection will not persist")
		return NoopStore{}
	}
	return &FileStore{Dir: filepath.Join(base, "schedule-wizard")}
}

func (s *FileStore) path() string {
	return filepath.Join(s.Dir, selectionKey+".json")
}

func (s *FileStore) Load() ([]string, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return []string{}, errors.WithStack(err)
	}

	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		logrus.WithError(err).Warn("stored selection is malformed, starting empty")
		return []string{}, nil
	}
	return ids, nil
}

func (s *FileStore) Save(courseIDs []string) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return errors.WithStack(err)
	}
	b, err := json.Marshal(courseIDs)
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.WriteFile(s.path(), b, 0o644))
}

// NoopStore is used when no persistence layer exists in the current
// execution context.
type NoopStore struct{}

func (NoopStore) Load() ([]string, error) { return []string{}, nil }
func (NoopStore) Save(ids []string) error { return nil }

// Add appends id to ids unless already present.
func Add(ids []string, id string) []string {
	for _, v := range ids {
		if v == id {
			return ids
		}
	}
	return append(ids, id)
}

// Remove deletes id from ids, preserving order.
func Remove(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
