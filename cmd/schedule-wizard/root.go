package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LilChaewon/Schedule-Wizard/internal/catalog"
	"github.com/LilChaewon/Schedule-Wizard/internal/course"
	"github.com/LilChaewon/Schedule-Wizard/internal/selection"
)

const envCatalogURLKey = "SW_CATALOG_URL"

var (
	flagTerm    string
	flagYear    int
	flagURL     string
	flagFile    string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "schedule-wizard",
	Short: "대학 강의시간표 검색 및 시간표 작성 도구",
	Long: `schedule-wizard loads a semester's course catalog from the
university's timetable export, searches and filters it, and assembles
a personal weekly schedule.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTerm, "term", "2025-2", "semester label, e.g. 2025-2")
	rootCmd.PersistentFlags().IntVar(&flagYear, "year", 2025, "academic year")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "catalog CSV URL (default $"+envCatalogURLKey+")")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "catalog CSV file path (overrides --url)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
}

// loadCatalog acquires the catalog per the shared flags. It never
// fails: with no reachable source the built-in sample is used.
func loadCatalog() *course.Catalog {
	url := flagURL
	if url == "" {
		url = os.Getenv(envCatalogURLKey)
	}
	return catalog.Load(catalog.LoadOptions{
		URL:      url,
		File:     flagFile,
		Semester: flagTerm,
		Year:     flagYear,
	})
}

// loadSelection reads the persisted selection; read problems degrade
// to an empty selection.
func loadSelection(store selection.Store) []string {
	ids, err := store.Load()
	if err != nil {
		logrus.WithError(err).Warn("could not read saved selection")
		return []string{}
	}
	return ids
}
