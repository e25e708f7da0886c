package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/LilChaewon/Schedule-Wizard/internal/catalog"
	"github.com/LilChaewon/Schedule-Wizard/internal/dbexport"
	"github.com/LilChaewon/Schedule-Wizard/internal/schedule"
	"github.com/LilChaewon/Schedule-Wizard/internal/selection"
)

var (
	flagCSVOut string
	flagICSOut string
	flagStart  string
	flagWeeks  int
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "카탈로그 및 시간표 내보내기",
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv",
	Short: "정규화된 CSV로 카탈로그 내보내기",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Create(flagCSVOut)
		if err != nil {
			return errors.WithStack(err)
		}
		defer f.Close()

		if err := catalog.WriteCSV(loadCatalog(), f); err != nil {
			return err
		}
		fmt.Printf("저장됨: %s\n", flagCSVOut)
		return nil
	},
}

var exportICSCmd = &cobra.Command{
	Use:   "ics",
	Short: "선택한 시간표를 iCalendar로 내보내기",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := time.Parse("2006-01-02", flagStart)
		if err != nil {
			return errors.Wrap(err, "invalid --start date")
		}

		cat := loadCatalog()
		selected := loadSelection(selection.NewFileStore())
		if len(selected) == 0 {
			return errors.New("선택된 과목이 없습니다")
		}

		body, err := schedule.ExportICS(cat, selected, start, flagWeeks)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagICSOut, []byte(body), 0o644); err != nil {
			return errors.WithStack(err)
		}
		fmt.Printf("저장됨: %s\n", flagICSOut)
		return nil
	},
}

var exportDBCmd = &cobra.Command{
	Use:   "db",
	Short: "카탈로그를 Postgres에 적재",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := dbexport.Open()
		if err != nil {
			return err
		}
		defer db.Close()

		if err := dbexport.Migrate(db); err != nil {
			return err
		}
		return dbexport.Export(db, loadCatalog())
	},
}

func init() {
	exportCSVCmd.Flags().StringVar(&flagCSVOut, "out", "catalog.csv", "output file")
	exportICSCmd.Flags().StringVar(&flagICSOut, "out", "schedule.ics", "output file")
	exportICSCmd.Flags().StringVar(&flagStart, "start", "", "semester start date (YYYY-MM-DD)")
	exportICSCmd.Flags().IntVar(&flagWeeks, "weeks", 16, "number of teaching weeks")
	exportICSCmd.MarkFlagRequired("start")

	exportCmd.AddCommand(exportCSVCmd, exportICSCmd, exportDBCmd)
	rootCmd.AddCommand(exportCmd)
}
