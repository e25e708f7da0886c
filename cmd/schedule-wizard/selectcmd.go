package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/LilChaewon/Schedule-Wizard/internal/selection"
	"github.com/LilChaewon/Schedule-Wizard/internal/timetable"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "시간표에 담은 과목 관리",
}

var selectAddCmd = &cobra.Command{
	Use:   "add <course-id>",
	Short: "과목을 시간표에 추가",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := loadCatalog()
		crs, ok := cat.ByID(args[0])
		if !ok {
			return fmt.Errorf("과목을 찾을 수 없습니다: %s", args[0])
		}

		store := selection.NewFileStore()
		ids := selection.Add(loadSelection(store), crs.ID)
		saveSelection(store, ids)
		fmt.Printf("추가됨: %s (%s)\n", crs.CourseName, crs.ID)
		return nil
	},
}

var selectRemoveCmd = &cobra.Command{
	Use:   "remove <course-id>",
	Short: "과목을 시간표에서 제거",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store := selection.NewFileStore()
		ids := selection.Remove(loadSelection(store), args[0])
		saveSelection(store, ids)
		fmt.Printf("제거됨: %s\n", args[0])
		return nil
	},
}

var selectListCmd = &cobra.Command{
	Use:   "list",
	Short: "선택한 과목 나열",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := loadCatalog()
		ids := loadSelection(selection.NewFileStore())
		if len(ids) == 0 {
			fmt.Println("선택된 과목이 없습니다.")
			return nil
		}
		total := 0
		for _, id := range ids {
			crs, ok := cat.ByID(id)
			if !ok {
				fmt.Printf("%s (이번 학기 개설 없음)\n", id)
				continue
			}
			total += crs.Credits
			fmt.Printf("%s %s (%s분반) %d학점  %s\n",
				crs.ID, crs.CourseName, crs.SectionNumber, crs.Credits,
				timetable.FormatTimes(cat.SlotsFor(crs.ID)))
		}
		fmt.Printf("총 %d학점\n", total)
		return nil
	},
}

var selectClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "선택 전체 비우기",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		saveSelection(selection.NewFileStore(), []string{})
		fmt.Println("선택을 비웠습니다.")
		return nil
	},
}

// saveSelection writes the selection; write errors are logged and
// swallowed so a read-only environment never breaks the command.
func saveSelection(store selection.Store, ids []string) {
	if err := store.Save(ids); err != nil {
		logrus.WithError(err).Warn("could not persist selection")
	}
}

func init() {
	selectCmd.AddCommand(selectAddCmd, selectRemoveCmd, selectListCmd, selectClearCmd)
	rootCmd.AddCommand(selectCmd)
}
