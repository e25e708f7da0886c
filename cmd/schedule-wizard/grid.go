package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LilChaewon/Schedule-Wizard/internal/schedule"
	"github.com/LilChaewon/Schedule-Wizard/internal/selection"
	"github.com/LilChaewon/Schedule-Wizard/internal/timetable"
)

const cellWidth = 12

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "선택한 과목의 주간 시간표 출력",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := loadCatalog()
		selected := loadSelection(selection.NewFileStore())
		if len(selected) == 0 {
			fmt.Println("선택된 과목이 없습니다. `schedule-wizard select add <id>`로 추가하세요.")
			return nil
		}

		grid, conflicts := schedule.BuildGrid(cat, selected)
		renderGrid(grid)

		for _, c := range conflicts {
			fmt.Printf("[%s] %s\n", c.Severity, c.Message)
		}
		for _, slot := range grid.Unplaced {
			if crs, ok := cat.ByID(slot.CourseID); ok {
				fmt.Printf("시간표 밖 수업: %s %s\n", crs.CourseName, timetable.FormatTime(slot))
			}
		}
		return nil
	},
}

func renderGrid(grid *schedule.Grid) {
	var b strings.Builder

	b.WriteString(pad("교시", cellWidth))
	for _, day := range schedule.Days {
		b.WriteString(pad(timetable.DayGlyph(day), cellWidth))
	}
	b.WriteString("\n")

	for _, p := range schedule.Periods {
		b.WriteString(pad(fmt.Sprintf("%d (%s)", p.Number, p.Start), cellWidth))
		for _, day := range schedule.Days {
			cell, ok := grid.At(day, p.Number)
			if !ok {
				b.WriteString(pad("", cellWidth))
				continue
			}
			b.WriteString(pad(truncate(cell.Course.CourseName, cellWidth-2), cellWidth))
		}
		b.WriteString("\n")
	}
	fmt.Print(b.String())
}

func pad(s string, width int) string {
	// Hangul renders double-width in terminals; count it as such so
	// columns stay aligned.
	w := displayWidth(s)
	if w >= width {
		return s + " "
	}
	return s + strings.Repeat(" ", width-w)
}

func truncate(s string, width int) string {
	out := []rune{}
	w := 0
	for _, r := range s {
		rw := 1
		if r > 0x2E80 {
			rw = 2
		}
		if w+rw > width {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out)
}

func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r > 0x2E80 {
			w += 2
		} else {
			w++
		}
	}
	return w
}

func init() {
	rootCmd.AddCommand(gridCmd)
}
