// Package schedule projects a selection of courses onto the fixed
// weekly period grid and reports conflicts in the selection.
package schedule

import (
	"fmt"

	"github.com/LilChaewon/Schedule-Wizard/internal/course"
	"github.com/LilChaewon/Schedule-Wizard/internal/timetable"
)

// Period is one fixed 50-minute teaching slot (교시).
type Period struct {
	Number int
	Start  string
	End    string
}

// The standard daily schedule: periods 1-9 back-to-back on the hour
// from 09:00, period 10 after the evening break at 18:00. Kept as a
// literal table rather than derived arithmetically because the real
// timetable has that break.
var Periods = []Period{
	{1, "09:00", "09:50"},
	{2, "10:00", "10:50"},
	{3, "11:00", "11:50"},
	{4, "12:00", "12:50"},
	{5, "13:00", "13:50"},
	{6, "14:00", "14:50"},
	{7, "15:00", "15:50"},
	{8, "16:00", "16:50"},
	{9, "17:00", "17:50"},
	{10, "18:00", "18:50"},
}

// Days covered by the grid, 월 through 토.
var Days = []int{1, 2, 3, 4, 5, 6}

// Cell is one occupied (day, period) position.
type Cell struct {
	Course course.Course
	Slot   course.TimeSlot
}

// Grid is the weekly calendar: day → period → occupying cell. Slots
// whose start time is not a period boundary are collected in Unplaced
// instead of being dropped invisibly.
type Grid struct {
	Cells    map[int]map[int]Cell
	Unplaced []course.TimeSlot
}

// At returns the cell at (day, period), if occupied.
func (g *Grid) At(day, period int) (Cell, bool) {
	c, ok := g.Cells[day][period]
	return c, ok
}

// PeriodForStart maps a start time to its period number by exact
// match against the fixed table; 0 when the time is off-grid.
func PeriodForStart(start string) int {
	for _, p := range Periods {
		if p.Start == start {
			return p.Number
		}
	}
	return 0
}

// BuildGrid places every slot of the selected courses onto the grid.
// Slots owned by courses outside the selection (or missing from the
// catalog) are skipped. When two selected slots land on the same
// cell the later one wins the cell, deterministically by slot order,
// and the collision is reported as a conflict. Selecting two
// sections of the same subject is reported as a warning.
func BuildGrid(cat *course.Catalog, selected []string) (*Grid, []course.ScheduleConflict) {
	selectedSet := make(map[string]bool, len(selected))
	for _, id := range selected {
		selectedSet[id] = true
	}

	grid := &Grid{Cells: map[int]map[int]Cell{}}
	for _, d := range Days {
		grid.Cells[d] = map[int]Cell{}
	}

	conflicts := duplicateCourses(cat, selected)

	for _, slot := range cat.Slots {
		if !selectedSet[slot.CourseID] {
			continue
		}
		crs, ok := cat.ByID(slot.CourseID)
		if !ok {
			continue
		}

		period := PeriodForStart(slot.StartTime)
		if period == 0 {
			grid.Unplaced = append(grid.Unplaced, slot)
			continue
		}

		if prev, occupied := grid.Cells[slot.DayOfWeek][period]; occupied {
			s := slot
			conflicts = append(conflicts, course.ScheduleConflict{
				Type:               course.ConflictTimeOverlap,
				Severity:           course.SeverityError,
				ConflictingCourses: []course.Course{prev.Course, crs},
				TimeSlot:           &s,
				Message: fmt.Sprintf("%s과(와) %s이(가) %s %d교시에 겹칩니다",
					prev.Course.CourseName, crs.CourseName,
					timetable.DayGlyph(slot.DayOfWeek), period),
			})
		}
		grid.Cells[slot.DayOfWeek][period] = Cell{Course: crs, Slot: slot}
	}

	return grid, conflicts
}

// duplicateCourses warns when the selection contains more than one
// section of the same subject code.
func duplicateCourses(cat *course.Catalog, selected []string) []course.ScheduleConflict {
	conflicts := []course.ScheduleConflict{}
	firstByCode := map[string]course.Course{}

	for _, id := range selected {
		crs, ok := cat.ByID(id)
		if !ok {
			continue
		}
		if prev, seen := firstByCode[crs.CourseCode]; seen {
			conflicts = append(conflicts, course.ScheduleConflict{
				Type:               course.ConflictDuplicateCourse,
				Severity:           course.SeverityWarning,
				ConflictingCourses: []course.Course{prev, crs},
				Message: fmt.Sprintf("%s 과목이 두 번 이상 선택되었습니다 (%s, %s분반)",
					crs.CourseName, prev.SectionNumber, crs.SectionNumber),
			})
			continue
		}
		firstByCode[crs.CourseCode] = crs
	}
	return conflicts
}
