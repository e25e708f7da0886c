package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/LilChaewon/Schedule-Wizard/internal/catalog"
	"github.com/LilChaewon/Schedule-Wizard/internal/course"
)

func testCatalog() *course.Catalog {
	return catalog.Sample("2025-2", 2025)
}

func id(cat *course.Catalog, code string) string {
	for _, crs := range cat.Courses {
		if crs.CourseCode == code {
			return crs.ID
		}
	}
	return ""
}

func Test_PeriodForStart(t *testing.T) {
	tests := []struct {
		start string
		want  int
	}{
		{"09:00", 1},
		{"12:00", 4},
		{"17:00", 9},
		{"18:00", 10},
		{"09:30", 0},
		{"08:00", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			if got := PeriodForStart(tt.start); got != tt.want {
				t.Errorf("PeriodForStart(%q) = %d, want %d", tt.start, got, tt.want)
			}
		})
	}
}

func Test_BuildGrid_placement(t *testing.T) {
	cat := testCatalog()
	grid, conflicts := BuildGrid(cat, []string{id(cat, "CS201")})

	if len(conflicts) != 0 {
		t.Fatalf("unexpected conflicts: %v", conflicts)
	}

	// 화목14:00-15:50 -> period 6 on days 2 and 4.
	for _, day := range []int{2, 4} {
		cell, ok := grid.At(day, 6)
		if !ok {
			t.Fatalf("expected a cell at day %d period 6", day)
		}
		if cell.Course.CourseCode != "CS201" {
			t.Errorf("cell course = %s, want CS201", cell.Course.CourseCode)
		}
	}

	// Unselected courses' slots must not be placed.
	if _, ok := grid.At(1, 1); ok {
		t.Error("unselected course was placed on the grid")
	}
	if len(grid.Unplaced) != 0 {
		t.Errorf("unplaced = %v, want none", grid.Unplaced)
	}
}

func Test_BuildGrid_offGridStartIsNotPlaced(t *testing.T) {
	crs := course.Course{ID: "C-0001-2025-2-2025", CourseCode: "C1", CourseName: "새벽수업"}
	slot := course.TimeSlot{
		ID: "C-0001-2025-2-2025-1-0", CourseID: crs.ID,
		DayOfWeek: 1, StartTime: "08:30", EndTime: "09:20",
	}
	cat := course.NewCatalog("2025-2", 2025, []course.Course{crs}, []course.TimeSlot{slot})

	grid, conflicts := BuildGrid(cat, []string{crs.ID})

	if len(conflicts) != 0 {
		t.Fatalf("unexpected conflicts: %v", conflicts)
	}
	for _, p := range Periods {
		if _, ok := grid.At(1, p.Number); ok {
			t.Fatalf("off-grid slot was placed at period %d", p.Number)
		}
	}
	if len(grid.Unplaced) != 1 || grid.Unplaced[0].ID != slot.ID {
		t.Errorf("unplaced = %v, want the off-grid slot", grid.Unplaced)
	}
}

// 교필127 and MATH101 both start 월 09:00: the collision is reported
// and the later-processed slot wins the cell.
func Test_BuildGrid_collision(t *testing.T) {
	cat := testCatalog()
	grid, conflicts := BuildGrid(cat, []string{id(cat, "교필127"), id(cat, "MATH101")})

	var overlap *course.ScheduleConflict
	for i := range conflicts {
		if conflicts[i].Type == course.ConflictTimeOverlap {
			overlap = &conflicts[i]
		}
	}
	if overlap == nil {
		t.Fatal("expected a TIME_OVERLAP conflict")
	}
	if overlap.Severity != course.SeverityError {
		t.Errorf("severity = %s, want ERROR", overlap.Severity)
	}
	if len(overlap.ConflictingCourses) != 2 {
		t.Fatalf("conflicting courses = %d, want 2", len(overlap.ConflictingCourses))
	}

	cell, ok := grid.At(1, 1)
	if !ok {
		t.Fatal("expected an occupied cell at 월 1교시")
	}
	if cell.Course.CourseCode != "MATH101" {
		t.Errorf("cell course = %s, want MATH101 (last write wins)", cell.Course.CourseCode)
	}
}

func Test_BuildGrid_duplicateCourseWarning(t *testing.T) {
	a := course.Course{ID: "CS201-0001-2025-2-2025", CourseCode: "CS201", CourseName: "자료구조", SectionNumber: "0001"}
	b := course.Course{ID: "CS201-0002-2025-2-2025", CourseCode: "CS201", CourseName: "자료구조", SectionNumber: "0002"}
	cat := course.NewCatalog("2025-2", 2025, []course.Course{a, b}, nil)

	_, conflicts := BuildGrid(cat, []string{a.ID, b.ID})

	if len(conflicts) != 1 {
		t.Fatalf("conflicts = %d, want 1", len(conflicts))
	}
	if conflicts[0].Type != course.ConflictDuplicateCourse {
		t.Errorf("type = %s, want DUPLICATE_COURSE", conflicts[0].Type)
	}
	if conflicts[0].Severity != course.SeverityWarning {
		t.Errorf("severity = %s, want WARNING", conflicts[0].Severity)
	}
}

func Test_ExportICS(t *testing.T) {
	cat := testCatalog()
	start := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC) // a Monday

	body, err := ExportICS(cat, []string{id(cat, "MATH101")}, start, 16)
	if err != nil {
		t.Fatalf("ExportICS() error = %v", err)
	}

	for _, want := range []string{
		"BEGIN:VCALENDAR",
		"SUMMARY:미적분학1",
		"RRULE:FREQ=WEEKLY;COUNT=16",
		"END:VCALENDAR",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("ics output missing %q", want)
		}
	}

	// One VEVENT per meeting day.
	if got := strings.Count(body, "BEGIN:VEVENT"); got != 3 {
		t.Errorf("VEVENT count = %d, want 3", got)
	}
}
