package catalog

import (
	"github.com/LilChaewon/Schedule-Wizard/internal/course"
	"github.com/LilChaewon/Schedule-Wizard/internal/timetable"
)

// Five illustrative sections spanning distinct departments and time
// patterns. Used whenever no real export can be loaded so the rest of
// the system always sees a non-empty catalog.
var sampleRows = []struct {
	code      string
	name      string
	professor string
	credits   int
	grade     int
	max       int
	section   string
	timeRoom  string
}{
	{"교필127", "성서와인간이해", "김진옥", 2, 0, 50, "0001", "월09:00-10:50 (Y2508)"},
	{"MATH101", "미적분학1", "박수학", 3, 1, 40, "0001", "월수금09:00-09:50 (수학관201)"},
	{"CS201", "자료구조", "이컴퓨터", 3, 2, 35, "0001", "화목14:00-15:50 (공학관301)"},
	{"CS301", "데이터베이스", "최데이터", 3, 3, 30, "0001", "월수16:00-17:50 (공학관302)"},
	{"ENG101", "영어회화", "John Smith", 2, 1, 25, "0001", "화11:00-12:50 (인문관105)"},
}

// Sample builds the fixed in-memory fallback catalog for a term.
func Sample(semester string, year int) *course.Catalog {
	courses := make([]course.Course, 0, len(sampleRows))
	slots := []course.TimeSlot{}

	for _, r := range sampleRows {
		id := course.CourseID(r.code, r.section, semester, year)
		courses = append(courses, course.Course{
			ID:            id,
			CourseCode:    r.code,
			CourseName:    r.name,
			Professor:     r.professor,
			Credits:       r.credits,
			Department:    InferDepartment(r.code),
			GradeLevel:    r.grade,
			MaxStudents:   r.max,
			Semester:      semester,
			Year:          year,
			SectionNumber: r.section,
		})
		slots = append(slots, timetable.ParseTimes(r.timeRoom, id)...)
	}

	return course.NewCatalog(semester, year, courses, slots)
}
