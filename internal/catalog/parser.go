// Package catalog turns the registrar's comma-delimited timetable
// export (강의시간표) into Course and TimeSlot collections.
package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/LilChaewon/Schedule-Wizard/internal/course"
	"github.com/LilChaewon/Schedule-Wizard/internal/timetable"
)

// The export is positional: 19 logical columns per section row.
const minColumns = 12

const (
	colGradeLevel = 0
	colCourseName = 1
	colCourseCode = 2
	colCredits    = 6
	colHours      = 7
	colProfessor  = 8
	colSection    = 10
	colMaxStud    = 11
	colTimeRoom   = 12
	colNotes      = 18
)

// Sections with no assigned professor are listed under this sentinel.
const professorUnassigned = "미배정"

// carried is the accumulator for the carry-over fold: rows after the
// first section of a subject leave grade/name/code blank and inherit
// them from the most recent row that supplied all three.
type carried struct {
	courseCode string
	courseName string
	credits    int
	department string
	gradeLevel int
}

// Parse reconstructs courses and their meeting times from the raw
// export text. Header and decorative lines are skipped, rows with
// fewer than minColumns columns are dropped, and a row whose time
// token cannot be decoded still yields a course with no slots.
func Parse(raw, semester string, year int) *course.Catalog {
	raw = strings.TrimPrefix(raw, "\uFEFF")

	courses := []course.Course{}
	slots := []course.TimeSlot{}

	var current *carried
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || isHeaderLine(line) {
			continue
		}

		cols := splitColumns(line)
		if len(cols) < minColumns {
			continue
		}

		grade := cols[colGradeLevel]
		name := cols[colCourseName]
		code := cols[colCourseCode]

		// A row carrying all three identifying columns opens a new
		// subject context.
		if grade != "" && name != "" && code != "" {
			current = &carried{
				courseCode: code,
				courseName: name,
				credits:    parseInt(col(cols, colCredits)),
				department: InferDepartment(code),
				gradeLevel: ParseGradeLevel(grade),
			}
		}

		section := col(cols, colSection)
		timeRoom := col(cols, colTimeRoom)
		if current == nil || section == "" || timeRoom == "" {
			continue
		}

		professor := col(cols, colProfessor)
		if professor == "" {
			professor = professorUnassigned
		}

		id := course.CourseID(current.courseCode, section, semester, year)

		crs := course.Course{
			ID:            id,
			CourseCode:    current.courseCode,
			CourseName:    current.courseName,
			Professor:     professor,
			Credits:       current.credits,
			Department:    current.department,
			GradeLevel:    current.gradeLevel,
			MaxStudents:   parseInt(col(cols, colMaxStud)),
			Semester:      semester,
			Year:          year,
			SectionNumber: section,
		}
		if notes := col(cols, colNotes); notes != "" {
			crs.Notes = &notes
		}

		courses = append(courses, crs)
		slots = append(slots, timetable.ParseTimes(timeRoom, id)...)
	}

	logrus.WithFields(logrus.Fields{
		"courses": len(courses),
		"slots":   len(slots),
	}).Debug("catalog parsed")

	return course.NewCatalog(semester, year, courses, slots)
}

// isHeaderLine recognizes title banners, the column header row and
// decorative all-comma separator lines.
func isHeaderLine(line string) bool {
	if strings.Contains(line, "학년,교과목명,한글코드") ||
		strings.Contains(line, "강 의 시 간 표") ||
		strings.Contains(line, "학년도") {
		return true
	}
	trimmed := strings.TrimPrefix(line, "\uFEFF")
	return strings.Trim(trimmed, ", \t") == ""
}

// splitColumns splits a row on commas with a toggling in-quotes flag.
// The export does not escape quote characters, so quotes are consumed
// rather than kept, matching how the registrar's own viewer reads it.
func splitColumns(line string) []string {
	res := []string{}
	var cur strings.Builder
	inQuotes := false

	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			res = append(res, strings.TrimSpace(cur.String()))
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	res = append(res, strings.TrimSpace(cur.String()))
	return res
}

func col(cols []string, i int) string {
	if i >= len(cols) {
		return ""
	}
	return strings.TrimSpace(cols[i])
}

// parseInt reads a non-negative integer column; missing or non-numeric
// values default to 0.
func parseInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

var gradeLevelRe = regexp.MustCompile(`(\d+)학년`)

// ParseGradeLevel maps "전학년" to 0 and "N학년" to N. Anything else
// defaults to 0 (all grades).
func ParseGradeLevel(s string) int {
	s = strings.TrimSpace(s)
	if s == "" || s == "전학년" {
		return 0
	}
	m := gradeLevelRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}
