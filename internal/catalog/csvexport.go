package catalog

import (
	"io"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"

	"github.com/LilChaewon/Schedule-Wizard/internal/course"
	"github.com/LilChaewon/Schedule-Wizard/internal/timetable"
)

// exportRow is the normalized, one-row-per-section form of the
// catalog. Unlike the registrar export it repeats every field on
// every row and keeps the meeting times in the compact notation.
type exportRow struct {
	ID            string `csv:"id"`
	CourseCode    string `csv:"과목코드"`
	CourseName    string `csv:"교과목명"`
	Professor     string `csv:"담당교수"`
	Credits       int    `csv:"학점"`
	Department    string `csv:"학과"`
	GradeLevel    int    `csv:"학년"`
	MaxStudents   int    `csv:"제한인원"`
	Semester      string `csv:"학기"`
	Year          int    `csv:"연도"`
	SectionNumber string `csv:"강좌번호"`
	Times         string `csv:"시간"`
	Notes         string `csv:"비고"`
}

// WriteCSV writes the catalog as a clean UTF-8 CSV with a header row.
func WriteCSV(cat *course.Catalog, w io.Writer) error {
	rows := make([]*exportRow, 0, len(cat.Courses))
	for _, crs := range cat.Courses {
		row := &exportRow{
			ID:            crs.ID,
			CourseCode:    crs.CourseCode,
			CourseName:    crs.CourseName,
			Professor:     crs.Professor,
			Credits:       crs.Credits,
			Department:    crs.Department,
			GradeLevel:    crs.GradeLevel,
			MaxStudents:   crs.MaxStudents,
			Semester:      crs.Semester,
			Year:          crs.Year,
			SectionNumber: crs.SectionNumber,
			Times:         timetable.FormatTimes(cat.SlotsFor(crs.ID)),
		}
		if crs.Notes != nil {
			row.Notes = *crs.Notes
		}
		rows = append(rows, row)
	}

	if err := gocsv.Marshal(rows, w); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
