package catalog

import (
	"reflect"
	"strings"
	"testing"

	"github.com/LilChaewon/Schedule-Wizard/internal/course"
)

const testSemester = "2025-2"

const testYear = 2025

func rawExport(lines ...string) string {
	return strings.Join(lines, "\n")
}

func Test_Parse_carryOver(t *testing.T) {
	raw := rawExport(
		"\uFEFF2025학년도 2학기 강 의 시 간 표",
		"학년,교과목명,한글코드,,,,학점,시간,담당교수,,강좌번호,제한인원,시간(강의실),,,,,,비고",
		",,,,,,,,,,,,,,,,,,",
		"1학년,미적분학1,MATH101,,,,3,3,박수학,,0001,40,월수금09:00-09:50 (수학관201),,,,,,",
		",,,,,,,,이해석,,0002,40,화09:00-10:50 (수학관202),,,,,,야간",
	)

	cat := Parse(raw, testSemester, testYear)

	if len(cat.Courses) != 2 {
		t.Fatalf("Parse() returned %d courses, want 2", len(cat.Courses))
	}

	first, second := cat.Courses[0], cat.Courses[1]

	if first.ID == second.ID {
		t.Errorf("sections must have distinct identifiers, both %q", first.ID)
	}
	if first.SectionNumber != "0001" || second.SectionNumber != "0002" {
		t.Errorf("section numbers = %q, %q, want 0001, 0002", first.SectionNumber, second.SectionNumber)
	}

	// The second row inherits grade/name/code/credits/department.
	if second.CourseName != first.CourseName ||
		second.CourseCode != first.CourseCode ||
		second.Department != first.Department ||
		second.GradeLevel != first.GradeLevel ||
		second.Credits != first.Credits {
		t.Errorf("carry-over row did not inherit course context: %+v vs %+v", first, second)
	}

	if first.Department != "수학과" {
		t.Errorf("department = %q, want 수학과", first.Department)
	}
	if second.Professor != "이해석" {
		t.Errorf("professor = %q, want 이해석", second.Professor)
	}
	if second.Notes == nil || *second.Notes != "야간" {
		t.Errorf("notes = %v, want 야간", second.Notes)
	}

	wantID := course.CourseID("MATH101", "0001", testSemester, testYear)
	if first.ID != wantID {
		t.Errorf("id = %q, want %q", first.ID, wantID)
	}

	if got := len(cat.SlotsFor(first.ID)); got != 3 {
		t.Errorf("first section has %d slots, want 3", got)
	}
	if got := len(cat.SlotsFor(second.ID)); got != 1 {
		t.Errorf("second section has %d slots, want 1", got)
	}
}

func Test_Parse_skipsShortLines(t *testing.T) {
	raw := rawExport(
		"짧은,행",
		"1학년,미적분학1,MATH101,,,,3,3,박수학,,0001,40,월09:00-09:50 (수학관201),,,,,,",
	)

	cat := Parse(raw, testSemester, testYear)
	if len(cat.Courses) != 1 {
		t.Fatalf("Parse() returned %d courses, want 1", len(cat.Courses))
	}
}

func Test_Parse_emptyProfessorIsUnassigned(t *testing.T) {
	raw := "2학년,자료구조,CS201,,,,3,4,,,0001,35,화목14:00-15:50 (공학관301),,,,,,"

	cat := Parse(raw, testSemester, testYear)
	if len(cat.Courses) != 1 {
		t.Fatalf("Parse() returned %d courses, want 1", len(cat.Courses))
	}
	if got := cat.Courses[0].Professor; got != "미배정" {
		t.Errorf("professor = %q, want 미배정", got)
	}
}

func Test_Parse_quotedCommaInName(t *testing.T) {
	raw := `2학년,"자료구조,실습",CS201,,,,3,4,이컴퓨터,,0001,35,화목14:00-15:50 (공학관301),,,,,,`

	cat := Parse(raw, testSemester, testYear)
	if len(cat.Courses) != 1 {
		t.Fatalf("Parse() returned %d courses, want 1", len(cat.Courses))
	}
	if got := cat.Courses[0].CourseName; got != "자료구조,실습" {
		t.Errorf("course name = %q, want 자료구조,실습", got)
	}
}

// A section whose time token cannot be decoded still exists in the
// catalog, just without meeting times.
func Test_Parse_badTimeTokenKeepsCourse(t *testing.T) {
	raw := "3학년,데이터베이스,CS301,,,,3,3,최데이터,,0001,30,시간 미정,,,,,,"

	cat := Parse(raw, testSemester, testYear)
	if len(cat.Courses) != 1 {
		t.Fatalf("Parse() returned %d courses, want 1", len(cat.Courses))
	}
	if got := len(cat.SlotsFor(cat.Courses[0].ID)); got != 0 {
		t.Errorf("slots = %d, want 0", got)
	}
}

func Test_InferDepartment(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"CS201", "컴퓨터과학과"},
		{"MATH101", "수학과"},
		{"교필127", "교양필수"},
		{"전필301", "전공필수"},
		{"ZZ999", "기타"},
		{"", "기타"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := InferDepartment(tt.code); got != tt.want {
				t.Errorf("InferDepartment(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func Test_ParseGradeLevel(t *testing.T) {
	tests := []struct {
		name  string
		grade string
		want  int
	}{
		{"all grades marker", "전학년", 0},
		{"first grade", "1학년", 1},
		{"third grade", "3학년", 3},
		{"bare number has no suffix", "3", 0},
		{"junk defaults to 0", "???", 0},
		{"empty defaults to 0", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseGradeLevel(tt.grade); got != tt.want {
				t.Errorf("ParseGradeLevel(%q) = %d, want %d", tt.grade, got, tt.want)
			}
		})
	}
}

func Test_splitColumns(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{
			name: "plain split",
			line: "a,b,c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "quotes suppress the comma and are consumed",
			line: `a,"b,c",d`,
			want: []string{"a", "b,c", "d"},
		},
		{
			name: "fields are trimmed",
			line: " a , b ",
			want: []string{"a", "b"},
		},
		{
			name: "trailing comma yields empty field",
			line: "a,",
			want: []string{"a", ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitColumns(tt.line)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitColumns(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func Test_Sample_isNeverEmpty(t *testing.T) {
	cat := Sample(testSemester, testYear)
	if len(cat.Courses) != 5 {
		t.Fatalf("Sample() returned %d courses, want 5", len(cat.Courses))
	}
	for _, crs := range cat.Courses {
		if len(cat.SlotsFor(crs.ID)) == 0 {
			t.Errorf("sample course %s has no slots", crs.ID)
		}
	}
}
