package catalog

import "regexp"

// departmentOther is the bucket for codes whose prefix is unknown.
const departmentOther = "기타"

// Course codes start with a department prefix (alphabetic or Hangul)
// followed by digits; the prefix determines the department.
var departmentByPrefix = map[string]string{
	"CS":   "컴퓨터과학과",
	"MATH": "수학과",
	"PHYS": "물리학과",
	"CHEM": "화학과",
	"BIO":  "생물학과",
	"ENG":  "영어영문학과",
	"KOR":  "국어국문학과",
	"HIST": "사학과",
	"ECON": "경제학과",
	"MGMT": "경영학과",
	"교필":   "교양필수",
	"교선":   "교양선택",
	"전선":   "전공선택",
	"전필":   "전공필수",
}

var digitsRe = regexp.MustCompile(`\d+`)

// InferDepartment derives the department from a course code by
// stripping the digits and looking the prefix up in the fixed table.
// Unknown prefixes fall into the generic 기타 department.
func InferDepartment(code string) string {
	prefix := digitsRe.ReplaceAllString(code, "")
	if dept, ok := departmentByPrefix[prefix]; ok {
		return dept
	}
	return departmentOther
}
