package catalog

import (
	"bytes"
	"strings"
	"testing"
)

func Test_WriteCSV(t *testing.T) {
	cat := Sample(testSemester, testYear)

	var buf bytes.Buffer
	if err := WriteCSV(cat, &buf); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(cat.Courses)+1 {
		t.Fatalf("WriteCSV() wrote %d lines, want header + %d rows", len(lines), len(cat.Courses))
	}
	if !strings.Contains(lines[0], "과목코드") {
		t.Errorf("header = %q, want it to contain 과목코드", lines[0])
	}

	var mathRow string
	for _, l := range lines[1:] {
		if strings.Contains(l, "MATH101") {
			mathRow = l
		}
	}
	if mathRow == "" {
		t.Fatal("no row for MATH101")
	}
	if !strings.Contains(mathRow, "월수금 09:00-09:50") {
		t.Errorf("row = %q, want the grouped meeting times", mathRow)
	}
}
