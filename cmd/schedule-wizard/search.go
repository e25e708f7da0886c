package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LilChaewon/Schedule-Wizard/internal/course"
	"github.com/LilChaewon/Schedule-Wizard/internal/search"
	"github.com/LilChaewon/Schedule-Wizard/internal/timetable"
)

var (
	flagDepartment []string
	flagGrade      []int
	flagCredits    []int
	flagProfessor  string
	flagDays       []int
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "과목명, 교수명, 과목코드로 검색",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		query := ""
		if len(args) == 1 {
			query = args[0]
		}

		cat := loadCatalog()
		results := search.Filter(cat, query, course.SearchFilters{
			Department: flagDepartment,
			GradeLevel: flagGrade,
			Credits:    flagCredits,
			Professor:  flagProfessor,
			Days:       flagDays,
		})

		fmt.Printf("총 %d개 과목\n", len(results))
		for _, r := range results {
			printCourse(r)
		}
		return nil
	},
}

func printCourse(r course.SearchResult) {
	grade := "전학년"
	if r.Course.GradeLevel > 0 {
		grade = fmt.Sprintf("%d학년", r.Course.GradeLevel)
	}
	times := timetable.FormatTimes(r.Slots)
	if times == "" {
		times = "시간 미정"
	}
	fmt.Printf("%-24s %s (%s분반) %d학점 %s/%s\n    %s  %s\n",
		r.Course.ID,
		r.Course.CourseName, r.Course.SectionNumber,
		r.Course.Credits, r.Course.Department, grade,
		r.Course.Professor, times)
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "필터에 사용할 수 있는 값 나열",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := search.ExtractOptions(loadCatalog())
		fmt.Println("학과:", strings.Join(opts.Departments, ", "))
		fmt.Println("학년:", joinInts(opts.GradeLevels))
		fmt.Println("학점:", joinInts(opts.Credits))
		return nil
	},
}

func joinInts(ns []int) string {
	parts := make([]string, 0, len(ns))
	for _, n := range ns {
		parts = append(parts, fmt.Sprintf("%d", n))
	}
	return strings.Join(parts, ", ")
}

func init() {
	searchCmd.Flags().StringSliceVar(&flagDepartment, "department", nil, "filter by department")
	searchCmd.Flags().IntSliceVar(&flagGrade, "grade", nil, "filter by grade level (0 = all grades)")
	searchCmd.Flags().IntSliceVar(&flagCredits, "credits", nil, "filter by credit count")
	searchCmd.Flags().StringVar(&flagProfessor, "professor", "", "filter by professor substring")
	searchCmd.Flags().IntSliceVar(&flagDays, "day", nil, "filter by weekday (1=월 .. 6=토)")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(optionsCmd)
}
