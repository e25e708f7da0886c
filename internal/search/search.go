// Package search filters the catalog by free-text query and
// structured filter sets.
package search

import (
	"sort"
	"strings"

	"github.com/LilChaewon/Schedule-Wizard/internal/course"
)

// Filter returns the courses matching the query and filters, in the
// catalog's original order, each with its full slot set attached.
//
// The text query is a case-insensitive substring match against course
// name, professor and course code; an empty query matches everything.
// Each structured dimension passes when it is unset or contains the
// course's value; dimensions combine with AND.
func Filter(cat *course.Catalog, query string, filters course.SearchFilters) []course.SearchResult {
	query = strings.ToLower(strings.TrimSpace(query))

	results := []course.SearchResult{}
	for _, crs := range cat.Courses {
		if !matchesQuery(crs, query) {
			continue
		}
		if !containsString(filters.Department, crs.Department) {
			continue
		}
		if !containsInt(filters.GradeLevel, crs.GradeLevel) {
			continue
		}
		if !containsInt(filters.Credits, crs.Credits) {
			continue
		}
		if filters.Professor != "" &&
			!strings.Contains(strings.ToLower(crs.Professor), strings.ToLower(filters.Professor)) {
			continue
		}

		slots := cat.SlotsFor(crs.ID)
		if !matchesDays(slots, filters.Days) {
			continue
		}
		if !matchesTimeSlots(slots, filters.TimeSlots) {
			continue
		}

		results = append(results, course.SearchResult{Course: crs, Slots: slots})
	}
	return results
}

func matchesQuery(crs course.Course, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(crs.CourseName), query) ||
		strings.Contains(strings.ToLower(crs.Professor), query) ||
		strings.Contains(strings.ToLower(crs.CourseCode), query)
}

// containsString implements the unset-or-member rule for one filter
// dimension.
func containsString(set []string, v string) bool {
	if len(set) == 0 {
		return true
	}
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsInt(set []int, v int) bool {
	if len(set) == 0 {
		return true
	}
	for _, n := range set {
		if n == v {
			return true
		}
	}
	return false
}

// matchesDays passes when any slot of the course falls on one of the
// requested weekdays.
func matchesDays(slots []course.TimeSlot, days []int) bool {
	if len(days) == 0 {
		return true
	}
	for _, s := range slots {
		for _, d := range days {
			if s.DayOfWeek == d {
				return true
			}
		}
	}
	return false
}

// matchesTimeSlots passes when any slot's "start-end" range equals one
// of the requested buckets.
func matchesTimeSlots(slots []course.TimeSlot, buckets []string) bool {
	if len(buckets) == 0 {
		return true
	}
	for _, s := range slots {
		rng := s.StartTime + "-" + s.EndTime
		for _, b := range buckets {
			if rng == b {
				return true
			}
		}
	}
	return false
}

// Options enumerates the distinct filter choices present in the
// catalog, each deduplicated and sorted ascending.
type Options struct {
	Departments []string
	GradeLevels []int
	Credits     []int
}

// ExtractOptions derives the selectable filter values from the full
// catalog. Pure derived view, no side effects.
func ExtractOptions(cat *course.Catalog) Options {
	depts := map[string]bool{}
	grades := map[int]bool{}
	credits := map[int]bool{}
	for _, crs := range cat.Courses {
		depts[crs.Department] = true
		grades[crs.GradeLevel] = true
		credits[crs.Credits] = true
	}

	opts := Options{
		Departments: make([]string, 0, len(depts)),
		GradeLevels: make([]int, 0, len(grades)),
		Credits:     make([]int, 0, len(credits)),
	}
	for d := range depts {
		opts.Departments = append(opts.Departments, d)
	}
	for g := range grades {
		opts.GradeLevels = append(opts.GradeLevels, g)
	}
	for c := range credits {
		opts.Credits = append(opts.Credits, c)
	}
	sort.Strings(opts.Departments)
	sort.Ints(opts.GradeLevels)
	sort.Ints(opts.Credits)
	return opts
}
