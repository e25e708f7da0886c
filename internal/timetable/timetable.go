// Package timetable converts the registrar's compact Korean time
// notation (e.g. "월수금09:00-09:50 (수학관201)") to and from TimeSlot
// records, and provides the slot overlap predicate.
package timetable

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ktnyt/go-moji"
	"github.com/sirupsen/logrus"

	"github.com/LilChaewon/Schedule-Wizard/internal/course"
)

// 요일 ↔ day number (1=월 .. 6=토). Sunday is not representable.
var dayNumber = map[rune]int{
	'월': 1,
	'화': 2,
	'수': 3,
	'목': 4,
	'금': 5,
	'토': 6,
}

var dayGlyph = map[int]string{
	1: "월",
	2: "화",
	3: "수",
	4: "목",
	5: "금",
	6: "토",
}

var timeTokenRe = regexp.MustCompile(`([월화수목금토]+)(\d{2}):(\d{2})-(\d{2}):(\d{2})\s*\(([^)]*)\)`)

// DayGlyph returns the Korean glyph for a day number, or "?" for
// values outside 1-6.
func DayGlyph(day int) string {
	if g, ok := dayGlyph[day]; ok {
		return g
	}
	return "?"
}

// ParseDays converts a run of weekday glyphs to day numbers. Glyphs
// outside the fixed table are dropped, not an error.
func ParseDays(days string) []int {
	res := []int{}
	for _, r := range days {
		if n, ok := dayNumber[r]; ok {
			res = append(res, n)
		}
	}
	return res
}

// ParseTimes decodes one time/room token into per-day slots owned by
// courseID. A token that does not match the notation yields an empty
// slice; the failure is logged for operators and is not fatal, since
// a section with an unparseable meeting time still exists in the
// catalog.
//
// Some exports carry full-width digits and punctuation, so the token
// is normalized to half-width before matching.
func ParseTimes(token, courseID string) []course.TimeSlot {
	normalized := moji.Convert(strings.TrimSpace(token), moji.ZE, moji.HE)

	m := timeTokenRe.FindStringSubmatch(normalized)
	if m == nil {
		if normalized != "" {
			logrus.WithFields(logrus.Fields{
				"course": courseID,
				"token":  token,
			}).Warn("unrecognized time notation")
		}
		return []course.TimeSlot{}
	}

	start := m[2] + ":" + m[3]
	end := m[4] + ":" + m[5]
	var room *string
	if r := strings.TrimSpace(m[6]); r != "" {
		room = &r
	}

	days := ParseDays(m[1])
	slots := make([]course.TimeSlot, 0, len(days))
	for i, day := range days {
		slots = append(slots, course.TimeSlot{
			ID:        course.SlotID(courseID, day, i),
			CourseID:  courseID,
			DayOfWeek: day,
			StartTime: start,
			EndTime:   end,
			Room:      room,
		})
	}
	return slots
}

// FormatTime renders a single slot for display, e.g. "월 09:00-10:50".
func FormatTime(s course.TimeSlot) string {
	return fmt.Sprintf("%s %s-%s", DayGlyph(s.DayOfWeek), s.StartTime, s.EndTime)
}

// FormatTimes renders a slot set in the compact notation, grouping
// days that share the same time range: "월수금 09:00-09:50". Groups
// with distinct ranges are joined with ", ". This is the practical
// inverse of ParseTimes for the weekday set and time range (the room
// is not round-tripped).
func FormatTimes(slots []course.TimeSlot) string {
	if len(slots) == 0 {
		return ""
	}

	groupDays := map[string][]int{}
	order := []string{}
	for _, s := range slots {
		key := s.StartTime + "-" + s.EndTime
		if _, ok := groupDays[key]; !ok {
			order = append(order, key)
		}
		groupDays[key] = append(groupDays[key], s.DayOfWeek)
	}

	parts := make([]string, 0, len(order))
	for _, key := range order {
		days := groupDays[key]
		sort.Ints(days)
		var b strings.Builder
		for _, d := range days {
			b.WriteString(DayGlyph(d))
		}
		parts = append(parts, b.String()+" "+key)
	}
	return strings.Join(parts, ", ")
}

// Overlaps reports whether two slots collide. Intervals are half-open,
// so back-to-back slots (a.End == b.Start) do not overlap. Slots on
// different days never overlap. "HH:MM" strings compare correctly as
// plain strings.
func Overlaps(a, b course.TimeSlot) bool {
	if a.DayOfWeek != b.DayOfWeek {
		return false
	}
	return a.StartTime < b.EndTime && b.StartTime < a.EndTime
}
