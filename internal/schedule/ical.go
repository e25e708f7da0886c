package schedule

import (
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/pkg/errors"

	"github.com/LilChaewon/Schedule-Wizard/internal/course"
	"github.com/LilChaewon/Schedule-Wizard/internal/timetable"
)

const seoulTimezone = "Asia/Seoul"

// ExportICS renders the selected courses as an iCalendar document with
// one weekly-recurring VEVENT per meeting slot, anchored on the first
// matching weekday on or after semesterStart and repeating for the
// given number of weeks.
func ExportICS(cat *course.Catalog, selected []string, semesterStart time.Time, weeks int) (string, error) {
	if weeks <= 0 {
		weeks = 16
	}
	loc, err := time.LoadLocation(seoulTimezone)
	if err != nil {
		loc = time.Local
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now().In(loc)
	for _, id := range selected {
		crs, ok := cat.ByID(id)
		if !ok {
			continue
		}
		for _, slot := range cat.SlotsFor(id) {
			start, end, err := slotTimes(slot, semesterStart, loc)
			if err != nil {
				return "", errors.Wrapf(err, "slot %s", slot.ID)
			}

			ev := cal.AddEvent(slot.ID + "@schedule-wizard")
			ev.SetCreatedTime(now)
			ev.SetDtStampTime(now)
			ev.SetStartAt(start)
			ev.SetEndAt(end)
			ev.SetSummary(crs.CourseName)
			ev.SetDescription(crs.Professor + " / " + timetable.FormatTime(slot))
			if slot.Room != nil {
				ev.SetLocation(*slot.Room)
			}
			ev.AddRrule(weeklyRrule(weeks))
		}
	}

	return cal.Serialize(), nil
}

// slotTimes resolves a slot to concrete first-week timestamps.
func slotTimes(slot course.TimeSlot, semesterStart time.Time, loc *time.Location) (time.Time, time.Time, error) {
	day := firstOnOrAfter(semesterStart, slot.DayOfWeek)

	start, err := atClock(day, slot.StartTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := atClock(day, slot.EndTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// firstOnOrAfter finds the first date with the wanted weekday
// (1=월 .. 6=토) on or after from.
func firstOnOrAfter(from time.Time, weekday int) time.Time {
	for i := 0; i < 7; i++ {
		d := from.AddDate(0, 0, i)
		if int(d.Weekday()) == weekday {
			return d
		}
	}
	return from
}

func atClock(day time.Time, clock string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

func weeklyRrule(weeks int) string {
	return "FREQ=WEEKLY;COUNT=" + strconv.Itoa(weeks)
}
