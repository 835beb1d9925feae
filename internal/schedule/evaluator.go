// Package schedule decides which content items a device should be showing at
// a given instant. Everything here is pure: callers fetch the device's rows
// and supply the clock value.
package schedule

import (
	"sort"
	"time"

	"github.com/Solace-Health-LLC/beacon/internal/model"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// IsVisible reports whether a content item should be on screen at now.
// Malformed rows never panic and never leak onto a screen: a missing or
// unparseable field for the declared schedule kind resolves to false.
func IsVisible(item model.Content, now time.Time) bool {
	if !item.Active {
		return false
	}
	if !timeWindowAllows(item, now) {
		return false
	}

	switch item.ScheduleKind {
	case model.ScheduleAlways:
		return true

	case model.ScheduleSpecificDate:
		if item.SpecificDate == nil {
			return false
		}
		d, err := time.ParseInLocation(dateLayout, *item.SpecificDate, now.Location())
		if err != nil {
			return false
		}
		return sameDate(d, now)

	case model.ScheduleDaysOfWeek:
		if len(item.DaysOfWeek) == 0 {
			return false
		}
		weekday := int64(now.Weekday()) // Sunday = 0
		for _, d := range item.DaysOfWeek {
			if d == weekday {
				return true
			}
		}
		return false

	case model.ScheduleDateRange:
		if item.StartDate == nil || item.EndDate == nil {
			return false
		}
		start, err := time.ParseInLocation(dateLayout, *item.StartDate, now.Location())
		if err != nil {
			return false
		}
		end, err := time.ParseInLocation(dateLayout, *item.EndDate, now.Location())
		if err != nil {
			return false
		}
		today := truncateToDate(now)
		// both bounds inclusive
		return !today.Before(start) && !today.After(end)
	}

	// unknown kind
	return false
}

// timeWindowAllows applies the optional daily [start, end) time-of-day window
// at minute resolution. The window only constrains when both bounds are set.
// Windows wrapping midnight (end < start) are rejected at data-entry time and
// resolve to never-visible here.
func timeWindowAllows(item model.Content, now time.Time) bool {
	if item.StartTime == nil || item.EndTime == nil {
		return true
	}
	start, err := minuteOfDay(*item.StartTime)
	if err != nil {
		return false
	}
	end, err := minuteOfDay(*item.EndTime)
	if err != nil {
		return false
	}
	nowMin := now.Hour()*60 + now.Minute()
	return start <= nowMin && nowMin < end
}

func minuteOfDay(hhmm string) (int, error) {
	t, err := time.Parse(timeLayout, hhmm)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// VisibleContent filters a device's content list down to what should be shown
// at now and orders it for playback: ascending position, ties keeping their
// original relative order. An empty result is returned as-is; the caller owns
// any placeholder fallback.
func VisibleContent(items []model.Content, now time.Time) []model.Content {
	visible := make([]model.Content, 0, len(items))
	for _, item := range items {
		if IsVisible(item, now) {
			visible = append(visible, item)
		}
	}
	sort.SliceStable(visible, func(i, j int) bool {
		return visible[i].Position < visible[j].Position
	})
	return visible
}

// ValidateWindow rejects daily time windows the evaluator does not support.
// Called from the content endpoints so a midnight-wrapping window can never
// be stored and then silently evaluated as "never".
func ValidateWindow(startTime, endTime *string) bool {
	if startTime == nil || endTime == nil {
		return startTime == nil && endTime == nil
	}
	start, err := minuteOfDay(*startTime)
	if err != nil {
		return false
	}
	end, err := minuteOfDay(*endTime)
	if err != nil {
		return false
	}
	return start < end
}
