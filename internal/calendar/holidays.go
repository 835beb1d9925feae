// Package calendar provides the national-holiday lookup used by the admin
// schedule viewer. It is display-only data; content visibility never
// consults it.
package calendar

import (
	"fmt"
	"time"
)

// Provider resolves the holiday table for a year as a map of ISO dates
// ("2006-01-02") to holiday names.
type Provider interface {
	HolidaysForYear(year int) map[string]string
}

type entry struct {
	month int
	day   int
	name  string
	// group ties the days of a multi-day lunar observance (Seollal,
	// Chuseok) together for the substitute rule.
	group string
}

// Static tables. Lunar-derived dates shift every year, so each supported
// year is listed explicitly.
var krTable = map[int][]entry{
	2024: {
		{1, 1, "New Year's Day", ""},
		{2, 9, "Seollal Holiday", "seollal"},
		{2, 10, "Seollal", "seollal"},
		{2, 11, "Seollal Holiday", "seollal"},
		{3, 1, "Independence Movement Day", ""},
		{4, 10, "National Assembly Election Day", ""},
		{5, 5, "Children's Day", ""},
		{5, 15, "Buddha's Birthday", ""},
		{6, 6, "Memorial Day", ""},
		{8, 15, "Liberation Day", ""},
		{9, 16, "Chuseok Holiday", "chuseok"},
		{9, 17, "Chuseok", "chuseok"},
		{9, 18, "Chuseok Holiday", "chuseok"},
		{10, 3, "National Foundation Day", ""},
		{10, 9, "Hangul Day", ""},
		{12, 25, "Christmas Day", ""},
	},
	2025: {
		{1, 1, "New Year's Day", ""},
		{1, 28, "Seollal Holiday", "seollal"},
		{1, 29, "Seollal", "seollal"},
		{1, 30, "Seollal Holiday", "seollal"},
		{3, 1, "Independence Movement Day", ""},
		{5, 5, "Children's Day", ""},
		{5, 5, "Buddha's Birthday", ""},
		{6, 6, "Memorial Day", ""},
		{8, 15, "Liberation Day", ""},
		{10, 3, "National Foundation Day", ""},
		{10, 5, "Chuseok Holiday", "chuseok"},
		{10, 6, "Chuseok", "chuseok"},
		{10, 7, "Chuseok Holiday", "chuseok"},
		{10, 9, "Hangul Day", ""},
		{12, 25, "Christmas Day", ""},
	},
	2026: {
		{1, 1, "New Year's Day", ""},
		{2, 16, "Seollal Holiday", "seollal"},
		{2, 17, "Seollal", "seollal"},
		{2, 18, "Seollal Holiday", "seollal"},
		{3, 1, "Independence Movement Day", ""},
		{5, 5, "Children's Day", ""},
		{5, 24, "Buddha's Birthday", ""},
		{6, 6, "Memorial Day", ""},
		{8, 15, "Liberation Day", ""},
		{9, 24, "Chuseok Holiday", "chuseok"},
		{9, 25, "Chuseok", "chuseok"},
		{9, 26, "Chuseok Holiday", "chuseok"},
		{10, 3, "National Foundation Day", ""},
		{10, 9, "Hangul Day", ""},
		{12, 25, "Christmas Day", ""},
	},
}

// KRProvider serves the Korean national holidays, including substitute
// holidays: a single-day holiday landing on a weekend (or on top of another
// holiday) and a lunar observance whose range contains a Sunday or overlaps
// another holiday push a substitute onto the next free weekday.
type KRProvider struct{}

func NewKRProvider() KRProvider { return KRProvider{} }

func (KRProvider) HolidaysForYear(year int) map[string]string {
	entries, ok := krTable[year]
	if !ok {
		return map[string]string{}
	}

	out := make(map[string]string, len(entries))
	type subRequest struct {
		after time.Time
		name  string
	}
	var subs []subRequest

	// base pass; collisions (two holidays on one date) are joined and
	// flagged for substitution
	seenGroups := map[string]bool{}
	groupNeedsSub := map[string]bool{}
	groupEnd := map[string]time.Time{}
	groupName := map[string]string{}

	for _, e := range entries {
		date := time.Date(year, time.Month(e.month), e.day, 0, 0, 0, 0, time.UTC)
		key := isoDate(date)
		collided := false
		if existing, ok := out[key]; ok {
			out[key] = existing + ", " + e.name
			collided = true
		} else {
			out[key] = e.name
		}

		if e.group != "" {
			seenGroups[e.group] = true
			if date.After(groupEnd[e.group]) {
				groupEnd[e.group] = date
			}
			// label the substitute after the observance's main day
			if groupName[e.group] == "" || !isHolidayEve(e.name) {
				groupName[e.group] = e.name
			}
			if date.Weekday() == time.Sunday || collided {
				groupNeedsSub[e.group] = true
			}
			continue
		}

		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday || collided {
			subs = append(subs, subRequest{after: date, name: e.name})
		}
	}

	for group := range seenGroups {
		if groupNeedsSub[group] {
			subs = append(subs, subRequest{after: groupEnd[group], name: groupName[group]})
		}
	}

	// place each substitute on the next day that is neither a weekend nor
	// already a holiday
	for _, req := range subs {
		day := req.after.AddDate(0, 0, 1)
		for {
			_, taken := out[isoDate(day)]
			if !taken && day.Weekday() != time.Saturday && day.Weekday() != time.Sunday {
				break
			}
			day = day.AddDate(0, 0, 1)
		}
		out[isoDate(day)] = fmt.Sprintf("Substitute Holiday (%s)", req.name)
	}

	return out
}

// isHolidayEve reports whether the name is a flanking day of a multi-day
// observance rather than its main day.
func isHolidayEve(name string) bool {
	return len(name) > 8 && name[len(name)-8:] == " Holiday"
}

func isoDate(t time.Time) string {
	return t.Format("2006-01-02")
}
