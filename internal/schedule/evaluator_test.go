package schedule

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"github.com/Solace-Health-LLC/beacon/internal/model"
)

func strptr(s string) *string { return &s }

func at(value string) time.Time {
	t, err := time.Parse("2006-01-02 15:04", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestIsVisibleAlways(t *testing.T) {
	item := model.Content{Active: true, ScheduleKind: model.ScheduleAlways}
	assert.True(t, IsVisible(item, at("2025-01-10 12:00")))
	assert.True(t, IsVisible(item, at("1999-07-04 03:15")))
}

func TestInactiveNeverVisible(t *testing.T) {
	items := []model.Content{
		{Active: false, ScheduleKind: model.ScheduleAlways},
		{Active: false, ScheduleKind: model.ScheduleSpecificDate, SpecificDate: strptr("2025-01-10")},
		{Active: false, ScheduleKind: model.ScheduleDaysOfWeek, DaysOfWeek: pq.Int64Array{0, 1, 2, 3, 4, 5, 6}},
	}
	for _, item := range items {
		assert.False(t, IsVisible(item, at("2025-01-10 12:00")))
	}
}

func TestMalformedItemsNeverVisible(t *testing.T) {
	now := at("2025-01-10 12:00")

	cases := map[string]model.Content{
		"unknown kind":            {Active: true, ScheduleKind: "lunar_phase"},
		"empty kind":              {Active: true},
		"specific_date no date":   {Active: true, ScheduleKind: model.ScheduleSpecificDate},
		"specific_date bad date":  {Active: true, ScheduleKind: model.ScheduleSpecificDate, SpecificDate: strptr("not-a-date")},
		"days_of_week empty set":  {Active: true, ScheduleKind: model.ScheduleDaysOfWeek},
		"date_range no start":     {Active: true, ScheduleKind: model.ScheduleDateRange, EndDate: strptr("2025-01-12")},
		"date_range no end":       {Active: true, ScheduleKind: model.ScheduleDateRange, StartDate: strptr("2025-01-10")},
		"date_range garbage end":  {Active: true, ScheduleKind: model.ScheduleDateRange, StartDate: strptr("2025-01-10"), EndDate: strptr("12/01/2025")},
		"always with broken time": {Active: true, ScheduleKind: model.ScheduleAlways, StartTime: strptr("9am"), EndTime: strptr("17:00")},
	}
	for name, item := range cases {
		assert.False(t, IsVisible(item, now), name)
	}
}

func TestSpecificDate(t *testing.T) {
	item := model.Content{
		Active:       true,
		ScheduleKind: model.ScheduleSpecificDate,
		SpecificDate: strptr("2025-01-10"),
	}
	assert.True(t, IsVisible(item, at("2025-01-10 00:00")))
	assert.True(t, IsVisible(item, at("2025-01-10 23:59")))
	assert.False(t, IsVisible(item, at("2025-01-11 00:00")))
	assert.False(t, IsVisible(item, at("2025-01-09 23:59")))
}

func TestDateRangeInclusiveBounds(t *testing.T) {
	item := model.Content{
		Active:       true,
		ScheduleKind: model.ScheduleDateRange,
		StartDate:    strptr("2025-01-10"),
		EndDate:      strptr("2025-01-12"),
	}
	assert.True(t, IsVisible(item, at("2025-01-10 00:00")))
	assert.True(t, IsVisible(item, at("2025-01-11 13:30")))
	assert.True(t, IsVisible(item, at("2025-01-12 23:59")))
	assert.False(t, IsVisible(item, at("2025-01-09 23:59")))
	assert.False(t, IsVisible(item, at("2025-01-13 00:00")))
}

func TestDaysOfWeekRecurrence(t *testing.T) {
	item := model.Content{
		Active:       true,
		ScheduleKind: model.ScheduleDaysOfWeek,
		DaysOfWeek:   pq.Int64Array{1, 3, 5}, // Mon/Wed/Fri
	}
	// 2025-01-06 is a Monday
	assert.True(t, IsVisible(item, at("2025-01-06 09:00")))
	assert.True(t, IsVisible(item, at("2025-01-08 09:00")))
	assert.True(t, IsVisible(item, at("2025-01-10 09:00")))
	assert.False(t, IsVisible(item, at("2025-01-05 09:00"))) // Sunday
	assert.False(t, IsVisible(item, at("2025-01-07 09:00"))) // Tuesday
	assert.False(t, IsVisible(item, at("2025-01-09 09:00"))) // Thursday
	assert.False(t, IsVisible(item, at("2025-01-11 09:00"))) // Saturday
	// weekly recurrence is date-independent
	assert.True(t, IsVisible(item, at("2031-06-09 09:00"))) // a Monday years out
}

func TestTimeWindowComposesWithDateRule(t *testing.T) {
	item := model.Content{
		Active:       true,
		ScheduleKind: model.ScheduleAlways,
		StartTime:    strptr("09:00"),
		EndTime:      strptr("17:00"),
	}
	assert.True(t, IsVisible(item, at("2025-01-10 12:00")))
	assert.True(t, IsVisible(item, at("2025-01-10 09:00")))
	assert.False(t, IsVisible(item, at("2025-01-10 08:59")))
	assert.False(t, IsVisible(item, at("2025-01-10 17:00"))) // end exclusive

	// the window gates the weekday rule too
	weekly := model.Content{
		Active:       true,
		ScheduleKind: model.ScheduleDaysOfWeek,
		DaysOfWeek:   pq.Int64Array{5},
		StartTime:    strptr("09:00"),
		EndTime:      strptr("17:00"),
	}
	assert.True(t, IsVisible(weekly, at("2025-01-10 10:00")))  // Friday in window
	assert.False(t, IsVisible(weekly, at("2025-01-10 18:00"))) // Friday out of window
	assert.False(t, IsVisible(weekly, at("2025-01-09 10:00"))) // Thursday in window
}

func TestWrappingWindowNeverMatches(t *testing.T) {
	item := model.Content{
		Active:       true,
		ScheduleKind: model.ScheduleAlways,
		StartTime:    strptr("22:00"),
		EndTime:      strptr("02:00"),
	}
	assert.False(t, IsVisible(item, at("2025-01-10 23:00")))
	assert.False(t, IsVisible(item, at("2025-01-10 01:00")))
}

func TestVisibleContentStableOrdering(t *testing.T) {
	items := []model.Content{
		{ID: 1, Name: "A", Active: true, ScheduleKind: model.ScheduleAlways, Position: 2},
		{ID: 2, Name: "B", Active: true, ScheduleKind: model.ScheduleAlways, Position: 1},
		{ID: 3, Name: "C", Active: true, ScheduleKind: model.ScheduleAlways, Position: 1},
	}
	out := VisibleContent(items, at("2025-01-10 12:00"))
	assert.Len(t, out, 3)
	assert.Equal(t, "B", out[0].Name)
	assert.Equal(t, "C", out[1].Name) // equal position keeps insertion order
	assert.Equal(t, "A", out[2].Name)
}

func TestVisibleContentFiltersAndMayBeEmpty(t *testing.T) {
	items := []model.Content{
		{ID: 1, Active: false, ScheduleKind: model.ScheduleAlways},
		{ID: 2, Active: true, ScheduleKind: model.ScheduleSpecificDate, SpecificDate: strptr("2020-01-01")},
	}
	out := VisibleContent(items, at("2025-01-10 12:00"))
	assert.Empty(t, out)
}

func TestValidateWindow(t *testing.T) {
	assert.True(t, ValidateWindow(nil, nil))
	assert.True(t, ValidateWindow(strptr("09:00"), strptr("17:00")))
	assert.False(t, ValidateWindow(strptr("22:00"), strptr("02:00")))
	assert.False(t, ValidateWindow(strptr("09:00"), strptr("09:00")))
	assert.False(t, ValidateWindow(strptr("09:00"), nil))
	assert.False(t, ValidateWindow(strptr("nope"), strptr("17:00")))
}
