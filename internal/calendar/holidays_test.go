package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnknownYearIsEmpty(t *testing.T) {
	p := NewKRProvider()
	assert.Empty(t, p.HolidaysForYear(1999))
}

func TestFixedHolidaysPresent(t *testing.T) {
	h := NewKRProvider().HolidaysForYear(2025)

	assert.Equal(t, "New Year's Day", h["2025-01-01"])
	assert.Equal(t, "Liberation Day", h["2025-08-15"])
	assert.Equal(t, "Christmas Day", h["2025-12-25"])
}

func TestLunarRangeWithSundayGetsSubstitute(t *testing.T) {
	h := NewKRProvider().HolidaysForYear(2025)

	// Chuseok 2025 runs Sun Oct 5 – Tue Oct 7; the Sunday pushes a
	// substitute onto Wednesday Oct 8.
	assert.Equal(t, "Chuseok Holiday", h["2025-10-05"])
	assert.Equal(t, "Chuseok", h["2025-10-06"])
	assert.Equal(t, "Substitute Holiday (Chuseok)", h["2025-10-08"])
}

func TestSeollal2024Substitute(t *testing.T) {
	h := NewKRProvider().HolidaysForYear(2024)

	// Seollal 2024 covers Fri Feb 9 – Sun Feb 11; Sunday in range means
	// Monday Feb 12 becomes the substitute.
	assert.Equal(t, "Substitute Holiday (Seollal)", h["2024-02-12"])
}

func TestSeollalWithoutWeekendHasNoSubstitute(t *testing.T) {
	h := NewKRProvider().HolidaysForYear(2026)

	// Seollal 2026 runs Mon Feb 16 – Wed Feb 18, no Sunday, no overlap
	assert.Equal(t, "Seollal", h["2026-02-17"])
	_, ok := h["2026-02-19"]
	assert.False(t, ok)
}

func TestSingleDayWeekendHolidaySubstituted(t *testing.T) {
	h := NewKRProvider().HolidaysForYear(2025)

	// March 1 2025 is a Saturday; Monday March 3 substitutes.
	assert.Equal(t, "Independence Movement Day", h["2025-03-01"])
	assert.Equal(t, "Substitute Holiday (Independence Movement Day)", h["2025-03-03"])
}

func TestCoincidingHolidaysSubstituted(t *testing.T) {
	h := NewKRProvider().HolidaysForYear(2025)

	// Children's Day and Buddha's Birthday share Mon May 5 2025; the
	// overlap pushes a substitute onto Tuesday May 6.
	assert.Equal(t, "Children's Day, Buddha's Birthday", h["2025-05-05"])
	assert.Equal(t, "Substitute Holiday (Buddha's Birthday)", h["2025-05-06"])
}

func TestSubstituteSkipsWeekend(t *testing.T) {
	h := NewKRProvider().HolidaysForYear(2026)

	// Liberation Day 2026 is a Saturday; the substitute lands on Monday
	// Aug 17, skipping Sunday.
	assert.Equal(t, "Liberation Day", h["2026-08-15"])
	_, sunday := h["2026-08-16"]
	assert.False(t, sunday)
	assert.Equal(t, "Substitute Holiday (Liberation Day)", h["2026-08-17"])
}
