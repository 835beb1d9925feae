package schedule

import (
	"errors"
	"time"

	"github.com/Solace-Health-LLC/beacon/internal/model"
)

var (
	ErrUnknownKind   = errors.New("unknown schedule kind")
	ErrMissingFields = errors.New("missing fields for schedule kind")
	ErrBadDate       = errors.New("dates must be formatted YYYY-MM-DD")
	ErrBadWeekdays   = errors.New("days_of_week entries must be 0 (Sunday) through 6")
	ErrBadWindow     = errors.New("time window must be HH:MM with start before end")
	ErrRangeOrder    = errors.New("start_date must not be after end_date")
)

// ValidateDescriptor enforces the invariant that exactly the field group of
// the declared kind is populated and well-formed. The evaluator itself is
// fail-safe either way; this exists so an admin typo is rejected at entry
// instead of silently hiding content.
func ValidateDescriptor(kind string, specificDate *string, daysOfWeek []int64, startDate, endDate, startTime, endTime *string) error {
	switch kind {
	case model.ScheduleAlways:
		// nothing kind-specific

	case model.ScheduleSpecificDate:
		if specificDate == nil {
			return ErrMissingFields
		}
		if !validDate(*specificDate) {
			return ErrBadDate
		}

	case model.ScheduleDaysOfWeek:
		if len(daysOfWeek) == 0 {
			return ErrMissingFields
		}
		for _, d := range daysOfWeek {
			if d < 0 || d > 6 {
				return ErrBadWeekdays
			}
		}

	case model.ScheduleDateRange:
		if startDate == nil || endDate == nil {
			return ErrMissingFields
		}
		if !validDate(*startDate) || !validDate(*endDate) {
			return ErrBadDate
		}
		if *startDate > *endDate {
			return ErrRangeOrder
		}

	default:
		return ErrUnknownKind
	}

	if !ValidateWindow(startTime, endTime) {
		return ErrBadWindow
	}
	return nil
}

func validDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
