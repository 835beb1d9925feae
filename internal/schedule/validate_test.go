package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Solace-Health-LLC/beacon/internal/model"
)

func TestValidateDescriptor(t *testing.T) {
	assert.NoError(t, ValidateDescriptor(model.ScheduleAlways, nil, nil, nil, nil, nil, nil))
	assert.NoError(t, ValidateDescriptor(model.ScheduleSpecificDate, strptr("2025-06-01"), nil, nil, nil, nil, nil))
	assert.NoError(t, ValidateDescriptor(model.ScheduleDaysOfWeek, nil, []int64{0, 6}, nil, nil, nil, nil))
	assert.NoError(t, ValidateDescriptor(model.ScheduleDateRange, nil, nil, strptr("2025-06-01"), strptr("2025-06-30"), strptr("09:00"), strptr("17:00")))

	assert.ErrorIs(t, ValidateDescriptor("sometimes", nil, nil, nil, nil, nil, nil), ErrUnknownKind)
	assert.ErrorIs(t, ValidateDescriptor(model.ScheduleSpecificDate, nil, nil, nil, nil, nil, nil), ErrMissingFields)
	assert.ErrorIs(t, ValidateDescriptor(model.ScheduleSpecificDate, strptr("06/01/2025"), nil, nil, nil, nil, nil), ErrBadDate)
	assert.ErrorIs(t, ValidateDescriptor(model.ScheduleDaysOfWeek, nil, []int64{7}, nil, nil, nil, nil), ErrBadWeekdays)
	assert.ErrorIs(t, ValidateDescriptor(model.ScheduleDateRange, nil, nil, strptr("2025-07-01"), strptr("2025-06-01"), nil, nil), ErrRangeOrder)
	assert.ErrorIs(t, ValidateDescriptor(model.ScheduleAlways, nil, nil, nil, nil, strptr("22:00"), strptr("02:00")), ErrBadWindow)
	assert.ErrorIs(t, ValidateDescriptor(model.ScheduleAlways, nil, nil, nil, nil, strptr("09:00"), nil), ErrBadWindow)
}
