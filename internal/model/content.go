package model

import (
	"time"

	"github.com/lib/pq"
)

// Schedule kinds accepted on content rows. Anything else renders the item
// invisible rather than failing the request that reads it.
const (
	ScheduleAlways       = "always"
	ScheduleSpecificDate = "specific_date"
	ScheduleDaysOfWeek   = "days_of_week"
	ScheduleDateRange    = "date_range"
)

// Content is a single display item assigned to a device, together with its
// recurrence descriptor. Dates are stored as ISO "2006-01-02" strings and
// times of day as "15:04"; they are parsed defensively at evaluation time so
// a bad row can never break playback.
type Content struct {
	ID           int           `db:"id"            json:"id"`
	DeviceID     int           `db:"device_id"     json:"device_id"`
	Name         string        `db:"name"          json:"name"`
	Type         string        `db:"type"          json:"type"`
	URL          string        `db:"url"           json:"url"`
	Position     int           `db:"position"      json:"position"`
	Active       bool          `db:"active"        json:"active"`
	DurationMs   int           `db:"duration_ms"   json:"duration_ms"`
	ScheduleKind string        `db:"schedule_kind" json:"schedule_kind"`
	SpecificDate *string       `db:"specific_date" json:"specific_date,omitempty"`
	DaysOfWeek   pq.Int64Array `db:"days_of_week"  json:"days_of_week,omitempty"`
	StartDate    *string       `db:"start_date"    json:"start_date,omitempty"`
	EndDate      *string       `db:"end_date"      json:"end_date,omitempty"`
	StartTime    *string       `db:"start_time"    json:"start_time,omitempty"`
	EndTime      *string       `db:"end_time"      json:"end_time,omitempty"`
	CreatedBy    int           `db:"created_by"    json:"created_by"`
	CreatedAt    time.Time     `db:"created_at"    json:"created_at"`
	UpdatedAt    time.Time     `db:"updated_at"    json:"updated_at"`
}
