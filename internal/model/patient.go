package model

import "time"

// Patient queue states.
const (
	PatientWaiting = "waiting"
	PatientCalled  = "called"
	PatientDone    = "done"
)

// Patient is one entry in a device's calling queue. DisplayName is stored
// already masked (e.g. "Kim*soo"); the full name never reaches this service.
type Patient struct {
	ID          int       `db:"id"           json:"id"`
	DeviceID    int       `db:"device_id"    json:"device_id"`
	TicketNo    int       `db:"ticket_no"    json:"ticket_no"`
	DisplayName string    `db:"display_name" json:"display_name"`
	Department  *string   `db:"department"   json:"department,omitempty"`
	Room        *string   `db:"room"         json:"room,omitempty"`
	Status      string    `db:"status"       json:"status"`
	CalledAt    *time.Time `db:"called_at"   json:"called_at,omitempty"`
	CreatedAt   time.Time `db:"created_at"   json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updated_at"`
}
