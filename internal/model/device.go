package model

import "time"

// Device represents a display endpoint in the building (lobby TV, ward door
// panel, pharmacy queue board). HardwareID is the identifier the physical
// client presents on pairing and on its WebSocket handshake.
type Device struct {
	ID         int       `db:"id"          json:"id"`
	HardwareID *string   `db:"hardware_id" json:"hardware_id"`
	Name       string    `db:"name"        json:"name"`
	Location   *string   `db:"location"    json:"location"`
	Department *string   `db:"department"  json:"department"`
	Paired     bool      `db:"paired"      json:"paired"`
	CreatedBy  int       `db:"created_by"  json:"created_by"`
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"  json:"updated_at"`
}
