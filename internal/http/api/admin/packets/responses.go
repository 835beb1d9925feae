package packets

import (
	"time"

	"github.com/Solace-Health-LLC/beacon/internal/model"
)

type DeviceResponse struct {
	ID         int     `json:"id"`
	HardwareID *string `json:"hardware_id"`
	Name       string  `json:"name"`
	Location   *string `json:"location"`
	Department *string `json:"department"`
	Paired     bool    `json:"paired"`
	Connected  bool    `json:"connected"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

func DeviceResponseFrom(d model.Device, connected bool) DeviceResponse {
	return DeviceResponse{
		ID:         d.ID,
		HardwareID: d.HardwareID,
		Name:       d.Name,
		Location:   d.Location,
		Department: d.Department,
		Paired:     d.Paired,
		Connected:  connected,
		CreatedAt:  d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  d.UpdatedAt.Format(time.RFC3339),
	}
}

type ContentResponse struct {
	ID           int     `json:"id"`
	DeviceID     int     `json:"device_id"`
	Name         string  `json:"name"`
	Type         string  `json:"type"`
	URL          string  `json:"url"`
	Position     int     `json:"position"`
	Active       bool    `json:"active"`
	DurationMs   int     `json:"duration_ms"`
	ScheduleKind string  `json:"schedule_kind"`
	SpecificDate *string `json:"specific_date,omitempty"`
	DaysOfWeek   []int64 `json:"days_of_week,omitempty"`
	StartDate    *string `json:"start_date,omitempty"`
	EndDate      *string `json:"end_date,omitempty"`
	StartTime    *string `json:"start_time,omitempty"`
	EndTime      *string `json:"end_time,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func ContentResponseFrom(c model.Content) ContentResponse {
	return ContentResponse{
		ID:           c.ID,
		DeviceID:     c.DeviceID,
		Name:         c.Name,
		Type:         c.Type,
		URL:          c.URL,
		Position:     c.Position,
		Active:       c.Active,
		DurationMs:   c.DurationMs,
		ScheduleKind: c.ScheduleKind,
		SpecificDate: c.SpecificDate,
		DaysOfWeek:   c.DaysOfWeek,
		StartDate:    c.StartDate,
		EndDate:      c.EndDate,
		StartTime:    c.StartTime,
		EndTime:      c.EndTime,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.Format(time.RFC3339),
	}
}

type PatientResponse struct {
	ID          int     `json:"id"`
	DeviceID    int     `json:"device_id"`
	TicketNo    int     `json:"ticket_no"`
	DisplayName string  `json:"display_name"`
	Department  *string `json:"department,omitempty"`
	Room        *string `json:"room,omitempty"`
	Status      string  `json:"status"`
	CalledAt    *string `json:"called_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

func PatientResponseFrom(p model.Patient) PatientResponse {
	out := PatientResponse{
		ID:          p.ID,
		DeviceID:    p.DeviceID,
		TicketNo:    p.TicketNo,
		DisplayName: p.DisplayName,
		Department:  p.Department,
		Room:        p.Room,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	if p.CalledAt != nil {
		s := p.CalledAt.Format(time.RFC3339)
		out.CalledAt = &s
	}
	return out
}

type TokenResponse struct {
	Token string `json:"token"`
}

type ProfileResponse struct {
	ID    int     `json:"id"`
	Email string  `json:"email"`
	Name  *string `json:"name,omitempty"`
}
