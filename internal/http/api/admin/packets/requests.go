package packets

import "time"

type CreateDeviceRequest struct {
	Name       string  `json:"name" binding:"required"`
	Location   *string `json:"location"`
	Department *string `json:"department"`
}

type UpdateDeviceRequest struct {
	Name       *string `json:"name"`
	Location   *string `json:"location"`
	Department *string `json:"department"`
}

type PairDeviceRequest struct {
	PairingCode string `json:"code" binding:"required"`
	DeviceID    int    `json:"device_id" binding:"required"`
}

type CreateContentRequest struct {
	DeviceID     int     `json:"device_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	URL          string  `json:"url" binding:"required"`
	Position     int     `json:"position"`
	Active       *bool   `json:"active"`
	DurationMs   int     `json:"duration_ms"`
	ScheduleKind string  `json:"schedule_kind" binding:"required,oneof=always specific_date days_of_week date_range"`
	SpecificDate *string `json:"specific_date"`
	DaysOfWeek   []int64 `json:"days_of_week"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
}

type UpdateContentRequest struct {
	Name         *string `json:"name"`
	URL          *string `json:"url"`
	Position     *int    `json:"position"`
	Active       *bool   `json:"active"`
	DurationMs   *int    `json:"duration_ms"`
	ScheduleKind *string `json:"schedule_kind"`
	SpecificDate *string `json:"specific_date"`
	DaysOfWeek   []int64 `json:"days_of_week"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
	StartTime    *string `json:"start_time"`
	EndTime      *string `json:"end_time"`
}

type CreateAlertRequest struct {
	Message         string     `json:"message" binding:"required"`
	Level           string     `json:"level"`
	TargetDeviceIDs []string   `json:"target_device_ids" binding:"required,min=1"`
	DurationMs      *int       `json:"duration_ms"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

type CreatePatientRequest struct {
	DeviceID    int     `json:"device_id" binding:"required"`
	TicketNo    int     `json:"ticket_no" binding:"required"`
	DisplayName string  `json:"display_name" binding:"required"`
	Department  *string `json:"department"`
	Room        *string `json:"room"`
}

type SignupRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
