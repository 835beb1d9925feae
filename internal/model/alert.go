package model

import "time"

// Alert is a transient overlay pushed to one or more devices. Alerts live in
// process memory only; a restart drops whatever was pending.
type Alert struct {
	ID              string     `json:"id"`
	Message         string     `json:"message"`
	Level           string     `json:"level,omitempty"`
	TargetDeviceIDs []string   `json:"target_device_ids"`
	DurationMs      *int       `json:"duration_ms,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

// Expired reports whether the alert should no longer be shown or delivered.
func (a Alert) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && !now.Before(*a.ExpiresAt)
}

// Targets reports whether the alert addresses the given device.
func (a Alert) Targets(deviceID string) bool {
	for _, id := range a.TargetDeviceIDs {
		if id == deviceID {
			return true
		}
	}
	return false
}
