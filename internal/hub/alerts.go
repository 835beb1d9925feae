package hub

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Solace-Health-LLC/beacon/internal/model"
)

// AlertStore holds pending alerts for the lifetime of the process. Expiry is
// evaluated lazily at read time; expired alerts simply stop being returned,
// there is no background sweep.
type AlertStore struct {
	mu     sync.RWMutex
	alerts []model.Alert
	now    func() time.Time
}

func NewAlertStore() *AlertStore {
	return &AlertStore{now: time.Now}
}

// NewAlertStoreWithClock is used by tests that need a deterministic clock.
func NewAlertStoreWithClock(clock func() time.Time) *AlertStore {
	return &AlertStore{now: clock}
}

// Add records a new alert. When expiresAt is nil and durationMs is set, the
// expiry is derived from the duration; with neither, the alert lives until
// explicitly removed.
func (s *AlertStore) Add(message, level string, targetDeviceIDs []string, durationMs *int, expiresAt *time.Time) model.Alert {
	createdAt := s.now()
	if expiresAt == nil && durationMs != nil {
		t := createdAt.Add(time.Duration(*durationMs) * time.Millisecond)
		expiresAt = &t
	}

	alert := model.Alert{
		ID:              uuid.NewString(),
		Message:         message,
		Level:           level,
		TargetDeviceIDs: targetDeviceIDs,
		DurationMs:      durationMs,
		CreatedAt:       createdAt,
		ExpiresAt:       expiresAt,
	}

	s.mu.Lock()
	s.alerts = append(s.alerts, alert)
	s.mu.Unlock()
	return alert
}

// Remove deletes an alert by id, reporting whether it was present.
func (s *AlertStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.alerts {
		if a.ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the alert with the given id if it exists and has not expired.
func (s *AlertStore) Get(id string) (model.Alert, bool) {
	now := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.alerts {
		if a.ID == id && !a.Expired(now) {
			return a, true
		}
	}
	return model.Alert{}, false
}

// ListActiveForDevice returns the non-expired alerts targeting deviceID.
func (s *AlertStore) ListActiveForDevice(deviceID string, now time.Time) []model.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Alert, 0)
	for _, a := range s.alerts {
		if a.Targets(deviceID) && !a.Expired(now) {
			out = append(out, a)
		}
	}
	return out
}

// List returns every non-expired alert, for the admin dashboard.
func (s *AlertStore) List(now time.Time) []model.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Alert, 0)
	for _, a := range s.alerts {
		if !a.Expired(now) {
			out = append(out, a)
		}
	}
	return out
}
