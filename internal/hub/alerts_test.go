package hub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAddDerivesExpiryFromDuration(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewAlertStoreWithClock(func() time.Time { return base })

	duration := 30000
	alert := store.Add("code blue, ward 3", "urgent", []string{"d1"}, &duration, nil)

	assert.NotEmpty(t, alert.ID)
	if assert.NotNil(t, alert.ExpiresAt) {
		assert.Equal(t, base.Add(30*time.Second), *alert.ExpiresAt)
	}
}

func TestExplicitExpiryWinsOverDuration(t *testing.T) {
	store := NewAlertStore()
	expires := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	duration := 1000

	alert := store.Add("visiting hours end early today", "", []string{"d1"}, &duration, &expires)
	assert.Equal(t, expires, *alert.ExpiresAt)
}

func TestExpiredAlertsExcludedFromReads(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	store := NewAlertStoreWithClock(func() time.Time { return base })

	duration := 60000
	store.Add("short lived", "", []string{"d1"}, &duration, nil)
	store.Add("no expiry", "", []string{"d1"}, nil, nil)

	// before expiry both show up
	active := store.ListActiveForDevice("d1", base.Add(30*time.Second))
	assert.Len(t, active, 2)

	// after expiry the timed alert drops out without being removed
	active = store.ListActiveForDevice("d1", base.Add(2*time.Minute))
	assert.Len(t, active, 1)
	assert.Equal(t, "no expiry", active[0].Message)

	all := store.List(base.Add(2 * time.Minute))
	assert.Len(t, all, 1)
}

func TestListActiveFiltersByTarget(t *testing.T) {
	store := NewAlertStore()
	store.Add("for d1", "", []string{"d1"}, nil, nil)
	store.Add("for both", "", []string{"d1", "d2"}, nil, nil)

	now := time.Now()
	assert.Len(t, store.ListActiveForDevice("d1", now), 2)
	assert.Len(t, store.ListActiveForDevice("d2", now), 1)
	assert.Empty(t, store.ListActiveForDevice("d3", now))
}

func TestRemove(t *testing.T) {
	store := NewAlertStore()
	alert := store.Add("fire drill cancelled", "", []string{"d1"}, nil, nil)

	assert.True(t, store.Remove(alert.ID))
	assert.False(t, store.Remove(alert.ID))
	assert.Empty(t, store.ListActiveForDevice("d1", time.Now()))
}

func TestGetSkipsExpired(t *testing.T) {
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	now := base
	store := NewAlertStoreWithClock(func() time.Time { return now })

	duration := 1000
	alert := store.Add("gone soon", "", []string{"d1"}, &duration, nil)

	_, ok := store.Get(alert.ID)
	assert.True(t, ok)

	now = base.Add(time.Minute)
	_, ok = store.Get(alert.ID)
	assert.False(t, ok)
}
