package endpoints

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Solace-Health-LLC/beacon/internal/http/api"
	"github.com/Solace-Health-LLC/beacon/internal/hub"
)

func newBroadcastServer(t *testing.T) (*hub.Hub, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	h := hub.NewHub(hub.NewAlertStore())
	r := gin.New()
	api.MountGroup(r, api.GroupConfig{Prefix: "/api/notify"}, BroadcastModule(h))
	return h, r
}

func post(t *testing.T, r *gin.Engine, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/notify/broadcast", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBroadcastAlertStoresAndReturnsAlert(t *testing.T) {
	h, r := newBroadcastServer(t)

	w := post(t, r, gin.H{
		"type": "alert",
		"data": gin.H{
			"alert": gin.H{
				"message":           "Code blue, ward 3",
				"level":             "critical",
				"target_device_ids": []string{"lobby-1"},
			},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var alert struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &alert))
	assert.NotEmpty(t, alert.ID)
	assert.Equal(t, "Code blue, ward 3", alert.Message)

	stored, ok := h.Alerts().Get(alert.ID)
	require.True(t, ok)
	assert.Equal(t, []string{"lobby-1"}, stored.TargetDeviceIDs)
}

func TestBroadcastAlertRequiresTargets(t *testing.T) {
	_, r := newBroadcastServer(t)

	w := post(t, r, gin.H{
		"type": "alert",
		"data": gin.H{"alert": gin.H{"message": "no targets"}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBroadcastCloseAlertRemovesFromStore(t *testing.T) {
	h, r := newBroadcastServer(t)
	alert := h.Alerts().Add("done", "info", []string{"lobby-1"}, nil, nil)

	w := post(t, r, gin.H{
		"type": "closeAlert",
		"data": gin.H{"alert_id": alert.ID},
	})
	require.Equal(t, http.StatusOK, w.Code)

	_, ok := h.Alerts().Get(alert.ID)
	assert.False(t, ok)
}

func TestBroadcastDeviceScopedKindsRequireDeviceID(t *testing.T) {
	_, r := newBroadcastServer(t)

	for _, kind := range []string{"contentUpdate", "patientListUpdate"} {
		w := post(t, r, gin.H{"type": kind, "data": gin.H{}})
		assert.Equal(t, http.StatusBadRequest, w.Code, kind)
	}
}

func TestBroadcastRejectsUnknownType(t *testing.T) {
	_, r := newBroadcastServer(t)

	w := post(t, r, gin.H{"type": "shutdown", "data": gin.H{}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
