package hub

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Solace-Health-LLC/beacon/internal/model"
)

type initMessage struct {
	Type   string        `json:"type"`
	Alerts []model.Alert `json:"alerts"`
}

func newSocketServer(t *testing.T, h *Hub) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/socket", h.HandleSocket())
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, deviceID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/socket"
	if deviceID != "" {
		url += "?device_id=" + deviceID
	}
	ws, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { ws.Close() })
	return ws
}

func readJSON(t *testing.T, ws *websocket.Conn, out any) {
	t.Helper()
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := ws.ReadMessage()
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func TestConnectReplaysPendingAlerts(t *testing.T) {
	store := NewAlertStore()
	h := NewHub(store)
	srv := newSocketServer(t, h)

	expires := time.Now().Add(time.Hour)
	posted := store.Add("MRI corridor closed", "warn", []string{"d1"}, nil, &expires)

	var init initMessage
	readJSON(t, dial(t, srv, "d1"), &init)
	assert.Equal(t, KindInit, init.Type)
	require.Len(t, init.Alerts, 1)
	assert.Equal(t, posted.ID, init.Alerts[0].ID)
	assert.Equal(t, "MRI corridor closed", init.Alerts[0].Message)

	// a device with nothing pending still gets an init, just empty
	readJSON(t, dial(t, srv, "d2"), &init)
	assert.Equal(t, KindInit, init.Type)
	assert.Empty(t, init.Alerts)
}

func TestExpiredAlertNotReplayed(t *testing.T) {
	store := NewAlertStore()
	h := NewHub(store)
	srv := newSocketServer(t, h)

	past := time.Now().Add(-time.Minute)
	store.Add("already over", "", []string{"d1"}, nil, &past)

	var init initMessage
	readJSON(t, dial(t, srv, "d1"), &init)
	assert.Empty(t, init.Alerts)
}

func TestMissingDeviceIDRejectedWithPolicyViolation(t *testing.T) {
	h := NewHub(NewAlertStore())
	srv := newSocketServer(t, h)

	ws := dial(t, srv, "")
	require.NoError(t, ws.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := ws.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.ClosePolicyViolation))
	assert.Empty(t, h.ConnectedDevices())
}

func TestBroadcastIsBestEffortPerTarget(t *testing.T) {
	h := NewHub(NewAlertStore())
	srv := newSocketServer(t, h)

	ws := dial(t, srv, "d1")
	var init initMessage
	readJSON(t, ws, &init)

	// d2 has no connection; its absence must not disturb delivery to d1
	h.Broadcast(KindAlert, []string{"d2", "d1"}, map[string]any{"alert_id": "x"})

	var got map[string]any
	readJSON(t, ws, &got)
	assert.Equal(t, KindAlert, got["type"])
	assert.Equal(t, "x", got["alert_id"])
}

func TestReconnectSupersedesOldConnection(t *testing.T) {
	h := NewHub(NewAlertStore())
	srv := newSocketServer(t, h)

	old := dial(t, srv, "d1")
	var init initMessage
	readJSON(t, old, &init)

	replacement := dial(t, srv, "d1")
	readJSON(t, replacement, &init)

	// closing the superseded socket must not evict the replacement
	old.Close()
	assert.Eventually(t, func() bool { return h.Connected("d1") }, time.Second, 10*time.Millisecond)

	h.PushContentUpdate("d1")
	var got map[string]any
	readJSON(t, replacement, &got)
	assert.Equal(t, KindContent, got["type"])
}

type recordingMirror struct {
	devices  []string
	payloads [][]byte
}

func (m *recordingMirror) Publish(deviceID string, payload []byte) {
	m.devices = append(m.devices, deviceID)
	m.payloads = append(m.payloads, payload)
}

func TestMirrorSeesEveryTarget(t *testing.T) {
	mirror := &recordingMirror{}
	h := NewHub(NewAlertStore(), WithMirror(mirror))

	h.Broadcast(KindPatientList, []string{"d1", "d2"}, nil)

	assert.Equal(t, []string{"d1", "d2"}, mirror.devices)
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(mirror.payloads[0], &envelope))
	assert.Equal(t, KindPatientList, envelope["type"])
}

func TestPushAlertTargetsAlertList(t *testing.T) {
	h := NewHub(NewAlertStore())
	srv := newSocketServer(t, h)

	ws := dial(t, srv, "d7")
	var init initMessage
	readJSON(t, ws, &init)

	alert := model.Alert{ID: "a1", Message: "pharmacy closing", TargetDeviceIDs: []string{"d7"}}
	h.PushAlert(alert)

	var got struct {
		Type  string      `json:"type"`
		Alert model.Alert `json:"alert"`
	}
	readJSON(t, ws, &got)
	assert.Equal(t, KindAlert, got.Type)
	assert.Equal(t, "a1", got.Alert.ID)
}
