// Package hub maintains the live WebSocket channel per display device and
// delivers targeted, fire-and-forget notifications. Delivery is best effort:
// an offline device is skipped silently and picks pending alerts back up on
// its next connect via the init replay.
package hub

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/Solace-Health-LLC/beacon/internal/model"
)

// Message kinds pushed to devices.
const (
	KindInit        = "init"
	KindAlert       = "alert"
	KindCloseAlert  = "closeAlert"
	KindContent     = "contentUpdate"
	KindPatientList = "patientListUpdate"
)

// Mirror is an optional secondary push transport (MQTT in production).
// The hub publishes every outbound envelope to it as well, so displays on
// the broker-based firmware see the same stream.
type Mirror interface {
	Publish(deviceID string, payload []byte)
}

type connection struct {
	deviceID string
	ws       *websocket.Conn
	writeMu  sync.Mutex // gorilla allows a single concurrent writer
}

func (c *connection) send(payload []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteMessage(websocket.TextMessage, payload)
}

// Hub is the per-process device connection registry. Construct one at
// startup and inject it where pushes are triggered; it keeps no package
// state so tests can run independent instances.
type Hub struct {
	mu     sync.RWMutex
	conns  map[string]*connection
	alerts *AlertStore
	mirror Mirror
	now    func() time.Time

	upgrader websocket.Upgrader
}

type Option func(*Hub)

// WithMirror attaches a secondary push transport.
func WithMirror(m Mirror) Option {
	return func(h *Hub) { h.mirror = m }
}

// WithClock overrides the hub clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(h *Hub) { h.now = clock }
}

func NewHub(alerts *AlertStore, opts ...Option) *Hub {
	h := &Hub{
		conns:  make(map[string]*connection),
		alerts: alerts,
		now:    time.Now,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Alerts exposes the injected alert store to the endpoints that create and
// delete alerts.
func (h *Hub) Alerts() *AlertStore { return h.alerts }

// HandleSocket upgrades the request to a WebSocket and keeps it registered
// until the peer goes away. The device identifies itself with the device_id
// query parameter; without it the socket is closed with a policy violation
// before it ever reaches the registry.
func (h *Hub) HandleSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Error().Err(err).Msg("websocket upgrade failed")
			return
		}

		deviceID := c.Query("device_id")
		if deviceID == "" {
			msg := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, "device_id required")
			_ = ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
			ws.Close()
			return
		}

		conn := h.register(deviceID, ws)
		log.Info().Str("device_id", deviceID).Msg("device connected")

		// block until the peer closes; inbound payloads are ignored
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				break
			}
		}

		h.unregister(conn)
		ws.Close()
		log.Info().Str("device_id", deviceID).Msg("device disconnected")
	}
}

// register stores the connection (last writer wins; a superseded socket is
// not force-closed) and immediately replays pending alerts so that anything
// posted while the device was offline is seen right away.
func (h *Hub) register(deviceID string, ws *websocket.Conn) *connection {
	conn := &connection{deviceID: deviceID, ws: ws}

	h.mu.Lock()
	h.conns[deviceID] = conn
	h.mu.Unlock()

	pending := h.alerts.ListActiveForDevice(deviceID, h.now())
	payload, err := json.Marshal(gin.H{"type": KindInit, "alerts": pending})
	if err != nil {
		log.Error().Err(err).Msg("failed to encode init message")
		return conn
	}
	if err := conn.send(payload); err != nil {
		log.Debug().Err(err).Str("device_id", deviceID).Msg("init replay failed")
	}
	return conn
}

// unregister drops the map entry only while it still points at this handle,
// so a reconnect that already replaced it is left alone.
func (h *Hub) unregister(conn *connection) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if current, ok := h.conns[conn.deviceID]; ok && current == conn {
		delete(h.conns, conn.deviceID)
	}
}

// Connected reports whether a device currently holds a live channel.
func (h *Hub) Connected(deviceID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.conns[deviceID]
	return ok
}

// ConnectedDevices lists the device ids with a live channel, for the admin
// status view.
func (h *Hub) ConnectedDevices() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	out := make([]string, 0, len(h.conns))
	for id := range h.conns {
		out = append(out, id)
	}
	return out
}

// Broadcast sends {"type": kind, ...payload} to each target device. Every
// delivery attempt is independent; offline or failing targets are logged and
// skipped, never surfaced to the caller.
func (h *Hub) Broadcast(kind string, targetDeviceIDs []string, payload map[string]any) {
	envelope := make(map[string]any, len(payload)+1)
	for k, v := range payload {
		envelope[k] = v
	}
	envelope["type"] = kind

	data, err := json.Marshal(envelope)
	if err != nil {
		log.Error().Err(err).Str("kind", kind).Msg("failed to encode broadcast")
		return
	}

	for _, deviceID := range targetDeviceIDs {
		h.mu.RLock()
		conn, ok := h.conns[deviceID]
		h.mu.RUnlock()

		if ok {
			if err := conn.send(data); err != nil {
				log.Debug().Err(err).Str("device_id", deviceID).Str("kind", kind).Msg("send failed")
			}
		} else {
			log.Debug().Str("device_id", deviceID).Str("kind", kind).Msg("device offline, skipping")
		}

		if h.mirror != nil {
			h.mirror.Publish(deviceID, data)
		}
	}
}

// PushAlert fans an alert out to its own target list.
func (h *Hub) PushAlert(alert model.Alert) {
	h.Broadcast(KindAlert, alert.TargetDeviceIDs, map[string]any{"alert": alert})
}

// PushCloseAlert tells the targets to dismiss a previously shown alert.
func (h *Hub) PushCloseAlert(alertID string, targetDeviceIDs []string) {
	h.Broadcast(KindCloseAlert, targetDeviceIDs, map[string]any{"alert_id": alertID})
}

// PushContentUpdate nudges one device to re-fetch its content list.
func (h *Hub) PushContentUpdate(deviceID string) {
	h.Broadcast(KindContent, []string{deviceID}, nil)
}

// PushPatientListUpdate nudges one device to re-fetch its patient queue.
func (h *Hub) PushPatientListUpdate(deviceID string) {
	h.Broadcast(KindPatientList, []string{deviceID}, nil)
}
