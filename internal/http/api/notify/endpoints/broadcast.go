package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Solace-Health-LLC/beacon/internal/http/api"
	"github.com/Solace-Health-LLC/beacon/internal/hub"
)

type BroadcastController struct {
	hub *hub.Hub
}

// BroadcastModule exposes the hub over a local HTTP call for deployments
// where the admin process and the socket-hosting process are separate. The
// contract is the same as the in-process call: best effort, per-target
// independent, nothing reported back about delivery.
func BroadcastModule(h *hub.Hub) api.Module {
	ctl := &BroadcastController{hub: h}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PublicPOST("/broadcast", ctl.broadcast)
	})
}

type broadcastEnvelope struct {
	Type string        `json:"type" binding:"required,oneof=alert closeAlert contentUpdate patientListUpdate"`
	Data broadcastData `json:"data"`
}

type broadcastData struct {
	DeviceID string      `json:"device_id"`
	AlertID  string      `json:"alert_id"`
	Alert    *alertInput `json:"alert"`
}

type alertInput struct {
	Message         string     `json:"message"`
	Level           string     `json:"level"`
	TargetDeviceIDs []string   `json:"target_device_ids"`
	DurationMs      *int       `json:"duration_ms"`
	ExpiresAt       *time.Time `json:"expires_at"`
}

func (b *BroadcastController) broadcast(ctx *gin.Context) (any, *api.APIError) {
	var envelope broadcastEnvelope
	if err := ctx.ShouldBindJSON(&envelope); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	switch envelope.Type {
	case hub.KindAlert:
		if envelope.Data.Alert == nil || len(envelope.Data.Alert.TargetDeviceIDs) == 0 {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "alert with target_device_ids is required"}
		}
		in := envelope.Data.Alert
		alert := b.hub.Alerts().Add(in.Message, in.Level, in.TargetDeviceIDs, in.DurationMs, in.ExpiresAt)
		b.hub.PushAlert(alert)
		return alert, nil

	case hub.KindCloseAlert:
		if envelope.Data.AlertID == "" {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "alert_id is required"}
		}
		alert, ok := b.hub.Alerts().Get(envelope.Data.AlertID)
		b.hub.Alerts().Remove(envelope.Data.AlertID)
		if ok {
			b.hub.PushCloseAlert(alert.ID, alert.TargetDeviceIDs)
		}
		return gin.H{"success": "broadcast accepted"}, nil

	case hub.KindContent, hub.KindPatientList:
		// these kinds are device-scoped; there is no implicit fan-out
		if envelope.Data.DeviceID == "" {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "device_id is required"}
		}
		b.hub.Broadcast(envelope.Type, []string{envelope.Data.DeviceID}, nil)
		return gin.H{"success": "broadcast accepted"}, nil
	}

	return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unsupported type"}
}
