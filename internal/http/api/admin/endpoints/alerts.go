package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Solace-Health-LLC/beacon/internal/http/api"
	"github.com/Solace-Health-LLC/beacon/internal/http/api/admin/packets"
	"github.com/Solace-Health-LLC/beacon/internal/hub"
	"github.com/Solace-Health-LLC/beacon/internal/model"
)

type AlertController struct {
	hub *hub.Hub
}

func newAlertController(h *hub.Hub) *AlertController {
	return &AlertController{hub: h}
}

// AlertModule mounts the authenticated alert endpoints. Alerts are held in
// the hub's in-memory store; there is nothing to persist.
func AlertModule(h *hub.Hub) api.Module {
	ctl := newAlertController(h)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/alerts", ctl.listAlerts)
		c.POST("/alerts", ctl.createAlert)
		c.DELETE("/alerts/:id", ctl.closeAlert)
	})
}

func (a *AlertController) listAlerts(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return a.hub.Alerts().List(time.Now()), nil
}

func (a *AlertController) createAlert(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateAlertRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	alert := a.hub.Alerts().Add(request.Message, request.Level, request.TargetDeviceIDs, request.DurationMs, request.ExpiresAt)
	a.hub.PushAlert(alert)
	return alert, nil
}

// closeAlert removes the alert from the store and tells its targets to
// dismiss any copy already on screen.
func (a *AlertController) closeAlert(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id := ctx.Param("id")

	alert, ok := a.hub.Alerts().Get(id)
	if !a.hub.Alerts().Remove(id) {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "alert not found"}
	}
	if ok {
		a.hub.PushCloseAlert(id, alert.TargetDeviceIDs)
	}
	return gin.H{"success": "alert closed"}, nil
}
