package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Solace-Health-LLC/beacon/internal/db"
	"github.com/Solace-Health-LLC/beacon/internal/http/api"
	adminpackets "github.com/Solace-Health-LLC/beacon/internal/http/api/admin/packets"
	"github.com/Solace-Health-LLC/beacon/internal/hub"
	"github.com/Solace-Health-LLC/beacon/internal/model"
	"github.com/Solace-Health-LLC/beacon/internal/schedule"
)

type ScreenController struct {
	store db.Store
	hub   *hub.Hub
}

// ScreenModule mounts what the display client itself consumes: the live
// socket and the content/queue fetches it performs on connect and whenever
// the hub nudges it.
func ScreenModule(store db.Store, h *hub.Hub) api.Module {
	ctl := &ScreenController{store: store, hub: h}
	return api.ModuleFunc(func(c *api.Controller) {
		c.Raw(http.MethodGet, "/socket", h.HandleSocket())
		c.PublicGET("/content", ctl.visibleContent)
		c.PublicGET("/patients", ctl.patientQueue)
	})
}

// visibleContent returns the items the device should be showing right now,
// already filtered and ordered by the schedule evaluator. An empty list is a
// valid answer; the client renders its placeholder.
func (s *ScreenController) visibleContent(ctx *gin.Context) (any, *api.APIError) {
	device, apiErr := s.deviceFromQuery(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	all, err := s.store.ListContentForDevice(device.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list content"}
	}

	visible := schedule.VisibleContent(all, time.Now())
	out := make([]adminpackets.ContentResponse, 0, len(visible))
	for _, x := range visible {
		out = append(out, adminpackets.ContentResponseFrom(x))
	}
	return out, nil
}

func (s *ScreenController) patientQueue(ctx *gin.Context) (any, *api.APIError) {
	device, apiErr := s.deviceFromQuery(ctx)
	if apiErr != nil {
		return nil, apiErr
	}

	all, err := s.store.ListPatientsForDevice(device.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list patients"}
	}

	out := make([]adminpackets.PatientResponse, 0, len(all))
	for _, x := range all {
		out = append(out, adminpackets.PatientResponseFrom(x))
	}
	return out, nil
}

func (s *ScreenController) deviceFromQuery(ctx *gin.Context) (model.Device, *api.APIError) {
	hardwareID := ctx.Query("device_id")
	if hardwareID == "" {
		return model.Device{}, &api.APIError{Code: http.StatusBadRequest, Message: "device_id is required"}
	}

	device, err := s.store.GetDeviceByHardwareID(hardwareID)
	if err != nil {
		return model.Device{}, &api.APIError{Code: http.StatusUnauthorized, Message: "unknown device"}
	}
	return device, nil
}
