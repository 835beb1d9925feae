package endpoints

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"

	"github.com/Solace-Health-LLC/beacon/internal/db"
	"github.com/Solace-Health-LLC/beacon/internal/http/api"
	"github.com/Solace-Health-LLC/beacon/internal/http/api/admin/packets"
	"github.com/Solace-Health-LLC/beacon/internal/hub"
	"github.com/Solace-Health-LLC/beacon/internal/model"
	"github.com/Solace-Health-LLC/beacon/internal/schedule"
	"github.com/Solace-Health-LLC/beacon/internal/storage"
)

type ContentController struct {
	store   db.Store
	storage storage.Storage
	hub     *hub.Hub
}

func newContentController(store db.Store, storageSystem storage.Storage, h *hub.Hub) *ContentController {
	return &ContentController{store: store, storage: storageSystem, hub: h}
}

// ContentModule mounts all authenticated /content endpoints.
func ContentModule(store db.Store, storageSystem storage.Storage, h *hub.Hub) api.Module {
	ctl := newContentController(store, storageSystem, h)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/devices/:id/content", ctl.listContentForDevice)
		c.GET("/devices/:id/content/preview", ctl.previewContentForDevice)
		c.GET("/content/:id", ctl.getContent)
		c.POST("/content", ctl.createContent)
		c.POST("/content/upload", ctl.uploadFile)
		c.PUT("/content/:id", ctl.updateContent)
		c.DELETE("/content/:id", ctl.deleteContent)
	})
}

func (c *ContentController) listContentForDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	deviceID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid device id"}
	}

	all, err := c.store.ListContentForDevice(deviceID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list content"}
	}

	out := make([]packets.ContentResponse, 0, len(all))
	for _, x := range all {
		out = append(out, packets.ContentResponseFrom(x))
	}
	return out, nil
}

// previewContentForDevice runs the schedule evaluator at an arbitrary
// instant (?at=RFC3339, default now) so an admin can check what a device
// would be showing without standing in front of it.
func (c *ContentController) previewContentForDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	deviceID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid device id"}
	}

	at := time.Now()
	if raw := ctx.Query("at"); raw != "" {
		at, err = time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, &api.APIError{Code: http.StatusBadRequest, Message: "at must be RFC3339"}
		}
	}

	all, err := c.store.ListContentForDevice(deviceID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list content"}
	}

	visible := schedule.VisibleContent(all, at)
	out := make([]packets.ContentResponse, 0, len(visible))
	for _, x := range visible {
		out = append(out, packets.ContentResponseFrom(x))
	}
	return gin.H{"at": at.Format(time.RFC3339), "content": out}, nil
}

func (c *ContentController) getContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	x, err := c.store.GetContentByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}
	return packets.ContentResponseFrom(x), nil
}

func (c *ContentController) createContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateContentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := schedule.ValidateDescriptor(
		request.ScheduleKind, request.SpecificDate, request.DaysOfWeek,
		request.StartDate, request.EndDate, request.StartTime, request.EndTime,
	); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	active := true
	if request.Active != nil {
		active = *request.Active
	}

	item, err := c.store.CreateContent(model.Content{
		DeviceID:     request.DeviceID,
		Name:         request.Name,
		Type:         request.Type,
		URL:          request.URL,
		Position:     request.Position,
		Active:       active,
		DurationMs:   request.DurationMs,
		ScheduleKind: request.ScheduleKind,
		SpecificDate: request.SpecificDate,
		DaysOfWeek:   pq.Int64Array(request.DaysOfWeek),
		StartDate:    request.StartDate,
		EndDate:      request.EndDate,
		StartTime:    request.StartTime,
		EndTime:      request.EndTime,
		CreatedBy:    user.ID,
	})
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create content"}
	}

	c.notifyDevice(item.DeviceID)
	return packets.ContentResponseFrom(item), nil
}

// uploadFile stores a media file and hands back the URL to reference from a
// content item.
func (c *ContentController) uploadFile(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "file field is required"}
	}

	url, err := c.storage.SaveFile(fileHeader, fileHeader.Filename)
	if err != nil {
		log.Error().Err(err).Str("filename", fileHeader.Filename).Msg("upload failed")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not store file"}
	}
	return gin.H{"url": url}, nil
}

func (c *ContentController) updateContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateContentRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	existing, err := c.store.GetContentByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}

	// validate the descriptor as it will look after the patch
	kind := existing.ScheduleKind
	if request.ScheduleKind != nil {
		kind = *request.ScheduleKind
	}
	specificDate := coalesce(request.SpecificDate, existing.SpecificDate)
	days := []int64(existing.DaysOfWeek)
	if request.DaysOfWeek != nil {
		days = request.DaysOfWeek
	}
	startDate := coalesce(request.StartDate, existing.StartDate)
	endDate := coalesce(request.EndDate, existing.EndDate)
	startTime := coalesce(request.StartTime, existing.StartTime)
	endTime := coalesce(request.EndTime, existing.EndTime)

	if err := schedule.ValidateDescriptor(kind, specificDate, days, startDate, endDate, startTime, endTime); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	patch := db.ContentUpdate{
		Name:         request.Name,
		URL:          request.URL,
		Position:     request.Position,
		Active:       request.Active,
		DurationMs:   request.DurationMs,
		ScheduleKind: request.ScheduleKind,
		SpecificDate: request.SpecificDate,
		DaysOfWeek:   pq.Int64Array(request.DaysOfWeek),
		StartDate:    request.StartDate,
		EndDate:      request.EndDate,
		StartTime:    request.StartTime,
		EndTime:      request.EndTime,
	}
	if err := c.store.UpdateContent(id, patch); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update content"}
	}

	updated, err := c.store.GetContentByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}

	c.notifyDevice(updated.DeviceID)
	return packets.ContentResponseFrom(updated), nil
}

func (c *ContentController) deleteContent(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	existing, err := c.store.GetContentByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "not found"}
	}

	if err := c.store.DeleteContent(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete content"}
	}

	c.notifyDevice(existing.DeviceID)
	return gin.H{"success": "content deleted"}, nil
}

// notifyDevice pushes a contentUpdate to the display owning the changed
// item. Delivery is best effort; an offline display catches up on its next
// periodic re-fetch.
func (c *ContentController) notifyDevice(deviceID int) {
	device, err := c.store.GetDeviceByID(deviceID)
	if err != nil || device.HardwareID == nil {
		return
	}
	c.hub.PushContentUpdate(*device.HardwareID)
}

func coalesce(override, existing *string) *string {
	if override != nil {
		return override
	}
	return existing
}
