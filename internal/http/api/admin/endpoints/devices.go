package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Solace-Health-LLC/beacon/internal/db"
	"github.com/Solace-Health-LLC/beacon/internal/http/api"
	"github.com/Solace-Health-LLC/beacon/internal/http/api/admin/packets"
	"github.com/Solace-Health-LLC/beacon/internal/hub"
	"github.com/Solace-Health-LLC/beacon/internal/model"
	redisclient "github.com/Solace-Health-LLC/beacon/internal/redis"
)

type DeviceController struct {
	store db.Store
	hub   *hub.Hub
}

func newDeviceController(store db.Store, h *hub.Hub) *DeviceController {
	return &DeviceController{store: store, hub: h}
}

// DeviceModule mounts all authenticated /devices endpoints.
func DeviceModule(store db.Store, h *hub.Hub) api.Module {
	ctl := newDeviceController(store, h)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/devices", ctl.listDevices)
		c.POST("/devices", ctl.createDevice)
		c.GET("/devices/:id", ctl.getDevice)
		c.PUT("/devices/:id", ctl.updateDevice)
		c.DELETE("/devices/:id", ctl.deleteDevice)

		// pairing
		c.POST("/devices/pair", ctl.pairDevice)
	})
}

func (d *DeviceController) listDevices(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	all, err := d.store.ListDevices()
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list devices"}
	}

	out := make([]packets.DeviceResponse, 0, len(all))
	for _, dev := range all {
		connected := dev.HardwareID != nil && d.hub.Connected(*dev.HardwareID)
		out = append(out, packets.DeviceResponseFrom(dev, connected))
	}
	return out, nil
}

func (d *DeviceController) createDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreateDeviceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	device, err := d.store.CreateDevice(request.Name, request.Location, request.Department, user.ID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create device"}
	}
	return packets.DeviceResponseFrom(device, false), nil
}

func (d *DeviceController) getDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	device, err := d.store.GetDeviceByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not found"}
	}

	connected := device.HardwareID != nil && d.hub.Connected(*device.HardwareID)
	return packets.DeviceResponseFrom(device, connected), nil
}

func (d *DeviceController) updateDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	var request packets.UpdateDeviceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	if err := d.store.UpdateDevice(id, request.Name, request.Location, request.Department); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update device"}
	}

	updated, err := d.store.GetDeviceByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "device not found"}
	}
	connected := updated.HardwareID != nil && d.hub.Connected(*updated.HardwareID)
	return packets.DeviceResponseFrom(updated, connected), nil
}

func (d *DeviceController) deleteDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	if err := d.store.DeleteDevice(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete device"}
	}
	return gin.H{"success": "device deleted"}, nil
}

// pairDevice redeems a one-time code the display registered in Redis and
// binds the hardware id it carried to the chosen device row.
func (d *DeviceController) pairDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.PairDeviceRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	key := "pairing:" + request.PairingCode

	hardwareID, err := redisclient.Rdb.Get(ctx, key).Result()
	if err != nil {
		log.Error().Err(err).Str("code", request.PairingCode).Msg("pairing code not found")
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "pairing code not found or expired"}
	}

	redisclient.Rdb.Del(ctx, key)

	if err := d.store.AssignHardwareIDToDevice(request.DeviceID, hardwareID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not bind hardware id"}
	}
	if err := d.store.PairDevice(request.DeviceID); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not mark device paired"}
	}

	return gin.H{"success": "device paired successfully"}, nil
}
