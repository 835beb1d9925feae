package endpoints

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Solace-Health-LLC/beacon/internal/db"
	"github.com/Solace-Health-LLC/beacon/internal/http/api"
	"github.com/Solace-Health-LLC/beacon/internal/http/api/admin/packets"
	"github.com/Solace-Health-LLC/beacon/internal/hub"
	"github.com/Solace-Health-LLC/beacon/internal/model"
)

type PatientController struct {
	store db.Store
	hub   *hub.Hub
}

func newPatientController(store db.Store, h *hub.Hub) *PatientController {
	return &PatientController{store: store, hub: h}
}

// PatientModule mounts the authenticated patient-queue endpoints.
func PatientModule(store db.Store, h *hub.Hub) api.Module {
	ctl := newPatientController(store, h)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/devices/:id/patients", ctl.listPatientsForDevice)
		c.POST("/patients", ctl.createPatient)
		c.POST("/patients/:id/call", ctl.callPatient)
		c.POST("/patients/:id/complete", ctl.completePatient)
		c.DELETE("/patients/:id", ctl.deletePatient)
	})
}

func (p *PatientController) listPatientsForDevice(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	deviceID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid device id"}
	}

	all, err := p.store.ListPatientsForDevice(deviceID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not list patients"}
	}

	out := make([]packets.PatientResponse, 0, len(all))
	for _, x := range all {
		out = append(out, packets.PatientResponseFrom(x))
	}
	return out, nil
}

func (p *PatientController) createPatient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	var request packets.CreatePatientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	patient, err := p.store.CreatePatient(request.DeviceID, request.TicketNo, request.DisplayName, request.Department, request.Room)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not create patient"}
	}

	p.notifyDevice(patient.DeviceID)
	return packets.PatientResponseFrom(patient), nil
}

// callPatient flips the entry to "called" and pushes a queue update so the
// display announces the ticket.
func (p *PatientController) callPatient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return p.setStatus(ctx, model.PatientCalled)
}

func (p *PatientController) completePatient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	return p.setStatus(ctx, model.PatientDone)
}

func (p *PatientController) setStatus(ctx *gin.Context, status string) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	patient, err := p.store.GetPatientByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "patient not found"}
	}

	if err := p.store.SetPatientStatus(id, status); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not update patient"}
	}

	p.notifyDevice(patient.DeviceID)

	updated, err := p.store.GetPatientByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "patient not found"}
	}
	return packets.PatientResponseFrom(updated), nil
}

func (p *PatientController) deletePatient(ctx *gin.Context, user *model.User) (any, *api.APIError) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid id"}
	}

	patient, err := p.store.GetPatientByID(id)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusNotFound, Message: "patient not found"}
	}

	if err := p.store.DeletePatient(id); err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not delete patient"}
	}

	p.notifyDevice(patient.DeviceID)
	return gin.H{"success": "patient removed"}, nil
}

func (p *PatientController) notifyDevice(deviceID int) {
	device, err := p.store.GetDeviceByID(deviceID)
	if err != nil || device.HardwareID == nil {
		return
	}
	p.hub.PushPatientListUpdate(*device.HardwareID)
}
