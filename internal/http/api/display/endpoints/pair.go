package endpoints

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Solace-Health-LLC/beacon/internal/db"
	"github.com/Solace-Health-LLC/beacon/internal/http/api"
	"github.com/Solace-Health-LLC/beacon/internal/http/api/display/packets"
	"github.com/Solace-Health-LLC/beacon/internal/redis"
)

type PairingController struct {
	store db.Store
}

// PairingModule mounts the unauthenticated pairing registration the display
// client calls on first boot.
func PairingModule(store db.Store) api.Module {
	ctl := &PairingController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.PublicPOST("/register", ctl.registerPairingCode)
	})
}

// registerPairingCode stores the display's one-time code in Redis so an
// admin can redeem it. Codes expire on their own; an unpaired display just
// shows a fresh one.
func (p *PairingController) registerPairingCode(ctx *gin.Context) (any, *api.APIError) {
	var request packets.RegisterPairingCodeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: err.Error()}
	}

	isPaired, err := p.store.IsDevicePairedByHardwareID(request.HardwareID)
	if err != nil {
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "could not check pairing state"}
	}
	if isPaired {
		log.Warn().Str("hardware_id", request.HardwareID).Msg("device already paired")
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "device is already paired"}
	}

	redis.Set(ctx, "pairing:"+request.PairingCode, request.HardwareID, 10*time.Minute)

	return packets.RegisterPairingCodeResponse{HardwareID: request.HardwareID}, nil
}
