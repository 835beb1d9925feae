package packets

type RegisterPairingCodeRequest struct {
	PairingCode string `json:"code" binding:"required"`
	HardwareID  string `json:"hardware_id" binding:"required"`
}
