package packets

type RegisterPairingCodeResponse struct {
	HardwareID string `json:"hardware_id"`
}
