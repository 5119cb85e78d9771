package change_owner_pin

// ChangePinRequest HTTP request model
type ChangePinRequest struct {
	CurrentPin string `json:"currentPin"`
	NewPin     string `json:"newPin"`
	ConfirmPin string `json:"confirmPin"`
}

// ChangePinResponse HTTP response model
type ChangePinResponse struct {
	Message string `json:"message"`
}
