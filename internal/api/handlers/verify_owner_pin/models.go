package verify_owner_pin

// VerifyPinRequest HTTP request model
type VerifyPinRequest struct {
	Pin string `json:"pin"`
}

// VerifyPinResponse HTTP response model
type VerifyPinResponse struct {
	Authenticated bool `json:"authenticated"`
}
