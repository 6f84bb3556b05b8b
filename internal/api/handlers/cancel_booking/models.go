package cancel_booking

// CancelRequest HTTP request model. Причина опциональна и только логируется.
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// CancelResponse HTTP response model
type CancelResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
