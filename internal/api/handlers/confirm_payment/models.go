package confirm_payment

// ConfirmPaymentRequest HTTP request model
type ConfirmPaymentRequest struct {
	IntentID string `json:"intentId"`
}
