package paymentservice

// CreateIntentRequest тело POST /intents
type CreateIntentRequest struct {
	BookingID int64   `json:"bookingId"`
	Amount    float64 `json:"amount"`
}

// CreateIntentResponse ответ POST /intents
type CreateIntentResponse struct {
	IntentID string `json:"intentId"`
}

// ConfirmRequest тело POST /intents/{id}/confirm
type ConfirmRequest struct {
	BookingID int64 `json:"bookingId"`
}

// ConfirmResponse ответ POST /intents/{id}/confirm
type ConfirmResponse struct {
	Status         string  `json:"status"` // succeeded, failed
	CapturedAmount float64 `json:"capturedAmount"`
}

// RefundRequest тело POST /refunds
type RefundRequest struct {
	BookingID int64   `json:"bookingId"`
	Amount    float64 `json:"amount"`
	Reason    string  `json:"reason"`
}

// ErrorResponse модель ошибки от платёжного сервиса
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
