package create_payment_intent

import (
	createPaymentIntent "github.com/m04kA/SMC-ChefReservationService/internal/usecase/create_payment_intent"
)

// CreateIntentRequest HTTP request model
type CreateIntentRequest struct {
	Kind string `json:"kind"` // deposit или full
}

// IntentResponse HTTP response model
type IntentResponse struct {
	BookingID int64   `json:"bookingId"`
	IntentID  string  `json:"intentId"`
	Amount    float64 `json:"amount"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPaymentIntent.Response) *IntentResponse {
	return &IntentResponse{
		BookingID: resp.BookingID,
		IntentID:  resp.IntentID,
		Amount:    resp.Amount,
	}
}
