package transition_booking

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Event  string  `json:"event"` // confirm, start, complete, cancel, dispute
	Reason *string `json:"reason,omitempty"`
}
