package resolve_dispute

// ResolveDisputeRequest HTTP request model
type ResolveDisputeRequest struct {
	Resolution   string  `json:"resolution"`
	RefundAmount float64 `json:"refundAmount"` // 0 - в пользу шефа
}
