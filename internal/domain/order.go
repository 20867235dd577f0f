package domain

import "time"

// Order is the result of a successful checkout. It is returned to the caller
// and never persisted; the only durable effect of checkout is the cleared
// cart.
type Order struct {
	OrderID           string    `json:"orderId"`
	Total             float64   `json:"total"`
	TrackingNumber    string    `json:"trackingNumber"`
	EstimatedDelivery string    `json:"estimatedDelivery"`
	PlacedAt          time.Time `json:"placedAt"`
}
