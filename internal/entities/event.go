package entities

import "time"

// Типы событий жизненного цикла заказа.
const (
	EventOrderCreated   = "order.created"
	EventOrderSettled   = "order.settled"
	EventOrderDiscarded = "order.discarded"
)

type OrderEvent struct {
	Type    string    `json:"type"`
	OrderID string    `json:"orderId"`
	UserID  string    `json:"userId"`
	Method  string    `json:"method,omitempty"`
	Amount  float64   `json:"amount"`
	At      time.Time `json:"at"`
}
