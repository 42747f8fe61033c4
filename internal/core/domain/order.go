package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the payment state of an order.
type OrderStatus string

const (
	OrderOpen      OrderStatus = "OPEN"
	OrderPaid      OrderStatus = "PAID"
	OrderClosed    OrderStatus = "CLOSED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// CountsAsSale reports whether orders in this status contribute to sales reports.
func (s OrderStatus) CountsAsSale() bool {
	return s == OrderPaid || s == OrderClosed
}

// Order is a bill for a table. Orders are owned by the POS side and read here only for reporting.
type Order struct {
	OrderID       string          `json:"orderID"`
	RestaurantID  string          `json:"restaurantID"`
	SpaceID       string          `json:"spaceID"`
	ReservationID string          `json:"reservationID,omitempty"`
	Status        OrderStatus     `json:"status"`
	Total         decimal.Decimal `json:"total"`
	ClosedAt      time.Time       `json:"closedAt"`
}
