package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by the shop
	OrderStatusPreparing OrderStatus = "preparing" // Being baked/assembled
	OrderStatusReady     OrderStatus = "ready"     // Ready for pickup or dispatch
	OrderStatusCompleted OrderStatus = "completed" // Handed over to the customer
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled before completion
)

// ParseOrderStatus maps a request string onto the fixed status enum.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusPreparing):
		return OrderStatusPreparing, nil
	case string(OrderStatusReady):
		return OrderStatusReady, nil
	case string(OrderStatusCompleted):
		return OrderStatusCompleted, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

func (s OrderStatus) Valid() bool {
	_, err := ParseOrderStatus(string(s))
	return err == nil
}

type OrderItem struct {
	ProductID    int     `json:"product_id"`
	ProductTitle string  `json:"product_title"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Notes   string `json:"notes,omitempty"`
}

// Order is immutable after creation except for Status, which bumps
// UpdatedAt on every transition. Item prices are snapshots taken at
// purchase time, not live catalog prices.
type Order struct {
	ID           int          `json:"id"`
	Ref          string       `json:"ref"`
	UserID       int          `json:"user_id"`
	CustomerInfo CustomerInfo `json:"customer_info"`
	Items        []OrderItem  `json:"items"`
	TotalAmount  float64      `json:"total_amount"`
	Status       OrderStatus  `json:"status"`
	BranchID     int          `json:"branch_id"`
	OrderType    string       `json:"order_type"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
