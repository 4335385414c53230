package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle of a manufacturing order.
//
// Orders start pending, move to in progress on the first stage appointment and are
// closed (completed/cancelled) by an explicit action from the office.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// IsClosed reports whether no further production is expected for the order.
func (s OrderStatus) IsClosed() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// Order is the manufacturing order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (share_token-index): share_token
//
// Items are embedded in the order document; an appointment rewrites the whole
// document guarded by Version.
type Order struct {
	ID             string          `json:"id"`
	OrderNumber    string          `json:"order_number"`
	CustomerID     string          `json:"customer_id"`
	CustomerName   string          `json:"customer_name"`
	Status         OrderStatus     `json:"status"`
	Weight         decimal.Decimal `json:"weight"`
	OrderDate      time.Time       `json:"order_date"`
	DeliveryDate   time.Time       `json:"delivery_date"`
	CompletionDate *time.Time      `json:"completion_date,omitempty"`
	ShareToken     string          `json:"share_token"`
	Items          []OrderItem     `json:"items"`
	Version        int64           `json:"version"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// OrderItem is one fabricated piece of an order. Stage order defines the
// dependency chain and must never be re-sorted.
type OrderItem struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Stages      []Stage `json:"stages"`
}
