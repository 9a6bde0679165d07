package model

import "time"

type OrderStatus string

const (
	StatusReceived   OrderStatus = "received"
	StatusProcessing OrderStatus = "processing"
	StatusReady      OrderStatus = "ready"
	StatusCompleted  OrderStatus = "completed"
	StatusCanceled   OrderStatus = "canceled"
)

type Order struct {
	ID            int          `json:"id"`
	CustomerID    int          `json:"customer_id"`
	ReceiptNumber string       `json:"receipt_number"`
	Status        OrderStatus  `json:"status"`
	Total         float64      `json:"total"`
	CreatedAt     time.Time    `json:"created_at"`
	Items         []*OrderItem `json:"items,omitempty"`
}

// OrderItem snapshots the catalog entry at intake time. ServiceName and
// UnitPrice are copied from the catalog row so later price edits never
// reprice an existing order.
type OrderItem struct {
	ID          int     `json:"id"`
	OrderID     int     `json:"order_id"`
	ServiceID   int     `json:"service_id"`
	ServiceName string  `json:"service_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    float64 `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

// Receipt is the assembled customer-facing view of one order.
type Receipt struct {
	ReceiptNumber string       `json:"receipt_number"`
	Customer      *Customer    `json:"customer"`
	Items         []*OrderItem `json:"items"`
	Total         float64      `json:"total"`
	Status        OrderStatus  `json:"status"`
	CreatedAt     time.Time    `json:"created_at"`
}

// DailySummary aggregates completed revenue and order volume for one day.
type DailySummary struct {
	Date    string  `json:"date"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}
