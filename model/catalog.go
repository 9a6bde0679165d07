package model

import "time"

// ServiceItem is one priced entry of the laundry service catalog,
// e.g. "Wash & Fold" billed per kg.
type ServiceItem struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	Unit            string    `json:"unit"` // "kg" or "item"
	Price           float64   `json:"price"`
	TurnaroundHours int       `json:"turnaround_hours"`
	CreatedAt       time.Time `json:"created_at"`
}
