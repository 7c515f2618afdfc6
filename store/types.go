// Package store is a sample domain used by tests and examples. It
// exercises the common shapes fixtures are generated for: enums,
// pointers, nested structs, sets, binary payloads and time values.
package store

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus int

const (
	StatusPending OrderStatus = iota
	StatusPaid
	StatusShipped
	StatusCancelled
)

func (s OrderStatus) String() string {
	switch s {
	case StatusPending:
		return "StatusPending"
	case StatusPaid:
		return "StatusPaid"
	case StatusShipped:
		return "StatusShipped"
	case StatusCancelled:
		return "StatusCancelled"
	default:
		return "OrderStatus(unknown)"
	}
}

// Product represents an individual item available for sale.
// Prices are in cents (lowest currency unit) to avoid floating-point
// errors.
type Product struct {
	ID         uuid.UUID
	SKU        string
	Name       string
	PriceCents int64
	Tags       map[string]struct{}
	Thumbnail  []byte
	CreatedAt  time.Time
}

// Address is a shipping destination.
type Address struct {
	Street  string
	City    string
	ZipCode string
}

// Customer represents the user placing orders.
type Customer struct {
	ID       int64
	Email    string
	FullName string
	Address  *Address
	IsActive bool
}

// OrderItem is a product line within an order. It snapshots the price
// at the time of purchase.
type OrderItem struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	UnitPrice int64
}

// Order represents a transaction made by a customer.
type Order struct {
	ID         int64
	Customer   Customer
	Status     OrderStatus
	TotalCents int64
	Items      []OrderItem
	OrderedAt  time.Time
}
