// Package warehouse is the second sample domain. Its types carry
// fixture tags, so it doubles as the end-to-end input of the
// ahead-of-time descriptor generator.
package warehouse

import "time"

//go:generate go run fixture-generator/cmd/fixture-generator .

// Customer represents a store customer/user. Contact details are
// redacted in fixtures; the password hash never leaves the process.
type Customer struct {
	ID           uint
	FirstName    string
	LastName     string
	Email        string `fixture:"hash"`
	Phone        string `fixture:"mask=***-***-****"`
	PasswordHash string `fixture:"-"`
	DateOfBirth  *time.Time
	CreatedAt    time.Time
}

// Product represents a sellable item in the store.
type Product struct {
	ID          uint
	SKU         string `fixture:"rename=Sku"`
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	IsActive    bool
	WeightGrams float64
}

// Shipment tracks one outgoing parcel.
type Shipment struct {
	ID          uint
	OrderNumber string
	Carrier     string
	TrackingKey []byte `fixture:"hash"`
	ShippedAt   *time.Time
}
