package entity

import (
	"math"
	"time"

	errs "github.com/amirhossein-jamali/sales-analytics/internal/domain/error"
)

// Transaction is a single sale: a quantity of one product bought by one customer
type Transaction struct {
	ID           int64     // Store-assigned identifier, never reused
	ProductID    string    // Grouping key for product aggregates and index
	ProductName  *string   // Optional display name
	CustomerID   string    // Grouping key for customer aggregates and index
	CustomerName *string   // Optional display name
	Quantity     int64     // Units sold, always positive
	Price        float64   // Per-unit price, never negative
	Timestamp    time.Time // When the sale happened, in UTC
}

// TransactionInput is a full or partial set of transaction fields.
// Create requires ProductID, CustomerID, Quantity and Price; Update applies
// only the fields that are set.
type TransactionInput struct {
	ProductID    Optional[string]
	ProductName  Optional[*string]
	CustomerID   Optional[string]
	CustomerName Optional[*string]
	Quantity     Optional[int64]
	Price        Optional[float64]
	Timestamp    Optional[time.Time]
}

// IsEmpty reports whether no field is set
func (in TransactionInput) IsEmpty() bool {
	return !in.ProductID.Set && !in.ProductName.Set &&
		!in.CustomerID.Set && !in.CustomerName.Set &&
		!in.Quantity.Set && !in.Price.Set && !in.Timestamp.Set
}

// NewTransaction builds a transaction from a complete input.
// now is used when the input carries no timestamp.
func NewTransaction(id int64, input TransactionInput, now time.Time) (*Transaction, error) {
	var missing []string
	if !input.ProductID.Set {
		missing = append(missing, "product_id is required")
	}
	if !input.CustomerID.Set {
		missing = append(missing, "customer_id is required")
	}
	if !input.Quantity.Set {
		missing = append(missing, "quantity is required")
	}
	if !input.Price.Set {
		missing = append(missing, "price is required")
	}
	if len(missing) > 0 {
		return nil, errs.NewValidationError(missing)
	}

	tx := &Transaction{
		ID:           id,
		ProductID:    input.ProductID.Value,
		ProductName:  input.ProductName.Value,
		CustomerID:   input.CustomerID.Value,
		CustomerName: input.CustomerName.Value,
		Quantity:     input.Quantity.Value,
		Price:        input.Price.Value,
		Timestamp:    input.Timestamp.Or(now).UTC(),
	}
	if err := tx.Validate(); err != nil {
		return nil, err
	}
	return tx, nil
}

// TotalNotFiniteMessage is reported when quantity times price leaves the float64 range
const TotalNotFiniteMessage = "quantity * price must be a finite number"

// IsFiniteTotal reports whether quantity * price is representable
func IsFiniteTotal(quantity int64, price float64) bool {
	total := float64(quantity) * price
	return !math.IsInf(total, 0) && !math.IsNaN(total)
}

// Total is the derived value of the sale
func (t *Transaction) Total() float64 {
	return float64(t.Quantity) * t.Price
}

// Apply returns a copy of t with every set field of input overwritten.
// The id never changes.
func (t *Transaction) Apply(input TransactionInput) Transaction {
	c := t.Clone()
	c.ProductID = input.ProductID.Or(c.ProductID)
	c.ProductName = input.ProductName.Or(c.ProductName)
	c.CustomerID = input.CustomerID.Or(c.CustomerID)
	c.CustomerName = input.CustomerName.Or(c.CustomerName)
	c.Quantity = input.Quantity.Or(c.Quantity)
	c.Price = input.Price.Or(c.Price)
	if input.Timestamp.Set {
		c.Timestamp = input.Timestamp.Value.UTC()
	}
	return c
}

// Validate checks the at-rest invariants of a record
func (t *Transaction) Validate() error {
	var violations []string
	if t.ProductID == "" {
		violations = append(violations, "product_id cannot be empty")
	}
	if t.CustomerID == "" {
		violations = append(violations, "customer_id cannot be empty")
	}
	if t.Quantity <= 0 {
		violations = append(violations, "quantity must be a positive integer")
	}
	if t.Price < 0 {
		violations = append(violations, "price must be a non-negative number")
	}
	if !IsFiniteTotal(t.Quantity, t.Price) {
		violations = append(violations, TotalNotFiniteMessage)
	}
	if len(violations) > 0 {
		return errs.NewValidationError(violations)
	}
	return nil
}

// Clone returns a deep copy so callers never share name pointers with the store
func (t *Transaction) Clone() Transaction {
	c := *t
	if t.ProductName != nil {
		name := *t.ProductName
		c.ProductName = &name
	}
	if t.CustomerName != nil {
		name := *t.CustomerName
		c.CustomerName = &name
	}
	return c
}
