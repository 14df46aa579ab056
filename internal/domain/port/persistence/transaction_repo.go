package persistence

import (
	"context"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
)

// StoreStats is a point-in-time size summary of the store and its derived state
type StoreStats struct {
	Records          int
	LedgerProducts   int
	LedgerCustomers  int
	IndexedProducts  int
	IndexedCustomers int
}

// TransactionRepository owns transaction records together with the aggregate
// ledger and secondary index derived from them. Every mutation updates all
// three before it returns, and no reader observes a partial update.
type TransactionRepository interface {
	// Create assigns the next id, stores the record and indexes it
	//
	// Possible errors:
	// - ErrValidation: If the input is incomplete or breaks a record invariant
	Create(ctx context.Context, input entity.TransactionInput) (entity.Transaction, error)

	// GetByID retrieves a transaction by id
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no live record has the given id
	GetByID(ctx context.Context, id int64) (entity.Transaction, error)

	// Update applies the set fields of input, re-indexing the record
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no live record has the given id
	// - ErrValidation: If the result would break a record invariant
	Update(ctx context.Context, id int64, input entity.TransactionInput) (entity.Transaction, error)

	// Delete removes a record and its contribution to the ledger and index,
	// returning its last state
	//
	// Possible errors:
	// - ErrTransactionNotFound: If no live record has the given id
	Delete(ctx context.Context, id int64) (entity.Transaction, error)

	// List returns one page of the records matching filter, in creation order
	List(ctx context.Context, filter entity.TransactionFilter) (entity.TransactionPage, error)

	// ProductTotals returns every product ledger entry, largest first
	ProductTotals(ctx context.Context) ([]entity.SalesTotal, error)

	// TopCustomers returns the n customers with the largest totals, largest first
	TopCustomers(ctx context.Context, n int) ([]entity.SalesTotal, error)

	// Stats reports current sizes for health checks and metrics
	Stats() StoreStats
}
