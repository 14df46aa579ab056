package usecase

import (
	"context"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
)

// TransactionUseCase defines the record operations exposed over the API.
// Payloads are raw decoded JSON objects; validation happens inside.
type TransactionUseCase interface {
	// CreateTransaction validates a full payload and stores a new record
	CreateTransaction(ctx context.Context, payload map[string]any) (entity.Transaction, error)

	// GetTransaction fetches a record by id
	GetTransaction(ctx context.Context, id int64) (entity.Transaction, error)

	// UpdateTransaction validates a partial payload and applies it.
	// A missing id is reported before any validation error.
	UpdateTransaction(ctx context.Context, id int64, payload map[string]any) (entity.Transaction, error)

	// DeleteTransaction removes a record and returns its last state
	DeleteTransaction(ctx context.Context, id int64) (entity.Transaction, error)

	// ListTransactions returns a filtered, paginated listing
	ListTransactions(ctx context.Context, filter entity.TransactionFilter) (entity.TransactionPage, error)
}
