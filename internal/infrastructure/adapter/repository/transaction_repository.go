package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/btree"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sales-analytics/internal/domain/error"
	coreport "github.com/amirhossein-jamali/sales-analytics/internal/domain/port/core"
	"github.com/amirhossein-jamali/sales-analytics/internal/domain/port/persistence"
)

// btreeDegree is the fan-out of the creation-order tree
const btreeDegree = 32

// TransactionRepository is the in-memory record store. It owns the records,
// the aggregate ledger and the secondary index, and keeps the latter two
// consistent with the records under a single lock.
type TransactionRepository struct {
	mu      sync.RWMutex
	records map[int64]*entity.Transaction
	order   *btree.BTreeG[int64]
	nextID  int64
	ledger  *ledger
	index   *secondaryIndex

	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ persistence.TransactionRepository = (*TransactionRepository)(nil)

// NewTransactionRepository creates an empty store whose first id is 1
func NewTransactionRepository(timeProvider coreport.TimeProvider, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		records:      make(map[int64]*entity.Transaction),
		order:        btree.NewOrderedG[int64](btreeDegree),
		nextID:       1,
		ledger:       newLedger(),
		index:        newSecondaryIndex(),
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create stores a new transaction and indexes it
func (r *TransactionRepository) Create(ctx context.Context, input entity.TransactionInput) (entity.Transaction, error) {
	now := r.timeProvider.Now()

	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := entity.NewTransaction(r.nextID, input, now)
	if err != nil {
		return entity.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	r.nextID++

	r.records[tx.ID] = tx
	r.order.ReplaceOrInsert(tx.ID)
	r.indexTransaction(tx)

	r.logger.Debug("Transaction created", map[string]any{
		"transaction_id": tx.ID,
		"product_id":     tx.ProductID,
		"customer_id":    tx.CustomerID,
	})
	return tx.Clone(), nil
}

// GetByID retrieves a transaction by id
func (r *TransactionRepository) GetByID(ctx context.Context, id int64) (entity.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tx, ok := r.records[id]
	if !ok {
		return entity.Transaction{}, errs.NewTransactionNotFoundError(id)
	}
	return tx.Clone(), nil
}

// Update applies input to an existing record. The old state is unindexed and
// the new state indexed even when only names change, so no stale ledger or
// index entry can survive.
func (r *TransactionRepository) Update(ctx context.Context, id int64, input entity.TransactionInput) (entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.records[id]
	if !ok {
		return entity.Transaction{}, errs.NewTransactionNotFoundError(id)
	}

	updated := current.Apply(input)
	if err := updated.Validate(); err != nil {
		return entity.Transaction{}, fmt.Errorf("update transaction %d: %w", id, err)
	}

	r.unindexTransaction(current)
	r.records[id] = &updated
	r.indexTransaction(&updated)

	r.logger.Debug("Transaction updated", map[string]any{
		"transaction_id": id,
		"product_id":     updated.ProductID,
		"customer_id":    updated.CustomerID,
	})
	return updated.Clone(), nil
}

// Delete removes a record and rolls back its contribution
func (r *TransactionRepository) Delete(ctx context.Context, id int64) (entity.Transaction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, ok := r.records[id]
	if !ok {
		return entity.Transaction{}, errs.NewTransactionNotFoundError(id)
	}

	delete(r.records, id)
	r.order.Delete(id)
	r.unindexTransaction(tx)

	r.logger.Debug("Transaction deleted", map[string]any{
		"transaction_id": id,
	})
	return tx.Clone(), nil
}

// Stats reports current sizes of the record set, ledger and index
func (r *TransactionRepository) Stats() persistence.StoreStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return persistence.StoreStats{
		Records:          len(r.records),
		LedgerProducts:   len(r.ledger.products),
		LedgerCustomers:  len(r.ledger.customers),
		IndexedProducts:  len(r.index.products),
		IndexedCustomers: len(r.index.customers),
	}
}

// indexTransaction adds a record's id to the index and its total to the ledger.
// Callers hold the write lock.
func (r *TransactionRepository) indexTransaction(tx *entity.Transaction) {
	r.index.add(tx.ID, tx.ProductID, tx.CustomerID)
	r.ledger.add(tx.ProductID, tx.CustomerID, tx.Total())
}

// unindexTransaction reverses indexTransaction for the given record state.
// Callers hold the write lock.
func (r *TransactionRepository) unindexTransaction(tx *entity.Transaction) {
	productLive, customerLive := r.index.remove(tx.ID, tx.ProductID, tx.CustomerID)
	r.ledger.subtract(tx.ProductID, tx.CustomerID, tx.Total(), productLive, customerLive)
}
