package repository

import (
	"context"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
)

// List answers a filtered listing. Product and customer filters narrow the
// candidates through the secondary index; date and total ranges are checked
// per candidate. Results come back in creation order.
func (r *TransactionRepository) List(ctx context.Context, filter entity.TransactionFilter) (entity.TransactionPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*entity.Transaction
	if ids, narrowed := r.index.candidates(filter.ProductID, filter.CustomerID); narrowed {
		for _, id := range ids {
			if tx := r.records[id]; filter.Matches(tx) {
				matches = append(matches, tx)
			}
		}
	} else {
		r.order.Ascend(func(id int64) bool {
			if tx := r.records[id]; filter.Matches(tx) {
				matches = append(matches, tx)
			}
			return true
		})
	}

	start, end := filter.Window(len(matches))
	page := make([]entity.Transaction, 0, end-start)
	for _, tx := range matches[start:end] {
		page = append(page, tx.Clone())
	}

	return entity.TransactionPage{
		Count:        len(matches),
		Transactions: page,
	}, nil
}

// ProductTotals returns the product side of the ledger, largest first
func (r *TransactionRepository) ProductTotals(ctx context.Context) ([]entity.SalesTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return entity.SortedSalesTotals(r.ledger.products), nil
}

// TopCustomers selects the n largest customer totals with a bounded heap
func (r *TransactionRepository) TopCustomers(ctx context.Context, n int) ([]entity.SalesTotal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return entity.TopSalesTotals(r.ledger.customers, n), nil
}
