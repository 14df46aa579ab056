package entity

import "time"

// TransactionFilter selects transactions for a listing.
// Nil bounds are open; date and total bounds are inclusive.
type TransactionFilter struct {
	ProductID  string
	CustomerID string
	StartDate  *time.Time
	EndDate    *time.Time
	MinTotal   *float64
	MaxTotal   *float64
	// Limit nil or negative means no limit
	Limit *int
	// Offset below zero is treated as zero
	Offset int
}

// Matches applies the unindexed predicates (date and total ranges)
func (f TransactionFilter) Matches(t *Transaction) bool {
	if f.StartDate != nil && t.Timestamp.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && t.Timestamp.After(*f.EndDate) {
		return false
	}
	total := t.Total()
	if f.MinTotal != nil && total < *f.MinTotal {
		return false
	}
	if f.MaxTotal != nil && total > *f.MaxTotal {
		return false
	}
	return true
}

// Window returns the [start, end) slice bounds of a page over n results
func (f TransactionFilter) Window(n int) (int, int) {
	start := f.Offset
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	end := n
	if f.Limit != nil && *f.Limit >= 0 && *f.Limit < n-start {
		end = start + *f.Limit
	}
	return start, end
}

// TransactionPage is one page of a filtered listing.
// Count is the number of matches before pagination.
type TransactionPage struct {
	Count        int
	Transactions []Transaction
}
