package repository

// ledger holds running revenue sums per product and per customer.
// An entry whose sum drops to zero or below (or is NaN) is removed, so an
// absent key reads as "no revenue".
type ledger struct {
	products  map[string]float64
	customers map[string]float64
}

func newLedger() *ledger {
	return &ledger{
		products:  make(map[string]float64),
		customers: make(map[string]float64),
	}
}

func (l *ledger) add(productID, customerID string, total float64) {
	addEntry(l.products, productID, total)
	addEntry(l.customers, customerID, total)
}

func addEntry(sums map[string]float64, key string, total float64) {
	sum := sums[key] + total
	if !(sum > 0) {
		delete(sums, key)
		return
	}
	sums[key] = sum
}

// subtract removes a contribution. keepProduct / keepCustomer report whether
// the key still has records; a key without records is always pruned so float
// residue cannot leave a phantom entry behind.
func (l *ledger) subtract(productID, customerID string, total float64, keepProduct, keepCustomer bool) {
	subtractEntry(l.products, productID, total, keepProduct)
	subtractEntry(l.customers, customerID, total, keepCustomer)
}

func subtractEntry(sums map[string]float64, key string, total float64, keep bool) {
	remaining := sums[key] - total
	if !(remaining > 0) || !keep {
		delete(sums, key)
		return
	}
	sums[key] = remaining
}
