package repository

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
	errs "github.com/amirhossein-jamali/sales-analytics/internal/domain/error"
	"github.com/amirhossein-jamali/sales-analytics/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/sales-analytics/mocks/port/core"
)

var fixedTime = time.Date(2026, 2, 5, 12, 0, 0, 0, time.UTC)

func newTestRepository(t *testing.T) *TransactionRepository {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	return NewTransactionRepository(mockTime, logger.NewNoopLogger())
}

func input(productID, customerID string, quantity int64, price float64) entity.TransactionInput {
	return entity.TransactionInput{
		ProductID:  entity.Some(productID),
		CustomerID: entity.Some(customerID),
		Quantity:   entity.Some(quantity),
		Price:      entity.Some(price),
		Timestamp:  entity.Some(fixedTime),
	}
}

func mustCreate(t *testing.T, r *TransactionRepository, in entity.TransactionInput) entity.Transaction {
	t.Helper()
	tx, err := r.Create(context.Background(), in)
	require.NoError(t, err)
	return tx
}

// assertConsistent recomputes the ledger and index from the records and
// compares them with the maintained state
func assertConsistent(t *testing.T, r *TransactionRepository) {
	t.Helper()
	r.mu.RLock()
	defer r.mu.RUnlock()

	productSums := map[string]float64{}
	customerSums := map[string]float64{}
	productIDs := map[string]idSet{}
	customerIDs := map[string]idSet{}
	for id, tx := range r.records {
		productSums[tx.ProductID] += tx.Total()
		customerSums[tx.CustomerID] += tx.Total()
		addToSet(productIDs, tx.ProductID, id)
		addToSet(customerIDs, tx.CustomerID, id)
	}

	assert.Equal(t, productIDs, r.index.products, "product index")
	assert.Equal(t, customerIDs, r.index.customers, "customer index")
	assertSums(t, productSums, r.ledger.products, "product ledger")
	assertSums(t, customerSums, r.ledger.customers, "customer ledger")
	assert.Equal(t, len(r.records), r.order.Len(), "creation order tree")
}

func assertSums(t *testing.T, expected, actual map[string]float64, label string) {
	t.Helper()
	for key, sum := range expected {
		if sum <= 1e-9 {
			assert.NotContains(t, actual, key, "%s: %s should be pruned", label, key)
			continue
		}
		if assert.Contains(t, actual, key, label) {
			assert.InDelta(t, sum, actual[key], 1e-6, "%s: %s", label, key)
		}
	}
	for key := range actual {
		assert.Contains(t, expected, key, "%s: %s has no records", label, key)
	}
}

func TestTransactionRepository_Create(t *testing.T) {
	r := newTestRepository(t)

	t.Run("assigns monotonic ids from 1", func(t *testing.T) {
		first := mustCreate(t, r, input("P100", "C42", 3, 49.99))
		second := mustCreate(t, r, input("P100", "C43", 1, 10))

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
		assert.InDelta(t, 149.97, first.Total(), 1e-9)
		assertConsistent(t, r)
	})

	t.Run("defaults timestamp to now", func(t *testing.T) {
		in := input("P1", "C1", 1, 1)
		in.Timestamp = entity.Optional[time.Time]{}

		tx := mustCreate(t, r, in)

		assert.Equal(t, fixedTime, tx.Timestamp)
	})

	t.Run("rejects incomplete input without consuming an id", func(t *testing.T) {
		_, err := r.Create(context.Background(), entity.TransactionInput{ProductID: entity.Some("P1")})
		require.ErrorIs(t, err, errs.ErrValidation)

		next := mustCreate(t, r, input("P1", "C1", 1, 1))
		assert.Equal(t, int64(4), next.ID)
		assertConsistent(t, r)
	})
}

func TestTransactionRepository_GetByID(t *testing.T) {
	r := newTestRepository(t)
	created := mustCreate(t, r, input("P1", "C1", 2, 10))

	got, err := r.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = r.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
}

func TestTransactionRepository_ReturnedRecordsAreCopies(t *testing.T) {
	r := newTestRepository(t)
	in := input("P1", "C1", 2, 10)
	name := "Widget"
	in.ProductName = entity.Some(&name)
	created := mustCreate(t, r, in)

	*created.ProductName = "mutated"
	created.ProductID = "P9"

	got, err := r.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Widget", *got.ProductName)
	assert.Equal(t, "P1", got.ProductID)
}

func TestTransactionRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("empty update changes nothing", func(t *testing.T) {
		r := newTestRepository(t)
		created := mustCreate(t, r, input("P1", "C1", 2, 10))
		productsBefore, _ := r.ProductTotals(ctx)

		updated, err := r.Update(ctx, created.ID, entity.TransactionInput{})

		require.NoError(t, err)
		assert.Equal(t, created, updated)
		productsAfter, _ := r.ProductTotals(ctx)
		assert.Equal(t, productsBefore, productsAfter)
		assertConsistent(t, r)
	})

	t.Run("moving product shrinks old key and grows new one", func(t *testing.T) {
		r := newTestRepository(t)
		moved := mustCreate(t, r, input("P1", "C1", 1, 10))
		mustCreate(t, r, input("P1", "C2", 1, 5))

		_, err := r.Update(ctx, moved.ID, entity.TransactionInput{ProductID: entity.Some("P2")})
		require.NoError(t, err)

		assert.InDelta(t, 5.0, r.ledger.products["P1"], 1e-9)
		assert.InDelta(t, 10.0, r.ledger.products["P2"], 1e-9)
		assert.Contains(t, r.index.products["P2"], moved.ID)
		assert.NotContains(t, r.index.products["P1"], moved.ID)
		assertConsistent(t, r)
	})

	t.Run("moving the last record removes the key", func(t *testing.T) {
		r := newTestRepository(t)
		only := mustCreate(t, r, input("P1", "C1", 1, 10))

		_, err := r.Update(ctx, only.ID, entity.TransactionInput{ProductID: entity.Some("P2"), CustomerID: entity.Some("C2")})
		require.NoError(t, err)

		assert.NotContains(t, r.ledger.products, "P1")
		assert.NotContains(t, r.index.products, "P1")
		assert.NotContains(t, r.ledger.customers, "C1")
		assert.NotContains(t, r.index.customers, "C1")
		assertConsistent(t, r)
	})

	t.Run("changing quantity and price adjusts totals", func(t *testing.T) {
		r := newTestRepository(t)
		tx := mustCreate(t, r, input("P1", "C1", 1, 10))
		mustCreate(t, r, input("P1", "C1", 1, 5))

		_, err := r.Update(ctx, tx.ID, entity.TransactionInput{Quantity: entity.Some(int64(3)), Price: entity.Some(20.0)})
		require.NoError(t, err)

		assert.InDelta(t, 65.0, r.ledger.products["P1"], 1e-9)
		assert.InDelta(t, 65.0, r.ledger.customers["C1"], 1e-9)
		assertConsistent(t, r)
	})

	t.Run("missing id is a no-op", func(t *testing.T) {
		r := newTestRepository(t)
		mustCreate(t, r, input("P1", "C1", 1, 10))

		_, err := r.Update(ctx, 42, entity.TransactionInput{ProductID: entity.Some("P2")})

		assert.ErrorIs(t, err, errs.ErrTransactionNotFound)
		assert.Equal(t, 1, r.Stats().Records)
		assertConsistent(t, r)
	})

	t.Run("invalid result leaves state untouched", func(t *testing.T) {
		r := newTestRepository(t)
		tx := mustCreate(t, r, input("P1", "C1", 1, 10))

		_, err := r.Update(ctx, tx.ID, entity.TransactionInput{ProductID: entity.Some("P2"), Quantity: entity.Some(int64(0))})

		assert.ErrorIs(t, err, errs.ErrValidation)
		got, _ := r.GetByID(ctx, tx.ID)
		assert.Equal(t, "P1", got.ProductID)
		assertConsistent(t, r)
	})
}

func TestTransactionRepository_Delete(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)
	first := mustCreate(t, r, input("P1", "C1", 1, 10))
	second := mustCreate(t, r, input("P1", "C2", 1, 15))
	sole := mustCreate(t, r, input("P2", "C2", 1, 25))

	deleted, err := r.Delete(ctx, sole.ID)
	require.NoError(t, err)
	assert.Equal(t, sole, deleted)

	assert.NotContains(t, r.ledger.products, "P2")
	assert.NotContains(t, r.index.products, "P2")
	assert.InDelta(t, 15.0, r.ledger.customers["C2"], 1e-9)
	assertConsistent(t, r)

	page, err := r.List(ctx, entity.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Count)
	assert.Equal(t, []int64{first.ID, second.ID}, ids(page.Transactions))

	_, err = r.Delete(ctx, sole.ID)
	assert.ErrorIs(t, err, errs.ErrTransactionNotFound, "second delete must fail")

	next := mustCreate(t, r, input("P3", "C3", 1, 1))
	assert.Equal(t, int64(4), next.ID, "ids are never reused")
	assertConsistent(t, r)
}

func TestTransactionRepository_ZeroTotalsArePruned(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	free := mustCreate(t, r, input("FREE", "C1", 5, 0))

	products, err := r.ProductTotals(ctx)
	require.NoError(t, err)
	assert.Empty(t, products, "a product with only zero-priced sales is absent from the ledger")
	assert.Contains(t, r.index.products, "FREE", "the index still lists the record")

	_, err = r.Update(ctx, free.ID, entity.TransactionInput{Price: entity.Some(2.0)})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, r.ledger.products["FREE"], 1e-9)
	assertConsistent(t, r)
}

func TestTransactionRepository_RejectsNonFiniteTotals(t *testing.T) {
	r := newTestRepository(t)
	ctx := context.Background()
	live := mustCreate(t, r, input("P1", "C1", 10, 1e307))

	t.Run("Create", func(t *testing.T) {
		_, err := r.Create(ctx, input("P1", "C1", 10, 1e308))
		require.ErrorIs(t, err, errs.ErrValidation)
		assert.Equal(t, []string{entity.TotalNotFiniteMessage}, errs.Violations(err))
	})

	t.Run("Update", func(t *testing.T) {
		_, err := r.Update(ctx, live.ID, entity.TransactionInput{Price: entity.Some(math.MaxFloat64)})
		require.ErrorIs(t, err, errs.ErrValidation)

		stored, err := r.GetByID(ctx, live.ID)
		require.NoError(t, err)
		assert.Equal(t, 1e307, stored.Price)
	})

	assert.Equal(t, 1, r.Stats().Records)
	totals, err := r.ProductTotals(ctx)
	require.NoError(t, err)
	require.Len(t, totals, 1)
	assert.False(t, math.IsInf(totals[0].Total, 0) || math.IsNaN(totals[0].Total))
	assertConsistent(t, r)
}

func TestLedger_NaNIsPruned(t *testing.T) {
	l := newLedger()
	l.add("P1", "C1", math.Inf(1))
	l.subtract("P1", "C1", math.Inf(1), true, true)

	assert.Empty(t, l.products)
	assert.Empty(t, l.customers)
}

func TestTransactionRepository_FloatResidueIsPruned(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	a := mustCreate(t, r, input("P1", "C1", 1, 0.1))
	b := mustCreate(t, r, input("P1", "C1", 1, 0.2))
	_, err := r.Delete(ctx, a.ID)
	require.NoError(t, err)
	_, err = r.Delete(ctx, b.ID)
	require.NoError(t, err)

	assert.Empty(t, r.ledger.products)
	assert.Empty(t, r.ledger.customers)
}

func TestTransactionRepository_RandomOperationsKeepInvariants(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)
	rng := rand.New(rand.NewSource(1))
	var live []int64

	for step := 0; step < 2000; step++ {
		switch op := rng.Intn(10); {
		case op < 5 || len(live) == 0:
			tx := mustCreate(t, r, input(
				fmt.Sprintf("P%d", rng.Intn(8)),
				fmt.Sprintf("C%d", rng.Intn(12)),
				int64(1+rng.Intn(5)),
				float64(rng.Intn(2500))/100,
			))
			live = append(live, tx.ID)
		case op < 8:
			id := live[rng.Intn(len(live))]
			patch := entity.TransactionInput{}
			if rng.Intn(2) == 0 {
				patch.ProductID = entity.Some(fmt.Sprintf("P%d", rng.Intn(8)))
			}
			if rng.Intn(2) == 0 {
				patch.CustomerID = entity.Some(fmt.Sprintf("C%d", rng.Intn(12)))
			}
			if rng.Intn(2) == 0 {
				patch.Price = entity.Some(float64(rng.Intn(2500)) / 100)
			}
			_, err := r.Update(ctx, id, patch)
			require.NoError(t, err)
		default:
			i := rng.Intn(len(live))
			_, err := r.Delete(ctx, live[i])
			require.NoError(t, err)
			live = append(live[:i], live[i+1:]...)
		}

		if step%100 == 0 {
			assertConsistent(t, r)
		}
	}
	assertConsistent(t, r)
	assert.Equal(t, len(live), r.Stats().Records)
}

func TestTransactionRepository_ConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	r := newTestRepository(t)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				tx, err := r.Create(ctx, input(fmt.Sprintf("P%d", i%5), fmt.Sprintf("C%d", worker), 1, 2))
				if err != nil {
					t.Error(err)
					return
				}
				if i%3 == 0 {
					if _, err := r.Update(ctx, tx.ID, entity.TransactionInput{ProductID: entity.Some("MOVED")}); err != nil {
						t.Error(err)
					}
				}
				if i%4 == 0 {
					if _, err := r.Delete(ctx, tx.ID); err != nil {
						t.Error(err)
					}
				}
				_, _ = r.TopCustomers(ctx, 3)
				_, _ = r.ProductTotals(ctx)
				_, _ = r.List(ctx, entity.TransactionFilter{ProductID: "MOVED"})
			}
		}(w)
	}
	wg.Wait()

	assertConsistent(t, r)
	assert.Equal(t, 8*150, r.Stats().Records)
}

func ids(txs []entity.Transaction) []int64 {
	out := make([]int64, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.ID)
	}
	return out
}
