package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/sales-analytics/internal/domain/entity"
)

func TestGenerateDataset_Deterministic(t *testing.T) {
	first := generateDataset(1000, 42)
	second := generateDataset(1000, 42)
	other := generateDataset(1000, 7)

	require.Len(t, first, 1000)
	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestGenerateDataset_Shape(t *testing.T) {
	for _, r := range generateDataset(5000, 42) {
		assert.Regexp(t, `^P\d{1,2}$`, r.productID)
		assert.Regexp(t, `^C\d{1,3}$`, r.customerID)
		assert.GreaterOrEqual(t, r.quantity, int64(1))
		assert.LessOrEqual(t, r.quantity, int64(5))
		assert.GreaterOrEqual(t, r.price, 5.0)
		assert.LessOrEqual(t, r.price, 250.0)
		assert.Equal(t, entity.RoundMoney(r.price), r.price)
	}
}

func TestAggregate(t *testing.T) {
	dataset := []benchmarkRecord{
		{productID: "P1", customerID: "C1", quantity: 1, price: 5},
		{productID: "P1", customerID: "C2", quantity: 3, price: 5},
		{productID: "P2", customerID: "C2", quantity: 5, price: 5},
	}

	products, customers := aggregate(dataset)

	assert.Equal(t, map[string]float64{"P1": 20, "P2": 25}, products)
	assert.Equal(t, map[string]float64{"C1": 5, "C2": 40}, customers)
}

func TestAggregate_MatchesRecordTotals(t *testing.T) {
	dataset := generateDataset(2000, 42)
	products, customers := aggregate(dataset)

	var sum, productSum, customerSum float64
	for _, r := range dataset {
		sum += r.total()
	}
	for _, v := range products {
		productSum += v
	}
	for _, v := range customers {
		customerSum += v
	}

	assert.InDelta(t, sum, productSum, 1e-6)
	assert.InDelta(t, sum, customerSum, 1e-6)
}

func TestSpeedup(t *testing.T) {
	assert.Equal(t, 4.0, speedup(2, 0.5))
	assert.Equal(t, 3.33, speedup(1, 0.3))
	assert.Equal(t, 0.0, speedup(1, 0))
}
