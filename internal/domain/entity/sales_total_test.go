package entity

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedSalesTotals(t *testing.T) {
	totals := map[string]float64{"P1": 20, "P2": 25, "P3": 5, "P0": 20}

	sorted := SortedSalesTotals(totals)

	assert.Equal(t, []SalesTotal{
		{Key: "P2", Total: 25},
		{Key: "P0", Total: 20},
		{Key: "P1", Total: 20},
		{Key: "P3", Total: 5},
	}, sorted)
}

func TestTopSalesTotals(t *testing.T) {
	t.Run("Non-positive n", func(t *testing.T) {
		assert.Empty(t, TopSalesTotals(map[string]float64{"C1": 1}, 0))
		assert.Empty(t, TopSalesTotals(map[string]float64{"C1": 1}, -3))
	})

	t.Run("n larger than map", func(t *testing.T) {
		top := TopSalesTotals(map[string]float64{"C1": 45, "C2": 40}, 5)
		assert.Equal(t, []SalesTotal{{Key: "C1", Total: 45}, {Key: "C2", Total: 40}}, top)
	})

	t.Run("Matches a full sort", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		totals := make(map[string]float64, 500)
		for i := 0; i < 500; i++ {
			// Coarse values force ties so the key tiebreak is exercised too
			totals[fmt.Sprintf("C%d", i)] = float64(rng.Intn(50))
		}

		for _, n := range []int{1, 3, 10, 100, 499} {
			assert.Equal(t, SortedSalesTotals(totals)[:n], TopSalesTotals(totals, n), "n=%d", n)
		}
	})
}

func TestRoundMoney(t *testing.T) {
	testCases := []struct {
		input    float64
		expected float64
	}{
		{3 * 49.99, 149.97},
		{0.1 + 0.2, 0.3},
		{2.675, 2.68},
		{1.005, 1.01},
		{-1.005, -1.01},
		{0, 0},
		{45, 45},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v", tc.input), func(t *testing.T) {
			assert.Equal(t, tc.expected, RoundMoney(tc.input))
		})
	}

	assert.Equal(t, 0.123457, RoundTo(0.1234567, 6))
}

func TestRoundMoney_NonFinite(t *testing.T) {
	assert.NotPanics(t, func() {
		assert.True(t, math.IsInf(RoundMoney(math.Inf(1)), 1))
		assert.True(t, math.IsInf(RoundMoney(math.Inf(-1)), -1))
		assert.True(t, math.IsNaN(RoundMoney(math.NaN())))
	})
}
