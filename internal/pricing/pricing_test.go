package pricing_test

import (
	"testing"

	"github.com/Muashef/audiophile-ecommerce/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {

	t.Run("Reference Cart", func(t *testing.T) {
		// 2 x 100 -> subtotal 200, tax 20, shipping 50, total 270
		totals := pricing.ComputeTotals([]pricing.Line{
			{Price: 100, Quantity: 2},
		})

		assert.Equal(t, 200.0, totals.Subtotal)
		assert.Equal(t, 50.0, totals.Shipping)
		assert.Equal(t, 20.0, totals.Tax)
		assert.Equal(t, 270.0, totals.Total)
	})

	t.Run("Tax Rounds Half Up", func(t *testing.T) {
		// subtotal 125 -> 10% = 12.5, stays 12.5; subtotal 1.25 -> 0.125
		// rounds up to 0.13
		totals := pricing.ComputeTotals([]pricing.Line{
			{Price: 1.25, Quantity: 1},
		})

		assert.Equal(t, 1.25, totals.Subtotal)
		assert.Equal(t, 0.13, totals.Tax)
		assert.Equal(t, 51.38, totals.Total)
	})

	t.Run("Empty Cart", func(t *testing.T) {
		totals := pricing.ComputeTotals(nil)

		assert.Equal(t, 0.0, totals.Subtotal)
		assert.Equal(t, 50.0, totals.Shipping)
		assert.Equal(t, 0.0, totals.Tax)
		assert.Equal(t, 50.0, totals.Total)
	})

	t.Run("Missing Price Or Quantity Counts As Zero", func(t *testing.T) {
		totals := pricing.ComputeTotals([]pricing.Line{
			{Price: 0, Quantity: 3},
			{Price: 30, Quantity: 0},
			{Price: 10, Quantity: 1},
		})

		assert.Equal(t, 10.0, totals.Subtotal)
		assert.Equal(t, 1.0, totals.Tax)
	})

	t.Run("Invariant Holds For Many Carts", func(t *testing.T) {
		carts := [][]pricing.Line{
			{{Price: 2999, Quantity: 1}},
			{{Price: 899, Quantity: 2}, {Price: 599, Quantity: 1}},
			{{Price: 4500, Quantity: 3}, {Price: 1750, Quantity: 2}, {Price: 599, Quantity: 5}},
			{{Price: 0.99, Quantity: 7}},
			{{Price: 123.45, Quantity: 9}},
		}

		for _, cart := range carts {
			totals := pricing.ComputeTotals(cart)

			assert.Equal(t, 50.0, totals.Shipping)
			assert.InDelta(t, totals.Subtotal+totals.Shipping+totals.Tax, totals.Total, 1e-9)
		}
	})
}

func TestMatches(t *testing.T) {
	totals := pricing.ComputeTotals([]pricing.Line{{Price: 100, Quantity: 2}})

	assert.True(t, pricing.Matches(totals, 200, 50, 20, 270))
	assert.True(t, pricing.Matches(totals, 200.0, 50.0, 20.004, 270.0), "sub-cent drift is tolerated")
	assert.False(t, pricing.Matches(totals, 100, 50, 20, 270))
	assert.False(t, pricing.Matches(totals, 200, 50, 20, 300))
}
