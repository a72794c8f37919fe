// Package pricing computes the checkout totals. It is pure: no I/O, no
// state, identical input always yields identical output.
package pricing

import (
	"github.com/shopspring/decimal"
)

// ShippingFee is a flat fee, independent of cart contents.
const ShippingFee = 50

// TaxRate is applied to the subtotal and rounded half-up to two decimals.
var taxRate = decimal.RequireFromString("0.1")

// Line is the minimal shape totals are computed from. Zero-valued price or
// quantity contributes nothing to the subtotal.
type Line struct {
	Price    float64
	Quantity int
}

type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func ComputeTotals(lines []Line) Totals {

	subtotal := decimal.Zero

	for _, line := range lines {
		if line.Price <= 0 || line.Quantity <= 0 {
			continue
		}

		price := decimal.NewFromFloat(line.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	shipping := decimal.NewFromInt(ShippingFee)
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(shipping).Add(tax)

	return Totals{
		Subtotal: subtotal.InexactFloat64(),
		Shipping: shipping.InexactFloat64(),
		Tax:      tax.InexactFloat64(),
		Total:    total.InexactFloat64(),
	}
}

// Matches reports whether the submitted figures agree with t within one
// cent per field. Checkout payloads carry client-computed totals; anything
// further off than rounding noise is rejected.
func Matches(t Totals, subtotal, shipping, tax, total float64) bool {
	return withinCent(t.Subtotal, subtotal) &&
		withinCent(t.Shipping, shipping) &&
		withinCent(t.Tax, tax) &&
		withinCent(t.Total, total)
}

func withinCent(a, b float64) bool {
	diff := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Abs()

	return diff.LessThanOrEqual(decimal.RequireFromString("0.01"))
}
