// Package renderer turns ledger records and reports into markdown documents.
package renderer

import (
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// valueFormatter prints values with two decimals and a thousands separator,
// without any currency sign.
var valueFormatter = money.NewFormatter(2, ".", ",", "", "1")

// maxCents bounds the values that fit the int64 cents the formatter works with.
const maxCents = 1e17

// Value formats a value for display, e.g. 3012.5 as "3,012.50".
func Value(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	cents := decimal.NewFromFloat(v).Shift(2).Round(0)
	if math.Abs(cents.InexactFloat64()) >= maxCents {
		return decimal.NewFromFloat(v).StringFixed(2)
	}
	return valueFormatter.Format(cents.IntPart())
}

// cell escapes text for use in a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
