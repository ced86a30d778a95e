package cashbook

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Record is a single ledger entry.
//
// Records held by a Ledger always have a positive Value, a non blank
// Description and an ID that is unique in that Ledger.
type Record struct {
	ID          int
	Kind        Kind
	Description string
	Value       float64
}

// Equal reports whether both records carry the same id, kind, description and value.
func (r Record) Equal(o Record) bool {
	return r.ID == o.ID && r.Kind == o.Kind && r.Description == o.Description && r.Value == o.Value
}

// String returns a one line representation, e.g. "2. Income 3000 | Salary".
func (r Record) String() string {
	return fmt.Sprintf("%d. %s %s | %s", r.ID, r.Kind, formatValue(r.Value), r.Description)
}

// MarshalJSON implements the json.Marshaler interface for Record.
// Keys are always written in the ledger file column order.
func (r Record) MarshalJSON() ([]byte, error) {
	value, err := valueDecimal(r.Value)
	if err != nil {
		return nil, err
	}
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("type", r.Kind.String())
	w.Append("description", r.Description)
	w.Append("value", value)
	return w.MarshalJSON()
}

// valueDecimal converts a value to its shortest exact decimal form.
func valueDecimal(v float64) (decimal.Decimal, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrNonNumericValue, v)
	}
	return decimal.NewFromFloat(v), nil
}

// formatValue is the lossless textual form of a value.
func formatValue(v float64) string {
	d, err := valueDecimal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return d.String()
}
