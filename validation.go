package cashbook

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors. They are always wrapped with the offending input, use
// errors.Is to test for them.
var (
	ErrEmptyDescription = errors.New("empty description")
	ErrNonNumericValue  = errors.New("value is not a number")
	ErrNonPositiveValue = errors.New("value must be greater than zero")
	ErrInvalidKind      = errors.New("kind must be income or expense")
	ErrImmutableField   = errors.New("field cannot be updated")
	ErrUnknownField     = errors.New("unknown field")
)

// lineBreaks rewrites CRLF and lone CR line breaks as LF, the only line
// break a CSV reader gives back inside a quoted field.
var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ValidateDescription trims raw, normalizes its line breaks to "\n" and returns
// it, or ErrEmptyDescription if nothing is left.
func ValidateDescription(raw string) (string, error) {
	d := strings.TrimSpace(lineBreaks.Replace(raw))
	if d == "" {
		return "", ErrEmptyDescription
	}
	return d, nil
}

// ValidateValue parses raw as a decimal number and returns it if it is
// strictly positive.
//
// "NaN" and "Inf" are not numbers, and neither is a literal too large to fit
// a float64.
func ValidateValue(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNonNumericValue, raw)
	}
	v := d.InexactFloat64()
	if math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrNonNumericValue, raw)
	}
	// a tiny positive literal can still round to zero.
	if !d.IsPositive() || v <= 0 {
		return 0, fmt.Errorf("%w, got %s", ErrNonPositiveValue, s)
	}
	return v, nil
}

// Field names a Record field that can be updated.
type Field int

const (
	FieldDescription Field = iota + 1
	FieldValue
)

func (f Field) String() string {
	switch f {
	case FieldDescription:
		return "description"
	case FieldValue:
		return "value"
	default:
		return "unknown"
	}
}

// ParseField parses the name of an updatable field. The id and the kind of a
// record are fixed at creation and are rejected with ErrImmutableField.
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "description":
		return FieldDescription, nil
	case "value":
		return FieldValue, nil
	case "id", "kind", "type":
		return 0, fmt.Errorf("%w: %q", ErrImmutableField, s)
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}
