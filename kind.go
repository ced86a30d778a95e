package cashbook

import (
	"fmt"
	"strings"
)

// Kind tells an income record from an expense record.
type Kind int

const (
	// Income is money coming in.
	Income Kind = iota + 1
	// Expense is money going out.
	Expense
)

// String returns the tag used for the kind in the ledger file.
func (k Kind) String() string {
	switch k {
	case Income:
		return "Income"
	case Expense:
		return "Expense"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return k == Income || k == Expense }

// ParseKind parses a user supplied kind selector. It accepts "income", "i" and
// "+" for Income, "expense", "e" and "-" for Expense, ignoring case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "i", "+":
		return Income, nil
	case "expense", "e", "-":
		return Expense, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidKind, s)
	}
}

// kindFromTag resolves the exact tag found in a ledger file.
func kindFromTag(tag string) (Kind, bool) {
	switch tag {
	case "Income":
		return Income, true
	case "Expense":
		return Expense, true
	default:
		return 0, false
	}
}
