package cashbook

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

var (
	// ErrNotFound is returned when no record carries the requested id.
	ErrNotFound = errors.New("transaction not found")
	// ErrDuplicateID is returned when restoring records that share an id.
	ErrDuplicateID = errors.New("duplicate transaction id")
)

// DeleteResult is the outcome of a delete request that found its record.
type DeleteResult int

const (
	// Deleted means the record was removed from the ledger.
	Deleted DeleteResult = iota + 1
	// Cancelled means the caller did not confirm, the ledger is unchanged.
	Cancelled
)

func (r DeleteResult) String() string {
	switch r {
	case Deleted:
		return "deleted"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Ledger represents the list of records and the generator of their ids.
//
// In a Ledger records are always in creation order. A Ledger is not safe for
// concurrent use.
type Ledger struct {
	records []Record
	nextID  int
}

// NewLedger creates an empty ledger whose first record will get id 1.
func NewLedger() *Ledger {
	return &Ledger{
		records: make([]Record, 0),
		nextID:  1,
	}
}

// Restore creates a ledger holding records, in that order, as read back from
// persisted state. Ids are kept as is and the next id is one past the largest.
func Restore(records []Record) (*Ledger, error) {
	l := NewLedger()
	seen := make(map[int]struct{}, len(records))
	for _, r := range records {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("transaction %d: %w", r.ID, ErrDuplicateID)
		}
		seen[r.ID] = struct{}{}
		if err := r.check(); err != nil {
			return nil, fmt.Errorf("transaction %d: %w", r.ID, err)
		}
		l.records = append(l.records, r)
		l.nextID = max(l.nextID, r.ID+1)
	}
	return l, nil
}

// check verifies the invariants of a record that did not go through the
// validators. The description is not trimmed, only checked.
func (r Record) check() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidKind, r.Kind)
	}
	if strings.TrimSpace(r.Description) == "" {
		return ErrEmptyDescription
	}
	if _, err := valueDecimal(r.Value); err != nil {
		return err
	}
	if r.Value <= 0 {
		return fmt.Errorf("%w, got %v", ErrNonPositiveValue, r.Value)
	}
	return nil
}

// Create appends a new record with the next id and returns it.
//
// description and value must have been validated already, see Add for the
// validated path.
func (l *Ledger) Create(kind Kind, description string, value float64) Record {
	r := Record{ID: l.nextID, Kind: kind, Description: description, Value: value}
	l.nextID++
	l.records = append(l.records, r)
	return r
}

// Add validates the raw description and value and records a new transaction.
// On error the ledger is left untouched.
func (l *Ledger) Add(kind Kind, description, value string) (Record, error) {
	if !kind.Valid() {
		return Record{}, fmt.Errorf("%w: %v", ErrInvalidKind, kind)
	}
	d, err := ValidateDescription(description)
	if err != nil {
		return Record{}, err
	}
	v, err := ValidateValue(value)
	if err != nil {
		return Record{}, err
	}
	return l.Create(kind, d, v), nil
}

// index returns the position of the record with this id, or -1.
func (l *Ledger) index(id int) int {
	return slices.IndexFunc(l.records, func(r Record) bool { return r.ID == id })
}

// Find returns the record with this id.
func (l *Ledger) Find(id int) (Record, error) {
	i := l.index(id)
	if i < 0 {
		return Record{}, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	return l.records[i], nil
}

// Update changes the description or the value of the record with this id, and
// returns the updated record. raw goes through the same validation as Add, if
// it fails the record is left as it was.
func (l *Ledger) Update(id int, field Field, raw string) (Record, error) {
	i := l.index(id)
	if i < 0 {
		return Record{}, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	r := l.records[i]
	switch field {
	case FieldDescription:
		d, err := ValidateDescription(raw)
		if err != nil {
			return Record{}, err
		}
		r.Description = d
	case FieldValue:
		v, err := ValidateValue(raw)
		if err != nil {
			return Record{}, err
		}
		r.Value = v
	default:
		return Record{}, fmt.Errorf("%w: %v", ErrUnknownField, field)
	}
	l.records[i] = r
	return r, nil
}

// Delete removes the record with this id if confirmed is true. Without
// confirmation it returns Cancelled and does nothing.
func (l *Ledger) Delete(id int, confirmed bool) (DeleteResult, error) {
	i := l.index(id)
	if i < 0 {
		return 0, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	if !confirmed {
		return Cancelled, nil
	}
	l.records = slices.Delete(l.records, i, i+1)
	return Deleted, nil
}

// Len returns the number of records.
func (l *Ledger) Len() int { return len(l.records) }

// NextID returns the id the next created record will get.
func (l *Ledger) NextID() int { return l.nextID }

// List returns a copy of all the records in creation order.
func (l *Ledger) List() []Record { return slices.Clone(l.records) }

// ByKind returns the records of this kind in creation order.
func (l *Ledger) ByKind(kind Kind) []Record { return l.Select(KindIs(kind)) }

// Select returns a copy of the records accepted by filter, in creation order.
func (l *Ledger) Select(filter func(Record) bool) []Record {
	out := make([]Record, 0)
	for _, r := range l.Transactions(filter) {
		out = append(out, r)
	}
	return out
}

// Transactions returns an iterator over the records accepted by at least one
// of the filters, in creation order. Without filters every record is yielded.
func (l *Ledger) Transactions(filters ...func(Record) bool) iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		for i, r := range l.records {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(r) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, r) {
				return
			}
		}
	}
}

// AcceptAll is a filter that accepts every record.
func AcceptAll(Record) bool { return true }

// KindIs returns a predicate that filters records by kind.
func KindIs(kind Kind) func(Record) bool {
	return func(r Record) bool { return r.Kind == kind }
}
