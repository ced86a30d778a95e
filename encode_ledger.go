package cashbook

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/renameio/v2"
	"github.com/shopspring/decimal"
)

// header is the first row of every ledger file.
var header = []string{"id", "type", "description", "value"}

// ErrBadHeader is returned when a ledger file does not start with the
// expected header row.
var ErrBadHeader = errors.New("unexpected ledger header")

// UnknownKindError reports a row whose type is neither "Income" nor "Expense".
type UnknownKindError struct {
	Line int    // Line is the 1-based line of the row in the file.
	Tag  string // Tag is the type found in the row.
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("line %d: unknown transaction type %q", e.Line, e.Tag)
}

// InvalidRowError reports a row that does not hold a valid transaction. Err
// is the validation error, e.g. ErrEmptyDescription or ErrDuplicateID.
type InvalidRowError struct {
	Line int // Line is the 1-based line of the row in the file.
	Err  error
}

func (e *InvalidRowError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *InvalidRowError) Unwrap() error { return e.Err }

// DecodeOptions tunes how a ledger file is decoded.
type DecodeOptions struct {
	// CoerceUnknownKind reads rows with an unknown type as expenses instead of
	// failing with an *UnknownKindError.
	CoerceUnknownKind bool
	// DropInvalid skips rows that would fail with an *InvalidRowError.
	DropInvalid bool
	// Logger, if set, receives a warning for every coerced or dropped row.
	Logger *log.Logger
}

func (o DecodeOptions) warn(msg string, keyvals ...any) {
	if o.Logger != nil {
		o.Logger.Warn(msg, keyvals...)
	}
}

// EncodeLedger writes the header and then one row per record, in the given
// order, in CSV format.
func EncodeLedger(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range records {
		value, err := valueDecimal(r.Value)
		if err != nil {
			return fmt.Errorf("transaction %d: %w", r.ID, err)
		}
		row := []string{strconv.Itoa(r.ID), r.Kind.String(), r.Description, value.String()}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write transaction %d: %w", r.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// DecodeLedger reads a ledger in CSV format and returns it. Records keep the
// id found in the file and the ledger resumes numbering after the largest one.
//
// A row with an unknown type fails with an *UnknownKindError, any other invalid
// row with an *InvalidRowError.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	return DecodeLedgerWith(r, DecodeOptions{})
}

// DecodeLedgerWith is like DecodeLedger with options.
func DecodeLedgerWith(r io.Reader, opts DecodeOptions) (*Ledger, error) {
	cr := csv.NewReader(r)
	// the header is checked as a whole, rows must then have as many fields.
	cr.FieldsPerRecord = -1

	first, err := cr.Read()
	if err == io.EOF {
		// An empty file is an empty ledger.
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}
	if len(first) > 0 {
		first[0] = strings.TrimPrefix(first[0], "\ufeff")
	}
	if !slices.Equal(first, header) {
		return nil, fmt.Errorf("%w: got %q, want %q", ErrBadHeader, strings.Join(first, ","), strings.Join(header, ","))
	}
	cr.FieldsPerRecord = len(header)

	var records []Record
	seen := make(map[int]int)
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading from input: %w", err)
		}
		line, _ := cr.FieldPos(0)
		rec, err := decodeRow(row, line, opts)
		if err == nil {
			if first, dup := seen[rec.ID]; dup {
				err = &InvalidRowError{Line: line, Err: fmt.Errorf("%w %d, first seen line %d", ErrDuplicateID, rec.ID, first)}
			}
		}
		var rowErr *InvalidRowError
		if errors.As(err, &rowErr) && opts.DropInvalid {
			opts.warn("invalid transaction dropped", "line", line, "err", rowErr.Err)
			continue
		}
		if err != nil {
			return nil, err
		}
		seen[rec.ID] = line
		records = append(records, rec)
	}

	ledger, err := Restore(records)
	if err != nil {
		return nil, fmt.Errorf("invalid ledger: %w", err)
	}
	return ledger, nil
}

func decodeRow(row []string, line int, opts DecodeOptions) (Record, error) {
	id, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return Record{}, &InvalidRowError{Line: line, Err: fmt.Errorf("invalid id %q: %w", row[0], err)}
	}

	kind, ok := kindFromTag(row[1])
	if !ok {
		if !opts.CoerceUnknownKind {
			return Record{}, &UnknownKindError{Line: line, Tag: row[1]}
		}
		opts.warn("unknown transaction type read as expense", "line", line, "id", id, "type", row[1])
		kind = Expense
	}

	value, err := decimal.NewFromString(strings.TrimSpace(row[3]))
	if err != nil {
		return Record{}, &InvalidRowError{Line: line, Err: fmt.Errorf("transaction %d: %w: %q", id, ErrNonNumericValue, row[3])}
	}

	rec := Record{
		ID:          id,
		Kind:        kind,
		Description: row[2],
		Value:       value.InexactFloat64(),
	}
	if err := rec.check(); err != nil {
		return Record{}, &InvalidRowError{Line: line, Err: fmt.Errorf("transaction %d: %w", id, err)}
	}
	return rec, nil
}

// SaveLedger replaces the file at path with the records in CSV format.
//
// The records are written to a temporary file next to path which is then
// renamed over it, so on failure the previous content of path is intact.
func SaveLedger(path string, records []Record) error {
	f, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("error opening ledger file %q for writing: %w", path, err)
	}
	defer f.Cleanup()

	if err := EncodeLedger(f, records); err != nil {
		return fmt.Errorf("error writing ledger file %q: %w", path, err)
	}
	if err := f.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("error replacing ledger file %q: %w", path, err)
	}
	return nil
}

// LoadLedger reads the ledger file at path.
//
// If the file does not exist the error matches fs.ErrNotExist and nothing is
// created.
func LoadLedger(path string) (*Ledger, error) {
	return LoadLedgerWith(path, DecodeOptions{})
}

// LoadLedgerWith is like LoadLedger with decoding options.
func LoadLedgerWith(path string, opts DecodeOptions) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file: %w", err)
	}
	defer f.Close()

	ledger, err := DecodeLedgerWith(f, opts)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return ledger, nil
}
