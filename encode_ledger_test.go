package cashbook

import (
	"bytes"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func TestEncodeLedger(t *testing.T) {
	records := []Record{
		{ID: 1, Kind: Expense, Description: "Coffee", Value: 12.5},
		{ID: 2, Kind: Income, Description: "Salary", Value: 3000},
		{ID: 3, Kind: Expense, Description: `Dinner, "Chez Paul"`, Value: 0.1},
	}
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, records); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	want := `id,type,description,value
1,Expense,Coffee,12.5
2,Income,Salary,3000
3,Expense,"Dinner, ""Chez Paul""",0.1
`
	if got := buf.String(); got != want {
		t.Errorf("EncodeLedger() =\n%s\nwant:\n%s", got, want)
	}
}

func TestEncodeLedger_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, nil); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}
	if got, want := buf.String(), "id,type,description,value\n"; got != want {
		t.Errorf("EncodeLedger() = %q, want %q", got, want)
	}
}

func TestDecodeLedger(t *testing.T) {
	input := `id,type,description,value
1,Expense,Coffee,12.50
2,Income,Salary,3000.00
5,Expense,"multi
line",7
`
	ledger, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	want := []Record{
		{ID: 1, Kind: Expense, Description: "Coffee", Value: 12.5},
		{ID: 2, Kind: Income, Description: "Salary", Value: 3000},
		{ID: 5, Kind: Expense, Description: "multi\nline", Value: 7},
	}
	if diff := cmp.Diff(want, ledger.List()); diff != "" {
		t.Errorf("DecodeLedger() mismatch (-want +got):\n%s", diff)
	}
	if got := ledger.NextID(); got != 6 {
		t.Errorf("NextID() = %d, want 6", got)
	}
	if r := ledger.Create(Income, "Bonus", 100); r.ID != 6 {
		t.Errorf("Create() after decode id = %d, want 6", r.ID)
	}
}

func TestDecodeLedger_Empty(t *testing.T) {
	for _, input := range []string{"", "id,type,description,value\n", "\ufeffid,type,description,value\n"} {
		ledger, err := DecodeLedger(strings.NewReader(input))
		if err != nil {
			t.Fatalf("DecodeLedger(%q) error = %v", input, err)
		}
		if ledger.Len() != 0 || ledger.NextID() != 1 {
			t.Errorf("DecodeLedger(%q) = %d records, next id %d, want an empty ledger", input, ledger.Len(), ledger.NextID())
		}
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		wantErr error
	}{
		{
			name:    "bad header",
			input:   "id,kind,description,value\n1,Expense,Coffee,1\n",
			wantErr: ErrBadHeader,
		},
		{
			name:    "short header",
			input:   "id,type\n",
			wantErr: ErrBadHeader,
		},
		{
			name:    "not a number",
			input:   "id,type,description,value\n1,Expense,Coffee,abc\n",
			wantErr: ErrNonNumericValue,
		},
		{
			name:    "negative value",
			input:   "id,type,description,value\n1,Expense,Coffee,-3\n",
			wantErr: ErrNonPositiveValue,
		},
		{
			name:    "duplicate id",
			input:   "id,type,description,value\n1,Expense,Coffee,1\n1,Income,Salary,2\n",
			wantErr: ErrDuplicateID,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.input)); !errors.Is(err, tc.wantErr) {
				t.Errorf("DecodeLedger() error = %v, want %v", err, tc.wantErr)
			}
		})
	}

	t.Run("invalid id", func(t *testing.T) {
		if _, err := DecodeLedger(strings.NewReader("id,type,description,value\none,Expense,Coffee,1\n")); err == nil {
			t.Error("DecodeLedger() with a non integer id should fail")
		}
	})

	t.Run("missing field", func(t *testing.T) {
		if _, err := DecodeLedger(strings.NewReader("id,type,description,value\n1,Expense,1\n")); err == nil {
			t.Error("DecodeLedger() with a missing field should fail")
		}
	})
}

func TestDecodeLedger_UnknownKind(t *testing.T) {
	input := "id,type,description,value\n1,Expense,Coffee,1\n2,income,Salary,2\n"

	_, err := DecodeLedger(strings.NewReader(input))
	var kindErr *UnknownKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("DecodeLedger() error = %v, want an *UnknownKindError", err)
	}
	if kindErr.Line != 3 || kindErr.Tag != "income" {
		t.Errorf("UnknownKindError = %+v, want line 3 and tag %q", kindErr, "income")
	}

	var logs bytes.Buffer
	ledger, err := DecodeLedgerWith(strings.NewReader(input), DecodeOptions{
		CoerceUnknownKind: true,
		Logger:            log.New(&logs),
	})
	if err != nil {
		t.Fatalf("DecodeLedgerWith(coerce) error = %v", err)
	}
	r, err := ledger.Find(2)
	if err != nil {
		t.Fatalf("Find(2) error = %v", err)
	}
	if r.Kind != Expense {
		t.Errorf("coerced kind = %v, want %v", r.Kind, Expense)
	}
	if !strings.Contains(logs.String(), "unknown transaction type") {
		t.Errorf("expected a warning for the coerced row, got logs %q", logs.String())
	}
}

func TestDecodeLedger_InvalidRow(t *testing.T) {
	input := `id,type,description,value
1,Expense,Coffee,12.5
2,Income," ",3000
3,Expense,Rent,0
x,Expense,Tea,2
4,Expense,Book,many
1,Income,Refund,5
5,Income,Gift,50
`
	_, err := DecodeLedger(strings.NewReader(input))
	var rowErr *InvalidRowError
	if !errors.As(err, &rowErr) {
		t.Fatalf("DecodeLedger() error = %v, want an *InvalidRowError", err)
	}
	if rowErr.Line != 3 || !errors.Is(err, ErrEmptyDescription) {
		t.Errorf("DecodeLedger() error = %v, want line 3 and %v", err, ErrEmptyDescription)
	}

	var logs bytes.Buffer
	ledger, err := DecodeLedgerWith(strings.NewReader(input), DecodeOptions{
		DropInvalid: true,
		Logger:      log.New(&logs),
	})
	if err != nil {
		t.Fatalf("DecodeLedgerWith(drop) error = %v", err)
	}
	want := []Record{
		{ID: 1, Kind: Expense, Description: "Coffee", Value: 12.5},
		{ID: 5, Kind: Income, Description: "Gift", Value: 50},
	}
	if diff := cmp.Diff(want, ledger.List()); diff != "" {
		t.Errorf("DecodeLedgerWith(drop) mismatch (-want +got):\n%s", diff)
	}
	if got := strings.Count(logs.String(), "invalid transaction dropped"); got != 5 {
		t.Errorf("expected 5 dropped row warnings, got %d in %q", got, logs.String())
	}
}

func TestSaveLoadLedger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	records := []Record{
		{ID: 1, Kind: Expense, Description: "Coffee", Value: 12.5},
		{ID: 2, Kind: Income, Description: "Salary", Value: 3000.0},
		{ID: 4, Kind: Expense, Description: " padded, with \"quotes\" ", Value: 1.0 / 3},
	}

	if err := SaveLedger(path, records); err != nil {
		t.Fatalf("SaveLedger() error = %v", err)
	}
	ledger, err := LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger() error = %v", err)
	}
	if diff := cmp.Diff(records, ledger.List()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// saving again fully replaces the file.
	if err := SaveLedger(path, records[:1]); err != nil {
		t.Fatalf("SaveLedger() error = %v", err)
	}
	ledger, err = LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger() error = %v", err)
	}
	if diff := cmp.Diff(records[:1], ledger.List()); diff != "" {
		t.Errorf("second save mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadLedger_LineBreaks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	l := NewLedger()
	for _, d := range []string{"Rent\r\nMarch", "Gift\rfrom Ann", "multi\nline"} {
		if _, err := l.Add(Expense, d, "1"); err != nil {
			t.Fatalf("Add(%q) error = %v", d, err)
		}
	}

	if err := SaveLedger(path, l.List()); err != nil {
		t.Fatalf("SaveLedger() error = %v", err)
	}
	loaded, err := LoadLedger(path)
	if err != nil {
		t.Fatalf("LoadLedger() error = %v", err)
	}
	if diff := cmp.Diff(l.List(), loaded.List()); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestSaveLedger_FailureKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	good := []Record{{ID: 1, Kind: Expense, Description: "Coffee", Value: 12.5}}
	if err := SaveLedger(path, good); err != nil {
		t.Fatalf("SaveLedger() error = %v", err)
	}
	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	bad := append(good, Record{ID: 2, Kind: Income, Description: "Broken", Value: math.NaN()})
	if err := SaveLedger(path, bad); !errors.Is(err, ErrNonNumericValue) {
		t.Fatalf("SaveLedger() error = %v, want %v", err, ErrNonNumericValue)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(before, after) {
		t.Errorf("failed save changed the file:\nbefore %q\nafter  %q", before, after)
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("failed save left %d files behind, want 1", len(entries))
	}
}

func TestSaveLedger_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "transactions.csv")
	if err := SaveLedger(path, nil); err == nil {
		t.Error("SaveLedger() into a missing directory should fail")
	}
}

func TestLoadLedger_NotExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transactions.csv")
	_, err := LoadLedger(path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("LoadLedger() error = %v, want fs.ErrNotExist", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadLedger() must not create the file, Stat() error = %v", err)
	}
}
