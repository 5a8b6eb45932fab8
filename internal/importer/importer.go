package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bankmerge-dev/bankmerge/internal/model"
)

// ErrUnsupportedBank is returned when a bank tag has no registered parser.
var ErrUnsupportedBank = errors.New("unsupported bank type")

// Parser converts one bank's CSV export into unified Transactions.
//
// Parse returns the transactions for every well-formed data row, in source
// row order, plus a RowError for every data row it had to skip. The error
// return is reserved for structural failures (unreadable CSV, wrong column
// count) that invalidate the whole file.
type Parser interface {
	Parse(r io.Reader) ([]model.Transaction, []RowError, error)
	Bank() string
}

// RowError describes a single malformed data row that was skipped.
type RowError struct {
	Row int // 1-based line number of the row's first field; the header starts at line 1
	Err error
}

func (e RowError) Error() string { return fmt.Sprintf("row %d: %v", e.Row, e.Err) }

func (e RowError) Unwrap() error { return e.Err }

// Registry holds parsers keyed by bank tag.
type Registry struct {
	parsers map[string]Parser
	order   []string
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[string]Parser)}
}

// Register adds a parser. Panics on duplicate bank tag.
func (r *Registry) Register(p Parser) {
	key := p.Bank()
	if _, ok := r.parsers[key]; ok {
		panic("duplicate parser bank tag: " + key)
	}
	r.parsers[key] = p
	r.order = append(r.order, key)
}

// Resolve returns the parser for the bank tag. Lookup is exact and
// case-sensitive; the tag is echoed into the output's source_bank column,
// so accepting loose spellings would break the round-trip.
func (r *Registry) Resolve(bank string) (Parser, error) {
	p, ok := r.parsers[bank]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedBank, bank, strings.Join(r.Banks(), ", "))
	}
	return p, nil
}

// Banks returns the registered bank tags in registration order.
func (r *Registry) Banks() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&BankAParser{})
	r.Register(&BankBParser{})
	r.Register(&BankCParser{})
	r.Register(&UnifiedParser{})
	return r
}

// parseRows runs the shared header-skip/convert loop over a bank CSV.
// Structural problems fail the file; convert errors skip the row. Row
// numbers come from FieldPos so they track the file's physical lines
// even when an earlier field contains quoted newlines.
func parseRows(r io.Reader, bank string, numFields int, convert func(rec []string) (model.Transaction, error)) ([]model.Transaction, []RowError, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	var txns []model.Transaction
	var skipped []RowError
	header := true
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("reading %s CSV: %w", bank, err)
		}

		if header {
			header = false
			continue
		}

		line, _ := cr.FieldPos(0)
		txn, err := convert(rec)
		if err != nil {
			skipped = append(skipped, RowError{Row: line, Err: err})
			continue
		}
		txns = append(txns, txn)
	}
	return txns, skipped, nil
}
