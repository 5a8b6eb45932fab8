package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankmerge-dev/bankmerge/internal/model"
)

// BankBParser parses BankB exports: date,transaction,details,amounts.
// The amount column is an unsigned magnitude; the transaction column
// carries the operation (remove = debit, add = credit).
type BankBParser struct{}

const (
	bankBDateFormat = "02-01-2006"
	bankBNumFields  = 4
	bankBColDate    = 0
	bankBColOp      = 1
	bankBColDesc    = 2
	bankBColAmount  = 3
)

// Bank returns the bank tag.
func (p *BankBParser) Bank() string { return "BankB" }

// Parse reads a BankB CSV and returns unified transactions.
func (p *BankBParser) Parse(r io.Reader) ([]model.Transaction, []RowError, error) {
	return parseRows(r, p.Bank(), bankBNumFields, p.convert)
}

func (p *BankBParser) convert(rec []string) (model.Transaction, error) {
	date, err := time.Parse(bankBDateFormat, rec[bankBColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[bankBColDate], err)
	}

	amount, err := decimal.NewFromString(rec[bankBColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[bankBColAmount], err)
	}

	amount, err = applySign(amount, rec[bankBColOp])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Date:        date,
		Description: strings.TrimSpace(rec[bankBColDesc]),
		Amount:      amount,
		SourceBank:  p.Bank(),
	}, nil
}

// applySign turns an unsigned magnitude plus a remove/add operation token
// into a signed amount. The magnitude must not carry its own sign, so a
// doubly-signed row cannot flip direction silently.
func applySign(amount decimal.Decimal, op string) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("amount %s must not carry its own sign", amount)
	}
	switch strings.TrimSpace(op) {
	case "remove":
		return amount.Neg(), nil
	case "add":
		return amount, nil
	default:
		return decimal.Decimal{}, fmt.Errorf("unknown operation %q", op)
	}
}
