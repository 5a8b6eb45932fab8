package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankmerge-dev/bankmerge/internal/model"
)

// BankCParser parses BankC exports: date_readable,type,reference,euro,cents.
// The amount is split across whole-euro and cents columns, both unsigned;
// the type column carries the operation (remove = debit, add = credit).
type BankCParser struct{}

const (
	bankCDateFormat = "2 Jan 2006"
	bankCNumFields  = 5
	bankCColDate    = 0
	bankCColOp      = 1
	bankCColDesc    = 2
	bankCColEuro    = 3
	bankCColCents   = 4
)

// Bank returns the bank tag.
func (p *BankCParser) Bank() string { return "BankC" }

// Parse reads a BankC CSV and returns unified transactions.
func (p *BankCParser) Parse(r io.Reader) ([]model.Transaction, []RowError, error) {
	return parseRows(r, p.Bank(), bankCNumFields, p.convert)
}

func (p *BankCParser) convert(rec []string) (model.Transaction, error) {
	date, err := time.Parse(bankCDateFormat, rec[bankCColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[bankCColDate], err)
	}

	euro, err := strconv.ParseInt(rec[bankCColEuro], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing euro %q: %w", rec[bankCColEuro], err)
	}
	if euro < 0 {
		return model.Transaction{}, fmt.Errorf("euro %d must not carry its own sign", euro)
	}

	cents, err := strconv.ParseInt(rec[bankCColCents], 10, 64)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing cents %q: %w", rec[bankCColCents], err)
	}
	if cents < 0 || cents > 99 {
		return model.Transaction{}, fmt.Errorf("cents %d out of range 0..99", cents)
	}

	amount := decimal.New(euro, 0).Add(decimal.New(cents, -2))
	amount, err = applySign(amount, rec[bankCColOp])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Date:        date,
		Description: strings.TrimSpace(rec[bankCColDesc]),
		Amount:      amount,
		SourceBank:  p.Bank(),
	}, nil
}
