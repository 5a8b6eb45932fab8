package importer

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankmerge-dev/bankmerge/internal/model"
)

// BankAParser parses BankA exports: timestamp,description,amount.
// Amounts arrive already signed, debits negative.
type BankAParser struct{}

const (
	bankADateFormat = "Jan 2 2006"
	bankANumFields  = 3
	bankAColDate    = 0
	bankAColDesc    = 1
	bankAColAmount  = 2
)

// Bank returns the bank tag.
func (p *BankAParser) Bank() string { return "BankA" }

// Parse reads a BankA CSV and returns unified transactions.
func (p *BankAParser) Parse(r io.Reader) ([]model.Transaction, []RowError, error) {
	return parseRows(r, p.Bank(), bankANumFields, p.convert)
}

func (p *BankAParser) convert(rec []string) (model.Transaction, error) {
	date, err := time.Parse(bankADateFormat, rec[bankAColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec[bankAColDate], err)
	}

	amount, err := decimal.NewFromString(rec[bankAColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec[bankAColAmount], err)
	}

	return model.Transaction{
		Date:        date,
		Description: strings.TrimSpace(rec[bankAColDesc]),
		Amount:      amount,
		SourceBank:  p.Bank(),
	}, nil
}
