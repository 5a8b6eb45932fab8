package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankmerge-dev/bankmerge/internal/model"
)

// Header is the CSV header of the unified output schema.
const Header = "date,description,amount,source_bank"

const (
	// NumFields is the column count of the unified schema.
	NumFields = 4

	dateFormat = "2006-01-02"

	// ColDate is the date column index; ISO-8601, see dateFormat.
	ColDate = 0
	// ColDesc is the description column index.
	ColDesc = 1
	// ColAmount is the amount column index; signed, two decimal places.
	ColAmount = 2
	// ColSourceBank is the originating bank tag column index.
	ColSourceBank = 3
)

// WriteTransactions writes the unified CSV (header included) to w.
func WriteTransactions(w io.Writer, txns []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteFile writes the unified CSV to path, or to stdout when path is
// empty or "-". Callers invoke this only after parsing has fully
// succeeded, so a fatal run never leaves a partial output file behind.
func WriteFile(path string, txns []model.Transaction) error {
	if path == "" || path == "-" {
		return WriteTransactions(os.Stdout, txns)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := WriteTransactions(f, txns); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// MarshalTransaction converts a Transaction to a unified CSV row.
func MarshalTransaction(txn model.Transaction) []string {
	row := make([]string, NumFields)
	row[ColDate] = txn.Date.Format(dateFormat)
	row[ColDesc] = txn.Description
	row[ColAmount] = txn.Amount.StringFixed(2)
	row[ColSourceBank] = txn.SourceBank
	return row
}

// UnmarshalTransaction converts a unified CSV row back to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != NumFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", NumFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[ColDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[ColDate], err)
	}

	amount, err := decimal.NewFromString(record[ColAmount])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", record[ColAmount], err)
	}

	return model.Transaction{
		Date:        date,
		Description: strings.TrimSpace(record[ColDesc]),
		Amount:      amount,
		SourceBank:  record[ColSourceBank],
	}, nil
}
