package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the unified record every bank export converges to.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal // negative = debit, positive = credit
	SourceBank  string          // bank tag the record came from
}

// Equal reports whether two transactions carry the same data.
func (t Transaction) Equal(o Transaction) bool {
	return t.Date.Equal(o.Date) &&
		t.Description == o.Description &&
		t.Amount.Equal(o.Amount) &&
		t.SourceBank == o.SourceBank
}
