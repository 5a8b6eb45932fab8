package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankmerge-dev/bankmerge/internal/model"
)

func sampleTransactions(t *testing.T) []model.Transaction {
	t.Helper()
	return []model.Transaction{
		{
			Date:        time.Date(2019, 10, 1, 0, 0, 0, 0, time.UTC),
			Description: "COFFEE BEAN #42",
			Amount:      decimal.RequireFromString("-99.20"),
			SourceBank:  "BankA",
		},
		{
			Date:        time.Date(2019, 10, 4, 0, 0, 0, 0, time.UTC),
			Description: "INVOICE 1042",
			Amount:      decimal.RequireFromString("2123.50"),
			SourceBank:  "BankB",
		},
	}
}

func TestWriteTransactions(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTransactions(&buf, sampleTransactions(t))
	require.NoError(t, err)

	want := "date,description,amount,source_bank\n" +
		"2019-10-01,COFFEE BEAN #42,-99.20,BankA\n" +
		"2019-10-04,INVOICE 1042,2123.50,BankB\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteTransactions_EmptyStillWritesHeader(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTransactions(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, Header+"\n", buf.String())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	err := WriteFile(path, sampleTransactions(t))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), Header)
	assert.Contains(t, string(data), "2019-10-01,COFFEE BEAN #42,-99.20,BankA")
}

func TestWriteFile_BadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.csv"), nil)
	assert.Error(t, err)
}

func TestMarshalTransaction(t *testing.T) {
	row := MarshalTransaction(sampleTransactions(t)[0])
	assert.Equal(t, []string{"2019-10-01", "COFFEE BEAN #42", "-99.20", "BankA"}, row)
}

func TestMarshalTransaction_PadsToTwoDecimals(t *testing.T) {
	txn := sampleTransactions(t)[0]
	txn.Amount = decimal.RequireFromString("5")
	assert.Equal(t, "5.00", MarshalTransaction(txn)[ColAmount])

	txn.Amount = decimal.RequireFromString("-99.2")
	assert.Equal(t, "-99.20", MarshalTransaction(txn)[ColAmount])
}

func TestUnmarshalTransaction(t *testing.T) {
	txn, err := UnmarshalTransaction([]string{"2019-10-01", "COFFEE BEAN #42", "-99.20", "BankA"})
	require.NoError(t, err)
	assert.True(t, txn.Equal(sampleTransactions(t)[0]))
}

func TestUnmarshalTransaction_Errors(t *testing.T) {
	_, err := UnmarshalTransaction([]string{"2019-10-01", "desc", "-1.00"})
	assert.Error(t, err)

	_, err = UnmarshalTransaction([]string{"Oct 1 2019", "desc", "-1.00", "BankA"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing date")

	_, err = UnmarshalTransaction([]string{"2019-10-01", "desc", "NaNcy", "BankA"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing amount")
}
