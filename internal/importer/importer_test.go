package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ResolveUnknown(t *testing.T) {
	r := NewRegistry()
	_, err := r.Resolve("BankX")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedBank)
	assert.Contains(t, err.Error(), "BankX")
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	r := NewRegistry()
	r.Register(&BankAParser{})
	p, err := r.Resolve("BankA")
	require.NoError(t, err)
	assert.Equal(t, "BankA", p.Bank())
}

func TestRegistry_CaseSensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&BankAParser{})

	_, err := r.Resolve("banka")
	assert.ErrorIs(t, err, ErrUnsupportedBank)
	_, err = r.Resolve("BANKA")
	assert.ErrorIs(t, err, ErrUnsupportedBank)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(&BankAParser{})
	assert.Panics(t, func() { r.Register(&BankAParser{}) })
}

func TestRegistry_BanksRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(&BankBParser{})
	r.Register(&BankAParser{})
	assert.Equal(t, []string{"BankB", "BankA"}, r.Banks())
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.Equal(t, []string{"BankA", "BankB", "BankC", "Unified"}, r.Banks())
	for _, bank := range r.Banks() {
		p, err := r.Resolve(bank)
		require.NoError(t, err)
		assert.Equal(t, bank, p.Bank())
	}
}

func TestRowError_Unwrap(t *testing.T) {
	inner := assert.AnError
	err := RowError{Row: 3, Err: inner}
	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "row 3")
}
