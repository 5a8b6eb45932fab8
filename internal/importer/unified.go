package importer

import (
	"io"

	"github.com/bankmerge-dev/bankmerge/internal/model"
	"github.com/bankmerge-dev/bankmerge/internal/writer"
)

// UnifiedParser reads the tool's own output schema, so a merged file can
// be fed back in as input. The source_bank column is preserved from the
// file rather than overwritten, keeping the schema idempotent.
type UnifiedParser struct{}

// Bank returns the bank tag.
func (p *UnifiedParser) Bank() string { return "Unified" }

// Parse reads a unified CSV and returns its transactions.
func (p *UnifiedParser) Parse(r io.Reader) ([]model.Transaction, []RowError, error) {
	return parseRows(r, p.Bank(), writer.NumFields, func(rec []string) (model.Transaction, error) {
		return writer.UnmarshalTransaction(rec)
	})
}
