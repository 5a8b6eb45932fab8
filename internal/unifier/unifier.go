package unifier

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/bankmerge-dev/bankmerge/internal/importer"
	"github.com/bankmerge-dev/bankmerge/internal/model"
)

// Source pairs a bank tag with the path of one export file.
type Source struct {
	Bank string
	Path string
}

// Unifier merges bank exports into one ordered transaction sequence.
type Unifier struct {
	registry *importer.Registry
	strict   bool
	log      zerolog.Logger
}

// New creates a Unifier. With strict set, a malformed data row fails the
// run instead of being skipped with a warning.
func New(registry *importer.Registry, strict bool, log zerolog.Logger) *Unifier {
	return &Unifier{registry: registry, strict: strict, log: log}
}

// Unify parses every source in order and concatenates the results.
// All bank tags are resolved before any file is opened, so a typo
// anywhere on the command line aborts with no I/O and no output.
func (u *Unifier) Unify(sources []Source) ([]model.Transaction, error) {
	if len(sources) == 0 {
		return nil, errors.New("no input files given")
	}

	parsers := make([]importer.Parser, len(sources))
	for i, src := range sources {
		p, err := u.registry.Resolve(src.Bank)
		if err != nil {
			return nil, err
		}
		parsers[i] = p
	}

	var txns []model.Transaction
	for i, src := range sources {
		fileTxns, err := u.parseFile(parsers[i], src)
		if err != nil {
			return nil, err
		}
		txns = append(txns, fileTxns...)
	}
	return txns, nil
}

func (u *Unifier) parseFile(p importer.Parser, src Source) ([]model.Transaction, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", src.Path, err)
	}
	defer f.Close()

	txns, skipped, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Path, err)
	}

	for _, rowErr := range skipped {
		if u.strict {
			return nil, fmt.Errorf("%s %s: %w", src.Bank, src.Path, rowErr)
		}
		u.log.Warn().
			Str("bank", src.Bank).
			Str("file", src.Path).
			Int("row", rowErr.Row).
			Err(rowErr.Err).
			Msg("skipping malformed row")
	}
	return txns, nil
}
