package orbtrade

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
)

// Sentinel errors classifying the failures a caller may want to react to.
// Use errors.Is to test for them.
var (
	// ErrBaseline reports that the baseline dataset could not be read or
	// parsed. The store degrades to an empty catalog instead of failing.
	ErrBaseline = errors.New("baseline dataset unavailable")
	// ErrValidation reports a payload that decodes but does not have the
	// interchange shape (flat object of non-negative numbers).
	ErrValidation = errors.New("invalid catalog payload")
	// ErrPersist reports that the override snapshot could not be written.
	// The in-memory catalog keeps the new content regardless.
	ErrPersist = errors.New("cannot persist catalog")
)

// Store owns the authoritative catalog of item prices.
//
// At open time the baseline dataset is merged with the persisted override
// snapshot (override wins per item). Afterwards the catalog only changes
// wholesale through ReplaceAll; consumers read through GetPrice, All and
// Search.
//
// A Store is meant for a single interactive session and performs no
// locking; concurrent use requires external synchronization around
// ReplaceAll and the read methods.
type Store struct {
	stateFile string
	catalog   *Catalog
}

// Open creates a store from the baseline dataset in baselineFile, overlaid
// with the override snapshot in stateFile if one exists.
//
// A missing or unparsable baseline does not prevent opening: the store
// starts with an empty catalog and the error (wrapping ErrBaseline) is
// returned alongside it so the caller can notify the user. A missing or
// corrupt override snapshot is skipped silently.
func Open(baselineFile, stateFile string) (*Store, error) {
	s := &Store{stateFile: stateFile, catalog: NewCatalog()}

	baseline, err := decodeCatalogFile(baselineFile)
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrBaseline, err)
	}
	s.catalog = baseline

	override, err := decodeCatalogFile(stateFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// first run, nothing persisted yet
	case err != nil:
		slog.Debug("ignoring corrupt override snapshot", "file", stateFile, "err", err)
	default:
		s.catalog.Merge(override)
	}
	return s, nil
}

// GetPrice returns the unit price for an exact, case-sensitive item name.
func (s *Store) GetPrice(name string) (Amount, bool) {
	return s.catalog.Get(name)
}

// All returns a snapshot of the catalog. Mutating it does not affect the
// store.
func (s *Store) All() *Catalog {
	return s.catalog.Clone()
}

// ReplaceAll validates newCatalog, replaces the whole in-memory catalog
// with it, and persists the result to the override snapshot file.
//
// On validation failure (wrapping ErrValidation) the prior catalog is left
// untouched. On persistence failure (wrapping ErrPersist) the in-memory
// replacement has already happened and is not rolled back: the session
// keeps working with the new prices, only durability is lost.
func (s *Store) ReplaceAll(newCatalog *Catalog) error {
	for _, name := range newCatalog.Names() {
		if name == "" {
			return fmt.Errorf("%w: empty item name", ErrValidation)
		}
		if price, _ := newCatalog.Get(name); price.IsNegative() {
			return fmt.Errorf("%w: negative price for %q", ErrValidation, name)
		}
	}

	s.catalog = newCatalog.Clone()

	var buf bytes.Buffer
	if err := EncodeCatalog(&buf, s.catalog); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	if err := os.WriteFile(s.stateFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrPersist, err)
	}
	return nil
}

// decodeCatalogFile reads an interchange payload from a file.
func decodeCatalogFile(filename string) (*Catalog, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("in %q: %w", filename, err)
	}
	return c, nil
}
