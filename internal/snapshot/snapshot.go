// Package snapshot loads and holds the immutable (catalog, recipe book,
// conversion table) triple every resolution works against. A reload builds
// a complete new snapshot and swaps it in atomically; in-flight requests
// keep the snapshot they started with.
package snapshot

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/backbar/barcost/internal/catalog"
	"github.com/backbar/barcost/internal/recipebook"
	"github.com/backbar/barcost/internal/units"
)

// Snapshot is one consistent view of the data sources.
type Snapshot struct {
	Catalog *catalog.Catalog
	Book    *recipebook.Book
	Table   *units.Table

	CatalogReport *catalog.LoadReport
	BookReport    *catalog.LoadReport
	LoadedAt      time.Time
}

// Load reads the catalog and recipe book CSVs and the optional conversion
// table override. The sources are the system of record; they are re-read
// in full on every call.
func Load(catalogPath, recipesPath, unitsPath string) (*Snapshot, error) {
	table := units.DefaultTable()
	if unitsPath != "" {
		var err error
		table, err = units.Load(unitsPath)
		if err != nil {
			return nil, err
		}
	}

	cat, catReport, err := catalog.LoadFile(catalogPath)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", catalogPath, err)
	}

	book, bookReport, err := recipebook.LoadFile(recipesPath)
	if err != nil {
		return nil, fmt.Errorf("loading recipe book %s: %w", recipesPath, err)
	}

	return &Snapshot{
		Catalog:       cat,
		Book:          book,
		Table:         table,
		CatalogReport: catReport,
		BookReport:    bookReport,
		LoadedAt:      time.Now().UTC(),
	}, nil
}

// Store holds the current snapshot behind an atomic pointer.
type Store struct {
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store seeded with snap.
func NewStore(snap *Snapshot) *Store {
	s := &Store{}
	s.current.Store(snap)
	return s
}

// Get returns the current snapshot.
func (s *Store) Get() *Snapshot {
	return s.current.Load()
}

// Set swaps in a new snapshot.
func (s *Store) Set(snap *Snapshot) {
	s.current.Store(snap)
}

// CompareAndSwap installs next only if old is still the current snapshot.
// Mutating handlers use it so a concurrent reload is never silently
// overwritten.
func (s *Store) CompareAndSwap(old, next *Snapshot) bool {
	return s.current.CompareAndSwap(old, next)
}
