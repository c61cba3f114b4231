package taxonomy

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mealdex/dietengine/internal/domain"
)

// dataset is the on-disk JSON shape of a taxonomy version.
type dataset struct {
	Version string                 `json:"version"`
	Entries []domain.TaxonomyEntry `json:"entries"`
}

// Load reads, parses, and indexes a taxonomy dataset file. Classification
// cannot proceed without a valid taxonomy, so any failure here is meant to
// abort startup rather than let every ingredient classify as unresolved.
func Load(path string) (*Taxonomy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", domain.ErrTaxonomyUnavailable, path)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrTaxonomyUnavailable, err)
	}

	var ds dataset
	if err := json.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptTaxonomy, err)
	}

	return New(ds.Version, ds.Entries)
}

// Default returns the built-in taxonomy table that ships with the engine.
func Default() *Taxonomy {
	t, err := New(defaultVersion, defaultEntries())
	if err != nil {
		// The built-in table is validated by tests; reaching this means the
		// binary itself is broken.
		panic(err)
	}
	return t
}
