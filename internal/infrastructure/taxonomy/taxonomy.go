package taxonomy

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mealdex/dietengine/internal/domain"
)

// Taxonomy is an immutable, indexed view over one version of the ingredient
// reference table. It is built once (from a dataset file or the built-in
// table), shared read-only by all classification workers, and replaced
// wholesale when a new version ships. It is never patched in place.
type Taxonomy struct {
	version   string
	entries   []*domain.TaxonomyEntry
	byPhrase  map[string]*domain.TaxonomyEntry
	byWord    map[string]*domain.TaxonomyEntry
	protected []domain.ProtectedPhrase
}

// New builds and validates an indexed taxonomy from a version identifier and
// a flat entry list. Duplicate canonical names, aliases colliding across
// entries, and negative carbohydrate values all fail validation.
func New(version string, entries []domain.TaxonomyEntry) (*Taxonomy, error) {
	if strings.TrimSpace(version) == "" {
		return nil, fmt.Errorf("%w: missing version identifier", domain.ErrCorruptTaxonomy)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: no entries", domain.ErrCorruptTaxonomy)
	}

	t := &Taxonomy{
		version:  version,
		byPhrase: make(map[string]*domain.TaxonomyEntry, len(entries)*2),
		byWord:   make(map[string]*domain.TaxonomyEntry, len(entries)*2),
	}

	for i := range entries {
		entry := &entries[i]
		entry.CanonicalName = normalizeName(entry.CanonicalName)
		if entry.CanonicalName == "" {
			return nil, fmt.Errorf("%w: entry %d has an empty canonical name", domain.ErrCorruptTaxonomy, i)
		}
		if entry.CarbsPer100g != nil && *entry.CarbsPer100g < 0 {
			return nil, fmt.Errorf("%w: %q has negative carbs", domain.ErrCorruptTaxonomy, entry.CanonicalName)
		}
		if entry.Category == "" {
			entry.Category = domain.CategoryOther
		}

		if err := t.indexName(entry.CanonicalName, entry); err != nil {
			return nil, err
		}
		for j, alias := range entry.Aliases {
			alias = normalizeName(alias)
			entry.Aliases[j] = alias
			if alias == "" || alias == entry.CanonicalName {
				continue
			}
			if err := t.indexName(alias, entry); err != nil {
				return nil, err
			}
		}
		t.entries = append(t.entries, entry)
	}

	// Longest phrases first so "extra virgin olive oil" wins over a
	// hypothetical shorter compound sharing a prefix. Ties break
	// alphabetically for deterministic resolution.
	sort.SliceStable(t.protected, func(i, j int) bool {
		a, b := t.protected[i], t.protected[j]
		if len(a.Words) != len(b.Words) {
			return len(a.Words) > len(b.Words)
		}
		return strings.Join(a.Words, " ") < strings.Join(b.Words, " ")
	})

	return t, nil
}

// indexName registers one canonical name or alias in the phrase, word, and
// protected-phrase indexes.
func (t *Taxonomy) indexName(name string, entry *domain.TaxonomyEntry) error {
	if existing, ok := t.byPhrase[name]; ok && existing != entry {
		return fmt.Errorf("%w: %q maps to both %q and %q",
			domain.ErrCorruptTaxonomy, name, existing.CanonicalName, entry.CanonicalName)
	}
	t.byPhrase[name] = entry

	words := strings.Fields(name)
	if len(words) == 1 {
		t.byWord[name] = entry
		return nil
	}
	t.protected = append(t.protected, domain.ProtectedPhrase{Words: words, Entry: entry})
	return nil
}

// Version returns the dataset version identifier.
func (t *Taxonomy) Version() string {
	return t.version
}

// Lookup resolves a full normalized phrase against canonical names and aliases.
func (t *Taxonomy) Lookup(phrase string) (*domain.TaxonomyEntry, bool) {
	entry, ok := t.byPhrase[normalizeName(phrase)]
	return entry, ok
}

// LookupWord resolves a single token against single-word names and aliases.
func (t *Taxonomy) LookupWord(word string) (*domain.TaxonomyEntry, bool) {
	entry, ok := t.byWord[word]
	return entry, ok
}

// Protected returns the compound phrases, longest first.
func (t *Taxonomy) Protected() []domain.ProtectedPhrase {
	return t.protected
}

// Len reports the number of entries in the table.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}

// normalizeName folds a canonical name or alias the same way lookup keys are
// folded: lowercase with collapsed single spaces.
func normalizeName(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
