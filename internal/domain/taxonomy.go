package domain

// Category groups taxonomy entries by broad ingredient kind.
type Category string

// Taxonomy categories.
const (
	CategoryMeat      Category = "meat"
	CategoryDairy     Category = "dairy"
	CategoryEgg       Category = "egg"
	CategorySeafood   Category = "seafood"
	CategoryProduce   Category = "produce"
	CategoryGrain     Category = "grain"
	CategoryLegume    Category = "legume"
	CategorySweetener Category = "sweetener"
	CategoryFat       Category = "fat"
	CategoryCondiment Category = "condiment"
	CategoryOther     Category = "other"
)

// TaxonomyEntry is one canonical ingredient with its animal-origin and
// carbohydrate facts. CarbsPer100g of nil means the entry is carb-exempt:
// either the value is effectively zero (water, salt) or the ingredient is
// used in trace quantities (most spices), so it never counts against keto.
type TaxonomyEntry struct {
	CanonicalName   string   `json:"canonicalName"`
	Aliases         []string `json:"aliases,omitempty"`
	IsAnimalDerived bool     `json:"isAnimalDerived"`
	CarbsPer100g    *float64 `json:"carbsPer100g,omitempty"`
	Category        Category `json:"category"`
}

// ProtectedPhrase is a compound ingredient name that must match as a whole
// before its constituent words are considered individually ("peanut butter"
// must never resolve via "butter").
type ProtectedPhrase struct {
	Words []string
	Entry *TaxonomyEntry
}

// TaxonomyIndex is the read-only handle the matcher resolves phrases against.
// Implementations are immutable for the lifetime of a classification run and
// safe for concurrent readers without synchronization.
type TaxonomyIndex interface {
	// Version identifies the loaded dataset; it is stamped onto every
	// RecipeLabel for reproducibility.
	Version() string

	// Lookup resolves a full normalized phrase against canonical names and
	// aliases.
	Lookup(phrase string) (*TaxonomyEntry, bool)

	// LookupWord resolves a single token against single-word canonical names
	// and aliases.
	LookupWord(word string) (*TaxonomyEntry, bool)

	// Protected returns the compound phrases that must match as whole
	// phrases before any of their constituent words are considered, ordered
	// longest phrase first.
	Protected() []ProtectedPhrase

	// Len reports the number of entries in the table.
	Len() int
}
