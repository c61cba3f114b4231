package domain

// ResolutionState reports whether a normalized phrase was mapped to a
// taxonomy entry.
type ResolutionState string

// Resolution states.
const (
	StateResolved   ResolutionState = "resolved"
	StateUnresolved ResolutionState = "unresolved"
)

// MatchStrategy tags which matcher rule produced a resolution.
type MatchStrategy string

// Match strategies, in resolution order.
const (
	MatchExact           MatchStrategy = "exact"
	MatchProtectedPhrase MatchStrategy = "protected_phrase"
	MatchWholeWord       MatchStrategy = "whole_word"
	MatchNone            MatchStrategy = "none"
)

// IngredientVerdict is the per-ingredient classification outcome. The two
// compliance fields are tri-state: nil means unknown, which is distinct from
// true/false. Unresolved ingredients must not silently count as compliant.
type IngredientVerdict struct {
	Raw             string         `json:"raw"`
	Phrase          string         `json:"phrase"`
	MatchedEntry    *TaxonomyEntry `json:"matchedEntry,omitempty"`
	Strategy        MatchStrategy  `json:"strategy"`
	IsVegan         *bool          `json:"isVegan,omitempty"`
	IsKetoCompliant *bool          `json:"isKetoCompliant,omitempty"`
	State           ResolutionState `json:"state"`
}

// RecipeLabel is the recipe-level output handed to the search/index layer.
// It is a pure function of (ordered ingredient list, taxonomy version,
// fallback policy) and therefore cacheable until either input changes.
type RecipeLabel struct {
	RecipeID        string `json:"recipeId"`
	Vegan           bool   `json:"vegan"`
	Keto            bool   `json:"keto"`
	TaxonomyVersion string `json:"taxonomyVersion"`
}
