package domain

// Recipe is one unit of classification work: a recipe identifier plus the
// ordered raw ingredient lines exactly as they came from the ingestion layer.
type Recipe struct {
	ID          string   `json:"id"`
	Ingredients []string `json:"ingredients"`
}

// ParsedIngredient is the parser's best-effort decomposition of a single raw
// ingredient line. Instances are built once by the parser, refined by the
// normalizer, and never mutated afterwards.
type ParsedIngredient struct {
	Raw              string   `json:"raw"`
	Quantity         *float64 `json:"quantity,omitempty"`
	Unit             string   `json:"unit,omitempty"`
	Descriptors      []string `json:"descriptors,omitempty"`
	CorePhrase       string   `json:"corePhrase"`
	ExplicitNegation bool     `json:"explicitNegation"`
}
