package usecase

import (
	"regexp"
	"strings"

	"github.com/jinzhu/inflection"
	"github.com/mealdex/dietengine/internal/domain"
)

func init() {
	// Ingredient names inflection would otherwise mangle.
	inflection.AddUncountable("hummus", "couscous", "asparagus", "molasses")
}

// nonWordRegex folds punctuation into spaces. Hyphens are handled separately
// so markers like "dairy-free" split into inspectable tokens first.
var nonWordRegex = regexp.MustCompile(`[^a-z0-9\s-]`)

// stopWords are connective tokens that carry no ingredient identity.
var stopWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"of": true, "in": true, "on": true, "at": true, "to": true,
	"for": true, "with": true, "into": true, "about": true,
	"as": true, "per": true, "each": true, "more": true,
	"needed": true, "approximately": true, "approx": true, "plus": true,
}

// descriptorWords are preparation and quality notes stripped from the core
// phrase. Words that are part of an ingredient's identity are rescued by
// identityWords below.
var descriptorWords = map[string]bool{
	"fresh": true, "freshly": true, "large": true, "medium": true, "small": true,
	"whole": true, "boneless": true, "skinless": true, "washed": true,
	"peeled": true, "pitted": true, "seeded": true, "cored": true, "stemmed": true,
	"chopped": true, "diced": true, "sliced": true, "shredded": true,
	"grated": true, "minced": true, "crushed": true, "ground": true,
	"trimmed": true, "cleaned": true, "cubed": true, "halved": true,
	"quartered": true, "julienned": true, "crumbled": true, "toasted": true,
	"thinly": true, "thickly": true, "finely": true, "coarsely": true,
	"roughly": true, "lightly": true, "cooked": true, "uncooked": true,
	"raw": true, "frozen": true, "thawed": true, "canned": true,
	"drained": true, "rinsed": true, "dried": true, "organic": true,
	"ripe": true, "softened": true, "melted": true, "beaten": true,
	"divided": true, "packed": true, "room": true, "temperature": true,
	"piece": true, "pieces": true, "slice": true, "slices": true,
	"pinch": true, "dash": true, "taste": true, "optional": true,
	"bite": true, "garnish": true, "serving": true, "prepared": true,
	"fat": true, "low": true, "reduced": true, "light": true, "lite": true,
	"nonfat": true, "free": true,
}

// identityWords are descriptor-shaped modifiers that change what the
// ingredient is rather than how it is prepared: "ground beef" is a different
// ingredient from "beef", "whole milk" from "milk".
var identityWords = map[string]bool{
	"ground": true,
	"whole":  true,
}

// negatableBases are ingredient markers whose negated forms ("eggless",
// "dairy-free", "no meat") declare the absence of an animal ingredient.
// Restricting negation to these bases keeps "fat-free" from flipping
// anything: "fat" is not an ingredient being negated.
var negatableBases = map[string]bool{
	"egg": true, "meat": true, "dairy": true, "milk": true,
	"butter": true, "cheese": true, "gelatin": true, "fish": true,
	"gluten": true, "sugar": true, "lactose": true, "animal": true,
}

// Normalizer canonicalizes a parsed core phrase: case and punctuation
// folding, stopword and descriptor stripping, singularization, and explicit
// negation detection. Semantic interpretation of the negation flag belongs
// to the classifier, not here.
type Normalizer struct{}

// NewNormalizer creates a normalizer.
func NewNormalizer() *Normalizer {
	return &Normalizer{}
}

// Normalize returns a copy of the parsed ingredient with a canonical core
// phrase and the ExplicitNegation flag set when a negation marker was found.
func (n *Normalizer) Normalize(parsed domain.ParsedIngredient) domain.ParsedIngredient {
	phrase := strings.ToLower(parsed.CorePhrase)
	phrase = nonWordRegex.ReplaceAllString(phrase, " ")

	negated := parsed.ExplicitNegation
	var kept []string

	for _, tok := range strings.Split(strings.ReplaceAll(phrase, "-", " "), " ") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}

		switch {
		case tok == "no" || tok == "without" || tok == "non":
			negated = true
			continue
		case tok == "free":
			// "X-free" split into ["x", "free"]; negation only when X is a
			// known ingredient marker, otherwise "free" is plain noise
			// ("fat free", "free range").
			if len(kept) > 0 && negatableBases[kept[len(kept)-1]] {
				negated = true
			}
			continue
		case strings.HasSuffix(tok, "less") && negatableBases[strings.TrimSuffix(tok, "less")]:
			negated = true
			tok = strings.TrimSuffix(tok, "less")
		}

		if stopWords[tok] {
			continue
		}
		if descriptorWords[tok] && !identityWords[tok] {
			continue
		}
		if isNumeric(tok) {
			continue
		}

		kept = append(kept, singularize(tok))
	}

	normalized := parsed
	normalized.CorePhrase = strings.Join(kept, " ")
	normalized.ExplicitNegation = negated
	return normalized
}

// singularize folds plural tokens to their singular form. Very short tokens
// are left alone ("gas"-style words are rare in ingredients, abbreviations
// are not).
func singularize(token string) string {
	if len(token) <= 3 {
		return token
	}
	return inflection.Singular(token)
}

// isNumeric checks if a string contains only digits
func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
