package usecase

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mealdex/dietengine/internal/domain"
)

// Package-level compiled regex patterns for performance
var (
	parentheticalRegex = regexp.MustCompile(`\(([^)]*)\)`)
	plainNumberRegex   = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
	fractionRegex      = regexp.MustCompile(`^(\d+)\s*/\s*(\d+)$`)
	rangeRegex         = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*[-–]\s*\d+(?:\.\d+)?$`)
)

// fractionGlyphs maps unicode vulgar fraction characters, which appear
// frequently in scraped recipe data, to their numeric values.
var fractionGlyphs = map[rune]float64{
	'¼': 0.25, '½': 0.5, '¾': 0.75,
	'⅓': 1.0 / 3, '⅔': 2.0 / 3,
	'⅛': 0.125, '⅜': 0.375, '⅝': 0.625, '⅞': 0.875,
}

// defaultUnits maps unit token variants to their canonical form.
var defaultUnits = map[string]string{
	"cup": "cup", "cups": "cup", "c": "cup",
	"tablespoon": "tablespoon", "tablespoons": "tablespoon", "tbsp": "tablespoon", "tbs": "tablespoon",
	"teaspoon": "teaspoon", "teaspoons": "teaspoon", "tsp": "teaspoon",
	"pound": "pound", "pounds": "pound", "lb": "pound", "lbs": "pound",
	"ounce": "ounce", "ounces": "ounce", "oz": "ounce",
	"gram": "gram", "grams": "gram", "g": "gram",
	"kilogram": "kilogram", "kilograms": "kilogram", "kg": "kilogram",
	"milliliter": "milliliter", "milliliters": "milliliter", "ml": "milliliter",
	"liter": "liter", "liters": "liter", "litre": "liter", "litres": "liter", "l": "liter",
	"pint": "pint", "pints": "pint", "pt": "pint",
	"quart": "quart", "quarts": "quart", "qt": "quart",
	"gallon": "gallon", "gallons": "gallon", "gal": "gallon",
	"pinch": "pinch", "pinches": "pinch",
	"dash": "dash", "dashes": "dash",
	"clove": "clove", "cloves": "clove",
	"can": "can", "cans": "can",
	"package": "package", "packages": "package", "pkg": "package",
	"stick": "stick", "sticks": "stick",
	"bunch": "bunch", "bunches": "bunch",
	"sprig": "sprig", "sprigs": "sprig",
	"stalk": "stalk", "stalks": "stalk",
	"head": "head", "heads": "head",
	"slice": "slice", "slices": "slice",
	"piece": "piece", "pieces": "piece",
	"handful": "handful", "handfuls": "handful",
}

// ParserConfig holds configuration for the ingredient parser.
type ParserConfig struct {
	// ExtraUnits extends the built-in unit vocabulary, mapping token
	// variants to canonical unit names.
	ExtraUnits map[string]string
}

// Parser splits a raw ingredient line into quantity, unit, descriptors, and
// core phrase. It never fails: when no quantity/unit pattern matches, the
// whole line becomes the core phrase.
type Parser struct {
	units map[string]string
}

// NewParser creates an ingredient parser with the given configuration.
func NewParser(config ParserConfig) *Parser {
	units := make(map[string]string, len(defaultUnits)+len(config.ExtraUnits))
	for k, v := range defaultUnits {
		units[k] = v
	}
	for k, v := range config.ExtraUnits {
		units[strings.ToLower(k)] = strings.ToLower(v)
	}
	return &Parser{units: units}
}

// Parse decomposes one raw ingredient line into a ParsedIngredient.
func (p *Parser) Parse(raw string) domain.ParsedIngredient {
	parsed := domain.ParsedIngredient{Raw: raw}

	line := strings.TrimSpace(raw)

	// Parenthetical asides ("(8 ounce)", "(optional)") become descriptors,
	// never part of the core phrase.
	for _, m := range parentheticalRegex.FindAllStringSubmatch(line, -1) {
		if aside := strings.TrimSpace(m[1]); aside != "" {
			parsed.Descriptors = append(parsed.Descriptors, aside)
		}
	}
	line = parentheticalRegex.ReplaceAllString(line, " ")

	// Trailing clauses after a comma are preparation notes ("chopped",
	// "to taste", "optional"), not part of the ingredient identity.
	segments := strings.Split(line, ",")
	line = segments[0]
	for _, seg := range segments[1:] {
		if seg = strings.TrimSpace(seg); seg != "" {
			parsed.Descriptors = append(parsed.Descriptors, seg)
		}
	}

	tokens := strings.Fields(line)
	rest := tokens

	if qty, consumed, ok := parseQuantity(tokens); ok {
		parsed.Quantity = &qty
		rest = tokens[consumed:]
	}
	if len(rest) > 0 {
		if unit, ok := p.normalizeUnit(rest[0]); ok {
			parsed.Unit = unit
			rest = rest[1:]
		}
	}

	parsed.CorePhrase = strings.Join(rest, " ")
	return parsed
}

// normalizeUnit resolves a token against the unit vocabulary, tolerating
// trailing periods ("tbsp.").
func (p *Parser) normalizeUnit(token string) (string, bool) {
	unit, ok := p.units[strings.TrimSuffix(strings.ToLower(token), ".")]
	return unit, ok
}

// parseQuantity recognizes a leading quantity across one or more tokens:
// integers ("2"), decimals ("1.5"), fractions ("1/2"), mixed numbers
// ("1 1/2"), unicode fraction glyphs ("½", "1½"), and ranges ("2-3",
// "2 - 3", parsed to their lower bound). Returns the value, the number of
// tokens consumed, and whether anything matched.
func parseQuantity(tokens []string) (float64, int, bool) {
	if len(tokens) == 0 {
		return 0, 0, false
	}

	first := tokens[0]

	// Glyph alone or attached to an integer ("½", "1½").
	if v, ok := splitGlyph(first); ok {
		return v, 1, true
	}

	if m := fractionRegex.FindStringSubmatch(first); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		den, _ := strconv.ParseFloat(m[2], 64)
		if den == 0 {
			return 0, 0, false
		}
		return num / den, 1, true
	}

	if m := rangeRegex.FindStringSubmatch(first); m != nil {
		low, _ := strconv.ParseFloat(m[1], 64)
		return low, 1, true
	}

	if !plainNumberRegex.MatchString(first) {
		return 0, 0, false
	}
	value, _ := strconv.ParseFloat(first, 64)

	// Mixed number: "1 1/2" or "1 ½".
	if len(tokens) > 1 {
		if m := fractionRegex.FindStringSubmatch(tokens[1]); m != nil {
			num, _ := strconv.ParseFloat(m[1], 64)
			den, _ := strconv.ParseFloat(m[2], 64)
			if den != 0 {
				return value + num/den, 2, true
			}
		}
		if frac, ok := splitGlyph(tokens[1]); ok && tokens[1] == string([]rune(tokens[1])[0]) {
			return value + frac, 2, true
		}
	}

	// Spaced range: "2 - 3" parses to the lower bound.
	if len(tokens) > 2 && (tokens[1] == "-" || tokens[1] == "–") && plainNumberRegex.MatchString(tokens[2]) {
		return value, 3, true
	}

	return value, 1, true
}

// splitGlyph parses tokens that are a bare fraction glyph or an integer with
// an attached glyph ("1½").
func splitGlyph(token string) (float64, bool) {
	runes := []rune(token)
	if len(runes) == 0 {
		return 0, false
	}
	last := runes[len(runes)-1]
	frac, ok := fractionGlyphs[last]
	if !ok {
		return 0, false
	}
	prefix := string(runes[:len(runes)-1])
	if prefix == "" {
		return frac, true
	}
	if !plainNumberRegex.MatchString(prefix) {
		return 0, false
	}
	whole, _ := strconv.ParseFloat(prefix, 64)
	return whole + frac, true
}
