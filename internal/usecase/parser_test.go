package usecase

import (
	"reflect"
	"testing"
)

func TestParserQuantities(t *testing.T) {
	parser := NewParser(ParserConfig{})

	tests := []struct {
		name     string
		raw      string
		quantity float64
		unit     string
		core     string
	}{
		{
			name:     "integer quantity with unit",
			raw:      "2 cups zucchini",
			quantity: 2,
			unit:     "cup",
			core:     "zucchini",
		},
		{
			name:     "decimal quantity",
			raw:      "1.5 pounds ground beef",
			quantity: 1.5,
			unit:     "pound",
			core:     "ground beef",
		},
		{
			name:     "simple fraction",
			raw:      "1/2 tsp. vanilla extract",
			quantity: 0.5,
			unit:     "teaspoon",
			core:     "vanilla extract",
		},
		{
			name:     "mixed number",
			raw:      "1 1/2 tablespoons olive oil",
			quantity: 1.5,
			unit:     "tablespoon",
			core:     "olive oil",
		},
		{
			name:     "unicode fraction glyph",
			raw:      "½ cup sugar",
			quantity: 0.5,
			unit:     "cup",
			core:     "sugar",
		},
		{
			name:     "glyph attached to integer",
			raw:      "1½ cups flour",
			quantity: 1.5,
			unit:     "cup",
			core:     "flour",
		},
		{
			name:     "glyph as second token",
			raw:      "2 ½ cups flour",
			quantity: 2.5,
			unit:     "cup",
			core:     "flour",
		},
		{
			name:     "range takes the lower bound",
			raw:      "2-3 cloves garlic",
			quantity: 2,
			unit:     "clove",
			core:     "garlic",
		},
		{
			name:     "spaced range takes the lower bound",
			raw:      "2 - 3 apples",
			quantity: 2,
			unit:     "",
			core:     "apples",
		},
		{
			name:     "unit abbreviation with period",
			raw:      "4 oz. cream cheese",
			quantity: 4,
			unit:     "ounce",
			core:     "cream cheese",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parser.Parse(tt.raw)

			if got.Quantity == nil {
				t.Fatalf("Parse(%q).Quantity = nil, want %v", tt.raw, tt.quantity)
			}
			if *got.Quantity != tt.quantity {
				t.Errorf("Parse(%q).Quantity = %v, want %v", tt.raw, *got.Quantity, tt.quantity)
			}
			if got.Unit != tt.unit {
				t.Errorf("Parse(%q).Unit = %q, want %q", tt.raw, got.Unit, tt.unit)
			}
			if got.CorePhrase != tt.core {
				t.Errorf("Parse(%q).CorePhrase = %q, want %q", tt.raw, got.CorePhrase, tt.core)
			}
		})
	}
}

func TestParserWithoutQuantity(t *testing.T) {
	parser := NewParser(ParserConfig{})

	got := parser.Parse("salt to taste")
	if got.Quantity != nil {
		t.Errorf("Quantity = %v, want nil", *got.Quantity)
	}
	if got.Unit != "" {
		t.Errorf("Unit = %q, want empty", got.Unit)
	}
	if got.CorePhrase != "salt to taste" {
		t.Errorf("CorePhrase = %q, want the whole line", got.CorePhrase)
	}
}

func TestParserDescriptors(t *testing.T) {
	parser := NewParser(ParserConfig{})

	got := parser.Parse("1 (8 ounce) package cream cheese, softened")

	if got.Quantity == nil || *got.Quantity != 1 {
		t.Errorf("Quantity = %v, want 1", got.Quantity)
	}
	if got.Unit != "package" {
		t.Errorf("Unit = %q, want package", got.Unit)
	}
	if got.CorePhrase != "cream cheese" {
		t.Errorf("CorePhrase = %q, want %q", got.CorePhrase, "cream cheese")
	}
	want := []string{"8 ounce", "softened"}
	if !reflect.DeepEqual(got.Descriptors, want) {
		t.Errorf("Descriptors = %v, want %v", got.Descriptors, want)
	}
}

func TestParserTrailingClauses(t *testing.T) {
	parser := NewParser(ParserConfig{})

	got := parser.Parse("2 carrots, peeled, cut into 1-inch pieces")

	if got.CorePhrase != "carrots" {
		t.Errorf("CorePhrase = %q, want %q", got.CorePhrase, "carrots")
	}
	want := []string{"peeled", "cut into 1-inch pieces"}
	if !reflect.DeepEqual(got.Descriptors, want) {
		t.Errorf("Descriptors = %v, want %v", got.Descriptors, want)
	}
}

func TestParserExtraUnits(t *testing.T) {
	parser := NewParser(ParserConfig{
		ExtraUnits: map[string]string{"knob": "knob", "knobs": "knob"},
	})

	got := parser.Parse("1 knob ginger")
	if got.Unit != "knob" {
		t.Errorf("Unit = %q, want knob", got.Unit)
	}
	if got.CorePhrase != "ginger" {
		t.Errorf("CorePhrase = %q, want ginger", got.CorePhrase)
	}
}

func TestParserKeepsRawLine(t *testing.T) {
	parser := NewParser(ParserConfig{})

	raw := "  2 cups  Chopped Spinach "
	if got := parser.Parse(raw); got.Raw != raw {
		t.Errorf("Raw = %q, want the input preserved verbatim", got.Raw)
	}
}
