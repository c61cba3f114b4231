package usecase

import (
	"testing"

	"github.com/mealdex/dietengine/internal/domain"
)

func TestNormalizeCorePhrase(t *testing.T) {
	normalizer := NewNormalizer()

	tests := []struct {
		name   string
		phrase string
		want   string
	}{
		{"lowercases", "Fresh Zucchini", "zucchini"},
		{"strips descriptors", "boneless skinless chicken breast", "chicken breast"},
		{"strips stopwords", "juice of a lemon", "juice lemon"},
		{"strips punctuation", "extra-virgin olive oil!", "extra virgin olive oil"},
		{"singularizes plurals", "tomatoes", "tomato"},
		{"singularizes irregular plurals", "basil leaves", "basil leaf"},
		{"keeps short tokens", "oat bran", "oat bran"},
		{"keeps uncountables", "hummus", "hummus"},
		{"keeps identity modifiers", "ground beef", "ground beef"},
		{"keeps whole milk", "whole milk", "whole milk"},
		{"drops numeric tokens", "2 zucchini", "zucchini"},
		{"drops fat descriptors", "fat-free plain yogurt", "plain yogurt"},
		{"drops low fat", "low fat sour cream", "sour cream"},
		{"empty phrase stays empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizer.Normalize(domain.ParsedIngredient{CorePhrase: tt.phrase})
			if got.CorePhrase != tt.want {
				t.Errorf("Normalize(%q).CorePhrase = %q, want %q", tt.phrase, got.CorePhrase, tt.want)
			}
		})
	}
}

func TestNormalizeNegation(t *testing.T) {
	normalizer := NewNormalizer()

	tests := []struct {
		name    string
		phrase  string
		want    string
		negated bool
	}{
		{"less suffix on ingredient marker", "eggless mayonnaise", "egg mayonnaise", true},
		{"hyphenated free marker", "dairy-free yogurt", "dairy yogurt", true},
		{"spelled out free marker", "gluten free bread", "gluten bread", true},
		{"no prefix", "no meat broth", "meat broth", true},
		{"non prefix", "non-dairy creamer", "dairy creamer", true},
		{"without prefix", "stock without fish", "stock fish", true},
		{"fat-free is not a negation", "fat-free yogurt", "yogurt", false},
		{"free range is not a negation", "free range chicken", "range chicken", false},
		{"seedless is not a negation", "seedless grapes", "seedless grape", false},
		{"plain phrase", "peanut butter", "peanut butter", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizer.Normalize(domain.ParsedIngredient{CorePhrase: tt.phrase})
			if got.CorePhrase != tt.want {
				t.Errorf("Normalize(%q).CorePhrase = %q, want %q", tt.phrase, got.CorePhrase, tt.want)
			}
			if got.ExplicitNegation != tt.negated {
				t.Errorf("Normalize(%q).ExplicitNegation = %v, want %v", tt.phrase, got.ExplicitNegation, tt.negated)
			}
		})
	}
}

func TestNormalizePreservesParsedFields(t *testing.T) {
	normalizer := NewNormalizer()

	qty := 2.0
	parsed := domain.ParsedIngredient{
		Raw:         "2 cups Chopped Zucchini",
		Quantity:    &qty,
		Unit:        "cup",
		Descriptors: []string{"chopped"},
		CorePhrase:  "Chopped Zucchini",
	}

	got := normalizer.Normalize(parsed)

	if got.Raw != parsed.Raw || got.Unit != parsed.Unit || got.Quantity != parsed.Quantity {
		t.Errorf("Normalize mutated parse metadata: got %+v", got)
	}
	if got.CorePhrase != "zucchini" {
		t.Errorf("CorePhrase = %q, want zucchini", got.CorePhrase)
	}
	if parsed.CorePhrase != "Chopped Zucchini" {
		t.Error("Normalize mutated its input")
	}
}
