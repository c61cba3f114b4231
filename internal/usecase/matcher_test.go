package usecase

import (
	"testing"

	"github.com/mealdex/dietengine/internal/domain"
	"github.com/mealdex/dietengine/internal/infrastructure/taxonomy"
)

func TestMatcherResolve(t *testing.T) {
	matcher := NewMatcher(taxonomy.Default())

	tests := []struct {
		name     string
		phrase   string
		entry    string // expected canonical name, "" for unresolved
		strategy domain.MatchStrategy
	}{
		{
			name:     "exact canonical name",
			phrase:   "zucchini",
			entry:    "zucchini",
			strategy: domain.MatchExact,
		},
		{
			name:     "exact alias",
			phrase:   "courgette",
			entry:    "zucchini",
			strategy: domain.MatchExact,
		},
		{
			name:     "exact multi-word alias",
			phrase:   "red bell pepper",
			entry:    "bell pepper",
			strategy: domain.MatchExact,
		},
		{
			name:     "compound beats its constituents",
			phrase:   "peanut butter",
			entry:    "peanut butter",
			strategy: domain.MatchExact,
		},
		{
			name:     "protected phrase inside a longer phrase",
			phrase:   "creamy peanut butter",
			entry:    "peanut butter",
			strategy: domain.MatchProtectedPhrase,
		},
		{
			name:     "protected almond milk never resolves as milk",
			phrase:   "unsweetened almond milk",
			entry:    "almond milk",
			strategy: domain.MatchProtectedPhrase,
		},
		{
			name:     "whole word fallback",
			phrase:   "leftover bacon bits",
			entry:    "bacon",
			strategy: domain.MatchWholeWord,
		},
		{
			name:     "whole word scans left to right",
			phrase:   "egg noodle",
			entry:    "egg",
			strategy: domain.MatchWholeWord,
		},
		{
			name:     "eggplant is not egg",
			phrase:   "eggplant",
			entry:    "eggplant",
			strategy: domain.MatchExact,
		},
		{
			name:     "unresolved phrase",
			phrase:   "dragon fruit",
			strategy: domain.MatchNone,
		},
		{
			name:     "empty phrase",
			phrase:   "",
			strategy: domain.MatchNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, strategy := matcher.Resolve(tt.phrase)

			if strategy != tt.strategy {
				t.Errorf("Resolve(%q) strategy = %s, want %s", tt.phrase, strategy, tt.strategy)
			}
			if tt.entry == "" {
				if entry != nil {
					t.Errorf("Resolve(%q) = %q, want unresolved", tt.phrase, entry.CanonicalName)
				}
				return
			}
			if entry == nil {
				t.Fatalf("Resolve(%q) = nil, want %q", tt.phrase, tt.entry)
			}
			if entry.CanonicalName != tt.entry {
				t.Errorf("Resolve(%q) = %q, want %q", tt.phrase, entry.CanonicalName, tt.entry)
			}
		})
	}
}

// Protected phrases must be tried longest first: a phrase containing
// "extra virgin olive oil" resolves through the four-word alias rather than
// the two-word "olive oil" run it also contains.
func TestMatcherProtectedPhraseOrdering(t *testing.T) {
	carbs := func(v float64) *float64 { return &v }
	tax, err := taxonomy.New("test-1", []domain.TaxonomyEntry{
		{CanonicalName: "olive oil", Category: domain.CategoryFat},
		{CanonicalName: "chili olive oil", CarbsPer100g: carbs(2), Category: domain.CategoryFat},
	})
	if err != nil {
		t.Fatalf("New taxonomy: %v", err)
	}

	matcher := NewMatcher(tax)

	entry, strategy := matcher.Resolve("homemade chili olive oil")
	if strategy != domain.MatchProtectedPhrase {
		t.Fatalf("strategy = %s, want %s", strategy, domain.MatchProtectedPhrase)
	}
	if entry.CanonicalName != "chili olive oil" {
		t.Errorf("entry = %q, want the longer compound", entry.CanonicalName)
	}
}

func TestContainsContiguous(t *testing.T) {
	tokens := []string{"creamy", "peanut", "butter", "spread"}

	tests := []struct {
		words []string
		want  bool
	}{
		{[]string{"peanut", "butter"}, true},
		{[]string{"creamy", "peanut"}, true},
		{[]string{"butter", "spread"}, true},
		{[]string{"peanut", "spread"}, false},
		{[]string{"butter", "peanut"}, false},
		{[]string{}, false},
		{[]string{"creamy", "peanut", "butter", "spread", "jar"}, false},
	}

	for _, tt := range tests {
		if got := containsContiguous(tokens, tt.words); got != tt.want {
			t.Errorf("containsContiguous(%v, %v) = %v, want %v", tokens, tt.words, got, tt.want)
		}
	}
}
