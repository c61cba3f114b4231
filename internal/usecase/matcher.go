package usecase

import (
	"strings"

	"github.com/mealdex/dietengine/internal/domain"
)

// matchRule is one tagged resolution strategy. Rules are evaluated in order
// and the first hit wins; fixing a new failure mode means adding taxonomy or
// protected-phrase entries, not editing control flow here.
type matchRule struct {
	strategy domain.MatchStrategy
	resolve  func(phrase string, tokens []string) *domain.TaxonomyEntry
}

// Matcher resolves a normalized phrase to zero-or-one taxonomy entries using
// a priority-ordered strategy sequence:
//
//  1. exact canonical-name or alias match on the full phrase
//  2. protected-phrase match (compound entries, longest first)
//  3. whole-word match with token-boundary alignment
//
// Token-boundary alignment is what keeps "egg" from matching inside
// "eggless" or "eggplant": matching operates on whole tokens, never on raw
// substrings.
type Matcher struct {
	taxonomy domain.TaxonomyIndex
	rules    []matchRule
}

// NewMatcher creates a matcher over the given read-only taxonomy handle.
func NewMatcher(taxonomy domain.TaxonomyIndex) *Matcher {
	m := &Matcher{taxonomy: taxonomy}
	m.rules = []matchRule{
		{strategy: domain.MatchExact, resolve: m.resolveExact},
		{strategy: domain.MatchProtectedPhrase, resolve: m.resolveProtected},
		{strategy: domain.MatchWholeWord, resolve: m.resolveWholeWord},
	}
	return m
}

// Resolve maps a normalized phrase to a taxonomy entry and the strategy that
// produced it, or (nil, MatchNone) when the phrase is unresolved.
func (m *Matcher) Resolve(phrase string) (*domain.TaxonomyEntry, domain.MatchStrategy) {
	tokens := strings.Fields(phrase)
	if len(tokens) == 0 {
		return nil, domain.MatchNone
	}
	for _, rule := range m.rules {
		if entry := rule.resolve(phrase, tokens); entry != nil {
			return entry, rule.strategy
		}
	}
	return nil, domain.MatchNone
}

func (m *Matcher) resolveExact(phrase string, _ []string) *domain.TaxonomyEntry {
	if entry, ok := m.taxonomy.Lookup(phrase); ok {
		return entry
	}
	return nil
}

// resolveProtected scans for any compound entry whose constituent words
// appear contiguously in the phrase. The taxonomy orders protected phrases
// longest first, so "extra virgin olive oil" beats "olive oil".
func (m *Matcher) resolveProtected(_ string, tokens []string) *domain.TaxonomyEntry {
	for _, pp := range m.taxonomy.Protected() {
		if containsContiguous(tokens, pp.Words) {
			return pp.Entry
		}
	}
	return nil
}

// resolveWholeWord matches individual tokens against single-word entries,
// scanning left to right.
func (m *Matcher) resolveWholeWord(_ string, tokens []string) *domain.TaxonomyEntry {
	for _, tok := range tokens {
		if entry, ok := m.taxonomy.LookupWord(tok); ok {
			return entry
		}
	}
	return nil
}

// containsContiguous reports whether words appears as a contiguous run
// inside tokens.
func containsContiguous(tokens, words []string) bool {
	if len(words) == 0 || len(words) > len(tokens) {
		return false
	}
outer:
	for i := 0; i+len(words) <= len(tokens); i++ {
		for j := range words {
			if tokens[i+j] != words[j] {
				continue outer
			}
		}
		return true
	}
	return false
}
