package domain

import (
	"fmt"
	"strings"
)

// Policy controls how unresolved ingredients count toward recipe labels.
type Policy string

// Fallback policies for unresolved ingredients.
const (
	// PolicyFailClosed denies a label when any ingredient is unresolved. A
	// false "compliant" claim is the worse error for a dietary classifier,
	// so this is the default.
	PolicyFailClosed Policy = "fail_closed"

	// PolicyFailOpen ignores unresolved ingredients and aggregates over the
	// resolved ones only.
	PolicyFailOpen Policy = "fail_open"
)

// ParsePolicy normalizes a configured policy string. Both underscore and
// hyphen spellings are accepted.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case string(PolicyFailClosed):
		return PolicyFailClosed, nil
	case string(PolicyFailOpen):
		return PolicyFailOpen, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}
