package domain

import "errors"

var (
	// ErrInvalidRecipe is returned when a recipe has no identifier.
	ErrInvalidRecipe = errors.New("invalid recipe")

	// ErrTaxonomyUnavailable is returned when the taxonomy dataset cannot be
	// found at load time.
	ErrTaxonomyUnavailable = errors.New("taxonomy dataset unavailable")

	// ErrCorruptTaxonomy is returned when the taxonomy dataset exists but
	// fails validation.
	ErrCorruptTaxonomy = errors.New("taxonomy dataset corrupt")

	// ErrUnknownPolicy is returned when a fallback policy string is not
	// recognized.
	ErrUnknownPolicy = errors.New("unknown fallback policy")

	// ErrGroundTruthUnreadable is returned when the evaluation ground-truth
	// file is missing or cannot be parsed at all.
	ErrGroundTruthUnreadable = errors.New("ground truth file unreadable")

	// ErrCacheMiss is returned when a label is not found in cache.
	ErrCacheMiss = errors.New("cache miss")
)
