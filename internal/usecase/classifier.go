package usecase

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mealdex/dietengine/internal/domain"
)

// ketoCarbThreshold is the maximum grams of carbohydrate per 100g an
// ingredient may carry and still count as keto-compliant.
const ketoCarbThreshold = 10.0

// ClassifierConfig holds configuration for the classification service.
type ClassifierConfig struct {
	Policy   domain.Policy
	CacheTTL time.Duration
}

// ClassifierService runs the full pipeline (parse, normalize, match,
// aggregate) for single ingredients and whole recipes. It is a pure
// function of (ingredient list, taxonomy version, fallback policy): the
// taxonomy handle is read-only and never mutated, so one service instance is
// safe for any number of concurrent callers.
type ClassifierService struct {
	parser     *Parser
	normalizer *Normalizer
	matcher    *Matcher
	taxonomy   domain.TaxonomyIndex
	policy     domain.Policy
	cache      domain.LabelCache
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewClassifierService creates a classification service. The cache is
// optional; pass nil to recompute every label.
func NewClassifierService(
	taxonomy domain.TaxonomyIndex,
	cache domain.LabelCache,
	logger *zap.Logger,
	config ClassifierConfig,
) *ClassifierService {
	policy := config.Policy
	if policy == "" {
		policy = domain.PolicyFailClosed
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 720 * time.Hour // labels are stable per taxonomy version
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &ClassifierService{
		parser:     NewParser(ParserConfig{}),
		normalizer: NewNormalizer(),
		matcher:    NewMatcher(taxonomy),
		taxonomy:   taxonomy,
		policy:     policy,
		cache:      cache,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// Policy returns the configured fallback policy.
func (s *ClassifierService) Policy() domain.Policy {
	return s.policy
}

// TaxonomyVersion returns the version of the taxonomy the service resolves
// against.
func (s *ClassifierService) TaxonomyVersion() string {
	return s.taxonomy.Version()
}

// ClassifyIngredient runs one raw ingredient line through the pipeline.
// Unresolved phrases are a first-class outcome, not an error: both
// compliance fields stay nil so the aggregate policy decides how they count.
func (s *ClassifierService) ClassifyIngredient(raw string) domain.IngredientVerdict {
	parsed := s.parser.Parse(raw)
	normalized := s.normalizer.Normalize(parsed)
	entry, strategy := s.matcher.Resolve(normalized.CorePhrase)

	verdict := domain.IngredientVerdict{
		Raw:      raw,
		Phrase:   normalized.CorePhrase,
		Strategy: strategy,
	}

	if entry == nil {
		verdict.State = domain.StateUnresolved
		return verdict
	}

	verdict.State = domain.StateResolved
	verdict.MatchedEntry = entry

	vegan := !entry.IsAnimalDerived
	if normalized.ExplicitNegation && entry.IsAnimalDerived {
		// "meatless crumbles" resolves to the meat entry but declares its
		// absence, so the ingredient is vegan-compatible.
		vegan = true
	}

	keto := entry.CarbsPer100g == nil || *entry.CarbsPer100g <= ketoCarbThreshold

	verdict.IsVegan = &vegan
	verdict.IsKetoCompliant = &keto
	return verdict
}

// ClassifyRecipe computes the recipe-level label, consulting the label cache
// when one is configured. Blank ingredient lines are skipped.
func (s *ClassifierService) ClassifyRecipe(ctx context.Context, recipe domain.Recipe) (domain.RecipeLabel, error) {
	if recipe.ID == "" {
		return domain.RecipeLabel{}, domain.ErrInvalidRecipe
	}

	cacheKey := s.labelCacheKey(recipe)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey); err == nil && cached != nil {
			return *cached, nil
		}
	}

	verdicts := make([]domain.IngredientVerdict, 0, len(recipe.Ingredients))
	for _, line := range recipe.Ingredients {
		if strings.TrimSpace(line) == "" {
			continue
		}
		verdicts = append(verdicts, s.ClassifyIngredient(line))
	}

	label := AggregateLabel(recipe.ID, verdicts, s.taxonomy.Version(), s.policy)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, &label, s.cacheTTL); err != nil {
			s.logger.Debug("label cache write failed",
				zap.String("recipe_id", recipe.ID), zap.Error(err))
		}
	}

	return label, nil
}

// labelCacheKey keys a cached label by everything the label is a function
// of: the recipe's ingredient list, the taxonomy version, and the policy.
func (s *ClassifierService) labelCacheKey(recipe domain.Recipe) string {
	h := fnv.New64a()
	for _, line := range recipe.Ingredients {
		h.Write([]byte(line))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("label:%s:%s:%s:%x", recipe.ID, s.taxonomy.Version(), s.policy, h.Sum64())
}

// AggregateLabel folds per-ingredient verdicts into recipe-level vegan/keto
// booleans. Under fail-closed, an unknown verdict denies the label; under
// fail-open, unknowns are ignored and the result is the AND over resolved
// ingredients only. Both labels are independent.
func AggregateLabel(
	recipeID string,
	verdicts []domain.IngredientVerdict,
	taxonomyVersion string,
	policy domain.Policy,
) domain.RecipeLabel {
	vegan, keto := true, true
	for _, v := range verdicts {
		vegan = fold(vegan, v.IsVegan, policy)
		keto = fold(keto, v.IsKetoCompliant, policy)
	}
	return domain.RecipeLabel{
		RecipeID:        recipeID,
		Vegan:           vegan,
		Keto:            keto,
		TaxonomyVersion: taxonomyVersion,
	}
}

// fold combines one tri-state verdict into the running AND under the policy.
func fold(acc bool, verdict *bool, policy domain.Policy) bool {
	if verdict == nil {
		if policy == domain.PolicyFailOpen {
			return acc
		}
		return false
	}
	return acc && *verdict
}
