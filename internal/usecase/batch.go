package usecase

import (
	"context"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/mealdex/dietengine/internal/domain"
)

// BatchConfig holds configuration for a batch classification run.
type BatchConfig struct {
	// Workers is the number of concurrent classification workers.
	// Zero means one per CPU.
	Workers int

	// SinkRateLimit caps labels written to the sink per second. Zero means
	// unlimited. The classification itself is never throttled; only the
	// handoff to the external index is.
	SinkRateLimit float64

	// SinkBurst is the limiter burst size. Zero defaults to 1.
	SinkBurst int
}

// BatchRunner classifies recipes across a worker pool and streams the
// resulting labels to a sink. Classification is pure and per-recipe
// independent, so workers share the read-only taxonomy with no locking, and
// reruns over the same input are idempotent.
type BatchRunner struct {
	svc     *ClassifierService
	workers int
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewBatchRunner creates a batch runner around a classification service.
func NewBatchRunner(svc *ClassifierService, logger *zap.Logger, config BatchConfig) *BatchRunner {
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var limiter *rate.Limiter
	if config.SinkRateLimit > 0 {
		burst := config.SinkBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(config.SinkRateLimit), burst)
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &BatchRunner{svc: svc, workers: workers, limiter: limiter, logger: logger}
}

// Run classifies every recipe and writes each label to the sink. Invalid
// recipes (no identifier) are skipped with a warning rather than aborting
// the batch; sink failures abort it. Returns the number of labels written.
func (r *BatchRunner) Run(ctx context.Context, recipes []domain.Recipe, sink domain.LabelSink) (int, error) {
	g, gctx := errgroup.WithContext(ctx)

	jobs := make(chan domain.Recipe)
	labels := make(chan domain.RecipeLabel, r.workers)

	g.Go(func() error {
		defer close(jobs)
		for _, recipe := range recipes {
			select {
			case jobs <- recipe:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	g.Go(func() error {
		defer close(labels)
		workers, wctx := errgroup.WithContext(gctx)
		for i := 0; i < r.workers; i++ {
			workers.Go(func() error {
				for recipe := range jobs {
					label, err := r.svc.ClassifyRecipe(wctx, recipe)
					if err != nil {
						r.logger.Warn("skipping recipe",
							zap.String("recipe_id", recipe.ID), zap.Error(err))
						continue
					}
					select {
					case labels <- label:
					case <-wctx.Done():
						return wctx.Err()
					}
				}
				return nil
			})
		}
		return workers.Wait()
	})

	var written int
	g.Go(func() error {
		for label := range labels {
			if r.limiter != nil {
				if err := r.limiter.Wait(gctx); err != nil {
					return err
				}
			}
			if err := sink.WriteLabel(gctx, label); err != nil {
				return fmt.Errorf("write label for recipe %s: %w", label.RecipeID, err)
			}
			written++
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return written, err
	}

	r.logger.Info("batch classification complete",
		zap.Int("recipes", len(recipes)),
		zap.Int("labels", written),
		zap.String("taxonomy_version", r.svc.TaxonomyVersion()),
		zap.String("policy", string(r.svc.Policy())))
	return written, nil
}
