package domain

import (
	"context"
	"time"
)

// LabelCache defines the interface for caching computed recipe labels.
// Labels are stable for a given taxonomy version, so cache keys must
// incorporate it.
type LabelCache interface {
	Get(ctx context.Context, key string) (*RecipeLabel, error)
	Set(ctx context.Context, key string, label *RecipeLabel, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// LabelSink receives computed labels for whatever index/store the search
// layer queries. Implementations own their own batching and retries.
type LabelSink interface {
	WriteLabel(ctx context.Context, label RecipeLabel) error
}
