// Package sink provides LabelSink implementations for handing computed
// labels to the external index/search layer.
package sink

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/mealdex/dietengine/internal/domain"
)

// JSONLWriter streams labels as JSON Lines to an io.Writer.
type JSONLWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

// NewJSONLWriter creates a sink writing one JSON object per line.
func NewJSONLWriter(w io.Writer) *JSONLWriter {
	return &JSONLWriter{enc: json.NewEncoder(w)}
}

// WriteLabel encodes one label. Safe for concurrent callers.
func (s *JSONLWriter) WriteLabel(ctx context.Context, label domain.RecipeLabel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enc.Encode(label)
}

// Collector accumulates labels in memory, mainly for tests and dry runs.
type Collector struct {
	mu     sync.Mutex
	labels []domain.RecipeLabel
}

// NewCollector creates an in-memory sink.
func NewCollector() *Collector {
	return &Collector{}
}

// WriteLabel appends one label. Safe for concurrent callers.
func (c *Collector) WriteLabel(ctx context.Context, label domain.RecipeLabel) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.labels = append(c.labels, label)
	return nil
}

// Labels returns a copy of everything collected so far.
func (c *Collector) Labels() []domain.RecipeLabel {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.RecipeLabel, len(c.labels))
	copy(out, c.labels)
	return out
}
