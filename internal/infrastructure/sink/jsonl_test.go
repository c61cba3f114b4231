package sink

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealdex/dietengine/internal/domain"
)

func TestJSONLWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf)
	ctx := context.Background()

	labels := []domain.RecipeLabel{
		{RecipeID: "r1", Vegan: true, Keto: true, TaxonomyVersion: "test-1"},
		{RecipeID: "r2", Vegan: false, Keto: true, TaxonomyVersion: "test-1"},
	}
	for _, label := range labels {
		require.NoError(t, w.WriteLabel(ctx, label))
	}

	var got []domain.RecipeLabel
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var label domain.RecipeLabel
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &label))
		got = append(got, label)
	}
	require.NoError(t, scanner.Err())

	assert.Equal(t, labels, got)
}

func TestJSONLWriterConcurrent(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				_ = w.WriteLabel(ctx, domain.RecipeLabel{RecipeID: "r", TaxonomyVersion: "test-1"})
			}
		}()
	}
	wg.Wait()

	// Every line must still be a complete, parseable JSON object.
	lines := 0
	scanner := bufio.NewScanner(&buf)
	for scanner.Scan() {
		var label domain.RecipeLabel
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &label))
		lines++
	}
	assert.Equal(t, 200, lines)
}

func TestJSONLWriterCanceledContext(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONLWriter(&buf)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.WriteLabel(ctx, domain.RecipeLabel{RecipeID: "r1"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	ctx := context.Background()

	require.NoError(t, c.WriteLabel(ctx, domain.RecipeLabel{RecipeID: "r1"}))
	require.NoError(t, c.WriteLabel(ctx, domain.RecipeLabel{RecipeID: "r2"}))

	labels := c.Labels()
	require.Len(t, labels, 2)

	// The returned slice is a copy.
	labels[0].RecipeID = "mutated"
	assert.Equal(t, "r1", c.Labels()[0].RecipeID)
}
