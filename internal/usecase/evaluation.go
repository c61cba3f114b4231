package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/mealdex/dietengine/internal/domain"
	"github.com/mealdex/dietengine/internal/infrastructure/groundtruth"
)

// ClassMetrics holds the confusion-matrix counts and derived scores for one
// label class.
type ClassMetrics struct {
	TruePositives  int
	FalsePositives int
	TrueNegatives  int
	FalseNegatives int
	Precision      float64
	Recall         float64
	F1             float64
}

// Report is the outcome of scoring the pipeline against a labeled sample.
type Report struct {
	Vegan     ClassMetrics
	Keto      ClassMetrics
	Accuracy  float64 // fraction of correct predictions across both classes
	Evaluated int     // rows scored
	Skipped   int     // malformed rows excluded before scoring
}

// Evaluator batch-scores the full pipeline against ground-truth rows.
type Evaluator struct {
	svc    *ClassifierService
	logger *zap.Logger
}

// NewEvaluator creates an evaluator around a classification service.
func NewEvaluator(svc *ClassifierService, logger *zap.Logger) *Evaluator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Evaluator{svc: svc, logger: logger}
}

// Evaluate classifies every row and tallies per-class precision, recall, and
// F1 plus overall accuracy. Misclassified rows are logged at debug level for
// auditing.
func (e *Evaluator) Evaluate(ctx context.Context, rows []groundtruth.Row) (Report, error) {
	var report Report

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		label, err := e.svc.ClassifyRecipe(ctx, domain.Recipe{
			ID:          row.RecipeID,
			Ingredients: row.Ingredients,
		})
		if err != nil {
			report.Skipped++
			continue
		}

		tally(&report.Vegan, row.Vegan, label.Vegan)
		tally(&report.Keto, row.Keto, label.Keto)
		report.Evaluated++

		if label.Vegan != row.Vegan {
			e.logger.Debug("vegan misclassification",
				zap.String("recipe_id", row.RecipeID),
				zap.Bool("expected", row.Vegan),
				zap.Bool("got", label.Vegan),
				zap.Strings("ingredients", row.Ingredients))
		}
		if label.Keto != row.Keto {
			e.logger.Debug("keto misclassification",
				zap.String("recipe_id", row.RecipeID),
				zap.Bool("expected", row.Keto),
				zap.Bool("got", label.Keto),
				zap.Strings("ingredients", row.Ingredients))
		}
	}

	finalize(&report.Vegan)
	finalize(&report.Keto)

	total := report.Evaluated * 2
	if total > 0 {
		correct := report.Vegan.TruePositives + report.Vegan.TrueNegatives +
			report.Keto.TruePositives + report.Keto.TrueNegatives
		report.Accuracy = float64(correct) / float64(total)
	}

	return report, nil
}

func tally(m *ClassMetrics, expected, got bool) {
	switch {
	case expected && got:
		m.TruePositives++
	case !expected && got:
		m.FalsePositives++
	case !expected && !got:
		m.TrueNegatives++
	default:
		m.FalseNegatives++
	}
}

func finalize(m *ClassMetrics) {
	if m.TruePositives+m.FalsePositives > 0 {
		m.Precision = float64(m.TruePositives) / float64(m.TruePositives+m.FalsePositives)
	}
	if m.TruePositives+m.FalseNegatives > 0 {
		m.Recall = float64(m.TruePositives) / float64(m.TruePositives+m.FalseNegatives)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
}
