package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mealdex/dietengine/config"
	"github.com/mealdex/dietengine/internal/domain"
	"github.com/mealdex/dietengine/internal/infrastructure/cache"
	"github.com/mealdex/dietengine/internal/infrastructure/groundtruth"
	"github.com/mealdex/dietengine/internal/infrastructure/sink"
	"github.com/mealdex/dietengine/internal/infrastructure/taxonomy"
	"github.com/mealdex/dietengine/internal/logging"
	"github.com/mealdex/dietengine/internal/usecase"
)

type appOptions struct {
	configFile   string
	taxonomyPath string
	policy       string
	logLevel     string
}

// app bundles the wired pipeline shared by all subcommands.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	tax    *taxonomy.Taxonomy
	svc    *usecase.ClassifierService
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &appOptions{}

	root := &cobra.Command{
		Use:           "dietengine",
		Short:         "Deterministic vegan/keto classification for recipe ingredient lists",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configFile, "config", "", "path to a config file (default: search ., ./config, /etc/dietengine)")
	root.PersistentFlags().StringVar(&opts.taxonomyPath, "taxonomy", "", "path to a taxonomy JSON dataset (default: built-in table)")
	root.PersistentFlags().StringVar(&opts.policy, "policy", "", "fallback policy for unresolved ingredients (fail_closed or fail_open)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(newClassifyCmd(opts))
	root.AddCommand(newEvaluateCmd(opts))
	root.AddCommand(newTaxonomyCmd(opts))

	return root
}

// buildApp loads configuration, applies flag overrides, and wires the
// pipeline. A missing or corrupt taxonomy fails here, before any work
// starts.
func buildApp(opts *appOptions) (*app, error) {
	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, err
	}
	if opts.taxonomyPath != "" {
		cfg.Taxonomy.Path = opts.taxonomyPath
	}
	if opts.policy != "" {
		cfg.Classifier.Policy = opts.policy
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}

	logger, err := logging.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return nil, err
	}

	var tax *taxonomy.Taxonomy
	if cfg.Taxonomy.Path != "" {
		tax, err = taxonomy.Load(cfg.Taxonomy.Path)
		if err != nil {
			return nil, err
		}
	} else {
		tax = taxonomy.Default()
	}

	policy, err := domain.ParsePolicy(cfg.Classifier.Policy)
	if err != nil {
		return nil, err
	}

	svc := usecase.NewClassifierService(tax, cache.NewMemoryCache(), logger, usecase.ClassifierConfig{
		Policy:   policy,
		CacheTTL: cfg.Classifier.CacheTTL,
	})

	logger.Info("taxonomy loaded",
		zap.String("version", tax.Version()),
		zap.Int("entries", tax.Len()),
		zap.String("policy", string(policy)))

	return &app{cfg: cfg, logger: logger, tax: tax, svc: svc}, nil
}

func newClassifyCmd(opts *appOptions) *cobra.Command {
	var (
		inputPath  string
		outputPath string
		workers    int
		sinkRate   float64
		sinkBurst  int
	)

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify recipes from JSON Lines and emit labels",
		Long: `Reads recipes as JSON Lines ({"id": "...", "ingredients": ["..."]}),
classifies them across a worker pool, and writes RecipeLabel JSON Lines.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(opts)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			in := cmd.InOrStdin()
			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			out := cmd.OutOrStdout()
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			recipes, malformed, err := readRecipes(in, a.logger)
			if err != nil {
				return err
			}
			if malformed > 0 {
				a.logger.Warn("skipped malformed input lines", zap.Int("lines", malformed))
			}

			if workers == 0 {
				workers = a.cfg.Classifier.Workers
			}
			if sinkRate == 0 {
				sinkRate = a.cfg.Batch.SinkRateLimit
			}
			if sinkBurst == 0 {
				sinkBurst = a.cfg.Batch.SinkBurst
			}

			runner := usecase.NewBatchRunner(a.svc, a.logger, usecase.BatchConfig{
				Workers:       workers,
				SinkRateLimit: sinkRate,
				SinkBurst:     sinkBurst,
			})

			_, err = runner.Run(cmd.Context(), recipes, sink.NewJSONLWriter(out))
			return err
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "recipes JSONL file (default: stdin)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "labels JSONL file (default: stdout)")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent workers (0 = one per CPU)")
	cmd.Flags().Float64Var(&sinkRate, "sink-rate", 0, "max labels/sec written to the sink (0 = unlimited)")
	cmd.Flags().IntVar(&sinkBurst, "sink-burst", 0, "sink rate limiter burst")

	return cmd
}

func newEvaluateCmd(opts *appOptions) *cobra.Command {
	var groundTruthPath string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Score the pipeline against a labeled ground-truth CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(opts)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			rows, skipped, err := groundtruth.ReadFile(groundTruthPath)
			if err != nil {
				return err
			}

			evaluator := usecase.NewEvaluator(a.svc, a.logger)
			report, err := evaluator.Evaluate(cmd.Context(), rows)
			if err != nil {
				return err
			}
			report.Skipped += skipped

			printReport(cmd.OutOrStdout(), a.tax.Version(), report)
			return nil
		},
	}

	cmd.Flags().StringVar(&groundTruthPath, "ground-truth", "", "path to the ground-truth CSV (required)")
	cmd.MarkFlagRequired("ground-truth")

	return cmd
}

func newTaxonomyCmd(opts *appOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "taxonomy",
		Short: "Show the loaded taxonomy version and entry counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(opts)
			if err != nil {
				return err
			}
			defer a.logger.Sync()

			fmt.Fprintf(cmd.OutOrStdout(), "version: %s\n", a.tax.Version())
			fmt.Fprintf(cmd.OutOrStdout(), "entries: %d\n", a.tax.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "protected phrases: %d\n", len(a.tax.Protected()))
			return nil
		},
	}
}

// readRecipes parses JSON Lines into recipes. Malformed lines are counted
// and skipped; recipes without an id get one derived from their line number.
func readRecipes(r io.Reader, logger *zap.Logger) ([]domain.Recipe, int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var recipes []domain.Recipe
	malformed := 0
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var recipe domain.Recipe
		if err := json.Unmarshal(line, &recipe); err != nil {
			malformed++
			logger.Debug("malformed recipe line", zap.Int("line", lineNo), zap.Error(err))
			continue
		}
		if recipe.ID == "" {
			recipe.ID = fmt.Sprintf("recipe-%d", lineNo)
		}
		recipes = append(recipes, recipe)
	}

	if err := scanner.Err(); err != nil {
		return nil, malformed, fmt.Errorf("read recipes: %w", err)
	}
	return recipes, malformed, nil
}

func printReport(w io.Writer, taxonomyVersion string, report usecase.Report) {
	fmt.Fprintf(w, "Taxonomy version: %s\n", taxonomyVersion)
	fmt.Fprintf(w, "Rows evaluated: %d (skipped %d malformed)\n\n", report.Evaluated, report.Skipped)

	fmt.Fprintf(w, "%-8s %-10s %-10s %-10s\n", "class", "precision", "recall", "f1")
	printClass(w, "vegan", report.Vegan)
	printClass(w, "keto", report.Keto)

	fmt.Fprintf(w, "\nOverall accuracy: %.3f\n", report.Accuracy)
}

func printClass(w io.Writer, name string, m usecase.ClassMetrics) {
	fmt.Fprintf(w, "%-8s %-10.3f %-10.3f %-10.3f\n", name, m.Precision, m.Recall, m.F1)
}
