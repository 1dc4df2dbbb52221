package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/jbonatakis/fimgen/internal/config"
	"github.com/jbonatakis/fimgen/internal/dataset"
	"github.com/jbonatakis/fimgen/internal/mining"
	"github.com/jbonatakis/fimgen/internal/pipeline"
	"github.com/jbonatakis/fimgen/internal/quality"
	"github.com/jbonatakis/fimgen/internal/record"
	"github.com/jbonatakis/fimgen/internal/rng"
)

func runInit() error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	path, err := config.WriteDefault(wd)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", path)
	return nil
}

type generateFlags struct {
	repo       string
	records    string
	out        string
	format     string
	cursors    int
	maxCommits int
	seed       int64
}

func runGenerate(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var gf generateFlags
	fs.StringVar(&gf.repo, "repo", "", "path to a local git repository to mine")
	fs.StringVar(&gf.records, "records", "", "path to a pre-mined edit-record JSONL file")
	fs.StringVar(&gf.out, "out", cfg.Dataset.OutputDir, "output directory")
	fs.StringVar(&gf.format, "format", cfg.Generation.Format, "prompt format")
	fs.IntVar(&gf.cursors, "cursors", cfg.Generation.CursorsPerRecord, "cursor candidates per record")
	fs.IntVar(&gf.maxCommits, "max-commits", cfg.Mining.MaxCommits, "commits to mine")
	fs.Int64Var(&gf.seed, "seed", cfg.Generation.Seed, "random seed (0 = from clock)")
	if err := fs.Parse(args); err != nil {
		return UsageError{Message: err.Error()}
	}
	if fs.NArg() != 0 {
		return UsageError{Message: "generate takes flags only"}
	}
	if (gf.repo == "") == (gf.records == "") {
		return UsageError{Message: "generate requires exactly one of --repo or --records"}
	}
	if !record.Format(gf.format).Valid() {
		return UsageError{Message: fmt.Sprintf("unknown format: %q", gf.format)}
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	records, err := collectRecords(gf, cfg, log)
	if err != nil {
		return err
	}
	log.Info("records collected", zap.Int("count", len(records)))

	gate := quality.DefaultGate()
	gate.MinChangedLines = cfg.Mining.MinChangedLines

	p, err := pipeline.New(pipeline.Config{
		CursorsPerRecord:    gf.cursors,
		Format:              record.Format(gf.format),
		RequireSemanticDiff: true,
		Gate:                gate,
		Rand:                seededSource(gf.seed),
		Logger:              log,
	})
	if err != nil {
		return err
	}
	result := p.ProcessAll(records)
	log.Info("synthesis complete",
		zap.Int("positives", len(result.Positives)),
		zap.Int("labeled", len(result.Labeled)),
		zap.Int("recordsRejected", result.RecordsRejected),
		zap.Int("buildsFailed", result.BuildsFailed))

	if err := writeOutputs(gf.out, result, cfg.Dataset.TestFraction, gf.seed); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, dataset.Summarize(result.Labeled).Render())
	return nil
}

func collectRecords(gf generateFlags, cfg config.ResolvedConfig, log *zap.Logger) ([]record.EditRecord, error) {
	if gf.records != "" {
		return mining.ReadRecords(gf.records)
	}
	miner := mining.New(gf.repo,
		mining.WithMaxCommits(gf.maxCommits),
		mining.WithLogger(log))
	return miner.Mine(context.Background())
}

func writeOutputs(out string, result pipeline.Result, testFraction float64, seed int64) error {
	train, test := dataset.Split(result.Labeled, testFraction, seededSource(seed))
	if err := dataset.WriteJSONL(filepath.Join(out, "train.jsonl"), train); err != nil {
		return err
	}
	if err := dataset.WriteJSONL(filepath.Join(out, "test.jsonl"), test); err != nil {
		return err
	}
	pairs := dataset.BuildDPOPairs(result.Labeled)
	if err := dataset.WriteJSONL(filepath.Join(out, "dpo.jsonl"), pairs); err != nil {
		return err
	}
	return nil
}

func loadConfig() (config.ResolvedConfig, error) {
	wd, err := os.Getwd()
	if err != nil {
		return config.DefaultResolvedConfig(), nil
	}
	return config.LoadConfig(wd)
}

func seededSource(seed int64) rng.Source {
	if seed == 0 {
		return rng.Default()
	}
	return rng.Seeded(seed)
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return log, nil
}
