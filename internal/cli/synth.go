package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/jbonatakis/fimgen/internal/dataset"
	"github.com/jbonatakis/fimgen/internal/mining"
	"github.com/jbonatakis/fimgen/internal/pipeline"
	"github.com/jbonatakis/fimgen/internal/record"
)

// runSynth synthesizes examples from one source file and prints them
// as JSONL on stdout; handy for inspecting what the pipeline does to a
// given input.
func runSynth(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fs := flag.NewFlagSet("synth", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	file := fs.String("file", "", "source file to synthesize from")
	language := fs.String("language", "", "language tag (default: from extension)")
	format := fs.String("format", cfg.Generation.Format, "prompt format")
	cursors := fs.Int("cursors", cfg.Generation.CursorsPerRecord, "cursor candidates")
	seed := fs.Int64("seed", cfg.Generation.Seed, "random seed (0 = from clock)")
	if err := fs.Parse(args); err != nil {
		return UsageError{Message: err.Error()}
	}
	if *file == "" {
		return UsageError{Message: "synth requires --file"}
	}
	if !record.Format(*format).Valid() {
		return UsageError{Message: fmt.Sprintf("unknown format: %q", *format)}
	}

	code, err := os.ReadFile(*file)
	if err != nil {
		return fmt.Errorf("read source file: %w", err)
	}
	lang := *language
	if lang == "" {
		lang = mining.LanguageForPath(*file)
	}

	log, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	p, err := pipeline.New(pipeline.Config{
		CursorsPerRecord: *cursors,
		Format:           record.Format(*format),
		Rand:             seededSource(*seed),
		Logger:           log,
	})
	if err != nil {
		return err
	}
	result := p.ProcessAll([]record.EditRecord{{
		AfterText: string(code),
		FilePath:  *file,
		Language:  lang,
	}})
	if len(result.Labeled) == 0 {
		return fmt.Errorf("no examples synthesized: input rejected by quality gate")
	}

	enc := json.NewEncoder(os.Stdout)
	for _, ex := range result.Labeled {
		if err := enc.Encode(ex); err != nil {
			return fmt.Errorf("encode example: %w", err)
		}
	}
	fmt.Fprintln(os.Stderr, dataset.Summarize(result.Labeled).Render())
	return nil
}

func runStats(path string) error {
	examples, err := dataset.ReadLabeled(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, dataset.Summarize(examples).Render())
	return nil
}
