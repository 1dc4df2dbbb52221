package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jbonatakis/fimgen/internal/dataset"
)

func wantUsageError(t *testing.T, err error) {
	t.Helper()
	var usageErr UsageError
	if !errors.As(err, &usageErr) {
		t.Fatalf("want UsageError, got %v", err)
	}
}

func TestRun_NoCommand(t *testing.T) {
	wantUsageError(t, Run(nil))
}

func TestRun_UnknownCommand(t *testing.T) {
	wantUsageError(t, Run([]string{"frobnicate"}))
}

func TestRun_Help(t *testing.T) {
	if err := Run([]string{"help"}); err != nil {
		t.Fatalf("help: %v", err)
	}
}

func TestRun_ArgCounts(t *testing.T) {
	wantUsageError(t, Run([]string{"init", "extra"}))
	wantUsageError(t, Run([]string{"stats"}))
	wantUsageError(t, Run([]string{"stats", "a", "b"}))
	wantUsageError(t, Run([]string{"browse"}))
}

func TestGenerate_SourceFlags(t *testing.T) {
	wantUsageError(t, Run([]string{"generate"}))
	wantUsageError(t, Run([]string{"generate", "--repo", "x", "--records", "y"}))
	wantUsageError(t, Run([]string{"generate", "--records", "x", "--format", "nope"}))
	wantUsageError(t, Run([]string{"generate", "--records", "x", "positional"}))
}

func TestSynth_RequiresFile(t *testing.T) {
	wantUsageError(t, Run([]string{"synth"}))
	wantUsageError(t, Run([]string{"synth", "--file", "x.py", "--format", "nope"}))
}

func TestGenerate_FromRecords(t *testing.T) {
	dir := t.TempDir()
	records := filepath.Join(dir, "records.jsonl")
	content := `{"afterText":"def add(a, b):\n    total = a + b\n    return total\n","diffText":"+    total = a + b\n","filePath":"app.py","commitId":"abc123","language":"python"}` + "\n"
	if err := os.WriteFile(records, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "dataset")
	err := Run([]string{"generate",
		"--records", records,
		"--out", out,
		"--format", "zed_format",
		"--cursors", "2",
		"--seed", "7",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, name := range []string{"train.jsonl", "test.jsonl", "dpo.jsonl"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}

	train, err := dataset.ReadLabeled(filepath.Join(out, "train.jsonl"))
	if err != nil {
		t.Fatal(err)
	}
	if len(train) == 0 {
		t.Fatal("train.jsonl is empty")
	}
}

func TestStats_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.jsonl")
	content := `{"id":"a","prompt":"p","completion":"c","label":true,"metadata":{"language":"python"}}` + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Run([]string{"stats", path}); err != nil {
		t.Fatalf("stats: %v", err)
	}
}

func TestStats_MissingFile(t *testing.T) {
	err := Run([]string{"stats", filepath.Join(t.TempDir(), "nope.jsonl")})
	if err == nil {
		t.Fatal("want error for missing dataset")
	}
}
