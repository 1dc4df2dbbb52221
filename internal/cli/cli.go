package cli

import (
	"fmt"
	"os"
)

type UsageError struct {
	Message string
}

func (e UsageError) Error() string { return e.Message }

func Usage() string {
	return `fimgen: fill-in-the-middle training data generator

Usage:
  fimgen init
  fimgen generate --repo <path> [--out <dir>] [--format <format>] [--cursors <n>] [--max-commits <n>] [--seed <n>]
  fimgen generate --records <file.jsonl> [--out <dir>] [--format <format>] [--cursors <n>] [--seed <n>]
  fimgen synth --file <path> [--language <lang>] [--format <format>] [--cursors <n>] [--seed <n>]
  fimgen stats <dataset.jsonl>
  fimgen browse <dataset.jsonl>

Formats:
  prefix_suffix_middle | suffix_prefix_middle | zed_format | mixed
`
}

func Run(args []string) error {
	if len(args) == 0 {
		return UsageError{Message: "missing command"}
	}

	switch args[0] {
	case "help", "-h", "--help":
		fmt.Fprintln(os.Stdout, Usage())
		return nil
	case "init":
		if len(args) != 1 {
			return UsageError{Message: "init takes no arguments"}
		}
		return runInit()
	case "generate":
		return runGenerate(args[1:])
	case "synth":
		return runSynth(args[1:])
	case "stats":
		if len(args) != 2 {
			return UsageError{Message: "stats requires exactly 1 argument: <dataset.jsonl>"}
		}
		return runStats(args[1])
	case "browse":
		if len(args) != 2 {
			return UsageError{Message: "browse requires exactly 1 argument: <dataset.jsonl>"}
		}
		return runBrowse(args[1])
	default:
		return UsageError{Message: fmt.Sprintf("unknown command: %q", args[0])}
	}
}
