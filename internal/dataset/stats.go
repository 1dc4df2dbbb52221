package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jbonatakis/fimgen/internal/record"
)

// Stats summarizes a labeled dataset for the stats command and the
// browser footer.
type Stats struct {
	Total      int            `json:"total"`
	Positives  int            `json:"positives"`
	Negatives  int            `json:"negatives"`
	ByLanguage map[string]int `json:"byLanguage,omitempty"`
	ByMethod   map[string]int `json:"byMethod,omitempty"`

	AvgPromptLength     float64 `json:"avgPromptLength"`
	AvgCompletionLength float64 `json:"avgCompletionLength"`
}

func Summarize(examples []record.LabeledExample) Stats {
	stats := Stats{
		Total:      len(examples),
		ByLanguage: map[string]int{},
		ByMethod:   map[string]int{},
	}
	promptChars := 0
	completionChars := 0
	for _, ex := range examples {
		if ex.Label {
			stats.Positives++
		} else {
			stats.Negatives++
			if ex.Metadata.DegradationMethod != "" {
				stats.ByMethod[ex.Metadata.DegradationMethod]++
			}
		}
		if ex.Metadata.Language != "" {
			stats.ByLanguage[ex.Metadata.Language]++
		}
		promptChars += len(ex.Prompt)
		completionChars += len(ex.Completion)
	}
	if stats.Total > 0 {
		stats.AvgPromptLength = float64(promptChars) / float64(stats.Total)
		stats.AvgCompletionLength = float64(completionChars) / float64(stats.Total)
	}
	return stats
}

// Render formats stats as the aligned text block printed by the CLI.
func (s Stats) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "examples:    %d (%d positive, %d negative)\n", s.Total, s.Positives, s.Negatives)
	fmt.Fprintf(&b, "avg prompt:  %.1f chars\n", s.AvgPromptLength)
	fmt.Fprintf(&b, "avg compl.:  %.1f chars\n", s.AvgCompletionLength)
	if len(s.ByLanguage) > 0 {
		fmt.Fprintf(&b, "languages:\n")
		for _, k := range sortedKeys(s.ByLanguage) {
			fmt.Fprintf(&b, "  %-12s %d\n", k, s.ByLanguage[k])
		}
	}
	if len(s.ByMethod) > 0 {
		fmt.Fprintf(&b, "degradations:\n")
		for _, k := range sortedKeys(s.ByMethod) {
			fmt.Fprintf(&b, "  %-16s %d\n", k, s.ByMethod[k])
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
