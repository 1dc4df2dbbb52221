package quality

import "strings"

// Gate filters code snapshots and diffs before example synthesis. All
// checks are best-effort heuristics: the gate never returns an error,
// it only answers accept or reject.
type Gate struct {
	MinLength       int
	MaxLength       int
	MaxCommentRatio float64
	// BracketImbalanceLimit is the number of unmatched opening
	// braces/parens tolerated by the syntax-plausibility check. It is
	// a tunable heuristic, not a correctness guarantee.
	BracketImbalanceLimit int
	// MinChangedLines is the number of substantive added/removed diff
	// lines required for a change to count as semantic.
	MinChangedLines int
}

func DefaultGate() Gate {
	return Gate{
		MinLength:             10,
		MaxLength:             100_000,
		MaxCommentRatio:       0.5,
		BracketImbalanceLimit: 4,
		MinChangedLines:       1,
	}
}

var conflictMarkers = []string{"<<<<<<<", ">>>>>>>"}

var generatedSignatures = []string{
	"auto-generated",
	"autogenerated",
	"do not edit",
	"code generated by",
	"@generated",
	"generated file",
	"this file was generated",
}

// PassesQualityChecks reports whether code is worth synthesizing
// examples from. Unknown languages skip the comment-ratio and
// syntax-plausibility checks.
func (g Gate) PassesQualityChecks(code, language string) bool {
	if strings.TrimSpace(code) == "" {
		return false
	}
	if len(code) < g.MinLength || len(code) > g.MaxLength {
		return false
	}
	for _, marker := range conflictMarkers {
		if strings.Contains(code, marker) {
			return false
		}
	}
	lowered := strings.ToLower(code)
	for _, sig := range generatedSignatures {
		if strings.Contains(lowered, sig) {
			return false
		}
	}

	fam := familyOf(language)
	if fam == familyUnknown {
		return true
	}
	if g.commentRatio(code, fam) > g.MaxCommentRatio {
		return false
	}
	return g.plausibleSyntax(code, fam)
}

// commentRatio is the share of non-blank lines that are comment-only.
func (g Gate) commentRatio(code string, fam family) float64 {
	lines := strings.Split(code, "\n")
	total := 0
	comments := 0
	inBlock := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		total++
		if inBlock {
			comments++
			if strings.Contains(trimmed, "*/") {
				inBlock = false
			}
			continue
		}
		switch fam {
		case familyPython:
			if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, `"""`) || strings.HasPrefix(trimmed, "'''") {
				comments++
			}
		case familyC:
			if strings.HasPrefix(trimmed, "//") {
				comments++
			} else if strings.HasPrefix(trimmed, "/*") {
				comments++
				if !strings.Contains(trimmed, "*/") {
					inBlock = true
				}
			}
		}
	}
	if total == 0 {
		return 0
	}
	return float64(comments) / float64(total)
}

// plausibleSyntax accepts code that shows at least one recognizable
// declaration construct, or whose bracket nesting stays within the
// imbalance limit.
func (g Gate) plausibleSyntax(code string, fam family) bool {
	for _, pattern := range constructPatterns[fam] {
		if strings.Contains(code, pattern) {
			return true
		}
	}
	openBraces := strings.Count(code, "{") - strings.Count(code, "}")
	openParens := strings.Count(code, "(") - strings.Count(code, ")")
	if openBraces > g.BracketImbalanceLimit || openParens > g.BracketImbalanceLimit {
		return false
	}
	return true
}

// IsSemanticChange reports whether a unified diff carries at least
// MinChangedLines added or removed lines with non-whitespace content.
// File headers (+++/---) do not count.
func (g Gate) IsSemanticChange(diff string) bool {
	if strings.TrimSpace(diff) == "" {
		return false
	}
	changed := 0
	for _, line := range strings.Split(diff, "\n") {
		if strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---") {
			continue
		}
		if !strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "-") {
			continue
		}
		if strings.TrimSpace(line[1:]) == "" {
			continue
		}
		changed++
		if changed >= g.MinChangedLines {
			return true
		}
	}
	return false
}
