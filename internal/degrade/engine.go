package degrade

import (
	"regexp"
	"strings"

	"github.com/jbonatakis/fimgen/internal/record"
	"github.com/jbonatakis/fimgen/internal/rng"
)

// Engine manufactures plausible-but-wrong completions from positive
// ones. It never fails: a mutation that cannot apply returns its input
// unchanged and the caller moves on to the next strategy.
type Engine struct {
	rand rng.Source
}

func NewEngine(src rng.Source) Engine {
	if src == nil {
		src = rng.Default()
	}
	return Engine{rand: src}
}

// ChooseMethod draws one method from the fixed weight table.
func (e Engine) ChooseMethod() Method {
	draw := e.rand.Float64()
	cumulative := 0.0
	for _, mw := range methodWeights {
		cumulative += mw.weight
		if draw < cumulative {
			return mw.method
		}
	}
	return methodWeights[len(methodWeights)-1].method
}

// Apply runs a single degradation strategy over code. Unknown methods
// and inapplicable mutations are no-ops.
func (e Engine) Apply(code string, method Method, language string) string {
	switch method {
	case MethodSubtleBugs:
		return e.applySwapTable(code, swapsFor(language, subtleBugSwaps, defaultSubtleBugSwaps))
	case MethodIncomplete:
		return e.truncate(code)
	case MethodWrongVariable:
		return e.swapVariable(code)
	case MethodOffByOne:
		return applyOffByOne(code)
	case MethodTypeErrors:
		return e.applySwapTable(code, swapsFor(language, typeErrorSwaps, defaultTypeErrorSwaps))
	}
	return code
}

// GenerateNegativeExamples produces one labeled negative per positive
// whose completion can be made to differ. It first tries a weighted
// method draw, then every method in table order, then a last-resort
// fallback; positives that still cannot differ are dropped.
func (e Engine) GenerateNegativeExamples(positives []record.Example) []record.LabeledExample {
	var out []record.LabeledExample
	for _, pos := range positives {
		if pos.Completion == "" {
			continue
		}
		degraded, method, ok := e.degrade(pos.Completion, pos.Metadata.Language)
		if !ok {
			continue
		}
		out = append(out, record.LabeledExample{
			ID:         pos.ID,
			Prompt:     pos.Prompt,
			Completion: degraded,
			Label:      false,
			Metadata: record.LabeledMetadata{
				Metadata:          pos.Metadata,
				DegradationMethod: string(method),
			},
		})
	}
	return out
}

func (e Engine) degrade(completion, language string) (string, Method, bool) {
	first := e.ChooseMethod()
	if degraded := e.Apply(completion, first, language); degraded != completion {
		return degraded, first, true
	}
	for _, mw := range methodWeights {
		if mw.method == first {
			continue
		}
		if degraded := e.Apply(completion, mw.method, language); degraded != completion {
			return degraded, mw.method, true
		}
	}

	// Forced fallback for completions no strategy can touch.
	if len(completion) <= 5 {
		if strings.TrimSpace(completion) == "" {
			return "", "", false
		}
		return "undefined", MethodTypeErrors, true
	}
	truncated := completion[:len(completion)*70/100]
	if truncated == completion {
		return "", "", false
	}
	return truncated, MethodIncomplete, true
}

// applySwapTable picks one applicable swap at random and replaces its
// first occurrence.
func (e Engine) applySwapTable(code string, swaps []tokenSwap) string {
	var applicable []tokenSwap
	for _, s := range swaps {
		if strings.Contains(code, s.from) {
			applicable = append(applicable, s)
		}
	}
	if len(applicable) == 0 {
		return code
	}
	s := applicable[e.rand.Intn(len(applicable))]
	return strings.Replace(code, s.from, s.to, 1)
}

// truncate cuts code at 60-80% of its length, backing up to the
// previous newline when one falls within the last 20 characters of the
// cut so the result does not end mid-token.
func (e Engine) truncate(code string) string {
	if len(code) < 2 {
		return code
	}
	cut := len(code) * (60 + e.rand.Intn(21)) / 100
	if cut < 1 {
		cut = 1
	}
	if cut >= len(code) {
		cut = len(code) - 1
	}
	if nl := strings.LastIndex(code[:cut], "\n"); nl >= 0 && cut-nl <= 20 {
		cut = nl
	}
	if cut < 1 {
		cut = 1
	}
	return code[:cut]
}

var identifierPattern = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)

// swapVariable replaces every whole-word occurrence of one identifier
// with another distinct identifier from the same code. A no-op when
// fewer than two distinct identifiers exist.
func (e Engine) swapVariable(code string) string {
	seen := make(map[string]bool)
	var idents []string
	for _, m := range identifierPattern.FindAllString(code, -1) {
		if identifierKeywords[strings.ToLower(m)] || seen[m] {
			continue
		}
		seen[m] = true
		idents = append(idents, m)
	}
	if len(idents) < 2 {
		return code
	}
	fromIdx := e.rand.Intn(len(idents))
	toIdx := e.rand.Intn(len(idents) - 1)
	if toIdx >= fromIdx {
		toIdx++
	}
	from := idents[fromIdx]
	to := idents[toIdx]
	whole := regexp.MustCompile(`\b` + regexp.QuoteMeta(from) + `\b`)
	return whole.ReplaceAllString(code, to)
}

var (
	numberPattern   = regexp.MustCompile(`\b\d+\b`)
	rangeArgPattern = regexp.MustCompile(`range\((\d+)\)`)
)

// applyOffByOne tries, in fixed priority order, to relax a bound, bump
// a bare numeric literal, or widen a range() call. The first matching
// pattern wins.
func applyOffByOne(code string) string {
	if strings.Contains(code, "<=") {
		return strings.Replace(code, "<=", "<", 1)
	}
	if strings.Contains(code, ">=") {
		return strings.Replace(code, ">=", ">", 1)
	}
	if loc := numberPattern.FindStringIndex(code); loc != nil {
		return code[:loc[0]] + incrementDecimal(code[loc[0]:loc[1]]) + code[loc[1]:]
	}
	if loc := rangeArgPattern.FindStringSubmatchIndex(code); loc != nil {
		return code[:loc[2]] + incrementDecimal(code[loc[2]:loc[3]]) + code[loc[3]:]
	}
	return code
}

// incrementDecimal adds one to a non-negative decimal literal without
// overflowing on pathological digit runs.
func incrementDecimal(s string) string {
	digits := []byte(s)
	for i := len(digits) - 1; i >= 0; i-- {
		if digits[i] < '9' {
			digits[i]++
			return string(digits)
		}
		digits[i] = '0'
	}
	return "1" + string(digits)
}
