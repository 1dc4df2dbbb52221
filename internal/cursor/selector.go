package cursor

import (
	"sort"
	"strings"

	"github.com/jbonatakis/fimgen/internal/rng"
)

// Selector chooses edit points inside a code string. Implementations
// must return sorted, deduplicated offsets, at most count of them, each
// in [0, len(code)). Empty code yields exactly [0].
type Selector interface {
	Select(code, language string, count int) []int
}

// randomTopUpAttempts bounds the uniqueness retry loop when random
// offsets are needed to reach the requested count.
const randomTopUpAttempts = 100

// Heuristic selects cursor positions with line and punctuation rules
// only; the language tag is advisory and no parser is involved. It
// prefers positions just after a ':', ';' or '{' on non-blank,
// non-comment lines, falling back to line ends.
type Heuristic struct {
	rand rng.Source
}

func NewHeuristic(src rng.Source) Heuristic {
	if src == nil {
		src = rng.Default()
	}
	return Heuristic{rand: src}
}

func (h Heuristic) Select(code, language string, count int) []int {
	if len(code) == 0 {
		return []int{0}
	}
	if count <= 0 {
		return nil
	}

	seen := make(map[int]bool)
	var candidates []int
	add := func(pos int) {
		if pos < 0 {
			pos = 0
		}
		if pos > len(code)-1 {
			pos = len(code) - 1
		}
		if !seen[pos] {
			seen[pos] = true
			candidates = append(candidates, pos)
		}
	}

	offset := 0
	for _, line := range strings.Split(code, "\n") {
		if pos, ok := lineCandidate(line); ok {
			add(offset + pos)
		}
		offset += len(line) + 1
	}

	if len(candidates) == 0 {
		for _, pos := range evenlySpaced(len(code), count) {
			add(pos)
		}
	}

	if len(candidates) < count {
		for _, pos := range evenlySpaced(len(code), count) {
			add(pos)
		}
	}
	for attempt := 0; len(candidates) < count && attempt < randomTopUpAttempts; attempt++ {
		add(h.rand.Intn(len(code)))
	}

	if len(candidates) > count {
		rng.Shuffle(h.rand, candidates)
		candidates = candidates[:count]
	}

	sort.Ints(candidates)
	return candidates
}

// lineCandidate returns the preferred cursor offset within a single
// line, or false for blank and comment-only lines.
func lineCandidate(line string) (int, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0, false
	}
	if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") {
		return 0, false
	}
	for _, marker := range []string{":", ";", "{"} {
		if idx := strings.Index(line, marker); idx >= 0 {
			return idx + 1, true
		}
	}
	return len(line), true
}

func evenlySpaced(length, count int) []int {
	step := length / (count + 1)
	positions := make([]int, 0, count)
	for i := 1; i <= count; i++ {
		pos := step * i
		if pos > length-1 {
			pos = length - 1
		}
		positions = append(positions, pos)
	}
	return positions
}
