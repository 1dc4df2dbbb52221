package region

import "strings"

// Region wraps one immutable code string and provides clamped, total
// slicing and lookup operations. Every method is safe for any integer
// input; nothing panics on out-of-range positions.
//
// All Region offsets are exclusive-end. The inclusive-end convention
// used by record.Bounds exists only at the builder API boundary.
type Region struct {
	text string
}

func New(text string) Region {
	return Region{text: text}
}

func (r Region) Text() string { return r.text }

func (r Region) Len() int { return len(r.text) }

// ClampPosition clamps p into [0, len].
func (r Region) ClampPosition(p int) int {
	if p < 0 {
		return 0
	}
	if p > len(r.text) {
		return len(r.text)
	}
	return p
}

// IsValidPosition reports whether p is a valid insertion point,
// including the position one past the last character.
func (r Region) IsValidPosition(p int) bool {
	return p >= 0 && p <= len(r.text)
}

// Extract returns text[start:end) with both offsets clamped. It
// returns "" whenever end <= start after clamping.
func (r Region) Extract(start, end int) string {
	start = r.ClampPosition(start)
	end = r.ClampPosition(end)
	if end <= start {
		return ""
	}
	return r.text[start:end]
}

// Insertion is the result of splitting the text at a position and
// splicing a token in between.
type Insertion struct {
	Before   string
	After    string
	Combined string
}

// InsertToken splits the text at pos (clamped) and splices token in.
func (r Region) InsertToken(pos int, token string) Insertion {
	pos = r.ClampPosition(pos)
	before := r.text[:pos]
	after := r.text[pos:]
	return Insertion{
		Before:   before,
		After:    after,
		Combined: before + token + after,
	}
}

// Part is one element of a token-assembly sequence: either a literal
// string or a span reference resolved against the region's text.
type Part struct {
	literal string
	start   int
	end     int
	span    bool
}

// Literal returns a Part holding a verbatim token.
func Literal(s string) Part {
	return Part{literal: s}
}

// Span returns a Part referencing text[start:end).
func Span(start, end int) Part {
	return Part{start: start, end: end, span: true}
}

// Build concatenates parts in order, resolving span parts via Extract.
// An empty parts sequence yields "".
func (r Region) Build(parts []Part) string {
	var b strings.Builder
	for _, p := range parts {
		if p.span {
			b.WriteString(r.Extract(p.start, p.end))
			continue
		}
		b.WriteString(p.literal)
	}
	return b.String()
}

// LineContext describes the line containing a position. LineStart and
// LineEnd are character offsets; LineEnd excludes the trailing newline.
type LineContext struct {
	LineNumber     int
	LineStart      int
	LineEnd        int
	LineText       string
	PositionInLine int
}

// LineAt returns the line context for pos, or false when pos is
// outside [0, len]. The position one past the last character belongs
// to the final line.
func (r Region) LineAt(pos int) (LineContext, bool) {
	if !r.IsValidPosition(pos) {
		return LineContext{}, false
	}
	lines := strings.Split(r.text, "\n")
	offset := 0
	for i, line := range lines {
		end := offset + len(line)
		// A position on the trailing newline belongs to this line.
		if pos <= end {
			return LineContext{
				LineNumber:     i,
				LineStart:      offset,
				LineEnd:        end,
				LineText:       line,
				PositionInLine: pos - offset,
			}, true
		}
		offset = end + 1
	}
	// Unreachable: the last line always covers pos == len.
	return LineContext{}, false
}

// SplitAt returns the text before and after pos (clamped).
func (r Region) SplitAt(pos int) (string, string) {
	pos = r.ClampPosition(pos)
	return r.text[:pos], r.text[pos:]
}

// Subregion returns a new Region over text[start:end).
func (r Region) Subregion(start, end int) Region {
	return Region{text: r.Extract(start, end)}
}

// Stats summarizes a region's text. Lines counts newline-split lines,
// so text containing only newlines still reports N+1 lines.
type Stats struct {
	Length            int
	Lines             int
	NonEmptyLines     int
	AverageLineLength float64
}

func (r Region) Statistics() Stats {
	lines := strings.Split(r.text, "\n")
	nonEmpty := 0
	total := 0
	for _, line := range lines {
		total += len(line)
		if strings.TrimSpace(line) != "" {
			nonEmpty++
		}
	}
	return Stats{
		Length:            len(r.text),
		Lines:             len(lines),
		NonEmptyLines:     nonEmpty,
		AverageLineLength: float64(total) / float64(len(lines)),
	}
}
