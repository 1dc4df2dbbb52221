package region

import (
	"strings"
	"testing"
)

func TestClampPosition_BoundsAndIdempotence(t *testing.T) {
	r := New("hello\nworld")

	for _, p := range []int{-100, -1, 0, 3, 11, 12, 500} {
		got := r.ClampPosition(p)
		if got < 0 || got > r.Len() {
			t.Fatalf("ClampPosition(%d) = %d out of [0,%d]", p, got, r.Len())
		}
		if again := r.ClampPosition(got); again != got {
			t.Fatalf("clamp not idempotent: clamp(%d)=%d, clamp(%d)=%d", p, got, got, again)
		}
	}
}

func TestIsValidPosition(t *testing.T) {
	r := New("abc")

	cases := []struct {
		pos  int
		want bool
	}{
		{-1, false},
		{0, true},
		{3, true},
		{4, false},
	}
	for _, tc := range cases {
		if got := r.IsValidPosition(tc.pos); got != tc.want {
			t.Fatalf("IsValidPosition(%d) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestExtract_NeverPanicsAndRoundTrips(t *testing.T) {
	text := "def f():\n    return 1\n"
	r := New(text)

	if got := r.Extract(0, r.Len()); got != text {
		t.Fatalf("full-range extract = %q, want %q", got, text)
	}
	if got := r.Extract(5, 2); got != "" {
		t.Fatalf("inverted range = %q, want empty", got)
	}
	if got := r.Extract(-10, 3); got != "def" {
		t.Fatalf("clamped start = %q, want %q", got, "def")
	}
	if got := r.Extract(0, 10_000); got != text {
		t.Fatalf("clamped end = %q, want full text", got)
	}

	for a := -2; a < r.Len()+2; a++ {
		for b := -2; b < r.Len()+2; b++ {
			got := r.Extract(a, b)
			if len(got) > r.Len() {
				t.Fatalf("Extract(%d,%d) longer than text", a, b)
			}
			if b > a && len(got) > b-a {
				t.Fatalf("Extract(%d,%d) = %d chars, want <= %d", a, b, len(got), b-a)
			}
		}
	}
}

func TestInsertToken(t *testing.T) {
	r := New("ab")

	ins := r.InsertToken(1, "<X>")
	if ins.Before != "a" || ins.After != "b" || ins.Combined != "a<X>b" {
		t.Fatalf("unexpected insertion: %+v", ins)
	}

	ins = r.InsertToken(99, "!")
	if ins.Combined != "ab!" {
		t.Fatalf("clamped insertion = %q, want %q", ins.Combined, "ab!")
	}
}

func TestBuildParts(t *testing.T) {
	r := New("hello world")

	if got := r.Build(nil); got != "" {
		t.Fatalf("empty parts = %q, want empty", got)
	}

	got := r.Build([]Part{
		Span(0, 5),
		Literal("|"),
		Span(6, 11),
	})
	if got != "hello|world" {
		t.Fatalf("built = %q, want %q", got, "hello|world")
	}
}

func TestLineAt(t *testing.T) {
	r := New("one\ntwo\nthree")

	ctx, ok := r.LineAt(5)
	if !ok {
		t.Fatalf("expected line context")
	}
	if ctx.LineNumber != 1 || ctx.LineText != "two" || ctx.LineStart != 4 || ctx.LineEnd != 7 || ctx.PositionInLine != 1 {
		t.Fatalf("unexpected context: %+v", ctx)
	}

	if _, ok := r.LineAt(-1); ok {
		t.Fatalf("negative position should have no context")
	}
	if _, ok := r.LineAt(r.Len() + 1); ok {
		t.Fatalf("out-of-range position should have no context")
	}

	ctx, ok = r.LineAt(r.Len())
	if !ok || ctx.LineNumber != 2 {
		t.Fatalf("end position should land on last line, got %+v ok=%v", ctx, ok)
	}
}

func TestSplitAtAndSubregion(t *testing.T) {
	r := New("abcdef")

	before, after := r.SplitAt(2)
	if before != "ab" || after != "cdef" {
		t.Fatalf("SplitAt(2) = %q,%q", before, after)
	}

	sub := r.Subregion(1, 4)
	if sub.Text() != "bcd" {
		t.Fatalf("Subregion(1,4) = %q, want %q", sub.Text(), "bcd")
	}
}

func TestStatistics(t *testing.T) {
	r := New("a\n\nbb\n")

	stats := r.Statistics()
	if stats.Length != 6 {
		t.Fatalf("Length = %d, want 6", stats.Length)
	}
	if stats.Lines != 4 {
		t.Fatalf("Lines = %d, want 4", stats.Lines)
	}
	if stats.NonEmptyLines != 2 {
		t.Fatalf("NonEmptyLines = %d, want 2", stats.NonEmptyLines)
	}

	// Text of only newlines still reports N+1 lines.
	if got := New("\n\n").Statistics().Lines; got != 3 {
		t.Fatalf("newline-only Lines = %d, want 3", got)
	}
}

func TestBlockAt_PythonStyleIndentation(t *testing.T) {
	code := strings.Join([]string{
		"def outer():",
		"    x = 1",
		"    y = 2",
		"",
		"def next_fn():",
		"    pass",
	}, "\n")
	r := New(code)

	// Cursor inside outer's body.
	pos := strings.Index(code, "x = 1")
	block := r.BlockAt(pos)
	if block.StartLine != 0 {
		t.Fatalf("StartLine = %d, want 0", block.StartLine)
	}
	if block.EndLine != 2 {
		t.Fatalf("EndLine = %d, want 2 (stop before next_fn)", block.EndLine)
	}
	if block.Start != 0 {
		t.Fatalf("Start = %d, want 0", block.Start)
	}
}

func TestBlockAt_BlankLinesBeforeNextBlockExcluded(t *testing.T) {
	code := strings.Join([]string{
		"def first():",
		"    a = 1",
		"",
		"",
		"",
		"def second():",
		"    pass",
	}, "\n")
	r := New(code)

	block := r.BlockAt(strings.Index(code, "a = 1"))
	if block.EndLine != 1 {
		t.Fatalf("EndLine = %d, want 1 (blank separator lines excluded)", block.EndLine)
	}
	wantEnd := strings.Index(code, "a = 1") + len("a = 1") - 1
	if block.End != wantEnd {
		t.Fatalf("End = %d, want %d", block.End, wantEnd)
	}
}

func TestBlockAt_BraceClosingLineIncluded(t *testing.T) {
	code := strings.Join([]string{
		"function f() {",
		"    return 1;",
		"}",
		"let z = 2;",
	}, "\n")
	r := New(code)

	pos := strings.Index(code, "return")
	block := r.BlockAt(pos)
	if block.StartLine != 0 {
		t.Fatalf("StartLine = %d, want 0", block.StartLine)
	}
	if block.EndLine != 2 {
		t.Fatalf("EndLine = %d, want 2 (closing brace kept)", block.EndLine)
	}
}

func TestBlockAt_NoBoundariesDefaultsToLine(t *testing.T) {
	r := New("single line of code")

	block := r.BlockAt(4)
	if block.StartLine != 0 || block.EndLine != 0 {
		t.Fatalf("unexpected block: %+v", block)
	}
	if block.Start != 0 || block.End != r.Len()-1 {
		t.Fatalf("unexpected offsets: %+v", block)
	}
}

func TestBlockAt_EmptyText(t *testing.T) {
	block := New("").BlockAt(0)
	if block.Start != 0 || block.End != 0 {
		t.Fatalf("empty text block = %+v, want zero", block)
	}
}
