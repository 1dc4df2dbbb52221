package region

import (
	"strings"
	"testing"
)

func TestResolveEditable_CursorAlwaysInside(t *testing.T) {
	codes := []string{
		"x",
		"def f():\n    return 1\n",
		strings.Repeat("line of code\n", 40),
		"function f() {\n    return 1;\n}\n",
	}
	for _, code := range codes {
		for cursor := 0; cursor < len(code); cursor++ {
			b := ResolveEditable(code, cursor)
			if b.Start > cursor || b.End < cursor {
				t.Fatalf("cursor %d outside bounds [%d,%d] for %q", cursor, b.Start, b.End, code)
			}
			if b.Start < 0 || b.Start > b.End || b.End > len(code)-1 {
				t.Fatalf("invalid bounds [%d,%d] for len %d", b.Start, b.End, len(code))
			}
		}
	}
}

func TestResolveEditable_EmptyCode(t *testing.T) {
	b := ResolveEditable("", 5)
	if b.Start != 0 || b.End != 0 {
		t.Fatalf("empty code bounds = %+v, want (0,0)", b)
	}
}

func TestResolveEditable_WidensWhenBlockMissesCursor(t *testing.T) {
	// A long single line: the block is just that line, so the cursor
	// is always inside and no widening triggers.
	code := strings.Repeat("a", 200)
	b := ResolveEditable(code, 150)
	if b.Start != 0 || b.End != 199 {
		t.Fatalf("bounds = %+v, want full line", b)
	}

	// Out-of-range cursors clamp before resolution.
	b = ResolveEditable(code, 10_000)
	if b.End != 199 || b.Start > 199 {
		t.Fatalf("clamped bounds = %+v", b)
	}
}
