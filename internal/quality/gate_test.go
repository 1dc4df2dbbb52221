package quality

import (
	"strings"
	"testing"
)

func TestPassesQualityChecks_RejectsEmptyAndShort(t *testing.T) {
	g := DefaultGate()

	if g.PassesQualityChecks("", "python") {
		t.Fatalf("empty code must fail")
	}
	if g.PassesQualityChecks("   \n\t", "python") {
		t.Fatalf("whitespace-only code must fail")
	}
	if g.PassesQualityChecks(strings.Repeat("x", 5), "python") {
		t.Fatalf("code below min length must fail")
	}
}

func TestPassesQualityChecks_RejectsOversized(t *testing.T) {
	g := DefaultGate()
	code := "def f():\n" + strings.Repeat("    x = 1\n", 20_000)
	if g.PassesQualityChecks(code, "python") {
		t.Fatalf("code above max length must fail")
	}
}

func TestPassesQualityChecks_RejectsConflictMarkers(t *testing.T) {
	g := DefaultGate()
	code := "def f():\n<<<<<<< HEAD\n    return 1\n>>>>>>> branch\n"
	if g.PassesQualityChecks(code, "python") {
		t.Fatalf("merge conflict markers must fail")
	}
}

func TestPassesQualityChecks_RejectsGeneratedCode(t *testing.T) {
	g := DefaultGate()
	code := "// AUTO-GENERATED\nfunction f(){}"
	if g.PassesQualityChecks(code, "javascript") {
		t.Fatalf("generated-code signature must fail")
	}
	code = "# Code generated by protoc. DO NOT EDIT.\ndef f(): pass\n"
	if g.PassesQualityChecks(code, "python") {
		t.Fatalf("DO NOT EDIT signature must fail")
	}
}

func TestPassesQualityChecks_CommentRatio(t *testing.T) {
	g := DefaultGate()

	mostlyComments := strings.Repeat("# commentary line\n", 8) + "x = 1\n"
	if g.PassesQualityChecks(mostlyComments, "python") {
		t.Fatalf("comment-heavy code must fail")
	}

	balanced := "# one comment\nx = 1\ny = 2\nz = 3\n"
	if !g.PassesQualityChecks(balanced, "python") {
		t.Fatalf("balanced code must pass")
	}
}

func TestPassesQualityChecks_BlockComments(t *testing.T) {
	g := DefaultGate()
	code := "/*\n * big header\n * more header\n * even more\n */\nvoid f() {}\n"
	if g.PassesQualityChecks(code, "c") {
		t.Fatalf("block-comment-heavy code must fail")
	}
}

func TestPassesQualityChecks_SyntaxPlausibility(t *testing.T) {
	g := DefaultGate()

	if !g.PassesQualityChecks("def add(a, b):\n    return a + b\n", "python") {
		t.Fatalf("declared function must pass")
	}

	// No recognizable construct and pathological nesting.
	if g.PassesQualityChecks("((((((((((\n{{{{{{{{{{\n", "javascript") {
		t.Fatalf("pathological nesting must fail")
	}

	// No construct, but balanced brackets: acceptable generically.
	if !g.PassesQualityChecks("foo(bar(baz))\nqux[1]\n", "javascript") {
		t.Fatalf("balanced bracket code must pass")
	}
}

func TestPassesQualityChecks_UnknownLanguageBypass(t *testing.T) {
	g := DefaultGate()
	// Comment-heavy text, but the language is unknown so only length
	// and marker checks apply.
	code := strings.Repeat("# not really a comment marker here\n", 10)
	if !g.PassesQualityChecks(code, "brainfuck") {
		t.Fatalf("unknown language should bypass language-aware checks")
	}
}

func TestIsSemanticChange(t *testing.T) {
	g := DefaultGate()

	if g.IsSemanticChange("") {
		t.Fatalf("empty diff must fail")
	}

	contextOnly := strings.Join([]string{
		"--- a/file.js",
		"+++ b/file.js",
		"@@ -1,3 +1,3 @@",
		" function f() {",
		" }",
	}, "\n")
	if g.IsSemanticChange(contextOnly) {
		t.Fatalf("context-only diff must fail")
	}

	withChange := contextOnly + "\n+console.log(\"test\");"
	if !g.IsSemanticChange(withChange) {
		t.Fatalf("diff with an added line must pass")
	}

	whitespaceOnly := contextOnly + "\n+    \n-\t"
	if g.IsSemanticChange(whitespaceOnly) {
		t.Fatalf("whitespace-only changes must fail")
	}
}

func TestIsSemanticChange_MinChangedLines(t *testing.T) {
	g := DefaultGate()
	g.MinChangedLines = 3

	diff := "+one\n+two"
	if g.IsSemanticChange(diff) {
		t.Fatalf("two changed lines must fail a 3-line minimum")
	}
	if !g.IsSemanticChange(diff + "\n-three") {
		t.Fatalf("three changed lines must pass")
	}
}
