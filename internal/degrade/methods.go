package degrade

import "strings"

// Method names a degradation strategy. The literals are persisted in
// dataset metadata, so they are part of the output contract.
type Method string

const (
	MethodSubtleBugs    Method = "subtle_bugs"
	MethodIncomplete    Method = "incomplete"
	MethodWrongVariable Method = "wrong_variable"
	MethodOffByOne      Method = "off_by_one"
	MethodTypeErrors    Method = "type_errors"
)

// methodWeights is the fixed selection table, in draw order. The
// weights sum to 1.0.
var methodWeights = []struct {
	method Method
	weight float64
}{
	{MethodSubtleBugs, 0.30},
	{MethodIncomplete, 0.25},
	{MethodWrongVariable, 0.20},
	{MethodOffByOne, 0.15},
	{MethodTypeErrors, 0.10},
}

// tokenSwap is one candidate single-substitution mutation.
type tokenSwap struct {
	from string
	to   string
}

// swapsFor returns the swap table for a language, falling back to the
// generic table when no dedicated one exists.
func swapsFor(language string, tables map[string][]tokenSwap, fallback []tokenSwap) []tokenSwap {
	if swaps, ok := tables[strings.ToLower(strings.TrimSpace(language))]; ok {
		return swaps
	}
	return fallback
}

// subtleBugSwaps are plausible-but-wrong operator substitutions per
// language. Only the first occurrence of the chosen pattern is
// replaced.
var subtleBugSwaps = map[string][]tokenSwap{
	"python": {
		{"==", "="},
		{" and ", " or "},
		{" not ", " "},
		{"<=", "<"},
		{"range(", "range(1, "},
	},
	"javascript": {
		{"===", "=="},
		{"!==", "!="},
		{"&&", "||"},
		{"<=", "<"},
		{"++", "--"},
	},
	"typescript": {
		{"===", "=="},
		{"!==", "!="},
		{"&&", "||"},
		{"<=", "<"},
	},
}

// defaultSubtleBugSwaps cover languages without a dedicated table.
var defaultSubtleBugSwaps = []tokenSwap{
	{"==", "="},
	{"&&", "||"},
	{"<=", "<"},
	{">=", ">"},
}

var typeErrorSwaps = map[string][]tokenSwap{
	"python": {
		{"str(", "int("},
		{"int(", "str("},
		{"'", "\""},
		{"[]", "{}"},
	},
	"javascript": {
		{"parseInt(", "parseFloat("},
		{"String(", "Number("},
		{"'", "\""},
		{"[]", "{}"},
	},
	"typescript": {
		{": number", ": string"},
		{": string", ": number"},
		{"'", "\""},
		{"[]", "{}"},
	},
}

var defaultTypeErrorSwaps = []tokenSwap{
	{"'", "\""},
	{"\"", "'"},
	{"[]", "{}"},
	{"{}", "[]"},
}

// identifierKeywords are excluded from wrong-variable candidates so
// declaration keywords and literals never get swapped. One merged map
// across languages; lookups are lowercased.
var identifierKeywords = map[string]bool{
	"and": true, "as": true, "assert": true, "async": true, "await": true,
	"break": true, "case": true, "catch": true, "class": true, "const": true,
	"continue": true, "def": true, "default": true, "del": true, "do": true,
	"elif": true, "else": true, "except": true, "export": true, "false": true,
	"finally": true, "fn": true, "for": true, "from": true, "func": true,
	"function": true, "if": true, "import": true, "in": true, "is": true,
	"lambda": true, "let": true, "new": true, "nil": true, "none": true,
	"not": true, "null": true, "or": true, "pass": true, "raise": true,
	"return": true, "static": true, "struct": true, "switch": true,
	"this": true, "true": true, "try": true, "type": true, "typeof": true,
	"undefined": true, "var": true, "void": true, "while": true, "with": true,
	"yield": true,
}
