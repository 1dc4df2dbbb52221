package quality

import "strings"

// family groups languages by comment and declaration conventions. The
// gate only needs this coarse split; everything else is treated as
// unknown and bypasses the language-aware checks.
type family int

const (
	familyUnknown family = iota
	familyPython
	familyC
)

var languageFamilies = map[string]family{
	"python":     familyPython,
	"py":         familyPython,
	"ruby":       familyPython,
	"shell":      familyPython,
	"bash":       familyPython,
	"javascript": familyC,
	"js":         familyC,
	"typescript": familyC,
	"ts":         familyC,
	"jsx":        familyC,
	"tsx":        familyC,
	"java":       familyC,
	"c":          familyC,
	"cpp":        familyC,
	"c++":        familyC,
	"csharp":     familyC,
	"go":         familyC,
	"rust":       familyC,
	"kotlin":     familyC,
	"swift":      familyC,
	"scala":      familyC,
	"php":        familyC,
}

func familyOf(language string) family {
	return languageFamilies[strings.ToLower(strings.TrimSpace(language))]
}

// constructPatterns list declaration keywords whose presence makes a
// snippet syntactically plausible without parsing it.
var constructPatterns = map[family][]string{
	familyPython: {"def ", "class ", "import ", "from ", "lambda ", " = "},
	familyC:      {"function ", "func ", "class ", "const ", "let ", "var ", "void ", "int ", "fn ", "=> ", " = "},
}
