package mining

import (
	"path/filepath"
	"strings"
)

// languageByExtension maps source file extensions to the language tags
// the quality gate and degradation engine understand.
var languageByExtension = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".jsx":   "javascript",
	".mjs":   "javascript",
	".ts":    "typescript",
	".tsx":   "typescript",
	".go":    "go",
	".java":  "java",
	".rb":    "ruby",
	".rs":    "rust",
	".c":     "c",
	".h":     "c",
	".cc":    "cpp",
	".cpp":   "cpp",
	".hpp":   "cpp",
	".cs":    "csharp",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".scala": "scala",
	".sh":    "bash",
}

// LanguageForPath returns the language tag for a file path, or "" when
// the extension is not a recognized source language.
func LanguageForPath(path string) string {
	return languageByExtension[strings.ToLower(filepath.Ext(path))]
}
