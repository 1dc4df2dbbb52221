package region

import "strings"

// BlockBounds is an indentation-inferred code block. Start and End are
// character offsets (End inclusive); StartLine and EndLine are the
// corresponding line numbers.
type BlockBounds struct {
	Start     int
	End       int
	StartLine int
	EndLine   int
}

// BlockAt infers the block enclosing pos without parsing: the nearest
// earlier non-blank line with strictly smaller indentation opens the
// block, and the nearest later non-blank line at or below that
// indentation closes it. A closing bracket on its own line is kept
// inside the block; any other boundary line is excluded. When no
// boundary exists in a direction the block falls back to the line
// containing pos.
func (r Region) BlockAt(pos int) BlockBounds {
	pos = r.ClampPosition(pos)
	if len(r.text) == 0 {
		return BlockBounds{}
	}

	lines := strings.Split(r.text, "\n")
	ctx, _ := r.LineAt(pos)
	cur := ctx.LineNumber

	blockIndent := indentOf(lines[cur])

	startLine := cur
	for i := cur - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if in := indentOf(lines[i]); in < blockIndent {
			startLine = i
			blockIndent = in
			break
		}
	}

	endLine := cur
	for i := cur + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			continue
		}
		if indentOf(lines[i]) <= blockIndent {
			if isClosingLine(lines[i]) {
				endLine = i
			} else {
				endLine = i - 1
				for endLine > cur && strings.TrimSpace(lines[endLine]) == "" {
					endLine--
				}
			}
			break
		}
		endLine = i
	}
	if endLine < startLine {
		endLine = startLine
	}

	start := lineStartOffset(lines, startLine)
	end := lineStartOffset(lines, endLine) + len(lines[endLine]) - 1
	if end < start {
		end = start
	}
	if end > len(r.text)-1 {
		end = len(r.text) - 1
	}
	return BlockBounds{Start: start, End: end, StartLine: startLine, EndLine: endLine}
}

func indentOf(line string) int {
	return len(line) - len(strings.TrimLeft(line, " \t"))
}

// isClosingLine reports whether the line holds nothing but closing
// delimiters (such as "}" or "});").
func isClosingLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	for _, ch := range trimmed {
		switch ch {
		case '}', ')', ']', ';', ',':
		default:
			return false
		}
	}
	return true
}

func lineStartOffset(lines []string, n int) int {
	offset := 0
	for i := 0; i < n; i++ {
		offset += len(lines[i]) + 1
	}
	return offset
}
