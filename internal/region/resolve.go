package region

import "github.com/jbonatakis/fimgen/internal/record"

// widenWindow bounds how far the editable region is stretched when the
// inferred block does not already contain the cursor.
const widenWindow = 50

// ResolveEditable expands a cursor offset into the editable region used
// by the example builder. The returned bounds are inclusive on both
// ends and always contain the cursor. Empty code resolves to (0,0).
func ResolveEditable(code string, cursor int) record.Bounds {
	if len(code) == 0 {
		return record.Bounds{}
	}

	r := New(code)
	cursor = r.ClampPosition(cursor)
	if cursor > len(code)-1 {
		cursor = len(code) - 1
	}
	block := r.BlockAt(cursor)

	start, end := block.Start, block.End
	if start > cursor {
		start = cursor - widenWindow
		if start < 0 {
			start = 0
		}
	}
	if end < cursor {
		end = cursor + widenWindow
	}
	if end > len(code)-1 {
		end = len(code) - 1
	}
	if start > end {
		start = end
	}
	return record.Bounds{Start: start, End: end}
}
