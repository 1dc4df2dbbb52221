package synth

import (
	"strings"

	"github.com/jbonatakis/fimgen/internal/record"
	"github.com/jbonatakis/fimgen/internal/region"
	"github.com/jbonatakis/fimgen/internal/rng"
)

// Builder assembles one fill-in-the-middle example at a time. Methods
// must be called in sequence: code first, then cursor and editable
// region in either order, then format, then Build. A builder is not
// safe for concurrent use; Clone one per cursor candidate to fan out.
type Builder struct {
	reg  region.Region
	rand rng.Source
	meta record.Metadata

	cursor int
	bounds record.Bounds
	format record.Format

	codeSet   bool
	cursorSet bool
	boundsSet bool
	formatSet bool
}

func NewBuilder(src rng.Source) *Builder {
	if src == nil {
		src = rng.Default()
	}
	return &Builder{rand: src}
}

// WithCode sets the code under edit and resets all derived state.
// Blank code is rejected.
func (b *Builder) WithCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return InvalidInputError{Reason: "code is empty or blank"}
	}
	b.reg = region.New(code)
	b.codeSet = true
	b.cursorSet = false
	b.boundsSet = false
	b.formatSet = false
	return nil
}

// WithCursor sets the cursor offset, clamped into [0, len].
func (b *Builder) WithCursor(pos int) error {
	if !b.codeSet {
		return InvalidStateError{Op: "WithCursor", Reason: "code not set"}
	}
	b.cursor = b.reg.ClampPosition(pos)
	b.cursorSet = true
	return nil
}

// WithEditableRegion sets the inclusive editable bounds, clamped into
// [0, len-1]. A cursor already set outside [start, end+1] is pulled
// back into that range; sitting exactly one past the inclusive end
// means "end of region".
func (b *Builder) WithEditableRegion(start, end int) error {
	if !b.codeSet {
		return InvalidStateError{Op: "WithEditableRegion", Reason: "code not set"}
	}
	last := b.reg.Len() - 1
	start = clampInt(start, 0, last)
	end = clampInt(end, 0, last)
	if end < start {
		end = start
	}
	b.bounds = record.Bounds{Start: start, End: end}
	b.boundsSet = true

	if b.cursorSet {
		b.cursor = clampInt(b.cursor, start, end+1)
	}
	return nil
}

// WithFormat sets the prompt layout.
func (b *Builder) WithFormat(f record.Format) error {
	if !f.Valid() {
		return InvalidFormatError{Format: string(f)}
	}
	b.format = f
	b.formatSet = true
	return nil
}

// WithMetadata copies provenance from the source edit record. Optional;
// omission leaves empty metadata.
func (b *Builder) WithMetadata(rec record.EditRecord) *Builder {
	b.meta = record.Metadata{
		FilePath:      rec.FilePath,
		Commit:        rec.CommitID,
		Language:      rec.Language,
		CommitMessage: rec.CommitMessage,
	}
	return b
}

// Clone returns an independent copy sharing only the immutable code
// region and the random source.
func (b *Builder) Clone() *Builder {
	clone := *b
	return &clone
}

// Reset returns the builder to its initial empty state.
func (b *Builder) Reset() {
	*b = Builder{rand: b.rand}
}

// Build assembles the example for the configured format. The mixed
// format resolves to PSM or SPM per call and is never recorded on the
// produced example.
func (b *Builder) Build() (record.Example, error) {
	var missing []string
	if !b.codeSet {
		missing = append(missing, "code")
	}
	if !b.formatSet {
		missing = append(missing, "format")
	}
	if !b.boundsSet {
		missing = append(missing, "editableRegion")
	}
	if !b.cursorSet {
		missing = append(missing, "cursor")
	}
	if len(missing) > 0 {
		return record.Example{}, MissingFieldError{Fields: missing}
	}

	format := b.format
	if format == record.FormatMixed {
		if b.rand.Float64() < 0.5 {
			format = record.FormatPSM
		} else {
			format = record.FormatSPM
		}
	}

	ex := record.Example{
		Format:         format,
		CursorPosition: b.cursor,
		EditableRegion: b.bounds,
		Metadata:       b.meta,
	}
	switch format {
	case record.FormatZed:
		ex.Prompt, ex.Completion, ex.Context = b.buildZed()
	case record.FormatPSM:
		ex.Prompt, ex.Completion = b.buildPSM()
	case record.FormatSPM:
		ex.Prompt, ex.Completion = b.buildSPM()
	}
	return ex, nil
}

// buildZed marks the editable region and exact cursor point inline.
// The completion is the remainder of the region after the cursor; the
// context reconstructs the whole file with every token present.
func (b *Builder) buildZed() (prompt, completion, context string) {
	start := b.bounds.Start
	endExcl := b.bounds.End + 1

	prompt = b.reg.Build([]region.Part{
		region.Span(0, start),
		region.Literal(TokenEditableStart),
		region.Span(start, b.cursor),
		region.Literal(TokenCursor),
	})
	completion = b.reg.Extract(b.cursor, endExcl)
	context = b.reg.Build([]region.Part{
		region.Span(0, start),
		region.Literal(TokenEditableStart),
		region.Span(start, b.cursor),
		region.Literal(TokenCursor),
		region.Span(b.cursor, endExcl),
		region.Literal(TokenEditableEnd),
		region.Span(endExcl, b.reg.Len()),
	})
	return prompt, completion, context
}

func (b *Builder) buildPSM() (prompt, completion string) {
	middleEnd := b.middleEnd()
	prompt = b.reg.Build([]region.Part{
		region.Literal(TokenFIMPrefix),
		region.Span(0, b.cursor),
		region.Literal(TokenFIMSuffix),
		region.Span(middleEnd, b.reg.Len()),
		region.Literal(TokenFIMMiddle),
	})
	return prompt, b.reg.Extract(b.cursor, middleEnd)
}

func (b *Builder) buildSPM() (prompt, completion string) {
	middleEnd := b.middleEnd()
	prompt = b.reg.Build([]region.Part{
		region.Literal(TokenFIMSuffix),
		region.Span(middleEnd, b.reg.Len()),
		region.Literal(TokenFIMPrefix),
		region.Span(0, b.cursor),
		region.Literal(TokenFIMMiddle),
	})
	return prompt, b.reg.Extract(b.cursor, middleEnd)
}

// middleEnd is the exclusive end of the PSM/SPM middle window, at most
// psmMiddleWindow characters past the cursor.
func (b *Builder) middleEnd() int {
	middleLen := b.reg.Len() - b.cursor
	if middleLen > psmMiddleWindow {
		middleLen = psmMiddleWindow
	}
	return b.cursor + middleLen
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
