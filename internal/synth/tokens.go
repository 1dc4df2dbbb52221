package synth

// Token literals consumed by downstream model tooling. These must
// match byte for byte; changing one silently breaks trained models.
const (
	TokenEditableStart = "<|editable_region_start|>"
	TokenEditableEnd   = "<|editable_region_end|>"
	TokenCursor        = "<|user_cursor_is_here|>"
	TokenFIMPrefix     = "<|fim_prefix|>"
	TokenFIMSuffix     = "<|fim_suffix|>"
	TokenFIMMiddle     = "<|fim_middle|>"
)

// psmMiddleWindow caps the completion length for the PSM and SPM
// layouts.
const psmMiddleWindow = 50
