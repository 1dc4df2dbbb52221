package record

// EditRecord is one mined before/after snapshot of a file at a commit.
// AfterText is the code examples are synthesized from; BeforeText and
// DiffText are only consulted by the quality gate.
type EditRecord struct {
	BeforeText    string   `json:"beforeText"`
	AfterText     string   `json:"afterText"`
	DiffText      string   `json:"diffText"`
	FilePath      string   `json:"filePath"`
	CommitID      string   `json:"commitId"`
	CommitMessage string   `json:"commitMessage"`
	Language      string   `json:"language"`
	ContextFiles  []string `json:"contextFiles,omitempty"`
}

// Bounds is a character span into a code string. Both offsets are
// inclusive: End is the index of the last included character. Empty
// text is represented as (0,0).
type Bounds struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type Format string

const (
	FormatPSM   Format = "prefix_suffix_middle"
	FormatSPM   Format = "suffix_prefix_middle"
	FormatZed   Format = "zed_format"
	FormatMixed Format = "mixed"
)

// Formats lists every recognized format literal.
var Formats = []Format{FormatPSM, FormatSPM, FormatZed, FormatMixed}

func (f Format) Valid() bool {
	switch f {
	case FormatPSM, FormatSPM, FormatZed, FormatMixed:
		return true
	}
	return false
}

// Metadata is the provenance carried on every synthesized example.
type Metadata struct {
	FilePath      string `json:"filePath"`
	Commit        string `json:"commit"`
	Language      string `json:"language"`
	CommitMessage string `json:"commitMessage"`
}

// Example is one positive fill-in-the-middle training example.
type Example struct {
	ID             string   `json:"id,omitempty"`
	Prompt         string   `json:"prompt"`
	Completion     string   `json:"completion"`
	Context        string   `json:"context,omitempty"`
	Format         Format   `json:"format"`
	CursorPosition int      `json:"cursorPosition"`
	EditableRegion Bounds   `json:"editableRegion"`
	Metadata       Metadata `json:"metadata"`
}

// LabeledExample is the preference-training shape: a prompt/completion
// pair with a desirability label. Negatives carry the degradation
// method that produced them.
type LabeledExample struct {
	ID         string          `json:"id,omitempty"`
	Prompt     string          `json:"prompt"`
	Completion string          `json:"completion"`
	Label      bool            `json:"label"`
	Metadata   LabeledMetadata `json:"metadata"`
}

// LabeledMetadata extends Metadata with the degradation method on
// negative examples.
type LabeledMetadata struct {
	Metadata
	DegradationMethod string `json:"degradationMethod,omitempty"`
}

// Labeled wraps a positive example as a LabeledExample with label=true.
func Labeled(ex Example) LabeledExample {
	return LabeledExample{
		ID:         ex.ID,
		Prompt:     ex.Prompt,
		Completion: ex.Completion,
		Label:      true,
		Metadata:   LabeledMetadata{Metadata: ex.Metadata},
	}
}
