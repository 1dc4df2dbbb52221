package config

const (
	DefaultCursorsPerRecord = 3
	DefaultFormat           = "mixed"
	DefaultMaxCommits       = 100
	DefaultTestFraction     = 0.1
	DefaultOutputDir        = "dataset"
	DefaultMinChangedLines  = 1

	MinCursorsPerRecord = 1
	MaxCursorsPerRecord = 50
	MinTestFraction     = 0.0
	MaxTestFraction     = 0.9
	MinMaxCommits       = 1
	MaxMaxCommits       = 100_000
)

// RawConfig mirrors the on-disk YAML shape. Every field is optional so
// a partial file overrides only what it names.
type RawConfig struct {
	Generation *RawGeneration `yaml:"generation,omitempty"`
	Mining     *RawMining     `yaml:"mining,omitempty"`
	Dataset    *RawDataset    `yaml:"dataset,omitempty"`
}

type RawGeneration struct {
	CursorsPerRecord *int    `yaml:"cursorsPerRecord,omitempty"`
	Format           *string `yaml:"format,omitempty"`
	Seed             *int64  `yaml:"seed,omitempty"`
}

type RawMining struct {
	MaxCommits      *int `yaml:"maxCommits,omitempty"`
	MinChangedLines *int `yaml:"minChangedLines,omitempty"`
}

type RawDataset struct {
	OutputDir    *string  `yaml:"outputDir,omitempty"`
	TestFraction *float64 `yaml:"testFraction,omitempty"`
}

// ResolvedConfig is the merged, clamped configuration handed to the
// commands.
type ResolvedConfig struct {
	Generation ResolvedGeneration
	Mining     ResolvedMining
	Dataset    ResolvedDataset
}

type ResolvedGeneration struct {
	CursorsPerRecord int
	Format           string
	// Seed of 0 means "seed from the clock".
	Seed int64
}

type ResolvedMining struct {
	MaxCommits      int
	MinChangedLines int
}

type ResolvedDataset struct {
	OutputDir    string
	TestFraction float64
}

func DefaultResolvedConfig() ResolvedConfig {
	return ResolvedConfig{
		Generation: ResolvedGeneration{
			CursorsPerRecord: DefaultCursorsPerRecord,
			Format:           DefaultFormat,
		},
		Mining: ResolvedMining{
			MaxCommits:      DefaultMaxCommits,
			MinChangedLines: DefaultMinChangedLines,
		},
		Dataset: ResolvedDataset{
			OutputDir:    DefaultOutputDir,
			TestFraction: DefaultTestFraction,
		},
	}
}
