package config

import "github.com/jbonatakis/fimgen/internal/record"

// ResolveConfig merges project/global configs with built-in defaults.
// Precedence per key: project > global > defaults, then clamp numeric
// values to bounds and drop unrecognized format literals.
func ResolveConfig(project, global RawConfig) ResolvedConfig {
	resolved := DefaultResolvedConfig()

	resolved.Generation.CursorsPerRecord = clampInt(
		resolveInt(
			genInt(project, func(g RawGeneration) *int { return g.CursorsPerRecord }),
			genInt(global, func(g RawGeneration) *int { return g.CursorsPerRecord }),
			resolved.Generation.CursorsPerRecord,
		),
		MinCursorsPerRecord, MaxCursorsPerRecord,
	)
	resolved.Generation.Format = resolveFormat(
		genString(project, func(g RawGeneration) *string { return g.Format }),
		genString(global, func(g RawGeneration) *string { return g.Format }),
		resolved.Generation.Format,
	)
	resolved.Generation.Seed = resolveInt64(
		genInt64(project, func(g RawGeneration) *int64 { return g.Seed }),
		genInt64(global, func(g RawGeneration) *int64 { return g.Seed }),
		resolved.Generation.Seed,
	)

	resolved.Mining.MaxCommits = clampInt(
		resolveInt(
			miningInt(project, func(m RawMining) *int { return m.MaxCommits }),
			miningInt(global, func(m RawMining) *int { return m.MaxCommits }),
			resolved.Mining.MaxCommits,
		),
		MinMaxCommits, MaxMaxCommits,
	)
	resolved.Mining.MinChangedLines = resolveInt(
		miningInt(project, func(m RawMining) *int { return m.MinChangedLines }),
		miningInt(global, func(m RawMining) *int { return m.MinChangedLines }),
		resolved.Mining.MinChangedLines,
	)
	if resolved.Mining.MinChangedLines < 1 {
		resolved.Mining.MinChangedLines = 1
	}

	resolved.Dataset.OutputDir = resolveString(
		datasetString(project, func(d RawDataset) *string { return d.OutputDir }),
		datasetString(global, func(d RawDataset) *string { return d.OutputDir }),
		resolved.Dataset.OutputDir,
	)
	resolved.Dataset.TestFraction = clampFloat(
		resolveFloat(
			datasetFloat(project, func(d RawDataset) *float64 { return d.TestFraction }),
			datasetFloat(global, func(d RawDataset) *float64 { return d.TestFraction }),
			resolved.Dataset.TestFraction,
		),
		MinTestFraction, MaxTestFraction,
	)

	return resolved
}

func resolveInt(project, global *int, fallback int) int {
	if project != nil {
		return *project
	}
	if global != nil {
		return *global
	}
	return fallback
}

func resolveInt64(project, global *int64, fallback int64) int64 {
	if project != nil {
		return *project
	}
	if global != nil {
		return *global
	}
	return fallback
}

func resolveFloat(project, global *float64, fallback float64) float64 {
	if project != nil {
		return *project
	}
	if global != nil {
		return *global
	}
	return fallback
}

func resolveString(project, global *string, fallback string) string {
	if project != nil && *project != "" {
		return *project
	}
	if global != nil && *global != "" {
		return *global
	}
	return fallback
}

func resolveFormat(project, global *string, fallback string) string {
	for _, candidate := range []*string{project, global} {
		if candidate == nil {
			continue
		}
		if record.Format(*candidate).Valid() {
			return *candidate
		}
	}
	return fallback
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

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func genInt(cfg RawConfig, pick func(RawGeneration) *int) *int {
	if cfg.Generation == nil {
		return nil
	}
	return pick(*cfg.Generation)
}

func genInt64(cfg RawConfig, pick func(RawGeneration) *int64) *int64 {
	if cfg.Generation == nil {
		return nil
	}
	return pick(*cfg.Generation)
}

func genString(cfg RawConfig, pick func(RawGeneration) *string) *string {
	if cfg.Generation == nil {
		return nil
	}
	return pick(*cfg.Generation)
}

func miningInt(cfg RawConfig, pick func(RawMining) *int) *int {
	if cfg.Mining == nil {
		return nil
	}
	return pick(*cfg.Mining)
}

func datasetString(cfg RawConfig, pick func(RawDataset) *string) *string {
	if cfg.Dataset == nil {
		return nil
	}
	return pick(*cfg.Dataset)
}

func datasetFloat(cfg RawConfig, pick func(RawDataset) *float64) *float64 {
	if cfg.Dataset == nil {
		return nil
	}
	return pick(*cfg.Dataset)
}
