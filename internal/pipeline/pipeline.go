package pipeline

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/jbonatakis/fimgen/internal/cursor"
	"github.com/jbonatakis/fimgen/internal/degrade"
	"github.com/jbonatakis/fimgen/internal/quality"
	"github.com/jbonatakis/fimgen/internal/record"
	"github.com/jbonatakis/fimgen/internal/region"
	"github.com/jbonatakis/fimgen/internal/rng"
	"github.com/jbonatakis/fimgen/internal/synth"
)

const gateCacheSize = 4096

// Config controls one synthesis run.
type Config struct {
	// CursorsPerRecord is how many edit points are attempted per
	// accepted record.
	CursorsPerRecord int
	// Format is the prompt layout; FormatMixed resolves per example.
	Format record.Format
	// RequireSemanticDiff gates records on IsSemanticChange. Disable
	// when synthesizing from bare snapshots with no diff available.
	RequireSemanticDiff bool

	Gate     quality.Gate
	Selector cursor.Selector
	Rand     rng.Source
	Logger   *zap.Logger
}

// Result aggregates one run's output and skip accounting.
type Result struct {
	Positives []record.Example
	Labeled   []record.LabeledExample

	RecordsIn       int
	RecordsRejected int
	CandidatesTried int
	BuildsFailed    int
}

// Pipeline drives gate -> cursor selection -> region resolution ->
// builder fan-out -> degradation for a batch of edit records. Gate
// verdicts are memoized by content hash since the same blob shows up
// across consecutive commits.
type Pipeline struct {
	cfg       Config
	engine    degrade.Engine
	gateCache *lru.Cache[string, bool]
	log       *zap.Logger
}

func New(cfg Config) (*Pipeline, error) {
	if cfg.CursorsPerRecord <= 0 {
		cfg.CursorsPerRecord = 3
	}
	if !cfg.Format.Valid() {
		cfg.Format = record.FormatMixed
	}
	if cfg.Rand == nil {
		cfg.Rand = rng.Default()
	}
	if cfg.Selector == nil {
		cfg.Selector = cursor.NewHeuristic(cfg.Rand)
	}
	if cfg.Gate == (quality.Gate{}) {
		cfg.Gate = quality.DefaultGate()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	cache, err := lru.New[string, bool](gateCacheSize)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		cfg:       cfg,
		engine:    degrade.NewEngine(cfg.Rand),
		gateCache: cache,
		log:       cfg.Logger,
	}, nil
}

// ProcessAll runs every record through the pipeline and pairs each
// positive with a degraded negative where one can be produced.
func (p *Pipeline) ProcessAll(records []record.EditRecord) Result {
	result := Result{RecordsIn: len(records)}
	for _, rec := range records {
		positives, tried, failed := p.processRecord(rec)
		if positives == nil && tried == 0 {
			result.RecordsRejected++
			continue
		}
		result.CandidatesTried += tried
		result.BuildsFailed += failed
		result.Positives = append(result.Positives, positives...)
	}

	for _, pos := range result.Positives {
		result.Labeled = append(result.Labeled, record.Labeled(pos))
	}
	result.Labeled = append(result.Labeled, p.engine.GenerateNegativeExamples(result.Positives)...)
	return result
}

// processRecord synthesizes positives for one record. Builder errors
// skip the offending cursor candidate, never the whole batch.
func (p *Pipeline) processRecord(rec record.EditRecord) (positives []record.Example, tried, failed int) {
	if !p.accept(rec) {
		return nil, 0, 0
	}

	base := synth.NewBuilder(p.cfg.Rand)
	if err := base.WithCode(rec.AfterText); err != nil {
		p.log.Warn("record rejected by builder",
			zap.String("file", rec.FilePath),
			zap.Error(err))
		return nil, 0, 0
	}
	if err := base.WithFormat(p.cfg.Format); err != nil {
		p.log.Warn("invalid format", zap.Error(err))
		return nil, 0, 0
	}
	base.WithMetadata(rec)

	candidates := p.cfg.Selector.Select(rec.AfterText, rec.Language, p.cfg.CursorsPerRecord)
	for _, pos := range candidates {
		tried++
		b := base.Clone()
		bounds := region.ResolveEditable(rec.AfterText, pos)
		if err := b.WithCursor(pos); err != nil {
			failed++
			p.log.Warn("cursor rejected", zap.Int("cursor", pos), zap.Error(err))
			continue
		}
		if err := b.WithEditableRegion(bounds.Start, bounds.End); err != nil {
			failed++
			p.log.Warn("region rejected", zap.Int("cursor", pos), zap.Error(err))
			continue
		}
		ex, err := b.Build()
		if err != nil {
			failed++
			p.log.Warn("build failed",
				zap.String("file", rec.FilePath),
				zap.Int("cursor", pos),
				zap.Error(err))
			continue
		}
		ex.ID = uuid.NewString()
		positives = append(positives, ex)
	}
	return positives, tried, failed
}

func (p *Pipeline) accept(rec record.EditRecord) bool {
	if p.cfg.RequireSemanticDiff && !p.cfg.Gate.IsSemanticChange(rec.DiffText) {
		p.log.Debug("rejected: no semantic change", zap.String("file", rec.FilePath))
		return false
	}

	key := gateKey(rec.Language, rec.AfterText)
	if verdict, ok := p.gateCache.Get(key); ok {
		return verdict
	}
	verdict := p.cfg.Gate.PassesQualityChecks(rec.AfterText, rec.Language)
	p.gateCache.Add(key, verdict)
	if !verdict {
		p.log.Debug("rejected by quality gate", zap.String("file", rec.FilePath))
	}
	return verdict
}

func gateKey(language, code string) string {
	h := sha256.New()
	h.Write([]byte(language))
	h.Write([]byte{0})
	h.Write([]byte(code))
	return hex.EncodeToString(h.Sum(nil))
}
