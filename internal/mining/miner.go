package mining

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/jbonatakis/fimgen/internal/record"
)

const DefaultMaxCommits = 100

// Miner walks a local git repository's history and produces one
// EditRecord per source file touched by each commit. It shells out to
// git rather than linking a VCS library; the repository is read-only
// to the miner.
type Miner struct {
	repoPath   string
	maxCommits int
	log        *zap.Logger
}

type Option func(*Miner)

func WithMaxCommits(n int) Option {
	return func(m *Miner) {
		if n > 0 {
			m.maxCommits = n
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(m *Miner) {
		if log != nil {
			m.log = log
		}
	}
}

func New(repoPath string, opts ...Option) *Miner {
	m := &Miner{
		repoPath:   repoPath,
		maxCommits: DefaultMaxCommits,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// commitInfo is one parsed line of git log output.
type commitInfo struct {
	id      string
	message string
}

// Mine returns edit records for up to maxCommits recent commits. A
// commit or file that cannot be read is logged and skipped; mining a
// repository never fails halfway through for a single bad object.
func (m *Miner) Mine(ctx context.Context) ([]record.EditRecord, error) {
	commits, err := m.listCommits(ctx)
	if err != nil {
		return nil, err
	}

	var records []record.EditRecord
	for _, commit := range commits {
		recs, err := m.mineCommit(ctx, commit)
		if err != nil {
			if ctx.Err() != nil {
				return records, ctx.Err()
			}
			m.log.Warn("skipping commit",
				zap.String("commit", commit.id),
				zap.Error(err))
			continue
		}
		records = append(records, recs...)
	}
	return records, nil
}

func (m *Miner) listCommits(ctx context.Context) ([]commitInfo, error) {
	out, err := m.git(ctx, "log", fmt.Sprintf("-n%d", m.maxCommits), "--no-merges", "--pretty=format:%H%x00%s")
	if err != nil {
		return nil, fmt.Errorf("list commits: %w", err)
	}

	var commits []commitInfo
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		id, message, _ := strings.Cut(line, "\x00")
		commits = append(commits, commitInfo{id: id, message: message})
	}
	return commits, nil
}

func (m *Miner) mineCommit(ctx context.Context, commit commitInfo) ([]record.EditRecord, error) {
	out, err := m.git(ctx, "diff-tree", "--no-commit-id", "--name-only", "-r", "--root", commit.id)
	if err != nil {
		return nil, fmt.Errorf("list changed files: %w", err)
	}

	var changed []string
	for _, path := range strings.Split(strings.TrimSpace(out), "\n") {
		if path != "" && LanguageForPath(path) != "" {
			changed = append(changed, path)
		}
	}

	var records []record.EditRecord
	for _, path := range changed {
		rec, err := m.mineFile(ctx, commit, path, changed)
		if err != nil {
			m.log.Warn("skipping file",
				zap.String("commit", commit.id),
				zap.String("path", path),
				zap.Error(err))
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

func (m *Miner) mineFile(ctx context.Context, commit commitInfo, path string, changed []string) (record.EditRecord, error) {
	after, err := m.git(ctx, "show", commit.id+":"+path)
	if err != nil {
		// Deleted in this commit; nothing to synthesize from.
		return record.EditRecord{}, fmt.Errorf("read after-text: %w", err)
	}

	// A missing parent version just means the file was added.
	before, err := m.git(ctx, "show", commit.id+"~1:"+path)
	if err != nil {
		before = ""
	}

	diff, err := m.git(ctx, "diff", commit.id+"~1", commit.id, "--", path)
	if err != nil {
		diff = ""
	}

	var contextFiles []string
	for _, other := range changed {
		if other != path {
			contextFiles = append(contextFiles, other)
		}
	}

	return record.EditRecord{
		BeforeText:    before,
		AfterText:     after,
		DiffText:      diff,
		FilePath:      path,
		CommitID:      commit.id,
		CommitMessage: commit.message,
		Language:      LanguageForPath(path),
		ContextFiles:  contextFiles,
	}, nil
}

func (m *Miner) git(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = m.repoPath

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", args[0], msg)
	}
	return stdout.String(), nil
}
