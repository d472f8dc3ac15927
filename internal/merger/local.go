package merger

import (
	"context"
	"fmt"
	"os"

	"github.com/prkit/mergepr/internal/message"
	"github.com/prkit/mergepr/pkg/model"
)

// LocalMerger implements Merger with git commands in the local checkout.
// The composed message is handed to git through a temporary file that is
// removed on every exit path.
type LocalMerger struct {
	runner     Runner
	mainBranch string
	remote     string
}

// LocalOptions configures a local merge.
type LocalOptions struct {
	MainBranch string
	Remote     string
	Runner     Runner
}

// NewLocalMerger creates a new local merger. Zero options fall back to
// merging into main from origin with the production runner.
func NewLocalMerger(opts LocalOptions) *LocalMerger {
	if opts.MainBranch == "" {
		opts.MainBranch = "main"
	}
	if opts.Remote == "" {
		opts.Remote = "origin"
	}
	if opts.Runner == nil {
		opts.Runner = NewRunner()
	}
	return &LocalMerger{
		runner:     opts.Runner,
		mainBranch: opts.MainBranch,
		remote:     opts.Remote,
	}
}

// Merge fetches the PR head ref, checks out the main branch and merges
// the head commit with --no-ff. The first failing command stops the run
// with its stderr; the resulting merge commit stays local.
func (m *LocalMerger) Merge(ctx context.Context, repo model.RepoRef, info *model.PullRequestInfo, msg message.CommitMessage) (*MergeInfo, error) {
	msgFile, err := os.CreateTemp("", "mergepr-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create commit message file: %w", err)
	}
	defer os.Remove(msgFile.Name())

	if _, err := msgFile.WriteString(msg.Full()); err != nil {
		msgFile.Close()
		return nil, fmt.Errorf("failed to write commit message file: %w", err)
	}
	if err := msgFile.Close(); err != nil {
		return nil, fmt.Errorf("failed to write commit message file: %w", err)
	}

	steps := []struct {
		desc string
		args []string
	}{
		{"fetch PR head", []string{"fetch", m.remote, fmt.Sprintf("pull/%d/head", info.Number)}},
		{"check out " + m.mainBranch, []string{"checkout", m.mainBranch}},
		{"merge PR head", []string{"merge", "--no-ff", info.HeadSHA, "-F", msgFile.Name()}},
	}

	for _, step := range steps {
		result, err := m.runner.Run(ctx, "git", step.args...)
		if err != nil {
			return nil, fmt.Errorf("failed to %s: %w", step.desc, err)
		}
		if !result.Success() {
			return nil, fmt.Errorf("failed to %s: %s", step.desc, result.Stderr)
		}
	}

	return &MergeInfo{Merged: true}, nil
}
