package merger

import (
	"context"

	"github.com/prkit/mergepr/internal/message"
	"github.com/prkit/mergepr/pkg/model"
)

// Merger defines the interface for merging a pull request with a
// composed commit message.
type Merger interface {
	// Merge merges the pull request, creating a true merge commit.
	Merge(ctx context.Context, repo model.RepoRef, info *model.PullRequestInfo, msg message.CommitMessage) (*MergeInfo, error)
}

// MergeInfo contains information about a successful merge. SHA is empty
// for local merges, where the commit only exists in the local checkout.
type MergeInfo struct {
	SHA     string `json:"sha,omitempty"`
	Message string `json:"message,omitempty"`
	Merged  bool   `json:"merged"`
}

// NewGitHub creates a merger that merges through the GitHub API.
func NewGitHub(token string) Merger {
	return NewGitHubMerger(token)
}

// NewLocal creates a merger that merges in the local checkout.
func NewLocal(opts LocalOptions) Merger {
	return NewLocalMerger(opts)
}
