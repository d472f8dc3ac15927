package merger

import (
	"context"
	"fmt"

	"github.com/google/go-github/v84/github"
	"github.com/grokify/gogithub/auth"
	"github.com/grokify/gogithub/pr"

	"github.com/prkit/mergepr/internal/message"
	"github.com/prkit/mergepr/pkg/model"
)

// GitHubMerger implements Merger through the GitHub API.
type GitHubMerger struct {
	client *github.Client
}

// NewGitHubMerger creates a new GitHub merger.
func NewGitHubMerger(token string) *GitHubMerger {
	ctx := context.Background()
	client := auth.NewGitHubClient(ctx, token)
	return &GitHubMerger{
		client: client,
	}
}

// Merge checks mergeability and merges the pull request with a merge
// commit, passing the commit title and body as separate API parameters.
// The PR handle is fetched fresh here rather than reused from the
// metadata fetch, so the mergeable state is current.
func (m *GitHubMerger) Merge(ctx context.Context, repo model.RepoRef, info *model.PullRequestInfo, msg message.CommitMessage) (*MergeInfo, error) {
	state, err := pr.IsMergeable(ctx, m.client, repo.Owner, repo.Name, info.Number)
	if err != nil {
		return nil, fmt.Errorf("failed to check mergeable: %w", err)
	}
	if !state.Mergeable {
		return nil, fmt.Errorf("PR #%d is not mergeable: %s", info.Number, state.Message)
	}

	opts := &github.PullRequestOptions{
		MergeMethod: "merge",
		CommitTitle: msg.Title,
	}

	result, err := pr.MergePR(ctx, m.client, repo.Owner, repo.Name, info.Number, msg.Body, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to merge PR: %w", err)
	}
	if !result.GetMerged() {
		return nil, fmt.Errorf("failed to merge PR #%d: %s", info.Number, result.GetMessage())
	}

	return &MergeInfo{
		SHA:     result.GetSHA(),
		Message: result.GetMessage(),
		Merged:  true,
	}, nil
}
