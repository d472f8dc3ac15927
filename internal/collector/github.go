package collector

import (
	"context"
	"strings"

	"github.com/google/go-github/v84/github"
	"github.com/grokify/gogithub/auth"
	"github.com/grokify/gogithub/pr"

	"github.com/prkit/mergepr/internal/identity"
	"github.com/prkit/mergepr/pkg/model"
)

// GitHubCollector implements Collector for GitHub.
type GitHubCollector struct {
	client   *github.Client
	users    identity.UserFetcher
	resolver *identity.Resolver
}

// NewGitHubCollector creates a new GitHub collector.
func NewGitHubCollector(token string, mapping identity.Mapping) *GitHubCollector {
	ctx := context.Background()
	client := auth.NewGitHubClient(ctx, token)
	users := identity.NewGitHubUsers(client)
	return &GitHubCollector{
		client:   client,
		users:    users,
		resolver: identity.NewResolver(mapping, users),
	}
}

// GetPRInfo fetches a pull request and assembles its merge metadata.
// An unknown PR number propagates as an error; approving reviewers are
// resolved through the identity resolver in review order, one entry per
// approval event.
func (c *GitHubCollector) GetPRInfo(ctx context.Context, repo model.RepoRef, prNumber int) (*model.PullRequestInfo, error) {
	ghPR, err := pr.GetPR(ctx, c.client, repo.Owner, repo.Name, prNumber)
	if err != nil {
		return nil, err
	}

	login := ghPR.GetUser().GetLogin()
	author := login
	// The PR payload carries only the author's login; the display name
	// lives on the user profile.
	if user, err := c.users.GetUser(ctx, login); err == nil && user.GetName() != "" {
		author = user.GetName()
	}

	reviews, err := c.listReviews(ctx, repo, prNumber)
	if err != nil {
		return nil, err
	}

	var reviewedBy []string
	for _, approver := range approvedLogins(reviews) {
		reviewedBy = append(reviewedBy, c.resolver.Resolve(ctx, approver).Display)
	}

	return &model.PullRequestInfo{
		Number:     ghPR.GetNumber(),
		Title:      ghPR.GetTitle(),
		Author:     author,
		HeadRef:    ghPR.GetHead().GetRef(),
		HeadSHA:    ghPR.GetHead().GetSHA(),
		Body:       strings.TrimSpace(ghPR.GetBody()),
		ReviewedBy: reviewedBy,
	}, nil
}

// listReviews returns all reviews on a PR in the platform's listing order.
func (c *GitHubCollector) listReviews(ctx context.Context, repo model.RepoRef, prNumber int) ([]*github.PullRequestReview, error) {
	opts := &github.ListOptions{PerPage: 100}

	var all []*github.PullRequestReview
	for {
		reviews, resp, err := c.client.PullRequests.ListReviews(ctx, repo.Owner, repo.Name, prNumber, opts)
		if err != nil {
			return nil, err
		}
		all = append(all, reviews...)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// approvedLogins keeps the logins of reviews whose state is exactly
// APPROVED, preserving order. A user approving twice yields two entries.
func approvedLogins(reviews []*github.PullRequestReview) []string {
	var logins []string
	for _, review := range reviews {
		if review.GetState() != "APPROVED" {
			continue
		}
		logins = append(logins, review.GetUser().GetLogin())
	}
	return logins
}
