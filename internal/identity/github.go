package identity

import (
	"context"

	"github.com/google/go-github/v84/github"
)

// githubUsers implements UserFetcher against the GitHub API.
type githubUsers struct {
	client *github.Client
}

// NewGitHubUsers creates a UserFetcher backed by a GitHub client.
func NewGitHubUsers(client *github.Client) UserFetcher {
	return githubUsers{client: client}
}

func (g githubUsers) GetUser(ctx context.Context, login string) (*github.User, error) {
	user, _, err := g.client.Users.Get(ctx, login)
	if err != nil {
		return nil, err
	}
	return user, nil
}
