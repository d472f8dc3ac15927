package collector

import (
	"context"

	"github.com/prkit/mergepr/internal/identity"
	"github.com/prkit/mergepr/pkg/model"
)

// Collector defines the interface for fetching pull request metadata.
type Collector interface {
	// GetPRInfo returns the metadata a merge commit message is composed from.
	GetPRInfo(ctx context.Context, repo model.RepoRef, prNumber int) (*model.PullRequestInfo, error)
}

// NewGitHub creates a new GitHub collector with the given token and
// identity override mapping.
func NewGitHub(token string, mapping identity.Mapping) Collector {
	return NewGitHubCollector(token, mapping)
}
