package identity

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/go-github/v84/github"
)

// Source identifies which path produced a resolved identity.
type Source string

const (
	SourceMapping  Source = "mapping"
	SourceProfile  Source = "profile"
	SourceFallback Source = "fallback"
)

// Resolution is a resolved reviewer identity and the path that produced it.
type Resolution struct {
	Display string `json:"display"`
	Source  Source `json:"source"`
}

// UserFetcher fetches a user's public profile.
type UserFetcher interface {
	GetUser(ctx context.Context, login string) (*github.User, error)
}

// Resolver maps platform usernames to "Name <email>" display strings.
// It consults the local override mapping first, then the user's public
// profile, and degrades to a synthesized noreply address when the
// profile lookup fails. Resolve never returns an error.
type Resolver struct {
	mapping Mapping
	users   UserFetcher
	log     io.Writer
}

// NewResolver creates a resolver over a mapping and a profile fetcher.
func NewResolver(mapping Mapping, users UserFetcher) *Resolver {
	return &Resolver{
		mapping: mapping,
		users:   users,
		log:     os.Stderr,
	}
}

// SetLog redirects lookup-failure diagnostics, primarily for tests.
func (r *Resolver) SetLog(w io.Writer) {
	r.log = w
}

// Resolve returns the display identity for a username.
func (r *Resolver) Resolve(ctx context.Context, username string) Resolution {
	if entry, ok := r.mapping[username]; ok {
		return Resolution{
			Display: fmt.Sprintf("%s <%s>", entry.Name, entry.Email),
			Source:  SourceMapping,
		}
	}

	user, err := r.users.GetUser(ctx, username)
	if err != nil {
		fmt.Fprintf(r.log, "Error fetching profile for user %s: %v\n", username, err)
		return Resolution{
			Display: fmt.Sprintf("%s <%s@users.noreply.github.com>", username, username),
			Source:  SourceFallback,
		}
	}

	name := user.GetName()
	if name == "" {
		name = username
	}

	if email := user.GetEmail(); email != "" {
		return Resolution{
			Display: fmt.Sprintf("%s <%s>", name, email),
			Source:  SourceProfile,
		}
	}

	return Resolution{
		Display: fmt.Sprintf("%s (@%s)", name, username),
		Source:  SourceProfile,
	}
}
