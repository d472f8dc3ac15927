package cmd

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/prkit/mergepr/internal/collector"
	"github.com/prkit/mergepr/internal/config"
	"github.com/prkit/mergepr/internal/identity"
	"github.com/prkit/mergepr/internal/merger"
	"github.com/prkit/mergepr/internal/message"
	"github.com/prkit/mergepr/pkg/model"
)

var prNumberRe = regexp.MustCompile(`^\d+$`)

// parsePRNumber validates a PR number argument before any network access.
func parsePRNumber(arg string) (int, error) {
	if !prNumberRe.MatchString(arg) {
		return 0, fmt.Errorf("PR number must be a positive integer, got %q", arg)
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("PR number must be a positive integer, got %q", arg)
	}
	return n, nil
}

func runMerge(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	prNumber, err := parsePRNumber(args[0])
	if err != nil {
		return err
	}

	verbose := viper.GetBool("verbose")

	settings, err := config.LoadSettings(viper.GetString("settings"))
	if err != nil {
		return err
	}

	repoName := viper.GetString("repo")
	if repoName == "" {
		return fmt.Errorf("GITHUB_REPOSITORY environment variable not set")
	}
	repo := model.ParseRepoRef(repoName)
	if repo.Owner == "" || repo.Name == "" {
		return fmt.Errorf("invalid repository %q, expected owner/name format", repoName)
	}

	token := viper.GetString("token")

	mapping, err := identity.LoadMapping(settings.MappingFile)
	if err != nil {
		return err
	}
	if verbose && len(mapping) > 0 {
		fmt.Fprintf(os.Stderr, "Loaded %d user mapping entries from %s\n", len(mapping), settings.MappingFile)
	}

	coll := collector.NewGitHub(token, mapping)

	if verbose {
		fmt.Fprintf(os.Stderr, "Fetching %s#%d\n", repo.FullName(), prNumber)
	}

	info, err := coll.GetPRInfo(ctx, repo, prNumber)
	if err != nil {
		return fmt.Errorf("failed to fetch PR #%d: %w", prNumber, err)
	}

	msg := message.Compose(info, settings.WrapWidth)

	if viper.GetBool("dry-run") {
		fmt.Printf("Merge commit message:\n%s\n", msg.Full())
		return nil
	}

	useLocal := viper.GetBool("local")

	var merg merger.Merger
	if useLocal {
		merg = merger.NewLocal(merger.LocalOptions{
			MainBranch: settings.MainBranch,
			Remote:     settings.Remote,
		})
	} else {
		merg = merger.NewGitHub(token)
	}

	result, err := merg.Merge(ctx, repo, info, msg)
	if err != nil {
		return err
	}

	if useLocal {
		fmt.Println("Pull request merged successfully!")
		fmt.Printf("Merge commit message:\n%s\n", msg.Full())
		fmt.Println("\nNote: You'll need to push this merge to mark the PR as merged on GitHub")
	} else {
		fmt.Printf("Pull request #%d merged successfully via GitHub API!\n", info.Number)
		fmt.Printf("Merge commit SHA: %s\n", result.SHA)
		fmt.Printf("\nMerge commit message:\n%s\n", msg.Full())
	}

	return nil
}
