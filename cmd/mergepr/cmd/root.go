package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command; merging is the only operation,
// so it runs directly off the root with the PR number as the argument.
var rootCmd = &cobra.Command{
	Use:   "mergepr <pr-number>",
	Short: "Merge an approved pull request with a structured commit message",
	Long: `Mergepr merges an approved pull request into the main branch, composing
a merge commit message from the PR title, author, body and approving
reviewers.

By default the merge is performed through the GitHub API. With --local,
the PR head is fetched and merged in the local checkout instead, leaving
the push to the operator.

Examples:
  # Merge PR #42 through the GitHub API
  GITHUB_REPOSITORY=myorg/myrepo mergepr 42

  # Merge PR #42 in the local checkout
  GITHUB_REPOSITORY=myorg/myrepo mergepr 42 --local

  # Show the commit message without merging
  GITHUB_REPOSITORY=myorg/myrepo mergepr 42 --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: runMerge,
}

// Execute runs the root command and returns its error for main to map
// onto the process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().Bool("local", false, "Merge in the local checkout instead of via the GitHub API")
	rootCmd.Flags().Bool("dry-run", false, "Compose and print the commit message without merging")
	rootCmd.Flags().Bool("verbose", false, "Enable verbose output")
	rootCmd.Flags().String("token", "", "GitHub token (or set GITHUB_TOKEN env var)")
	rootCmd.Flags().String("repo", "", "Target repository in owner/name format (or set GITHUB_REPOSITORY env var)")
	rootCmd.Flags().String("settings", ".mergepr.yaml", "Settings file path")

	// Bind flags to viper
	_ = viper.BindPFlag("local", rootCmd.Flags().Lookup("local"))
	_ = viper.BindPFlag("dry-run", rootCmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))
	_ = viper.BindPFlag("token", rootCmd.Flags().Lookup("token"))
	_ = viper.BindPFlag("repo", rootCmd.Flags().Lookup("repo"))
	_ = viper.BindPFlag("settings", rootCmd.Flags().Lookup("settings"))
}

// initConfig reads environment variables into viper.
func initConfig() {
	viper.SetEnvPrefix("MERGEPR")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Also check GITHUB_TOKEN and GITHUB_REPOSITORY directly
	if viper.GetString("token") == "" {
		if token := os.Getenv("GITHUB_TOKEN"); token != "" {
			viper.Set("token", token)
		}
	}
	if viper.GetString("repo") == "" {
		if repo := os.Getenv("GITHUB_REPOSITORY"); repo != "" {
			viper.Set("repo", repo)
		}
	}
}
