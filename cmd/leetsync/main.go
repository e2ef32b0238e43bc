package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apperrors "leethub-sync/internal/errors"
)

var (
	v          = viper.New()
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "leetsync",
	Short: "Mark LeetCode problems from a LeetHub commit as solved in Notion",
	Long: `Sync the problems touched by a LeetHub commit into a Notion database.

Every problem directory changed by the commit is looked up by slug. Existing
records are marked solved and retagged; new problems get a fresh record.

Inputs come from the environment (optionally a .env file or --config):
  NOTION_TOKEN, NOTION_DATABASE_ID   required
  COMMIT_MESSAGE, CHANGED_FILES      the commit, unless --from-git is set

Examples:
  # Sync the commit described by the environment (CI usage)
  leetsync

  # Sync HEAD of a local LeetHub checkout without writing to Notion
  leetsync --from-git --repo ~/leethub --dry-run
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runSync,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	flags.Bool("dry-run", false, "Query Notion but do not create or update records")
	flags.String("report", "", "Write a YAML run report to this path")
	flags.String("repo", ".", "LeetHub repository used by --from-git and watch")

	_ = v.BindPFlag("DRY_RUN", flags.Lookup("dry-run"))
	_ = v.BindPFlag("REPORT_FILE", flags.Lookup("report"))
	_ = v.BindPFlag("REPO_DIR", flags.Lookup("repo"))

	rootCmd.Flags().Bool("from-git", false, "Read the commit from the repository HEAD instead of the environment")
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(exitCode(err))
}

// exitCode maps a command error to the process status. Configuration, input
// and usage errors exit 1; remote call failures leave the status at 0.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case apperrors.IsFatal(err), apperrors.CodeOf(err) == "":
		return 1
	default:
		return 0
	}
}
