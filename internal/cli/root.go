package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "sprocdiff",
	Short: "Stored procedure dump comparison",
	Long: `sprocdiff compares two flat-text stored procedure dump files and
reports which procedures were added, removed or modified between the
two extractions. Modified procedures carry a normalized line diff that
ignores cosmetic changes (whitespace, comments, formatting) while
staying sensitive to semantic ones (clauses, identifiers).

Records are matched by case-insensitive (schema, name). Renames are
reported as one removal plus one addition; the dump format carries no
identity that would make rename detection trustworthy.

Exit Codes:
  0  - Comparison completed (differences found is still success)
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid normalizer options or configuration
  11 - Dump file unreadable or empty`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
