package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dbforge-tools/sprocdiff/internal/logging"
	"github.com/dbforge-tools/sprocdiff/internal/reconcile"
	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

var missingCmd = &cobra.Command{
	Use:   "missing <source_dump> <target_dump>",
	Short: "List procedures present in only one dump",
	Long: `Missing prints just the names of procedures that exist in one dump
but not the other. No definitions are compared and no diffs are
computed; this is the fastest way to answer "what disappeared?".

Examples:
  sprocdiff missing prod_dump.txt staging_dump.txt`,
	Args: cobra.ExactArgs(2),
	RunE: runMissing,
}

func init() {
	rootCmd.AddCommand(missingCmd)
}

func runMissing(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	reconciler, err := reconcile.New(sprocdiff.DefaultNormalizeOptions(), logger)
	if err != nil {
		return err
	}

	result, err := compareDumps(reconciler, logger, args[0], args[1])
	if err != nil {
		return err
	}

	if len(result.Removed) == 0 && len(result.Added) == 0 {
		fmt.Println("No procedures missing on either side.")
		return nil
	}

	if len(result.Removed) > 0 {
		fmt.Printf("Missing from target (%d):\n", len(result.Removed))
		for _, rec := range result.Removed {
			fmt.Printf("  %s\n", rec.FullName())
		}
	}
	if len(result.Added) > 0 {
		fmt.Printf("Only in target (%d):\n", len(result.Added))
		for _, rec := range result.Added {
			fmt.Printf("  %s\n", rec.FullName())
		}
	}
	return nil
}
