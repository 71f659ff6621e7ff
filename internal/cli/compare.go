package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dbforge-tools/sprocdiff/internal/config"
	"github.com/dbforge-tools/sprocdiff/internal/dump"
	"github.com/dbforge-tools/sprocdiff/internal/logging"
	"github.com/dbforge-tools/sprocdiff/internal/reconcile"
	"github.com/dbforge-tools/sprocdiff/internal/report"
	"github.com/dbforge-tools/sprocdiff/internal/tui"
	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

var compareCmd = &cobra.Command{
	Use:   "compare <source_dump> <target_dump>",
	Short: "Compare two stored procedure dump files",
	Long: `Compare parses both dump files, matches procedures by
case-insensitive (schema, name), and reports added, removed, modified
and unchanged procedures. Modified procedures carry a line diff of
their normalized definitions.

Malformed blocks never abort the run: they are reported as parse
anomalies and the comparison proceeds on the well-formed subset.

Option precedence: flag > environment (SPROCDIFF_*) > sprocdiff.yaml > default.

Examples:
  # Default comparison (comments and whitespace are cosmetic)
  sprocdiff compare prod_dump.txt staging_dump.txt

  # Strict audit: comment edits count as changes
  sprocdiff compare prod_dump.txt staging_dump.txt --keep-comments

  # Machine-readable report with raw definition bodies
  sprocdiff compare a.txt b.txt --format json --show-raw -o report.json

  # Browse modified procedures interactively
  sprocdiff compare a.txt b.txt --interactive

  # Load option defaults from an env file
  sprocdiff compare a.txt b.txt --env-file audit.env`,
	Args: cobra.ExactArgs(2),
	RunE: runCompare,
}

type compareFlagValues struct {
	keepComments   bool
	keepWhitespace bool
	lineEnding     string
	format         string
	output         string
	context        int
	showRaw        bool
	interactive    bool
	envFile        string
}

var compareFlags compareFlagValues

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().BoolVar(&compareFlags.keepComments, "keep-comments", false,
		"Treat comment edits as changes (disables comment stripping)")
	compareCmd.Flags().BoolVar(&compareFlags.keepWhitespace, "keep-whitespace", false,
		"Treat whitespace edits as changes (disables whitespace collapsing)")
	compareCmd.Flags().StringVar(&compareFlags.lineEnding, "line-ending", "",
		"Line ending convention for normalized text: lf|crlf (default: lf)")
	compareCmd.Flags().StringVar(&compareFlags.format, "format", "",
		"Report format: text|json (default: text)")
	compareCmd.Flags().StringVarP(&compareFlags.output, "output", "o", "",
		"Write the report to a file instead of stdout")
	compareCmd.Flags().IntVar(&compareFlags.context, "context", -1,
		"Unchanged lines shown around each diff hunk")
	compareCmd.Flags().BoolVar(&compareFlags.showRaw, "show-raw", false,
		"Include raw definition bodies in the JSON report")
	compareCmd.Flags().BoolVar(&compareFlags.interactive, "interactive", false,
		"Browse modified procedures in an interactive viewer")
	compareCmd.Flags().StringVar(&compareFlags.envFile, "env-file", "",
		"Load SPROCDIFF_* option defaults from an env file")
}

func runCompare(cmd *cobra.Command, args []string) error {
	logger := logging.NewConsoleLogger(getVerboseFlag(cmd))

	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}

	// Options are validated before any input is read.
	reconciler, err := reconcile.New(settings.options, logger)
	if err != nil {
		return err
	}

	result, err := compareDumps(reconciler, logger, args[0], args[1])
	if err != nil {
		return err
	}

	if settings.interactive && tui.IsInteractive() {
		logger.Info("Summary: %d added, %d removed, %d modified, %d unchanged",
			len(result.Added), len(result.Removed), len(result.Modified), len(result.Unchanged))
		return tui.Run(result.Modified)
	}

	return renderResult(result, settings, logger)
}

// compareDumps reads, parses and reconciles both inputs. All file reads
// happen here at the boundary; everything downstream is pure.
func compareDumps(reconciler *reconcile.Reconciler, logger sprocdiff.Logger, sourcePath, targetPath string) (*sprocdiff.ComparisonResult, error) {
	sourceContent, err := readDump(sprocdiff.SideSource, sourcePath)
	if err != nil {
		return nil, err
	}
	targetContent, err := readDump(sprocdiff.SideTarget, targetPath)
	if err != nil {
		return nil, err
	}

	sourceSet := dump.Parse(sourceContent, sourcePath)
	logger.Verbose("parsed %d records, %d anomalies from %s",
		len(sourceSet.Records), len(sourceSet.Anomalies), sourcePath)

	targetSet := dump.Parse(targetContent, targetPath)
	logger.Verbose("parsed %d records, %d anomalies from %s",
		len(targetSet.Records), len(targetSet.Anomalies), targetPath)

	return reconciler.Compare(sourceSet, targetSet), nil
}

// readDump reads one input file, wrapping failures with the side so the
// error names which of the two files broke the run.
func readDump(side, path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, sprocdiff.NewInputError(side, path, fmt.Errorf("%w: %v", sprocdiff.ErrInputUnreadable, err))
	}
	if len(content) == 0 {
		return nil, sprocdiff.NewInputError(side, path, sprocdiff.ErrEmptyInput)
	}
	return content, nil
}

// compareSettings is the fully resolved option set for one run.
type compareSettings struct {
	options     sprocdiff.NormalizeOptions
	format      string
	output      string
	context     int
	showRaw     bool
	interactive bool
}

// resolveSettings layers flag > environment > config file > default.
func resolveSettings(cmd *cobra.Command) (compareSettings, error) {
	if compareFlags.envFile != "" {
		if err := godotenv.Load(compareFlags.envFile); err != nil {
			return compareSettings{}, fmt.Errorf("load env file %s: %w", compareFlags.envFile, err)
		}
	}

	settings := compareSettings{
		options:     sprocdiff.DefaultNormalizeOptions(),
		format:      "text",
		context:     sprocdiff.DefaultDiffContext,
		showRaw:     compareFlags.showRaw,
		interactive: compareFlags.interactive,
		output:      compareFlags.output,
	}

	cfg, err := config.Load(".")
	switch {
	case err == nil:
		settings.options = cfg.NormalizeOptions()
		settings.context = cfg.Context()
		if cfg.Output.Format != "" {
			settings.format = cfg.Output.Format
		}
		if cfg.Output.ShowRaw {
			settings.showRaw = true
		}
	case errors.Is(err, config.ErrConfigNotFound):
		// No project config; defaults apply.
	default:
		return compareSettings{}, err
	}

	applyEnv(&settings)

	if cmd.Flags().Changed("keep-comments") {
		settings.options.StripComments = !compareFlags.keepComments
	}
	if cmd.Flags().Changed("keep-whitespace") {
		settings.options.CollapseWhitespace = !compareFlags.keepWhitespace
	}
	if compareFlags.lineEnding != "" {
		settings.options.LineEnding = compareFlags.lineEnding
	}
	if compareFlags.format != "" {
		settings.format = compareFlags.format
	}
	if compareFlags.context >= 0 {
		settings.context = compareFlags.context
	}

	if settings.format != "text" && settings.format != "json" {
		return compareSettings{}, fmt.Errorf("format %q is not supported (want text or json): %w",
			settings.format, sprocdiff.ErrInvalidOptions)
	}
	return settings, nil
}

// applyEnv overlays SPROCDIFF_* environment variables onto settings.
func applyEnv(settings *compareSettings) {
	if v, ok := envBool("SPROCDIFF_STRIP_COMMENTS"); ok {
		settings.options.StripComments = v
	}
	if v, ok := envBool("SPROCDIFF_COLLAPSE_WHITESPACE"); ok {
		settings.options.CollapseWhitespace = v
	}
	if v := os.Getenv("SPROCDIFF_LINE_ENDING"); v != "" {
		settings.options.LineEnding = v
	}
	if v := os.Getenv("SPROCDIFF_FORMAT"); v != "" {
		settings.format = v
	}
}

func envBool(name string) (bool, bool) {
	v := os.Getenv(name)
	if v == "" {
		return false, false
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return parsed, true
}

// renderResult writes the report in the selected format, to stdout or
// to the --output file.
func renderResult(result *sprocdiff.ComparisonResult, settings compareSettings, logger sprocdiff.Logger) error {
	var out io.Writer = os.Stdout
	color := tui.IsInteractive()

	if settings.output != "" {
		f, err := os.Create(settings.output)
		if err != nil {
			return fmt.Errorf("create report file: %w", err)
		}
		defer f.Close()
		out = f
		color = false
		logger.Info("Report written to %s", settings.output)
	}

	if settings.format == "json" {
		return report.RenderJSON(out, result, settings.showRaw)
	}
	return report.NewRenderer(color, settings.context).RenderText(out, result)
}
