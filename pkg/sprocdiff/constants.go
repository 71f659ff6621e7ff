package sprocdiff

// Exit codes for semantic error classification. These follow Unix/GNU
// conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Comparison completed (differences are not an error)
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitOptionsError = 10 // Invalid normalizer options or configuration
	ExitInputError   = 11 // Dump file unreadable or empty
)

const (
	// DefaultDiffContext is the number of unchanged lines shown around
	// each change hunk in the rendered text report.
	DefaultDiffContext = 3

	// MaxDefinitionPreviewLength caps how many characters of a
	// definition body appear in log messages, to keep console output
	// readable for large procedures.
	MaxDefinitionPreviewLength = 200
)
