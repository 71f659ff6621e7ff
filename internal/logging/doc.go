// Package logging provides concrete implementations of the
// sprocdiff.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: writes formatted messages to stderr, thread-safe
//   - NullLogger: discards all messages (useful for testing)
//
// All logger implementations are safe for concurrent use by multiple
// goroutines. Log output goes to stderr so stdout stays reserved for the
// rendered comparison report.
package logging
