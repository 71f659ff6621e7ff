// Package sprocdiff defines the public contracts of the stored-procedure
// dump comparison tool: record and result types, normalizer options,
// sentinel errors with semantic exit codes, and the Logger interface.
//
// The comparison pipeline is: two dump files are parsed into ParsedSet
// values (internal/dump), matched by case-insensitive (schema, name) key
// (internal/reconcile), and matched pairs whose normalized bodies differ
// (internal/normalize) carry a line-level diff (internal/diff). The
// ComparisonResult is a plain structured value; rendering it is the
// caller's concern (internal/report, internal/tui).
package sprocdiff
