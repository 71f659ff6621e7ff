// Package reconcile matches two parsed dump sets by case-insensitive
// (schema, name) key and classifies every key as added, removed,
// unchanged or modified.
//
// Matching is an exact hash join on the key. There is no fuzzy or rename
// detection: a renamed procedure is reported as one removal plus one
// addition, because correlating renames would require semantic judgment
// the dump format cannot support.
//
// Per-pair normalization and diffing is embarrassingly parallel and runs
// on a bounded worker pool; results are reassembled in ascending key
// order regardless of completion order, since report determinism is a
// correctness requirement rather than a nicety.
package reconcile
