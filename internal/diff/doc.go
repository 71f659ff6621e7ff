// Package diff computes minimal line-level edit sequences between two
// normalized definition bodies.
//
// The algorithm is the classic longest-common-subsequence dynamic
// program. Output is deterministic for identical inputs: ties during
// backtracking prefer aligning earlier matching lines, and deletions are
// emitted before insertions within a change region.
package diff
