// Package normalize transforms raw stored-procedure definition text into
// a canonical form used for equality comparison and diffing.
//
// Normalization is pure and idempotent: normalize(normalize(x)) ==
// normalize(x). Which rules apply is policy, selected through
// sprocdiff.NormalizeOptions, because different audits demand different
// strictness: an exact-provenance audit wants comment edits to count as
// changes, a semantic-drift audit does not.
//
// Rules, in order:
//  1. Strip -- line comments and /* */ block comments (nesting-aware)
//     using a state machine that tracks single-quoted string literals
//     with '' escapes. Bracketed [identifiers] are not quote-tracked:
//     a comment token inside a bracketed identifier is treated as a
//     comment start. This is a documented limitation.
//  2. Collapse runs of horizontal whitespace to a single space.
//  3. Normalize line endings to the configured convention.
//  4. Trim trailing whitespace per line.
//
// Case is preserved throughout; identifiers may be case-sensitive in the
// originating system. Lines left empty by active stripping or collapsing
// rules are removed so that comment-only and blank-line-only edits do not
// register as changes; with both rules disabled, blank lines survive.
package normalize
