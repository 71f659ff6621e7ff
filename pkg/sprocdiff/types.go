package sprocdiff

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the fixed textual format used by the dump files for
// CreateDate and ModifyDate headers.
const TimestampLayout = "2006-01-02 15:04:05.000"

// ProcedureRecord is the parsed representation of one stored procedure
// block from a dump file. Records are immutable after parsing.
type ProcedureRecord struct {
	// Database is the owning database identifier.
	Database string

	// Schema is the owning schema. Never empty in a well-formed record.
	Schema string

	// Name is the procedure name. Never empty in a well-formed record.
	Name string

	// CreateDate and ModifyDate are parsed from the dump headers.
	// The zero time means the header was absent or unparseable
	// (reported as a warning anomaly, not an error).
	CreateDate time.Time
	ModifyDate time.Time

	// Definition is the verbatim body between the definition markers,
	// excluding the marker lines and the single newline immediately
	// preceding the end marker. Interior blank lines are preserved.
	Definition string
}

// Key returns the case-insensitive join key used for reconciliation.
// The dump format has no stable object identifier beyond (schema, name),
// so this tuple is the record identity within one set.
func (r ProcedureRecord) Key() string {
	return strings.ToLower(r.Schema) + "." + strings.ToLower(r.Name)
}

// FullName returns the display name database.schema.name.
func (r ProcedureRecord) FullName() string {
	return r.Database + "." + r.Schema + "." + r.Name
}

// AnomalyKind classifies a non-fatal parse-time defect.
type AnomalyKind string

const (
	// AnomalyMissingHeader means a required header (Database, Schema or
	// Name) was absent; the block is skipped.
	AnomalyMissingHeader AnomalyKind = "missing-header"

	// AnomalyUnterminatedBlock means a block start was never closed by
	// the block end marker before the next block or end of input.
	AnomalyUnterminatedBlock AnomalyKind = "unterminated-block"

	// AnomalyUnterminatedDefinition means a definition start was never
	// closed by the definition end marker within its block.
	AnomalyUnterminatedDefinition AnomalyKind = "unterminated-definition"

	// AnomalyDuplicateKey means two blocks in the same dump resolved to
	// the same (schema, name) key; the first occurrence is retained.
	AnomalyDuplicateKey AnomalyKind = "duplicate-key"

	// AnomalyBadTimestamp means a CreateDate or ModifyDate header did
	// not match the expected format; the record is kept with a zero time.
	AnomalyBadTimestamp AnomalyKind = "bad-timestamp"

	// AnomalyModifyBeforeCreate means ModifyDate precedes CreateDate.
	// Expected but not enforced; recorded as a warning only.
	AnomalyModifyBeforeCreate AnomalyKind = "modify-before-create"
)

// Anomaly records one parse-time defect. Anomalies are accumulated
// alongside successfully parsed records and never abort parsing.
type Anomaly struct {
	Kind    AnomalyKind
	Source  string // label of the input (usually the file path)
	Line    int    // 1-based line of the offending block start, 0 if unknown
	Key     string // record key when one could be derived, else ""
	Message string
}

func (a Anomaly) String() string {
	if a.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", a.Source, a.Line, a.Kind, a.Message)
	}
	return fmt.Sprintf("%s: %s: %s", a.Source, a.Kind, a.Message)
}

// ParsedSet is the result of parsing one dump file: an ordered sequence
// of records plus the anomalies encountered. Parsed sets are inputs to
// reconciliation and are never mutated.
type ParsedSet struct {
	// Source labels the input this set came from (usually the file path).
	Source string

	// Records in dump order.
	Records []ProcedureRecord

	// Anomalies in encounter order.
	Anomalies []Anomaly
}

// DiffOp is the kind of one line-level edit operation.
type DiffOp int

const (
	// OpEqual marks a line present in both sides.
	OpEqual DiffOp = iota
	// OpDelete marks a line present only in the source side.
	OpDelete
	// OpInsert marks a line present only in the target side.
	OpInsert
)

func (op DiffOp) String() string {
	switch op {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	default:
		return fmt.Sprintf("DiffOp(%d)", int(op))
	}
}

// DiffLine is one line-level edit operation. Applying the sequence of
// operations to the normalized source text reproduces the normalized
// target text exactly.
type DiffLine struct {
	Op   DiffOp
	Text string
}

// MatchedPair couples the source and target records sharing one key.
type MatchedPair struct {
	Source ProcedureRecord
	Target ProcedureRecord
}

// ModifiedProcedure is a matched pair whose normalized bodies differ,
// carrying the computed diff. Diff operations are computed over the
// normalized text; the raw definitions remain available on the records
// for human inspection and are never used for the equality decision.
type ModifiedProcedure struct {
	MatchedPair

	// Diff transforms the normalized source body into the normalized
	// target body.
	Diff []DiffLine

	// Similarity is 2*matches/total over normalized lines, in [0,1].
	Similarity float64
}

// ComparisonResult is the structured outcome of comparing two parsed
// sets. All slices are ordered by ascending record key so that output
// is deterministic regardless of processing order.
type ComparisonResult struct {
	// RunID uniquely identifies this comparison run.
	RunID uuid.UUID

	// GeneratedAt is when the comparison completed.
	GeneratedAt time.Time

	// SourceLabel and TargetLabel name the compared inputs.
	SourceLabel string
	TargetLabel string

	// Options are the normalizer settings the comparison used.
	Options NormalizeOptions

	// Added are records present only in the target set.
	Added []ProcedureRecord

	// Removed are records present only in the source set.
	Removed []ProcedureRecord

	// Unchanged are matched pairs with identical normalized bodies.
	Unchanged []MatchedPair

	// Modified are matched pairs whose normalized bodies differ.
	Modified []ModifiedProcedure

	// Anomalies carries parse-time issues from both inputs, unmodified.
	Anomalies []Anomaly
}

// HasDifferences reports whether any procedure was added, removed or
// modified.
func (r *ComparisonResult) HasDifferences() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0 || len(r.Modified) > 0
}

// NewRunID generates the identifier attached to a comparison run.
func NewRunID() uuid.UUID {
	return uuid.New()
}
