package sprocdiff_test

import (
	"errors"
	"testing"

	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

func TestProcedureRecord_Key(t *testing.T) {
	tests := []struct {
		name   string
		record sprocdiff.ProcedureRecord
		want   string
	}{
		{"lowercase", sprocdiff.ProcedureRecord{Schema: "dbo", Name: "getorders"}, "dbo.getorders"},
		{"mixed case folds", sprocdiff.ProcedureRecord{Schema: "DBO", Name: "GetOrders"}, "dbo.getorders"},
		{"database ignored", sprocdiff.ProcedureRecord{Database: "VISTA", Schema: "Sales", Name: "Sync"}, "sales.sync"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestProcedureRecord_FullName(t *testing.T) {
	rec := sprocdiff.ProcedureRecord{Database: "VISTA", Schema: "dbo", Name: "GetOrders"}
	if got := rec.FullName(); got != "VISTA.dbo.GetOrders" {
		t.Errorf("FullName() = %q", got)
	}
}

func TestNormalizeOptions_Validate(t *testing.T) {
	tests := []struct {
		name      string
		options   sprocdiff.NormalizeOptions
		wantError bool
	}{
		{"defaults", sprocdiff.DefaultNormalizeOptions(), false},
		{"empty line ending allowed", sprocdiff.NormalizeOptions{}, false},
		{"explicit lf", sprocdiff.NormalizeOptions{LineEnding: sprocdiff.LineEndingLF}, false},
		{"explicit crlf", sprocdiff.NormalizeOptions{LineEnding: sprocdiff.LineEndingCRLF}, false},
		{"unknown line ending", sprocdiff.NormalizeOptions{LineEnding: "cr"}, true},
		{"literal escape", sprocdiff.NormalizeOptions{LineEnding: "\n"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.options.Validate()

			if tt.wantError {
				if err == nil {
					t.Fatal("Validate() expected error, got nil")
				}
				if !errors.Is(err, sprocdiff.ErrInvalidOptions) {
					t.Errorf("Validate() error = %v, want ErrInvalidOptions", err)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestDiffOp_String(t *testing.T) {
	tests := []struct {
		op   sprocdiff.DiffOp
		want string
	}{
		{sprocdiff.OpEqual, "equal"},
		{sprocdiff.OpDelete, "delete"},
		{sprocdiff.OpInsert, "insert"},
		{sprocdiff.DiffOp(99), "DiffOp(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.op.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAnomaly_String(t *testing.T) {
	withLine := sprocdiff.Anomaly{
		Kind:    sprocdiff.AnomalyMissingHeader,
		Source:  "source.txt",
		Line:    42,
		Message: "Name header missing",
	}
	if got := withLine.String(); got != "source.txt:42: missing-header: Name header missing" {
		t.Errorf("String() = %q", got)
	}

	withoutLine := sprocdiff.Anomaly{
		Kind:    sprocdiff.AnomalyDuplicateKey,
		Source:  "target.txt",
		Message: "duplicate dbo.sync",
	}
	if got := withoutLine.String(); got != "target.txt: duplicate-key: duplicate dbo.sync" {
		t.Errorf("String() = %q", got)
	}
}

func TestComparisonResult_HasDifferences(t *testing.T) {
	var result sprocdiff.ComparisonResult
	if result.HasDifferences() {
		t.Error("empty result should have no differences")
	}

	result.Unchanged = []sprocdiff.MatchedPair{{}}
	if result.HasDifferences() {
		t.Error("unchanged-only result should have no differences")
	}

	result.Added = []sprocdiff.ProcedureRecord{{Schema: "dbo", Name: "New"}}
	if !result.HasDifferences() {
		t.Error("added record should count as a difference")
	}
}

func TestNewRunID_Unique(t *testing.T) {
	a, b := sprocdiff.NewRunID(), sprocdiff.NewRunID()
	if a == b {
		t.Error("expected distinct run IDs")
	}
	if a.String() == "" {
		t.Error("expected non-empty run ID string")
	}
}
