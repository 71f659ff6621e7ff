package normalize

import (
	"testing"

	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

func defaultNormalizer(t *testing.T) Normalizer {
	t.Helper()
	n, err := New(sprocdiff.DefaultNormalizeOptions())
	if err != nil {
		t.Fatalf("New() with default options failed: %v", err)
	}
	return n
}

func TestNew_InvalidLineEnding(t *testing.T) {
	_, err := New(sprocdiff.NormalizeOptions{LineEnding: "cr"})
	if err == nil {
		t.Fatal("New() accepted invalid line ending")
	}
}

func TestNormalize_Defaults(t *testing.T) {
	n := defaultNormalizer(t)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
		{
			name:     "line comment removed",
			input:    "SELECT 1 -- the answer\nFROM t",
			expected: "SELECT 1\nFROM t",
		},
		{
			name:     "comment only line disappears",
			input:    "SELECT 1\n-- audit note\nFROM t",
			expected: "SELECT 1\nFROM t",
		},
		{
			name:     "block comment removed",
			input:    "SELECT /* hint */ 1",
			expected: "SELECT 1",
		},
		{
			name:     "nested block comment removed",
			input:    "SELECT /* outer /* inner */ still outer */ 1",
			expected: "SELECT 1",
		},
		{
			name:     "comment token inside string preserved",
			input:    "SELECT '-- not a comment' AS c",
			expected: "SELECT '-- not a comment' AS c",
		},
		{
			name:     "escaped quote keeps string state",
			input:    "SELECT 'it''s -- fine' -- real comment",
			expected: "SELECT 'it''s -- fine'",
		},
		{
			name:     "horizontal whitespace collapsed",
			input:    "SELECT\t\t*   FROM    t",
			expected: "SELECT * FROM t",
		},
		{
			name:     "crlf input normalized to lf",
			input:    "SELECT 1\r\nFROM t\r\n",
			expected: "SELECT 1\nFROM t",
		},
		{
			name:     "trailing whitespace trimmed",
			input:    "SELECT 1   \nFROM t\t",
			expected: "SELECT 1\nFROM t",
		},
		{
			name:     "blank lines dropped",
			input:    "SELECT 1\n\n\nFROM t\n\n",
			expected: "SELECT 1\nFROM t",
		},
		{
			name:     "case preserved",
			input:    "Select Name FROM dbo.Users",
			expected: "Select Name FROM dbo.Users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.input)
			if got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"SELECT 1",
		"CREATE PROCEDURE p AS\nBEGIN\n  SELECT 1 -- x\nEND",
		"SELECT '--' /* block */ FROM   t\r\n\r\nWHERE a = 'b''c'",
		"/* unterminated block",
		"'unterminated string -- with token",
	}

	configs := []sprocdiff.NormalizeOptions{
		sprocdiff.DefaultNormalizeOptions(),
		{StripComments: false, CollapseWhitespace: true},
		{StripComments: true, CollapseWhitespace: false},
		{StripComments: false, CollapseWhitespace: false},
		{StripComments: true, CollapseWhitespace: true, LineEnding: sprocdiff.LineEndingCRLF},
	}

	for _, opts := range configs {
		n, err := New(opts)
		if err != nil {
			t.Fatalf("New(%+v) failed: %v", opts, err)
		}
		for _, input := range inputs {
			once := n.Normalize(input)
			twice := n.Normalize(once)
			if once != twice {
				t.Errorf("normalize not idempotent under %+v for %q:\nonce:  %q\ntwice: %q",
					opts, input, once, twice)
			}
		}
	}
}

func TestNormalize_CommentsKept(t *testing.T) {
	n, err := New(sprocdiff.NormalizeOptions{StripComments: false, CollapseWhitespace: true})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got := n.Normalize("SELECT 1 -- keep me")
	want := "SELECT 1 -- keep me"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalize_NoActiveRulesKeepsBlankLines(t *testing.T) {
	n, err := New(sprocdiff.NormalizeOptions{})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got := n.Normalize("SELECT 1\n\nFROM t")
	want := "SELECT 1\n\nFROM t"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestNormalize_CRLFConvention(t *testing.T) {
	n, err := New(sprocdiff.NormalizeOptions{
		StripComments:      true,
		CollapseWhitespace: true,
		LineEnding:         sprocdiff.LineEndingCRLF,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	got := n.Normalize("SELECT 1\nFROM t")
	want := "SELECT 1\r\nFROM t"
	if got != want {
		t.Errorf("Normalize() = %q, want %q", got, want)
	}
}

func TestLines(t *testing.T) {
	n := defaultNormalizer(t)

	if lines := n.Lines(""); lines != nil {
		t.Errorf("Lines(\"\") = %v, want nil", lines)
	}

	lines := n.Lines("SELECT 1\nFROM t\n")
	if len(lines) != 2 || lines[0] != "SELECT 1" || lines[1] != "FROM t" {
		t.Errorf("Lines() = %v, want [SELECT 1, FROM t]", lines)
	}
}
