package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

func modifiedFixture() []sprocdiff.ModifiedProcedure {
	return []sprocdiff.ModifiedProcedure{
		{
			MatchedPair: sprocdiff.MatchedPair{
				Source: sprocdiff.ProcedureRecord{Database: "db", Schema: "dbo", Name: "Alpha"},
				Target: sprocdiff.ProcedureRecord{Database: "db", Schema: "dbo", Name: "Alpha"},
			},
			Diff: []sprocdiff.DiffLine{
				{Op: sprocdiff.OpDelete, Text: "SELECT 1"},
				{Op: sprocdiff.OpInsert, Text: "SELECT 2"},
			},
			Similarity: 0.5,
		},
		{
			MatchedPair: sprocdiff.MatchedPair{
				Source: sprocdiff.ProcedureRecord{Database: "db", Schema: "dbo", Name: "Beta"},
				Target: sprocdiff.ProcedureRecord{Database: "db", Schema: "dbo", Name: "Beta"},
			},
			Diff: []sprocdiff.DiffLine{
				{Op: sprocdiff.OpEqual, Text: "SELECT 1"},
				{Op: sprocdiff.OpInsert, Text: "WHERE x = 1"},
			},
			Similarity: 0.66,
		},
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestViewer_ListNavigation(t *testing.T) {
	v := NewViewer(modifiedFixture())

	view := v.View()
	if !strings.Contains(view, "Alpha") || !strings.Contains(view, "Beta") {
		t.Fatalf("list view missing entries: %q", view)
	}
	if !strings.Contains(view, "> db.dbo.Alpha") {
		t.Errorf("cursor should start on first entry: %q", view)
	}

	next, _ := v.Update(keyMsg("j"))
	v = next.(Viewer)
	if !strings.Contains(v.View(), "> db.dbo.Beta") {
		t.Errorf("cursor should move down: %q", v.View())
	}

	next, _ = v.Update(keyMsg("j"))
	v = next.(Viewer)
	if v.cursor != 1 {
		t.Errorf("cursor moved past last entry: %d", v.cursor)
	}

	next, _ = v.Update(keyMsg("k"))
	v = next.(Viewer)
	if v.cursor != 0 {
		t.Errorf("cursor should move back up, got %d", v.cursor)
	}
}

func TestViewer_DiffViewAndBack(t *testing.T) {
	v := NewViewer(modifiedFixture())

	next, _ := v.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	v = next.(Viewer)

	next, _ = v.Update(keyMsg("enter"))
	v = next.(Viewer)
	if v.view != viewDiff {
		t.Fatal("enter should open the diff view")
	}
	if !strings.Contains(v.View(), "db.dbo.Alpha") {
		t.Errorf("diff view missing title: %q", v.View())
	}

	next, _ = v.Update(keyMsg("esc"))
	v = next.(Viewer)
	if v.view != viewList {
		t.Error("esc should return to the list view")
	}
}

func TestViewer_QuitFromList(t *testing.T) {
	v := NewViewer(modifiedFixture())
	_, cmd := v.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
}
