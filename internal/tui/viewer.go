package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dbforge-tools/sprocdiff/pkg/sprocdiff"
)

// viewerKeyMap defines the key bindings for viewer navigation.
type viewerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultViewerKeyMap() viewerKeyMap {
	return viewerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view diff"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// viewerView is which pane the viewer currently shows.
type viewerView int

const (
	viewList viewerView = iota
	viewDiff
)

// Viewer is a bubbletea model that lists modified procedures and shows
// the selected procedure's diff in a scrollable pane.
type Viewer struct {
	modified []sprocdiff.ModifiedProcedure
	cursor   int
	view     viewerView
	keys     viewerKeyMap
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewViewer creates the interactive viewer for a comparison result.
func NewViewer(modified []sprocdiff.ModifiedProcedure) Viewer {
	return Viewer{
		modified: modified,
		keys:     defaultViewerKeyMap(),
	}
}

// Run starts the viewer and blocks until the user quits.
func Run(modified []sprocdiff.ModifiedProcedure) error {
	if len(modified) == 0 {
		fmt.Println("No modified procedures to inspect.")
		return nil
	}
	_, err := tea.NewProgram(NewViewer(modified), tea.WithAltScreen()).Run()
	return err
}

// Init implements tea.Model.
func (v Viewer) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (v Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		vpHeight := msg.Height - 4 // title + help
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !v.ready {
			v.viewport = viewport.New(msg.Width, vpHeight)
			v.ready = true
		} else {
			v.viewport.Width = msg.Width
			v.viewport.Height = vpHeight
		}
		if v.view == viewDiff {
			v.viewport.SetContent(v.renderDiff())
		}
		return v, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit

		case key.Matches(msg, v.keys.Back):
			if v.view == viewDiff {
				v.view = viewList
				return v, nil
			}
			return v, tea.Quit

		case key.Matches(msg, v.keys.Select):
			if v.view == viewList && v.ready {
				v.view = viewDiff
				v.viewport.SetContent(v.renderDiff())
				v.viewport.GotoTop()
			}
			return v, nil

		case key.Matches(msg, v.keys.Up):
			if v.view == viewList && v.cursor > 0 {
				v.cursor--
				return v, nil
			}

		case key.Matches(msg, v.keys.Down):
			if v.view == viewList && v.cursor < len(v.modified)-1 {
				v.cursor++
				return v, nil
			}
		}
	}

	if v.view == viewDiff && v.ready {
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd
	}
	return v, nil
}

// View implements tea.Model.
func (v Viewer) View() string {
	if v.view == viewDiff && v.ready {
		m := v.modified[v.cursor]
		title := titleStyle.Render(m.Source.FullName())
		help := helpStyle.Render("↑/↓ scroll • esc back • q quit")
		return title + "\n" + v.viewport.View() + "\n" + help
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Modified procedures (%d)", len(v.modified))))
	b.WriteString("\n")
	for i, m := range v.modified {
		line := m.Source.FullName()
		similarity := similarityStyle.Render(fmt.Sprintf("%.1f%% similar", m.Similarity*100))
		if i == v.cursor {
			b.WriteString(selectedStyle.Render("> "+line) + similarity)
		} else {
			b.WriteString(unselectedStyle.Render("  "+line) + similarity)
		}
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("↑/↓ navigate • enter view diff • q quit"))
	return b.String()
}

// renderDiff colors the selected procedure's diff for the viewport.
func (v Viewer) renderDiff() string {
	m := v.modified[v.cursor]
	var b strings.Builder
	for _, op := range m.Diff {
		switch op.Op {
		case sprocdiff.OpInsert:
			b.WriteString(insertStyle.Render("+" + op.Text))
		case sprocdiff.OpDelete:
			b.WriteString(deleteStyle.Render("-" + op.Text))
		default:
			b.WriteString(equalStyle.Render(" " + op.Text))
		}
		b.WriteString("\n")
	}
	return b.String()
}
