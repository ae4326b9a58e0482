// Package picker implements the interactive candidate selection surface
// used by the CLI when a lookup yields more than one result.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"globalnav/internal/results"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	descStyle     = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Select: key.NewBinding(key.WithKeys("enter")),
	Quit:   key.NewBinding(key.WithKeys("esc", "q", "ctrl+c")),
}

// Model is the Bubble Tea model for the candidate picker.
type Model struct {
	title      string
	candidates []results.Candidate
	cursor     int
	choice     *results.Candidate
}

// NewModel creates a picker over the given candidates.
func NewModel(title string, candidates []results.Candidate) Model {
	return Model{title: title, candidates: candidates}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if m.cursor < len(m.candidates)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, keys.Select):
		choice := m.candidates[m.cursor]
		m.choice = &choice
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n\n")

	for i, c := range m.candidates {
		line := fmt.Sprintf("%s  %s", c.Label, descStyle.Render(c.Description))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("up/down: move  enter: open  esc: cancel"))
	return b.String()
}

// Choice returns the selected candidate; ok is false when the picker was
// cancelled.
func (m Model) Choice() (results.Candidate, bool) {
	if m.choice == nil {
		return results.Candidate{}, false
	}
	return *m.choice, true
}

// Present shows the picker and blocks until the user selects or cancels.
// A single candidate is returned without showing any UI.
func Present(title string, candidates []results.Candidate) (results.Candidate, bool, error) {
	if len(candidates) == 0 {
		return results.Candidate{}, false, nil
	}
	if len(candidates) == 1 {
		return candidates[0], true, nil
	}

	program := tea.NewProgram(NewModel(title, candidates))
	final, err := program.Run()
	if err != nil {
		return results.Candidate{}, false, err
	}

	m, ok := final.(Model)
	if !ok {
		return results.Candidate{}, false, fmt.Errorf("unexpected picker model type %T", final)
	}
	choice, selected := m.Choice()
	return choice, selected, nil
}
