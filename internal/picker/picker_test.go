package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globalnav/internal/results"
)

var testCandidates = []results.Candidate{
	{Label: "int foo(int x) {", Description: "src/bar.c:42", File: "src/bar.c", Line: 41},
	{Label: "void foo(void)", Description: "src/baz.c:7", File: "src/baz.c", Line: 6},
	{Label: "foo = make()", Description: "src/qux.c:19", File: "src/qux.c", Line: 18},
}

func keyPress(m Model, msg tea.KeyMsg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func TestModel_SelectFirstCandidate(t *testing.T) {
	m := NewModel("Definitions of foo", testCandidates)

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})

	choice, ok := m.Choice()
	require.True(t, ok)
	assert.Equal(t, "src/bar.c", choice.File)
}

func TestModel_NavigateAndSelect(t *testing.T) {
	m := NewModel("Definitions of foo", testCandidates)

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyDown})
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})

	choice, ok := m.Choice()
	require.True(t, ok)
	assert.Equal(t, "src/qux.c", choice.File)
}

func TestModel_CursorStopsAtBounds(t *testing.T) {
	m := NewModel("Definitions of foo", testCandidates)

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyUp})
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	choice, ok := m.Choice()
	require.True(t, ok)
	assert.Equal(t, "src/bar.c", choice.File, "up on the first entry stays put")

	m = NewModel("Definitions of foo", testCandidates)
	for i := 0; i < 10; i++ {
		m = keyPress(m, tea.KeyMsg{Type: tea.KeyDown})
	}
	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEnter})
	choice, ok = m.Choice()
	require.True(t, ok)
	assert.Equal(t, "src/qux.c", choice.File, "down past the last entry stays put")
}

func TestModel_CancelReturnsNoChoice(t *testing.T) {
	m := NewModel("Definitions of foo", testCandidates)

	m = keyPress(m, tea.KeyMsg{Type: tea.KeyEsc})

	_, ok := m.Choice()
	assert.False(t, ok)
}

func TestModel_ViewListsAllCandidates(t *testing.T) {
	m := NewModel("Definitions of foo", testCandidates)
	view := m.View()

	assert.Contains(t, view, "Definitions of foo")
	for _, c := range testCandidates {
		assert.Contains(t, view, c.Label)
	}
	assert.True(t, strings.Contains(view, ">"), "the cursor marker should be rendered")
}

func TestPresent_SingleCandidateSkipsUI(t *testing.T) {
	choice, ok, err := Present("Definitions of foo", testCandidates[:1])
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "src/bar.c", choice.File)
}

func TestPresent_NoCandidates(t *testing.T) {
	_, ok, err := Present("Definitions of foo", nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
