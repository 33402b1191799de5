package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func update(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	var next tea.Model = m
	for _, msg := range msgs {
		next, _ = next.Update(msg)
	}
	out, ok := next.(Model)
	require.True(t, ok)
	return out
}

func TestDefaultsSelectAllCategories(t *testing.T) {
	params := NewModel().Params()
	assert.Equal(t, "leo", params.Graphs)
	assert.Equal(t, "leo", params.Totals)
	assert.Zero(t, params.MinLabelingPercentage)
}

func TestTypingIntoFileField(t *testing.T) {
	m := update(t, NewModel(), key("stats.json"))
	assert.Equal(t, "stats.json", m.Params().FilePath)
}

func TestCheckboxToggle(t *testing.T) {
	// Move from the file field onto the Languages graphs checkbox.
	m := update(t, NewModel(), key("tab"), key(" "))
	assert.Equal(t, "eo", m.Params().Graphs)

	// Space toggles it back.
	m = update(t, m, key(" "))
	assert.Equal(t, "leo", m.Params().Graphs)
}

func TestFocusWraps(t *testing.T) {
	m := update(t, NewModel(), key("shift+tab"))
	assert.Equal(t, fieldOK, m.focus)
}

func TestSubmitRequiresFile(t *testing.T) {
	m := NewModel()
	m.focus = fieldOK

	m = update(t, m, key("enter"))
	assert.False(t, m.submitted)
	assert.NotEmpty(t, m.errMsg)
}

func TestSubmitRejectsBadPercentage(t *testing.T) {
	m := update(t, NewModel(), key("stats.json"))
	for m.focus != fieldMinimum {
		m = update(t, m, key("tab"))
	}
	m = update(t, m, key("abc"))
	m.focus = fieldOK

	m = update(t, m, key("enter"))
	assert.False(t, m.submitted)
	assert.NotEmpty(t, m.errMsg)
}

func TestSubmitProducesParams(t *testing.T) {
	m := update(t, NewModel(), key("stats.json"))
	for m.focus != fieldStartDate {
		m = update(t, m, key("tab"))
	}
	m = update(t, m, key("2024-01-02"))
	m.focus = fieldOK

	m = update(t, m, key("enter"))
	require.True(t, m.submitted)

	params := m.Params()
	assert.Equal(t, "stats.json", params.FilePath)
	assert.Equal(t, "2024-01-02", params.StartDate)
	assert.Empty(t, params.EndDate)
}

func TestInvalidDatesFallBackToUnbounded(t *testing.T) {
	m := update(t, NewModel(), key("stats.json"))
	for m.focus != fieldEndDate {
		m = update(t, m, key("tab"))
	}
	m = update(t, m, key("not-a-date"))

	assert.Empty(t, m.Params().EndDate)
}

func TestEscapeCancels(t *testing.T) {
	m := update(t, NewModel(), key("esc"))
	assert.True(t, m.cancelled)
}
