// Package tui implements the interactive parameter form used by the
// --gui flag. It collects the same values the command-line flags do.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wakatools/wakaview/internal/util"
)

// Params is the outcome of a completed form.
type Params struct {
	FilePath              string
	Graphs                string
	Totals                string
	Ignore                string
	Search                string
	MinLabelingPercentage float64
	StartDate             string
	EndDate               string
}

// Form focus positions, in traversal order.
const (
	fieldFile = iota
	fieldGraphsL
	fieldGraphsE
	fieldGraphsO
	fieldTotalsL
	fieldTotalsE
	fieldTotalsO
	fieldIgnore
	fieldSearch
	fieldMinimum
	fieldStartDate
	fieldEndDate
	fieldOK
	fieldCount
)

const categoryLetters = "leo"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("#F0F0F0"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8C8C8C")).
			Width(28)
	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C89A3A")).
			Bold(true)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4D4F"))
	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6E6E6E"))
)

// Model is the Bubble Tea model for the parameter form.
type Model struct {
	inputs    []textinput.Model
	graphs    [3]bool
	totals    [3]bool
	focus     int
	submitted bool
	cancelled bool
	errMsg    string
}

// NewModel builds the form with all categories selected, matching the
// command-line defaults.
func NewModel() Model {
	labels := []struct {
		placeholder string
		charLimit   int
	}{
		{placeholder: "path/to/wakatime.json"},
		{placeholder: "labels,separated,by,commas"},
		{placeholder: "labels,separated,by,commas"},
		{placeholder: "0.0"},
		{placeholder: "YYYY-MM-DD", charLimit: 10},
		{placeholder: "YYYY-MM-DD", charLimit: 10},
	}

	inputs := make([]textinput.Model, len(labels))
	for i, l := range labels {
		in := textinput.New()
		in.Placeholder = l.placeholder
		in.CharLimit = l.charLimit
		inputs[i] = in
	}
	inputs[0].Focus()

	return Model{
		inputs: inputs,
		graphs: [3]bool{true, true, true},
		totals: [3]bool{true, true, true},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// inputIndex maps a focus position to its text input, if it has one.
func inputIndex(focus int) (int, bool) {
	switch focus {
	case fieldFile:
		return 0, true
	case fieldIgnore:
		return 1, true
	case fieldSearch:
		return 2, true
	case fieldMinimum:
		return 3, true
	case fieldStartDate:
		return 4, true
	case fieldEndDate:
		return 5, true
	default:
		return 0, false
	}
}

func isCheckbox(focus int) bool {
	return focus >= fieldGraphsL && focus <= fieldTotalsO
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocusedInput(msg)
	}

	switch keyMsg.String() {
	case "ctrl+c", "esc":
		m.cancelled = true
		return m, tea.Quit
	case "tab", "down":
		return m.moveFocus(1), nil
	case "shift+tab", "up":
		return m.moveFocus(-1), nil
	case " ":
		if isCheckbox(m.focus) {
			m.toggle(m.focus)
			return m, nil
		}
	case "enter":
		if m.focus == fieldOK {
			return m.submit()
		}
		return m.moveFocus(1), nil
	}

	return m.updateFocusedInput(msg)
}

func (m Model) updateFocusedInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	idx, ok := inputIndex(m.focus)
	if !ok {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m Model) moveFocus(delta int) Model {
	if idx, ok := inputIndex(m.focus); ok {
		m.inputs[idx].Blur()
	}
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	if idx, ok := inputIndex(m.focus); ok {
		m.inputs[idx].Focus()
	}
	return m
}

func (m *Model) toggle(focus int) {
	switch {
	case focus >= fieldGraphsL && focus <= fieldGraphsO:
		m.graphs[focus-fieldGraphsL] = !m.graphs[focus-fieldGraphsL]
	case focus >= fieldTotalsL && focus <= fieldTotalsO:
		m.totals[focus-fieldTotalsL] = !m.totals[focus-fieldTotalsL]
	}
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if strings.TrimSpace(m.inputs[0].Value()) == "" {
		m.errMsg = "File is required"
		return m, nil
	}
	if v := strings.TrimSpace(m.inputs[3].Value()); v != "" {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			m.errMsg = "Minimum labeling percentage must be a number"
			return m, nil
		}
	}
	m.errMsg = ""
	m.submitted = true
	return m, tea.Quit
}

// Params converts the form state into engine parameters. Dates that do not
// parse are dropped, leaving the window unbounded.
func (m Model) Params() Params {
	minimum := 0.0
	if v := strings.TrimSpace(m.inputs[3].Value()); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			minimum = parsed
		}
	}

	start := strings.TrimSpace(m.inputs[4].Value())
	if !util.ValidDate(start) {
		start = ""
	}
	end := strings.TrimSpace(m.inputs[5].Value())
	if !util.ValidDate(end) {
		end = ""
	}

	return Params{
		FilePath:              strings.TrimSpace(m.inputs[0].Value()),
		Graphs:                selectorString(m.graphs),
		Totals:                selectorString(m.totals),
		Ignore:                strings.TrimSpace(m.inputs[1].Value()),
		Search:                strings.TrimSpace(m.inputs[2].Value()),
		MinLabelingPercentage: minimum,
		StartDate:             start,
		EndDate:               end,
	}
}

func selectorString(selected [3]bool) string {
	var b strings.Builder
	for i, on := range selected {
		if on {
			b.WriteByte(categoryLetters[i])
		}
	}
	return b.String()
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("wakaview"))
	b.WriteString("\n\n")

	b.WriteString(m.inputRow("File", fieldFile))
	b.WriteString(m.checkboxRow("Graphs", fieldGraphsL, m.graphs))
	b.WriteString(m.checkboxRow("Totals", fieldTotalsL, m.totals))
	b.WriteString(m.inputRow("Ignore", fieldIgnore))
	b.WriteString(m.inputRow("Search", fieldSearch))
	b.WriteString(m.inputRow("Minimum labeling percentage", fieldMinimum))
	b.WriteString(m.inputRow("Start date", fieldStartDate))
	b.WriteString(m.inputRow("End date", fieldEndDate))
	b.WriteString("\n")

	ok := "[ OK ]"
	if m.focus == fieldOK {
		ok = focusedStyle.Render(ok)
	}
	b.WriteString(ok)
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("tab/shift+tab move · space toggles · enter confirms · esc quits"))
	b.WriteString("\n")

	return b.String()
}

func (m Model) inputRow(label string, focus int) string {
	idx, _ := inputIndex(focus)
	name := labelStyle.Render(label)
	if m.focus == focus {
		name = focusedStyle.Render(fmt.Sprintf("%-28s", label))
	}
	return fmt.Sprintf("%s %s\n", name, m.inputs[idx].View())
}

func (m Model) checkboxRow(label string, firstField int, selected [3]bool) string {
	names := []string{"Languages", "Editors", "Operating systems"}
	parts := make([]string, len(names))
	for i, n := range names {
		mark := "[ ]"
		if selected[i] {
			mark = "[x]"
		}
		cell := fmt.Sprintf("%s %s", mark, n)
		if m.focus == firstField+i {
			cell = focusedStyle.Render(cell)
		}
		parts[i] = cell
	}
	return fmt.Sprintf("%s %s\n", labelStyle.Render(label), strings.Join(parts, "  "))
}

// Run shows the form and blocks until the user confirms or cancels. The
// second return value is false when the form was cancelled.
func Run() (Params, bool, error) {
	program := tea.NewProgram(NewModel())
	final, err := program.Run()
	if err != nil {
		return Params{}, false, fmt.Errorf("run form: %w", err)
	}
	m, ok := final.(Model)
	if !ok || !m.submitted {
		return Params{}, false, nil
	}
	return m.Params(), true, nil
}
