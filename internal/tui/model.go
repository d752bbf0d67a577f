package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/accrue/internal/calculation"
	"github.com/rgehrsitz/accrue/internal/domain"
)

// Field identifies an input on the form
type Field int

const (
	FieldDate Field = iota
	FieldAmount
	FieldRate
)

type keyMap struct {
	Next      key.Binding
	Prev      key.Binding
	Calculate key.Binding
	Clear     key.Binding
	Quit      key.Binding
}

var keys = keyMap{
	Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "previous field")),
	Calculate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
	Clear:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "clear")),
	Quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

// Model is the interest calculator form. Inputs and result are request data for
// Calculator.Compute; the model holds no other state.
type Model struct {
	calc    *calculation.Calculator
	inputs  []textinput.Model
	focused int
	result  *domain.Result
	seq     int // bumped by calculate and clear

	width  int
	height int
}

// NewModel creates the form. The date-only variant shows only the date field.
func NewModel(calc *calculation.Calculator) Model {
	if calc == nil {
		calc = calculation.NewCalculator()
	}

	date := textinput.New()
	date.Placeholder = "YYYY-MM-DD"
	date.CharLimit = 10
	date.Width = 12

	inputs := []textinput.Model{date}

	if calc.Variant != domain.VariantDateOnly {
		amount := textinput.New()
		amount.Placeholder = "Enter amount"
		amount.CharLimit = 15
		amount.Width = 20

		rate := textinput.New()
		rate.Placeholder = "Enter interest %"
		rate.CharLimit = 8
		rate.Width = 20

		inputs = append(inputs, amount, rate)
	}

	m := Model{
		calc:   calc,
		inputs: inputs,
		width:  80,
		height: 24,
	}
	m.inputs[FieldDate].Focus()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Value returns the current text of a field, or "" when the variant hides it
func (m Model) Value(f Field) string {
	if int(f) >= len(m.inputs) {
		return ""
	}
	return m.inputs[f].Value()
}

// Focused returns the field that receives typing
func (m Model) Focused() Field {
	return Field(m.focused)
}

// Result returns the last calculation result, or nil before the first one
func (m Model) Result() *domain.Result {
	return m.result
}

// Clear resets every input and the result; focus returns to the date field
func (m Model) Clear() Model {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.result = nil
	m.seq++
	m.setFocus(int(FieldDate))
	return m
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focused].Blur()
	m.focused = i
	return m.inputs[m.focused].Focus()
}

// calculate snapshots the inputs and returns a command that computes off the
// update loop, tagged so a later clear or calculate supersedes it
func (m Model) calculate() (Model, tea.Cmd) {
	m.seq++
	calc, seq := m.calc, m.seq
	date, amount, rate := m.Value(FieldDate), m.Value(FieldAmount), m.Value(FieldRate)
	return m, func() tea.Msg {
		return ResultMsg{Seq: seq, Result: calc.Compute(date, amount, rate)}
	}
}
