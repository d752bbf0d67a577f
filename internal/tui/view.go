package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/accrue/internal/calculation"
	"github.com/rgehrsitz/accrue/internal/tui/components"
)

// View renders the form and, once calculated, the result panel
func (m Model) View() string {
	sections := []string{
		TitleStyle.Render("Interest Calculator"),
		m.renderField(FieldDate, "Select Date:"),
	}

	if len(m.inputs) > int(FieldRate) {
		sections = append(sections,
			m.renderField(FieldAmount, fmt.Sprintf("Loan Amount (%s):", m.calc.Format.Symbol)),
			m.renderField(FieldRate, "Interest Percentage (% per month):"),
		)
	}

	if m.result != nil {
		sections = append(sections, m.renderResult())
		if m.result.Loan != nil {
			sections = append(sections, m.renderLoanCards())
		}
	}

	sections = append(sections, m.renderHelp())

	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

// renderField renders a label, its input and any helper text
func (m Model) renderField(f Field, label string) string {
	labelStyle := LabelStyle
	if m.Focused() == f {
		labelStyle = FocusedLabelStyle
	}

	lines := []string{labelStyle.Render(label), m.inputs[f].View()}

	if f == FieldAmount {
		if amount, ok := calculation.ParseAmount(m.Value(FieldAmount)); ok {
			lines = append(lines, HelperStyle.Render(m.calc.Format.Hint(amount)))
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

// renderResult renders the result lines, error-styled for validation failures
func (m Model) renderResult() string {
	style := ResultStyle
	if m.result.IsError() {
		style = ErrorStyle
	}
	width := m.width - 8
	if width < 20 {
		width = 20
	}
	return style.Width(width).Render(strings.Join(m.result.Lines, "\n"))
}

// renderLoanCards shows the headline loan figures side by side
func (m Model) renderLoanCards() string {
	loan := m.result.Loan
	months := "over " + loan.TotalMonths.StringFixed(2) + " months"
	cards := []*components.MetricCard{
		components.NewMetricCard("Interest Accrued", m.calc.Format.Currency(loan.Interest)).WithDescription(months),
		components.NewMetricCard("Total Payable", m.calc.Format.Currency(loan.Total)),
	}
	return components.MetricGrid(cards, 2)
}

// renderHelp renders the key bindings
func (m Model) renderHelp() string {
	bindings := []key.Binding{keys.Next, keys.Calculate, keys.Clear, keys.Quit}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, HelpKeyStyle.Render(h.Key)+" "+HelpDescStyle.Render(h.Desc))
	}
	return "\n" + strings.Join(parts, " • ")
}
