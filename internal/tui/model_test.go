package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/accrue/internal/calculation"
	"github.com/rgehrsitz/accrue/internal/domain"
)

func testCalculator(variant domain.Variant) *calculation.Calculator {
	return calculation.NewCalculator(
		calculation.WithVariant(variant),
		calculation.WithLocation(time.UTC),
		calculation.WithClock(func() time.Time {
			return time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
		}),
	)
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func press(t *testing.T, m Model, k tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

// run executes cmd and feeds its message back into the model
func run(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	require.NotNil(t, cmd)
	next, _ := m.Update(cmd())
	return next.(Model)
}

func fillForm(t *testing.T, m Model, date, amount, rate string) Model {
	t.Helper()
	m = typeText(t, m, date)
	m, _ = press(t, m, tea.KeyTab)
	m = typeText(t, m, amount)
	m, _ = press(t, m, tea.KeyTab)
	return typeText(t, m, rate)
}

func TestNewModel(t *testing.T) {
	m := NewModel(testCalculator(domain.VariantFull))

	assert.Equal(t, FieldDate, m.Focused())
	assert.Len(t, m.inputs, 3)
	assert.Nil(t, m.Result())
	assert.NotNil(t, m.Init())

	dateOnly := NewModel(testCalculator(domain.VariantDateOnly))
	assert.Len(t, dateOnly.inputs, 1)
	assert.Equal(t, "", dateOnly.Value(FieldAmount))

	assert.NotNil(t, NewModel(nil).calc, "nil calculator falls back to the default")
}

func TestModel_FocusCycles(t *testing.T) {
	m := NewModel(testCalculator(domain.VariantFull))

	m, _ = press(t, m, tea.KeyTab)
	assert.Equal(t, FieldAmount, m.Focused())
	m, _ = press(t, m, tea.KeyTab)
	assert.Equal(t, FieldRate, m.Focused())
	m, _ = press(t, m, tea.KeyTab)
	assert.Equal(t, FieldDate, m.Focused())
	m, _ = press(t, m, tea.KeyShiftTab)
	assert.Equal(t, FieldRate, m.Focused())
}

func TestModel_Calculate(t *testing.T) {
	m := NewModel(testCalculator(domain.VariantFull))
	m = fillForm(t, m, "2022-03-05", "100000", "1.5")

	assert.Equal(t, "2022-03-05", m.Value(FieldDate))
	assert.Equal(t, "100000", m.Value(FieldAmount))
	assert.Equal(t, "1.5", m.Value(FieldRate))

	m, cmd := press(t, m, tea.KeyEnter)
	m = run(t, m, cmd)

	require.NotNil(t, m.Result())
	assert.Equal(t, domain.KindSuccess, m.Result().Kind)
	assert.Equal(t, "Total Amount Payable: ₹1,41,000.00", m.Result().Lines[4])

	next, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	view := next.(Model).View()
	assert.Contains(t, view, "The selected date was 2 years and 3 months and 10 days ago.")
	assert.Contains(t, view, "Interest Accrued: ₹41,000.00")
	assert.Contains(t, view, "₹ 1,00,000", "amount helper text")
}

func TestModel_ValidationErrorIsErrorStyled(t *testing.T) {
	m := NewModel(testCalculator(domain.VariantFull))
	m = fillForm(t, m, "2024-06-16", "1000", "1")

	m, cmd := press(t, m, tea.KeyEnter)
	m = run(t, m, cmd)

	require.NotNil(t, m.Result())
	assert.True(t, m.Result().IsError())
	assert.True(t, m.Result().IsFutureDate())
}

func TestModel_MissingDate(t *testing.T) {
	m := NewModel(testCalculator(domain.VariantFull))

	m, cmd := press(t, m, tea.KeyEnter)
	m = run(t, m, cmd)

	require.NotNil(t, m.Result())
	assert.Equal(t, domain.ErrMissingDate, m.Result().Err.Kind)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Contains(t, next.(Model).View(), domain.MsgMissingDate)
}

func TestModel_Clear(t *testing.T) {
	m := NewModel(testCalculator(domain.VariantFull))
	m = fillForm(t, m, "2022-03-05", "100000", "1.5")
	m, cmd := press(t, m, tea.KeyEnter)
	m = run(t, m, cmd)
	require.NotNil(t, m.Result())

	m, cmd = press(t, m, tea.KeyCtrlR)
	assert.Nil(t, cmd)

	assert.Nil(t, m.Result())
	assert.Equal(t, "", m.Value(FieldDate))
	assert.Equal(t, "", m.Value(FieldAmount))
	assert.Equal(t, "", m.Value(FieldRate))
	assert.Equal(t, FieldDate, m.Focused())
}

func TestModel_DateOnly(t *testing.T) {
	m := NewModel(testCalculator(domain.VariantDateOnly))
	m = typeText(t, m, "2024-06-15")

	m, cmd := press(t, m, tea.KeyEnter)
	m = run(t, m, cmd)

	require.NotNil(t, m.Result())
	assert.Equal(t, domain.KindSameDay, m.Result().Kind)
	assert.NotContains(t, m.View(), "Loan Amount")
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(testCalculator(domain.VariantFull))

	_, cmd := press(t, m, tea.KeyCtrlC)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModel_ClearDropsPendingResult(t *testing.T) {
	m := NewModel(testCalculator(domain.VariantFull))
	m = fillForm(t, m, "2022-03-05", "100000", "1.5")

	m, pending := press(t, m, tea.KeyEnter)
	m, _ = press(t, m, tea.KeyCtrlR)
	m = run(t, m, pending)

	assert.Nil(t, m.Result(), "a calculation started before clear must not repopulate the form")
	assert.Equal(t, "", m.Value(FieldDate))
}

func TestModel_LatestCalculationWins(t *testing.T) {
	m := NewModel(testCalculator(domain.VariantFull))
	m = fillForm(t, m, "2024-06-16", "1000", "1")
	m, stale := press(t, m, tea.KeyEnter)

	m, _ = press(t, m, tea.KeyCtrlR)
	m = fillForm(t, m, "2022-03-05", "100000", "1.5")
	m, latest := press(t, m, tea.KeyEnter)

	m = run(t, m, latest)
	m = run(t, m, stale)

	require.NotNil(t, m.Result())
	assert.Equal(t, domain.KindSuccess, m.Result().Kind)
}
