package tui

import (
	"github.com/rgehrsitz/accrue/internal/domain"
)

// Message types for the Bubble Tea update cycle

// ResultMsg carries a finished calculation back to the form. Seq identifies
// the calculate request; results for a superseded request are dropped.
type ResultMsg struct {
	Seq    int
	Result domain.Result
}
