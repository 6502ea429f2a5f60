package tui

import (
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/domain"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/importer"
	"github.com/JoelMaldonado222/Restaurant-phase1/internal/service"
)

// SwitchScreenMsg requests a screen change
type SwitchScreenMsg struct {
	Screen Screen
}

// RefreshDataMsg requests data refresh
type RefreshDataMsg struct{}

// ErrorMsg carries error information
type ErrorMsg struct {
	Err error
}

// snapshotMsg carries a fresh read of the restaurant
type snapshotMsg struct {
	snap service.Snapshot
}

// recordSavedMsg reports the outcome of an add, update or remove.
// closeForm is set when the form should close even on a failed result.
type recordSavedMsg struct {
	res       domain.Result
	err       error
	closeForm bool
}

// openLateMsg reports the flag after a toggle
type openLateMsg struct {
	openLate bool
	err      error
}

// importDoneMsg reports a finished file import
type importDoneMsg struct {
	summary importer.Summary
	err     error
}
