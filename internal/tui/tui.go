package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkaragoz/clockwise/internal/notify"
	"github.com/dkaragoz/clockwise/internal/shift"
)

// RunShiftTUI starts the interactive shift countdown
func RunShiftTUI(timer *shift.Timer, channel *notify.Channel, tickInterval time.Duration) error {
	model := NewShiftModel(timer, channel, tickInterval)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Print a parting status line after the TUI closes
	if m, ok := finalModel.(ShiftModel); ok && m.timer.Active() {
		fmt.Printf("🕐 Clock out at %s — %s\n", m.timer.LogoutDisplay(), m.remaining)
	}

	return nil
}
