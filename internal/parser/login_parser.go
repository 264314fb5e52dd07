package parser

import (
	"strings"
	"time"

	"github.com/dkaragoz/clockwise/internal/shift"
)

// ParseLoginInput resolves a login time argument from the CLI or TUI.
// Supported forms:
// - "HH:MM" / "H:MM" 24-hour time (e.g., "09:00", "9:00")
// - "now" for the current wall-clock time
// - "" also means now
func ParseLoginInput(input string, now time.Time) (shift.TimeOfDay, error) {
	input = strings.TrimSpace(strings.ToLower(input))

	if input == "" || input == "now" {
		return shift.TimeOfDayFrom(now), nil
	}

	return shift.ParseTimeOfDay(input)
}
