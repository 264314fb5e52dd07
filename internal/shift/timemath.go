package shift

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Shift length: 8 hours of work plus a 35-minute lunch break.
const (
	WorkHours   = 8
	WorkMinutes = 35

	// ShiftDuration is the fixed span between clock-in and clock-out.
	ShiftDuration = WorkHours*time.Hour + WorkMinutes*time.Minute
)

// FreeToGoMessage replaces the countdown once the shift is over.
const FreeToGoMessage = "You're free to go!"

// ErrInvalidTimeFormat is returned when a login time string isn't HH:MM.
var ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")

// TimeOfDay is a wall-clock time without a date. It always refers to
// "today" when anchored to an instant.
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
}

var timeOfDayRegex = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// ParseTimeOfDay parses a 24-hour "HH:MM" string.
func ParseTimeOfDay(input string) (TimeOfDay, error) {
	matches := timeOfDayRegex.FindStringSubmatch(input)
	if len(matches) != 3 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, input)
	}

	hour, err := strconv.Atoi(matches[1])
	if err != nil || hour > 23 {
		return TimeOfDay{}, fmt.Errorf("%w: hour must be between 0 and 23", ErrInvalidTimeFormat)
	}

	minute, err := strconv.Atoi(matches[2])
	if err != nil || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: minute must be between 0 and 59", ErrInvalidTimeFormat)
	}

	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// TimeOfDayFrom extracts the wall-clock time of an instant.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// String renders the 24-hour "HH:MM" input form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Anchor places the time of day on ref's calendar date, in ref's location.
func (t TimeOfDay) Anchor(ref time.Time) time.Time {
	return time.Date(ref.Year(), ref.Month(), ref.Day(), t.Hour, t.Minute, 0, 0, ref.Location())
}

// LogoutInstant computes the clock-out instant for a login anchored to
// ref's calendar date. A login late enough in the day simply rolls the
// result onto the next calendar date.
func LogoutInstant(login TimeOfDay, ref time.Time) time.Time {
	return login.Anchor(ref).Add(ShiftDuration)
}

// FormatDisplay renders an instant as 12-hour time, e.g. "5:35 PM".
func FormatDisplay(t time.Time) string {
	return t.Format("3:04 PM")
}

// RemainingLabel renders the time left until target as human-readable
// text. Once target is reached it returns FreeToGoMessage.
func RemainingLabel(now, target time.Time) string {
	diff := target.Sub(now)
	if diff <= 0 {
		return FreeToGoMessage
	}

	minutes := int(diff.Minutes())
	hours := minutes / 60
	minutes = minutes % 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm remaining", hours, minutes)
	}
	return fmt.Sprintf("%dm remaining", minutes)
}

// ProgressPercent returns how far now is through the shift, 0-100.
// Values outside the shift window clamp to the nearest bound.
func ProgressPercent(login TimeOfDay, target, now time.Time) float64 {
	start := login.Anchor(target)
	if target.Before(start) {
		// target rolled past midnight, anchor against its previous day
		start = login.Anchor(target.AddDate(0, 0, -1))
	}

	total := target.Sub(start).Seconds()
	if total == 0 {
		return 0
	}

	elapsed := now.Sub(start).Seconds()
	progress := elapsed / total * 100

	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}

// CrossesMidnight reports whether a login's shift ends on a later
// calendar date than it starts.
func CrossesMidnight(login TimeOfDay, ref time.Time) bool {
	start := login.Anchor(ref)
	end := start.Add(ShiftDuration)
	return end.Day() != start.Day()
}
