package shift

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/dkaragoz/clockwise/internal/models"
)

// ErrNotActive is returned when a shift operation runs before any login
// time has been set.
var ErrNotActive = errors.New("no active shift, set a login time first")

// Timer tracks one shift: the chosen login time, the derived logout
// instant, and which reminders have already fired. It never owns a
// clock — every transition takes the current instant from the caller,
// so a driver polls Tick on whatever cadence it likes and duplicate
// ticks are harmless.
type Timer struct {
	login  TimeOfDay
	logout time.Time
	active bool

	notifiedFiveMinute bool
	notifiedComplete   bool
}

// TickResult is the derived view of one poll.
type TickResult struct {
	RemainingLabel string
	Progress       float64 // 0-100
	FireFiveMinute bool
	FireComplete   bool
}

// NewTimer returns a timer with no login time set.
func NewTimer() *Timer {
	return &Timer{}
}

// Active reports whether a login time has been set.
func (t *Timer) Active() bool {
	return t.active
}

// Login returns the current login time of day.
func (t *Timer) Login() TimeOfDay {
	return t.login
}

// Logout returns the derived clock-out instant.
func (t *Timer) Logout() time.Time {
	return t.logout
}

// SetLoginTime starts a fresh shift anchored to now's calendar date.
// Every call resets both notification flags — changing the login time
// mid-shift means the old reminders no longer apply.
func (t *Timer) SetLoginTime(login TimeOfDay, now time.Time) {
	t.login = login
	t.logout = LogoutInstant(login, now)
	t.active = true
	t.notifiedFiveMinute = false
	t.notifiedComplete = false
}

// Clear drops the active shift and its notification state.
func (t *Timer) Clear() {
	*t = Timer{}
}

// Tick re-derives the countdown view for now and flips notification
// flags for any threshold crossed since the last poll.
func (t *Timer) Tick(now time.Time) (TickResult, error) {
	if !t.active {
		return TickResult{}, ErrNotActive
	}

	gate := EvaluateGate(now, t.logout, t.notifiedFiveMinute, t.notifiedComplete)
	if gate.FireFiveMinute {
		t.notifiedFiveMinute = true
	}
	if gate.FireComplete {
		t.notifiedComplete = true
	}

	return TickResult{
		RemainingLabel: RemainingLabel(now, t.logout),
		Progress:       ProgressPercent(t.login, t.logout, now),
		FireFiveMinute: gate.FireFiveMinute,
		FireComplete:   gate.FireComplete,
	}, nil
}

// SaveShift builds a history entry for the current shift. It does not
// persist anything — the caller hands the entry to the work log store.
func (t *Timer) SaveShift(now time.Time) (models.WorkLog, error) {
	if !t.active {
		return models.WorkLog{}, ErrNotActive
	}

	return models.WorkLog{
		ID:              uuid.NewString(),
		Date:            now.Format(models.DateLayout),
		LoginDisplay:    FormatDisplay(t.login.Anchor(now)),
		LogoutDisplay:   t.LogoutDisplay(),
		TimestampMillis: now.UnixMilli(),
	}, nil
}

// LogoutDisplay renders the clock-out time, with a marker when the
// shift ends on the next calendar date.
func (t *Timer) LogoutDisplay() string {
	display := FormatDisplay(t.logout)
	if t.active && CrossesMidnight(t.login, t.logout.Add(-ShiftDuration)) {
		display += " (next day)"
	}
	return display
}
