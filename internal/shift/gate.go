package shift

import "time"

// FiveMinuteWarning is the threshold for the early reminder.
const FiveMinuteWarning = 5 * time.Minute

// GateResult signals which notifications should fire on this tick.
// It carries intent only; delivery belongs to the notify package.
type GateResult struct {
	FireFiveMinute bool
	FireComplete   bool
}

// EvaluateGate decides whether a threshold was just crossed. Each
// threshold fires at most once per shift: the caller records the flip
// via the notified flags and passes them back on the next tick. Both
// thresholds may fire in the same call when consecutive ticks straddle
// both boundaries.
func EvaluateGate(now, target time.Time, notifiedFiveMinute, notifiedComplete bool) GateResult {
	remaining := target.Sub(now)

	return GateResult{
		FireFiveMinute: !notifiedFiveMinute && remaining > 0 && remaining <= FiveMinuteWarning,
		FireComplete:   !notifiedComplete && remaining <= 0,
	}
}
