package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateGate_FiveMinuteWindow(t *testing.T) {
	target := TimeOfDay{Hour: 17, Minute: 35}.Anchor(refDay)

	cases := []struct {
		name     string
		now      time.Time
		wantFive bool
	}{
		{"six minutes out", target.Add(-6 * time.Minute), false},
		{"exactly five minutes", target.Add(-5 * time.Minute), true},
		{"inside the window", target.Add(-2 * time.Minute), true},
		{"at target", target, false},
		{"past target", target.Add(time.Minute), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EvaluateGate(tc.now, target, false, false)
			assert.Equal(t, tc.wantFive, got.FireFiveMinute)
		})
	}
}

func TestEvaluateGate_FiresOnceAcrossTicks(t *testing.T) {
	target := TimeOfDay{Hour: 17, Minute: 35}.Anchor(refDay)

	notified := false
	fires := 0

	// Tick every 30s from 6 minutes out to 1 minute out
	for now := target.Add(-6 * time.Minute); now.Before(target.Add(-time.Minute)); now = now.Add(30 * time.Second) {
		got := EvaluateGate(now, target, notified, false)
		if got.FireFiveMinute {
			fires++
			notified = true
		}
	}

	assert.Equal(t, 1, fires, "five-minute warning must fire exactly once")
}

func TestEvaluateGate_CompleteFiresOnce(t *testing.T) {
	target := TimeOfDay{Hour: 17, Minute: 35}.Anchor(refDay)

	got := EvaluateGate(target, target, true, false)
	assert.True(t, got.FireComplete, "completion fires at the target instant")
	assert.False(t, got.FireFiveMinute)

	got = EvaluateGate(target.Add(time.Minute), target, true, true)
	assert.False(t, got.FireComplete, "flag suppresses a second fire")
}

func TestEvaluateGate_ThresholdsIndependent(t *testing.T) {
	// A tick that jumps straight past the target: the warning window is
	// already closed, completion still fires.
	target := TimeOfDay{Hour: 17, Minute: 35}.Anchor(refDay)

	got := EvaluateGate(target.Add(time.Second), target, false, false)
	assert.False(t, got.FireFiveMinute, "window is closed once target passed")
	assert.True(t, got.FireComplete)
}

func TestEvaluateGate_Pure(t *testing.T) {
	target := TimeOfDay{Hour: 17, Minute: 35}.Anchor(refDay)
	now := target.Add(-3 * time.Minute)

	first := EvaluateGate(now, target, false, false)
	second := EvaluateGate(now, target, false, false)
	assert.Equal(t, first, second, "same inputs, same result")
}
