package shift

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkaragoz/clockwise/internal/models"
)

func TestTimer_UnsetState(t *testing.T) {
	timer := NewTimer()

	assert.False(t, timer.Active())

	_, err := timer.Tick(refDay)
	assert.ErrorIs(t, err, ErrNotActive)

	_, err = timer.SaveShift(refDay)
	assert.ErrorIs(t, err, ErrNotActive)
}

func TestTimer_SetLoginTime(t *testing.T) {
	timer := NewTimer()
	now := TimeOfDay{Hour: 9, Minute: 30}.Anchor(refDay)

	timer.SetLoginTime(TimeOfDay{Hour: 9, Minute: 0}, now)

	require.True(t, timer.Active())
	assert.Equal(t, TimeOfDay{Hour: 9, Minute: 0}, timer.Login())
	assert.Equal(t, "5:35 PM", FormatDisplay(timer.Logout()))
	assert.Equal(t, "5:35 PM", timer.LogoutDisplay())
}

func TestTimer_SetLoginTimeResetsFlags(t *testing.T) {
	timer := NewTimer()
	login := TimeOfDay{Hour: 9, Minute: 0}
	timer.SetLoginTime(login, refDay)

	// Drive both thresholds so both flags flip
	res, err := timer.Tick(timer.Logout().Add(-4 * time.Minute))
	require.NoError(t, err)
	assert.True(t, res.FireFiveMinute)

	res, err = timer.Tick(timer.Logout().Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, res.FireComplete)

	// Re-setting the login time mid-shift starts a fresh shift
	timer.SetLoginTime(login, refDay)

	res, err = timer.Tick(timer.Logout().Add(-4 * time.Minute))
	require.NoError(t, err)
	assert.True(t, res.FireFiveMinute, "flags must reset on every login change")
}

func TestTimer_TickIdempotent(t *testing.T) {
	timer := NewTimer()
	timer.SetLoginTime(TimeOfDay{Hour: 9, Minute: 0}, refDay)

	now := timer.Logout().Add(-3 * time.Minute)

	res, err := timer.Tick(now)
	require.NoError(t, err)
	assert.True(t, res.FireFiveMinute)

	// Same instant polled again: stable output, no duplicate fire
	res, err = timer.Tick(now)
	require.NoError(t, err)
	assert.False(t, res.FireFiveMinute)
	assert.Equal(t, "3m remaining", res.RemainingLabel)
}

func TestTimer_SaveShift(t *testing.T) {
	timer := NewTimer()
	timer.SetLoginTime(TimeOfDay{Hour: 9, Minute: 0}, refDay)

	now := TimeOfDay{Hour: 17, Minute: 40}.Anchor(refDay)
	entry, err := timer.SaveShift(now)
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, now.Format(models.DateLayout), entry.Date)
	assert.Equal(t, "9:00 AM", entry.LoginDisplay)
	assert.Equal(t, "5:35 PM", entry.LogoutDisplay)
	assert.Equal(t, now.UnixMilli(), entry.TimestampMillis)

	// Each save mints a fresh id
	again, err := timer.SaveShift(now)
	require.NoError(t, err)
	assert.NotEqual(t, entry.ID, again.ID)
}

func TestTimer_NextDayMarker(t *testing.T) {
	timer := NewTimer()
	timer.SetLoginTime(TimeOfDay{Hour: 22, Minute: 0}, refDay)

	assert.Equal(t, "6:35 AM (next day)", timer.LogoutDisplay())
}

func TestTimer_Clear(t *testing.T) {
	timer := NewTimer()
	timer.SetLoginTime(TimeOfDay{Hour: 9, Minute: 0}, refDay)
	require.True(t, timer.Active())

	timer.Clear()

	assert.False(t, timer.Active())
	_, err := timer.Tick(refDay)
	assert.ErrorIs(t, err, ErrNotActive)
}

// The walkthrough from the original app: clock in at 9:00, clock out at
// 5:35 PM, warning at 5:30, done at 5:36.
func TestTimer_EndToEnd(t *testing.T) {
	timer := NewTimer()
	timer.SetLoginTime(TimeOfDay{Hour: 9, Minute: 0}, refDay)

	require.Equal(t, "5:35 PM", FormatDisplay(timer.Logout()))

	at1730 := TimeOfDay{Hour: 17, Minute: 30}.Anchor(refDay)
	res, err := timer.Tick(at1730)
	require.NoError(t, err)
	assert.Equal(t, "5m remaining", res.RemainingLabel)
	assert.True(t, res.FireFiveMinute)
	assert.False(t, res.FireComplete)

	at1736 := TimeOfDay{Hour: 17, Minute: 36}.Anchor(refDay)
	res, err = timer.Tick(at1736)
	require.NoError(t, err)
	assert.Equal(t, FreeToGoMessage, res.RemainingLabel)
	assert.True(t, res.FireComplete)
	assert.Equal(t, 100.0, res.Progress)

	// Countdown keeps running, nothing fires twice
	res, err = timer.Tick(at1736.Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, res.FireFiveMinute)
	assert.False(t, res.FireComplete)
}
