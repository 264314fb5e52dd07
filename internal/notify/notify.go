// Package notify delivers desktop reminders through the OS notification
// channel. The shift core only decides that a reminder should fire; this
// package owns whether it can be delivered at all.
package notify

import (
	"errors"
	"sync"

	"github.com/gen2brain/beeep"
)

// Permission mirrors the three states of the notification channel:
// not yet decided, usable, or switched off.
type Permission int

const (
	PermissionDefault Permission = iota
	PermissionGranted
	PermissionDenied
)

// ErrUnavailable is returned when the channel is denied or delivery
// failed. Callers degrade silently — the countdown never depends on it.
var ErrUnavailable = errors.New("notifications unavailable")

// Reminder copy for the two shift thresholds.
const (
	FiveMinuteTitle = "5 minutes left"
	FiveMinuteBody  = "Almost there — wrap it up."
	CompleteTitle   = "Shift complete"
	CompleteBody    = "You're free to go!"
)

// Channel is a fire-and-forget notification sender gated by a
// permission state. Send runs off the caller's event loop, so the
// permission is mutex-guarded.
type Channel struct {
	mu         sync.Mutex
	permission Permission
	deliver    func(title, body string) error
}

// NewChannel builds a channel from the user's config toggle.
func NewChannel(enabled bool) *Channel {
	c := &Channel{
		permission: PermissionDenied,
		deliver: func(title, body string) error {
			return beeep.Notify(title, body, "")
		},
	}
	if enabled {
		c.permission = PermissionGranted
	}
	return c
}

// Granted reports whether delivery may be attempted.
func (c *Channel) Granted() bool {
	return c.Permission() == PermissionGranted
}

// Permission returns the channel's current state.
func (c *Channel) Permission() Permission {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.permission
}

// Send delivers a notification if the channel is granted. A delivery
// failure marks the channel denied so later ticks stop retrying. The
// lock is not held across delivery, only around the permission state.
func (c *Channel) Send(title, body string) error {
	c.mu.Lock()
	if c.permission != PermissionGranted {
		c.mu.Unlock()
		return ErrUnavailable
	}
	deliver := c.deliver
	c.mu.Unlock()

	if err := deliver(title, body); err != nil {
		c.mu.Lock()
		c.permission = PermissionDenied
		c.mu.Unlock()
		return errors.Join(ErrUnavailable, err)
	}

	return nil
}

// SendFiveMinute fires the early reminder.
func (c *Channel) SendFiveMinute() error {
	return c.Send(FiveMinuteTitle, FiveMinuteBody)
}

// SendComplete fires the end-of-shift reminder.
func (c *Channel) SendComplete() error {
	return c.Send(CompleteTitle, CompleteBody)
}
