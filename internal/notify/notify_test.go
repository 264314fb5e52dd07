package notify

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewChannel_PermissionFromToggle(t *testing.T) {
	assert.Equal(t, PermissionGranted, NewChannel(true).Permission())
	assert.Equal(t, PermissionDenied, NewChannel(false).Permission())
}

func TestSend_DeniedChannelDegradesSilently(t *testing.T) {
	c := NewChannel(false)

	assert.False(t, c.Granted())
	assert.ErrorIs(t, c.SendFiveMinute(), ErrUnavailable)
	assert.ErrorIs(t, c.SendComplete(), ErrUnavailable)
}

func TestSend_DeliveryFailureDeniesChannel(t *testing.T) {
	c := NewChannel(true)
	c.deliver = func(title, body string) error {
		return errors.New("no notification daemon")
	}

	err := c.SendFiveMinute()
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, PermissionDenied, c.Permission(), "a failed delivery stops later retries")

	// Subsequent sends short-circuit without reattempting delivery
	c.deliver = func(title, body string) error {
		t.Fatal("denied channel must not deliver")
		return nil
	}
	assert.ErrorIs(t, c.SendComplete(), ErrUnavailable)
}

// Send runs on a goroutine while the event loop polls Granted; the two
// must be safe to interleave.
func TestChannel_ConcurrentSendAndGranted(t *testing.T) {
	c := NewChannel(true)
	failing := errors.New("delivery down")
	c.deliver = func(title, body string) error {
		return failing
	}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.Send(FiveMinuteTitle, FiveMinuteBody)
		}()
		go func() {
			defer wg.Done()
			_ = c.Granted()
		}()
	}
	wg.Wait()

	assert.Equal(t, PermissionDenied, c.Permission())
}
