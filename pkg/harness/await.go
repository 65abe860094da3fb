package harness

import (
	"time"

	"github.com/brjennin/Fleet/pkg/errors"
)

// WaitUntil blocks the calling test until pred returns true or timeout
// elapses. It is the driver's only suspension point, and the suspension
// is cooperative: between polls the driver drains its dispatch queue and
// the injected host scheduler, so main-thread work queued by the
// application under test runs while the test waits.
//
// The predicate is evaluated at least once, so a condition that is
// already true succeeds even with a zero timeout. On timeout the call
// returns *errors.TimeoutError naming the unmet condition; it never
// retries and never panics.
func (d *Driver) WaitUntil(condition string, pred func() bool, timeout time.Duration) error {
	var elapsed time.Duration
	for {
		d.pump()
		if pred() {
			return nil
		}
		if elapsed >= timeout {
			return &errors.TimeoutError{Condition: condition, Timeout: timeout}
		}
		d.clock.Sleep(d.pollInterval)
		elapsed += d.pollInterval
	}
}
