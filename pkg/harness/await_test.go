package harness

import (
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/brjennin/Fleet/internal/testbed"
	"github.com/brjennin/Fleet/pkg/errors"
)

func TestWaitUntil_AlreadyTrue(t *testing.T) {
	driver := NewDriver()
	driver.SetClock(NewFakeClock())

	err := driver.WaitUntil("condition already met", func() bool { return true }, 0)
	if err != nil {
		t.Errorf("expected immediate success, got %v", err)
	}
}

func TestWaitUntil_SucceedsAfterPolls(t *testing.T) {
	driver := NewDriver()
	driver.SetClock(NewFakeClock())

	polls := 0
	err := driver.WaitUntil("predicate true on third poll", func() bool {
		polls++
		return polls >= 3
	}, time.Second)

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if polls != 3 {
		t.Errorf("expected 3 polls, got %d", polls)
	}
}

func TestWaitUntil_Timeout(t *testing.T) {
	driver := NewDriver()
	clk := NewFakeClock()
	driver.SetClock(clk)
	start := clk.Now()

	err := driver.WaitUntil("screen never appears", func() bool { return false }, time.Second)

	var timeout *errors.TimeoutError
	if !stderrors.As(err, &timeout) {
		t.Fatalf("expected TimeoutError, got %v", err)
	}
	if timeout.Condition != "screen never appears" {
		t.Errorf("timeout must name the unmet condition, got %q", timeout.Condition)
	}
	if timeout.Timeout != time.Second {
		t.Errorf("timeout budget %v, want 1s", timeout.Timeout)
	}
	if !strings.Contains(err.Error(), "screen never appears") {
		t.Errorf("error message must include the condition: %v", err)
	}
	elapsed := clk.Now().Sub(start)
	if elapsed < time.Second || elapsed > time.Second+DefaultPollInterval {
		t.Errorf("expected ~1s of polling, clock advanced %v", elapsed)
	}
}

func TestWaitUntil_DrainsScheduler(t *testing.T) {
	driver := NewDriver()
	driver.SetClock(NewFakeClock())
	scheduler := &testbed.Scheduler{}
	driver.SetScheduler(scheduler)

	home := &testbed.Node{Name: "home"}
	settings := &testbed.Node{Name: "settings"}

	// The application under test schedules the transition instead of
	// presenting immediately.
	scheduler.Schedule(func() {
		driver.Present(home, settings, nil)
	})

	err := driver.WaitUntil("settings presented", func() bool {
		return settings.PresentingNode() == home
	}, time.Second)
	if err != nil {
		t.Fatalf("expected scheduled work to run during wait, got %v", err)
	}
	if scheduler.Pending() != 0 {
		t.Errorf("expected scheduler drained, %d pending", scheduler.Pending())
	}
}

func TestWaitUntil_DispatchRunsBeforePredicate(t *testing.T) {
	driver := NewDriver()
	driver.SetClock(NewFakeClock())

	ran := false
	driver.Dispatch(func() { ran = true })

	err := driver.WaitUntil("dispatch observed", func() bool { return ran }, 0)
	if err != nil {
		t.Errorf("dispatched work must run before the first poll, got %v", err)
	}
}

func TestWaitUntil_PollInterval(t *testing.T) {
	driver := NewDriver()
	clk := NewFakeClock()
	driver.SetClock(clk)
	driver.SetPollInterval(100 * time.Millisecond)
	start := clk.Now()

	polls := 0
	driver.WaitUntil("never", func() bool { polls++; return false }, 300*time.Millisecond)

	// 300ms budget at 100ms per poll: initial poll plus three more.
	if polls != 4 {
		t.Errorf("expected 4 polls, got %d", polls)
	}
	if got := clk.Now().Sub(start); got != 300*time.Millisecond {
		t.Errorf("clock advanced %v, want 300ms", got)
	}
}
