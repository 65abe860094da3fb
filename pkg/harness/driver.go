package harness

import (
	stderrors "errors"
	"time"

	"github.com/brjennin/Fleet/pkg/errors"
	"github.com/brjennin/Fleet/pkg/host"
)

// DefaultPollInterval is the interval between WaitUntil predicate polls.
const DefaultPollInterval = 10 * time.Millisecond

var (
	errNoWindowProvider = stderrors.New("no window provider injected")
	errNoKeyWindow      = stderrors.New("no key window")
)

// Driver simulates user interactions against host-toolkit controls and
// container nodes. It fabricates the same callback sequences a real
// interaction would produce, synchronously and in order, so tests can
// assert immediately after each call.
//
// A Driver owns the out-of-band state the host toolkit does not expose:
// a focus flag per control and a did-load counter per container node.
// Both side tables are keyed by identity and scoped to the driver's
// lifetime; the driver never owns the controls or nodes themselves.
//
// The driver and the test that uses it run cooperatively on one logical
// thread, so no methods take locks.
type Driver struct {
	window       host.WindowProvider
	scheduler    host.Scheduler
	clock        Clock
	pollInterval time.Duration
	focused      map[host.EditableControl]bool
	loaded       map[host.ContainerNode]int
	dispatches   []func()
}

// NewDriver creates a driver with the system clock and default poll
// interval. Inject collaborators with the Set methods before simulating.
func NewDriver() *Driver {
	return &Driver{
		clock:        SystemClock{},
		pollInterval: DefaultPollInterval,
		focused:      make(map[host.EditableControl]bool),
		loaded:       make(map[host.ContainerNode]int),
	}
}

// SetWindowProvider injects the key-window accessor used by KeyRoot and
// FrontmostNode.
func (d *Driver) SetWindowProvider(p host.WindowProvider) {
	d.window = p
}

// SetScheduler injects the host scheduler drained between WaitUntil polls.
func (d *Driver) SetScheduler(s host.Scheduler) {
	d.scheduler = s
}

// SetClock replaces the driver's clock. Pass a FakeClock for
// deterministic waits. A nil clock is ignored.
func (d *Driver) SetClock(c Clock) {
	if c != nil {
		d.clock = c
	}
}

// SetPollInterval overrides the WaitUntil polling interval.
// Non-positive intervals are ignored.
func (d *Driver) SetPollInterval(interval time.Duration) {
	if interval > 0 {
		d.pollInterval = interval
	}
}

// Clock returns the driver's clock.
func (d *Driver) Clock() Clock {
	return d.clock
}

// IsFocused reports the driver-tracked focus flag for a control.
func (d *Driver) IsFocused(c host.EditableControl) bool {
	return d.focused[c]
}

// LoadCount returns how many times a node's did-load event has fired.
// The count never exceeds 1.
func (d *Driver) LoadCount(n host.ContainerNode) int {
	return d.loaded[n]
}

// Dispatch queues a callback to run at the next pump, before the next
// WaitUntil poll evaluates its predicate.
func (d *Driver) Dispatch(fn func()) {
	d.dispatches = append(d.dispatches, fn)
}

// pump drains the dispatch queue, then lets the host scheduler run its
// pending main-thread work.
func (d *Driver) pump() {
	dispatches := d.dispatches
	d.dispatches = nil
	for _, fn := range dispatches {
		fn()
	}
	if d.scheduler != nil {
		d.scheduler.RunPending()
	}
}

// KeyRoot returns the root node of the key window. When no provider is
// injected or no window is key, it reports a warning and returns nil
// rather than failing hard.
func (d *Driver) KeyRoot() host.ContainerNode {
	const op = "harness.KeyRoot"
	if d.window == nil {
		errors.Warn(&errors.FleetError{Op: op, Kind: errors.KindWindow, Err: errNoWindowProvider})
		return nil
	}
	w := d.window.KeyWindow()
	if w == nil {
		errors.Warn(&errors.FleetError{Op: op, Kind: errors.KindWindow, Err: errNoKeyWindow})
		return nil
	}
	return w.RootNode()
}

// FrontmostNode walks the presented chain from the key window's root and
// returns the node currently on top. Returns nil when KeyRoot is nil.
func (d *Driver) FrontmostNode() host.ContainerNode {
	node := d.KeyRoot()
	if node == nil {
		return nil
	}
	for node.PresentedNode() != nil {
		node = node.PresentedNode()
	}
	return node
}
