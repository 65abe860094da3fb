// Package testbed provides in-memory host-toolkit fakes for exercising
// the harness in tests.
package testbed

import "github.com/brjennin/Fleet/pkg/host"

// Control is an in-memory EditableControl with an optional observer and
// a per-event listener registry.
type Control struct {
	Disabled bool
	Observer *host.EditingObserver

	text      string
	listeners map[host.EventKind][]func()
}

// NewControl returns an enabled, empty control.
func NewControl() *Control {
	return &Control{listeners: make(map[host.EventKind][]func())}
}

// Enabled reports whether the control accepts interaction.
func (c *Control) Enabled() bool { return !c.Disabled }

// Text returns the control's text.
func (c *Control) Text() string { return c.text }

// SetText replaces the control's text.
func (c *Control) SetText(s string) { c.text = s }

// EditingObserver implements host.ObserverProvider.
func (c *Control) EditingObserver() *host.EditingObserver { return c.Observer }

// AddListener registers a target-action listener for kind.
func (c *Control) AddListener(kind host.EventKind, fn func()) {
	if c.listeners == nil {
		c.listeners = make(map[host.EventKind][]func())
	}
	c.listeners[kind] = append(c.listeners[kind], fn)
}

// Listeners implements host.EventSource.
func (c *Control) Listeners(kind host.EventKind) []func() {
	return c.listeners[kind]
}

// ChangeCall records one ShouldChangeText invocation.
type ChangeCall struct {
	Range       host.TextRange
	Replacement string
}

// RecordingObserver counts observer hook invocations. Its should-hooks
// return false to prove the harness ignores boolean returns.
type RecordingObserver struct {
	ShouldBeginCount int
	DidBeginCount    int
	ShouldEndCount   int
	DidEndCount      int
	ClearCount       int
	Changes          []ChangeCall
}

// Hooks returns an EditingObserver with every slot populated and
// recording into the receiver.
func (r *RecordingObserver) Hooks() *host.EditingObserver {
	return &host.EditingObserver{
		ShouldBeginEditing: func() bool {
			r.ShouldBeginCount++
			return false
		},
		DidBeginEditing: func() {
			r.DidBeginCount++
		},
		ShouldEndEditing: func() bool {
			r.ShouldEndCount++
			return false
		},
		DidEndEditing: func() {
			r.DidEndCount++
		},
		ShouldChangeText: func(rg host.TextRange, replacement string) bool {
			r.Changes = append(r.Changes, ChangeCall{Range: rg, Replacement: replacement})
			return false
		},
		ShouldClear: func() bool {
			r.ClearCount++
			return false
		},
	}
}
