package harness

import (
	"fmt"

	"github.com/brjennin/Fleet/pkg/errors"
	"github.com/brjennin/Fleet/pkg/host"
)

// observerOf returns the control's attached observer, or nil.
func observerOf(c host.EditableControl) *host.EditingObserver {
	if p, ok := c.(host.ObserverProvider); ok {
		return p.EditingObserver()
	}
	return nil
}

// notify delivers an editing event to every listener registered on the
// control. Listeners fire even when no observer is attached.
func notify(c host.EditableControl, kind host.EventKind) {
	src, ok := c.(host.EventSource)
	if !ok {
		return
	}
	for _, listener := range src.Listeners(kind) {
		listener()
	}
}

// warnUsage reports a non-fatal misuse of the simulation API. The
// operation that reported it becomes a no-op.
func warnUsage(op, format string, args ...any) {
	errors.Warn(&errors.FleetError{
		Op:   op,
		Kind: errors.KindUsage,
		Err:  fmt.Errorf(format, args...),
	})
}

// EnterControl simulates the user giving focus to a control.
//
// The callback order matches a real focus change: ShouldBeginEditing,
// DidBeginEditing, then the EditingDidBegin listeners. Boolean hook
// returns are ignored; the simulation always proceeds.
//
// Entering an already-entered control warns and does nothing. Entering a
// disabled control returns *errors.DisabledControlError and leaves the
// control unfocused.
func (d *Driver) EnterControl(c host.EditableControl) error {
	const op = "harness.EnterControl"
	if d.focused[c] {
		warnUsage(op, "control is already entered")
		return nil
	}
	if !c.Enabled() {
		return &errors.DisabledControlError{Op: op}
	}
	d.focused[c] = true
	if obs := observerOf(c); obs != nil {
		if obs.ShouldBeginEditing != nil {
			obs.ShouldBeginEditing()
		}
		if obs.DidBeginEditing != nil {
			obs.DidBeginEditing()
		}
	}
	notify(c, host.EditingDidBegin)
	return nil
}

// LeaveControl simulates the user taking focus away from a control:
// ShouldEndEditing, DidEndEditing, the EditingDidEnd listeners, then the
// focus flag clears. It replays the event sequence only; it does not ask
// the host to resign anything. Leaving a never-entered control warns and
// does nothing.
func (d *Driver) LeaveControl(c host.EditableControl) {
	const op = "harness.LeaveControl"
	if !d.focused[c] {
		warnUsage(op, "control was never entered")
		return
	}
	if obs := observerOf(c); obs != nil {
		if obs.ShouldEndEditing != nil {
			obs.ShouldEndEditing()
		}
		if obs.DidEndEditing != nil {
			obs.DidEndEditing()
		}
	}
	notify(c, host.EditingDidEnd)
	d.focused[c] = false
}

// TypeText simulates typing s one character at a time into a focused
// control. The control's existing text is cleared first. Each character
// produces one ShouldChangeText call, with range {index, 1} and the
// character as replacement, and one EditingChanged notification, so a
// 6-character string fires 6 of each. Typing into a never-entered
// control warns and mutates nothing.
func (d *Driver) TypeText(c host.EditableControl, s string) {
	const op = "harness.TypeText"
	if !d.focused[c] {
		warnUsage(op, "control was never entered")
		return
	}
	c.SetText("")
	obs := observerOf(c)
	for i, r := range []rune(s) {
		ch := string(r)
		if obs != nil && obs.ShouldChangeText != nil {
			obs.ShouldChangeText(host.TextRange{Location: i, Length: 1}, ch)
		}
		c.SetText(c.Text() + ch)
		notify(c, host.EditingChanged)
	}
}

// PasteText simulates pasting s into a focused control as one edit: a
// single ShouldChangeText call covering the full current text, a direct
// SetText, and exactly one EditingChanged notification. The hook never
// supplies the text; the simulation sets it itself. Pasting into a
// never-entered control warns and mutates nothing.
func (d *Driver) PasteText(c host.EditableControl, s string) {
	const op = "harness.PasteText"
	if !d.focused[c] {
		warnUsage(op, "control was never entered")
		return
	}
	if obs := observerOf(c); obs != nil && obs.ShouldChangeText != nil {
		obs.ShouldChangeText(host.TextRange{Location: 0, Length: len([]rune(c.Text()))}, s)
	}
	c.SetText(s)
	notify(c, host.EditingChanged)
}

// EnterText is the composite enter, type, leave sequence. An error from
// EnterControl is returned before any text is typed.
func (d *Driver) EnterText(c host.EditableControl, s string) error {
	if err := d.EnterControl(c); err != nil {
		return err
	}
	d.TypeText(c, s)
	d.LeaveControl(c)
	return nil
}

// ClearText empties the control regardless of focus state and invokes
// ShouldClear when an observer is attached. No prior EnterControl is
// required.
func (d *Driver) ClearText(c host.EditableControl) {
	if obs := observerOf(c); obs != nil && obs.ShouldClear != nil {
		obs.ShouldClear()
	}
	c.SetText("")
}
