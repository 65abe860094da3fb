// Package host defines the interface boundary between the Fleet harness
// and the GUI toolkit under test. The harness never owns the objects
// behind these interfaces; it holds transient references while
// simulating an interaction.
package host

// TextRange identifies the span of text a pending replacement targets.
// Location and Length are measured in characters (runes).
type TextRange struct {
	Location int
	Length   int
}

// EditableControl is the surface the harness needs from an editable
// toolkit control. The harness only mutates a control through SetText.
type EditableControl interface {
	// Enabled reports whether the control accepts user interaction.
	Enabled() bool

	// Text returns the control's current text.
	Text() string

	// SetText replaces the control's text.
	SetText(s string)
}

// EditingObserver is a delegate-like collaborator with independently
// optional hooks. Nil slots are skipped. Boolean returns are ignored by
// the harness: events fire unconditionally, even when a hook vetoes.
type EditingObserver struct {
	ShouldBeginEditing func() bool
	DidBeginEditing    func()
	ShouldEndEditing   func() bool
	DidEndEditing      func()
	ShouldChangeText   func(r TextRange, replacement string) bool
	ShouldClear        func() bool
}

// ObserverProvider is implemented by controls with an observer attached.
// Controls without the capability are driven listener-only.
type ObserverProvider interface {
	EditingObserver() *EditingObserver
}

// EventKind identifies a control editing notification.
type EventKind int

const (
	// EditingDidBegin fires after a control gains focus.
	EditingDidBegin EventKind = iota

	// EditingDidEnd fires after a control loses focus.
	EditingDidEnd

	// EditingChanged fires after each text mutation.
	EditingChanged
)

func (k EventKind) String() string {
	switch k {
	case EditingDidBegin:
		return "editingDidBegin"
	case EditingDidEnd:
		return "editingDidEnd"
	case EditingChanged:
		return "editingChanged"
	default:
		return "unknown"
	}
}

// EventSource is implemented by controls that expose their registered
// target-action listeners. The harness delivers an event to every
// listener; delivery order is not part of the contract.
type EventSource interface {
	Listeners(kind EventKind) []func()
}
