package harness

import "github.com/brjennin/Fleet/pkg/host"

// Present wires presented under presenter and replays the presentation
// lifecycle synchronously, in order: the pointer pair is set together, a
// node's one-time did-load fires if this is its first-ever presentation,
// and completion runs before Present returns. No animation and nothing
// deferred, so callers can assert immediately.
func (d *Driver) Present(presenter, presented host.ContainerNode, completion func()) {
	presenter.SetPresentedNode(presented)
	presented.SetPresentingNode(presenter)
	d.loadIfNeeded(presented)
	if completion != nil {
		completion()
	}
}

// Show is Present with the host's default animation flag and no
// completion. sender is accepted for signature parity with the host
// toolkit and ignored.
func (d *Driver) Show(presenter, presented host.ContainerNode, sender any) {
	_ = sender
	d.Present(presenter, presented, nil)
}

// Dismiss clears the presenter's pointer pair symmetrically. Dismissing
// when nothing is presented is a no-op apart from the completion, which
// always runs synchronously before Dismiss returns.
func (d *Driver) Dismiss(presenter host.ContainerNode, completion func()) {
	if presented := presenter.PresentedNode(); presented != nil {
		presenter.SetPresentedNode(nil)
		presented.SetPresentingNode(nil)
	}
	if completion != nil {
		completion()
	}
}

// loadIfNeeded fires the one-time did-load lifecycle event. A node loads
// at most once per driver lifetime no matter how often it is presented.
func (d *Driver) loadIfNeeded(n host.ContainerNode) {
	if d.loaded[n] > 0 {
		return
	}
	d.loaded[n]++
	if l, ok := n.(host.LoadNotifiable); ok {
		l.DidLoad()
	}
}
