package testbed

import "github.com/brjennin/Fleet/pkg/host"

// Node is an in-memory ContainerNode that records did-load calls.
type Node struct {
	Name      string
	LoadCalls int

	presented  host.ContainerNode
	presenting host.ContainerNode
}

// PresentedNode returns the node this node presents, or nil.
func (n *Node) PresentedNode() host.ContainerNode { return n.presented }

// SetPresentedNode updates the presented pointer.
func (n *Node) SetPresentedNode(node host.ContainerNode) { n.presented = node }

// PresentingNode returns the node presenting this node, or nil.
func (n *Node) PresentingNode() host.ContainerNode { return n.presenting }

// SetPresentingNode updates the presenting pointer.
func (n *Node) SetPresentingNode(node host.ContainerNode) { n.presenting = node }

// DidLoad implements host.LoadNotifiable.
func (n *Node) DidLoad() { n.LoadCalls++ }

// Window is a minimal top-level presentation context.
type Window struct {
	Root host.ContainerNode
}

// RootNode returns the window's root node.
func (w *Window) RootNode() host.ContainerNode { return w.Root }

// WindowProvider returns a fixed key window, possibly unset.
type WindowProvider struct {
	Key *Window
}

// KeyWindow implements host.WindowProvider.
func (p *WindowProvider) KeyWindow() host.Window {
	if p.Key == nil {
		return nil
	}
	return p.Key
}

// Scheduler is a FIFO main-thread work queue.
type Scheduler struct {
	queue []func()
}

// Schedule queues fn to run at the next RunPending.
func (s *Scheduler) Schedule(fn func()) {
	s.queue = append(s.queue, fn)
}

// Pending reports how many callbacks are queued.
func (s *Scheduler) Pending() int { return len(s.queue) }

// RunPending implements host.Scheduler. Work scheduled while draining
// runs on the next drain.
func (s *Scheduler) RunPending() {
	queue := s.queue
	s.queue = nil
	for _, fn := range queue {
		fn()
	}
}
