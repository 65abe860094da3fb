package host

// ContainerNode is a presentation participant (a screen, modal, or
// sheet) in the toolkit's view hierarchy. PresentedNode and
// PresentingNode form a symmetric pointer pair: the harness sets both
// together on present and clears both together on dismiss.
type ContainerNode interface {
	// PresentedNode returns the node this node is currently presenting,
	// or nil.
	PresentedNode() ContainerNode

	// SetPresentedNode updates the presented pointer.
	SetPresentedNode(node ContainerNode)

	// PresentingNode returns the node presenting this node, or nil.
	PresentingNode() ContainerNode

	// SetPresentingNode updates the presenting pointer.
	SetPresentingNode(node ContainerNode)
}

// LoadNotifiable is implemented by nodes that take the one-time did-load
// lifecycle callback. The harness fires DidLoad on a node's first-ever
// presentation and never again.
type LoadNotifiable interface {
	DidLoad()
}

// Window is a top-level presentation context.
type Window interface {
	// RootNode returns the node at the base of the window's
	// presentation chain.
	RootNode() ContainerNode
}

// WindowProvider locates the active key window. It is injected into the
// driver rather than read from a package global so the harness stays
// testable in isolation. A nil return means no window is key.
type WindowProvider interface {
	KeyWindow() Window
}

// Scheduler drains work the application under test has queued for its
// main thread. The harness calls RunPending between WaitUntil polls so
// scheduled lifecycle transitions can complete. The harness and the
// scheduler run cooperatively on one logical thread; RunPending must not
// be re-entered.
type Scheduler interface {
	RunPending()
}
