package flow

import (
	"fmt"
	"time"

	"github.com/brjennin/Fleet/pkg/harness"
	"github.com/brjennin/Fleet/pkg/host"
)

// DefaultWaitTimeout applies to waitVisible steps without a timeoutMs.
const DefaultWaitTimeout = time.Second

// Registry resolves the control and node ids referenced by flow steps to
// live host objects. Nil returns mean the id is unknown.
type Registry interface {
	Control(id string) host.EditableControl
	Node(id string) host.ContainerNode
}

// StepResult records the outcome of one executed step.
type StepResult struct {
	Step Step
	Err  error
}

// Runner executes parsed flows against a harness driver.
type Runner struct {
	driver   *harness.Driver
	registry Registry
}

// NewRunner creates a runner bound to a driver and registry.
func NewRunner(driver *harness.Driver, registry Registry) *Runner {
	return &Runner{driver: driver, registry: registry}
}

// Run executes every step in order, stopping at the first failure.
// The returned results include the failing step.
func (r *Runner) Run(f *Flow) ([]StepResult, error) {
	results := make([]StepResult, 0, len(f.Steps))
	for _, step := range f.Steps {
		err := r.runStep(step)
		results = append(results, StepResult{Step: step, Err: err})
		if err != nil {
			return results, fmt.Errorf("flow %q: step %q: %w", f.Config.Name, step.Describe(), err)
		}
	}
	return results, nil
}

func (r *Runner) runStep(s Step) error {
	switch s.Type {
	case StepFocus:
		c, err := r.control(s.Control)
		if err != nil {
			return err
		}
		return r.driver.EnterControl(c)
	case StepBlur:
		c, err := r.control(s.Control)
		if err != nil {
			return err
		}
		r.driver.LeaveControl(c)
	case StepTypeText:
		c, err := r.control(s.Control)
		if err != nil {
			return err
		}
		r.driver.TypeText(c, s.Text)
	case StepPasteText:
		c, err := r.control(s.Control)
		if err != nil {
			return err
		}
		r.driver.PasteText(c, s.Text)
	case StepEnterText:
		c, err := r.control(s.Control)
		if err != nil {
			return err
		}
		return r.driver.EnterText(c, s.Text)
	case StepClearText:
		c, err := r.control(s.Control)
		if err != nil {
			return err
		}
		r.driver.ClearText(c)
	case StepAssertText:
		c, err := r.control(s.Control)
		if err != nil {
			return err
		}
		if got := c.Text(); got != s.Equals {
			return fmt.Errorf("text is %q, want %q", got, s.Equals)
		}
	case StepPresent:
		presenter, err := r.presenter(s.Presenter)
		if err != nil {
			return err
		}
		presented, err := r.node(s.Presented)
		if err != nil {
			return err
		}
		r.driver.Present(presenter, presented, nil)
	case StepDismiss:
		n, err := r.node(s.Presenter)
		if err != nil {
			return err
		}
		r.driver.Dismiss(n, nil)
	case StepWaitVisible:
		n, err := r.node(s.Node)
		if err != nil {
			return err
		}
		timeout := DefaultWaitTimeout
		if s.TimeoutMs > 0 {
			timeout = time.Duration(s.TimeoutMs) * time.Millisecond
		}
		return r.driver.WaitUntil(
			fmt.Sprintf("node %q is presented", s.Node),
			func() bool { return n.PresentingNode() != nil },
			timeout,
		)
	default:
		return fmt.Errorf("unknown step %q", s.Type)
	}
	return nil
}

// control resolves a control id or fails with a step error.
func (r *Runner) control(id string) (host.EditableControl, error) {
	if c := r.registry.Control(id); c != nil {
		return c, nil
	}
	return nil, fmt.Errorf("unknown control %q", id)
}

// node resolves a node id or fails with a step error.
func (r *Runner) node(id string) (host.ContainerNode, error) {
	if n := r.registry.Node(id); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("unknown node %q", id)
}

// presenter resolves the presenting node for a present step: an explicit
// id when given, otherwise the frontmost node of the key window.
func (r *Runner) presenter(id string) (host.ContainerNode, error) {
	if id != "" {
		return r.node(id)
	}
	if n := r.driver.FrontmostNode(); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("no presenter: step omits one and no key window is set")
}
