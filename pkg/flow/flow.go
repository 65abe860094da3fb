// Package flow loads YAML interaction scripts and runs them against a
// harness driver. A flow file names controls and screens by id; the
// caller supplies a Registry that resolves those ids to live host
// objects.
package flow

import (
	stderrors "errors"
	"fmt"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Version is the flow schema version checked against minVersion gates.
const Version = "v0.3.0"

// StepType names a flow step.
type StepType string

const (
	StepFocus       StepType = "focus"
	StepBlur        StepType = "blur"
	StepTypeText    StepType = "typeText"
	StepPasteText   StepType = "pasteText"
	StepEnterText   StepType = "enterText"
	StepClearText   StepType = "clearText"
	StepAssertText  StepType = "assertText"
	StepPresent     StepType = "present"
	StepDismiss     StepType = "dismiss"
	StepWaitVisible StepType = "waitVisible"
)

// knownSteps maps each step type to the field its scalar shorthand
// fills, or "" when the step requires a mapping body.
var knownSteps = map[StepType]string{
	StepFocus:       "control",
	StepBlur:        "control",
	StepTypeText:    "",
	StepPasteText:   "",
	StepEnterText:   "",
	StepClearText:   "control",
	StepAssertText:  "",
	StepPresent:     "",
	StepDismiss:     "presenter",
	StepWaitVisible: "node",
}

// Step is one decoded flow step. Each YAML list entry is a single-key
// mapping whose key is the step type and whose value is either an id
// shorthand or a field mapping:
//
//	steps:
//	  - focus: email
//	  - typeText: {control: email, text: "user@example.com"}
//	  - present: {presenter: home, presented: settings}
//	  - waitVisible: {node: settings, timeoutMs: 500}
type Step struct {
	Type      StepType
	Control   string
	Text      string
	Equals    string
	Presenter string
	Presented string
	Node      string
	TimeoutMs int
}

// stepBody is the mapping form of a step value.
type stepBody struct {
	Control   string `yaml:"control"`
	Text      string `yaml:"text"`
	Equals    string `yaml:"equals"`
	Presenter string `yaml:"presenter"`
	Presented string `yaml:"presented"`
	Node      string `yaml:"node"`
	TimeoutMs int    `yaml:"timeoutMs"`
}

// UnmarshalYAML decodes the single-key step form.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode || len(node.Content) != 2 {
		return fmt.Errorf("line %d: step must be a single-key mapping", node.Line)
	}
	var key string
	if err := node.Content[0].Decode(&key); err != nil {
		return err
	}
	s.Type = StepType(key)
	shorthand, known := knownSteps[s.Type]
	if !known {
		return fmt.Errorf("line %d: unknown step %q", node.Line, key)
	}

	body := node.Content[1]
	switch body.Kind {
	case yaml.ScalarNode:
		if shorthand == "" {
			return fmt.Errorf("line %d: step %q requires a mapping body", node.Line, key)
		}
		var id string
		if err := body.Decode(&id); err != nil {
			return err
		}
		switch shorthand {
		case "control":
			s.Control = id
		case "presenter":
			s.Presenter = id
		case "node":
			s.Node = id
		}
	case yaml.MappingNode:
		var b stepBody
		if err := body.Decode(&b); err != nil {
			return err
		}
		s.Control = b.Control
		s.Text = b.Text
		s.Equals = b.Equals
		s.Presenter = b.Presenter
		s.Presented = b.Presented
		s.Node = b.Node
		s.TimeoutMs = b.TimeoutMs
	default:
		return fmt.Errorf("line %d: step %q has an invalid body", node.Line, key)
	}
	return s.validate(node.Line)
}

// validate checks the required fields for the step type.
func (s *Step) validate(line int) error {
	missing := func(field string) error {
		return fmt.Errorf("line %d: step %q requires %q", line, s.Type, field)
	}
	switch s.Type {
	case StepFocus, StepBlur, StepTypeText, StepPasteText, StepEnterText, StepClearText, StepAssertText:
		if s.Control == "" {
			return missing("control")
		}
	case StepPresent:
		// presenter may be empty: the runner presents from the
		// frontmost node of the key window.
		if s.Presented == "" {
			return missing("presented")
		}
	case StepDismiss:
		if s.Presenter == "" {
			return missing("presenter")
		}
	case StepWaitVisible:
		if s.Node == "" {
			return missing("node")
		}
	}
	return nil
}

// Describe returns a short human-readable form for reports and CLI output.
func (s Step) Describe() string {
	switch s.Type {
	case StepPresent:
		if s.Presenter == "" {
			return fmt.Sprintf("present %s", s.Presented)
		}
		return fmt.Sprintf("present %s under %s", s.Presented, s.Presenter)
	case StepDismiss:
		return fmt.Sprintf("dismiss %s", s.Presenter)
	case StepWaitVisible:
		return fmt.Sprintf("waitVisible %s", s.Node)
	default:
		return fmt.Sprintf("%s %s", s.Type, s.Control)
	}
}

// Config is the flow-level configuration block.
type Config struct {
	// Name identifies the flow in reports.
	Name string `yaml:"name"`
	// MinVersion optionally gates the flow on a minimum schema version
	// ("v0.2.0" semver form).
	MinVersion string `yaml:"minVersion"`
}

// Flow is a parsed interaction script.
type Flow struct {
	Config Config `yaml:"config"`
	Steps  []Step `yaml:"steps"`

	// SourcePath is the file the flow was loaded from, if any.
	SourcePath string `yaml:"-"`
}

// Parse decodes a flow document and enforces its minVersion gate.
func Parse(data []byte) (*Flow, error) {
	var f Flow
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("flow: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, stderrors.New("flow: no steps")
	}
	if mv := f.Config.MinVersion; mv != "" {
		if !semver.IsValid(mv) {
			return nil, fmt.Errorf("flow: invalid minVersion %q", mv)
		}
		if semver.Compare(Version, mv) < 0 {
			return nil, fmt.Errorf("flow: requires schema %s or newer, running %s", mv, Version)
		}
	}
	return &f, nil
}

// Load reads and parses a flow file.
func Load(path string) (*Flow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flow: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	f.SourcePath = path
	return f, nil
}
