package flow

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFlow = `
config:
  name: login
  minVersion: v0.2.0
steps:
  - focus: email
  - typeText:
      control: email
      text: user@example.com
  - blur: email
  - focus: password
  - pasteText: {control: password, text: hunter2}
  - blur: password
  - clearText: email
  - assertText: {control: email, equals: ""}
  - present: {presenter: home, presented: settings}
  - waitVisible: {node: settings, timeoutMs: 500}
  - dismiss: home
`

func TestParse_Sample(t *testing.T) {
	f, err := Parse([]byte(sampleFlow))
	require.NoError(t, err)

	assert.Equal(t, "login", f.Config.Name)
	require.Len(t, f.Steps, 11)

	assert.Equal(t, Step{Type: StepFocus, Control: "email"}, f.Steps[0])
	assert.Equal(t, Step{Type: StepTypeText, Control: "email", Text: "user@example.com"}, f.Steps[1])
	assert.Equal(t, Step{Type: StepBlur, Control: "email"}, f.Steps[2])
	assert.Equal(t, Step{Type: StepPasteText, Control: "password", Text: "hunter2"}, f.Steps[4])
	assert.Equal(t, Step{Type: StepPresent, Presenter: "home", Presented: "settings"}, f.Steps[8])
	assert.Equal(t, Step{Type: StepWaitVisible, Node: "settings", TimeoutMs: 500}, f.Steps[9])
	assert.Equal(t, Step{Type: StepDismiss, Presenter: "home"}, f.Steps[10])
}

func TestParse_UnknownStep(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - swipeUp: email\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown step "swipeUp"`)
}

func TestParse_ShorthandRequiresMapping(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - typeText: email\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires a mapping body")
}

func TestParse_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"typeText without control", "steps:\n  - typeText: {text: hi}\n", `requires "control"`},
		{"present without presented", "steps:\n  - present: {presenter: home}\n", `requires "presented"`},
		{"waitVisible without node", "steps:\n  - waitVisible: {timeoutMs: 100}\n", `requires "node"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParse_NoSteps(t *testing.T) {
	_, err := Parse([]byte("config:\n  name: empty\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no steps")
}

func TestParse_MultiKeyStep(t *testing.T) {
	_, err := Parse([]byte("steps:\n  - focus: email\n    blur: email\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single-key mapping")
}

func TestParse_MinVersion(t *testing.T) {
	t.Run("satisfied", func(t *testing.T) {
		_, err := Parse([]byte("config:\n  minVersion: v0.1.0\nsteps:\n  - focus: email\n"))
		assert.NoError(t, err)
	})
	t.Run("too new", func(t *testing.T) {
		_, err := Parse([]byte("config:\n  minVersion: v9.0.0\nsteps:\n  - focus: email\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "requires schema v9.0.0")
	})
	t.Run("invalid", func(t *testing.T) {
		_, err := Parse([]byte("config:\n  minVersion: banana\nsteps:\n  - focus: email\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid minVersion "banana"`)
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "login.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleFlow), 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.SourcePath)
	assert.Len(t, f.Steps, 11)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestStep_Describe(t *testing.T) {
	tests := []struct {
		step Step
		want string
	}{
		{Step{Type: StepFocus, Control: "email"}, "focus email"},
		{Step{Type: StepPresent, Presented: "settings"}, "present settings"},
		{Step{Type: StepPresent, Presenter: "home", Presented: "settings"}, "present settings under home"},
		{Step{Type: StepDismiss, Presenter: "home"}, "dismiss home"},
		{Step{Type: StepWaitVisible, Node: "settings"}, "waitVisible settings"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.step.Describe())
	}
}
