package reveal

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	Index    int     `json:"index,omitempty"`
	Text     string  `json:"text,omitempty"`
	Target   string  `json:"target,omitempty"`
	Width    float64 `json:"width,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Duration float32 `json:"duration,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// Snapshot is the observable state of one AnimatedText at a snapshot step.
type Snapshot struct {
	Label   string
	Frame   int
	State   State
	Lines   []string
	Offsets []float64
	Fired   int
}

// TestRunner sequences readiness, resize, visibility and text changes across
// frames and records snapshots for automated scenario testing. Attach to a
// Scene via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	frame     int
	done      bool

	signal    *Signal
	snapshots []Snapshot
	err       error
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called at the start of Scene.Update each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// SetSignal gives the runner the signal its "ready" and "reject" steps settle.
func (r *TestRunner) SetSignal(sig *Signal) {
	r.signal = sig
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Snapshots returns the snapshots recorded so far.
func (r *TestRunner) Snapshots() []Snapshot {
	return r.snapshots
}

// Snapshot returns the first snapshot with the given label.
func (r *TestRunner) Snapshot(label string) (Snapshot, bool) {
	for _, s := range r.snapshots {
		if s.Label == label {
			return s, true
		}
	}
	return Snapshot{}, false
}

// Err returns the first error a step produced, such as a bad target name or
// an out-of-range text index.
func (r *TestRunner) Err() error {
	return r.err
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	r.frame++
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	if err := r.apply(s, st); err != nil && r.err == nil {
		r.err = fmt.Errorf("step %d (%s): %w", r.cursor, st.Action, err)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *TestRunner) apply(s *Scene, st testStep) error {
	switch st.Action {
	case "ready":
		if r.signal == nil {
			return errors.New("no signal attached")
		}
		r.signal.Resolve()
	case "reject":
		if r.signal == nil {
			return errors.New("no signal attached")
		}
		r.signal.Reject(errors.New(st.Text))
	case "capture":
		s.Capture(st.Label)
	case "scroll":
		s.viewport.ScrollTo(st.X, st.Y, st.Duration, DefaultEase.Func())
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	default:
		t, err := r.text(s, st.Index)
		if err != nil {
			return err
		}
		return r.applyText(t, st)
	}
	return nil
}

func (r *TestRunner) applyText(t *AnimatedText, st testStep) error {
	switch st.Action {
	case "visible", "hidden":
		t.SetVisibilityDetector(nil)
		t.SetVisible(st.Action == "visible")
	case "resize":
		t.SetWrapWidth(st.Width)
	case "text":
		t.SetText(st.Text)
	case "target":
		target, err := ParseTarget(st.Target)
		if err != nil {
			return err
		}
		t.SetTarget(target)
	case "snapshot":
		r.snapshots = append(r.snapshots, takeSnapshot(t, st.Label, r.frame))
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func (r *TestRunner) text(s *Scene, index int) (*AnimatedText, error) {
	if index < 0 || index >= len(s.texts) {
		return nil, fmt.Errorf("text index %d out of range [0, %d)", index, len(s.texts))
	}
	return s.texts[index], nil
}

func takeSnapshot(t *AnimatedText, label string, frame int) Snapshot {
	snap := Snapshot{
		Label: label,
		Frame: frame,
		State: t.State(),
		Lines: t.Lines().Strings(),
		Fired: t.Fired(),
	}
	for _, n := range t.Partition().Nodes() {
		snap.Offsets = append(snap.Offsets, n.OffsetY)
	}
	return snap
}
