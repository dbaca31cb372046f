package reveal

import (
	"errors"
	"time"
)

// State is the pipeline stage of an AnimatedText.
type State uint8

const (
	StateTokenized   State = iota // words known, no accepted measurement yet
	StateMeasuring                // a probe pass is in progress
	StatePartitioned              // units rendered and hidden, waiting for visibility
	StateRevealing                // the reveal timeline has fired
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateTokenized:
		return "tokenized"
	case StateMeasuring:
		return "measuring"
	case StatePartitioned:
		return "partitioned"
	case StateRevealing:
		return "revealing"
	default:
		return "unknown"
	}
}

// fontProvider is implemented by ready signals that deliver a font, such as
// FontLoader.
type fontProvider interface {
	Font() Font
}

type fontSetter interface {
	SetFont(Font)
}

type wrapSetter interface {
	SetWrapWidth(float64)
}

// AnimatedText measures its text on a surface, splits it into visual lines,
// and slides the lines (or words) into view when it becomes visible.
//
// The tree under Root has three layers: the root itself carries the full text
// as its accessible Label, a hidden placeholder reserves the wrapped size, and
// the partition layer holds the animated units.
type AnimatedText struct {
	opts  Options
	words []Word

	root        *Node
	placeholder *Node
	layer       *Node

	surface   Surface
	signal    ReadySignal
	gate      *Gate
	probe     *Probe
	detector  ChangeDetector
	partition *Partition
	scheduler *Scheduler

	latch      visibilityLatch
	visibility VisibilityDetector
	visible    bool

	stopObserve func()
	resized     bool
	stale       bool

	state    State
	disposed bool
}

// NewAnimatedText creates an AnimatedText measuring on surface. Measurement
// waits until signal resolves; a nil signal counts as already resolved.
func NewAnimatedText(opts Options, surface Surface, signal ReadySignal) (*AnimatedText, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if surface == nil {
		return nil, ErrNoSurface
	}

	a := &AnimatedText{
		opts:      opts,
		surface:   surface,
		signal:    signal,
		gate:      NewGate(signal, opts.ReadyTimeout),
		scheduler: NewScheduler(opts),
		latch:     visibilityLatch{once: opts.Once},
	}
	a.probe = NewProbe(surface, a.gate)

	a.root = NewContainer("animated-text")
	a.root.ClassName = opts.ClassName
	a.root.ElementID = opts.ID
	a.root.SetAlpha(opts.Opacity)

	a.placeholder = NewTextNode("placeholder", KindText, "")
	a.placeholder.Presentational = true
	a.placeholder.Visible = false
	a.root.AddChild(a.placeholder)

	a.layer = NewContainer("lines")
	a.layer.Presentational = true
	a.root.AddChild(a.layer)

	a.setText(opts.Text)
	a.gate.Poll(0)
	if a.gate.Open() {
		a.applyReadyFont()
		a.measure()
	}
	return a, nil
}

// Root returns the root node; add it to a scene or position it.
func (a *AnimatedText) Root() *Node { return a.root }

// State returns the current pipeline stage.
func (a *AnimatedText) State() State { return a.state }

// Lines returns the accepted line set, or nil before the first measurement.
func (a *AnimatedText) Lines() LineSet { return a.detector.Current() }

// Partition returns the rendered partition, or nil before the first
// measurement.
func (a *AnimatedText) Partition() *Partition { return a.partition }

// Options returns the current options.
func (a *AnimatedText) Options() Options { return a.opts }

// AccessibleLabel returns the text exposed to assistive technology.
func (a *AnimatedText) AccessibleLabel() string { return a.root.Label }

// Ready reports whether measurement is allowed.
func (a *AnimatedText) Ready() bool { return a.gate.Open() }

// Fired returns how many times the reveal timeline has been started.
func (a *AnimatedText) Fired() int { return a.scheduler.Fired() }

// Animating reports whether a reveal or exit timeline is in flight.
func (a *AnimatedText) Animating() bool { return a.scheduler.Running() }

// Surface returns the measurement surface.
func (a *AnimatedText) Surface() Surface { return a.surface }

// SetText replaces the source text and schedules a new measurement.
func (a *AnimatedText) SetText(text string) {
	if a.disposed || text == a.opts.Text {
		return
	}
	a.opts.Text = text
	a.setText(text)
}

func (a *AnimatedText) setText(text string) {
	a.words = Tokenize(text)
	a.root.Label = text
	a.placeholder.Text = text
	a.restart()
}

// SetTarget switches between line and word units. The accepted line set is
// forgotten so the next measurement always renders the new granularity.
func (a *AnimatedText) SetTarget(t Target) {
	if a.disposed || t == a.opts.TargetedElement {
		return
	}
	a.opts.TargetedElement = t
	a.detector.Reset()
	a.restart()
}

// restart reinstalls the resize observer and marks the measurement stale.
func (a *AnimatedText) restart() {
	if a.stopObserve != nil {
		a.stopObserve()
	}
	a.stopObserve = a.surface.Observe(func(float64, float64) {
		a.resized = true
	})
	a.stale = true
	a.state = StateTokenized
}

// Replay hides the units and fires the reveal timeline again. It does nothing
// while the text is out of view.
func (a *AnimatedText) Replay() {
	if a.disposed || !a.latch.inView {
		return
	}
	a.reveal()
}

// SetVisible sets the visibility used when no VisibilityDetector is attached.
func (a *AnimatedText) SetVisible(v bool) {
	a.visible = v
}

// SetVisibilityDetector attaches a detector sampled every Update with the
// root's world bounds. nil falls back to SetVisible.
func (a *AnimatedText) SetVisibilityDetector(d VisibilityDetector) {
	a.visibility = d
}

// SetWrapWidth forwards a width constraint to surfaces that support one. The
// surface's resize notification triggers the re-measurement.
func (a *AnimatedText) SetWrapWidth(w float64) {
	if ws, ok := a.surface.(wrapSetter); ok {
		ws.SetWrapWidth(w)
	}
}

// Update runs one step of the pipeline: readiness, pending measurement,
// visibility sampling and the reveal timeline. dt is in seconds.
func (a *AnimatedText) Update(dt float64) {
	if a.disposed {
		return
	}

	if a.gate.Poll(dt) {
		a.applyReadyFont()
		a.stale = true
	}
	if a.resized {
		a.resized = false
		a.stale = true
	}
	if a.stale && a.gate.Open() {
		a.measure()
	}

	entered, exited := a.latch.sample(a.isVisible())
	switch {
	case entered:
		a.reveal()
	case exited && !a.opts.Once:
		if a.partition != nil {
			a.scheduler.Hide(a.partition.Units, a.opts.AnimateExit)
			a.state = StatePartitioned
		}
	}

	a.scheduler.Update(float32(dt))
}

func (a *AnimatedText) isVisible() bool {
	if a.visibility == nil {
		return a.visible
	}
	a.root.refreshWorld()
	return a.visibility.Intersecting(a.root.WorldBounds())
}

// applyReadyFont moves the surface onto the font delivered by the ready
// signal, if it delivers one.
func (a *AnimatedText) applyReadyFont() {
	fp, ok := a.signal.(fontProvider)
	if !ok {
		return
	}
	f := fp.Font()
	if f == nil {
		return
	}
	if fs, ok := a.surface.(fontSetter); ok {
		fs.SetFont(f)
	}
}

// measure runs one probe pass and installs a new partition when the inferred
// lines differ from the accepted ones.
func (a *AnimatedText) measure() {
	start := time.Now()
	prev := a.state
	a.state = StateMeasuring
	a.stale = false

	measured, err := a.probe.Measure(a.words)
	if err != nil {
		if !errors.Is(err, ErrNotReady) {
			logger.Error("measurement failed", "err", err)
		}
		a.state = prev
		return
	}
	// The probe's own write may resize the surface; that is not a layout change.
	a.resized = false

	lines := InferLines(measured, a.opts.LineTolerance)
	accepted := a.detector.Offer(lines)

	w, h := a.surface.Size()
	a.root.Width, a.root.Height = w, h
	a.placeholder.Width, a.placeholder.Height = w, h
	a.root.MarkDirty()

	debugLogProbe(a.opts.Text, probeStats{
		words:    len(measured),
		lines:    len(lines),
		accepted: accepted,
		elapsed:  time.Since(start),
	})

	if !accepted {
		a.state = prev
		if a.state == StateTokenized {
			a.state = StatePartitioned
		}
		return
	}
	a.install(lines)
}

// install replaces the partition tree wholesale. A new partition arriving
// while the text is in view is revealed immediately.
func (a *AnimatedText) install(lines LineSet) {
	a.scheduler.Stop()
	a.partition.Dispose()

	a.partition = RenderPartition(lines, a.surface.Font(), a.opts)
	a.layer.AddChild(a.partition.Root)
	a.state = StatePartitioned

	if a.latch.inView {
		a.reveal()
	}
}

// reveal plays the timeline from the hidden offset.
func (a *AnimatedText) reveal() {
	if a.partition.Empty() {
		return
	}
	a.scheduler.Reset(a.partition.Units)
	a.scheduler.Play(a.partition.Units)
	a.state = StateRevealing
}

// Dispose detaches the resize observer and disposes the tree. In-flight
// tweens are abandoned.
func (a *AnimatedText) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	if a.stopObserve != nil {
		a.stopObserve()
		a.stopObserve = nil
	}
	a.scheduler.Stop()
	a.partition = nil
	a.root.Dispose()
}

// IsDisposed reports whether Dispose has been called.
func (a *AnimatedText) IsDisposed() bool { return a.disposed }
