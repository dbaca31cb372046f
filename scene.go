package reveal

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Scene owns the node tree, the viewport and the animated texts drawn in it.
type Scene struct {
	root     *Node
	viewport *Viewport
	texts    []*AnimatedText

	// ClearColor fills the screen before drawing. Zero alpha skips the fill.
	ClearColor Color

	// CaptureDir receives frames queued with Capture.
	CaptureDir string

	commands     []RenderCommand
	captureQueue []string
	updateFunc   func() error
	testRunner   *TestRunner
	debug        bool
}

// NewScene creates a scene with a root container and a viewport of the given
// size.
func NewScene(width, height float64) *Scene {
	return &Scene{
		root:     NewContainer("root"),
		viewport: NewViewport(width, height),
		commands: make([]RenderCommand, 0, defaultCommandCap),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Viewport returns the scene's viewport.
func (s *Scene) Viewport() *Viewport {
	return s.viewport
}

// Texts returns the animated texts in the scene. The returned slice MUST NOT
// be mutated.
func (s *Scene) Texts() []*AnimatedText {
	return s.texts
}

// Add attaches t's root to the scene root and lets the viewport decide its
// visibility.
func (s *Scene) Add(t *AnimatedText) {
	s.root.AddChild(t.Root())
	t.SetVisibilityDetector(s.viewport)
	s.texts = append(s.texts, t)
}

// Remove disposes t and drops it from the scene.
func (s *Scene) Remove(t *AnimatedText) {
	for i, c := range s.texts {
		if c == t {
			s.texts = append(s.texts[:i], s.texts[i+1:]...)
			break
		}
	}
	t.Dispose()
}

// SetUpdateFunc registers a callback run at the start of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetDebugMode enables disposed-node checks and per-frame timing logs.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	SetDebugMode(enabled)
}

// Resize changes the viewport size and re-wraps every text to the new width.
func (s *Scene) Resize(width, height float64) {
	if width == s.viewport.Width && height == s.viewport.Height {
		return
	}
	s.viewport.Resize(width, height)
	for _, t := range s.texts {
		t.SetWrapWidth(width - t.Root().X*2)
	}
}

// Update advances the test runner, the viewport and every animated text by
// one tick.
func (s *Scene) Update() error {
	return s.step(1.0 / float64(ebiten.TPS()))
}

func (s *Scene) step(dt float64) error {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}
	s.viewport.Update(float32(dt))
	updateWorld(s.root, 0, 0, 1, false)

	live := s.texts[:0]
	for _, t := range s.texts {
		if t.IsDisposed() {
			continue
		}
		t.Update(dt)
		live = append(live, t)
	}
	clear(s.texts[len(live):])
	s.texts = live
	return nil
}

// Draw renders every visible text node onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	var t0 time.Time
	var traverse time.Duration
	if s.debug {
		t0 = time.Now()
	}
	s.collect()
	if s.debug {
		traverse = time.Since(t0)
	}
	s.submit(screen)

	if s.debug {
		logger.Debug("frame",
			"traverse", traverse,
			"total", time.Since(t0),
			"commands", len(s.commands))
	}
	s.flushCaptures(screen)
}
