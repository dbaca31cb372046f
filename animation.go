package reveal

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SlideTween animates a node's OffsetY after an optional start delay. Call
// Update(dt) each frame; the tween writes the value and marks the node dirty.
// If the target node is disposed, the tween stops immediately.
type SlideTween struct {
	tween  *gween.Tween
	delay  float32
	waited float32
	target *Node
	Done   bool
}

// NewSlideTween creates a tween moving node.OffsetY from its current value to
// `to`, starting after delay seconds and lasting duration seconds.
func NewSlideTween(node *Node, to float64, delay, duration float32, fn ease.TweenFunc) *SlideTween {
	return &SlideTween{
		tween:  gween.New(float32(node.OffsetY), float32(to), duration, fn),
		delay:  delay,
		target: node,
	}
}

// Started reports whether the start delay has elapsed.
func (s *SlideTween) Started() bool {
	return s.waited >= s.delay
}

// Update advances the tween by dt seconds. Time left over after the delay
// elapses is applied to the tween in the same call.
func (s *SlideTween) Update(dt float32) {
	if s.Done {
		return
	}
	if s.target.IsDisposed() {
		s.Done = true
		return
	}

	if s.waited < s.delay {
		s.waited += dt
		if s.waited < s.delay {
			return
		}
		dt = s.waited - s.delay
	}

	val, finished := s.tween.Update(dt)
	s.target.OffsetY = float64(val)
	s.target.MarkDirty()
	s.Done = finished
}
