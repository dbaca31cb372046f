package reveal

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// VisibilityDetector reports whether a world-space box is inside the visible
// area.
type VisibilityDetector interface {
	Intersecting(bounds Rect) bool
}

// VisibilityFunc adapts a plain function to VisibilityDetector.
type VisibilityFunc func(bounds Rect) bool

// Intersecting implements VisibilityDetector.
func (f VisibilityFunc) Intersecting(bounds Rect) bool { return f(bounds) }

// scrollAnim holds active scroll-to tweens for viewport X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport is the visible window onto a scene: a scroll position (top-left, in
// world space) and a size.
type Viewport struct {
	X, Y          float64
	Width, Height float64

	// BoundsEnabled clamps the scroll position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	Bounds        Rect

	scrollTween *scrollAnim
}

// NewViewport creates a viewport of the given size scrolled to the origin.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{Width: width, Height: height}
}

// ScrollTo animates the viewport to the given scroll position over duration
// seconds.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// Resize changes the viewport size.
func (v *Viewport) Resize(width, height float64) {
	v.Width, v.Height = width, height
	if v.BoundsEnabled {
		v.clampToBounds()
	}
}

// SetBounds enables scroll clamping to bounds.
func (v *Viewport) SetBounds(bounds Rect) {
	v.BoundsEnabled = true
	v.Bounds = bounds
}

// ClearBounds disables scroll clamping.
func (v *Viewport) ClearBounds() {
	v.BoundsEnabled = false
}

// Update advances the scroll animation and bounds clamping.
func (v *Viewport) Update(dt float32) {
	if v.scrollTween != nil {
		if !v.scrollTween.doneX {
			val, done := v.scrollTween.tweenX.Update(dt)
			v.X = float64(val)
			v.scrollTween.doneX = done
		}
		if !v.scrollTween.doneY {
			val, done := v.scrollTween.tweenY.Update(dt)
			v.Y = float64(val)
			v.scrollTween.doneY = done
		}
		if v.scrollTween.doneX && v.scrollTween.doneY {
			v.scrollTween = nil
		}
	}
	if v.BoundsEnabled {
		v.clampToBounds()
	}
}

// clampToBounds restricts the scroll position so the visible area stays
// within Bounds. Bounds smaller than the viewport pin it to the bounds origin.
func (v *Viewport) clampToBounds() {
	maxX := v.Bounds.X + v.Bounds.Width - v.Width
	maxY := v.Bounds.Y + v.Bounds.Height - v.Height
	v.X = math.Max(v.Bounds.X, math.Min(v.X, maxX))
	v.Y = math.Max(v.Bounds.Y, math.Min(v.Y, maxY))
}

// WorldToScreen converts a world-space point to screen coordinates.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx - v.X, wy - v.Y
}

// ScreenToWorld converts a screen-space point to world coordinates.
func (v *Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return sx + v.X, sy + v.Y
}

// VisibleBounds returns the world-space rectangle visible through the viewport.
func (v *Viewport) VisibleBounds() Rect {
	return Rect{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// Intersecting implements VisibilityDetector. Boxes with no area never count
// as visible.
func (v *Viewport) Intersecting(bounds Rect) bool {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return false
	}
	in := v.VisibleBounds().Intersection(bounds)
	return in.Width > 0 && in.Height > 0
}

// visibilityLatch turns raw visibility samples into enter/exit edges. With
// once set, the first entry latches the state to visible for good.
type visibilityLatch struct {
	once    bool
	inView  bool
	latched bool
}

// sample records the current visibility and reports the edge it produced.
func (l *visibilityLatch) sample(visible bool) (entered, exited bool) {
	if l.latched {
		return false, false
	}
	switch {
	case visible && !l.inView:
		l.inView = true
		l.latched = l.once
		return true, false
	case !visible && l.inView:
		l.inView = false
		return false, true
	}
	return false, false
}

func (l *visibilityLatch) reset() {
	l.inView = false
	l.latched = false
}
