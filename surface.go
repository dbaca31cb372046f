package reveal

import "strings"

// Surface is an off-screen measurement region styled like the visible text.
// The probe is its only writer.
type Surface interface {
	// SetContent replaces the surface's content with one inline unit per entry.
	SetContent(units []string)
	// UnitTops returns each unit's top offset, in content order.
	UnitTops() []float64
	// Size returns the surface's current box size.
	Size() (width, height float64)
	// Font returns the font the surface lays text out with.
	Font() Font
	// Observe registers fn to be called whenever the box size changes.
	// The returned function detaches the observer.
	Observe(fn func(width, height float64)) (cancel func())
}

type surfaceObserver struct {
	id int
	fn func(width, height float64)
}

// FlowSurface is a headless inline-flow layout: units are placed left to
// right and wrap to a new line when the next unit's ink would pass the wrap
// width. Trailing spaces hang past the edge the way a browser lets them.
type FlowSurface struct {
	font       Font
	wrapWidth  float64 // 0 = never wrap
	lineHeight float64 // override; 0 = use Font.LineHeight()

	units []string
	boxes []Rect

	width, height float64

	observers []surfaceObserver
	nextID    int
}

// NewFlowSurface creates a surface laying text out with font inside wrapWidth.
func NewFlowSurface(font Font, wrapWidth float64) *FlowSurface {
	return &FlowSurface{font: font, wrapWidth: wrapWidth}
}

// SetContent replaces all units and reflows.
func (s *FlowSurface) SetContent(units []string) {
	s.units = append(s.units[:0], units...)
	s.reflow()
}

// SetWrapWidth changes the width constraint, e.g. after a viewport resize.
func (s *FlowSurface) SetWrapWidth(w float64) {
	if w == s.wrapWidth {
		return
	}
	s.wrapWidth = w
	s.reflow()
}

// WrapWidth returns the current width constraint.
func (s *FlowSurface) WrapWidth() float64 {
	return s.wrapWidth
}

// SetFont swaps the font, e.g. when a webfont replaces its fallback.
func (s *FlowSurface) SetFont(f Font) {
	s.font = f
	s.reflow()
}

// Font returns the surface's font.
func (s *FlowSurface) Font() Font {
	return s.font
}

// SetLineHeight overrides the font's line height; 0 restores it.
func (s *FlowSurface) SetLineHeight(lh float64) {
	s.lineHeight = lh
	s.reflow()
}

// UnitTops returns each unit's top offset.
func (s *FlowSurface) UnitTops() []float64 {
	tops := make([]float64, len(s.boxes))
	for i, b := range s.boxes {
		tops[i] = b.Y
	}
	return tops
}

// UnitBounds returns each unit's box, including trailing spaces.
func (s *FlowSurface) UnitBounds() []Rect {
	return append([]Rect(nil), s.boxes...)
}

// Size returns the box size: the wrap width (or widest line when unwrapped)
// by the number of lines times the line height.
func (s *FlowSurface) Size() (width, height float64) {
	return s.width, s.height
}

// Observe registers a resize observer.
func (s *FlowSurface) Observe(fn func(width, height float64)) (cancel func()) {
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, surfaceObserver{id: id, fn: fn})
	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *FlowSurface) effectiveLineHeight() float64 {
	if s.lineHeight > 0 {
		return s.lineHeight
	}
	if s.font != nil {
		return s.font.LineHeight()
	}
	return 0
}

// reflow recomputes unit boxes and notifies observers when the box size changed.
func (s *FlowSurface) reflow() {
	prevW, prevH := s.width, s.height

	s.boxes = s.boxes[:0]
	lh := s.effectiveLineHeight()

	var cursorX, lineY, maxInk float64
	for _, u := range s.units {
		var advance, ink float64
		if s.font != nil {
			advance, _ = s.font.MeasureString(u)
			ink, _ = s.font.MeasureString(strings.TrimRight(u, " "))
		}
		if s.wrapWidth > 0 && cursorX > 0 && cursorX+ink > s.wrapWidth {
			cursorX = 0
			lineY += lh
		}
		s.boxes = append(s.boxes, Rect{X: cursorX, Y: lineY, Width: advance, Height: lh})
		maxInk = max(maxInk, cursorX+ink)
		cursorX += advance
	}

	s.width = maxInk
	if s.wrapWidth > 0 {
		s.width = s.wrapWidth
	}
	s.height = 0
	if len(s.units) > 0 {
		s.height = lineY + lh
	}

	if s.width != prevW || s.height != prevH {
		s.notify()
	}
}

func (s *FlowSurface) notify() {
	// Observers may detach themselves while being notified.
	observers := append([]surfaceObserver(nil), s.observers...)
	for _, o := range observers {
		o.fn(s.width, s.height)
	}
}
