package reveal

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestViewportIntersecting(t *testing.T) {
	v := NewViewport(100, 50)
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"inside", Rect{X: 10, Y: 10, Width: 20, Height: 10}, true},
		{"partly below", Rect{X: 0, Y: 45, Width: 20, Height: 10}, true},
		{"touching bottom edge", Rect{X: 0, Y: 50, Width: 20, Height: 10}, false},
		{"below", Rect{X: 0, Y: 80, Width: 20, Height: 10}, false},
		{"zero size", Rect{X: 10, Y: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Intersecting(tt.r); got != tt.want {
				t.Errorf("Intersecting(%+v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestViewportScrollTo(t *testing.T) {
	v := NewViewport(100, 50)
	v.ScrollTo(0, 200, 1.0, ease.Linear)
	if !v.Scrolling() {
		t.Fatal("expected scroll in progress")
	}

	v.Update(0.5)
	if math.Abs(v.Y-100) > 0.5 {
		t.Errorf("Y midway = %v, want ~100", v.Y)
	}
	v.Update(0.5)
	if math.Abs(v.Y-200) > 0.5 || v.Scrolling() {
		t.Errorf("Y = %v scrolling=%v, want 200 and done", v.Y, v.Scrolling())
	}

	b := v.VisibleBounds()
	if math.Abs(b.Y-200) > 0.5 || b.Height != 50 {
		t.Errorf("VisibleBounds = %+v", b)
	}
}

func TestViewportBounds(t *testing.T) {
	v := NewViewport(100, 50)
	v.SetBounds(Rect{Width: 100, Height: 300})

	v.Y = 400
	v.Update(0)
	if v.Y != 250 {
		t.Errorf("Y = %v, want clamped 250", v.Y)
	}
	v.Y = -10
	v.Update(0)
	if v.Y != 0 {
		t.Errorf("Y = %v, want clamped 0", v.Y)
	}

	v.ClearBounds()
	v.Y = 400
	v.Update(0)
	if v.Y != 400 {
		t.Errorf("Y = %v, want unclamped 400", v.Y)
	}
}

func TestViewportScreenWorldRoundTrip(t *testing.T) {
	v := NewViewport(100, 50)
	v.X, v.Y = 30, 70
	sx, sy := v.WorldToScreen(40, 100)
	if sx != 10 || sy != 30 {
		t.Errorf("WorldToScreen = (%v, %v)", sx, sy)
	}
	wx, wy := v.ScreenToWorld(sx, sy)
	if wx != 40 || wy != 100 {
		t.Errorf("ScreenToWorld = (%v, %v)", wx, wy)
	}
}

func TestVisibilityFunc(t *testing.T) {
	var d VisibilityDetector = VisibilityFunc(func(r Rect) bool { return r.Width > 5 })
	if d.Intersecting(Rect{Width: 1}) || !d.Intersecting(Rect{Width: 10}) {
		t.Error("VisibilityFunc should delegate to the function")
	}
}

func TestVisibilityLatch(t *testing.T) {
	type edge struct{ entered, exited bool }
	tests := []struct {
		name    string
		once    bool
		samples []bool
		want    []edge
	}{
		{
			"repeating", false,
			[]bool{false, true, true, false, true},
			[]edge{{}, {entered: true}, {}, {exited: true}, {entered: true}},
		},
		{
			"once latches", true,
			[]bool{true, false, true},
			[]edge{{entered: true}, {}, {}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := visibilityLatch{once: tt.once}
			for i, v := range tt.samples {
				e, x := l.sample(v)
				if (edge{e, x}) != tt.want[i] {
					t.Errorf("sample %d (%v) = %v/%v, want %+v", i, v, e, x, tt.want[i])
				}
			}
		})
	}

	l := visibilityLatch{once: true}
	l.sample(true)
	if !l.inView {
		t.Error("latched state should stay in view")
	}
	l.reset()
	if e, _ := l.sample(true); !e {
		t.Error("reset should allow a new entry")
	}
}
