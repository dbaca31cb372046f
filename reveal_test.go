package reveal

import (
	"errors"
	"math"
	"testing"
)

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"inside", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"shared edge", Rect{X: 10, Y: 0, Width: 5, Height: 5}, true},
		{"disjoint", Rect{X: 11, Y: 0, Width: 5, Height: 5}, false},
		{"below", Rect{X: 0, Y: 20, Width: 10, Height: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	got := a.Intersection(Rect{X: 5, Y: 2, Width: 10, Height: 4})
	if got != (Rect{X: 5, Y: 2, Width: 5, Height: 4}) {
		t.Errorf("Intersection = %+v", got)
	}
	empty := a.Intersection(Rect{X: 20, Y: 20, Width: 1, Height: 1})
	if empty.Width != 0 || empty.Height != 0 {
		t.Errorf("disjoint Intersection = %+v, want zero size", empty)
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 1, Y: 1, Width: 2, Height: 2}
	if !r.Contains(1, 1) || !r.Contains(3, 3) {
		t.Error("edges should be inside")
	}
	if r.Contains(0, 2) {
		t.Error("(0,2) should be outside")
	}
}

func TestParseTarget(t *testing.T) {
	tests := []struct {
		in      string
		want    Target
		wantErr bool
	}{
		{"line", TargetLine, false},
		{"", TargetLine, false},
		{"Word", TargetWord, false},
		{" word ", TargetWord, false},
		{"char", TargetLine, true},
	}
	for _, tt := range tests {
		got, err := ParseTarget(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseTarget(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, ErrUnknownTarget) {
			t.Errorf("ParseTarget(%q) err = %v, want ErrUnknownTarget", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTarget(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTargetTextRoundTrip(t *testing.T) {
	for _, tg := range []Target{TargetLine, TargetWord} {
		b, err := tg.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Target
		if err := back.UnmarshalText(b); err != nil {
			t.Fatal(err)
		}
		if back != tg {
			t.Errorf("round trip %v -> %s -> %v", tg, b, back)
		}
	}
	if Target(7).String() != "Target(7)" {
		t.Errorf("unknown target String = %q", Target(7).String())
	}
}

func TestEaseValid(t *testing.T) {
	if !DefaultEase.Valid() {
		t.Error("DefaultEase should be valid")
	}
	if (Ease{1.5, 0, 0.5, 1}).Valid() {
		t.Error("x1 > 1 should be invalid")
	}
	// y coordinates may overshoot.
	if !(Ease{0.3, -0.5, 0.7, 1.5}).Valid() {
		t.Error("overshooting y should be valid")
	}
}

func TestColorToRGBA(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: -1, A: 2}.toRGBA()
	if c.R != 255 || c.G != 127 || c.B != 0 || c.A != 255 {
		t.Errorf("toRGBA = %+v", c)
	}
	if math.Abs(clamp01(0.25)-0.25) > epsilon {
		t.Error("clamp01 changed an in-range value")
	}
}
