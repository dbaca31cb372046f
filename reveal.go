package reveal

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/tanema/gween/ease"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default text color.
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// Vec2 is a 2D vector used for positions and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Intersection returns the overlapping area of r and other. The result has
// zero size when they do not overlap.
func (r Rect) Intersection(other Rect) Rect {
	x0 := max(r.X, other.X)
	y0 := max(r.Y, other.Y)
	x1 := min(r.X+r.Width, other.X+other.Width)
	y1 := min(r.Y+r.Height, other.Y+other.Height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{X: x0, Y: y0}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Target selects the granularity of partition units.
type Target uint8

const (
	TargetLine Target = iota // one unit per visual line (default)
	TargetWord               // one unit per word, clipped per line
)

// String returns the configuration name of the target.
func (t Target) String() string {
	switch t {
	case TargetLine:
		return "line"
	case TargetWord:
		return "word"
	default:
		return fmt.Sprintf("Target(%d)", uint8(t))
	}
}

// ParseTarget converts "line" or "word" into a Target.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line", "":
		return TargetLine, nil
	case "word":
		return TargetWord, nil
	default:
		return TargetLine, fmt.Errorf("%w: %q", ErrUnknownTarget, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Target) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler so targets can be written
// as "line" or "word" in TOML and YAML option files.
func (t *Target) UnmarshalText(b []byte) error {
	v, err := ParseTarget(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// Ease is a cubic-bezier control tuple (x1, y1, x2, y2), the same four numbers
// CSS cubic-bezier() takes.
type Ease [4]float64

// Func returns the gween easing function for the curve.
func (e Ease) Func() ease.TweenFunc {
	return CubicBezier(e[0], e[1], e[2], e[3])
}

// Valid reports whether both control-point x coordinates lie in [0, 1].
func (e Ease) Valid() bool {
	return e[0] >= 0 && e[0] <= 1 && e[2] >= 0 && e[2] <= 1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
