package reveal

import (
	"math"

	"github.com/tanema/gween/ease"
)

// DefaultEase is the reveal curve: a steep ease-in-out.
var DefaultEase = Ease{0.76, 0, 0.24, 1}

// CubicBezier returns a gween easing function matching CSS cubic-bezier().
// The curve starts at (0,0), ends at (1,1) and is shaped by the control
// points (x1,y1) and (x2,y2).
func CubicBezier(x1, y1, x2, y2 float64) ease.TweenFunc {
	curve := bezierCurve(x1, y1, x2, y2)
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(curve(float64(t/d)))
	}
}

// bezierCurve maps linear progress in [0,1] to eased progress by solving the
// curve's x(u) = t for u and returning y(u).
func bezierCurve(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson converges quickly for most values.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clamp01(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection keeps the solution inside [0,1] when Newton stalls.
		lo, hi := 0.0, 1.0
		u = clamp01(u)
		for range 20 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}
