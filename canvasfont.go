package reveal

import (
	"fmt"

	"github.com/tdewolff/canvas"
)

// CanvasFont measures text with a tdewolff/canvas font face. It needs no GPU
// or window, so it is the backend of choice for headless probing. Sizes are in
// points and measurements in millimetres, canvas's native units.
type CanvasFont struct {
	face *canvas.FontFace
	lh   float64
}

// LoadCanvasFont parses TTF/OTF data into a canvas face of the given point size.
func LoadCanvasFont(data []byte, sizePt float64) (*CanvasFont, error) {
	family := canvas.NewFontFamily("reveal")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("reveal: failed to load canvas font: %w", err)
	}
	face := family.Face(sizePt, canvas.Black, canvas.FontRegular, canvas.FontNormal)
	return &CanvasFont{face: face, lh: face.Metrics().LineHeight}, nil
}

// MeasureString returns the advance width and the height of s.
func (f *CanvasFont) MeasureString(s string) (width, height float64) {
	lines := 1
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			width = max(width, f.face.TextWidth(s[start:i]))
			start = i + 1
			lines++
		}
	}
	width = max(width, f.face.TextWidth(s[start:]))
	return width, float64(lines) * f.lh
}

// LineHeight returns the face's line height.
func (f *CanvasFont) LineHeight() float64 {
	return f.lh
}
