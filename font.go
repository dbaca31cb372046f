package reveal

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the interface for text measurement. Every measurement surface and
// the partition renderer use it, so a font shared between them guarantees the
// probe wraps text the way the visible units are laid out.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- BitmapFont ---

// BitmapFont measures text from BMFont (.fnt) metrics. Only advances and
// kerning pairs are read; atlas pages are never loaded.
type BitmapFont struct {
	lineHeight float64
	advances   map[rune]float64
	kernings   map[[2]rune]float64
}

// MeasureString returns the widest line's advance and the total height.
// Unknown runes are skipped and break kerning; U+00A0 advances like a space.
func (f *BitmapFont) MeasureString(s string) (width, height float64) {
	lines := 1
	var pen float64
	prev := rune(-1)
	for _, r := range s {
		if r == '\n' {
			width = max(width, pen)
			pen, prev = 0, -1
			lines++
			continue
		}
		adv, ok := f.advance(r)
		if !ok {
			prev = -1
			continue
		}
		if prev >= 0 {
			pen += f.kernings[[2]rune{prev, r}]
		}
		pen += adv
		prev = r
	}
	return max(width, pen), float64(lines) * f.lineHeight
}

// LineHeight returns the vertical distance between baselines.
func (f *BitmapFont) LineHeight() float64 {
	return f.lineHeight
}

func (f *BitmapFont) advance(r rune) (float64, bool) {
	if adv, ok := f.advances[r]; ok {
		return adv, true
	}
	if r == '\u00a0' {
		adv, ok := f.advances[' ']
		return adv, ok
	}
	return 0, false
}

// LoadBitmapFont parses BMFont text-format (.fnt) data.
func LoadBitmapFont(fntData []byte) (*BitmapFont, error) {
	f := &BitmapFont{
		advances: make(map[rune]float64),
		kernings: make(map[[2]rune]float64),
	}

	sc := bufio.NewScanner(bytes.NewReader(fntData))
	for sc.Scan() {
		tag, rest, _ := strings.Cut(strings.TrimSpace(sc.Text()), " ")
		attrs := parseFntAttrs(rest)
		switch tag {
		case "common":
			f.lineHeight = attrs.float("lineHeight")
		case "char":
			f.advances[rune(attrs.float("id"))] = attrs.float("xadvance")
		case "kerning":
			pair := [2]rune{rune(attrs.float("first")), rune(attrs.float("second"))}
			f.kernings[pair] = attrs.float("amount")
		}
	}

	switch {
	case sc.Err() != nil:
		return nil, fmt.Errorf("reveal: read .fnt data: %w", sc.Err())
	case f.lineHeight <= 0:
		return nil, fmt.Errorf("reveal: .fnt data missing common lineHeight")
	case len(f.advances) == 0:
		return nil, fmt.Errorf("reveal: .fnt data has no char definitions")
	}
	return f, nil
}

// fntAttrs holds the key=value pairs of one .fnt line, quotes stripped.
type fntAttrs map[string]string

func parseFntAttrs(s string) fntAttrs {
	attrs := fntAttrs{}
	for _, part := range strings.Fields(s) {
		if key, val, ok := strings.Cut(part, "="); ok {
			attrs[key] = strings.Trim(val, `"`)
		}
	}
	return attrs
}

func (a fntAttrs) float(key string) float64 {
	v, _ := strconv.ParseFloat(a[key], 64)
	return v
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font measurement and drawing.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("reveal: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Size returns the font size the face was created with.
func (f *TTFFont) Size() float64 {
	return f.size
}

// Face returns the underlying GoTextFace for direct Ebitengine text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}
