package reveal

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// DefaultCaptureDir is where Scene.Capture writes frames unless CaptureDir is
// set.
const DefaultCaptureDir = "captures"

// Capture queues a labeled capture of the next drawn frame. The PNG is written
// to CaptureDir as <timestamp>_<label>.png at the end of Draw. Safe to call
// from Update or Draw.
func (s *Scene) Capture(label string) {
	s.captureQueue = append(s.captureQueue, label)
}

// flushCaptures writes the drawn frame once per queued label.
func (s *Scene) flushCaptures(screen *ebiten.Image) {
	if len(s.captureQueue) == 0 {
		return
	}
	defer func() { s.captureQueue = s.captureQueue[:0] }()

	dir := s.CaptureDir
	if dir == "" {
		dir = DefaultCaptureDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Error("capture failed", "dir", dir, "err", err)
		return
	}

	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	img := unpremultiply(pixels, b.Dx(), b.Dy())

	stamp := time.Now().Format("20060102_150405")
	for _, label := range s.captureQueue {
		path := filepath.Join(dir, stamp+"_"+captureName(label)+".png")
		if err := writePNG(path, img); err != nil {
			logger.Error("capture failed", "err", err)
			continue
		}
		logger.Info("captured frame", "path", path)
	}
}

// unpremultiply converts ebiten's premultiplied RGBA pixels to straight-alpha
// NRGBA.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("reveal: create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("reveal: encode %s: %w", path, err)
	}
	return f.Close()
}

// captureName keeps letters, digits, '-' and '.' and replaces everything else
// with '_'. Blank labels become "frame".
func captureName(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}
