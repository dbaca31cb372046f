package reveal

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// RenderCommand is a single text draw emitted during scene traversal.
type RenderCommand struct {
	Kind  NodeKind
	Text  string
	X, Y  float64 // screen-space top-left
	Color Color
	Alpha float64
	Clip  Rect // screen-space clip rectangle
	Font  Font

	treeOrder int
}

// faceFont is implemented by fonts ebiten can draw directly.
type faceFont interface {
	Face() *text.GoTextFace
}

// collect walks every animated text and emits draw commands for visible
// text-bearing nodes. Commands fully outside the viewport or their clip are
// culled.
func (s *Scene) collect() {
	s.commands = s.commands[:0]
	updateWorld(s.root, 0, 0, 1, false)

	screen := Rect{Width: s.viewport.Width, Height: s.viewport.Height}
	order := 0
	for _, at := range s.texts {
		if at.IsDisposed() {
			continue
		}
		s.traverse(at.Root(), at.Surface().Font(), screen, &order)
	}
}

// traverse emits commands for n's subtree. clip is the screen-space region the
// subtree may draw into.
func (s *Scene) traverse(n *Node, font Font, clip Rect, order *int) {
	if !n.Visible {
		return
	}

	sx, sy := s.viewport.WorldToScreen(n.worldX, n.worldY)
	if n.Kind == KindClip {
		clip = clip.Intersection(Rect{X: sx, Y: sy, Width: n.Width, Height: n.Height})
		if clip.Width <= 0 || clip.Height <= 0 {
			return
		}
	}

	if n.Text != "" && (n.Kind == KindLine || n.Kind == KindWord || n.Kind == KindText) {
		in := clip.Intersection(Rect{X: sx, Y: sy, Width: n.Width, Height: n.Height})
		if in.Width > 0 && in.Height > 0 && n.worldAlpha > 0 {
			*order++
			s.commands = append(s.commands, RenderCommand{
				Kind:      n.Kind,
				Text:      n.Text,
				X:         sx,
				Y:         sy,
				Color:     n.Color,
				Alpha:     n.worldAlpha * n.Color.A,
				Clip:      clip,
				Font:      font,
				treeOrder: *order,
			})
		}
	}

	for _, c := range n.children {
		s.traverse(c, font, clip, order)
	}
}

// submit draws the collected commands onto target.
func (s *Scene) submit(target *ebiten.Image) {
	for i := range s.commands {
		cmd := &s.commands[i]
		dst := target.SubImage(image.Rect(
			int(cmd.Clip.X), int(cmd.Clip.Y),
			int(cmd.Clip.X+cmd.Clip.Width), int(cmd.Clip.Y+cmd.Clip.Height),
		)).(*ebiten.Image)

		ff, ok := cmd.Font.(faceFont)
		if !ok {
			// No drawable face: fall back to the debug font.
			ebitenutil.DebugPrintAt(dst, cmd.Text, int(cmd.X), int(cmd.Y))
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(cmd.X, cmd.Y)
		op.LineSpacing = cmd.Font.LineHeight()
		c := cmd.Color
		c.A = 1
		op.ColorScale.ScaleWithColor(c.toRGBA())
		op.ColorScale.ScaleAlpha(float32(cmd.Alpha))
		text.Draw(dst, cmd.Text, ff.Face(), op)
	}
}
