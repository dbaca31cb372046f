package reveal

import (
	"strconv"
	"strings"
)

// Unit is one independently animated element of a partition: a whole line in
// line mode or a single word in word mode. Delay, Duration and Ease form the
// unit's own transition, used when it animates back out.
type Unit struct {
	Node  *Node // the transformed node
	Clip  *Node // the clip wrapper of the unit's line
	Line  int   // line index
	Index int   // position within the line (always 0 in line mode)
	Words []string
	Text  string // display text

	Delay    float64
	Duration float64
	Ease     Ease
}

// Partition is the rendered unit tree for one accepted LineSet.
type Partition struct {
	Target Target
	Lines  LineSet
	Root   *Node
	Units  []*Unit
}

// RenderPartition builds a fresh node tree for lines. Every line gets a clip
// wrapper so its units can slide in from below without showing outside it.
// All units start at opts.HiddenOffset.
func RenderPartition(lines LineSet, font Font, opts Options) *Partition {
	p := &Partition{
		Target: opts.TargetedElement,
		Lines:  lines,
		Root:   NewContainer("partition"),
	}
	lh := lineHeightOf(font)

	for i, line := range lines {
		idx := strconv.Itoa(i)
		text := line.String()
		w, _ := measure(font, text)

		clip := NewClip("line-wrapper-"+idx, w, lh)
		clip.ClassName = "line-wrapper"
		clip.SetPosition(0, float64(i)*lh)
		p.Root.AddChild(clip)

		if p.Target == TargetWord {
			p.renderWords(clip, i, line, font, lh, opts)
			continue
		}

		n := NewTextNode("line-"+idx, KindLine, text)
		n.ClassName = "line"
		n.Width, n.Height = w, lh
		n.SetOffset(opts.HiddenOffset)
		clip.AddChild(n)

		p.Units = append(p.Units, &Unit{
			Node:     n,
			Clip:     clip,
			Line:     i,
			Words:    line,
			Text:     text,
			Delay:    float64(i)*opts.LineCascade + opts.Delay,
			Duration: opts.UnitDuration,
			Ease:     opts.Ease,
		})
	}
	return p
}

func (p *Partition) renderWords(clip *Node, i int, line Line, font Font, lh float64, opts Options) {
	idx := strconv.Itoa(i)
	row := NewContainer("line-" + idx)
	row.Kind = KindLine
	row.ClassName = "line"
	row.Width, row.Height = clip.Width, lh
	clip.AddChild(row)

	pen := 0.0
	for j, word := range line {
		display := nbsp(word)
		if j < len(line)-1 {
			display = nbsp(word + " ")
		}
		w, _ := measure(font, display)

		n := NewTextNode("word-"+idx+"-"+strconv.Itoa(j), KindWord, display)
		n.ClassName = "word"
		n.SetPosition(pen, 0)
		n.Width, n.Height = w, lh
		n.SetOffset(opts.HiddenOffset)
		row.AddChild(n)
		pen += w

		p.Units = append(p.Units, &Unit{
			Node:     n,
			Clip:     clip,
			Line:     i,
			Index:    j,
			Words:    []string{word},
			Text:     display,
			Delay:    float64(j)*opts.StaggerDuration + opts.Delay,
			Duration: opts.UnitDuration,
			Ease:     opts.Ease,
		})
	}
}

// Empty reports whether the partition has no units.
func (p *Partition) Empty() bool {
	return p == nil || len(p.Units) == 0
}

// Words returns the word sequence carried by the units, in document order.
func (p *Partition) Words() []string {
	if p == nil {
		return nil
	}
	var words []string
	for _, u := range p.Units {
		words = append(words, u.Words...)
	}
	return words
}

// Nodes returns the transformed node of every unit, in document order.
func (p *Partition) Nodes() []*Node {
	if p == nil {
		return nil
	}
	nodes := make([]*Node, len(p.Units))
	for i, u := range p.Units {
		nodes[i] = u.Node
	}
	return nodes
}

// Dispose removes the partition's tree. Tweens over its units stop on their
// next update.
func (p *Partition) Dispose() {
	if p == nil || p.Root == nil {
		return
	}
	p.Root.Dispose()
}

// nbsp replaces every space with U+00A0 so a word's trailing space keeps its
// width inside an inline unit.
func nbsp(s string) string {
	return strings.ReplaceAll(s, " ", "\u00a0")
}

func measure(f Font, s string) (w, h float64) {
	if f == nil {
		return 0, 0
	}
	return f.MeasureString(s)
}

func lineHeightOf(f Font) float64 {
	if f == nil {
		return 0
	}
	return f.LineHeight()
}
