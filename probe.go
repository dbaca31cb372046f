package reveal

// MeasuredWord is a word with the top offset the surface laid it out at.
type MeasuredWord struct {
	Word
	Top float64
}

// Probe lays words out on a measurement surface and reads their positions
// back. It refuses to measure until its gate is open, because measuring
// against fallback metrics yields the wrong line breaks.
type Probe struct {
	surface Surface
	gate    *Gate
}

// NewProbe creates a probe writing to surface, gated by gate. A nil gate
// never blocks.
func NewProbe(surface Surface, gate *Gate) *Probe {
	return &Probe{surface: surface, gate: gate}
}

// Surface returns the probe's measurement surface.
func (p *Probe) Surface() Surface {
	return p.surface
}

// Measure replaces the surface content with one unit per word (the word plus
// a single space) and returns the measured words in order.
func (p *Probe) Measure(words []Word) ([]MeasuredWord, error) {
	if p.gate != nil && !p.gate.Open() {
		return nil, ErrNotReady
	}
	if p.surface == nil {
		return nil, ErrNoSurface
	}

	units := make([]string, len(words))
	for i, w := range words {
		units[i] = w.Text + " "
	}
	p.surface.SetContent(units)

	tops := p.surface.UnitTops()
	measured := make([]MeasuredWord, 0, len(words))
	for i, w := range words {
		if i >= len(tops) {
			break
		}
		measured = append(measured, MeasuredWord{Word: w, Top: tops[i]})
	}
	return measured, nil
}
