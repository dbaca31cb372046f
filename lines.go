package reveal

import (
	"math"
	"strings"
)

// Line is the ordered word texts that share one measured top.
type Line []string

// String joins the line's words with single spaces.
func (l Line) String() string {
	return strings.Join(l, " ")
}

// LineSet is an ordered partition of the whole text into lines. Accepted line
// sets are replaced, never mutated.
type LineSet []Line

// InferLines groups measured words into lines by their top offset. A word
// opens a new line when its top differs from the open line's top by more than
// tolerance; tolerance 0 means exact equality.
func InferLines(measured []MeasuredWord, tolerance float64) LineSet {
	var lines LineSet
	var line Line
	var currentTop float64
	open := false

	for _, w := range measured {
		if !open {
			currentTop = w.Top
			open = true
		}
		if !sameTop(w.Top, currentTop, tolerance) {
			lines = append(lines, line)
			line = nil
			currentTop = w.Top
		}
		line = append(line, strings.TrimSpace(w.Text))
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

func sameTop(a, b, tolerance float64) bool {
	if tolerance <= 0 {
		return a == b
	}
	return math.Abs(a-b) <= tolerance
}

// Equal reports structural equality: the same number of lines, each joining
// to the same text at the same position.
func (ls LineSet) Equal(other LineSet) bool {
	if len(ls) != len(other) {
		return false
	}
	for i := range ls {
		if ls[i] == nil || other[i] == nil {
			return false
		}
		if ls[i].String() != other[i].String() {
			return false
		}
	}
	return true
}

// Words flattens the set back into its word sequence.
func (ls LineSet) Words() []string {
	var words []string
	for _, l := range ls {
		words = append(words, l...)
	}
	return words
}

// NumWords returns the total number of words across all lines.
func (ls LineSet) NumWords() int {
	n := 0
	for _, l := range ls {
		n += len(l)
	}
	return n
}

// Strings returns each line joined with single spaces.
func (ls LineSet) Strings() []string {
	out := make([]string, len(ls))
	for i, l := range ls {
		out[i] = l.String()
	}
	return out
}
