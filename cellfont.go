package reveal

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// CellFont measures text in terminal cells: each rune advances by its display
// width and every line is one cell tall.
type CellFont struct{}

// MeasureString returns the widest line's cell count and the number of lines.
func (CellFont) MeasureString(s string) (width, height float64) {
	lines := strings.Split(s, "\n")
	for _, l := range lines {
		width = max(width, float64(runewidth.StringWidth(l)))
	}
	return width, float64(len(lines))
}

// LineHeight is always one cell.
func (CellFont) LineHeight() float64 {
	return 1
}
