package grid

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvlgrid/geom"
)

// String renders one line per row: the concatenated text of each cell, every
// row (including the last) terminated by '\n'. Cells print with fmt.Sprint;
// rune cells print as characters.
func (g *Grid[T]) String() string {
	return g.Highlight(nil)
}

// Highlight renders g like String, but any point present in marks is drawn
// with its mark instead of the cell text.
func (g *Grid[T]) Highlight(marks map[geom.Point]rune) string {
	var b strings.Builder
	for row := range g.Rows() {
		for p := range row {
			if m, ok := marks[p]; ok {
				b.WriteRune(m)
				continue
			}
			writeCell(&b, g.elements[p.X+g.width*p.Y])
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func writeCell(b *strings.Builder, cell any) {
	switch c := cell.(type) {
	case rune:
		b.WriteRune(c)
	case string:
		b.WriteString(c)
	default:
		fmt.Fprint(b, c)
	}
}
