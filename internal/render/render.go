// Package render draws a board's player view as text.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/vancomm/bombclearer/internal/board"
)

type Grid interface {
	Width() int
	Height() int
	View(x, y int) board.TileView
}

// String lays the grid out with x indices across the top and a y index at
// the start of every row. Every column is two characters wide.
func String(g Grid) string {
	var b strings.Builder
	b.WriteString("yx")
	for x := range g.Width() {
		fmt.Fprintf(&b, "%-2d", x)
	}
	b.WriteByte('\n')

	for y := range g.Height() {
		fmt.Fprintf(&b, "%-2d", y)
		for x := range g.Width() {
			b.WriteString(g.View(x, y).String() + " ")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func Write(w io.Writer, g Grid) error {
	_, err := io.WriteString(w, String(g)+"\n")
	return err
}
