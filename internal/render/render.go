// Package render draws lattice curves as grids of text.
package render

import (
	"bufio"
	"fmt"
	"io"

	"honnef.co/go/dragon"
)

// Plot is what a renderer needs to know about a curve: how far the grid
// extends, and which cells are on. Renderers only read from a Plot.
//
// Both [dragon.Curve] and [dragon.PointSet] implement Plot. The latter
// answers Contains in constant time and should be preferred for large
// curves.
type Plot interface {
	BottomRight() dragon.Point
	Contains(pt dragon.Point) bool
}

var (
	_ Plot = dragon.Curve(nil)
	_ Plot = dragon.PointSet{}
)

// Options controls the glyphs used for cells.
type Options struct {
	On  rune
	Off rune
}

// DefaultOptions draws points as middle dots on a blank background.
var DefaultOptions = Options{On: '·', Off: ' '}

// Grid returns the dimensions of the text grid drawn for p. The grid always
// starts at the origin; points with negative coordinates are not drawn.
func Grid(p Plot) dragon.Size {
	br := p.BottomRight()
	return dragon.Sz(max(br.X+1, 0), max(br.Y+1, 0))
}

// Text writes p to w as rows of glyphs. Row y holds the cells (0, y) through
// (BottomRight().X, y) and is terminated by a newline.
func Text(w io.Writer, p Plot, opts Options) error {
	sz := Grid(p)
	if sz.IsEmpty() {
		return nil
	}
	bw := bufio.NewWriter(w)
	for y := range sz.Height {
		for x := range sz.Width {
			r := opts.Off
			if p.Contains(dragon.Pt(x, y)) {
				r = opts.On
			}
			if _, err := bw.WriteRune(r); err != nil {
				return fmt.Errorf("write row %d: %w", y, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("write row %d: %w", y, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush grid: %w", err)
	}
	return nil
}
