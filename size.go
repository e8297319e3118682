package dragon

import (
	"fmt"
)

// Size is the extent of a grid of lattice cells.
type Size struct {
	Width  int
	Height int
}

// Sz returns the size w×h.
func Sz(w, h int) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%d×%d", sz.Width, sz.Height)
}

// Area returns the number of cells.
func (sz Size) Area() int {
	return sz.Width * sz.Height
}

// IsEmpty reports whether sz covers no cells.
func (sz Size) IsEmpty() bool {
	return sz.Width <= 0 || sz.Height <= 0
}
