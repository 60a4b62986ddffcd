package drawutil

import "github.com/tangleview/tangle/pkg/cellbuf"

// DrawGrid scatters dots ('·') over the buffer at regular world intervals,
// offset by the camera position, so the grid scrolls with panning. A cell
// gets a dot when its world coordinates are multiples of the spacing.
func DrawGrid(buf *cellbuf.Buffer, camX, camY, spacingX, spacingY int, style cellbuf.StyleKey) {
	for r := 0; r < buf.H; r++ {
		if mod(r+camY, spacingY) != 0 {
			continue
		}
		for c := 0; c < buf.W; c++ {
			if mod(c+camX, spacingX) == 0 {
				buf.Set(c, r, '·', style)
			}
		}
	}
}

// mod returns a non-negative modulus; Go's % is negative for negative
// operands.
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
