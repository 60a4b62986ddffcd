// Package cellbuf provides a 2D character buffer with per-cell styling
// and efficient lipgloss-based rendering, used as the drawing surface for
// the graph canvas.
//
// Each cell holds a rune and a StyleKey (an int enum); the caller supplies
// the StyleKey → lipgloss.Style mapping at render time, keeping the buffer
// decoupled from any color scheme.
//
// Limitation: runes are assumed single-width. Double-width characters are
// not handled.
package cellbuf

// StyleKey identifies a visual style. The render-time style map defines
// what it looks like.
type StyleKey int

// Cell is one character in the buffer with its style.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is a W×H grid of styled cells backed by a single flat slice.
type Buffer struct {
	W, H  int
	cells []Cell // row-major, len W*H
}

// New creates a buffer of the given size filled with spaces in the default
// style. Negative dimensions collapse to zero.
func New(w, h int, def StyleKey) *Buffer {
	b := &Buffer{}
	b.Resize(w, h, def)
	return b
}

// Resize sets the buffer dimensions and fills it with spaces in the given
// style. The backing slice is reused when it is already large enough, so
// per-frame reuse after a window resize does not allocate.
func (b *Buffer) Resize(w, h int, def StyleKey) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b.W, b.H = w, h
	if need := w * h; cap(b.cells) < need {
		b.cells = make([]Cell, need)
	} else {
		b.cells = b.cells[:need]
	}
	b.Fill(def)
}

// InBounds reports whether (x, y) is inside the buffer.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// At returns the cell at (x, y). Out-of-bounds reads return a space in
// style zero.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{Ch: ' '}
	}
	return b.cells[y*b.W+x]
}

// Set writes one character at (x, y). Out-of-bounds writes are silently
// ignored.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.cells[y*b.W+x] = Cell{Ch: ch, Style: style}
	}
}

// SetString writes a string starting at (x, y), advancing one column per
// rune. Characters falling outside the buffer are silently skipped.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// Fill resets every cell to a space with the given style.
func (b *Buffer) Fill(style StyleKey) {
	for i := range b.cells {
		b.cells[i] = Cell{Ch: ' ', Style: style}
	}
}
