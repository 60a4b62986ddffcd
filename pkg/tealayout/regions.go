// Package tealayout computes named screen regions and builds the common
// chrome layers (toolbar, footer, side panels, modal overlays) for
// Bubbletea v2 programs composited with Lipgloss v2 layers.
package tealayout

import "image"

// Region is a named rectangular area of the terminal, in cells.
type Region struct {
	Name string
	Rect image.Rectangle
}

// Layout holds the regions computed for one terminal size.
type Layout struct {
	TermW, TermH int
	Regions      map[string]Region
}

// Get returns the region with the given name, or a zero Region.
func (l Layout) Get(name string) Region {
	return l.Regions[name]
}

// Local translates a terminal-cell point into coordinates relative to
// the named region's origin. ok reports whether the point falls inside
// the region, which is how mouse events get routed to the surface under
// the pointer.
func (l Layout) Local(name string, x, y int) (lx, ly int, ok bool) {
	r := l.Regions[name]
	if !image.Pt(x, y).In(r.Rect) {
		return 0, 0, false
	}
	return x - r.Rect.Min.X, y - r.Rect.Min.Y, true
}

// side identifies the screen edge a fixed cut is taken from.
type side int

const (
	sideTop side = iota
	sideBottom
	sideLeft
	sideRight
)

// Builder accumulates fixed edge cuts and hands whatever is left to a
// final Remaining call. Horizontal cuts (top, bottom) span the full
// terminal width; vertical cuts (left, right) span only the rows between
// the horizontal cuts taken so far, so bars should be cut before rails
// and panels.
type Builder struct {
	termW, termH int
	used         [4]int // rows or columns consumed per side
	regions      []Region
}

// NewBuilder creates a layout builder for the given terminal size.
func NewBuilder(termW, termH int) *Builder {
	return &Builder{termW: termW, termH: termH}
}

func (b *Builder) cut(name string, s side, size int) *Builder {
	if size < 0 {
		size = 0
	}
	innerTop := b.used[sideTop]
	innerBottom := b.termH - b.used[sideBottom]
	var rect image.Rectangle
	switch s {
	case sideTop:
		y := b.used[sideTop]
		rect = rectangle(0, y, b.termW, y+size)
	case sideBottom:
		y := b.termH - b.used[sideBottom] - size
		rect = rectangle(0, y, b.termW, y+size)
	case sideLeft:
		x := b.used[sideLeft]
		rect = rectangle(x, innerTop, x+size, innerBottom)
	case sideRight:
		x := b.termW - b.used[sideRight] - size
		rect = rectangle(x, innerTop, x+size, innerBottom)
	}
	b.used[s] += size
	b.regions = append(b.regions, Region{Name: name, Rect: rect})
	return b
}

// rectangle builds the rectangle without the min/max swapping image.Rect
// performs, so an overrun cut stays degenerate instead of flipping into
// a phantom region. Build collapses degenerate rectangles to zero.
func rectangle(x0, y0, x1, y1 int) image.Rectangle {
	return image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)}
}

// TopFixed reserves rows from the top edge.
func (b *Builder) TopFixed(name string, height int) *Builder {
	return b.cut(name, sideTop, height)
}

// BottomFixed reserves rows from the bottom edge.
func (b *Builder) BottomFixed(name string, height int) *Builder {
	return b.cut(name, sideBottom, height)
}

// LeftFixed reserves columns from the left edge.
func (b *Builder) LeftFixed(name string, width int) *Builder {
	return b.cut(name, sideLeft, width)
}

// RightFixed reserves columns from the right edge.
func (b *Builder) RightFixed(name string, width int) *Builder {
	return b.cut(name, sideRight, width)
}

// Remaining assigns the rectangle left over after all fixed cuts.
func (b *Builder) Remaining(name string) *Builder {
	rect := rectangle(
		b.used[sideLeft],
		b.used[sideTop],
		b.termW-b.used[sideRight],
		b.termH-b.used[sideBottom],
	)
	b.regions = append(b.regions, Region{Name: name, Rect: rect})
	return b
}

// Build computes the final Layout. Regions whose cuts overran the
// terminal collapse to the zero rectangle, so callers can skip them by
// checking Dx or Dy.
func (b *Builder) Build() Layout {
	l := Layout{
		TermW:   b.termW,
		TermH:   b.termH,
		Regions: make(map[string]Region, len(b.regions)),
	}
	for _, r := range b.regions {
		if r.Rect.Max.X <= r.Rect.Min.X || r.Rect.Max.Y <= r.Rect.Min.Y {
			r.Rect = image.Rectangle{}
		}
		l.Regions[r.Name] = r
	}
	return l
}
