package drawutil

import (
	"image"
	"math"

	"github.com/tangleview/tangle/pkg/cellbuf"
)

// FillDisc fills the ellipse centered at (cx,cy) with cell radii (rx,ry)
// using ch. Node markers are ellipses rather than circles because a cell
// is roughly twice as tall as it is wide. A zero radius still marks the
// center row or column.
func FillDisc(buf *cellbuf.Buffer, cx, cy, rx, ry int, ch rune, style cellbuf.StyleKey) {
	if rx < 0 || ry < 0 {
		return
	}
	frx := max(float64(rx), 0.5)
	fry := max(float64(ry), 0.5)
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / frx
			dy := float64(y-cy) / fry
			if dx*dx+dy*dy <= 1+1e-9 {
				buf.Set(x, y, ch, style)
			}
		}
	}
}

// DrawRing marks the rim of the ellipse centered at (cx,cy) with cell
// radii (rx,ry), stepping the angle finely enough that no rim cell is
// skipped. Used for glows and selection halos.
func DrawRing(buf *cellbuf.Buffer, cx, cy, rx, ry int, ch rune, style cellbuf.StyleKey) {
	if rx <= 0 && ry <= 0 {
		buf.Set(cx, cy, ch, style)
		return
	}
	steps := 4 * (rx + ry + 2)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(float64(rx)*math.Cos(a)))
		y := cy + int(math.Round(float64(ry)*math.Sin(a)))
		buf.Set(x, y, ch, style)
	}
}

// RimExit returns the point on the rim of the ellipse centered at (cx,cy)
// with radii (rx,ry) facing the target, so edge strokes and arrowheads
// meet the marker's boundary instead of its center. Degenerate input
// (zero direction or no radius) returns the center.
func RimExit(cx, cy, rx, ry int, target image.Point) image.Point {
	dx := float64(target.X - cx)
	dy := float64(target.Y - cy)
	if (dx == 0 && dy == 0) || (rx <= 0 && ry <= 0) {
		return image.Pt(cx, cy)
	}
	nx := dx / max(float64(rx), 0.5)
	ny := dy / max(float64(ry), 0.5)
	t := 1 / math.Hypot(nx, ny)
	return image.Pt(cx+int(math.Round(dx*t)), cy+int(math.Round(dy*t)))
}

// Ellipsize truncates s to at most budget runes, replacing the tail with
// a single ellipsis rune when it does not fit. A budget below 1 yields an
// empty string.
func Ellipsize(s string, budget int) string {
	if budget < 1 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= budget {
		return s
	}
	return string(runes[:budget-1]) + "…"
}
