package drawutil

import (
	"image"
	"testing"

	"github.com/tangleview/tangle/pkg/cellbuf"
)

// ── Bresenham ──

func TestBresenhamHorizontal(t *testing.T) {
	pts := Bresenham(0, 0, 5, 0)
	if len(pts) != 6 {
		t.Fatalf("expected 6 points, got %d: %v", len(pts), pts)
	}
	for i, p := range pts {
		if p.X != i || p.Y != 0 {
			t.Errorf("point %d: expected (%d,0), got %v", i, i, p)
		}
	}
}

func TestBresenhamVertical(t *testing.T) {
	pts := Bresenham(0, 0, 0, 5)
	if len(pts) != 6 {
		t.Fatalf("expected 6 points, got %d: %v", len(pts), pts)
	}
	for i, p := range pts {
		if p.X != 0 || p.Y != i {
			t.Errorf("point %d: expected (0,%d), got %v", i, i, p)
		}
	}
}

func TestBresenhamDiagonal(t *testing.T) {
	pts := Bresenham(0, 0, 5, 5)
	if len(pts) != 6 {
		t.Fatalf("expected 6 points, got %d: %v", len(pts), pts)
	}
	for i, p := range pts {
		if p.X != i || p.Y != i {
			t.Errorf("point %d: expected (%d,%d), got %v", i, i, i, p)
		}
	}
}

func TestBresenhamSteep(t *testing.T) {
	pts := Bresenham(0, 0, 2, 8)
	if len(pts) < 9 {
		t.Fatalf("steep line should have at least 9 points, got %d", len(pts))
	}
	if pts[0] != image.Pt(0, 0) {
		t.Errorf("first point: expected (0,0), got %v", pts[0])
	}
	if pts[len(pts)-1] != image.Pt(2, 8) {
		t.Errorf("last point: expected (2,8), got %v", pts[len(pts)-1])
	}
}

func TestBresenhamReverse(t *testing.T) {
	pts := Bresenham(5, 3, 0, 0)
	if pts[0] != image.Pt(5, 3) {
		t.Errorf("first point: expected (5,3), got %v", pts[0])
	}
	if pts[len(pts)-1] != image.Pt(0, 0) {
		t.Errorf("last point: expected (0,0), got %v", pts[len(pts)-1])
	}
}

func TestBresenhamZeroLength(t *testing.T) {
	pts := Bresenham(3, 3, 3, 3)
	if len(pts) != 1 || pts[0] != image.Pt(3, 3) {
		t.Fatalf("zero-length line: expected [(3,3)], got %v", pts)
	}
}

// ── Character lookup ──

func TestLineChar(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{0, 1, '│'},
		{0, -1, '│'},
		{1, 0, '─'},
		{-1, 0, '─'},
		{1, 1, '\\'},
		{-1, -1, '\\'},
		{-1, 1, '/'},
		{1, -1, '/'},
	}
	for _, tc := range tests {
		if got := LineChar(tc.dx, tc.dy); got != tc.want {
			t.Errorf("LineChar(%d,%d) = %c, want %c", tc.dx, tc.dy, got, tc.want)
		}
	}
}

func TestArrowChar(t *testing.T) {
	tests := []struct {
		dx, dy int
		want   rune
	}{
		{0, 1, '▼'},
		{0, -1, '▲'},
		{1, 0, '►'},
		{-1, 0, '◄'},
		{1, 5, '▼'},  // steep, vertical arrow
		{5, 1, '►'},  // shallow, horizontal arrow
		{-3, 1, '◄'}, // dx dominant
	}
	for _, tc := range tests {
		if got := ArrowChar(tc.dx, tc.dy); got != tc.want {
			t.Errorf("ArrowChar(%d,%d) = %c, want %c", tc.dx, tc.dy, got, tc.want)
		}
	}
}

// ── Draw functions ──

func TestDrawLine(t *testing.T) {
	buf := cellbuf.New(10, 10, 0)
	DrawLine(buf, 0, 0, 9, 0, 1)
	for x := 0; x < 10; x++ {
		c := buf.At(x, 0)
		if c.Style != 1 || c.Ch != '─' {
			t.Errorf("cell (%d,0) = %c/%d, want ─/1", x, c.Ch, c.Style)
		}
	}
}

func TestDrawArrowLine(t *testing.T) {
	buf := cellbuf.New(10, 10, 0)
	DrawArrowLine(buf, 5, 0, 5, 5, 1, 2)

	head := buf.At(5, 5)
	if head.Ch != '▼' || head.Style != 2 {
		t.Errorf("arrowhead: got %c/%d, want ▼/2", head.Ch, head.Style)
	}
	body := buf.At(5, 2)
	if body.Ch != '│' || body.Style != 1 {
		t.Errorf("line body: got %c/%d, want │/1", body.Ch, body.Style)
	}
}

func TestDrawDashedLine(t *testing.T) {
	buf := cellbuf.New(20, 1, 0)
	DrawDashedLine(buf, 0, 0, 19, 0, 1)

	drawn := 0
	for x := 0; x < 20; x++ {
		if buf.At(x, 0).Style == 1 {
			drawn++
		}
	}
	// 20 points, indices 2,5,8,11,14,17 skipped.
	if drawn != 14 {
		t.Errorf("dashed line: expected 14 drawn points, got %d", drawn)
	}
}

// ── Grid ──

func TestDrawGrid(t *testing.T) {
	buf := cellbuf.New(20, 10, 0)
	DrawGrid(buf, 0, 0, 5, 3, 1)

	for _, x := range []int{0, 5, 10, 15} {
		if buf.At(x, 0).Ch != '·' {
			t.Errorf("expected dot at (%d,0), got %c", x, buf.At(x, 0).Ch)
		}
	}
	if buf.At(1, 0).Ch == '·' {
		t.Error("unexpected dot at (1,0)")
	}
	if buf.At(0, 3).Ch != '·' {
		t.Error("expected dot at (0,3)")
	}
	if buf.At(0, 1).Ch == '·' {
		t.Error("unexpected dot at (0,1)")
	}
}

func TestDrawGridWithCamera(t *testing.T) {
	buf := cellbuf.New(20, 10, 0)
	DrawGrid(buf, 2, 1, 5, 3, 1)

	// Buffer (0,0) is world (2,1), not a grid point.
	if buf.At(0, 0).Ch == '·' {
		t.Error("unexpected dot at buf(0,0) = world(2,1)")
	}
	// Buffer (3,2) is world (5,3), a grid point.
	if buf.At(3, 2).Ch != '·' {
		t.Error("expected dot at buf(3,2) = world(5,3)")
	}
}

func TestDrawGridNegativeCamera(t *testing.T) {
	buf := cellbuf.New(10, 10, 0)
	DrawGrid(buf, -7, -5, 5, 3, 1)

	// Buffer (2,2) is world (-5,-3): both multiples of the spacing.
	if buf.At(2, 2).Ch != '·' {
		t.Error("expected dot at buf(2,2) = world(-5,-3)")
	}
}
