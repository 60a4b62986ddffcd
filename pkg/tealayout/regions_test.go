package tealayout

import (
	"image"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestLayoutFullChrome(t *testing.T) {
	l := NewBuilder(120, 40).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		LeftFixed("legend", 18).
		RightFixed("panel", 34).
		Remaining("canvas").
		Build()

	if l.TermW != 120 || l.TermH != 40 {
		t.Fatalf("term size: expected 120x40, got %dx%d", l.TermW, l.TermH)
	}

	tb := l.Get("toolbar")
	if tb.Rect != image.Rect(0, 0, 120, 1) {
		t.Errorf("toolbar: expected (0,0)-(120,1), got %v", tb.Rect)
	}

	ft := l.Get("footer")
	if ft.Rect != image.Rect(0, 39, 120, 40) {
		t.Errorf("footer: expected (0,39)-(120,40), got %v", ft.Rect)
	}

	lg := l.Get("legend")
	if lg.Rect != image.Rect(0, 1, 18, 39) {
		t.Errorf("legend: expected (0,1)-(18,39), got %v", lg.Rect)
	}

	pn := l.Get("panel")
	if pn.Rect != image.Rect(86, 1, 120, 39) {
		t.Errorf("panel: expected (86,1)-(120,39), got %v", pn.Rect)
	}

	cv := l.Get("canvas")
	if cv.Rect != image.Rect(18, 1, 86, 39) {
		t.Errorf("canvas: expected (18,1)-(86,39), got %v", cv.Rect)
	}
}

func TestLayoutRemainingOnly(t *testing.T) {
	l := NewBuilder(80, 24).
		Remaining("full").
		Build()

	r := l.Get("full")
	if r.Rect != image.Rect(0, 0, 80, 24) {
		t.Errorf("full: expected (0,0)-(80,24), got %v", r.Rect)
	}
}

func TestLayoutOverrunCollapses(t *testing.T) {
	l := NewBuilder(10, 2).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		RightFixed("panel", 34).
		Remaining("canvas").
		Build()

	// The panel is wider than the terminal and no rows remain between the
	// bars. Both must come out empty rather than flipped.
	for _, name := range []string{"panel", "canvas"} {
		r := l.Get(name)
		if r.Rect.Dx() != 0 || r.Rect.Dy() != 0 {
			t.Errorf("%s: expected empty rect, got %v", name, r.Rect)
		}
	}
}

func TestLayoutZeroTerminal(t *testing.T) {
	l := NewBuilder(0, 0).
		TopFixed("toolbar", 1).
		Remaining("canvas").
		Build()

	cv := l.Get("canvas")
	if cv.Rect.Dx() != 0 || cv.Rect.Dy() != 0 {
		t.Errorf("zero term canvas: expected empty rect, got %v", cv.Rect)
	}
}

func TestLayoutNoOverlap(t *testing.T) {
	l := NewBuilder(120, 40).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		LeftFixed("legend", 18).
		RightFixed("panel", 34).
		Remaining("canvas").
		Build()

	names := []string{"toolbar", "footer", "legend", "panel", "canvas"}
	for i := 0; i < len(names); i++ {
		for j := i + 1; j < len(names); j++ {
			ri, rj := l.Get(names[i]), l.Get(names[j])
			if ri.Rect.Overlaps(rj.Rect) {
				t.Errorf("overlap: %s %v and %s %v",
					ri.Name, ri.Rect, rj.Name, rj.Rect)
			}
		}
	}
}

func TestLayoutRegionsTile(t *testing.T) {
	l := NewBuilder(120, 40).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1).
		LeftFixed("legend", 18).
		RightFixed("panel", 34).
		Remaining("canvas").
		Build()

	area := 0
	for _, r := range l.Regions {
		area += r.Rect.Dx() * r.Rect.Dy()
	}
	if area != 120*40 {
		t.Errorf("regions should tile the terminal: covered %d of %d cells",
			area, 120*40)
	}
}

func TestLocal(t *testing.T) {
	l := NewBuilder(120, 40).
		TopFixed("toolbar", 1).
		LeftFixed("legend", 18).
		Remaining("canvas").
		Build()

	tests := []struct {
		name   string
		x, y   int
		lx, ly int
		ok     bool
	}{
		{"canvas", 18, 1, 0, 0, true},
		{"canvas", 30, 10, 12, 9, true},
		{"canvas", 17, 10, 0, 0, false}, // inside legend instead
		{"canvas", 18, 0, 0, 0, false},  // inside toolbar instead
		{"legend", 5, 3, 5, 2, true},
		{"toolbar", 119, 0, 119, 0, true},
		{"toolbar", 120, 0, 0, 0, false}, // one past the right edge
	}
	for _, tc := range tests {
		lx, ly, ok := l.Local(tc.name, tc.x, tc.y)
		if lx != tc.lx || ly != tc.ly || ok != tc.ok {
			t.Errorf("Local(%s, %d, %d) = (%d,%d,%v), want (%d,%d,%v)",
				tc.name, tc.x, tc.y, lx, ly, ok, tc.lx, tc.ly, tc.ok)
		}
	}
}

func TestGetNonExistent(t *testing.T) {
	l := NewBuilder(80, 24).Build()
	r := l.Get("missing")
	if r.Name != "" {
		t.Errorf("non-existent: expected empty, got %v", r)
	}
}

func TestModalLayer(t *testing.T) {
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		Width(20).
		Padding(1, 2)

	layer := ModalLayer("test content", 80, 24, style)
	if layer.GetID() != "modal" {
		t.Errorf("modal ID: expected 'modal', got %q", layer.GetID())
	}
	if layer.GetZ() != 100 {
		t.Errorf("modal Z: expected 100, got %d", layer.GetZ())
	}
	// Should be roughly centered
	x, y := layer.GetX(), layer.GetY()
	if x < 20 || x > 40 {
		t.Errorf("modal X not centered: %d", x)
	}
	if y < 5 || y > 15 {
		t.Errorf("modal Y not centered: %d", y)
	}
}

func TestPanelLayer(t *testing.T) {
	r := Region{Name: "panel", Rect: image.Rect(86, 1, 120, 39)}
	style := lipgloss.NewStyle().Background(lipgloss.Color("#080e0b"))
	layer := PanelLayer("details", r, style, "panel", 1)

	if layer.GetID() != "panel" {
		t.Errorf("panel ID: expected 'panel', got %q", layer.GetID())
	}
	if layer.GetX() != 86 || layer.GetY() != 1 {
		t.Errorf("panel pos: expected (86,1), got (%d,%d)", layer.GetX(), layer.GetY())
	}
}

func TestPanelLayerEmptyRegion(t *testing.T) {
	r := Region{Name: "panel", Rect: image.Rectangle{}}
	layer := PanelLayer("details", r, lipgloss.NewStyle(), "panel", 1)
	if layer.GetContent() != "" {
		t.Error("empty region should yield an empty layer")
	}
}

func TestFillLayer(t *testing.T) {
	r := Region{Name: "test", Rect: image.Rect(10, 5, 30, 15)}
	style := lipgloss.NewStyle().Background(lipgloss.Color("#080e0b"))
	layer := FillLayer(r, style, "bg", -1)

	if layer.GetID() != "bg" {
		t.Errorf("fill ID: expected 'bg', got %q", layer.GetID())
	}
	if layer.GetX() != 10 || layer.GetY() != 5 {
		t.Errorf("fill pos: expected (10,5), got (%d,%d)", layer.GetX(), layer.GetY())
	}
	if layer.GetZ() != -1 {
		t.Errorf("fill Z: expected -1, got %d", layer.GetZ())
	}
}

func TestFillLayerEmpty(t *testing.T) {
	r := Region{Name: "empty", Rect: image.Rectangle{}}
	layer := FillLayer(r, lipgloss.NewStyle(), "bg", 0)
	if layer.GetContent() != "" {
		t.Error("empty fill should have no content")
	}
}
