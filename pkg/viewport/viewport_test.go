package viewport

import (
	"math"
	"testing"
)

// ── Zoom ──

func TestZoomByAccumulates(t *testing.T) {
	v := New()
	v.ZoomBy(0.25)
	v.ZoomBy(0.25)
	v.ZoomBy(0.25)
	if v.Zoom != 1.75 {
		t.Errorf("expected zoom 1.75, got %v", v.Zoom)
	}
}

func TestZoomClampsAtMax(t *testing.T) {
	v := New()
	for i := 0; i < 40; i++ {
		v.ZoomBy(0.25)
	}
	if v.Zoom != 4.0 {
		t.Errorf("expected exact clamp at 4.0, got %v", v.Zoom)
	}
	v.ZoomBy(100)
	if v.Zoom != 4.0 {
		t.Errorf("zoom exceeded max: %v", v.Zoom)
	}
}

func TestZoomClampsAtMin(t *testing.T) {
	v := New()
	v.ZoomBy(-10)
	if v.Zoom != 0.2 {
		t.Errorf("expected exact clamp at 0.2, got %v", v.Zoom)
	}
}

// ── Drag ──

func TestDragAccumulatesPointerDelta(t *testing.T) {
	v := New()
	v.BeginDrag(10, 10)
	v.UpdateDrag(15, 12)
	if v.PanX != 5 || v.PanY != 2 {
		t.Errorf("after first move: pan (%v,%v)", v.PanX, v.PanY)
	}
	v.UpdateDrag(20, 10)
	if v.PanX != 10 || v.PanY != 0 {
		t.Errorf("after second move: pan (%v,%v)", v.PanX, v.PanY)
	}
}

func TestUpdateDragRequiresBegin(t *testing.T) {
	v := New()
	v.UpdateDrag(50, 50)
	if v.PanX != 0 || v.PanY != 0 {
		t.Error("drag without begin must not pan")
	}
}

func TestEndDragStopsPanning(t *testing.T) {
	v := New()
	v.BeginDrag(0, 0)
	v.EndDrag()
	if v.Dragging() {
		t.Error("still dragging after EndDrag")
	}
	v.UpdateDrag(9, 9)
	if v.PanX != 0 || v.PanY != 0 {
		t.Error("pan changed after EndDrag")
	}
}

func TestDragIsZoomIndependent(t *testing.T) {
	v := New()
	v.ZoomBy(3) // zoom 4
	v.BeginDrag(0, 0)
	v.UpdateDrag(3, 0)
	if v.PanX != 3 {
		t.Errorf("pointer delta must map 1:1 to pan, got %v", v.PanX)
	}
}

// ── Reset ──

func TestResetClearsTransformAndNotifies(t *testing.T) {
	v := New()
	fired := 0
	v.OnReset = func() { fired++ }

	v.ZoomBy(1.5)
	v.BeginDrag(0, 0)
	v.UpdateDrag(40, 40)
	v.Reset()

	if v.Zoom != 1 || v.PanX != 0 || v.PanY != 0 {
		t.Errorf("transform not cleared: zoom=%v pan=(%v,%v)", v.Zoom, v.PanX, v.PanY)
	}
	if v.Dragging() {
		t.Error("drag should end on reset")
	}
	if fired != 1 {
		t.Errorf("OnReset fired %d times", fired)
	}
}

func TestResetWithoutObserver(t *testing.T) {
	v := New()
	v.Reset() // nil OnReset must not panic
}

// ── Transform ──

func TestApplyPansBeforeZoom(t *testing.T) {
	v := New()
	v.Zoom = 2
	v.PanX, v.PanY = 10, 20
	x, y := v.Apply(5, 5)
	if x != 20 || y != 30 {
		t.Errorf("expected (20,30), got (%v,%v)", x, y)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	v := New()
	v.Zoom = 2.5
	v.PanX, v.PanY = -13, 7
	sx, sy := v.Apply(123, -45)
	x, y := v.Invert(sx, sy)
	if math.Abs(x-123) > 1e-9 || math.Abs(y-(-45)) > 1e-9 {
		t.Errorf("round trip drifted: (%v,%v)", x, y)
	}
}
