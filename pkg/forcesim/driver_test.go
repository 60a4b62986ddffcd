package forcesim

import "testing"

// ── Frame ──

func TestDriverPhysicsBeforeDraw(t *testing.T) {
	s := testSim(1)
	s.SetGraph([]string{"a", "b"}, nil)

	var ticksAtDraw []int
	d := NewDriver(s, func() { ticksAtDraw = append(ticksAtDraw, s.Tick()) })

	if !d.Frame() {
		t.Fatal("frame should run on a live sim")
	}
	d.Frame()
	if len(ticksAtDraw) != 2 || ticksAtDraw[0] != 1 || ticksAtDraw[1] != 2 {
		t.Errorf("draw must see the completed tick, saw %v", ticksAtDraw)
	}
}

func TestDriverEmptyStoreIsNoOp(t *testing.T) {
	s := testSim(2)
	drawn := 0
	d := NewDriver(s, func() { drawn++ })

	for i := 0; i < 5; i++ {
		if d.Frame() {
			t.Fatal("frame must not run with no nodes")
		}
	}
	if drawn != 0 || s.Tick() != 0 {
		t.Errorf("no work expected: drawn=%d tick=%d", drawn, s.Tick())
	}
	d.Stop() // still safe afterward
	d.Stop()
}

func TestDriverZeroSurfaceSkipsFrame(t *testing.T) {
	cfg := DefaultConfig()
	s := NewSim(cfg)
	s.SetGraph([]string{"a"}, nil)

	d := NewDriver(s, nil)
	if d.Frame() {
		t.Error("zero-area surface must skip the frame body")
	}
	s.SetSurface(100, 100)
	if !d.Frame() {
		t.Error("frame should run once the surface has area")
	}
}

// ── Stop ──

func TestDriverStopIdempotent(t *testing.T) {
	s := testSim(3)
	s.SetGraph([]string{"a"}, nil)
	drawn := 0
	d := NewDriver(s, func() { drawn++ })

	d.Frame()
	d.Stop()
	d.Stop()
	d.Stop()

	if !d.Stopped() {
		t.Error("Stopped should report true")
	}
	for i := 0; i < 3; i++ {
		if d.Frame() {
			t.Fatal("no frame body may run after Stop")
		}
	}
	if drawn != 1 || s.Tick() != 1 {
		t.Errorf("post-stop work detected: drawn=%d tick=%d", drawn, s.Tick())
	}
}
