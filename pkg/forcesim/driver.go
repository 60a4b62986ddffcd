package forcesim

// Driver sequences one physics step and one draw per display frame for a
// single view. The host arms a repeating frame timer and calls Frame on
// each firing; physics always completes before that frame's draw, so the
// draw never sees a half-updated tick.
type Driver struct {
	sim     *Sim
	draw    func()
	stopped bool
}

// NewDriver couples a simulation to a draw callback. A nil draw is allowed
// for headless stepping.
func NewDriver(sim *Sim, draw func()) *Driver {
	return &Driver{sim: sim, draw: draw}
}

// Frame runs one frame body and reports whether it ran. Degenerate frames
// (stopped driver, zero-area surface, empty store) do nothing; the caller
// re-arms the timer while Stopped is false.
func (d *Driver) Frame() bool {
	if d.stopped {
		return false
	}
	w, h := d.sim.Surface()
	if w <= 0 || h <= 0 || d.sim.Len() == 0 {
		return false
	}
	d.sim.Step()
	if d.draw != nil {
		d.draw()
	}
	return true
}

// Stop retires the driver. Idempotent; after the first call no Frame runs
// its body.
func (d *Driver) Stop() { d.stopped = true }

// Stopped reports whether Stop has been called.
func (d *Driver) Stopped() bool { return d.stopped }
