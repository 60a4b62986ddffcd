// Package forcesim is a self-contained 2D force-directed layout engine:
// a per-view position store, a cooling clock, and a single-tick stepper
// combining pairwise repulsion, spring attraction toward a rest length,
// and centering gravity, integrated with damped velocities inside clamped
// bounds.
package forcesim

// SimNode is the mutable per-node simulation record, distinct from the
// read-only graph node supplied by the data layer.
type SimNode struct {
	ID  string
	Pos Vec
	Vel Vec
}

// EdgePair names the two endpoints the stepper pulls together.
type EdgePair struct {
	Source, Target string
}

// Sim owns the position store, edge pairs, surface size, and cooling clock
// for one graph view. Not safe for shared use across goroutines; every
// caller runs on the owning view's event loop.
type Sim struct {
	cfg   Config
	nodes map[string]*SimNode
	order []string // reconcile order, for deterministic stepping
	edges []EdgePair
	w, h  float64
	tick  int
}

// NewSim creates an empty simulation over a zero surface. A non-positive
// CoolTicks and a nil Rand fall back to the defaults; everything else is
// taken as given.
func NewSim(cfg Config) *Sim {
	if cfg.CoolTicks <= 0 {
		cfg.CoolTicks = DefaultConfig().CoolTicks
	}
	if cfg.Rand == nil {
		cfg.Rand = DefaultConfig().Rand
	}
	return &Sim{cfg: cfg, nodes: make(map[string]*SimNode)}
}

// Config returns the active constants.
func (s *Sim) Config() Config { return s.cfg }

// SetSurface updates the drawable size in logical pixels. Resizing never
// rewinds the clock.
func (s *Sim) SetSurface(w, h float64) {
	s.w, s.h = w, h
}

// Surface returns the current drawable size.
func (s *Sim) Surface() (w, h float64) { return s.w, s.h }

// ── Store reconciliation ──

// SetGraph reconciles the store against a fresh snapshot and rewinds the
// clock so the new arrangement gets a full cooling run.
func (s *Sim) SetGraph(ids []string, edges []EdgePair) {
	s.Reconcile(ids)
	s.edges = append(s.edges[:0], edges...)
	s.tick = 0
}

// Reconcile syncs the store to the id list: known ids keep their position
// and velocity, vanished ids are deleted, new ids spawn inside the center
// band with zero velocity. Afterwards the store keys equal the id set
// exactly. Duplicate ids collapse to their first occurrence.
func (s *Sim) Reconcile(ids []string) {
	keep := make(map[string]bool, len(ids))
	order := make([]string, 0, len(ids))
	for _, id := range ids {
		if keep[id] {
			continue
		}
		keep[id] = true
		order = append(order, id)
		if _, ok := s.nodes[id]; !ok {
			s.nodes[id] = &SimNode{ID: id, Pos: s.spawnPos()}
		}
	}
	for id := range s.nodes {
		if !keep[id] {
			delete(s.nodes, id)
		}
	}
	s.order = order
}

// spawnPos samples a point within InitBand of the surface center on each
// axis. On a zero surface everything lands at the origin and spreads out
// over the first ticks.
func (s *Sim) spawnPos() Vec {
	return Vec{
		X: s.w/2 + (s.cfg.Rand()*2-1)*s.cfg.InitBand*s.w,
		Y: s.h/2 + (s.cfg.Rand()*2-1)*s.cfg.InitBand*s.h,
	}
}

// ── Clock ──

// Alpha returns the current temperature, max(MinAlpha, 1 - tick/CoolTicks).
func (s *Sim) Alpha() float64 {
	a := 1 - float64(s.tick)/float64(s.cfg.CoolTicks)
	if a < s.cfg.MinAlpha {
		return s.cfg.MinAlpha
	}
	return a
}

// Tick returns the clock value.
func (s *Sim) Tick() int { return s.tick }

// ResetClock rewinds the cooling schedule, reheating the layout.
func (s *Sim) ResetClock() { s.tick = 0 }

// ── Access ──

// Len returns the simulated node count.
func (s *Sim) Len() int { return len(s.order) }

// Node returns the live record for the id, or nil.
func (s *Sim) Node(id string) *SimNode { return s.nodes[id] }

// Nodes returns the records in reconcile order. The slice is fresh per
// call; the records are live.
func (s *Sim) Nodes() []*SimNode {
	result := make([]*SimNode, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.nodes[id])
	}
	return result
}

// Pin moves a node to the given position and zeroes its velocity, for
// pointer dragging. Unknown ids are ignored.
func (s *Sim) Pin(id string, p Vec) {
	if n, ok := s.nodes[id]; ok {
		n.Pos = p
		n.Vel = Vec{}
	}
}

// Energy returns the sum of squared speeds, the layout's stability metric.
func (s *Sim) Energy() float64 {
	e := 0.0
	for _, id := range s.order {
		n := s.nodes[id]
		e += n.Vel.X*n.Vel.X + n.Vel.Y*n.Vel.Y
	}
	return e
}

// ── Stepper ──

// Step advances the simulation one tick: repulsion, attraction, gravity,
// then damped integration clamped to the margin band. The clock increments
// unconditionally, even over an empty store.
func (s *Sim) Step() {
	alpha := s.Alpha()
	s.tick++

	// Pairwise repulsion, equal and opposite. O(n²) over unordered pairs;
	// fine for the display-bounded node counts this renders.
	for i := 0; i < len(s.order); i++ {
		a := s.nodes[s.order[i]]
		for j := i + 1; j < len(s.order); j++ {
			b := s.nodes[s.order[j]]
			d := b.Pos.Sub(a.Pos)
			dist := d.Len()
			if dist < 1 {
				dist = 1
			}
			f := s.cfg.Repulsion / (dist * dist) * alpha
			ux, uy := d.X/dist, d.Y/dist
			a.Vel.X -= ux * f
			a.Vel.Y -= uy * f
			b.Vel.X += ux * f
			b.Vel.Y += uy * f
		}
	}

	// Spring attraction toward the rest length, not toward zero.
	for _, e := range s.edges {
		a, ok := s.nodes[e.Source]
		if !ok {
			continue
		}
		b, ok := s.nodes[e.Target]
		if !ok {
			continue
		}
		d := b.Pos.Sub(a.Pos)
		dist := d.Len()
		if dist < 1 {
			dist = 1
		}
		f := (dist - s.cfg.RestLength) * s.cfg.Spring * alpha
		ux, uy := d.X/dist, d.Y/dist
		a.Vel.X += ux * f
		a.Vel.Y += uy * f
		b.Vel.X -= ux * f
		b.Vel.Y -= uy * f
	}

	// Centering gravity keeps disconnected components from drifting off.
	cx, cy := s.w/2, s.h/2
	for _, id := range s.order {
		n := s.nodes[id]
		n.Vel.X += (cx - n.Pos.X) * s.cfg.Gravity * alpha
		n.Vel.Y += (cy - n.Pos.Y) * s.cfg.Gravity * alpha
	}

	// Damped integration inside the margin band.
	for _, id := range s.order {
		n := s.nodes[id]
		n.Vel.X *= s.cfg.Damping
		n.Vel.Y *= s.cfg.Damping
		n.Pos.X = clamp(n.Pos.X+n.Vel.X, s.cfg.Margin, s.w-s.cfg.Margin)
		n.Pos.Y = clamp(n.Pos.Y+n.Vel.Y, s.cfg.Margin, s.h-s.cfg.Margin)
	}
}

// clamp bounds v to [lo, hi]. A degenerate band (surface smaller than two
// margins) collapses to its midpoint.
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
