// Package viewport holds the pan/zoom transform for one graph view and
// turns pointer gestures into transform state. It is purely synchronous:
// the frame loop only ever reads it.
package viewport

// Default zoom clamp range.
const (
	DefaultMinZoom = 0.2
	DefaultMaxZoom = 4.0
)

// Viewport maps simulation space to screen space. Pan lives in pre-zoom
// units, so a pointer drag moves the image 1:1 at every zoom level.
type Viewport struct {
	Zoom float64
	PanX float64
	PanY float64

	// Min and Max bound the zoom factor.
	Min float64
	Max float64

	// OnReset, when set, fires after Reset clears the transform. The
	// owning view uses it to rewind its simulation clock; the controller
	// itself never touches the clock.
	OnReset func()

	dragging     bool
	lastX, lastY float64
}

// New returns a viewport at zoom 1, no pan, with the default zoom bounds.
func New() *Viewport {
	return &Viewport{Zoom: 1, Min: DefaultMinZoom, Max: DefaultMaxZoom}
}

// ── Drag ──

// BeginDrag starts a pan drag at the pointer position.
func (v *Viewport) BeginDrag(x, y float64) {
	v.dragging = true
	v.lastX, v.lastY = x, y
}

// UpdateDrag adds the pointer delta since the previous drag event to the
// pan offset. Ignored unless a drag is in progress.
func (v *Viewport) UpdateDrag(x, y float64) {
	if !v.dragging {
		return
	}
	v.PanX += x - v.lastX
	v.PanY += y - v.lastY
	v.lastX, v.lastY = x, y
}

// EndDrag finishes the drag.
func (v *Viewport) EndDrag() { v.dragging = false }

// Dragging reports whether a pan drag is in progress.
func (v *Viewport) Dragging() bool { return v.dragging }

// ── Zoom ──

// ZoomBy adds delta to the zoom factor and clamps it to [Min, Max].
func (v *Viewport) ZoomBy(delta float64) {
	v.Zoom += delta
	if v.Zoom < v.Min {
		v.Zoom = v.Min
	}
	if v.Zoom > v.Max {
		v.Zoom = v.Max
	}
}

// Reset returns to zoom 1 and zero pan, ends any drag in progress, and
// fires OnReset.
func (v *Viewport) Reset() {
	v.Zoom = 1
	v.PanX, v.PanY = 0, 0
	v.dragging = false
	if v.OnReset != nil {
		v.OnReset()
	}
}

// ── Transform ──

// Apply maps a simulation-space point to screen space: pan plus zoom-scaled
// position, pan unscaled.
func (v *Viewport) Apply(x, y float64) (float64, float64) {
	return v.PanX + v.Zoom*x, v.PanY + v.Zoom*y
}

// Invert maps a screen-space point back to simulation space.
func (v *Viewport) Invert(x, y float64) (float64, float64) {
	return (x - v.PanX) / v.Zoom, (y - v.PanY) / v.Zoom
}
