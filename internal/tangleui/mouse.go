package tangleui

import (
	"math"

	tea "charm.land/bubbletea/v2"

	"github.com/tangleview/tangle/pkg/forcesim"
)

// handleMouse turns pointer events on the canvas into viewport and node
// interactions. Cells become logical pixels here so everything past this
// point works in one coordinate space.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.FilterOpen || m.HelpOpen {
		return m, nil
	}

	// A release ends the active drag wherever the pointer is, including
	// off-canvas. Checking bounds first would leave a drag stuck when the
	// button comes up over the panel.
	if _, ok := msg.(tea.MouseReleaseMsg); ok {
		m.Viewport.EndDrag()
		m.drag = dragNone
		m.dragNodeID = ""
		return m, nil
	}

	mouse := msg.Mouse()
	cx, cy, onCanvas := m.layout().Local("canvas", mouse.X, mouse.Y)
	if !onCanvas {
		return m, nil
	}

	// Center of the hovered cell, in logical pixels.
	px := (float64(cx) + 0.5) * cellPxW
	py := (float64(cy) + 0.5) * cellPxH

	switch msg.(type) {
	case tea.MouseWheelMsg:
		switch mouse.Button {
		case tea.MouseWheelUp:
			m.Viewport.ZoomBy(zoomStep)
		case tea.MouseWheelDown:
			m.Viewport.ZoomBy(-zoomStep)
		}

	case tea.MouseClickMsg:
		if mouse.Button != tea.MouseLeft {
			break
		}
		sx, sy := m.Viewport.Invert(px, py)
		if id := m.nodeAt(sx, sy); id != "" {
			m.SelectedID = id
			m.drag = dragNode
			m.dragNodeID = id
		} else {
			m.SelectedID = ""
			m.drag = dragPan
			m.Viewport.BeginDrag(px, py)
		}

	case tea.MouseMotionMsg:
		switch m.drag {
		case dragNode:
			sx, sy := m.Viewport.Invert(px, py)
			m.Sim.Pin(m.dragNodeID, forcesim.Vec{X: sx, Y: sy})
		case dragPan:
			m.Viewport.UpdateDrag(px, py)
		}
	}

	return m, nil
}

// nodeAt returns the id of the nearest node whose marker covers the
// given simulation-space point, with one cell of slop so small discs
// stay clickable at low zoom. Empty when nothing is near. Filtered-out
// nodes are not hittable.
func (m Model) nodeAt(sx, sy float64) string {
	slop := cellPxW / m.Viewport.Zoom
	best := ""
	bestDist := math.MaxFloat64
	for _, n := range m.Sim.Nodes() {
		if !m.visible(n.ID) {
			continue
		}
		meta, ok := m.Index.Node(n.ID)
		if !ok {
			continue
		}
		d := math.Hypot(sx-n.Pos.X, sy-n.Pos.Y)
		if d <= radiusFor(meta.Mentions)+slop && d < bestDist {
			best = n.ID
			bestDist = d
		}
	}
	return best
}
