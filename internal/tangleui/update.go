package tangleui

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/tangleview/tangle/pkg/knowledge"
	"github.com/tangleview/tangle/pkg/tealayout"
)

// Keyboard pan distance in logical pixels, and the zoom applied per
// keypress or wheel notch.
const (
	panStep  = 24.0
	zoomStep = 0.25
)

// frameMsg fires once per display frame.
type frameMsg time.Time

// snapshotMsg carries a reloaded graph from the source watcher.
type snapshotMsg knowledge.Snapshot

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.frameEvery, func(t time.Time) tea.Msg { return frameMsg(t) })
}

// waitForSnapshot blocks on the watcher channel and turns reloads into
// messages. Re-armed after every delivery.
func (m Model) waitForSnapshot() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch := m.watcher.Snapshots()
	return func() tea.Msg {
		snap, ok := <-ch
		if !ok {
			return nil
		}
		return snapshotMsg(snap)
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.syncSurface()
		return m, nil

	case frameMsg:
		m.Driver.Frame()
		if m.statusLeft > 0 {
			m.statusLeft--
			if m.statusLeft == 0 {
				m.status = ""
				m.statusErr = false
			}
		}
		if m.Driver.Stopped() {
			return m, nil
		}
		return m, m.frameCmd()

	case snapshotMsg:
		m.applySnapshot(knowledge.Snapshot(msg))
		m.setStatus(fmt.Sprintf("reloaded: %d nodes, %d edges",
			m.Index.Len(), len(m.Index.Edges())))
		return m, m.waitForSnapshot()

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.FilterOpen {
		return m.handleFilterKeys(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m.quit()

	case "+", "=":
		m.Viewport.ZoomBy(zoomStep)
	case "-", "_":
		m.Viewport.ZoomBy(-zoomStep)

	// Arrow keys pan the camera; the content moves opposite the key.
	case "up":
		m.Viewport.PanY += panStep
	case "down":
		m.Viewport.PanY -= panStep
	case "left":
		m.Viewport.PanX += panStep
	case "right":
		m.Viewport.PanX -= panStep

	case "r":
		m.Viewport.Reset()
		m.setStatus("view reset")

	case " ", "space":
		m.Sim.ResetClock()
		m.setStatus("layout reheated")

	case "/":
		return m.openFilter()

	case "l":
		m.ShowLegend = !m.ShowLegend
		m.syncSurface()

	case "tab":
		if m.panelMode == panelDetails {
			m.panelMode = panelHelp
		} else {
			m.panelMode = panelDetails
		}

	case "?":
		m.HelpOpen = !m.HelpOpen

	case "esc", "escape":
		switch {
		case m.HelpOpen:
			m.HelpOpen = false
		case m.SelectedID != "":
			m.SelectedID = ""
		case m.Filter != nil:
			m.Filter = nil
			m.Visible = nil
			m.setStatus("filter cleared")
		}
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Driver.Stop()
	if m.watcher != nil {
		m.watcher.Stop()
	}
	return m, tea.Quit
}

// layout computes the chrome regions for the current terminal size.
// Update routes mouse events through the same regions View renders, so
// both must call here.
func (m Model) layout() tealayout.Layout {
	b := tealayout.NewBuilder(m.Width, m.Height).
		TopFixed("toolbar", 1).
		BottomFixed("footer", 1)
	if m.ShowLegend {
		b = b.LeftFixed("legend", legendWidth)
	}
	return b.RightFixed("panel", panelWidth).
		Remaining("canvas").
		Build()
}

// syncSurface tells the simulation how many logical pixels the canvas
// region currently covers, so centering and clamping track the layout.
func (m Model) syncSurface() {
	r := m.layout().Get("canvas").Rect
	m.Sim.SetSurface(float64(r.Dx()*cellPxW), float64(r.Dy()*cellPxH))
}
