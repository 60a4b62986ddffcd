package tangleui

import (
	"fmt"
	"image"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tangleview/tangle/pkg/drawutil"
	"github.com/tangleview/tangle/pkg/tealayout"
)

var (
	toolbarStyle = lipgloss.NewStyle().
			Background(c("#0a1510")).
			Foreground(toolbarColor).
			Bold(true)

	footerStyle = lipgloss.NewStyle().
			Background(colorBG).
			Foreground(footerColor)

	footerErrStyle = lipgloss.NewStyle().
			Background(colorBG).
			Foreground(errorColor)

	bgFillStyle    = lipgloss.NewStyle().Background(colorBG)
	panelFillStyle = lipgloss.NewStyle().Background(panelBG)
)

// Fixed section heights inside the right panel; details takes the rest.
const (
	statsPanelH = 9
	keysPanelH  = 7
)

// View implements tea.Model. It rebuilds the layer stack every frame;
// the compositor resolves overlap by Z.
func (m Model) View() tea.View {
	if m.Width == 0 || m.Height == 0 {
		return tea.NewView("")
	}

	layout := m.layout()

	full := tealayout.Region{Name: "bg", Rect: image.Rect(0, 0, m.Width, m.Height)}
	layers := []*lipgloss.Layer{
		tealayout.FillLayer(full, bgFillStyle, "bg", -1),
		tealayout.ToolbarLayer(m.toolbarText(), m.Width, toolbarStyle),
		tealayout.FooterLayer(m.footerText(), m.Width, m.Height-1, m.statusBarStyle()),
		buildCanvasLayer(m, layout.Get("canvas").Rect),
	}

	if lr := layout.Get("legend").Rect; m.ShowLegend && lr.Dx() > 2 {
		layers = append(layers,
			tealayout.FillLayer(layout.Get("legend"), panelFillStyle, "legend-bg", 0),
			buildLegendLayer(m, lr.Min.X+1, lr.Min.Y, lr.Dx()-2, lr.Dy()),
			tealayout.VerticalSeparator(lr.Max.X-1, lr.Min.Y, lr.Dy(), 1, panelSepStyle),
		)
	}

	if pr := layout.Get("panel").Rect; pr.Dx() > 2 && pr.Dy() > 0 {
		layers = append(layers,
			tealayout.FillLayer(layout.Get("panel"), panelFillStyle, "panel-bg", 0),
			tealayout.VerticalSeparator(pr.Min.X, pr.Min.Y, pr.Dy(), 1, panelSepStyle),
		)
		px, pw := pr.Min.X+2, pr.Dx()-3
		if m.panelMode == panelHelp {
			layers = append(layers, buildHelpPanelLayer(px, pr.Min.Y, pw, pr.Dy()))
		} else {
			detailsH := pr.Dy() - statsPanelH - keysPanelH
			if detailsH < 4 {
				detailsH = 4
			}
			layers = append(layers,
				buildDetailsPanelLayer(m, px, pr.Min.Y, pw, detailsH),
				buildStatsPanelLayer(m, px, pr.Min.Y+detailsH, pw, statsPanelH),
				buildKeysPanelLayer(px, pr.Min.Y+detailsH+statsPanelH, pw, keysPanelH),
			)
		}
	}

	if m.FilterOpen {
		layers = append(layers, buildFilterModalLayer(m))
	}
	if m.HelpOpen {
		layers = append(layers, buildHelpModalLayer(m.Width, m.Height))
	}

	comp := lipgloss.NewCompositor(layers...)
	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(comp)

	v := tea.NewView(canvas.Render())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeAllMotion
	return v
}

func (m Model) toolbarText() string {
	parts := []string{" TANGLE", drawutil.Ellipsize(m.source, 32)}
	if m.Filter != nil {
		parts = append(parts, "⌕ "+drawutil.Ellipsize(m.Filter.Source(), 28))
	}
	if m.watcher != nil {
		parts = append(parts, "watching")
	}
	return strings.Join(parts, "  │  ")
}

func (m Model) footerText() string {
	if m.status != "" {
		return " " + m.status
	}
	sel := "none"
	if meta, ok := m.Index.Node(m.SelectedID); ok {
		sel = meta.Name
	}
	return fmt.Sprintf(" zoom %.2fx · tick %d · energy %.1f · %dn/%de · sel %s · ? help",
		m.Viewport.Zoom, m.Sim.Tick(), m.Sim.Energy(),
		m.Index.Len(), len(m.Index.Edges()), sel)
}

func (m Model) statusBarStyle() lipgloss.Style {
	if m.statusErr {
		return footerErrStyle
	}
	return footerStyle
}
