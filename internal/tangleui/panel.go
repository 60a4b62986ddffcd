package tangleui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/tangleview/tangle/pkg/drawutil"
)

const (
	panelWidth  = 34
	legendWidth = 18
)

// panelBG is slightly lighter than the canvas so the chrome reads as a
// separate surface.
var (
	panelBG = c("#101b15")

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG).
			Bold(true)

	panelDimStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(panelBG)

	panelTextStyle = lipgloss.NewStyle().
			Foreground(c("#00d4a0")).
			Background(panelBG)

	panelKeyStyle = lipgloss.NewStyle().
			Foreground(c("#ddaa44")).
			Background(panelBG)

	panelValStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(panelBG)

	panelWarnStyle = lipgloss.NewStyle().
			Foreground(c("#ffcc66")).
			Background(panelBG)

	panelSepStyle = lipgloss.NewStyle().
			Foreground(c("#1a4a3a")).
			Background(panelBG)

	panelPadStyle = lipgloss.NewStyle().
			Background(panelBG)
)

// padLine right-pads a styled line to the given visible width so the
// panel background stays solid behind short lines.
func padLine(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		s += panelPadStyle.Render(strings.Repeat(" ", pad))
	}
	return s
}

// padBlock trims or pads a slice of styled lines to exactly height rows,
// each width columns wide.
func padBlock(lines []string, width, height int) []string {
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]
	for i, l := range lines {
		lines[i] = padLine(l, width)
	}
	return lines
}

func sectionHeader(title string, width int) []string {
	rule := width - 2
	if rule < 0 {
		rule = 0
	}
	return []string{
		panelTitleStyle.Render("◈ " + title),
		panelDimStyle.Render(strings.Repeat("─", rule)),
	}
}

func statLine(name, value string) string {
	return panelKeyStyle.Render(fmt.Sprintf("  %-9s", name)) + panelValStyle.Render(value)
}

// buildDetailsPanelLayer shows the selected node and its links, or a
// hint when nothing is selected.
func buildDetailsPanelLayer(m Model, x, y, width, height int) *lipgloss.Layer {
	lines := sectionHeader("DETAILS", width)

	if meta, ok := m.Index.Node(m.SelectedID); ok {
		lines = append(lines,
			statLine("name", meta.Name),
			statLine("type", nonEmpty(meta.Type, "untyped")),
			statLine("mentions", fmt.Sprintf("%d", meta.Mentions)),
			statLine("links", fmt.Sprintf("%d", m.Index.Degree(meta.ID))),
			"",
		)
		lines = append(lines, sectionHeader("LINKED", width)...)
		for _, e := range m.Index.Neighbors(meta.ID) {
			otherID, arrow := e.Target, "→"
			if e.Target == meta.ID && e.Source != meta.ID {
				otherID, arrow = e.Source, "←"
			}
			other, ok := m.Index.Node(otherID)
			if !ok {
				continue
			}
			name := drawutil.Ellipsize(other.Name, width-6)
			line := panelTextStyle.Render(fmt.Sprintf("  %s %s", arrow, name))
			if rel := e.Relation; rel != "" && lipgloss.Width(line)+len(rel)+3 <= width {
				line += panelDimStyle.Render(" (" + rel + ")")
			}
			lines = append(lines, line)
		}
	} else {
		lines = append(lines, panelDimStyle.Render("  click a node to inspect it"))
	}

	content := strings.Join(padBlock(lines, width, height), "\n")
	return lipgloss.NewLayer(content).X(x).Y(y).Z(1).ID("panel-details")
}

// buildStatsPanelLayer shows graph and simulation gauges.
func buildStatsPanelLayer(m Model, x, y, width, height int) *lipgloss.Layer {
	lines := sectionHeader("GRAPH", width)
	lines = append(lines,
		statLine("nodes", fmt.Sprintf("%d", m.Index.Len())),
		statLine("edges", fmt.Sprintf("%d", len(m.Index.Edges()))),
		statLine("alpha", fmt.Sprintf("%.3f", m.Sim.Alpha())),
		statLine("energy", fmt.Sprintf("%.1f", m.Sim.Energy())),
		statLine("zoom", fmt.Sprintf("%.2fx", m.Viewport.Zoom)),
	)
	if len(m.Dropped) > 0 {
		lines = append(lines, panelWarnStyle.Render(fmt.Sprintf("  ⚠ %d edges dropped", len(m.Dropped))))
	}
	if m.Filter != nil {
		expr := drawutil.Ellipsize(m.Filter.Source(), width-11)
		lines = append(lines, statLine("filter", expr))
	}

	content := strings.Join(padBlock(lines, width, height), "\n")
	return lipgloss.NewLayer(content).X(x).Y(y).Z(1).ID("panel-stats")
}

// buildKeysPanelLayer is the always-visible cheat sheet.
func buildKeysPanelLayer(x, y, width, height int) *lipgloss.Layer {
	lines := sectionHeader("KEYS", width)
	lines = append(lines,
		panelTextStyle.Render("  click select · drag move"),
		panelTextStyle.Render("  wheel or +/- zoom"),
		panelTextStyle.Render("  arrows pan · r reset"),
		panelTextStyle.Render("  space reheat · / filter"),
		panelTextStyle.Render("  tab panel · ? help · q quit"),
	)

	content := strings.Join(padBlock(lines, width, height), "\n")
	return lipgloss.NewLayer(content).X(x).Y(y).Z(1).ID("panel-keys")
}

// buildHelpPanelLayer fills the whole right panel with the expanded key
// reference, the tab alternative to the details view.
func buildHelpPanelLayer(x, y, width, height int) *lipgloss.Layer {
	lines := sectionHeader("HELP", width)
	lines = append(lines,
		panelKeyStyle.Render("  mouse"),
		panelTextStyle.Render("    drag canvas   pan"),
		panelTextStyle.Render("    drag node     move it"),
		panelTextStyle.Render("    wheel         zoom"),
		panelTextStyle.Render("    click         select"),
		"",
		panelKeyStyle.Render("  keys"),
		panelTextStyle.Render("    + - =         zoom"),
		panelTextStyle.Render("    arrows        pan"),
		panelTextStyle.Render("    r             reset view"),
		panelTextStyle.Render("    space         reheat"),
		panelTextStyle.Render("    /             filter"),
		panelTextStyle.Render("    esc           dismiss"),
		panelTextStyle.Render("    l             legend"),
		panelTextStyle.Render("    tab           this panel"),
		panelTextStyle.Render("    q             quit"),
		"",
		panelKeyStyle.Render("  filter variables"),
		panelTextStyle.Render("    id name type mentions"),
		panelTextStyle.Render("    degree contains(a,b)"),
	)

	content := strings.Join(padBlock(lines, width, height), "\n")
	return lipgloss.NewLayer(content).X(x).Y(y).Z(1).ID("panel-help")
}

// buildLegendLayer is the left rail: one swatch per node type present in
// the graph, in first-appearance order, with counts.
func buildLegendLayer(m Model, x, y, width, height int) *lipgloss.Layer {
	lines := sectionHeader("TYPES", width)

	counts := map[string]int{}
	var order []string
	for _, n := range m.Index.Nodes() {
		if _, seen := counts[n.Type]; !seen {
			order = append(order, n.Type)
		}
		counts[n.Type]++
	}

	for _, typ := range order {
		swatch := lipgloss.NewStyle().
			Foreground(colorForType(typ)).
			Background(panelBG).
			Render("●")
		name := drawutil.Ellipsize(nonEmpty(typ, "untyped"), width-8)
		lines = append(lines,
			" "+swatch+panelTextStyle.Render(fmt.Sprintf(" %-9s", name))+
				panelDimStyle.Render(fmt.Sprintf("%3d", counts[typ])))
	}

	if m.Visible != nil {
		lines = append(lines, "",
			panelWarnStyle.Render(fmt.Sprintf(" %d/%d match", countVisible(m.Visible), m.Index.Len())))
	}

	content := strings.Join(padBlock(lines, width, height), "\n")
	return lipgloss.NewLayer(content).X(x).Y(y).Z(1).ID("legend")
}

func countVisible(vis map[string]bool) int {
	n := 0
	for _, ok := range vis {
		if ok {
			n++
		}
	}
	return n
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
