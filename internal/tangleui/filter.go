package tangleui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/tangleview/tangle/internal/nodequery"
	"github.com/tangleview/tangle/pkg/tealayout"
)

var (
	modalBG = c("#0a1510")

	modalTitleStyle = lipgloss.NewStyle().
			Foreground(c("#00ffc8")).
			Background(modalBG).
			Bold(true)

	modalTextStyle = lipgloss.NewStyle().
			Foreground(c("#00d4a0")).
			Background(modalBG)

	modalHintStyle = lipgloss.NewStyle().
			Foreground(c("#336655")).
			Background(modalBG).
			Italic(true)

	modalErrStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Background(modalBG)

	modalBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(c("#00d4a0")).
			Background(modalBG).
			Width(58).
			Padding(1, 2)
)

// openFilter opens the filter prompt primed with the active expression,
// so editing a filter doesn't mean retyping it.
func (m Model) openFilter() (tea.Model, tea.Cmd) {
	m.FilterOpen = true
	m.filterErr = ""

	m.filterIn = textinput.New()
	m.filterIn.Prompt = "> "
	m.filterIn.CharLimit = 120
	if m.Filter != nil {
		m.filterIn.SetValue(m.Filter.Source())
	}
	cmd := m.filterIn.Focus()
	return m, cmd
}

// handleFilterKeys runs while the filter prompt is open. Enter compiles
// and applies; a bad expression keeps the prompt open with the error
// shown instead of silently dropping the input.
func (m Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "escape":
		m.FilterOpen = false
		return m, nil

	case "enter":
		expr := strings.TrimSpace(m.filterIn.Value())
		if expr == "" {
			m.Filter = nil
			m.Visible = nil
			m.FilterOpen = false
			m.setStatus("filter cleared")
			return m, nil
		}

		f, err := nodequery.Compile(expr)
		if err != nil {
			m.filterErr = err.Error()
			return m, nil
		}
		vis, err := f.Visible(m.Index)
		if err != nil {
			m.filterErr = err.Error()
			return m, nil
		}

		m.Filter = f
		m.Visible = vis
		m.FilterOpen = false
		if m.SelectedID != "" && !m.visible(m.SelectedID) {
			m.SelectedID = ""
		}
		m.setStatus(fmt.Sprintf("filter matches %d of %d nodes", countVisible(vis), m.Index.Len()))
		return m, nil

	default:
		var cmd tea.Cmd
		m.filterIn, cmd = m.filterIn.Update(msg)
		return m, cmd
	}
}

// buildFilterModalLayer renders the filter prompt as a centered overlay.
func buildFilterModalLayer(m Model) *lipgloss.Layer {
	lines := []string{
		modalTitleStyle.Render("⌕ FILTER NODES"),
		"",
		m.filterIn.View(),
		"",
		modalHintStyle.Render("vars: id · name · type · mentions · degree"),
		modalHintStyle.Render(`e.g. type == "person" && mentions > 2`),
		modalHintStyle.Render(`     contains(name, "graph")`),
	}
	if m.filterErr != "" {
		lines = append(lines, "", modalErrStyle.Render("✗ "+m.filterErr))
	}
	lines = append(lines, "", modalHintStyle.Render("enter apply · esc cancel · empty clears"))

	return tealayout.ModalLayer(strings.Join(lines, "\n"), m.Width, m.Height, modalBoxStyle)
}

// buildHelpModalLayer is the full key reference shown on '?'.
func buildHelpModalLayer(termW, termH int) *lipgloss.Layer {
	lines := []string{
		modalTitleStyle.Render("TANGLE · terminal knowledge graph"),
		"",
		modalTextStyle.Render("mouse    drag background to pan, drag a node to move it"),
		modalTextStyle.Render("         wheel zooms, click selects"),
		modalTextStyle.Render("+ / -    zoom in / out"),
		modalTextStyle.Render("arrows   pan the camera"),
		modalTextStyle.Render("r        reset the view and replay the cooldown"),
		modalTextStyle.Render("space    reheat the layout"),
		modalTextStyle.Render("/        filter nodes with an expression"),
		modalTextStyle.Render("l        toggle the type legend"),
		modalTextStyle.Render("esc      close · deselect · clear filter"),
		modalTextStyle.Render("q        quit"),
		"",
		modalHintStyle.Render("? or esc closes this help"),
	}
	return tealayout.ModalLayer(strings.Join(lines, "\n"), termW, termH, modalBoxStyle)
}
