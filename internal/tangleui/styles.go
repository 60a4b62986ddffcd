package tangleui

import (
	"image/color"
	"math"

	"charm.land/lipgloss/v2"

	"github.com/tangleview/tangle/pkg/cellbuf"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

// Style keys for the canvas buffer.
const (
	styleBG cellbuf.StyleKey = iota
	styleGrid
	styleEdge
	styleEdgeDim
	styleEdgeHot
	styleLabel
	styleLabelSel
	styleRingSel
	stylePerson
	stylePersonGlow
	styleProject
	styleProjectGlow
	styleTerm
	styleTermGlow
	styleNote
	styleNoteGlow
	styleOther
	styleOtherGlow
)

// Palette. Dark green-on-black CRT look, one accent per node type.
var (
	colorBG      = c("#080e0b")
	toolbarColor = c("#00ffc8")
	footerColor  = c("#668877")
	errorColor   = c("#ff6655")

	bufStyles = map[cellbuf.StyleKey]lipgloss.Style{
		styleBG:          lipgloss.NewStyle().Foreground(c("#1a3a2a")).Background(colorBG),
		styleGrid:        lipgloss.NewStyle().Foreground(c("#0e2e20")).Background(colorBG),
		styleEdge:        lipgloss.NewStyle().Foreground(c("#1a6a4a")).Background(colorBG),
		styleEdgeDim:     lipgloss.NewStyle().Foreground(c("#123524")).Background(colorBG),
		styleEdgeHot:     lipgloss.NewStyle().Foreground(c("#00ffc8")).Background(colorBG).Bold(true),
		styleLabel:       lipgloss.NewStyle().Foreground(c("#77bba4")).Background(colorBG),
		styleLabelSel:    lipgloss.NewStyle().Foreground(c("#00ffee")).Background(colorBG).Bold(true),
		styleRingSel:     lipgloss.NewStyle().Foreground(c("#00ffee")).Background(colorBG).Bold(true),
		stylePerson:      lipgloss.NewStyle().Foreground(c("#00ffc8")).Background(colorBG),
		stylePersonGlow:  lipgloss.NewStyle().Foreground(c("#0a4a3c")).Background(colorBG),
		styleProject:     lipgloss.NewStyle().Foreground(c("#ffcc66")).Background(colorBG),
		styleProjectGlow: lipgloss.NewStyle().Foreground(c("#4a3a14")).Background(colorBG),
		styleTerm:        lipgloss.NewStyle().Foreground(c("#66ddee")).Background(colorBG),
		styleTermGlow:    lipgloss.NewStyle().Foreground(c("#0a3a44")).Background(colorBG),
		styleNote:        lipgloss.NewStyle().Foreground(c("#88ffbb")).Background(colorBG),
		styleNoteGlow:    lipgloss.NewStyle().Foreground(c("#14522c")).Background(colorBG),
		styleOther:       lipgloss.NewStyle().Foreground(c("#8899aa")).Background(colorBG),
		styleOtherGlow:   lipgloss.NewStyle().Foreground(c("#2a3440")).Background(colorBG),
	}
)

// typeStyles maps a node type to the buffer styles for its disc and the
// glow ring around it.
var typeStyles = map[string]struct{ body, glow cellbuf.StyleKey }{
	"person":  {stylePerson, stylePersonGlow},
	"project": {styleProject, styleProjectGlow},
	"term":    {styleTerm, styleTermGlow},
	"note":    {styleNote, styleNoteGlow},
}

// typeColors carries the same accents as lipgloss colors for the legend
// swatches.
var typeColors = map[string]color.Color{
	"person":  c("#00ffc8"),
	"project": c("#ffcc66"),
	"term":    c("#66ddee"),
	"note":    c("#88ffbb"),
}

func stylesForType(t string) (body, glow cellbuf.StyleKey) {
	if s, ok := typeStyles[t]; ok {
		return s.body, s.glow
	}
	return styleOther, styleOtherGlow
}

func colorForType(t string) color.Color {
	if col, ok := typeColors[t]; ok {
		return col
	}
	return c("#8899aa")
}

// radiusFor returns a node's marker radius in logical pixels. Radius
// grows with the square root of the mention count so heavily mentioned
// hubs stand out without swallowing the canvas.
func radiusFor(mentions int) float64 {
	if mentions < 0 {
		mentions = 0
	}
	r := 8 + 2*math.Sqrt(float64(mentions))
	if r > 22 {
		r = 22
	}
	return r
}
