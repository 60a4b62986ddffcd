package tangleui

import (
	"image"
	"math"

	"charm.land/lipgloss/v2"

	"github.com/tangleview/tangle/pkg/cellbuf"
	"github.com/tangleview/tangle/pkg/drawutil"
	"github.com/tangleview/tangle/pkg/forcesim"
)

// buildCanvasLayer renders the whole graph scene into a cell buffer and
// wraps it as the canvas region's layer. Draw order is grid, edges,
// discs, labels; later passes overwrite earlier ones.
func buildCanvasLayer(m Model, region image.Rectangle) *lipgloss.Layer {
	w, h := region.Dx(), region.Dy()
	if w <= 0 || h <= 0 {
		return lipgloss.NewLayer("").X(region.Min.X).Y(region.Min.Y).Z(0).ID("canvas")
	}

	buf := cellbuf.New(w, h, styleBG)
	drawBackdrop(buf, m)
	drawEdges(buf, m)
	drawNodes(buf, m)
	drawLabels(buf, m)
	drawRelations(buf, m)

	return lipgloss.NewLayer(buf.Render(bufStyles)).
		X(region.Min.X).Y(region.Min.Y).Z(0).ID("canvas")
}

// drawBackdrop scrolls a dot grid with the pan so dragging reads as
// camera movement even when few nodes are on screen.
func drawBackdrop(buf *cellbuf.Buffer, m Model) {
	camX := -int(math.Round(m.Viewport.PanX / cellPxW))
	camY := -int(math.Round(m.Viewport.PanY / cellPxH))
	drawutil.DrawGrid(buf, camX, camY, 6, 3, styleGrid)
}

// cellOf projects a simulation point through the viewport into buffer
// cell coordinates.
func (m Model) cellOf(p forcesim.Vec) image.Point {
	px, py := m.Viewport.Apply(p.X, p.Y)
	return image.Pt(int(math.Floor(px/cellPxW)), int(math.Floor(py/cellPxH)))
}

// cellRadii converts a logical-pixel radius into cell radii under the
// current zoom. The horizontal radius never drops below one cell so a
// node always has a visible disc.
func (m Model) cellRadii(r float64) (rx, ry int) {
	z := m.Viewport.Zoom
	rx = int(math.Round(r * z / cellPxW))
	ry = int(math.Round(r * z / cellPxH))
	if rx < 1 {
		rx = 1
	}
	return rx, ry
}

func drawEdges(buf *cellbuf.Buffer, m Model) {
	for _, e := range m.Index.Edges() {
		src := m.Sim.Node(e.Source)
		tgt := m.Sim.Node(e.Target)
		if src == nil || tgt == nil {
			continue
		}

		sc := m.cellOf(src.Pos)
		tc := m.cellOf(tgt.Pos)

		// Edges with a filtered-out endpoint stay as faint dashes so the
		// visible part of the graph keeps its context.
		if !m.visible(e.Source) || !m.visible(e.Target) {
			drawutil.DrawDashedLine(buf, sc.X, sc.Y, tc.X, tc.Y, styleEdgeDim)
			continue
		}

		srcMeta, _ := m.Index.Node(e.Source)
		tgtMeta, _ := m.Index.Node(e.Target)
		rxS, ryS := m.cellRadii(radiusFor(srcMeta.Mentions))
		rxT, ryT := m.cellRadii(radiusFor(tgtMeta.Mentions))

		// Trim the line to the disc rims so arrowheads sit on the target
		// surface instead of under it.
		a := drawutil.RimExit(sc.X, sc.Y, rxS, ryS, tc)
		b := drawutil.RimExit(tc.X, tc.Y, rxT, ryT, sc)

		es := styleEdge
		if m.SelectedID != "" && (e.Source == m.SelectedID || e.Target == m.SelectedID) {
			es = styleEdgeHot
		}
		drawutil.DrawArrowLine(buf, a.X, a.Y, b.X, b.Y, es, es)
	}
}

func drawNodes(buf *cellbuf.Buffer, m Model) {
	for _, n := range m.Sim.Nodes() {
		meta, ok := m.Index.Node(n.ID)
		if !ok {
			continue
		}

		pos := m.cellOf(n.Pos)
		rx, ry := m.cellRadii(radiusFor(meta.Mentions))

		// Filtered-out nodes dim to a hollow outline, unlabeled and
		// unhittable, so the match set pops without losing the shape of
		// the graph.
		if !m.visible(n.ID) {
			drawutil.DrawRing(buf, pos.X, pos.Y, rx, ry, '·', styleEdgeDim)
			continue
		}

		body, glow := stylesForType(meta.Type)
		drawutil.DrawRing(buf, pos.X, pos.Y, rx+1, ry+1, '░', glow)
		drawutil.FillDisc(buf, pos.X, pos.Y, rx, ry, '█', body)
		if n.ID == m.SelectedID {
			drawutil.DrawRing(buf, pos.X, pos.Y, rx+1, ry+1, '◦', styleRingSel)
		}
	}
}

// drawLabels runs after every disc is down so names never get chewed by
// a neighbouring node body.
func drawLabels(buf *cellbuf.Buffer, m Model) {
	for _, n := range m.Sim.Nodes() {
		if !m.visible(n.ID) {
			continue
		}
		meta, ok := m.Index.Node(n.ID)
		if !ok {
			continue
		}

		pos := m.cellOf(n.Pos)
		_, ry := m.cellRadii(radiusFor(meta.Mentions))

		label := drawutil.Ellipsize(meta.Name, m.labelBudget)
		ls := styleLabel
		if n.ID == m.SelectedID {
			ls = styleLabelSel
		}
		buf.SetString(pos.X-len([]rune(label))/2, pos.Y+ry+1, label, ls)
	}
}

// drawRelations annotates the selected node's edges with their relation
// at the midpoint, above for mostly horizontal runs and beside for
// mostly vertical ones.
func drawRelations(buf *cellbuf.Buffer, m Model) {
	if m.SelectedID == "" {
		return
	}
	for _, e := range m.Index.Neighbors(m.SelectedID) {
		if e.Relation == "" || !m.visible(e.Source) || !m.visible(e.Target) {
			continue
		}
		src := m.Sim.Node(e.Source)
		tgt := m.Sim.Node(e.Target)
		if src == nil || tgt == nil {
			continue
		}

		sc := m.cellOf(src.Pos)
		tc := m.cellOf(tgt.Pos)
		mx, my := (sc.X+tc.X)/2, (sc.Y+tc.Y)/2

		if abs(tc.X-sc.X) >= abs(tc.Y-sc.Y) {
			buf.SetString(mx-len(e.Relation)/2, my-1, e.Relation, styleLabel)
		} else {
			buf.SetString(mx+1, my, e.Relation, styleLabel)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
