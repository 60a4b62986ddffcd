package tangleui

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/tangleview/tangle/internal/nodequery"
	"github.com/tangleview/tangle/internal/source"
	"github.com/tangleview/tangle/pkg/forcesim"
	"github.com/tangleview/tangle/pkg/knowledge"
	"github.com/tangleview/tangle/pkg/viewport"
)

// A terminal cell stands in for an 8x16 block of logical pixels, roughly
// the aspect most terminals render. The simulation and the viewport work
// in logical pixels; mouse cells are converted at the boundary and cell
// coordinates fall out again only when drawing.
const (
	cellPxW = 8
	cellPxH = 16
)

type dragMode int

const (
	dragNone dragMode = iota
	dragPan
	dragNode
)

type panelMode int

const (
	panelDetails panelMode = iota
	panelHelp
)

// Options configures the viewer.
type Options struct {
	Snapshot knowledge.Snapshot
	// Source is the display name of the backing source, empty for the
	// built-in demo graph.
	Source      string
	Watcher     *source.Watcher
	SimConfig   forcesim.Config
	FPS         int
	LabelBudget int
	Logger      *zap.Logger
}

// Model is the full state of the graph viewer.
type Model struct {
	Width  int
	Height int

	Index   *knowledge.Index
	Dropped []knowledge.DroppedEdge

	Sim      *forcesim.Sim
	Viewport *viewport.Viewport
	Driver   *forcesim.Driver

	SelectedID string
	drag       dragMode
	dragNodeID string

	// Visible is nil when no filter is active; otherwise only ids mapped
	// to true are drawn solid and hittable.
	Filter     *nodequery.Filter
	Visible    map[string]bool
	FilterOpen bool
	filterIn   textinput.Model
	filterErr  string

	ShowLegend bool
	HelpOpen   bool

	// panelMode selects what the right panel shows: selection details or
	// the expanded key reference.
	panelMode panelMode

	source      string
	watcher     *source.Watcher
	labelBudget int
	frameEvery  time.Duration
	logger      *zap.Logger

	status     string
	statusErr  bool
	statusLeft int
}

// NewModel builds the initial model around a snapshot. The snapshot is
// sanitized here, so callers can hand over raw source data.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	budget := opts.LabelBudget
	if budget <= 0 {
		budget = 14
	}
	src := opts.Source
	if src == "" {
		src = "demo graph"
	}

	sim := forcesim.NewSim(opts.SimConfig)
	view := viewport.New()
	// Resetting the camera also replays the cooldown.
	view.OnReset = sim.ResetClock

	m := Model{
		Sim:         sim,
		Viewport:    view,
		Driver:      forcesim.NewDriver(sim, nil),
		ShowLegend:  true,
		source:      src,
		watcher:     opts.Watcher,
		labelBudget: budget,
		frameEvery:  time.Second / time.Duration(fps),
		logger:      logger,
	}
	m.applySnapshot(opts.Snapshot)
	if len(m.Dropped) > 0 {
		m.setError(fmt.Sprintf("%d dangling edges dropped", len(m.Dropped)))
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.frameCmd(), m.waitForSnapshot())
}

// applySnapshot swaps in a new graph. Surviving nodes keep their layout
// positions, the selection survives when its node does, and an active
// filter is re-evaluated against the new data.
func (m *Model) applySnapshot(snap knowledge.Snapshot) {
	clean, dropped := knowledge.Sanitize(snap)
	m.Index = knowledge.NewIndex(clean)
	m.Dropped = dropped

	pairs := make([]forcesim.EdgePair, len(clean.Edges))
	for i, e := range clean.Edges {
		pairs[i] = forcesim.EdgePair{Source: e.Source, Target: e.Target}
	}
	m.Sim.SetGraph(clean.NodeIDs(), pairs)

	m.refreshVisible()
	if m.SelectedID != "" && (!m.Index.Has(m.SelectedID) || !m.visible(m.SelectedID)) {
		m.SelectedID = ""
		m.dragNodeID = ""
		m.drag = dragNone
	}

	if len(dropped) > 0 {
		m.logger.Warn("dropped dangling edges", zap.Int("count", len(dropped)))
	}
}

// refreshVisible re-evaluates the active filter against the current
// graph. A filter that errors on the new data is cleared rather than
// left half-applied.
func (m *Model) refreshVisible() {
	if m.Filter == nil {
		m.Visible = nil
		return
	}
	vis, err := m.Filter.Visible(m.Index)
	if err != nil {
		m.logger.Warn("filter no longer evaluates, clearing", zap.Error(err))
		m.setError("filter cleared: " + err.Error())
		m.Filter = nil
		m.Visible = nil
		return
	}
	m.Visible = vis
}

// visible reports whether a node passes the active filter.
func (m Model) visible(id string) bool {
	return m.Visible == nil || m.Visible[id]
}

// setStatus shows a transient footer message for about three seconds.
func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
	m.statusLeft = int(3 * time.Second / m.frameEvery)
}

func (m *Model) setError(s string) {
	m.setStatus(s)
	m.statusErr = true
}
