package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/termfab/internal/config"
	"github.com/bnema/termfab/internal/geometry"
	"github.com/bnema/termfab/internal/gesture"
	"github.com/bnema/termfab/internal/logging"
	"github.com/bnema/termfab/internal/store"
)

// InteractionState is the control's current interaction mode. Exactly one
// holds at any time.
type InteractionState int

const (
	StateIdle InteractionState = iota
	StateHovered
	StateDragging
	StateActivating
)

// positionLoadedMsg carries the persisted position read at startup.
type positionLoadedMsg struct {
	pos geometry.Point
	ok  bool
}

// positionSavedMsg reports the outcome of a position write.
type positionSavedMsg struct {
	err error
}

// Control is the floating launcher button: it owns the current position and
// interaction state, classifies pointer gestures, and invokes the supplied
// activation handler on click. The workspace routes events to it and reads
// its display position back out.
type Control struct {
	ctx        context.Context
	cfg        config.ControlConfig
	theme      Theme
	store      store.PositionStore
	onActivate func() tea.Cmd

	// position is the committed position; the zero value means "anchor to
	// the bottom-right corner". dragPos is the live position while a drag
	// session is active.
	position geometry.Point
	dragPos  geometry.Point
	size     geometry.Size
	viewport geometry.Size

	state      InteractionState
	focused    bool
	captured   bool
	classifier gesture.Classifier
}

// NewControl creates the floating control. onActivate is invoked exactly
// once per discrete activation (pointer click or keyboard).
func NewControl(ctx context.Context, cfg config.ControlConfig, theme Theme, st store.PositionStore, onActivate func() tea.Cmd) *Control {
	c := &Control{
		ctx:        ctx,
		cfg:        cfg,
		theme:      theme,
		store:      st,
		onActivate: onActivate,
	}
	c.measure()
	return c
}

// Init returns the command that restores the persisted position.
func (c *Control) Init() tea.Cmd {
	return c.loadPosition
}

// loadPosition reads the persisted position. Failures fall back to the
// default anchor; positioning must never block activation.
func (c *Control) loadPosition() tea.Msg {
	log := logging.FromContext(c.ctx)

	pos, ok, err := c.store.Load(c.ctx)
	if err != nil {
		log.Warn().Err(err).Msg("could not restore control position, using default anchor")
		return positionLoadedMsg{}
	}
	return positionLoadedMsg{pos: pos, ok: ok}
}

// Update handles the control's own messages.
func (c *Control) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case positionLoadedMsg:
		if msg.ok {
			c.position = msg.pos
		}
	case positionSavedMsg:
		if msg.err != nil {
			// Best effort: the control keeps its in-memory position.
			logging.FromContext(c.ctx).Warn().Err(msg.err).Msg("failed to persist control position")
		}
	}
	return nil
}

// SetViewport updates the area available to the control.
func (c *Control) SetViewport(viewport geometry.Size) {
	c.viewport = viewport
}

// SetConfig applies a live config change and re-measures the button.
func (c *Control) SetConfig(cfg config.ControlConfig, theme Theme) {
	c.cfg = cfg
	c.theme = theme
	c.measure()
}

// EffectivePosition resolves where the control currently sits: the live
// drag position while dragging, the default anchor while the sentinel
// holds, and the committed position (clamped to the viewport) otherwise.
func (c *Control) EffectivePosition() geometry.Point {
	if c.state == StateDragging {
		return c.dragPos
	}
	if c.position.IsZero() {
		return geometry.Anchored(c.size, c.viewport, c.cfg.MarginX, c.cfg.MarginY)
	}
	return geometry.Clamp(c.position, c.size, c.viewport)
}

// Bounds returns the control's current hit area.
func (c *Control) Bounds() geometry.Rect {
	return geometry.Rect{Min: c.EffectivePosition(), Size: c.size}
}

// HandlePress starts a drag session when the primary button goes down over
// the control. It reports whether the control acquired pointer capture.
func (c *Control) HandlePress(p geometry.Point, button gesture.Button) bool {
	if !c.Bounds().Contains(p) {
		return false
	}
	if !c.classifier.Press(button, p, c.EffectivePosition()) {
		return false
	}
	c.dragPos = c.EffectivePosition()
	c.state = StateDragging
	c.captured = true
	return true
}

// HandleDragMotion updates the live position from pointer motion. This is
// the high-frequency path: it only clamps and repositions, never persists
// and never navigates.
func (c *Control) HandleDragMotion(p geometry.Point) {
	if !c.captured {
		return
	}
	if proposed, ok := c.classifier.Propose(p); ok {
		c.dragPos = geometry.Clamp(proposed, c.size, c.viewport)
	}
}

// HandleHover tracks pointer presence while no drag is active.
func (c *Control) HandleHover(p geometry.Point) {
	if c.state == StateDragging || c.state == StateActivating {
		return
	}
	if c.Bounds().Contains(p) {
		c.state = StateHovered
	} else {
		c.state = StateIdle
	}
}

// HandleRelease ends the drag session and classifies it. A drag commits and
// persists the final position; a click invokes navigation instead. Capture
// is released on every path.
func (c *Control) HandleRelease(p geometry.Point) tea.Cmd {
	if !c.captured {
		return nil
	}
	c.captured = false

	final := c.dragPos
	switch c.classifier.Release(final) {
	case gesture.ClassificationClick:
		c.state = StateActivating
		return c.onActivate()
	case gesture.ClassificationDrag:
		c.position = final
		c.state = StateHovered
		return c.savePosition(final)
	}
	c.state = StateIdle
	return nil
}

// Activate is the keyboard activation path. It bypasses gesture
// classification entirely: there is no displacement to measure, so it is
// always a click and never persists.
func (c *Control) Activate() tea.Cmd {
	c.state = StateActivating
	return c.onActivate()
}

// Teardown abandons any in-progress drag and releases capture. Called when
// the control leaves the screen mid-interaction; a leaked capture would
// corrupt later pointer handling.
func (c *Control) Teardown() {
	if c.captured {
		c.classifier.Cancel()
		c.captured = false
	}
	c.state = StateIdle
}

// Captured reports whether the control holds pointer capture. The
// workspace routes motion and release events to the control only while
// this is true.
func (c *Control) Captured() bool {
	return c.captured
}

// Focus gives the control keyboard focus.
func (c *Control) Focus() { c.focused = true }

// Blur removes keyboard focus.
func (c *Control) Blur() { c.focused = false }

// Focused reports whether the control has keyboard focus.
func (c *Control) Focused() bool { return c.focused }

// State returns the current interaction state.
func (c *Control) State() InteractionState { return c.state }

// Label returns the human-readable activation label.
func (c *Control) Label() string { return c.cfg.Label }

// Hint returns the status text for the current state: a usage hint while
// idle or hovered, a distinct one while repositioning.
func (c *Control) Hint() string {
	if c.state == StateDragging {
		return c.cfg.DragHint
	}
	return c.cfg.IdleHint
}

// View renders the button.
func (c *Control) View() string {
	return c.style().Render(c.cfg.Label)
}

func (c *Control) style() lipgloss.Style {
	switch {
	case c.state == StateDragging:
		return c.theme.ButtonDrag
	case c.focused:
		return c.theme.ButtonFocus
	case c.state == StateHovered || c.state == StateActivating:
		return c.theme.ButtonHover
	default:
		return c.theme.ButtonIdle
	}
}

// measure records the rendered footprint used for clamping and hit tests.
// All button styles share the same frame size, so measuring the idle style
// is enough.
func (c *Control) measure() {
	view := c.theme.ButtonIdle.Render(c.cfg.Label)
	c.size = geometry.Size{W: lipgloss.Width(view), H: lipgloss.Height(view)}
}

// savePosition persists the final drag position once, at drag end. Write
// failures are logged and swallowed; they must not break interaction.
func (c *Control) savePosition(p geometry.Point) tea.Cmd {
	return func() tea.Msg {
		if err := c.store.Save(c.ctx, p); err != nil {
			return positionSavedMsg{err: err}
		}
		return positionSavedMsg{}
	}
}
