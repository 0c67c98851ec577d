package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/termfab/internal/config"
	"github.com/bnema/termfab/internal/geometry"
	"github.com/bnema/termfab/internal/gesture"
	"github.com/bnema/termfab/internal/logging"
)

// spyStore records saves and serves a canned load result.
type spyStore struct {
	saved   []geometry.Point
	loadPos geometry.Point
	loadOK  bool
	loadErr error
	saveErr error
}

func (s *spyStore) Load(context.Context) (geometry.Point, bool, error) {
	return s.loadPos, s.loadOK, s.loadErr
}

func (s *spyStore) Save(_ context.Context, p geometry.Point) error {
	s.saved = append(s.saved, p)
	return s.saveErr
}

func (s *spyStore) Clear(context.Context) error {
	s.saved = nil
	return nil
}

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// newTestControl builds a control with an 80x23 viewport and an activation
// counter in place of the real navigation target.
func newTestControl(st *spyStore) (*Control, *int) {
	cfg := config.DefaultConfig()
	activations := 0
	c := NewControl(testContext(), cfg.Control, NewTheme(cfg.Theme), st, func() tea.Cmd {
		activations++
		return nil
	})
	c.SetViewport(geometry.Size{W: 80, H: 23})
	return c, &activations
}

// drain runs cmds until no messages remain, feeding each message back into
// the control.
func drain(c *Control, cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		cmd = c.Update(msg)
	}
}

func TestControl_DefaultAnchorBottomRight(t *testing.T) {
	c, _ := newTestControl(&spyStore{})

	pos := c.EffectivePosition()
	assert.Equal(t, 80-c.size.W-2, pos.X)
	assert.Equal(t, 23-c.size.H-1, pos.Y)
}

func TestControl_AdoptsPersistedPosition(t *testing.T) {
	c, _ := newTestControl(&spyStore{loadPos: geometry.Point{X: 5, Y: 7}, loadOK: true})

	drain(c, c.Init())

	assert.Equal(t, geometry.Point{X: 5, Y: 7}, c.EffectivePosition())
}

func TestControl_AbsentPositionKeepsDefaultAnchor(t *testing.T) {
	c, _ := newTestControl(&spyStore{})
	anchor := c.EffectivePosition()

	drain(c, c.Init())

	assert.Equal(t, anchor, c.EffectivePosition())
}

func TestControl_LoadFailureFallsBackToDefaultAnchor(t *testing.T) {
	c, _ := newTestControl(&spyStore{loadErr: errors.New("disk on fire")})
	anchor := c.EffectivePosition()

	drain(c, c.Init())

	assert.Equal(t, anchor, c.EffectivePosition())
}

func TestControl_ClickWithoutMovement(t *testing.T) {
	st := &spyStore{}
	c, activations := newTestControl(st)
	pos := c.EffectivePosition()
	inside := geometry.Point{X: pos.X + 1, Y: pos.Y + 1}

	require.True(t, c.HandlePress(inside, gesture.ButtonPrimary))
	drain(c, c.HandleRelease(inside))

	assert.Equal(t, 1, *activations)
	assert.Empty(t, st.saved)
	assert.Equal(t, StateActivating, c.State())
}

func TestControl_DragWithMovement(t *testing.T) {
	st := &spyStore{}
	c, activations := newTestControl(st)
	pos := c.EffectivePosition()
	inside := geometry.Point{X: pos.X + 1, Y: pos.Y + 1}

	require.True(t, c.HandlePress(inside, gesture.ButtonPrimary))
	assert.Equal(t, StateDragging, c.State())

	c.HandleDragMotion(geometry.Point{X: 30, Y: 10})
	want := geometry.Point{X: 29, Y: 9} // anchor offset (1,1) preserved
	assert.Equal(t, want, c.EffectivePosition())

	drain(c, c.HandleRelease(geometry.Point{X: 30, Y: 10}))

	assert.Equal(t, 0, *activations)
	assert.Equal(t, []geometry.Point{want}, st.saved)
	assert.Equal(t, want, c.EffectivePosition())
	assert.Equal(t, StateHovered, c.State())
}

func TestControl_MotionNeverPersists(t *testing.T) {
	st := &spyStore{}
	c, _ := newTestControl(st)
	pos := c.EffectivePosition()

	require.True(t, c.HandlePress(pos, gesture.ButtonPrimary))
	for x := 0; x < 50; x++ {
		c.HandleDragMotion(geometry.Point{X: x, Y: 10})
	}

	assert.Empty(t, st.saved)
}

func TestControl_OutOfBoundsDragClampsToBoundary(t *testing.T) {
	st := &spyStore{}
	c, _ := newTestControl(st)
	pos := c.EffectivePosition()

	require.True(t, c.HandlePress(pos, gesture.ButtonPrimary))
	c.HandleDragMotion(geometry.Point{X: 500, Y: 300})
	drain(c, c.HandleRelease(geometry.Point{X: 500, Y: 300}))

	limit := geometry.Point{X: 80 - c.size.W, Y: 23 - c.size.H}
	require.Len(t, st.saved, 1)
	assert.Equal(t, limit, st.saved[0])
}

func TestControl_SecondaryButtonIgnored(t *testing.T) {
	st := &spyStore{}
	c, activations := newTestControl(st)
	pos := c.EffectivePosition()

	assert.False(t, c.HandlePress(pos, gesture.ButtonSecondary))
	assert.False(t, c.Captured())
	assert.Equal(t, 0, *activations)
}

func TestControl_PressOutsideBoundsIgnored(t *testing.T) {
	c, _ := newTestControl(&spyStore{})

	assert.False(t, c.HandlePress(geometry.Point{X: 0, Y: 0}, gesture.ButtonPrimary))
	assert.False(t, c.Captured())
}

func TestControl_KeyboardActivation(t *testing.T) {
	st := &spyStore{}
	c, activations := newTestControl(st)

	c.Focus()
	drain(c, c.Activate())

	assert.Equal(t, 1, *activations)
	assert.Empty(t, st.saved)
}

func TestControl_SaveFailureIsSwallowed(t *testing.T) {
	st := &spyStore{saveErr: errors.New("quota exceeded")}
	c, _ := newTestControl(st)
	pos := c.EffectivePosition()

	require.True(t, c.HandlePress(pos, gesture.ButtonPrimary))
	c.HandleDragMotion(geometry.Point{X: 10, Y: 10})

	// Draining runs the save command and routes the failure back through
	// Update; nothing may panic and the control keeps its position.
	drain(c, c.HandleRelease(geometry.Point{X: 10, Y: 10}))
	assert.Len(t, st.saved, 1)
	assert.Equal(t, st.saved[0], c.EffectivePosition())
}

func TestControl_ReleaseWithoutCaptureIsNoOp(t *testing.T) {
	st := &spyStore{}
	c, activations := newTestControl(st)

	assert.Nil(t, c.HandleRelease(geometry.Point{X: 5, Y: 5}))
	assert.Equal(t, 0, *activations)
	assert.Empty(t, st.saved)
}

func TestControl_TeardownMidDragReleasesCapture(t *testing.T) {
	st := &spyStore{}
	c, activations := newTestControl(st)
	pos := c.EffectivePosition()

	require.True(t, c.HandlePress(pos, gesture.ButtonPrimary))
	c.HandleDragMotion(geometry.Point{X: 20, Y: 10})
	c.Teardown()

	assert.False(t, c.Captured())

	// Later events must not resurrect the session.
	before := c.EffectivePosition()
	c.HandleDragMotion(geometry.Point{X: 60, Y: 20})
	assert.Equal(t, before, c.EffectivePosition())
	assert.Nil(t, c.HandleRelease(geometry.Point{X: 60, Y: 20}))
	assert.Equal(t, 0, *activations)
	assert.Empty(t, st.saved)
}

func TestControl_HintSwitchesWhileDragging(t *testing.T) {
	cfg := config.DefaultConfig()
	c, _ := newTestControl(&spyStore{})
	pos := c.EffectivePosition()

	assert.Equal(t, cfg.Control.IdleHint, c.Hint())

	require.True(t, c.HandlePress(pos, gesture.ButtonPrimary))
	assert.Equal(t, cfg.Control.DragHint, c.Hint())

	drain(c, c.HandleRelease(pos))
	assert.Equal(t, cfg.Control.IdleHint, c.Hint())
}

func TestControl_HoverTracking(t *testing.T) {
	c, _ := newTestControl(&spyStore{})
	pos := c.EffectivePosition()

	c.HandleHover(geometry.Point{X: pos.X + 1, Y: pos.Y + 1})
	assert.Equal(t, StateHovered, c.State())

	c.HandleHover(geometry.Point{X: 0, Y: 0})
	assert.Equal(t, StateIdle, c.State())
}
