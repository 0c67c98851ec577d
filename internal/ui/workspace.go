// Package ui implements the termfab workspace: a terminal-sized surface
// with a floating, draggable launcher button that opens the terminal view.
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/termfab/internal/config"
	"github.com/bnema/termfab/internal/geometry"
	"github.com/bnema/termfab/internal/gesture"
	"github.com/bnema/termfab/internal/store"
)

// viewMode selects which screen the workspace shows.
type viewMode int

const (
	modeWorkspace viewMode = iota
	modeTerminal
)

// openTerminalMsg is the navigation signal emitted on activation.
type openTerminalMsg struct{}

// ConfigChangedMsg carries a reloaded configuration into the running
// program.
type ConfigChangedMsg struct {
	Config *config.Config
}

// Workspace is the root bubbletea model. It owns pointer capture routing:
// motion and release events reach the control only while the control holds
// capture, and capture is released on every exit path.
type Workspace struct {
	ctx     context.Context
	cfg     *config.Config
	theme   Theme
	control *Control

	terminal terminalModel
	keys     keyMap
	help     help.Model

	mode   viewMode
	width  int
	height int
}

// NewWorkspace builds the workspace around the given position store.
func NewWorkspace(ctx context.Context, cfg *config.Config, st store.PositionStore) *Workspace {
	theme := NewTheme(cfg.Theme)

	w := &Workspace{
		ctx:      ctx,
		cfg:      cfg,
		theme:    theme,
		terminal: newTerminalModel(theme),
		keys:     defaultKeyMap(),
		help:     help.New(),
	}
	w.control = NewControl(ctx, cfg.Control, theme, st, w.openTerminal)
	return w
}

// openTerminal is the navigation target handed to the control.
func (w *Workspace) openTerminal() tea.Cmd {
	return func() tea.Msg {
		return openTerminalMsg{}
	}
}

// Init implements tea.Model.
func (w *Workspace) Init() tea.Cmd {
	return w.control.Init()
}

// Update implements tea.Model.
func (w *Workspace) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		w.help.Width = msg.Width
		w.control.SetViewport(w.bodySize())
		w.terminal.setSize(msg.Width, msg.Height)
		return w, nil

	case ConfigChangedMsg:
		w.applyConfig(msg.Config)
		return w, nil

	case openTerminalMsg:
		// Entering the terminal tears the control down; a drag cut short
		// by navigation must still release capture.
		w.control.Teardown()
		w.mode = modeTerminal
		return w, nil

	case tea.KeyMsg:
		return w.updateKey(msg)

	case tea.MouseMsg:
		if w.mode != modeWorkspace {
			return w, nil
		}
		return w, w.updateMouse(msg)

	case positionLoadedMsg, positionSavedMsg:
		return w, w.control.Update(msg)
	}

	if w.mode == modeTerminal {
		var cmd tea.Cmd
		w.terminal, cmd = w.terminal.Update(msg)
		return w, cmd
	}
	return w, nil
}

func (w *Workspace) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if w.mode == modeTerminal {
		switch {
		case key.Matches(msg, w.keys.Back):
			w.mode = modeWorkspace
			return w, nil
		case key.Matches(msg, w.keys.Quit):
			return w, tea.Quit
		}
		var cmd tea.Cmd
		w.terminal, cmd = w.terminal.Update(msg)
		return w, cmd
	}

	switch {
	case key.Matches(msg, w.keys.Quit):
		w.control.Teardown()
		return w, tea.Quit

	case key.Matches(msg, w.keys.Focus):
		if w.control.Focused() {
			w.control.Blur()
		} else {
			w.control.Focus()
		}
		return w, nil

	case key.Matches(msg, w.keys.Activate):
		if w.control.Focused() {
			return w, w.control.Activate()
		}
	}
	return w, nil
}

// updateMouse routes pointer events. Press may hand capture to the
// control; motion and release reach the drag path only while the control
// holds capture, so a finished or torn-down drag can never keep moving
// the button.
func (w *Workspace) updateMouse(msg tea.MouseMsg) tea.Cmd {
	p := geometry.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if w.control.Captured() {
			return nil // pointer-down while already dragging is a no-op
		}
		w.control.HandlePress(p, buttonFor(msg.Button))

	case tea.MouseActionMotion:
		if w.control.Captured() {
			w.control.HandleDragMotion(p)
		} else {
			w.control.HandleHover(p)
		}

	case tea.MouseActionRelease:
		if w.control.Captured() {
			return w.control.HandleRelease(p)
		}
	}
	return nil
}

func buttonFor(b tea.MouseButton) gesture.Button {
	switch b {
	case tea.MouseButtonLeft:
		return gesture.ButtonPrimary
	case tea.MouseButtonRight:
		return gesture.ButtonSecondary
	default:
		return gesture.ButtonOther
	}
}

func (w *Workspace) applyConfig(cfg *config.Config) {
	w.cfg = cfg
	w.theme = NewTheme(cfg.Theme)
	w.control.SetConfig(cfg.Control, w.theme)
	w.terminal.setTheme(w.theme)
}

// bodySize is the viewport available to the control: the window minus the
// status bar line.
func (w *Workspace) bodySize() geometry.Size {
	h := w.height - 1
	if h < 0 {
		h = 0
	}
	return geometry.Size{W: w.width, H: h}
}

// View implements tea.Model.
func (w *Workspace) View() string {
	if w.mode == modeTerminal {
		return w.terminal.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, w.renderBody(), w.renderStatusBar())
}

// renderBody paints the workspace canvas and splices the button in at its
// display position. The canvas rows are plain spaces, so the splice is a
// straight cut around the button's rendered width.
func (w *Workspace) renderBody() string {
	body := w.bodySize()
	lines := make([]string, body.H)
	for i := range lines {
		lines[i] = strings.Repeat(" ", body.W)
	}

	pos := w.control.EffectivePosition()
	for i, buttonLine := range strings.Split(w.control.View(), "\n") {
		y := pos.Y + i
		if y < 0 || y >= len(lines) {
			continue
		}
		left := min(pos.X, body.W)
		right := body.W - left - lipgloss.Width(buttonLine)
		if right < 0 {
			right = 0
		}
		lines[y] = strings.Repeat(" ", left) + buttonLine + strings.Repeat(" ", right)
	}

	return strings.Join(lines, "\n")
}

func (w *Workspace) renderStatusBar() string {
	hint := w.theme.Hint.Render(w.control.Hint())
	helpView := w.help.View(w.keys)

	gap := w.width - lipgloss.Width(hint) - lipgloss.Width(helpView)
	if gap < 1 {
		return w.theme.StatusBar.MaxWidth(w.width).Render(hint)
	}
	return w.theme.StatusBar.Render(hint + strings.Repeat(" ", gap) + helpView)
}
