package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// terminalModel is the secondary view the control opens. The real session
// content is a collaborator concern; this renders a scrollable placeholder
// until one is attached.
type terminalModel struct {
	viewport viewport.Model
	theme    Theme
	ready    bool
}

func newTerminalModel(theme Theme) terminalModel {
	return terminalModel{theme: theme}
}

func (t *terminalModel) setSize(width, height int) {
	// Reserve one line for the title and one for the footer.
	bodyHeight := height - 2
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	if !t.ready {
		t.viewport = viewport.New(width, bodyHeight)
		t.viewport.SetContent(placeholderContent())
		t.ready = true
		return
	}
	t.viewport.Width = width
	t.viewport.Height = bodyHeight
}

func (t *terminalModel) setTheme(theme Theme) {
	t.theme = theme
}

func (t terminalModel) Update(msg tea.Msg) (terminalModel, tea.Cmd) {
	var cmd tea.Cmd
	t.viewport, cmd = t.viewport.Update(msg)
	return t, cmd
}

func (t terminalModel) View() string {
	title := t.theme.Title.Render("terminal")
	footer := t.theme.Hint.Render("esc to return to the workspace")
	return lipgloss.JoinVertical(lipgloss.Left, title, t.viewport.View(), footer)
}

func placeholderContent() string {
	lines := []string{
		"",
		"  No session attached yet.",
		"",
		"  termfab hands this view over to whatever shell runner the",
		"  embedding workspace provides.",
	}
	return strings.Join(lines, "\n")
}
