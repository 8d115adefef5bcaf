package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// InputResult reports what an InputModal update did
type InputResult int

const (
	InputPending InputResult = iota
	InputSubmitted
	InputCanceled
)

// InputModal is a single-line text prompt with an optional error line
type InputModal struct {
	visible bool
	title   string
	errText string
	input   textinput.Model
}

// NewInputModal creates a new input modal
func NewInputModal() InputModal {
	ti := textinput.New()
	ti.CharLimit = 120
	ti.Width = 40
	ti.Prompt = "> "
	ti.PromptStyle = styles.AccentStyle
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle

	return InputModal{
		input: ti,
	}
}

// Show displays the modal with a title and placeholder, clearing any input
func (m *InputModal) Show(title, placeholder string) {
	m.visible = true
	m.title = title
	m.errText = ""
	m.input.Placeholder = placeholder
	m.input.SetValue("")
	m.input.Focus()
}

// Reject keeps the modal open with an error and clears the input
func (m *InputModal) Reject(errText string) {
	m.errText = errText
	m.input.SetValue("")
	m.input.Focus()
}

// Hide dismisses the modal
func (m *InputModal) Hide() {
	m.visible = false
	m.input.Blur()
}

// IsVisible returns whether the modal is shown
func (m InputModal) IsVisible() bool {
	return m.visible
}

// Value returns the current input value
func (m InputModal) Value() string {
	return m.input.Value()
}

// Update handles input events
func (m InputModal) Update(msg tea.Msg) (InputModal, tea.Cmd, InputResult) {
	if !m.visible {
		return m, nil, InputPending
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, PromptKeys.Submit):
			return m, nil, InputSubmitted
		case key.Matches(keyMsg, PromptKeys.Cancel):
			m.Hide()
			return m, nil, InputCanceled
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd, InputPending
}

// View renders the input modal
func (m InputModal) View() string {
	if !m.visible {
		return ""
	}

	lines := []string{
		styles.ModalTitleStyle.Render(m.title),
		m.input.View(),
	}
	if m.errText != "" {
		lines = append(lines, "", styles.ErrorStyle.Render(m.errText))
	}
	lines = append(lines, "", styles.RenderHelp([2]string{"enter", "submit"}, [2]string{"esc", "cancel"}))

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
