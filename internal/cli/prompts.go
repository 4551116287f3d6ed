package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(AnsiBlue))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(AnsiGray))
	cursorStyle  = focusedStyle
)

type PromptExitCode int

const (
	PromptCompleted PromptExitCode = 0
	PromptCancelled PromptExitCode = 1
)

type PasswordPromptOpts struct {
	Title       string
	Placeholder string

	// Value short-circuits the prompt when already known (usually from
	// a flag or an environment variable)
	Value string
}

// CreatePasswordPrompt returns a single masked-input prompt with
// submit/cancel buttons; run it with tea.NewProgram(model).Run()
func CreatePasswordPrompt(opts PasswordPromptOpts) *PasswordPromptModel {
	m := PasswordPromptModel{
		title: opts.Title,
		value: opts.Value,
	}
	if m.value != "" {
		m.isResolved = true
		return &m
	}

	input := textinput.New()
	input.Cursor.Style = cursorStyle
	input.Width = 64
	input.Placeholder = opts.Placeholder
	input.EchoMode = textinput.EchoPassword
	input.Focus()
	input.PromptStyle = focusedStyle
	input.TextStyle = focusedStyle
	m.input = input

	return &m
}

type PasswordPromptModel struct {
	input      textinput.Model
	isQuitting bool
	isResolved bool
	onButtons  bool
	onCancel   bool
	title      string
	value      string

	exitCode PromptExitCode
}

func (m PasswordPromptModel) GetExitCode() PromptExitCode {
	return m.exitCode
}

func (m PasswordPromptModel) GetValue() string {
	return m.value
}

func (m PasswordPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PasswordPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.isResolved {
		m.exitCode = PromptCompleted
		return m, tea.Quit
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.exitCode = PromptCancelled
			m.isQuitting = true
			return m, tea.Quit

		case "enter":
			if m.onButtons && m.onCancel {
				m.exitCode = PromptCancelled
				m.isQuitting = true
				return m, tea.Quit
			}
			m.value = m.input.Value()
			m.exitCode = PromptCompleted
			m.isQuitting = true
			return m, tea.Quit

		case "tab", "up", "down":
			m.onBlurOrFocus(!m.onButtons)
			return m, nil

		case "left", "right":
			if m.onButtons {
				m.onCancel = !m.onCancel
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *PasswordPromptModel) onBlurOrFocus(toButtons bool) {
	m.onButtons = toButtons
	if toButtons {
		m.input.Blur()
		m.input.PromptStyle = blurredStyle
		m.input.TextStyle = blurredStyle
		return
	}
	m.onCancel = false
	m.input.Focus()
	m.input.PromptStyle = focusedStyle
	m.input.TextStyle = focusedStyle
}

func (m PasswordPromptModel) View() string {
	if m.isResolved {
		return ""
	}

	var b strings.Builder

	if m.title != "" {
		fmt.Fprintf(&b, "%s\n\n", m.title)
	}

	b.WriteString(m.input.View())

	if !m.isQuitting {
		fmt.Fprintf(&b, "\n\n%s\t%s\n",
			renderPromptButton("Submit", m.onButtons && !m.onCancel),
			renderPromptButton("Cancel / Ctrl + C", m.onButtons && m.onCancel),
		)
	}
	fmt.Fprintf(&b, "\n")

	return b.String()
}

func renderPromptButton(label string, isSelected bool) string {
	if isSelected {
		return focusedStyle.Render(fmt.Sprintf("[ %s ]", label))
	}
	return fmt.Sprintf("[ %s ]", blurredStyle.Render(label))
}
