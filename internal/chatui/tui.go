// Package chatui is the interactive panel for the planning assistant.
// Typed goals go through the assistant session; generated todos land in the
// task list, conversational replies render as markdown in the transcript.
package chatui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmcli/tm/assistant"
	"github.com/tmcli/tm/internal/markdown"
	"github.com/tmcli/tm/internal/ui"
	"github.com/tmcli/tm/todo"
)

const welcomeMessage = "Tell me a goal and I'll break it into todos. Esc quits."

type statusLevel int

const (
	statusNone statusLevel = iota
	statusInfo
	statusError
)

type model struct {
	ctx     context.Context
	session *assistant.Session
	store   *todo.Store

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	width  int
	height int
	ready  bool

	status      string
	statusLevel statusLevel
}

type outcomeMsg struct {
	outcome assistant.Outcome
	err     error
}

// Run starts the chat panel and blocks until the user quits.
func Run(ctx context.Context, session *assistant.Session, store *todo.Store) error {
	if session == nil {
		return fmt.Errorf("assistant session is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	program := tea.NewProgram(newModel(ctx, session, store), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}

func newModel(ctx context.Context, session *assistant.Session, store *todo.Store) model {
	input := textinput.New()
	input.Placeholder = "Describe a goal..."
	input.CharLimit = 500
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = valueMuted

	return model{
		ctx:     ctx,
		session: session,
		store:   store,
		input:   input,
		spinner: spin,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.viewport.SetContent(m.renderTranscript())
		m.viewport.GotoBottom()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m.submit()
		}

	case spinner.TickMsg:
		if !m.session.Pending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case outcomeMsg:
		return m.handleOutcome(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) submit() (tea.Model, tea.Cmd) {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		return m, nil
	}
	if m.session.Pending() {
		m.setStatus("Still thinking about the last request", statusError)
		return m, nil
	}

	m.input.Reset()
	m.setStatus("", statusNone)

	session := m.session
	ctx := m.ctx
	submitCmd := func() tea.Msg {
		outcome, err := session.Submit(ctx, value)
		return outcomeMsg{outcome: outcome, err: err}
	}

	// Show the user turn right away; Submit appends it to the session
	// history, but the result message arrives later.
	m.viewport.SetContent(m.renderTranscript() + "\n" + m.renderTurn(userLabelStyle.Render("You"), value))
	m.viewport.GotoBottom()

	return m, tea.Batch(m.spinner.Tick, submitCmd)
}

func (m model) handleOutcome(msg outcomeMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		switch {
		case errors.Is(msg.err, assistant.ErrBusy):
			m.setStatus("Still thinking about the last request", statusError)
		case errors.Is(msg.err, assistant.ErrEmptyInput):
			// Blank turns are filtered before submit; nothing to report.
		default:
			m.setStatus(msg.err.Error(), statusError)
		}
		return m, nil
	}

	switch msg.outcome.Kind {
	case assistant.OutcomeTodos:
		m.setStatus(fmt.Sprintf("Added %d todos", len(msg.outcome.Todos)), statusInfo)
	case assistant.OutcomeError:
		m.setStatus(fmt.Sprintf("Request failed: %v", msg.outcome.Err), statusError)
	default:
		m.setStatus("", statusNone)
	}

	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
	return m, nil
}

func (m model) View() string {
	if !m.ready {
		return "Loading assistant..."
	}

	header := titleStyle.Render("tm assistant")
	progress := valueMuted.Render(ui.ProgressLine(m.store.CompletedCount(), m.store.TotalCount()))
	spacerWidth := m.width - lipgloss.Width(header) - lipgloss.Width(progress)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	headerLine := header + strings.Repeat(" ", spacerWidth) + progress

	inputLine := m.input.View()
	if m.session.Pending() {
		inputLine = m.spinner.View() + " Thinking..."
	}

	parts := []string{
		headerLine,
		paneStyle.Width(m.paneWidth()).Render(m.viewport.View()),
		inputLine,
		m.renderStatusLine(),
	}
	return strings.Join(parts, "\n")
}

func (m *model) resize() {
	paneHeight := m.height - 5
	if paneHeight < 1 {
		paneHeight = 1
	}
	contentWidth := m.paneWidth() - 4
	if contentWidth < 1 {
		contentWidth = 1
	}
	m.viewport = viewport.New(contentWidth, paneHeight)
	m.input.Width = contentWidth
}

func (m model) paneWidth() int {
	width := m.width - 2
	if width < 10 {
		width = 10
	}
	return width
}

func (m model) renderTranscript() string {
	messages := m.session.Messages()
	if len(messages) == 0 {
		return valueMuted.Render(welcomeMessage)
	}

	turns := make([]string, 0, len(messages))
	for _, message := range messages {
		if message.Role == assistant.RoleUser {
			turns = append(turns, m.renderTurn(userLabelStyle.Render("You"), message.Content))
			continue
		}
		content := markdown.Render(m.viewport.Width, message.Content)
		if content == "" {
			content = message.Content
		}
		turns = append(turns, m.renderTurn(assistantLabelStyle.Render("Assistant"), content))
	}
	return strings.Join(turns, "\n\n")
}

func (m model) renderTurn(label, content string) string {
	return label + "\n" + content
}

func (m model) renderStatusLine() string {
	if strings.TrimSpace(m.status) == "" {
		return ""
	}
	style := valueMuted
	if m.statusLevel == statusError {
		style = statusErrorStyle
	} else if m.statusLevel == statusInfo {
		style = statusSuccessStyle
	}
	return style.Render(m.status)
}

func (m *model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}
