package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dm/vita/internal/classify"
	"github.com/dm/vita/internal/client"
	"github.com/dm/vita/internal/engine"
	"github.com/dm/vita/internal/model"
)

type connState int

const (
	stateConnected    connState = iota
	stateDisconnected connState = iota
)

// sendFailedNotice is shown in the transcript when a chat request fails.
// Failure output is never fed to the classifier; the user sees this fixed
// line and the error detail lands in the header.
const sendFailedNotice = "The assistant could not be reached. Check the connection and try again."

// App is the root Bubble Tea model for vita.
type App struct {
	client  client.AgentClient
	timeout time.Duration

	// Conversation state
	sending    bool // true while a chat request is in-flight; blocks further sends
	transcript *model.Transcript
	overview   *model.Overview
	vitalCards []model.VitalCard

	// Connection state
	connState connState
	lastError error
	lastReply time.Time

	// Widgets
	input textinput.Model
	view  viewport.Model
	spin  spinner.Model

	// Layout
	width, height int
	ready         bool

	// UI state
	showHelp     bool
	showOverview bool
}

// NewApp creates a new App with the given agent client, per-request timeout,
// and transcript capacity.
func NewApp(c client.AgentClient, timeout time.Duration, historyLimit int) *App {
	input := textinput.New()
	input.Placeholder = "Ask about your blood tests, vitals, or recommendations"
	input.Prompt = "> "
	input.CharLimit = 500
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(colorBlue)

	return &App{
		client:       c,
		timeout:      timeout,
		transcript:   model.NewTranscript(historyLimit),
		connState:    stateDisconnected,
		input:        input,
		view:         viewport.New(80, 20),
		spin:         spin,
		showOverview: true,
	}
}

// Init implements tea.Model. Starts the overview fetch immediately on launch.
func (app *App) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		fetchOverviewCmd(app.client, app.timeout),
	)
}

// Update implements tea.Model — the single state-mutation entry point.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		app.width = msg.Width
		app.height = msg.Height
		app.resize()
		app.refreshTranscript()
		app.view.GotoBottom()
		app.ready = true

	case OverviewMsg:
		app.overview = msg.Overview
		app.vitalCards = engine.CalcVitalsSummary(msg.Overview)
		app.connState = stateConnected
		app.lastError = nil
		app.resize()
		app.refreshTranscript()

	case OverviewErrorMsg:
		// Non-fatal: chatting still works, the header shows the problem.
		app.connState = stateDisconnected
		app.lastError = msg.Err

	case ChatReplyMsg:
		app.sending = false
		app.connState = stateConnected
		app.lastError = nil
		app.lastReply = msg.ReceivedAt
		app.transcript.Push(model.Message{
			Role:    model.RoleAssistant,
			Content: msg.Raw,
			Result:  msg.Result,
			SentAt:  msg.ReceivedAt,
		})
		app.refreshTranscript()
		app.view.GotoBottom()

	case ChatErrorMsg:
		app.sending = false
		app.connState = stateDisconnected
		app.lastError = msg.Err
		app.transcript.Push(model.Message{
			Role:    model.RoleNotice,
			Content: sendFailedNotice,
			SentAt:  time.Now(),
		})
		app.refreshTranscript()
		app.view.GotoBottom()

	case spinner.TickMsg:
		if !app.sending {
			return app, nil
		}
		var cmd tea.Cmd
		app.spin, cmd = app.spin.Update(msg)
		return app, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit

		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp

		case key.Matches(msg, keys.Overview):
			app.showOverview = !app.showOverview
			app.resize()
			app.refreshTranscript()

		case key.Matches(msg, keys.Send):
			return app, app.send()

		case key.Matches(msg, keys.PageUp), key.Matches(msg, keys.PageDown):
			var cmd tea.Cmd
			app.view, cmd = app.view.Update(msg)
			return app, cmd

		default:
			var cmd tea.Cmd
			app.input, cmd = app.input.Update(msg)
			return app, cmd
		}
	}

	return app, nil
}

// send pushes the typed message into the transcript and starts the chat
// request. A no-op while a request is already in flight or the input is
// blank.
func (app *App) send() tea.Cmd {
	if app.sending {
		return nil
	}
	text := strings.TrimSpace(app.input.Value())
	if text == "" {
		return nil
	}

	app.transcript.Push(model.Message{
		Role:    model.RoleUser,
		Content: text,
		SentAt:  time.Now(),
	})
	app.input.Reset()
	app.sending = true
	app.refreshTranscript()
	app.view.GotoBottom()

	return tea.Batch(app.spin.Tick, sendCmd(app.client, app.timeout, text))
}

// View implements tea.Model. Renders the full TUI.
func (app *App) View() string {
	if !app.ready {
		return "starting vita..."
	}

	var parts []string

	parts = append(parts, renderHeader(app))
	if o := renderOverviewBar(app); o != "" {
		parts = append(parts, o)
	}
	parts = append(parts, app.view.View())
	parts = append(parts, app.renderInputLine())
	parts = append(parts, renderFooter(app))

	return strings.Join(parts, "\n")
}

// renderInputLine shows the prompt, or the spinner while a request is
// in flight.
func (app *App) renderInputLine() string {
	if app.sending {
		return app.spin.View() + StyleDim.Render(" waiting for the assistant...")
	}
	return app.input.View()
}

// resize recomputes the viewport dimensions from the fixed chrome around it.
func (app *App) resize() {
	width := app.width
	if width <= 0 {
		width = 80
	}

	chrome := lipgloss.Height(renderHeader(app)) +
		lipgloss.Height(app.renderInputLine()) +
		lipgloss.Height(renderFooter(app)) +
		2 // joins between sections
	if o := renderOverviewBar(app); o != "" {
		chrome += lipgloss.Height(o) + 1
	}

	height := app.height - chrome
	if height < 3 {
		height = 3
	}

	app.view.Width = width
	app.view.Height = height
	app.input.Width = width - len(app.input.Prompt) - 1
}

// refreshTranscript re-renders the transcript into the viewport.
func (app *App) refreshTranscript() {
	width := app.view.Width - 2
	if width < 20 {
		width = 20
	}
	app.view.SetContent(renderTranscript(app.transcript, width))
}

// sendCmd is a Bubble Tea command that posts one chat message, classifies
// the reply, and returns a ChatReplyMsg or ChatErrorMsg.
func sendCmd(c client.AgentClient, timeout time.Duration, message string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		raw, err := c.Chat(ctx, message)
		if err != nil {
			return ChatErrorMsg{Err: err}
		}

		return ChatReplyMsg{
			Raw:        raw,
			Result:     classify.Classify(raw),
			ReceivedAt: time.Now(),
		}
	}
}

// fetchOverviewCmd fetches the startup health-data overview.
func fetchOverviewCmd(c client.AgentClient, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		ov, err := engine.FetchOverview(ctx, c)
		if err != nil {
			return OverviewErrorMsg{Err: err}
		}
		return OverviewMsg{Overview: ov}
	}
}
