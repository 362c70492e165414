package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dm/vita/internal/classify"
	"github.com/dm/vita/internal/client"
	"github.com/dm/vita/internal/model"
)

// mockAgent implements client.AgentClient for TUI tests.
type mockAgent struct {
	chatFn func(ctx context.Context, message string) (string, error)
}

func (m *mockAgent) Chat(ctx context.Context, message string) (string, error) {
	if m.chatFn != nil {
		return m.chatFn(ctx, message)
	}
	return "hello", nil
}

func (m *mockAgent) Ping(ctx context.Context) error { return nil }

func (m *mockAgent) GetProfile(ctx context.Context) (*client.UserProfile, error) {
	return &client.UserProfile{Name: "Test User"}, nil
}

func (m *mockAgent) GetVitals(ctx context.Context) ([]client.VitalsRecord, error) {
	return nil, nil
}

func (m *mockAgent) GetBloodTests(ctx context.Context) ([]client.BloodTest, error) {
	return nil, nil
}

func (m *mockAgent) GetMedicalHistory(ctx context.Context) ([]client.MedicalEvent, error) {
	return nil, nil
}

func (m *mockAgent) BaseURL() string   { return "http://mock:8000" }
func (m *mockAgent) SessionID() string { return "sess-mock" }

func newTestApp() *App {
	app := NewApp(&mockAgent{}, 5*time.Second, 50)
	newModel, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return newModel.(*App)
}

// typeAndSend types text into the input and presses enter.
func typeAndSend(t *testing.T, app *App, text string) (*App, tea.Cmd) {
	t.Helper()
	app.input.SetValue(text)
	newModel, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return newModel.(*App), cmd
}

func TestApp_SendPushesUserMessageAndBlocksInput(t *testing.T) {
	app := newTestApp()
	require.Equal(t, 0, app.transcript.Len())

	app, cmd := typeAndSend(t, app, "how is my glucose?")

	assert.True(t, app.sending)
	require.NotNil(t, cmd)
	require.Equal(t, 1, app.transcript.Len())

	last, ok := app.transcript.Last()
	require.True(t, ok)
	assert.Equal(t, model.RoleUser, last.Role)
	assert.Equal(t, "how is my glucose?", last.Content)
	assert.Equal(t, "", app.input.Value(), "input is cleared after send")
}

func TestApp_SendIgnoredWhileInFlight(t *testing.T) {
	app := newTestApp()
	app, cmd := typeAndSend(t, app, "first")
	require.NotNil(t, cmd)
	require.True(t, app.sending)

	// A second enter while waiting must not start another request.
	app, cmd = typeAndSend(t, app, "second")
	assert.Nil(t, cmd)
	assert.Equal(t, 1, app.transcript.Len())
}

func TestApp_SendIgnoredWhenBlank(t *testing.T) {
	app := newTestApp()
	app, cmd := typeAndSend(t, app, "   ")
	assert.Nil(t, cmd)
	assert.False(t, app.sending)
	assert.Equal(t, 0, app.transcript.Len())
}

func TestApp_ChatReplyAppendsAssistantMessage(t *testing.T) {
	app := newTestApp()
	app, _ = typeAndSend(t, app, "hello")

	reply := ChatReplyMsg{
		Raw:        "Hi! How can I help?",
		Result:     classify.Classify("Hi! How can I help?"),
		ReceivedAt: time.Now(),
	}
	newModel, _ := app.Update(reply)
	app = newModel.(*App)

	assert.False(t, app.sending)
	assert.Equal(t, stateConnected, app.connState)
	assert.Nil(t, app.lastError)
	assert.Equal(t, reply.ReceivedAt, app.lastReply)
	require.Equal(t, 2, app.transcript.Len())

	last, _ := app.transcript.Last()
	assert.Equal(t, model.RoleAssistant, last.Role)
	assert.Equal(t, classify.KindPlainText, last.Result.Kind)
}

func TestApp_ChatErrorAppendsNotice(t *testing.T) {
	app := newTestApp()
	app, _ = typeAndSend(t, app, "hello")

	errBoom := errors.New("connection refused")
	newModel, _ := app.Update(ChatErrorMsg{Err: errBoom})
	app = newModel.(*App)

	assert.False(t, app.sending)
	assert.Equal(t, stateDisconnected, app.connState)
	assert.Equal(t, errBoom, app.lastError)

	// The transcript gets the fixed notice line, never the raw error text
	// run through the classifier.
	last, _ := app.transcript.Last()
	assert.Equal(t, model.RoleNotice, last.Role)
	assert.Equal(t, sendFailedNotice, last.Content)
}

func TestApp_SendAllowedAgainAfterReply(t *testing.T) {
	app := newTestApp()
	app, _ = typeAndSend(t, app, "first")

	newModel, _ := app.Update(ChatReplyMsg{Raw: "ok", Result: classify.Classify("ok"), ReceivedAt: time.Now()})
	app = newModel.(*App)
	require.False(t, app.sending)

	app, cmd := typeAndSend(t, app, "second")
	assert.NotNil(t, cmd)
	assert.True(t, app.sending)
}

func TestApp_OverviewMsgUpdatesState(t *testing.T) {
	app := newTestApp()
	require.Nil(t, app.overview)
	require.Equal(t, stateDisconnected, app.connState)

	ov := &model.Overview{
		Profile:   client.UserProfile{Name: "Jordan Smith"},
		FetchedAt: time.Now(),
	}
	newModel, _ := app.Update(OverviewMsg{Overview: ov})
	app = newModel.(*App)

	assert.Equal(t, ov, app.overview)
	assert.Equal(t, stateConnected, app.connState)
}

func TestApp_OverviewErrorIsNonFatal(t *testing.T) {
	app := newTestApp()

	newModel, _ := app.Update(OverviewErrorMsg{Err: errors.New("refused")})
	app = newModel.(*App)

	assert.Equal(t, stateDisconnected, app.connState)
	assert.NotNil(t, app.lastError)

	// Chat still works.
	app, cmd := typeAndSend(t, app, "hello")
	assert.NotNil(t, cmd)
	assert.True(t, app.sending)
}

func TestApp_QuitKey(t *testing.T) {
	app := newTestApp()
	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestApp_OverviewToggle(t *testing.T) {
	app := newTestApp()
	require.True(t, app.showOverview)

	newModel, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlO})
	app = newModel.(*App)
	assert.False(t, app.showOverview)
}

func TestSendCmd_Classifies(t *testing.T) {
	agent := &mockAgent{
		chatFn: func(ctx context.Context, message string) (string, error) {
			return "Analysis\n- Glucose: 105 mg/dL (Elevated)", nil
		},
	}

	msg := sendCmd(agent, time.Second, "glucose?")()
	reply, ok := msg.(ChatReplyMsg)
	require.True(t, ok, "expected ChatReplyMsg, got %T", msg)
	assert.Equal(t, classify.KindMetrics, reply.Result.Kind)
}

func TestSendCmd_Error(t *testing.T) {
	agent := &mockAgent{
		chatFn: func(ctx context.Context, message string) (string, error) {
			return "", errors.New("boom")
		},
	}

	msg := sendCmd(agent, time.Second, "hello")()
	_, ok := msg.(ChatErrorMsg)
	assert.True(t, ok, "expected ChatErrorMsg, got %T", msg)
}
