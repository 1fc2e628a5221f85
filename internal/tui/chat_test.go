package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taxguide/internal/advisor"
)

func testModel() ChatModel {
	session := advisor.NewSession(nil, nil, advisor.SessionConfig{}, nil)
	m := NewChatModel(session)
	m.renderer = nil // deterministic transcript rendering
	return m
}

func TestNewChatModel(t *testing.T) {
	m := testModel()

	assert.False(t, m.isLoading)
	assert.Empty(t, m.history)
	assert.Contains(t, m.textinput.Placeholder, "Enter to send")
}

func TestChatModel_SubmitStartsRequest(t *testing.T) {
	m := testModel()
	m.textinput.SetValue("I earn 15 lakh a year")

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(ChatModel)

	require.Len(t, model.history, 1)
	assert.Equal(t, "user", model.history[0].role)
	assert.Equal(t, "I earn 15 lakh a year", model.history[0].content)
	assert.True(t, model.isLoading)
	assert.Empty(t, model.textinput.Value())
	assert.NotNil(t, cmd)
}

func TestChatModel_EmptySubmitIsIgnored(t *testing.T) {
	m := testModel()
	m.textinput.SetValue("   ")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(ChatModel)

	assert.Empty(t, model.history)
	assert.False(t, model.isLoading)
}

func TestChatModel_ResponseAppendsAdvisorTurn(t *testing.T) {
	m := testModel()
	m.isLoading = true

	updated, _ := m.Update(responseMsg("How old are you?"))
	model := updated.(ChatModel)

	require.Len(t, model.history, 1)
	assert.Equal(t, "advisor", model.history[0].role)
	assert.Equal(t, "How old are you?", model.history[0].content)
	assert.False(t, model.isLoading)
}

func TestChatModel_ErrorStopsLoading(t *testing.T) {
	m := testModel()
	m.isLoading = true

	updated, _ := m.Update(errorMsg(fmt.Errorf("network down")))
	model := updated.(ChatModel)

	assert.False(t, model.isLoading)
	require.Error(t, model.err)
	assert.Contains(t, model.err.Error(), "network down")
}

func TestChatModel_CtrlNClearsConversation(t *testing.T) {
	m := testModel()
	m.history = []chatMessage{{role: "user", content: "hi"}}
	m.err = fmt.Errorf("stale")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	model := updated.(ChatModel)

	assert.Empty(t, model.history)
	assert.NoError(t, model.err)
}

func TestChatModel_RenderHistoryFallsBackToPlainText(t *testing.T) {
	m := testModel()
	m.history = []chatMessage{
		{role: "user", content: "hello"},
		{role: "advisor", content: "### Tax Report"},
	}

	out := m.renderHistory()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "### Tax Report")
}

func TestChatModel_QuitKeys(t *testing.T) {
	m := testModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
