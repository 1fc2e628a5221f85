package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"taxguide/internal/advisor"
)

const sendTimeout = 2 * time.Minute

type chatMessage struct {
	role    string // "user" or "advisor"
	content string
	time    time.Time
}

// Messages for tea updates
type (
	responseMsg string
	errorMsg    error
)

// ChatModel is the interactive advisor interface: a scrolling transcript
// above a single-line input, with the model call running off the UI loop.
type ChatModel struct {
	textinput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	renderer  *glamour.TermRenderer

	session *advisor.Session

	history   []chatMessage
	isLoading bool
	err       error
	width     int
	height    int
	ready     bool
}

// NewChatModel wires the advisor session into a fresh chat UI.
func NewChatModel(session *advisor.Session) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "Tell me about your income... (Enter to send, Ctrl+C to exit)"
	ti.Focus()
	ti.Prompt = "│ "
	ti.CharLimit = 2048
	ti.Width = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = SpinnerStyle

	vp := viewport.New(80, 20)
	vp.SetContent("")

	renderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)

	return ChatModel{
		textinput: ti,
		viewport:  vp,
		spinner:   sp,
		renderer:  renderer,
		session:   session,
		history:   []chatMessage{},
	}
}

func (m ChatModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
	)
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		spCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyCtrlN:
			// Fresh conversation, same knowledge library
			if !m.isLoading {
				m.session.Reset()
				m.history = []chatMessage{}
				m.err = nil
				m.viewport.SetContent("")
				m.textinput.Reset()
			}
			return m, nil

		case tea.KeyEnter:
			if !m.isLoading {
				return m.handleSubmit()
			}
		}

		if !m.isLoading {
			m.textinput, tiCmd = m.textinput.Update(msg)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3
		footerHeight := 2
		inputHeight := 3

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, msg.Height-headerHeight-footerHeight-inputHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = msg.Height - headerHeight - footerHeight - inputHeight
		}
		m.textinput.Width = msg.Width - 6

		if m.renderer != nil {
			m.renderer, _ = glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(msg.Width-8),
			)
		}
		m.viewport.SetContent(m.renderHistory())

	case spinner.TickMsg:
		if m.isLoading {
			m.spinner, spCmd = m.spinner.Update(msg)
			return m, spCmd
		}

	case responseMsg:
		m.isLoading = false
		m.err = nil
		m.history = append(m.history, chatMessage{
			role:    "advisor",
			content: string(msg),
			time:    time.Now(),
		})
		m.viewport.SetContent(m.renderHistory())
		m.viewport.GotoBottom()

	case errorMsg:
		m.isLoading = false
		m.err = msg
	}

	m.viewport, vpCmd = m.viewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, spCmd)
}

func (m ChatModel) handleSubmit() (tea.Model, tea.Cmd) {
	input := strings.TrimSpace(m.textinput.Value())
	if input == "" {
		return m, nil
	}

	m.history = append(m.history, chatMessage{
		role:    "user",
		content: input,
		time:    time.Now(),
	})
	m.textinput.Reset()
	m.viewport.SetContent(m.renderHistory())
	m.viewport.GotoBottom()
	m.isLoading = true

	return m, tea.Batch(
		m.spinner.Tick,
		m.sendToAdvisor(input),
	)
}

func (m ChatModel) sendToAdvisor(input string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		reply, err := m.session.Send(ctx, input)
		if err != nil {
			return errorMsg(err)
		}
		return responseMsg(reply.Text)
	}
}

func (m ChatModel) renderHistory() string {
	var sb strings.Builder

	for _, msg := range m.history {
		if msg.role == "user" {
			sb.WriteString(UserLabelStyle.Render("You") + "\n")
			sb.WriteString(msg.content)
			sb.WriteString("\n\n")
		} else {
			sb.WriteString(AdvisorLabelStyle.Render("TaxGuide") + "\n")
			sb.WriteString(m.safeRenderMarkdown(msg.content))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// safeRenderMarkdown falls back to plain text when glamour cannot cope.
func (m ChatModel) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		rendered, err := m.renderer.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}

func (m ChatModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	chatView := m.viewport.View()

	if m.isLoading {
		chatView += "\n" + SpinnerStyle.Render(m.spinner.View()) + " Thinking..."
	}
	if m.err != nil {
		chatView += "\n" + ErrorStyle.Render("Error: "+m.err.Error())
	}

	inputArea := InputStyle.Render(m.textinput.View())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		chatView,
		inputArea,
		m.renderFooter(),
	)
}

func (m ChatModel) renderHeader() string {
	title := TitleStyle.Render(" TaxGuide ")
	subtitle := BadgeStyle.Render(" New vs Old regime advisor")

	var status string
	if m.isLoading {
		status = StatusBusyStyle.Render("● Thinking")
	} else {
		status = StatusReadyStyle.Render("● Ready")
	}

	return lipgloss.JoinHorizontal(lipgloss.Center, title, subtitle, "  ", status)
}

func (m ChatModel) renderFooter() string {
	return HelpStyle.Render("Enter: send • Ctrl+N: new conversation • Ctrl+C: exit")
}

// Run starts the chat UI and blocks until the user exits.
func Run(session *advisor.Session) error {
	p := tea.NewProgram(NewChatModel(session), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
