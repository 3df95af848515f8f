package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"leetcode-assistant/client"
	"leetcode-assistant/config"
	"leetcode-assistant/conversation"
	"leetcode-assistant/models"
	"leetcode-assistant/services"
	"leetcode-assistant/services/chat"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Styles for the chat view
type Styles struct {
	User      lipgloss.Style
	Assistant lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Dim       lipgloss.Style
	Code      lipgloss.Style
	CodeTag   lipgloss.Style
}

func NewStyles() *Styles {
	return &Styles{
		User:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // Blue
		Assistant: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // Green
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // Red
		Info:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),  // Gray
		Code:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")), // White
		CodeTag:   lipgloss.NewStyle().Foreground(lipgloss.Color("13")), // Magenta
	}
}

type exchangeDoneMsg struct {
	turn *models.Turn
	err  error
}

// Model is the bubbletea model for the chat client.
type Model struct {
	textarea textarea.Model
	spinner  spinner.Model
	styles   *Styles

	conv     *conversation.Conversation
	problems *services.ProblemService

	output  []string
	sending bool
	width   int
}

func NewModel(conv *conversation.Conversation, problems *services.ProblemService) Model {
	ta := textarea.New()
	ta.Placeholder = "Share a LeetCode problem link or ask a question..."
	ta.Focus()
	ta.CharLimit = 0
	ta.SetWidth(100)
	ta.SetHeight(3)
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.KeyMap.InsertNewline.SetEnabled(false)

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: []string{"|", "/", "-", "\\"},
		FPS:    time.Millisecond * 100,
	}

	m := Model{
		textarea: ta,
		spinner:  s,
		styles:   NewStyles(),
		conv:     conv,
		problems: problems,
		width:    120,
	}
	m.addWelcome()
	return m
}

func (m *Model) addOutput(line string) {
	m.output = append(m.output, line)
}

func (m *Model) addWelcome() {
	m.addOutput(m.styles.Info.Render("Welcome to LeetCode Assistant"))
	m.addOutput(m.styles.Dim.Render("Paste a problem URL and ask for solutions, explanations, or optimization tips."))
	m.addOutput(m.styles.Dim.Render("Commands: /problem <url>  /explain  /complexity  /solution  /raw  /quit"))
	m.addOutput("")
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		inputWidth := msg.Width - 4
		if inputWidth < 40 {
			inputWidth = 40
		}
		m.textarea.SetWidth(inputWidth)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEnter:
			if m.sending {
				return m, nil
			}
			input := strings.TrimSpace(m.textarea.Value())
			if input == "" {
				return m, nil
			}
			m.textarea.Reset()

			if strings.HasPrefix(input, "/") {
				return m.handleCommand(input)
			}
			return m.startExchange(input, func() (*models.Turn, error) {
				return m.conv.Submit(context.Background(), input)
			})
		}

		if !m.sending {
			var cmd tea.Cmd
			m.textarea, cmd = m.textarea.Update(msg)
			cmds = append(cmds, cmd)
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case exchangeDoneMsg:
		m.sending = false
		m.textarea.Focus()
		if msg.err != nil {
			m.addOutput(m.styles.Error.Render("Error: " + msg.err.Error()))
			m.addOutput("")
			return m, textarea.Blink
		}
		m.renderAssistantTurn(msg.turn)
		return m, textarea.Blink
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleCommand(input string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(input)
	command := fields[0]

	switch command {
	case "/quit", "/exit":
		return m, tea.Quit

	case "/problem":
		if len(fields) < 2 {
			m.addOutput(m.styles.Error.Render("Usage: /problem <leetcode url>"))
			m.addOutput("")
			return m, nil
		}
		url := fields[1]
		return m.startExchange("[problem] "+url, func() (*models.Turn, error) {
			return m.conv.PinAndAnnounce(context.Background(), url)
		})

	case "/explain":
		return m.startQuickAction(conversation.QuickActionExplain)
	case "/complexity":
		return m.startQuickAction(conversation.QuickActionComplexity)
	case "/solution":
		return m.startQuickAction(conversation.QuickActionSolution)

	case "/raw":
		m.showLastRaw()
		return m, nil

	default:
		m.addOutput(m.styles.Error.Render("Unknown command: " + command))
		m.addOutput("")
		return m, nil
	}
}

func (m Model) startQuickAction(prompt string) (tea.Model, tea.Cmd) {
	return m.startExchange(prompt, func() (*models.Turn, error) {
		return m.conv.QuickAction(context.Background(), prompt)
	})
}

func (m Model) startExchange(displayInput string, run func() (*models.Turn, error)) (tea.Model, tea.Cmd) {
	m.addOutput(m.styles.User.Render("You: ") + displayInput)
	m.sending = true
	m.textarea.Blur()

	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		turn, err := run()
		return exchangeDoneMsg{turn: turn, err: err}
	})
}

func (m *Model) renderAssistantTurn(turn *models.Turn) {
	if turn == nil {
		return
	}

	label := m.styles.Assistant.Render("LeetCode Assistant: ")
	if turn.Error {
		m.addOutput(label + m.styles.Error.Render(turn.Text))
		if turn.RawText != "" {
			m.addOutput(m.styles.Dim.Render("  detail: " + turn.RawText))
		}
		m.addOutput("")
		return
	}

	m.addOutput(label)
	for _, segment := range chat.SplitSegments(turn.Text) {
		switch segment.Kind {
		case chat.SegmentCode:
			tag := segment.Language
			if tag == "" {
				tag = "code"
			}
			m.addOutput(m.styles.CodeTag.Render("  [" + tag + "]"))
			for _, line := range strings.Split(segment.Text, "\n") {
				m.addOutput(m.styles.Code.Render("  " + line))
			}
		default:
			for _, line := range strings.Split(strings.Trim(segment.Text, "\n"), "\n") {
				m.addOutput(line)
			}
		}
	}
	m.addOutput("")
}

func (m *Model) showLastRaw() {
	turns := m.conv.Turns()
	for i := len(turns) - 1; i >= 0; i-- {
		if turns[i].Speaker == models.SpeakerAssistant && turns[i].RawText != "" {
			m.addOutput(m.styles.Dim.Render("-- raw response --"))
			for _, line := range strings.Split(turns[i].RawText, "\n") {
				m.addOutput(m.styles.Dim.Render(line))
			}
			m.addOutput("")
			return
		}
	}
	m.addOutput(m.styles.Dim.Render("No raw response yet."))
	m.addOutput("")
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(strings.Join(m.output, "\n"))
	sb.WriteString("\n")

	if m.sending {
		sb.WriteString(m.spinner.View() + " " + m.styles.Dim.Render("Thinking..."))
		sb.WriteString("\n")
	} else {
		sb.WriteString(m.styles.User.Render("> "))
		sb.WriteString(m.textarea.View())
		sb.WriteString("\n")
	}

	if pinned := m.conv.PinnedReference(); pinned != nil {
		difficulty := m.problems.GuessDifficulty(pinned.DisplayTitle)
		sb.WriteString(m.styles.Dim.Render(fmt.Sprintf(
			"Current problem: %s [%s, heuristic guess] - %s",
			pinned.DisplayTitle, difficulty, pinned.SourceURL)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func main() {
	cfg := config.Load()

	problems := services.NewProblemService()
	conv := conversation.New(client.New(cfg.BackendURL), problems)

	p := tea.NewProgram(NewModel(conv, problems))
	if _, err := p.Run(); err != nil {
		log.Fatalf("Failed to run TUI: %v", err)
	}
}
