package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studyqa/internal/domain"
	"studyqa/internal/emoji"
	"studyqa/internal/service"
)

// Asker is the TUI-facing subset of the query router.
type Asker interface {
	Ask(query string) service.Answer
}

// Model is the Bubble Tea model for the chat window.
type Model struct {
	router    Asker
	input     textinput.Model
	viewport  viewport.Model
	turns     []domain.Turn
	summary   string
	status    string
	ready     bool
	lastQuery string
}

// New creates a chat model. summary is shown under the title.
func New(router Asker, summary string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask a study question and press Enter"
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	return Model{router: router, input: ti, viewport: vp, summary: summary, status: "Ready. Ctrl+C to quit."}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, th := transcriptBoxStyle.GetFrameSize()
		_, qh := queryBoxStyle.GetFrameSize()
		reserved := 2 + 1 + qh + 1 // header + summary, status, spacer
		vh := msg.Height - reserved
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width)
		m.viewport.Height = max(3, vh-th)
		m.refresh()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
		if msg.Type == tea.KeyEnter {
			q := strings.TrimSpace(m.input.Value())
			if q == "" {
				return m, nil
			}
			m.submit(q)
			return m, nil
		}
		switch msg.String() {
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) submit(q string) {
	ans := m.router.Ask(q)
	m.turns = append(m.turns,
		domain.Turn{Speaker: domain.SpeakerUser, Message: q},
		domain.Turn{Speaker: domain.SpeakerBot, Message: ans.Text},
	)
	m.lastQuery = q
	m.input.SetValue("")
	if ans.Outcome.Matched {
		m.status = fmt.Sprintf("%s · %s · score=%.3f", ans.Meta.Subject, ans.Outcome.Source, ans.Outcome.Score)
	} else {
		m.status = fmt.Sprintf("%s · no confident match", ans.Meta.Subject)
	}
	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

// View renders the TUI layout and the transcript.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render(emoji.Get("book") + " Study Assistant")
	summary := lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(m.summary)
	input := queryBoxStyle.Render(m.input.View())
	statusText := m.status
	if m.lastQuery != "" {
		statusText = fmt.Sprintf("Last: %q · %s", m.lastQuery, m.status)
	}
	status := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(statusText)
	transcript := transcriptBoxStyle.Render(m.viewport.View())
	return header + "\n" + summary + "\n" + transcript + "\n" + input + "\n" + status
}

func (m Model) renderTranscript() string {
	if len(m.turns) == 0 {
		return "No questions yet."
	}
	wrap := lipgloss.NewStyle()
	if w := m.viewport.Width - 4; w > 0 {
		wrap = wrap.Width(w)
	}
	var b strings.Builder
	for i, t := range m.turns {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(speakerLabel(t.Speaker))
		b.WriteString("\n")
		b.WriteString(wrap.Render(t.Message))
	}
	return b.String()
}

func speakerLabel(s domain.Speaker) string {
	if s == domain.SpeakerUser {
		return userStyle.Render(emoji.Get("user") + " " + string(s) + ":")
	}
	return botStyle.Render(emoji.Get("bot") + " " + string(s) + ":")
}

var (
	transcriptBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	queryBoxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	userStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	botStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
)
