// Package tui provides the Bubble Tea drill interface.
package tui

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/misstype/internal/drill"
	"github.com/verte-zerg/misstype/internal/model"
	"github.com/verte-zerg/misstype/internal/stats"
)

const topLetters = 3

var (
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	wordStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	panelStyle     = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
)

// Model implements the Bubble Tea drill UI.
type Model struct {
	drill   *drill.Drill
	session *drill.Session
	prompt  model.Prompt

	input textinput.Model

	status      string
	statusStyle lipgloss.Style

	width  int
	height int
}

// NewModel constructs a drill TUI model.
func NewModel(d *drill.Drill) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 64
	input.Cursor.SetMode(cursor.CursorBlink)
	input.Focus()
	return &Model{
		drill:       d,
		input:       input,
		statusStyle: mutedStyle,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			value := m.input.Value()
			m.input.Reset()
			return m, m.submit(value)
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Practicing reports whether a session is in progress.
func (m *Model) Practicing() bool {
	return m.session != nil
}

func (m *Model) submit(value string) tea.Cmd {
	if m.session != nil {
		m.answer(value)
		return nil
	}
	cmd, _, err := drill.ParseCommand(value)
	switch {
	case errors.Is(err, drill.ErrMultipleChars):
		m.setStatus("Enter characters one at a time!", incorrectStyle)
		return nil
	case err != nil:
		m.setStatus("Invalid answer!", incorrectStyle)
		return nil
	}

	switch cmd {
	case drill.CommandQuit:
		return tea.Quit
	case drill.CommandPractice:
		m.startSession()
	default:
		letter, err := m.drill.RecordMiss(value)
		if err != nil {
			m.setStatus("Invalid answer!", incorrectStyle)
			return nil
		}
		m.setStatus(fmt.Sprintf("Recorded %c", letter), mutedStyle)
	}
	return nil
}

func (m *Model) startSession() {
	session, err := m.drill.Start()
	if errors.Is(err, drill.ErrNoMisses) {
		m.setStatus("First enter some characters you've typed wrong.", mutedStyle)
		return
	}
	if err != nil {
		logErrf("%v\n", err)
		m.setStatus(err.Error(), incorrectStyle)
		return
	}
	m.session = session
	m.setStatus("Practice session has begun (0 to quit practice).", mutedStyle)
	m.advance()
	if m.session == nil {
		m.setStatus("No words contain your missed letters.", mutedStyle)
	}
}

func (m *Model) answer(value string) {
	switch m.session.Answer(value) {
	case model.VerdictCorrect:
		m.setStatus("CORRECT", correctStyle)
	case model.VerdictIncorrect:
		m.setStatus("INCORRECT", incorrectStyle)
	case model.VerdictInvalid:
		m.setStatus("Invalid answer!", incorrectStyle)
	case model.VerdictQuit:
		m.setStatus(fmt.Sprintf("You accurately typed %d word(s)! Practice session has been quit.", m.session.Correct()), mutedStyle)
		m.session = nil
		return
	}
	m.advance()
}

func (m *Model) advance() {
	prompt, ok := m.session.Next()
	if !ok {
		m.session = nil
		m.prompt = model.Prompt{}
		return
	}
	m.prompt = prompt
}

func (m *Model) setStatus(text string, style lipgloss.Style) {
	m.status = text
	m.statusStyle = style
}

// View implements tea.Model.
func (m *Model) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("misstype"),
		"",
		m.renderQuestion(),
		m.input.View(),
		"",
		m.statusStyle.Render(m.fit(m.status)),
	)
	content := lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", m.renderTally())
	footer := m.renderFooter()
	if m.width == 0 || m.height < 3 {
		return content + "\n" + footer
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

func (m *Model) renderQuestion() string {
	if m.session == nil {
		return "Missed letter:"
	}
	return fmt.Sprintf("Type '%s' (lowercase):", wordStyle.Render(m.prompt.Word))
}

func (m *Model) renderTally() string {
	counts := m.drill.Counts()
	if len(counts) == 0 {
		return panelStyle.Render(mutedStyle.Render("No missed letters yet"))
	}
	lines := stats.FormatTally(counts)
	top := stats.TopLetters(counts, topLetters)
	names := make([]string, len(top))
	for i, l := range top {
		names[i] = string(l)
	}
	lines = append(lines, "", "Most missed: "+strings.Join(names, ", "))
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter() string {
	var segments []string
	if m.session != nil {
		segments = append(segments,
			fmt.Sprintf("Letter %c", m.prompt.Letter),
			fmt.Sprintf("Correct %d", m.session.Correct()),
			"0 quit practice",
		)
	} else {
		segments = append(segments, "1 practice", "0 quit")
	}
	segments = append(segments, "ctrl+c exit")
	return footerStyle.Render(strings.Join(segments, "  "))
}

// fit truncates text to the content width once the window size is known.
func (m *Model) fit(text string) string {
	if m.width <= 0 {
		return text
	}
	limit := m.width / 2
	if limit < 10 {
		limit = 10
	}
	return runewidth.Truncate(text, limit, "…")
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
