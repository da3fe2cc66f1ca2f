// Package tui is a read-only browser for intake session snapshots: an
// overview pane, the conversation, the document manifest, and a preview of
// the task document the session would render to. It never mutates a session.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quillback/intake/internal/session"
	"github.com/quillback/intake/internal/task"
)

type Tab int

const (
	TabOverview Tab = iota
	TabConversation
	TabDocuments
	TabPreview
)

var tabTitles = []string{"Overview", "Conversation", "Documents", "Preview"}

type Model struct {
	sess    *session.IntakeSession
	preview string

	tab          Tab
	windowWidth  int
	windowHeight int
	scrollOffset int
}

// NewModel builds the viewer model for a loaded session. The preview is the
// best-effort task document for the session as it stands: draft-only fields
// stay blank and validation is skipped, since a half-finished session is the
// normal case here. previewWrap is the column the preview text reflows at;
// zero or negative leaves it unwrapped.
func NewModel(s *session.IntakeSession, previewWrap int) Model {
	preview := task.Build(s, task.Draft{}, s.Metadata.UpdatedAt).Markdown()
	if previewWrap > 0 {
		preview = lipgloss.NewStyle().Width(previewWrap).Render(preview)
	}
	return Model{
		sess:    s,
		preview: preview,
	}
}

// Start runs the viewer until the user quits.
func Start(s *session.IntakeSession, previewWrap int) error {
	program := tea.NewProgram(NewModel(s, previewWrap), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.tab = (m.tab + 1) % Tab(len(tabTitles))
		m.scrollOffset = 0
	case "shift+tab", "left", "h":
		m.tab = (m.tab + Tab(len(tabTitles)) - 1) % Tab(len(tabTitles))
		m.scrollOffset = 0
	case "up", "k":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	case "down", "j":
		m.scrollOffset++
	case "pgup":
		m.scrollOffset -= m.pageSize()
		if m.scrollOffset < 0 {
			m.scrollOffset = 0
		}
	case "pgdown":
		m.scrollOffset += m.pageSize()
	case "g":
		m.scrollOffset = 0
	}
	return m, nil
}

func (m Model) pageSize() int {
	if m.windowHeight > 2 {
		return m.windowHeight - 2
	}
	return 10
}

func (m Model) View() string {
	switch m.tab {
	case TabConversation:
		return m.frame(renderConversation(m.sess))
	case TabDocuments:
		return m.frame(renderDocuments(m.sess))
	case TabPreview:
		return m.frame(m.preview)
	default:
		return m.frame(renderOverview(m.sess))
	}
}
