package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/quillback/intake/internal/session"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	labelStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	assistantStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	stateStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

// frame renders the tab bar above the pane content, scrolled through a
// viewport when the window size is known.
func (m Model) frame(content string) string {
	var b strings.Builder
	for i, title := range tabTitles {
		if i > 0 {
			b.WriteString(mutedStyle.Render(" | "))
		}
		if Tab(i) == m.tab {
			b.WriteString(activeTabStyle.Render(title))
		} else {
			b.WriteString(mutedStyle.Render(title))
		}
	}
	b.WriteString("\n\n")
	b.WriteString(m.applyViewport(strings.TrimRight(content, "\n")))
	return b.String()
}

func (m Model) applyViewport(content string) string {
	height := m.windowHeight - 2 // tab bar + blank line
	width := m.windowWidth
	if height <= 0 || width <= 0 {
		return content
	}
	view := viewport.New(width, height)
	view.SetContent(content)

	offset := m.scrollOffset
	totalLines := len(strings.Split(content, "\n"))
	maxOffset := totalLines - height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	view.YOffset = offset
	return view.View()
}

func renderOverview(s *session.IntakeSession) string {
	var b strings.Builder
	writeSectionHeader(&b, "Session")
	writeLabeledLine(&b, "Intake ID", s.Metadata.IntakeID)
	writeLabeledLine(&b, "State", stateStyle.Render(string(s.Metadata.State)))
	writeLabeledLine(&b, "Created", formatTimestamp(s.Metadata.CreatedAt))
	writeLabeledLine(&b, "Updated", formatTimestamp(s.Metadata.UpdatedAt))
	writeLabeledLine(&b, "Turns", fmt.Sprintf("%d", s.Metadata.TotalTurns))
	writeLabeledLine(&b, "Documents", fmt.Sprintf("%d", s.Documents.TotalDocuments))
	if s.Metadata.SessionTitle != "" {
		writeLabeledLine(&b, "Title", s.Metadata.SessionTitle)
	}
	if s.Metadata.TaskFileGenerated {
		writeLabeledLine(&b, "Task file", s.Metadata.TaskFilePath)
	}
	b.WriteString("\n")

	writeSectionHeader(&b, "Working extraction")
	writeOptionalLine(&b, "Title", s.WorkingTitle)
	writeOptionalLine(&b, "Thesis", s.WorkingThesis)
	writeOptionalLine(&b, "Objective", string(s.Objective))
	writeOptionalLine(&b, "Time horizon", string(s.TimeHorizon))
	writeOptionalLine(&b, "Risk appetite", string(s.RiskAppetite))
	b.WriteString("\n")

	writeListSection(&b, "Key questions", s.KeyQuestions)
	writeListSection(&b, "Kill criteria", s.KillCriteria)
	writeListSection(&b, "Constraints", s.Constraints)

	writeSectionHeader(&b, "Highlights")
	if len(s.Highlights) == 0 {
		b.WriteString(mutedStyle.Render("(none)") + "\n")
	} else {
		for _, h := range s.Highlights {
			b.WriteString(fmt.Sprintf("- [turn %d, %s] %s\n", h.TurnID, h.HighlightType, h.Content))
		}
	}

	return b.String()
}

func renderConversation(s *session.IntakeSession) string {
	if len(s.Conversation) == 0 {
		return mutedStyle.Render("No turns recorded.")
	}

	var b strings.Builder
	for i, turn := range s.Conversation {
		if i > 0 {
			b.WriteString("\n")
		}
		role := turn.Role
		switch role {
		case session.RoleUser:
			role = userStyle.Render(role)
		case session.RoleAssistant:
			role = assistantStyle.Render(role)
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			labelStyle.Render(fmt.Sprintf("#%d", turn.TurnID)),
			role,
			mutedStyle.Render(fmt.Sprintf("(%s, %s)", turn.Phase, formatTimestamp(turn.Timestamp))),
		))
		b.WriteString(turn.Content)
		b.WriteString("\n")
		if turn.KeyInsight != "" {
			b.WriteString(labelStyle.Render("Insight: "))
			b.WriteString(turn.KeyInsight)
			b.WriteString("\n")
		}
		if len(turn.DocumentsReferenced) > 0 {
			b.WriteString(mutedStyle.Render("Docs: " + strings.Join(turn.DocumentsReferenced, ", ")))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderDocuments(s *session.IntakeSession) string {
	if s.Documents.TotalDocuments == 0 {
		return mutedStyle.Render("No documents processed.")
	}

	var b strings.Builder
	for i, doc := range s.Documents.Documents {
		if i > 0 {
			b.WriteString("\n")
		}
		writeSectionHeader(&b, fmt.Sprintf("%s  %s", doc.ID, doc.OriginalName))
		writeLabeledLine(&b, "Format", string(doc.Format))
		writeLabeledLine(&b, "Uploaded", formatTimestamp(doc.UploadedAt))
		if doc.Pages > 0 {
			writeLabeledLine(&b, "Pages", fmt.Sprintf("%d", doc.Pages))
		}
		if !doc.ProcessingSuccess {
			writeLabeledLine(&b, "Processing", "failed")
			if doc.ProcessingNotes != "" {
				writeLabeledLine(&b, "Notes", doc.ProcessingNotes)
			}
		}
		b.WriteString(doc.Summary)
		b.WriteString("\n")
		for _, extract := range doc.KeyExtracts {
			b.WriteString(fmt.Sprintf("- [%s] %s\n", extract.Location, extract.Text))
		}
	}
	return b.String()
}

func writeSectionHeader(b *strings.Builder, title string) {
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n")
}

func writeLabeledLine(b *strings.Builder, label string, value string) {
	b.WriteString(labelStyle.Render(label + ": "))
	b.WriteString(value)
	b.WriteString("\n")
}

func writeOptionalLine(b *strings.Builder, label string, value string) {
	if strings.TrimSpace(value) == "" {
		b.WriteString(labelStyle.Render(label+": ") + mutedStyle.Render("(not set)") + "\n")
		return
	}
	writeLabeledLine(b, label, value)
}

func writeListSection(b *strings.Builder, title string, items []string) {
	writeSectionHeader(b, title)
	if len(items) == 0 {
		b.WriteString(mutedStyle.Render("(none)") + "\n\n")
		return
	}
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return "(unknown)"
	}
	return t.UTC().Format(time.RFC3339)
}
