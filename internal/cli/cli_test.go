package cli

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/quillback/intake/internal/session"
	"github.com/quillback/intake/internal/task"
	"github.com/quillback/intake/internal/transcript"
)

func TestRunRejectsMissingCommand(t *testing.T) {
	err := Run(nil)
	var ue UsageError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %T, want UsageError", err)
	}
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	err := Run([]string{"frobnicate"})
	var ue UsageError
	if !errors.As(err, &ue) {
		t.Fatalf("err = %T, want UsageError", err)
	}
	if !strings.Contains(ue.Message, "frobnicate") {
		t.Fatalf("message = %q, want it to name the command", ue.Message)
	}
}

func TestRunRejectsBadArity(t *testing.T) {
	cases := [][]string{
		{"init", "extra"},
		{"detect"},
		{"show"},
		{"show", "a", "b"},
		{"render"},
		{"transcript"},
		{"view"},
	}
	for _, args := range cases {
		err := Run(args)
		var ue UsageError
		if !errors.As(err, &ue) {
			t.Errorf("Run(%v) err = %v, want UsageError", args, err)
		}
	}
}

func TestRunDetect(t *testing.T) {
	var b strings.Builder
	if err := runDetect(&b, []string{"report.pdf", "HTTPS://x.com/report.pdf", "archive.zip"}); err != nil {
		t.Fatalf("detect: %v", err)
	}

	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), out)
	}
	for i, want := range []string{"pdf", "url", "unknown"} {
		if !strings.HasSuffix(strings.TrimRight(lines[i], " "), want) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], want)
		}
	}
}

func writeSessionFile(t *testing.T) string {
	t.Helper()
	s := session.NewSession("intake_20260830_120000_abc123")
	s.AddTurn(session.RoleUser, "I want to evaluate uranium miners.", session.StateExploring)
	s.AddTurn(session.RoleAssistant, "What horizon?", session.StateExploring)
	s.WorkingTitle = "Uranium Miners Entry Point"
	s.Objective = session.ObjectiveInvest
	s.TransitionTo(session.StateRefining)

	path := filepath.Join(t.TempDir(), "session.json")
	if err := session.Save(path, s); err != nil {
		t.Fatalf("save session: %v", err)
	}
	return path
}

func TestRunShow(t *testing.T) {
	path := writeSessionFile(t)

	var b strings.Builder
	if err := runShow(&b, path); err != nil {
		t.Fatalf("show: %v", err)
	}

	out := b.String()
	for _, want := range []string{"intake_20260830_120000_abc123", "refining", "Uranium Miners Entry Point", "invest"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestRunShowMissingFile(t *testing.T) {
	var b strings.Builder
	err := runShow(&b, filepath.Join(t.TempDir(), "session.json"))
	if !errors.Is(err, session.ErrSnapshotNotFound) {
		t.Fatalf("err = %v, want ErrSnapshotNotFound", err)
	}
}

func TestRunRender(t *testing.T) {
	out := task.Output{
		IntakeID:           "intake_20260830_120000_abc123",
		CreatedAt:          time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC),
		SessionTurns:       2,
		DocumentsProcessed: 0,
		Title:              "Uranium Miners Entry Point",
		Objective:          session.ObjectiveInvest,
		OneLineAsk:         "Should we start a position?",
		Background:         "Context.",
		CoreThesis:         "Supply deficit persists.",
		KeyQuestions:       []string{"Which producers are unhedged?"},
		KillCriteria:       []string{},
		Constraints:        []string{},
		TimeHorizon:        session.HorizonMediumTerm,
		RiskAppetite:       session.RiskModerate,
		DecisionStakes:     "Five percent allocation.",
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		t.Fatalf("marshal output: %v", err)
	}
	path := filepath.Join(t.TempDir(), "task.json")
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatalf("write output: %v", err)
	}

	var sb strings.Builder
	if err := runRender(&sb, path); err != nil {
		t.Fatalf("render: %v", err)
	}

	doc := sb.String()
	if !strings.HasPrefix(doc, "# Task: Uranium Miners Entry Point\n") {
		t.Fatalf("render output does not start with the title:\n%s", doc)
	}
	if !strings.Contains(doc, "## Kill Criteria\nNone specified.\n") {
		t.Fatalf("render output missing kill criteria placeholder:\n%s", doc)
	}
}

func TestRunTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.jsonl")
	w, err := transcript.NewWriter(path)
	if err != nil {
		t.Fatalf("new writer: %v", err)
	}
	stamp := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	longContent := strings.Repeat("long content ", 20)
	turns := []session.ConversationTurn{
		{TurnID: 1, Role: session.RoleUser, Content: "hello\nthere", Timestamp: stamp, Phase: session.StateExploring},
		{TurnID: 2, Role: session.RoleAssistant, Content: longContent, Timestamp: stamp.Add(time.Second), Phase: session.StateExploring},
	}
	for _, turn := range turns {
		if err := w.Append(turn); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	var b strings.Builder
	if err := runTranscript(&b, path); err != nil {
		t.Fatalf("transcript: %v", err)
	}

	out := b.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "[user/exploring] hello there") {
		t.Errorf("line 1 = %q, want newline-flattened content", lines[0])
	}
	if !strings.Contains(lines[1], "...") {
		t.Errorf("line 2 = %q, want truncated content", lines[1])
	}
}
