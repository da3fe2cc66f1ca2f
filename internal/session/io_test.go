package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func sampleSession(t *testing.T) *IntakeSession {
	t.Helper()
	s := NewSession("intake_20260830_120000_abc123")
	s.SetClock(tickingClock(time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)))

	s.AddTurn(RoleUser, "I want to evaluate uranium miners.", StateExploring)
	s.AddTurn(RoleAssistant, "What time horizon are you thinking about?", StateExploring)
	s.AddHighlight(1, "thesis", "Uranium supply deficit thesis")
	s.AddDocument(ProcessedDocument{
		ID:           "doc_001",
		OriginalName: "supply_report.pdf",
		OriginalPath: "uploads/supply_report.pdf",
		Format:       FormatPDF,
		Pages:        42,
		UploadedAt:   time.Date(2026, 8, 30, 11, 0, 0, 0, time.UTC),
		Summary:      "Industry supply and demand outlook.",
		KeyExtracts: []DocumentExtract{
			{Location: "p.12", Text: "Deficit widens through 2030.", Relevance: "supports thesis"},
		},
		ProcessingSuccess: true,
	})

	s.WorkingTitle = "Uranium miners"
	s.WorkingThesis = "Supply deficit persists"
	s.Objective = ObjectiveInvest
	s.TimeHorizon = HorizonMediumTerm
	s.RiskAppetite = RiskModerate
	s.KillCriteria = []string{"Spot price below $40"}
	s.KeyQuestions = []string{"Which producers are unhedged?"}
	s.TransitionTo(StateComplete)
	return s
}

func TestSnapshotRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	original := sampleSession(t)

	if err := Save(path, original); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load snapshot: %v", err)
	}

	// The unexported clock is not serialized; compare the wire form.
	wantJSON, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal original: %v", err)
	}
	gotJSON, err := json.Marshal(loaded)
	if err != nil {
		t.Fatalf("marshal loaded: %v", err)
	}
	if string(gotJSON) != string(wantJSON) {
		t.Fatalf("round trip mismatch:\ngot:  %s\nwant: %s", gotJSON, wantJSON)
	}

	if loaded.Metadata.State != StateComplete {
		t.Fatalf("loaded state = %q, want %q", loaded.Metadata.State, StateComplete)
	}
	if loaded.Documents.TotalDocuments != 1 {
		t.Fatalf("loaded total documents = %d, want 1", loaded.Documents.TotalDocuments)
	}
}

func TestSaveCreatesSessionDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "intakes", "intake_x", "session.json")

	if err := Save(path, sampleSession(t)); err != nil {
		t.Fatalf("save snapshot: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat snapshot: %v", err)
	}
}

func TestLoadMissingSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	_, err := Load(path)
	if !errors.Is(err, ErrSnapshotNotFound) {
		t.Fatalf("err = %v, want ErrSnapshotNotFound", err)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	payload := `{"metadata":{"intake_id":"intake_x","created_at":"2026-08-30T12:00:00Z","updated_at":"2026-08-30T12:00:00Z","state":"exploring","total_turns":0,"documents_processed":0,"task_file_generated":false},"conversation":[],"highlights":[],"documents":{"intake_id":"intake_x","documents":[],"total_documents":0,"last_updated":"2026-08-30T12:00:00Z"},"kill_criteria":[],"constraints":[],"key_questions":[],"surprise":true}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "surprise") {
		t.Fatalf("err = %v, want unknown field error", err)
	}
}

func TestLoadRejectsTrailingData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	payload := `{"metadata":{"intake_id":"intake_x","created_at":"2026-08-30T12:00:00Z","updated_at":"2026-08-30T12:00:00Z","state":"exploring","total_turns":0,"documents_processed":0,"task_file_generated":false},"conversation":[],"highlights":[],"documents":{"intake_id":"intake_x","documents":[],"total_documents":0,"last_updated":"2026-08-30T12:00:00Z"},"kill_criteria":[],"constraints":[],"key_questions":[]} {}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "trailing") {
		t.Fatalf("err = %v, want trailing data error", err)
	}
}

func TestLoadRequiresIntakeID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	payload := `{"metadata":{"intake_id":"","created_at":"2026-08-30T12:00:00Z","updated_at":"2026-08-30T12:00:00Z","state":"exploring","total_turns":0,"documents_processed":0,"task_file_generated":false},"conversation":[],"highlights":[],"documents":{"intake_id":"","documents":[],"total_documents":0,"last_updated":"2026-08-30T12:00:00Z"},"kill_criteria":[],"constraints":[],"key_questions":[]}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "intake_id") {
		t.Fatalf("err = %v, want intake_id error", err)
	}
}
