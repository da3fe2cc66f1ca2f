package session

import (
	"fmt"
	"time"
)

// SessionMetadata tracks identity and progress for one intake session.
// UpdatedAt is refreshed on every mutation to the owning session.
type SessionMetadata struct {
	IntakeID  string    `json:"intake_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	State     State     `json:"state"`

	// Progress tracking.
	TotalTurns         int `json:"total_turns"`
	DocumentsProcessed int `json:"documents_processed"`

	// User info.
	UserID       string `json:"user_id,omitempty"`
	SessionTitle string `json:"session_title,omitempty"`

	// Completion info.
	TaskFileGenerated bool   `json:"task_file_generated"`
	TaskFilePath      string `json:"task_file_path,omitempty"`
	PipelineRunID     string `json:"pipeline_run_id,omitempty"`
}

// IntakeSession is the aggregate root for one conversational intake. It
// exclusively owns its conversation, highlights and document manifest; the
// conversational agent mutates it turn by turn and fills in the extracted
// fields as the dialogue converges. Single actor: the model does no locking.
type IntakeSession struct {
	Metadata     SessionMetadata         `json:"metadata"`
	Conversation []ConversationTurn      `json:"conversation"`
	Highlights   []ConversationHighlight `json:"highlights"`
	Documents    DocumentManifest        `json:"documents"`

	// Extracted information, populated during the conversation. Free-form
	// until finalized into a task output.
	WorkingTitle  string        `json:"working_title,omitempty"`
	WorkingThesis string        `json:"working_thesis,omitempty"`
	Objective     ObjectiveType `json:"objective,omitempty"`
	TimeHorizon   TimeHorizon   `json:"time_horizon,omitempty"`
	RiskAppetite  RiskAppetite  `json:"risk_appetite,omitempty"`
	KillCriteria  []string      `json:"kill_criteria"`
	Constraints   []string      `json:"constraints"`
	KeyQuestions  []string      `json:"key_questions"`

	now func() time.Time
}

// NewSession creates a session in the exploring state with both timestamps
// set to the current time.
func NewSession(intakeID string) *IntakeSession {
	s := &IntakeSession{now: utcNow}
	start := s.now()
	s.Metadata = SessionMetadata{
		IntakeID:  intakeID,
		CreatedAt: start,
		UpdatedAt: start,
		State:     StateExploring,
	}
	s.Documents = DocumentManifest{IntakeID: intakeID, LastUpdated: start}
	s.KillCriteria = []string{}
	s.Constraints = []string{}
	s.KeyQuestions = []string{}
	return s
}

// SetClock replaces the session's time source. Tests use this to pin
// timestamps; nil restores the wall clock.
func (s *IntakeSession) SetClock(now func() time.Time) {
	s.now = now
}

func (s *IntakeSession) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return utcNow()
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// AddTurn appends a conversation turn. The turn id is assigned here, never
// by the caller: always one past the current turn count, so ids run 1..N
// gaplessly. Role is recorded as given; values other than the user and
// assistant conventions are accepted.
func (s *IntakeSession) AddTurn(role string, content string, phase State) ConversationTurn {
	now := s.clock()
	turn := ConversationTurn{
		TurnID:              len(s.Conversation) + 1,
		Role:                role,
		Content:             content,
		Timestamp:           now,
		Phase:               phase,
		DocumentsReferenced: []string{},
	}
	s.Conversation = append(s.Conversation, turn)
	s.Metadata.TotalTurns = len(s.Conversation)
	s.Metadata.UpdatedAt = now
	return turn
}

// AddHighlight appends a highlight referencing a turn. The turn id is not
// checked against the conversation: that referential contract belongs to
// the caller. Use AddHighlightStrict for an opt-in check.
func (s *IntakeSession) AddHighlight(turnID int, highlightType string, content string) {
	now := s.clock()
	s.Highlights = append(s.Highlights, ConversationHighlight{
		TurnID:        turnID,
		HighlightType: highlightType,
		Content:       content,
		ExtractedAt:   now,
	})
	s.Metadata.UpdatedAt = now
}

// AddHighlightStrict is AddHighlight plus a range check on the turn id.
// Strictness is opt-in; the permissive AddHighlight is the base contract.
func (s *IntakeSession) AddHighlightStrict(turnID int, highlightType string, content string) error {
	if turnID < 1 || turnID > len(s.Conversation) {
		return fmt.Errorf("highlight turn_id %d: no such turn (have %d)", turnID, len(s.Conversation))
	}
	s.AddHighlight(turnID, highlightType, content)
	return nil
}

// AddDocument routes a processed document to the manifest and keeps the
// metadata progress counters in step.
func (s *IntakeSession) AddDocument(doc ProcessedDocument) {
	now := s.clock()
	s.Documents.addDocumentAt(doc, now)
	s.Metadata.DocumentsProcessed = s.Documents.TotalDocuments
	s.Metadata.UpdatedAt = now
}

// TransitionTo records a state change. It is an unconditional setter: the
// legality of a transition (say, exploring straight to complete) is the
// calling agent's contract, not enforced here.
func (s *IntakeSession) TransitionTo(state State) {
	s.Metadata.State = state
	s.Metadata.UpdatedAt = s.clock()
}
