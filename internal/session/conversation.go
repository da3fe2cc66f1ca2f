package session

import "time"

// Turn roles. Other values are accepted and recorded as-is; the two below
// are the conventional ones.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is a single exchange in the intake conversation. Turn ids
// are 1-based, sequential and gapless, assigned by the owning session.
type ConversationTurn struct {
	TurnID    int       `json:"turn_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
	Phase     State     `json:"phase"` // session state when the turn happened

	DocumentsReferenced []string `json:"documents_referenced"` // document ids mentioned
	KeyInsight          string   `json:"key_insight,omitempty"`
}

// ConversationHighlight flags a key moment worth carrying into the task
// document. Highlights are append-only and never deduplicated.
type ConversationHighlight struct {
	TurnID        int       `json:"turn_id"`
	HighlightType string    `json:"highlight_type"` // thesis, kill_criterion, insight, concern, ...
	Content       string    `json:"content"`
	ExtractedAt   time.Time `json:"extracted_at"`
}
