package task

import (
	"time"

	"github.com/quillback/intake/internal/session"
)

// Material is one reference document entry carried into the task document:
// the original name plus the processing summary.
type Material struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// Output is the finalized task record handed to the downstream pipeline.
// It is a snapshot: constructed once from a completed intake session and
// never mutated again. It holds copies, not references, so later session
// activity cannot reach it.
type Output struct {
	// Metadata.
	IntakeID           string    `json:"intake_id"`
	CreatedAt          time.Time `json:"created_at"`
	SessionTurns       int       `json:"session_turns"`
	DocumentsProcessed int       `json:"documents_processed"`

	// Core task definition.
	Title      string                `json:"title"`
	Objective  session.ObjectiveType `json:"objective"`
	OneLineAsk string                `json:"one_line_ask"`

	// Context.
	Background   string   `json:"background"` // 2-3 paragraphs
	CoreThesis   string   `json:"core_thesis"`
	KeyQuestions []string `json:"key_questions"`

	// Constraints and criteria.
	KillCriteria   []string             `json:"kill_criteria"`
	Constraints    []string             `json:"constraints"`
	TimeHorizon    session.TimeHorizon  `json:"time_horizon"`
	RiskAppetite   session.RiskAppetite `json:"risk_appetite"`
	DecisionStakes string               `json:"decision_stakes"`

	// Prior beliefs.
	PriorHypotheses []string `json:"prior_hypotheses"`

	// Reference materials.
	ReferenceMaterials []Material `json:"reference_materials"`

	// Conversation context.
	ConversationHighlights []string `json:"conversation_highlights"`
}

// Draft carries the agent-authored fields that are not tracked on the
// session itself and only exist once the agent writes the final document.
type Draft struct {
	OneLineAsk      string
	Background      string
	DecisionStakes  string
	PriorHypotheses []string
}

// FromSession builds a validated task output from a completed session plus
// the agent's draft fields. Validation failures name the offending fields.
func FromSession(s *session.IntakeSession, draft Draft, now time.Time) (Output, error) {
	out := Build(s, draft, now)
	if errs := out.Validate(); len(errs) > 0 {
		return Output{}, ValidationErrors(errs)
	}
	return out, nil
}

// Build assembles a task output from a session without validating it.
// Useful for previewing a half-finished session. Every slice is copied;
// the output keeps no reference back into the live session.
func Build(s *session.IntakeSession, draft Draft, now time.Time) Output {
	out := Output{
		IntakeID:           s.Metadata.IntakeID,
		CreatedAt:          now.UTC(),
		SessionTurns:       s.Metadata.TotalTurns,
		DocumentsProcessed: s.Metadata.DocumentsProcessed,

		Title:      s.WorkingTitle,
		Objective:  s.Objective,
		OneLineAsk: draft.OneLineAsk,

		Background:   draft.Background,
		CoreThesis:   s.WorkingThesis,
		KeyQuestions: copyStrings(s.KeyQuestions),

		KillCriteria:   copyStrings(s.KillCriteria),
		Constraints:    copyStrings(s.Constraints),
		TimeHorizon:    s.TimeHorizon,
		RiskAppetite:   s.RiskAppetite,
		DecisionStakes: draft.DecisionStakes,

		PriorHypotheses: copyStrings(draft.PriorHypotheses),
	}

	out.ReferenceMaterials = make([]Material, 0, len(s.Documents.Documents))
	for _, doc := range s.Documents.Documents {
		out.ReferenceMaterials = append(out.ReferenceMaterials, Material{
			Name:    doc.OriginalName,
			Summary: doc.Summary,
		})
	}

	out.ConversationHighlights = make([]string, 0, len(s.Highlights))
	for _, h := range s.Highlights {
		out.ConversationHighlights = append(out.ConversationHighlights, h.Content)
	}

	return out
}

func copyStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
