package task

import (
	"fmt"
	"strings"

	"github.com/quillback/intake/internal/session"
)

// ValidationError names one field that is missing or malformed, so the
// calling agent can recover (re-prompt the user) instead of crashing the
// session.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates field errors from one Validate pass.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, ve := range e {
		parts = append(parts, ve.Error())
	}
	return "invalid task output: " + strings.Join(parts, "; ")
}

// Validate checks that every required field is populated. Required list
// fields must be non-nil (use an empty slice if there are no entries);
// key_questions may legitimately be empty but must be present. All failures
// are reported, not just the first.
func (o Output) Validate() []ValidationError {
	var errs []ValidationError

	require := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, ValidationError{Field: field, Message: "required"})
		}
	}

	require("intake_id", o.IntakeID)
	require("title", o.Title)
	require("one_line_ask", o.OneLineAsk)
	require("background", o.Background)
	require("core_thesis", o.CoreThesis)
	require("decision_stakes", o.DecisionStakes)

	if o.CreatedAt.IsZero() {
		errs = append(errs, ValidationError{Field: "created_at", Message: "required"})
	}

	if o.Objective == "" {
		errs = append(errs, ValidationError{Field: "objective", Message: "required"})
	} else if !session.IsValidObjective(o.Objective) {
		errs = append(errs, ValidationError{Field: "objective", Message: fmt.Sprintf("invalid objective %q", o.Objective)})
	}

	if o.TimeHorizon == "" {
		errs = append(errs, ValidationError{Field: "time_horizon", Message: "required"})
	} else if !session.IsValidTimeHorizon(o.TimeHorizon) {
		errs = append(errs, ValidationError{Field: "time_horizon", Message: fmt.Sprintf("invalid time horizon %q", o.TimeHorizon)})
	}

	if o.RiskAppetite == "" {
		errs = append(errs, ValidationError{Field: "risk_appetite", Message: "required"})
	} else if !session.IsValidRiskAppetite(o.RiskAppetite) {
		errs = append(errs, ValidationError{Field: "risk_appetite", Message: fmt.Sprintf("invalid risk appetite %q", o.RiskAppetite)})
	}

	if o.KeyQuestions == nil {
		errs = append(errs, ValidationError{Field: "key_questions", Message: "required (use [] if none)"})
	}
	if o.KillCriteria == nil {
		errs = append(errs, ValidationError{Field: "kill_criteria", Message: "required (use [] if none)"})
	}
	if o.Constraints == nil {
		errs = append(errs, ValidationError{Field: "constraints", Message: "required (use [] if none)"})
	}

	for i, m := range o.ReferenceMaterials {
		if strings.TrimSpace(m.Name) == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("reference_materials[%d].name", i), Message: "required"})
		}
		if strings.TrimSpace(m.Summary) == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("reference_materials[%d].summary", i), Message: "required"})
		}
	}

	return errs
}
