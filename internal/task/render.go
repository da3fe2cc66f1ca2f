package task

import (
	"fmt"
	"strconv"
	"strings"
)

// The rendered document is a handoff contract: downstream tooling parses it
// back by section heading, so the byte layout below is fixed. Identical
// outputs for identical field values, on every run.
const (
	outputTimeLayout = "2006-01-02T15:04:05.000000Z"

	placeholderNoMaterials  = "None provided."
	placeholderNoHighlights = "See full transcript."
	placeholderNoCriteria   = "None specified."
	placeholderNoHypotheses = "None stated."
)

const documentTemplate = `# Task: %s

## Metadata
- **Intake ID:** %s
- **Created:** %s
- **Session Turns:** %d
- **Documents Processed:** %d

## Objective
%s

## One-Line Ask
%s

## Background & Context
%s

## Core Thesis
%s

## Key Questions to Answer
%s

## Kill Criteria
%s

## Constraints
%s

## Time Horizon
%s

## Risk Appetite
%s

## Decision Stakes
%s

## Prior Hypotheses
%s

## Reference Materials
%s

See: reference_materials/manifest.json for full details.

## Conversation Highlights
%s

---
Generated by Intake Conversation Agent
Full transcript: data/intakes/%s/transcript.jsonl
`

// Markdown renders the task document. Pure function of the output's fields:
// no I/O, no clock, no randomness. Enum fields render as their underlying
// string tag, never a display label.
func (o Output) Markdown() string {
	materials := make([]string, 0, len(o.ReferenceMaterials))
	for _, m := range o.ReferenceMaterials {
		materials = append(materials, fmt.Sprintf("- **%s**: %s", m.Name, m.Summary))
	}

	return fmt.Sprintf(documentTemplate,
		o.Title,
		o.IntakeID,
		o.CreatedAt.UTC().Format(outputTimeLayout),
		o.SessionTurns,
		o.DocumentsProcessed,
		string(o.Objective),
		o.OneLineAsk,
		o.Background,
		o.CoreThesis,
		numberedList(o.KeyQuestions),
		bulletList(o.KillCriteria, placeholderNoCriteria),
		bulletList(o.Constraints, placeholderNoCriteria),
		string(o.TimeHorizon),
		string(o.RiskAppetite),
		o.DecisionStakes,
		bulletList(o.PriorHypotheses, placeholderNoHypotheses),
		joined(materials, placeholderNoMaterials),
		bulletList(o.ConversationHighlights, placeholderNoHighlights),
		o.IntakeID,
	)
}

// bulletList renders one "- item" line per entry in input order, or the
// section's placeholder when there are no entries.
func bulletList(items []string, empty string) string {
	if len(items) == 0 {
		return empty
	}
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}

// numberedList renders a strictly 1-based numbered list. An empty input
// renders as an empty section body, never a placeholder.
func numberedList(items []string) string {
	lines := make([]string, 0, len(items))
	for i, item := range items {
		lines = append(lines, strconv.Itoa(i+1)+". "+item)
	}
	return strings.Join(lines, "\n")
}

func joined(lines []string, empty string) string {
	if len(lines) == 0 {
		return empty
	}
	return strings.Join(lines, "\n")
}
