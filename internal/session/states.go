package session

// State identifies where an intake session is in its lifecycle. The
// conversational agent drives transitions; the model records them without
// gating (see IntakeSession.TransitionTo).
type State string

const (
	StateExploring   State = "exploring"
	StateRefining    State = "refining"
	StateDocumenting State = "documenting"
	StateConfirming  State = "confirming"
	StateComplete    State = "complete"
	StatePaused      State = "paused"
)

func IsValidState(s State) bool {
	switch s {
	case StateExploring, StateRefining, StateDocumenting, StateConfirming, StateComplete, StatePaused:
		return true
	default:
		return false
	}
}

// ObjectiveType classifies what kind of task the session is shaping.
type ObjectiveType string

const (
	ObjectiveInvest  ObjectiveType = "invest"
	ObjectiveBuild   ObjectiveType = "build"
	ObjectiveExplore ObjectiveType = "explore"
	ObjectiveDecide  ObjectiveType = "decide"
	ObjectiveInvent  ObjectiveType = "invent"
)

func IsValidObjective(o ObjectiveType) bool {
	switch o {
	case ObjectiveInvest, ObjectiveBuild, ObjectiveExplore, ObjectiveDecide, ObjectiveInvent:
		return true
	default:
		return false
	}
}

// TimeHorizon is the analysis window the user cares about.
type TimeHorizon string

const (
	HorizonTactical   TimeHorizon = "tactical"    // < 3 months
	HorizonNearTerm   TimeHorizon = "near-term"   // 3-12 months
	HorizonMediumTerm TimeHorizon = "medium-term" // 1-3 years
	HorizonStrategic  TimeHorizon = "strategic"   // 3+ years
)

func IsValidTimeHorizon(h TimeHorizon) bool {
	switch h {
	case HorizonTactical, HorizonNearTerm, HorizonMediumTerm, HorizonStrategic:
		return true
	default:
		return false
	}
}

// RiskAppetite is the user's stated risk tolerance.
type RiskAppetite string

const (
	RiskConservative RiskAppetite = "conservative"
	RiskModerate     RiskAppetite = "moderate"
	RiskAggressive   RiskAppetite = "aggressive"
)

func IsValidRiskAppetite(r RiskAppetite) bool {
	switch r {
	case RiskConservative, RiskModerate, RiskAggressive:
		return true
	default:
		return false
	}
}
