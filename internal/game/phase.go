package game

import "fmt"

// PhaseKind identifies where the current question is in its pipeline.
type PhaseKind int

const (
	PhaseResults PhaseKind = iota
	PhaseNormalAnswering
	PhaseBettingBetting
	PhaseBettingAnswering
	PhaseEstimationAnswering
	PhaseVersusSelecting
	PhaseVersusAnswering
	PhaseGameEnding
)

var phaseKindNames = map[PhaseKind]string{
	PhaseResults:             "Results",
	PhaseNormalAnswering:     "NormalAnswering",
	PhaseBettingBetting:      "BettingBetting",
	PhaseBettingAnswering:    "BettingAnswering",
	PhaseEstimationAnswering: "EstimationAnswering",
	PhaseVersusSelecting:     "VersusSelecting",
	PhaseVersusAnswering:     "VersusAnswering",
	PhaseGameEnding:          "GameEnding",
}

func (k PhaseKind) String() string {
	if name, ok := phaseKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(k))
}

// Phase is the single source of truth for which player actions are
// currently legal. It pairs the pipeline position with a readiness flag;
// the flag is meaningless (always false) for the terminal GameEnding kind.
// Keeping kind and readiness in one value behind one lock avoids the race
// that two separately synchronized fields would reintroduce.
type Phase struct {
	Kind  PhaseKind
	Ready bool
}

func (p Phase) String() string {
	if p.Kind == PhaseGameEnding {
		return p.Kind.String()
	}
	return fmt.Sprintf("%s(%t)", p.Kind, p.Ready)
}

// IsAnswering reports whether the phase is one of the four answering
// sub-phases.
func (p Phase) IsAnswering() bool {
	switch p.Kind {
	case PhaseNormalAnswering, PhaseBettingAnswering, PhaseEstimationAnswering, PhaseVersusAnswering:
		return true
	}
	return false
}

// initialPhase returns the sub-phase a question of the given type
// begins in.
func initialPhase(qt QuestionType) PhaseKind {
	switch qt {
	case QuestionBetting:
		return PhaseBettingBetting
	case QuestionEstimation:
		return PhaseEstimationAnswering
	case QuestionVersus:
		return PhaseVersusSelecting
	default:
		return PhaseNormalAnswering
	}
}
