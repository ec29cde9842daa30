package dots

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

var (
	ErrIllegalTransition = errors.New("illegal phase transition")
	ErrNotPlaying        = errors.New("session is not playing")
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
	PhaseTransitioningLevel
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseTransitioningLevel:
		return "transitioning-level"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

var phaseTransitions = map[Phase][]Phase{
	PhaseIdle:               {PhasePlaying},
	PhasePlaying:            {PhasePlaying, PhaseWon, PhaseLost, PhaseTransitioningLevel},
	PhaseWon:                {PhasePlaying},
	PhaseLost:               {PhasePlaying},
	PhaseTransitioningLevel: {PhasePlaying},
}

func (p Phase) CanTransition(to Phase) bool {
	return lo.Contains(phaseTransitions[p], to)
}

func checkTransition(from, to Phase) error {
	if !from.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return nil
}
