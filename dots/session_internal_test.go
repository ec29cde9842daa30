package dots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveInactiveDotPanics(t *testing.T) {
	s, err := NewSession(DefaultConfig(), nil)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	d := s.Dots()[0]
	s.removeDot(d)
	assert.Panics(t, func() { s.removeDot(d) })
}

func TestPhaseTransitions(t *testing.T) {
	assert.NoError(t, checkTransition(PhaseIdle, PhasePlaying))
	assert.NoError(t, checkTransition(PhasePlaying, PhasePlaying))
	assert.NoError(t, checkTransition(PhasePlaying, PhaseTransitioningLevel))
	assert.NoError(t, checkTransition(PhaseTransitioningLevel, PhasePlaying))

	assert.ErrorIs(t, checkTransition(PhaseIdle, PhaseWon), ErrIllegalTransition)
	assert.ErrorIs(t, checkTransition(PhaseLost, PhaseWon), ErrIllegalTransition)
	assert.ErrorIs(t, checkTransition(PhaseWon, PhaseLost), ErrIllegalTransition)
	assert.ErrorContains(t, checkTransition(PhaseWon, PhaseLost), "won -> lost")
}
