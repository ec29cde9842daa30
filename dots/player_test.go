package dots

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTestPlayer() (*Player, *Scheduler) {
	sched := NewScheduler(nil, zerolog.Nop())
	return NewPlayer(sched, 16, 10*time.Millisecond), sched
}

func TestPlayerInvinciblePulse(t *testing.T) {
	p, sched := newTestPlayer()

	p.SetInvincible(true)
	assert.True(t, p.Invincible())
	assert.Equal(t, 0, p.Alpha)

	steps := []struct {
		advance time.Duration
		alpha   int
	}{
		{10 * time.Millisecond, 10},
		{90 * time.Millisecond, 100},
		{10 * time.Millisecond, 90},
		{90 * time.Millisecond, 0},
		{10 * time.Millisecond, 10},
	}
	for _, s := range steps {
		sched.Advance(s.advance)
		assert.Equal(t, s.alpha, p.Alpha, "at %s", sched.Now())
	}
}

func TestPlayerDeactivateIsIdempotent(t *testing.T) {
	p, sched := newTestPlayer()

	p.SetInvincible(true)
	sched.Advance(30 * time.Millisecond)

	p.SetInvincible(false)
	first := *p
	p.SetInvincible(false)

	assert.False(t, p.Invincible())
	assert.Equal(t, MaxAlpha, p.Alpha)
	assert.False(t, p.blinking())
	assert.Zero(t, sched.Len())
	assert.Equal(t, first.Alpha, p.Alpha)
	assert.Equal(t, first.invincible, p.invincible)
}

func TestPlayerReactivationReplacesPulse(t *testing.T) {
	p, sched := newTestPlayer()

	p.SetInvincible(true)
	sched.Advance(50 * time.Millisecond)
	p.SetInvincible(true)
	assert.Equal(t, 1, sched.Len())

	sched.Advance(10 * time.Millisecond)
	assert.Equal(t, 10, p.Alpha)
}

func TestPlayerSize(t *testing.T) {
	p, _ := newTestPlayer()

	p.Grow()
	p.Grow()
	assert.Equal(t, 18.0, p.Size)
	p.Shrink()
	assert.Equal(t, 17.0, p.Size)

	p.Flip()
	p.Reset()
	assert.Equal(t, 16.0, p.Size)
	assert.Equal(t, SideB, p.Side)
}

func TestPlayerMoveTo(t *testing.T) {
	p, _ := newTestPlayer()
	p.MoveTo(100, 50)
	assert.Equal(t, 92.0, p.Pos.X)
	assert.Equal(t, 42.0, p.Pos.Y)
}
