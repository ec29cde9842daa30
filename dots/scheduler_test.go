package dots_test

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/tsujio/game-color-dots/dots"
)

func TestSchedulerAfter(t *testing.T) {
	s := dots.NewScheduler(nil, zerolog.Nop())
	var fired []string

	s.After(20*time.Millisecond, func() { fired = append(fired, "b") })
	s.After(10*time.Millisecond, func() { fired = append(fired, "a") })
	s.After(10*time.Millisecond, func() { fired = append(fired, "a2") })

	s.Advance(5 * time.Millisecond)
	assert.Empty(t, fired)

	s.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"a", "a2"}, fired)
	assert.Equal(t, 15*time.Millisecond, s.Now())

	s.Advance(10 * time.Millisecond)
	assert.Equal(t, []string{"a", "a2", "b"}, fired)
	assert.Zero(t, s.Len())
}

func TestSchedulerEvery(t *testing.T) {
	s := dots.NewScheduler(nil, zerolog.Nop())
	count := 0
	id := s.Every(10*time.Millisecond, func() { count++ })

	s.Advance(35 * time.Millisecond)
	assert.Equal(t, 3, count)
	assert.True(t, s.Pending(id))

	assert.True(t, s.Cancel(id))
	s.Advance(time.Second)
	assert.Equal(t, 3, count)
	assert.False(t, s.Cancel(id))
	assert.False(t, s.Cancel(0))
}

func TestSchedulerNestedSchedule(t *testing.T) {
	s := dots.NewScheduler(nil, zerolog.Nop())
	var at []time.Duration

	s.After(10*time.Millisecond, func() {
		at = append(at, s.Now())
		s.After(5*time.Millisecond, func() { at = append(at, s.Now()) })
	})

	s.Advance(20 * time.Millisecond)
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 15 * time.Millisecond}, at)
}

func TestSchedulerDropsStaleTasks(t *testing.T) {
	gen := uint64(1)
	s := dots.NewScheduler(func() uint64 { return gen }, zerolog.Nop())

	stale, fresh := false, false
	s.After(10*time.Millisecond, func() { stale = true })
	periodic := s.Every(10*time.Millisecond, func() { stale = true })

	gen++
	s.After(10*time.Millisecond, func() { fresh = true })

	s.Advance(50 * time.Millisecond)
	assert.False(t, stale)
	assert.True(t, fresh)
	assert.False(t, s.Pending(periodic))
	assert.Zero(t, s.Len())
}

func TestSchedulerEveryRejectsZeroPeriod(t *testing.T) {
	s := dots.NewScheduler(nil, zerolog.Nop())
	assert.Panics(t, func() { s.Every(0, func() {}) })
}
