package dots

import (
	"time"

	"github.com/kamstrup/intmap"
	"github.com/rs/zerolog"
)

type TaskID uint64

type task struct {
	id     TaskID
	at     time.Duration
	period time.Duration
	gen    uint64
	fn     func()
}

// Scheduler runs delayed and periodic callbacks against a virtual clock that
// only moves when Advance is called, so every callback fires on the caller's
// goroutine between frames.
//
// Each task remembers the generation reported when it was scheduled. A task
// that comes due after the generation has moved on is discarded unrun.
type Scheduler struct {
	now        time.Duration
	lastID     TaskID
	tasks      *intmap.Map[TaskID, *task]
	generation func() uint64
	logger     zerolog.Logger
}

func NewScheduler(generation func() uint64, logger zerolog.Logger) *Scheduler {
	if generation == nil {
		generation = func() uint64 { return 0 }
	}
	return &Scheduler{
		tasks:      intmap.New[TaskID, *task](8),
		generation: generation,
		logger:     logger,
	}
}

func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) TaskID {
	return s.schedule(d, 0, fn)
}

// Every schedules fn to run each period until cancelled. period must be positive.
func (s *Scheduler) Every(period time.Duration, fn func()) TaskID {
	if period <= 0 {
		panic("dots: non-positive scheduler period")
	}
	return s.schedule(period, period, fn)
}

func (s *Scheduler) schedule(d, period time.Duration, fn func()) TaskID {
	s.lastID++
	t := &task{
		id:     s.lastID,
		at:     s.now + max(d, 0),
		period: period,
		gen:    s.generation(),
		fn:     fn,
	}
	s.tasks.Put(t.id, t)
	return t.id
}

// Cancel removes a pending task. Cancelling an unknown or zero id is a no-op.
func (s *Scheduler) Cancel(id TaskID) bool {
	if id == 0 {
		return false
	}
	return s.tasks.Del(id)
}

func (s *Scheduler) Pending(id TaskID) bool {
	return id != 0 && s.tasks.Has(id)
}

func (s *Scheduler) Len() int {
	return s.tasks.Len()
}

// Advance moves the clock forward by d, running due tasks in deadline order.
// Ties are broken by scheduling order.
func (s *Scheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		next := s.nextDue(target)
		if next == nil {
			break
		}
		s.now = next.at

		if next.period > 0 {
			next.at += next.period
		} else {
			s.tasks.Del(next.id)
		}

		if next.gen != s.generation() {
			s.tasks.Del(next.id)
			s.logger.Debug().
				Uint64("task", uint64(next.id)).
				Uint64("generation", next.gen).
				Msg("drop stale task")
			continue
		}

		next.fn()
	}
	s.now = max(s.now, target)
}

func (s *Scheduler) nextDue(target time.Duration) *task {
	var next *task
	s.tasks.ForEach(func(_ TaskID, t *task) bool {
		if t.at > target {
			return true
		}
		if next == nil || t.at < next.at || (t.at == next.at && t.id < next.id) {
			next = t
		}
		return true
	})
	return next
}
