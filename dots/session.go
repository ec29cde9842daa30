// Package dots is the simulation core of the color dots game.
package dots

import (
	"cmp"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/kamstrup/intmap"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

type GameState struct {
	Score    int
	TopScore int
	Total    int
	Level    int
	Plays    int
	Phase    Phase
}

// Session owns one player and the dots of the current run. It is driven from
// a single goroutine: Update once per frame, plus PointerMoved and Activate
// as input arrives.
type Session struct {
	cfg     Config
	field   Field
	random  *rand.Rand
	logger  zerolog.Logger
	display Display
	sched   *Scheduler
	player  *Player

	state     GameState
	dots      *intmap.Map[DotID, *Dot]
	lastDotID DotID

	// generation changes on every restart; timers scheduled under an older
	// generation are dropped by the scheduler.
	generation        uint64
	transition        TaskID
	invincibleTimeout TaskID
}

func NewSession(cfg Config, display Display) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.Levels = slices.Clone(cfg.Levels)
	if cfg.Random == nil {
		cfg.Random = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if display == nil {
		display = nopDisplay{}
	}

	s := &Session{
		cfg:     cfg,
		field:   cfg.field(),
		random:  cfg.Random,
		logger:  cfg.Logger,
		display: display,
		state:   GameState{Plays: 1},
		dots:    intmap.New[DotID, *Dot](max(cfg.Total, 64)),
	}
	s.sched = NewScheduler(func() uint64 { return s.generation }, cfg.Logger)
	s.player = NewPlayer(s.sched, cfg.PlayerSize, cfg.BlinkInterval)
	s.player.MoveTo(cfg.Width/2, cfg.Height/2)
	return s, nil
}

func (s *Session) State() GameState {
	return s.state
}

func (s *Session) Player() *Player {
	return s.player
}

func (s *Session) Field() Field {
	return s.field
}

// Dots returns the active dots ordered by id.
func (s *Session) Dots() []*Dot {
	ds := slices.Collect(s.dots.Values())
	slices.SortFunc(ds, func(a, b *Dot) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return ds
}

func (s *Session) DotCount() int {
	return s.dots.Len()
}

func (s *Session) CountSide(side Side) int {
	return lo.CountBy(s.Dots(), func(d *Dot) bool {
		return d.Side == side
	})
}

// Resize changes the playfield. Dots already in flight keep their positions;
// exits and respawns use the new size from the next frame on.
func (s *Session) Resize(width, height float64) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize to %vx%v: playfield is empty", width, height)
	}
	s.cfg.Width, s.cfg.Height = width, height
	s.field = s.cfg.field()
	return nil
}

func (s *Session) SetInputLabel(label string) {
	s.cfg.InputLabel = label
}

// Start begins the first run. Later runs go through Reset or Activate.
func (s *Session) Start() error {
	if s.state.Phase != PhaseIdle {
		return fmt.Errorf("start from %s: %w", s.state.Phase, ErrIllegalTransition)
	}
	s.begin()
	return nil
}

// Reset discards the current run and starts a new one at the current level.
// Pending level transitions are cancelled.
func (s *Session) Reset() {
	s.restart(true)
}

func (s *Session) Flip() error {
	if s.state.Phase != PhasePlaying {
		return fmt.Errorf("flip while %s: %w", s.state.Phase, ErrNotPlaying)
	}
	s.player.Flip()
	return nil
}

// Activate handles a click or tap: it flips the player's side while playing
// and otherwise moves the session on to its next run.
func (s *Session) Activate() {
	switch s.state.Phase {
	case PhasePlaying:
		_ = s.Flip()
	case PhaseIdle:
		s.begin()
	case PhaseTransitioningLevel:
		s.advanceLevel()
	case PhaseWon, PhaseLost:
		if s.cfg.Mode == ModeLevels {
			s.state.Level = 0
		}
		s.Reset()
	}
}

func (s *Session) PointerMoved(x, y float64, touch bool) {
	if touch {
		x -= s.cfg.TouchOffset
		y -= s.cfg.TouchOffset
	}
	s.player.MoveTo(x, y)
}

// Update advances the clock by dt and, while playing, moves every dot one
// step. A lost or won run still finishes the frame: later dots move and
// respawn, but no further collisions apply.
func (s *Session) Update(dt time.Duration) {
	s.sched.Advance(dt)

	if s.state.Phase != PhasePlaying {
		return
	}

	for _, d := range slices.Collect(s.dots.Values()) {
		d.Advance()

		if s.field.Exited(d) {
			s.removeDot(d)
			s.addDot(d.Side)
			continue
		}

		if s.state.Phase != PhasePlaying || s.player.Invincible() {
			continue
		}
		if d.Overlaps(&s.player.Entity) {
			s.collide(d)
		}
	}
}

func (s *Session) collide(d *Dot) {
	if d.Side != s.player.Side {
		s.lose()
		return
	}

	s.removeDot(d)
	s.player.Grow()
	s.addScore(1)
	s.emit(Event{Type: EventScored, Score: s.state.Score, Level: s.state.Level})

	if s.state.Score == s.state.Total {
		s.win()
	}
}

func (s *Session) addScore(v int) {
	s.state.Score += v
	s.state.TopScore = max(s.state.TopScore, s.state.Score)
	s.display.ShowScore(s.state.Score, s.state.Total)
	s.display.ShowTopScore(s.state.TopScore)
}

func (s *Session) target() int {
	if s.cfg.Mode == ModeLevels {
		return s.cfg.Levels[s.state.Level]
	}
	return s.cfg.Total
}

func (s *Session) begin() {
	if err := s.enter(PhasePlaying); err != nil {
		s.logger.Error().Err(err).Msg("begin run")
		return
	}

	s.state.Total = s.target()
	s.state.Score = 0

	side := SideA
	for i := 0; i < s.state.Total; i++ {
		side = side.Flip()
		s.addDot(side)
	}

	s.display.ClearMessage()
	s.display.ShowScore(s.state.Score, s.state.Total)
	s.display.ShowTopScore(s.state.TopScore)
	s.display.ShowPlays(s.state.Plays)

	s.player.SetInvincible(true)
	s.sched.Cancel(s.invincibleTimeout)
	s.invincibleTimeout = s.sched.After(s.cfg.InvincibleFor, func() {
		s.player.SetInvincible(false)
	})

	s.logger.Info().
		Stringer("mode", s.cfg.Mode).
		Int("level", s.state.Level).
		Int("total", s.state.Total).
		Int("plays", s.state.Plays).
		Msg("run started")
	s.emit(Event{Type: EventStarted, Level: s.state.Level})
}

func (s *Session) restart(countPlay bool) {
	s.generation++
	s.sched.Cancel(s.transition)
	s.transition = 0

	if countPlay {
		s.state.Plays++
	}
	s.dots.Clear()
	s.state.Score = 0
	s.player.Reset()
	s.begin()
}

func (s *Session) win() {
	if s.cfg.Mode == ModeLevels && s.state.Level+1 < len(s.cfg.Levels) {
		if err := s.enter(PhaseTransitioningLevel); err != nil {
			s.logger.Error().Err(err).Msg("win")
			return
		}
		s.display.ShowMessage(fmt.Sprintf("Level %d complete!", s.state.Level+1))
		s.transition = s.sched.After(s.cfg.TransitionDelay, s.advanceLevel)
		s.logger.Info().Int("level", s.state.Level).Int("score", s.state.Score).Msg("level cleared")
		s.emit(Event{Type: EventLevelCleared, Score: s.state.Score, Level: s.state.Level})
		return
	}

	if err := s.enter(PhaseWon); err != nil {
		s.logger.Error().Err(err).Msg("win")
		return
	}
	s.display.ShowMessage(fmt.Sprintf("You Win! %s to play again", s.cfg.InputLabel))
	s.logger.Info().Int("level", s.state.Level).Int("score", s.state.Score).Msg("won")
	s.emit(Event{Type: EventWon, Score: s.state.Score, Level: s.state.Level})
}

func (s *Session) lose() {
	if err := s.enter(PhaseLost); err != nil {
		s.logger.Error().Err(err).Msg("lose")
		return
	}
	s.display.ShowMessage(fmt.Sprintf("Game Over! %s to play again", s.cfg.InputLabel))
	s.logger.Info().Int("level", s.state.Level).Int("score", s.state.Score).Msg("lost")
	s.emit(Event{Type: EventLost, Score: s.state.Score, Level: s.state.Level})

	if s.cfg.Mode == ModeLevels {
		s.transition = s.sched.After(s.cfg.TransitionDelay, func() {
			s.state.Level = 0
			s.restart(true)
		})
	}
}

// advanceLevel starts the next level. Past the last level it replays the
// last one, though win never schedules that.
func (s *Session) advanceLevel() {
	s.state.Level = min(s.state.Level+1, len(s.cfg.Levels)-1)
	s.restart(false)
}

func (s *Session) enter(to Phase) error {
	if err := checkTransition(s.state.Phase, to); err != nil {
		return err
	}
	s.logger.Debug().Stringer("from", s.state.Phase).Stringer("to", to).Msg("phase")
	s.state.Phase = to
	return nil
}

func (s *Session) addDot(side Side) *Dot {
	s.lastDotID++
	d := NewDot(s.random, s.field, s.lastDotID, side)
	s.dots.Put(d.ID, d)
	return d
}

func (s *Session) removeDot(d *Dot) {
	if !s.dots.Del(d.ID) {
		panic(fmt.Sprintf("dots: removing inactive dot %d", d.ID))
	}
}

func (s *Session) emit(e Event) {
	if l, ok := s.display.(Listener); ok {
		l.OnEvent(e)
	}
}
