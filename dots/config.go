package dots

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
)

type Mode int

const (
	// ModeSingle plays one wave of Total dots and waits for the player after
	// the run ends.
	ModeSingle Mode = iota
	// ModeLevels walks through Levels, advancing automatically after a win
	// and dropping back to the first level after a loss.
	ModeLevels
)

func (m Mode) String() string {
	if m == ModeLevels {
		return "levels"
	}
	return "single"
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "single":
		return ModeSingle, nil
	case "levels":
		return ModeLevels, nil
	}
	return 0, fmt.Errorf("unknown mode %q", s)
}

type Config struct {
	Width, Height float64
	DotSize       float64
	PlayerSize    float64

	Mode   Mode
	Total  int
	Levels []int

	InvincibleFor   time.Duration
	BlinkInterval   time.Duration
	TransitionDelay time.Duration

	// TouchOffset shifts the player up and left of a touch point so the
	// finger does not cover it.
	TouchOffset float64
	InputLabel  string

	Random *rand.Rand
	Logger zerolog.Logger
}

func DefaultConfig() Config {
	return Config{
		Width:           640,
		Height:          480,
		DotSize:         8,
		PlayerSize:      16,
		Mode:            ModeSingle,
		Total:           50,
		Levels:          []int{5, 10, 15, 20, 25},
		InvincibleFor:   1500 * time.Millisecond,
		BlinkInterval:   10 * time.Millisecond,
		TransitionDelay: 2 * time.Second,
		TouchOffset:     100,
		InputLabel:      "Click",
		Logger:          zerolog.Nop(),
	}
}

func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield %vx%v is empty", c.Width, c.Height))
	}
	if c.DotSize <= 0 || c.PlayerSize <= 0 {
		errs = append(errs, errors.New("entity sizes must be positive"))
	}
	if c.BlinkInterval <= 0 {
		errs = append(errs, errors.New("blink interval must be positive"))
	}
	if c.InvincibleFor < 0 {
		errs = append(errs, fmt.Errorf("invincibility window must not be negative, got %s", c.InvincibleFor))
	}
	if c.TransitionDelay < 0 {
		errs = append(errs, fmt.Errorf("transition delay must not be negative, got %s", c.TransitionDelay))
	}
	switch c.Mode {
	case ModeSingle:
		if c.Total <= 0 {
			errs = append(errs, fmt.Errorf("total must be positive, got %d", c.Total))
		}
	case ModeLevels:
		if len(c.Levels) == 0 {
			errs = append(errs, errors.New("level table is empty"))
		}
		for i, n := range c.Levels {
			if n <= 0 {
				errs = append(errs, fmt.Errorf("level %d target must be positive, got %d", i, n))
			}
		}
	default:
		errs = append(errs, fmt.Errorf("unknown mode %d", c.Mode))
	}
	return errors.Join(errs...)
}

func (c *Config) field() Field {
	return Field{Width: c.Width, Height: c.Height, DotSize: c.DotSize}
}
