package dots

import (
	"time"

	"github.com/tsujio/game-util/mathutil"
)

const (
	MaxAlpha   = 100
	blinkSteps = 10
)

type Player struct {
	Entity
	BaseSize float64

	// Alpha is the opacity in percent. It pulses while invincible.
	Alpha int

	sched         *Scheduler
	blinkInterval time.Duration
	blink         TaskID
	invincible    bool
}

func NewPlayer(sched *Scheduler, size float64, blinkInterval time.Duration) *Player {
	return &Player{
		Entity: Entity{
			Pos:  mathutil.NewVector2D(0, 0),
			Size: size,
			Side: SideA,
		},
		BaseSize:      size,
		Alpha:         MaxAlpha,
		sched:         sched,
		blinkInterval: blinkInterval,
	}
}

// Reset restores the base size. The side is kept.
func (p *Player) Reset() {
	p.Size = p.BaseSize
}

func (p *Player) Grow() {
	p.Size++
}

func (p *Player) Shrink() {
	if p.Size > 1 {
		p.Size--
	}
}

func (p *Player) Flip() {
	p.Side = p.Side.Flip()
}

func (p *Player) Invincible() bool {
	return p.invincible
}

// MoveTo centers the player on (x, y).
func (p *Player) MoveTo(x, y float64) {
	p.Pos = mathutil.NewVector2D(x-p.Size/2, y-p.Size/2)
}

// SetInvincible toggles the invincibility window. Turning it on restarts the
// alpha pulse; turning it off stops the pulse and restores full opacity.
func (p *Player) SetInvincible(on bool) {
	p.sched.Cancel(p.blink)
	p.blink = 0

	if !on {
		p.invincible = false
		p.Alpha = MaxAlpha
		return
	}

	p.invincible = true
	p.Alpha = 0
	tick, dir := 0, 1
	p.blink = p.sched.Every(p.blinkInterval, func() {
		tick += dir
		p.Alpha = tick * MaxAlpha / blinkSteps
		if tick >= blinkSteps {
			dir = -1
		}
		if tick <= 0 {
			dir = 1
		}
	})
}

func (p *Player) blinking() bool {
	return p.sched.Pending(p.blink)
}
