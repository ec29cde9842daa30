package dots

import (
	"math/rand"

	"github.com/tsujio/game-util/mathutil"
)

type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) Flip() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}

func (s Side) String() string {
	if s == SideA {
		return "A"
	}
	return "B"
}

// Direction is the way a dot travels, not the edge it enters from.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

var directionUnits = [...]*mathutil.Vector2D{
	Up:    mathutil.NewVector2D(0, -1),
	Right: mathutil.NewVector2D(1, 0),
	Down:  mathutil.NewVector2D(0, 1),
	Left:  mathutil.NewVector2D(-1, 0),
}

func (d Direction) Unit() *mathutil.Vector2D {
	return directionUnits[d].Clone()
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return "unknown"
}

// Entity is an axis-aligned square. Pos is its top-left corner.
type Entity struct {
	Pos  *mathutil.Vector2D
	Size float64
	Side Side
}

func (e *Entity) Overlaps(o *Entity) bool {
	return e.Pos.X < o.Pos.X+o.Size &&
		e.Pos.X+e.Size > o.Pos.X &&
		e.Pos.Y < o.Pos.Y+o.Size &&
		e.Pos.Y+e.Size > o.Pos.Y
}

type DotID uint64

type Dot struct {
	Entity
	ID        DotID
	Direction Direction
	Speed     float64
}

func (d *Dot) Advance() {
	d.Pos = d.Pos.Add(d.Direction.Unit().Mul(d.Speed))
}

// Field is the playfield a dot is spawned around.
type Field struct {
	Width, Height float64
	DotSize       float64
}

const (
	minDotSpeed   = 1.0
	dotSpeedRange = 2.0
	maxSpawnSlack = 200
)

// NewDot places a dot just outside the edge opposite to its direction of
// travel, pushed back by up to maxSpawnSlack units so entries are staggered.
func NewDot(r *rand.Rand, f Field, id DotID, side Side) *Dot {
	dir := Direction(r.Intn(4))
	slack := float64(r.Intn(maxSpawnSlack))

	var x, y float64
	switch dir {
	case Up:
		x = float64(int(r.Float64() * f.Width))
		y = f.Height + f.DotSize + slack
	case Right:
		x = -f.DotSize - slack
		y = float64(int(r.Float64() * f.Height))
	case Down:
		x = float64(int(r.Float64() * f.Width))
		y = -f.DotSize - slack
	case Left:
		x = f.Width + f.DotSize + slack
		y = float64(int(r.Float64() * f.Height))
	}

	return &Dot{
		Entity: Entity{
			Pos:  mathutil.NewVector2D(x, y),
			Size: f.DotSize,
			Side: side,
		},
		ID:        id,
		Direction: dir,
		Speed:     r.Float64()*dotSpeedRange + minDotSpeed,
	}
}

// Exited reports whether the dot has crossed the far edge of f.
func (f Field) Exited(d *Dot) bool {
	switch d.Direction {
	case Up:
		return d.Pos.Y < f.DotSize
	case Right:
		return d.Pos.X > f.Width+f.DotSize
	case Down:
		return d.Pos.Y > f.Height
	case Left:
		return d.Pos.X < f.DotSize
	}
	return false
}
