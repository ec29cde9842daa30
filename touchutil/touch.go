package touchutil

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/samber/lo"
	"github.com/tsujio/game-util/mathutil"
)

type TouchType int

const (
	TouchTypeMouseButtonPress TouchType = iota
	TouchTypeScreenTouch
)

type Touch interface {
	Update()
	Type() TouchType
	IsJustReleased() bool
	Position() *mathutil.Vector2D
}

// Input is what happened to the pointer during one tick.
type Input struct {
	// Pos is the pointer position, or nil when the mouse cursor did not move
	// and no touch or mouse press is held.
	Pos *mathutil.Vector2D

	// Moved is set when Pos changed since the previous tick.
	Moved bool

	// Touch is set when Pos comes from a screen touch rather than the mouse.
	Touch bool

	// Activated is set on a click or a new tap.
	Activated bool
}

// Tracker follows the mouse cursor and any screen touches across ticks.
type Tracker struct {
	touches              []Touch
	justScreenTouchedIDs []ebiten.TouchID
	cursor               *mathutil.Vector2D
	lastPos              *mathutil.Vector2D
	sawScreenTouch       bool
}

func NewTracker() *Tracker {
	return &Tracker{}
}

// SawScreenTouch reports whether any screen touch has ever been seen.
func (t *Tracker) SawScreenTouch() bool {
	return t.sawScreenTouch
}

func (t *Tracker) Update() Input {
	var in Input

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		t.touches = append(t.touches, &mouseButtonPress{
			id: ebiten.MouseButtonLeft,
		})
		in.Activated = true
	}

	t.justScreenTouchedIDs = inpututil.AppendJustPressedTouchIDs(t.justScreenTouchedIDs[:0])
	for _, id := range t.justScreenTouchedIDs {
		t.touches = append(t.touches, &screenTouch{
			id: id,
		})
		t.sawScreenTouch = true
		in.Activated = true
	}

	for _, touch := range t.touches {
		touch.Update()
	}

	if held, ok := pointerTouch(t.touches); ok {
		in.Pos = held.Position()
		in.Touch = held.Type() == TouchTypeScreenTouch
	} else if x, y := ebiten.CursorPosition(); t.cursor == nil || t.cursor.X != float64(x) || t.cursor.Y != float64(y) {
		t.cursor = mathutil.NewVector2D(float64(x), float64(y))
		in.Pos = t.cursor
	}

	if in.Pos != nil {
		in.Moved = t.lastPos == nil || t.lastPos.X != in.Pos.X || t.lastPos.Y != in.Pos.Y
		t.lastPos = in.Pos.Clone()
	}

	t.touches = lo.Filter(t.touches, func(touch Touch, _ int) bool {
		return !touch.IsJustReleased()
	})

	return in
}

// pointerTouch picks the held touch that drives the pointer: a screen touch
// first, then a mouse press. Without one the tracker follows the cursor.
func pointerTouch(touches []Touch) (Touch, bool) {
	if screen, ok := lo.Find(touches, func(touch Touch) bool {
		return touch.Type() == TouchTypeScreenTouch
	}); ok {
		return screen, true
	}
	return lo.Find(touches, func(touch Touch) bool {
		return touch.Type() == TouchTypeMouseButtonPress
	})
}

type mouseButtonPress struct {
	id  ebiten.MouseButton
	pos *mathutil.Vector2D
}

func (m *mouseButtonPress) Update() {
	x, y := ebiten.CursorPosition()
	m.pos = mathutil.NewVector2D(float64(x), float64(y))
}

func (m *mouseButtonPress) Type() TouchType {
	return TouchTypeMouseButtonPress
}

func (m *mouseButtonPress) IsJustReleased() bool {
	return inpututil.IsMouseButtonJustReleased(m.id)
}

func (m *mouseButtonPress) Position() *mathutil.Vector2D {
	return m.pos
}

type screenTouch struct {
	id  ebiten.TouchID
	pos *mathutil.Vector2D
}

func (s *screenTouch) Update() {
	var x, y int
	if s.IsJustReleased() {
		x, y = inpututil.TouchPositionInPreviousTick(s.id)
	} else {
		x, y = ebiten.TouchPosition(s.id)
	}
	s.pos = mathutil.NewVector2D(float64(x), float64(y))
}

func (s *screenTouch) Type() TouchType {
	return TouchTypeScreenTouch
}

func (s *screenTouch) IsJustReleased() bool {
	return inpututil.IsTouchJustReleased(s.id)
}

func (s *screenTouch) Position() *mathutil.Vector2D {
	return s.pos
}
