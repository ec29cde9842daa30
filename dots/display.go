package dots

// Display receives the text a frontend shows next to the playfield.
type Display interface {
	ShowScore(score, total int)
	ShowTopScore(topScore int)
	ShowPlays(plays int)
	ShowMessage(text string)
	ClearMessage()
}

type EventType int

const (
	EventStarted EventType = iota
	EventScored
	EventWon
	EventLost
	EventLevelCleared
)

type Event struct {
	Type  EventType
	Score int
	Level int
}

// Listener is implemented by displays that also want gameplay events, e.g.
// to play a sound.
type Listener interface {
	OnEvent(Event)
}

type nopDisplay struct{}

func (nopDisplay) ShowScore(int, int) {}
func (nopDisplay) ShowTopScore(int) {}
func (nopDisplay) ShowPlays(int) {}
func (nopDisplay) ShowMessage(string) {}
func (nopDisplay) ClearMessage() {}
