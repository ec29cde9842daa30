package main

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/tsujio/game-color-dots/dots"
)

var backgroundStyle = tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack)

var sideStyles = map[dots.Side]tcell.Style{
	dots.SideA: backgroundStyle.Foreground(tcell.ColorRed),
	dots.SideB: backgroundStyle.Foreground(tcell.ColorBlack),
}

var dotRunes = map[dots.Side]rune{
	dots.SideA: '●',
	dots.SideB: '○',
}

// display collects the status text and turns gameplay events into sounds.
type display struct {
	score    string
	topScore string
	plays    string
	message  string
	cues     *cues
}

func (d *display) ShowScore(score, total int) {
	d.score = fmt.Sprintf("%d / %d", score, total)
}

func (d *display) ShowTopScore(topScore int) {
	d.topScore = strconv.Itoa(topScore)
}

func (d *display) ShowPlays(plays int) {
	d.plays = strconv.Itoa(plays)
}

func (d *display) ShowMessage(msg string) {
	d.message = msg
}

func (d *display) ClearMessage() {
	d.message = ""
}

func (d *display) OnEvent(e dots.Event) {
	switch e.Type {
	case dots.EventScored:
		d.cues.Score()
	case dots.EventLost:
		d.cues.Lose()
	case dots.EventWon, dots.EventLevelCleared:
		d.cues.Win()
	}
}

func (g *game) draw() {
	g.screen.Clear()
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			g.screen.SetContent(x, y, ' ', nil, backgroundStyle)
		}
	}

	for _, d := range g.session.Dots() {
		x, y := toCell(d.Pos.X, d.Pos.Y)
		g.setCell(x, y, dotRunes[d.Side], sideStyles[d.Side])
	}

	p := g.session.Player()
	r := '█'
	if p.Alpha < dots.MaxAlpha/2 {
		r = '▒'
	}
	x0, y0 := toCell(p.Pos.X, p.Pos.Y)
	x1, y1 := toCell(p.Pos.X+p.Size, p.Pos.Y+p.Size)
	for y := y0; y < max(y1, y0+1); y++ {
		for x := x0; x < max(x1, x0+1); x++ {
			g.setCell(x, y, r, sideStyles[p.Side])
		}
	}

	status := fmt.Sprintf("Score: %s  Top: %s  Games: %s", g.display.score, g.display.topScore, g.display.plays)
	g.drawText(0, g.rows-1, status, backgroundStyle.Reverse(true))

	if msg := g.display.message; msg != "" {
		g.drawText((g.cols-len([]rune(msg)))/2, (g.rows-1)/2, msg, backgroundStyle)
	}

	g.screen.Show()
}

// setCell draws inside the playfield only; the last row is the status line.
func (g *game) setCell(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= g.cols || y >= g.rows-1 {
		return
	}
	g.screen.SetContent(x, y, r, nil, style)
}

func (g *game) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		g.screen.SetContent(x+i, y, r, nil, style)
	}
}
