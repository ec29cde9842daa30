package main

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const glyphWidth = 7

// hud keeps the score line and the center message for drawing.
type hud struct {
	score    string
	topScore string
	plays    string
	message  string
}

func (h *hud) ShowScore(score, total int) {
	h.score = fmt.Sprintf("%d / %d", score, total)
}

func (h *hud) ShowTopScore(topScore int) {
	h.topScore = strconv.Itoa(topScore)
}

func (h *hud) ShowPlays(plays int) {
	h.plays = strconv.Itoa(plays)
}

func (h *hud) ShowMessage(msg string) {
	h.message = msg
}

func (h *hud) ClearMessage() {
	h.message = ""
}

func (h *hud) statusLine() string {
	return fmt.Sprintf("Score: %s  Top: %s  Games: %s", h.score, h.topScore, h.plays)
}

func (h *hud) Draw(screen *ebiten.Image, width, height int) {
	face := basicfont.Face7x13
	text.Draw(screen, h.statusLine(), face, 4, 14, color.Black)

	if h.message != "" {
		x := width/2 - len(h.message)*glyphWidth/2
		text.Draw(screen, h.message, face, x, height/2, color.Black)
	}
}
