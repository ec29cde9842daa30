package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"github.com/tsujio/game-color-dots/dots"
	"github.com/tsujio/game-color-dots/settings"
	"github.com/tsujio/game-color-dots/touchutil"
)

const (
	gameName            = "color-dots"
	defaultScreenWidth  = 640
	defaultScreenHeight = 480
	screenMarginWidth   = 10
	screenMarginHeight  = 50
)

var sideColors = map[dots.Side]color.RGBA{
	dots.SideA: {0xff, 0x00, 0x00, 0xff},
	dots.SideB: {0x00, 0x00, 0x00, 0xff},
}

type Game struct {
	tracker       *touchutil.Tracker
	session       *dots.Session
	hud           *hud
	width, height int
	touchLabel    bool
}

func (g *Game) Update() error {
	in := g.tracker.Update()

	if !g.touchLabel && g.tracker.SawScreenTouch() {
		g.session.SetInputLabel("Tap")
		g.touchLabel = true
	}

	if in.Moved {
		g.session.PointerMoved(in.Pos.X, in.Pos.Y, in.Touch)
	}
	if in.Activated {
		g.session.Activate()
	}

	g.session.Update(time.Second / time.Duration(ebiten.TPS()))

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	for _, d := range g.session.Dots() {
		drawDot(screen, d)
	}

	drawPlayer(screen, g.session.Player())

	g.hud.Draw(screen, g.width, g.height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func drawDot(dst *ebiten.Image, d *dots.Dot) {
	x, y, size := float32(d.Pos.X), float32(d.Pos.Y), float32(d.Size)
	vector.DrawFilledRect(dst, x, y, size, size, sideColors[d.Side], true)
	if d.Side == dots.SideB {
		vector.DrawFilledRect(dst, x+1, y+1, size-2, size-2, color.White, true)
	}
}

func drawPlayer(dst *ebiten.Image, p *dots.Player) {
	size := float32(p.Size)
	vector.DrawFilledRect(dst, float32(p.Pos.X), float32(p.Pos.Y), size, size, playerColor(p), true)
}

// playerColor returns the side color premultiplied by the player's alpha.
func playerColor(p *dots.Player) color.RGBA {
	c := sideColors[p.Side]
	a := float64(p.Alpha) / dots.MaxAlpha
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}

func playfieldSize() (int, int) {
	w, h := ebiten.ScreenSizeInFullscreen()
	w, h = w-screenMarginWidth, h-screenMarginHeight
	if w <= 0 || h <= 0 {
		return defaultScreenWidth, defaultScreenHeight
	}
	return w, h
}

func main() {
	settings.Init(gameName)

	cfg, err := settings.Load(urlFragment())
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	width, height := playfieldSize()
	cfg.Width, cfg.Height = float64(width), float64(height)

	h := &hud{}
	session, err := dots.NewSession(cfg, h)
	if err != nil {
		log.Fatal().Err(err).Msg("create session")
	}
	if err := session.Start(); err != nil {
		log.Fatal().Err(err).Msg("start session")
	}

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Color Dots")

	game := &Game{
		tracker: touchutil.NewTracker(),
		session: session,
		hud:     h,
		width:   width,
		height:  height,
	}

	log.Info().Int("width", width).Int("height", height).Msg("starting")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("run game")
	}
}
