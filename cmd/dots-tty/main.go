// Command dots-tty plays color dots in a terminal. Move the mouse to steer and
// click (or press space) to switch color.
package main

import (
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tsujio/game-color-dots/dots"
	"github.com/tsujio/game-color-dots/settings"
)

const (
	gameName  = "color-dots-tty"
	frameRate = 60

	// World units covered by one terminal cell. Cells are about twice as
	// tall as they are wide.
	cellWidth  = 8.0
	cellHeight = 16.0
)

type game struct {
	screen  tcell.Screen
	session *dots.Session
	display *display
	cols    int
	rows    int
	pressed bool
}

func (g *game) run() {
	ticker := time.NewTicker(time.Second / frameRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	last := time.Now()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !g.handleInput(ev) {
				return
			}
		case now := <-ticker.C:
			g.session.Update(now.Sub(last))
			last = now
			g.draw()
		}
	}
}

func (g *game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				g.session.Activate()
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		wx, wy := cellCenter(x, y)
		g.session.PointerMoved(wx, wy, false)

		down := ev.Buttons()&tcell.Button1 != 0
		if down && !g.pressed {
			g.session.Activate()
		}
		g.pressed = down

	case *tcell.EventResize:
		g.resize()
		g.screen.Sync()
	}

	return true
}

// resize follows the terminal size. The last row stays the status line.
func (g *game) resize() {
	cols, rows := g.screen.Size()
	if err := g.session.Resize(float64(cols)*cellWidth, float64(rows-1)*cellHeight); err != nil {
		return
	}
	g.cols, g.rows = cols, rows
}

func cellCenter(x, y int) (float64, float64) {
	return (float64(x) + 0.5) * cellWidth, (float64(y) + 0.5) * cellHeight
}

func toCell(wx, wy float64) (int, int) {
	return int(wx / cellWidth), int(wy / cellHeight)
}

func newLogger() zerolog.Logger {
	path := os.Getenv("LOG_FILE")
	if path == "" {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("open log file")
	}
	return log.Output(f)
}

func main() {
	settings.Init(gameName)

	cfg, err := settings.Load("")
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	cfg.Logger = newLogger()
	cfg.TouchOffset = 0

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("create screen")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("init screen")
	}
	screen.EnableMouse()
	screen.HideCursor()

	cols, rows := screen.Size()
	cfg.Width = float64(cols) * cellWidth
	cfg.Height = float64(rows-1) * cellHeight

	c := &cues{}
	if err := c.Init(); err != nil {
		cfg.Logger.Warn().Err(err).Msg("audio disabled")
	}

	d := &display{cues: c}
	session, err := dots.NewSession(cfg, d)
	if err != nil {
		screen.Fini()
		log.Fatal().Err(err).Msg("create session")
	}
	if err := session.Start(); err != nil {
		screen.Fini()
		log.Fatal().Err(err).Msg("start session")
	}

	g := &game{
		screen:  screen,
		session: session,
		display: d,
		cols:    cols,
		rows:    rows,
	}
	g.run()

	c.Close()
	screen.Fini()
}
