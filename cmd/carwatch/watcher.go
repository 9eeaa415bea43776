package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/automoto/tickblend/components"
	"github.com/automoto/tickblend/config"
	"github.com/automoto/tickblend/shared/carsim"
	"github.com/automoto/tickblend/shared/interp"
	"github.com/automoto/tickblend/shared/view"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

const (
	frameInterval = 16 * time.Millisecond
	// Terminals report key presses, not releases, so a drive key holds
	// for this long after its last repeat.
	inputHold = 150 * time.Millisecond
)

// watcher runs the simulation and draws it as text.
type watcher struct {
	screen  tcell.Screen
	arena   *carsim.Arena
	stepper *interp.Stepper
	grid    *grid
	log     *zap.Logger

	input     components.InputData
	inputTill time.Time
	ghosts    bool
	paused    bool

	wallStyle tcell.Style
	textStyle tcell.Style
	sample    interp.Transform
}

func newWatcher(screen tcell.Screen, arena *carsim.Arena, stepper *interp.Stepper, cellPx int, log *zap.Logger) *watcher {
	return &watcher{
		screen:    screen,
		arena:     arena,
		stepper:   stepper,
		grid:      newGrid(arena.Level(), arena.WorldScale(), cellPx),
		log:       log,
		ghosts:    config.Interp.Ghosts,
		wallStyle: tcell.StyleDefault.Foreground(rgb(config.Render.WallColor)),
		textStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (w *watcher) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := w.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !w.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			w.frame(now)
		}
	}
}

// handleEvent applies one terminal event. It returns false to quit.
func (w *watcher) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyUp:
			w.hold(func(in *components.InputData) { in.Throttle = 1 })
		case tcell.KeyDown:
			w.hold(func(in *components.InputData) { in.Throttle = -1 })
		case tcell.KeyLeft:
			w.hold(func(in *components.InputData) { in.Steer = 1 })
		case tcell.KeyRight:
			w.hold(func(in *components.InputData) { in.Steer = -1 })
		case tcell.KeyRune:
			return w.handleRune(ev.Rune())
		}
	case *tcell.EventResize:
		w.screen.Sync()
	}
	return true
}

func (w *watcher) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 'i':
		blend := w.arena.Interp().Blend()
		blend.SetEnabled(!blend.Enabled())
		w.log.Info("interpolation toggled", zap.Bool("enabled", blend.Enabled()))
	case 'g':
		w.ghosts = !w.ghosts
	case 'p':
		w.paused = !w.paused
		if !w.paused {
			w.stepper.Reset()
		}
	case 'n':
		if w.paused {
			w.arena.Tick()
		}
	case '-':
		w.setTickRate(config.PrevTickRate(w.stepper.TickRate()))
	case '=', '+':
		w.setTickRate(config.NextTickRate(w.stepper.TickRate()))
	}
	return true
}

func (w *watcher) setTickRate(rate int) {
	if rate < config.Sim.MinTickRate || rate > config.Sim.MaxTickRate {
		return
	}
	w.log.Info("tick rate changed", zap.Int("from", w.stepper.TickRate()), zap.Int("to", rate))
	w.stepper.SetTickRate(rate)
}

func (w *watcher) hold(apply func(in *components.InputData)) {
	apply(&w.input)
	w.inputTill = time.Now().Add(inputHold)
}

// frame advances the simulation by the elapsed time and redraws.
func (w *watcher) frame(now time.Time) {
	if now.After(w.inputTill) {
		w.input = components.InputData{}
	}
	if slot := w.arena.PlayerSlot(); slot >= 0 {
		if err := w.arena.SetInput(slot, w.input); err != nil {
			w.log.Debug("player input rejected", zap.Error(err))
		}
	}

	if !w.paused {
		for n := w.stepper.Advance(); n > 0; n-- {
			w.arena.Tick()
		}
		w.arena.Interp().Blend().SetProgress(w.stepper.Progress())
	}

	w.render()
	w.screen.Show()
}

func (w *watcher) render() {
	w.screen.Clear()
	g := w.grid
	g.clear()
	g.plotWalls(w.arena.Level().Walls, w.wallStyle)

	ctx := w.arena.Interp()
	slots := w.arena.ActiveSlots()
	if w.ghosts {
		for _, slot := range slots {
			ctx.SamplePoseAt(slot, 0, &w.sample)
			g.plot(w.sample.Position, '.', tcell.StyleDefault.Foreground(rgb(config.Render.GhostPrev)))
		}
	}
	for _, slot := range slots {
		info, ok := w.arena.Info(slot)
		if !ok {
			continue
		}
		style := tcell.StyleDefault.Foreground(rgb(config.Render.CarColors[info.Control])).Bold(true)
		g.plot(ctx.SamplePosition(slot), view.HeadingGlyph(info.Heading), style)
	}
	g.draw(w.screen, 0, 0)

	blend := ctx.Blend()
	status := fmt.Sprintf("interp %s  %d Hz  progress %.2f  tick %d  cars %d",
		onOff(blend.Enabled()), w.stepper.TickRate(), blend.Progress(), w.arena.TickCount(), len(slots))
	if w.paused {
		status += "  PAUSED"
	}
	w.text(0, g.rows, status)
	w.text(0, g.rows+1, "arrows drive  i interp  g ghosts  -/= rate  p pause  n step  q quit")
}

func (w *watcher) text(x, y int, s string) {
	for i, r := range s {
		w.screen.SetContent(x+i, y, r, nil, w.textStyle)
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
