package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/meghashyamc/gametools/logger"
	"github.com/meghashyamc/gametools/timer"
)

const tickInterval = 16 * time.Millisecond // ~60 FPS

type player interface {
	Play()
}

type app struct {
	screen   tcell.Screen
	timer    *timer.Timer
	seconds  float64
	paused   bool
	finished bool
	chime    player
	logger   logger.Logger
}

func newApp(seconds float64, chime player, log logger.Logger) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	return newAppWithScreen(screen, seconds, chime, log), nil
}

func newAppWithScreen(screen tcell.Screen, seconds float64, chime player, log logger.Logger) *app {
	a := &app{
		screen:  screen,
		seconds: seconds,
		chime:   chime,
		logger:  log,
	}
	a.timer = timer.New(seconds, timer.WithOnComplete(a.complete))

	return a
}

func (a *app) complete() {
	a.finished = true
	a.logger.Debug("countdown finished", "seconds", a.seconds)
	a.chime.Play()
}

func (a *app) restart() {
	a.finished = false
	a.paused = false
	a.timer.SetTime(a.seconds)
}

func (a *app) run() {
	defer a.screen.Fini()

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go a.pollEvents(eventChan, done)

	last := time.Now()
	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if !a.handleInput(ev) {
				return
			}
			a.draw()

		case now := <-ticker.C:
			a.tick(now.Sub(last).Seconds())
			last = now
			a.draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done
// is closed.
func (a *app) pollEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (a *app) togglePause() {
	if a.finished || !a.timer.Running() {
		return
	}
	a.paused = !a.paused
}

func (a *app) tick(dt float64) {
	if a.paused {
		return
	}
	a.timer.Advance(dt)
}

func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}

		if ev.Key() == tcell.KeyRune {
			return a.handleRune(ev.Rune())
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}

	return true
}

func (a *app) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case ' ':
		a.togglePause()
	case 'r':
		a.restart()
	case 's':
		a.timer.Stop()
		a.paused = false
	}

	return true
}

func (a *app) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()

	remaining := a.timer.Remaining()
	timeText := formatRemaining(remaining)
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	switch {
	case a.finished:
		timeText = "DONE"
		style = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	case a.paused:
		style = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case !a.timer.Running():
		style = tcell.StyleDefault.Foreground(tcell.ColorGray)
	}

	midY := height / 2
	drawCentered(a.screen, midY-1, width, timeText, style)

	barWidth := min(width-4, 60)
	drawCentered(a.screen, midY+1, width, progressBar(barWidth, progress(remaining, a.seconds)), tcell.StyleDefault)
	drawCentered(a.screen, height-2, width, statusLine(a.paused, a.finished, a.timer.Running()), tcell.StyleDefault.Foreground(tcell.ColorGray))

	a.screen.Show()
}

func drawCentered(screen tcell.Screen, y, width int, s string, style tcell.Style) {
	runes := []rune(s)
	x := max((width-len(runes))/2, 0)
	for i, r := range runes {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
