// Package ui provides terminal rendering using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal the keeper plays on. Drawing is clipped to the
// current terminal size, so a small window loses the edge of the map
// instead of wrapping it.
type Screen struct {
	screen tcell.Screen
	w, h   int
}

// NewScreen opens the terminal with mouse motion reporting on.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return Wrap(s)
}

// Wrap initializes an existing tcell screen, such as a simulation screen.
func Wrap(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	// Drag selection needs motion reports while a button is held.
	s.EnableMouse(tcell.MouseMotionEvents)
	s.HideCursor()

	scr := &Screen{screen: s}
	scr.begin()
	return scr, nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent waits for the next event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// PostEvent queues an event for PollEvent. Safe from any goroutine.
func (s *Screen) PostEvent(ev tcell.Event) error {
	return s.screen.PostEvent(ev)
}

// Beep rings the terminal bell.
func (s *Screen) Beep() error {
	return s.screen.Beep()
}

// Sync redraws everything after a resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

// begin clears the back buffer and picks up the terminal size.
func (s *Screen) begin() {
	s.screen.Clear()
	s.w, s.h = s.screen.Size()
}

// put draws one cell, dropping anything off screen.
func (s *Screen) put(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.screen.SetContent(x, y, r, nil, style)
}

// text draws msg from (x, y) until the right edge.
func (s *Screen) text(x, y int, msg string, style tcell.Style) {
	for _, r := range msg {
		if x >= s.w {
			return
		}
		s.put(x, y, r, style)
		x++
	}
}

// present flushes the back buffer to the terminal.
func (s *Screen) present() {
	s.screen.Show()
}
