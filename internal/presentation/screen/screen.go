// Package screen is a full-screen terminal front end built on tcell.
// It implements runner.IOHandler: digits 0-5 or color initials choose,
// Esc or q quits.
package screen

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/gdamore/tcell/v2"
)

const (
	originX   = 2
	originY   = 1
	cellWidth = 3
)

// Handler draws snapshots on a tcell screen and reads choices from its keys.
type Handler struct {
	screen tcell.Screen

	mu     sync.Mutex
	snap   domain.Snapshot
	status string

	events    chan tcell.Event
	done      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
}

// New wraps an initialized screen.
func New(s tcell.Screen) *Handler {
	return &Handler{
		screen: s,
		done:   make(chan struct{}),
	}
}

// Open initializes the terminal and returns a Handler over it.
func Open() (*Handler, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault)
	s.Clear()
	return New(s), nil
}

// Close restores the terminal.
func (h *Handler) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
		h.screen.Fini()
	})
}

func (h *Handler) Output(ctx context.Context, snap domain.Snapshot) error {
	h.mu.Lock()
	h.snap = snap
	h.status = ""
	h.mu.Unlock()
	h.draw()
	return nil
}

func (h *Handler) SystemOutput(ctx context.Context, msg string) error {
	h.mu.Lock()
	h.status = msg
	h.mu.Unlock()
	h.draw()
	return nil
}

// Input waits for a key that maps to a choice. Quit keys yield "quit".
func (h *Handler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case ev, ok := <-h.events:
			if !ok {
				return "", io.EOF
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				h.screen.Sync()
				h.draw()
			case *tcell.EventKey:
				if choice, ok := ChoiceForKey(ev.Key(), ev.Rune()); ok {
					return choice, nil
				}
			}
		}
	}
}

// WaitKey blocks until any key is pressed, so a final board stays visible.
func (h *Handler) WaitKey(ctx context.Context) error {
	h.initPump()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-h.events:
			if !ok {
				return io.EOF
			}
			if _, isKey := ev.(*tcell.EventKey); isKey {
				return nil
			}
		}
	}
}

func (h *Handler) initPump() {
	h.startOnce.Do(func() {
		h.events = make(chan tcell.Event)
		go h.pump()
	})
}

func (h *Handler) pump() {
	defer close(h.events)
	for {
		ev := h.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case h.events <- ev:
		case <-h.done:
			return
		}
	}
}

// ChoiceForKey maps a key press to the text accepted by domain.ParseColor.
func ChoiceForKey(key tcell.Key, r rune) (string, bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "quit", true
	case tcell.KeyRune:
	default:
		return "", false
	}

	switch {
	case r == 'q' || r == 'Q':
		return "quit", true
	case r >= '0' && r < '0'+domain.PaletteSize:
		return string(r), true
	}
	if c, err := domain.ParseColor(string(r)); err == nil {
		return c.String(), true
	}
	return "", false
}

func (h *Handler) draw() {
	h.mu.Lock()
	snap, status := h.snap, h.status
	h.mu.Unlock()

	s := h.screen
	s.Clear()
	base := tcell.StyleDefault

	for row := 0; row < snap.Size && row < len(snap.Colors); row++ {
		for col := 0; col < snap.Size && col < len(snap.Colors[row]); col++ {
			style := base.Foreground(tcell.ColorBlack).Background(tcell.GetColor(snap.Colors[row][col].Hex()))
			mark := ' '
			if owner := snap.Owners[row][col]; owner.Valid() {
				mark = rune('0' + owner)
			}
			x := originX + col*cellWidth
			y := originY + row
			s.SetContent(x, y, ' ', nil, style)
			s.SetContent(x+1, y, mark, nil, style)
			s.SetContent(x+2, y, ' ', nil, style)
		}
	}

	y := originY + snap.Size + 1
	drawText(s, originX, y, base, fmt.Sprintf("Player 1: %d  Player 2: %d", snap.Player1Score, snap.Player2Score))
	y++
	if snap.GameOver {
		drawText(s, originX, y, base.Bold(true), snap.Outcome.String()+"  (press q)")
	} else if snap.Active.Valid() {
		drawText(s, originX, y, base.Bold(true), fmt.Sprintf("%s to move", snap.Active.Label()))
	}
	y++
	x := originX
	for _, c := range domain.Palette() {
		label := fmt.Sprintf("%d:%s ", c.Index(), c)
		drawText(s, x, y, base.Foreground(tcell.GetColor(c.Hex())), label)
		x += len(label)
	}
	if status != "" {
		drawText(s, originX, y+2, base.Foreground(tcell.ColorRed), status)
	}
	s.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
