package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/filler/pkg/domain"
)

// TextHandler implements the line-oriented interactive interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer BoardRenderer

	mu   sync.Mutex
	last domain.Snapshot

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the board renderer. Nil keeps PlainBoard.
func WithTextHandlerRenderer(renderer BoardRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		if renderer != nil {
			h.Renderer = renderer
		}
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader:   bufio.NewReader(r),
		Writer:   w,
		Renderer: PlainBoard,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines in the background so Input can honour cancellation
// while a read is blocked.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err == io.EOF {
				close(h.inputChan)
				return
			}
			h.inputChan <- inputResult{err: err}
			time.Sleep(50 * time.Millisecond)
		}
	}
}

// Output prints the board followed by the score line.
func (h *TextHandler) Output(ctx context.Context, snap domain.Snapshot) error {
	h.mu.Lock()
	h.last = snap
	h.mu.Unlock()

	board, err := h.Renderer(snap)
	if err != nil {
		// fall back rather than lose the board
		board, _ = PlainBoard(snap)
	}
	fmt.Fprintln(h.Writer, strings.TrimRight(board, "\n"))
	fmt.Fprintln(h.Writer, ScoreLine(snap))
	return nil
}

// Input prompts the active player and returns the next sanitized line.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, h.prompt())
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}
			clean, err := SanitizeInput(res.text)
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			if clean == "" {
				continue
			}
			return clean, nil
		}
	}
}

// SystemOutput prints an out-of-band message on its own line.
func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintln(h.Writer, msg)
	return err
}

func (h *TextHandler) prompt() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.last.Active.Valid() {
		return "> "
	}
	return fmt.Sprintf("%s (%s) > ", h.last.Active.Label(), h.last.Anchors[h.last.Active-1])
}

// ScoreLine formats the running scores, plus region progress when present.
func ScoreLine(snap domain.Snapshot) string {
	line := fmt.Sprintf("Player 1 score: %d, Player 2 score: %d", snap.Player1Score, snap.Player2Score)
	if snap.Progress != nil {
		line += fmt.Sprintf(" (regions %d/%d)", snap.Progress[0], snap.Progress[1])
	}
	return line
}

// PlainBoard renders color indices next to the ownership grid, one board
// row per line. Owners print as 1 or 2, unowned cells as '.'.
func PlainBoard(snap domain.Snapshot) (string, error) {
	var b strings.Builder
	for r := 0; r < snap.Size; r++ {
		for c := 0; c < snap.Size; c++ {
			fmt.Fprintf(&b, "%d ", snap.Colors[r][c].Index())
		}
		b.WriteString("  ")
		for c := 0; c < snap.Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			switch p := snap.Owners[r][c]; p {
			case domain.NoPlayer:
				b.WriteByte('.')
			default:
				fmt.Fprintf(&b, "%d", p)
			}
		}
		b.WriteByte('\n')
	}
	return b.String(), nil
}
