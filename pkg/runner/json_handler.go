package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/filler/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Message types emitted by JSONHandler.
const (
	MessageSnapshot = "snapshot"
	MessageSystem   = "system"
)

// Message is one line of JSONHandler output.
type Message struct {
	Type     string           `json:"type"`
	Snapshot *domain.Snapshot `json:"snapshot,omitempty"`

	// Diff lists what changed since the previous snapshot line.
	Diff    *domain.SnapshotDiff `json:"diff,omitempty"`
	Message string               `json:"message,omitempty"`
}

// ChoiceCommand is the object form of a JSON input line. Exactly one field
// is expected; Switches carries a raw switch bank bitmask.
type ChoiceCommand struct {
	Color    *string `mapstructure:"color"`
	Index    *int    `mapstructure:"index"`
	Switches *uint32 `mapstructure:"switches"`
}

// JSONHandler implements the IOHandler interface for JSON-Lines communication.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder

	last *domain.Snapshot
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

// Output emits the snapshot as a single JSON line. Every snapshot after the
// first also carries the diff against its predecessor.
func (h *JSONHandler) Output(ctx context.Context, snap domain.Snapshot) error {
	msg := Message{Type: MessageSnapshot, Snapshot: &snap}
	if h.last != nil {
		msg.Diff = domain.Diff(h.last, snap)
	}
	h.last = &snap
	return h.Encoder.Encode(msg)
}

// Input reads one line and normalizes it to a choice string. Accepted forms:
// a JSON string ("red"), a number (2), an object ({"index":2},
// {"color":"blue"}, {"switches":4}) or bare text.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := h.Reader.ReadString('\n')
		if err != nil && (text == "" || !errors.Is(err, io.EOF)) {
			return "", err
		}
		clean, serr := SanitizeInput(text)
		if serr != nil {
			return "", serr
		}
		if clean == "" {
			if err != nil {
				return "", err
			}
			continue
		}
		choice, derr := DecodeChoice(clean)
		if derr != nil {
			if werr := h.SystemOutput(ctx, derr.Error()); werr != nil {
				return "", werr
			}
			continue
		}
		return choice, nil
	}
}

// SystemOutput emits msg as a system message line.
func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(Message{Type: MessageSystem, Message: msg})
}

// DecodeChoice normalizes a JSON input line to the text form accepted by
// domain.ParseColor.
func DecodeChoice(line string) (string, error) {
	var raw any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		// Fallback: plain text such as: red
		return line, nil
	}

	switch v := raw.(type) {
	case string:
		return strings.TrimSpace(v), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case map[string]any:
		var cmd ChoiceCommand
		if err := mapstructure.Decode(v, &cmd); err != nil {
			return "", fmt.Errorf("invalid choice object: %w", err)
		}
		switch {
		case cmd.Color != nil:
			return *cmd.Color, nil
		case cmd.Index != nil:
			return strconv.Itoa(*cmd.Index), nil
		case cmd.Switches != nil:
			return domain.ColorFromSwitches(*cmd.Switches).String(), nil
		}
		return "", fmt.Errorf("choice object needs color, index or switches")
	default:
		return line, nil
	}
}
