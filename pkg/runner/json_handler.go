package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// Message is one JSON line written by JSONHandler.
type Message struct {
	Type   string       `json:"type"` // "view" or "system"
	View   *domain.View `json:"view,omitempty"`
	Notice string       `json:"notice,omitempty"`
}

// answer is the structured form of an input line: {"choice": 2} or {"quit": true}.
type answer struct {
	Choice *int `json:"choice"`
	Quit   bool `json:"quit"`
}

// JSONHandler speaks JSON Lines, one object per step.
type JSONHandler struct {
	Reader  *bufio.Reader
	Encoder *json.Encoder
}

// NewJSONHandler creates a handler for JSON IO. nil streams default to stdin/stdout.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Encoder: json.NewEncoder(w),
	}
}

// Show emits a view message.
func (h *JSONHandler) Show(_ context.Context, view domain.View) error {
	return h.Encoder.Encode(Message{Type: "view", View: &view})
}

// Input reads one line. It accepts a bare value ("2", "q", "") or an answer object,
// which is normalized to the same text form TextHandler produces.
func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}

	text, err = SanitizeInput(strings.TrimSpace(text))
	if err != nil {
		return "", err
	}

	var a answer
	if strings.HasPrefix(text, "{") && json.Unmarshal([]byte(text), &a) == nil {
		switch {
		case a.Quit:
			return quitCommand, nil
		case a.Choice != nil:
			return strconv.Itoa(*a.Choice), nil
		}
		return "", nil
	}

	var s string
	if json.Unmarshal([]byte(text), &s) == nil {
		return s, nil
	}
	return text, nil
}

// SystemOutput emits a system message.
func (h *JSONHandler) SystemOutput(_ context.Context, msg string) error {
	return h.Encoder.Encode(Message{Type: "system", Notice: msg})
}
