package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/muesli/reflow/wordwrap"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
)

// DefaultWidth is the wrap width of dialogue text.
const DefaultWidth = 72

// TextHandler writes the date as plain text and reads answers line by line.
type TextHandler struct {
	Reader *bufio.Reader
	Writer io.Writer
	Width  int

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// NewTextHandler creates a handler for standard text IO. nil streams default to stdin/stdout.
func NewTextHandler(r io.Reader, w io.Writer) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		Width:  DefaultWidth,
	}
}

// initPump starts the reader goroutine once, so that Input can honor context cancellation
// while a read is blocked.
func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

func (h *TextHandler) pump() {
	defer close(h.inputChan)
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}
		if err != nil {
			if err != io.EOF {
				h.inputChan <- inputResult{err: err}
			}
			return
		}
	}
}

// Show prints one step of the date.
func (h *TextHandler) Show(_ context.Context, view domain.View) error {
	width := h.Width
	if width <= 0 {
		width = DefaultWidth
	}

	var b strings.Builder
	switch view.Kind {
	case domain.ViewText:
		if name := view.SpeakerName(); name != "" {
			b.WriteString(name + ": ")
		}
		b.WriteString(wordwrap.String(view.Text, width))
		b.WriteString("\n")
	case domain.ViewChoice:
		b.WriteString("\n" + wordwrap.String(view.Prompt, width) + "\n")
		for i, c := range view.Choices {
			fmt.Fprintf(&b, "  %d) %s\n", i+1, c)
		}
		if len(view.Choices) == 0 {
			b.WriteString("  (no answers; type q to leave)\n")
		}
	case domain.ViewEnded:
		b.WriteString("\n~ The date is over. ~\n")
	}
	_, err := io.WriteString(h.Writer, b.String())
	return err
}

// Input prompts and reads one sanitized line.
func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			fmt.Fprint(h.Writer, "> ")
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
			clean, err := SanitizeInput(strings.TrimSpace(res.text))
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

// SystemOutput prints a bracketed notice.
func (h *TextHandler) SystemOutput(_ context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[%s]\n", msg)
	return err
}
