package cli

import (
	_ "embed"
	"io"

	"github.com/quinnjr/fish-dating-simulator/internal/presentation/tui"
)

//go:embed guide.md
var guide string

// Guide returns the plugin authoring guide as markdown.
func Guide() string {
	return guide
}

// Docs writes the plugin authoring guide. Markdown is rendered for terminals and written raw
// otherwise.
func Docs(w io.Writer, styled bool, width int) error {
	if !styled {
		_, err := io.WriteString(w, guide)
		return err
	}
	render, err := tui.NewRenderer(width)
	if err != nil {
		return err
	}
	out, err := render(guide)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
