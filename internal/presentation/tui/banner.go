package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text  string
	color string
}{
	{`    ><(((º>   F I S H`, "#38bdf8"},
	{`  ~~~~~~~~~~  D A T I N G`, "#22d3ee"},
	{`    <º)))><   S I M U L A T O R`, "#f472b6"},
}

// PrintBanner writes the title banner with a sea-to-coral gradient.
// Colors degrade to whatever the terminal supports.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)).Bold())
	}
	if version != "" {
		fmt.Fprintln(w, out.String("  v"+version).Faint())
	}
	fmt.Fprintln(w)
}
