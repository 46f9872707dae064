package fishdating_test

import (
	"fmt"

	"github.com/quinnjr/fish-dating-simulator"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/dsl"
)

// ExampleNewRunner plays a two-beat date and drains the affection events after each step.
func ExampleNewRunner() {
	tree := dsl.New("start").
		Speaker("finn", "Finn").
		Text("start", "finn", "Nice current today.", "ask").
		Choice("ask", "Finn blushes.",
			dsl.Option("Compliment his fins", "end").Affection(3),
			dsl.Option("Talk about plankton", "end").Affection(1),
		).
		End("end").
		MustBuild()

	r := fishdating.NewRunner(tree)
	for !r.Ended() {
		view := r.Current()
		switch view.Kind {
		case domain.ViewText:
			fmt.Printf("%s: %s\n", view.SpeakerName(), view.Text)
			_ = r.Advance()
		case domain.ViewChoice:
			fmt.Println(view.Prompt, view.Choices)
			_ = r.SelectChoice(0)
		}
		for ev, ok := r.PollEvent(); ok; ev, ok = r.PollEvent() {
			fmt.Printf("%s %d -> %d\n", ev.Name, ev.OldValue, ev.NewValue)
		}
	}

	// Output:
	// Finn: Nice current today.
	// Finn blushes. [Compliment his fins Talk about plankton]
	// affection 0 -> 3
}
