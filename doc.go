/*
Package fishdating is the embedding surface of the fish dating simulator: a dialogue runtime
plus a sandboxed plugin system for adding dateable characters.

A dialogue is an immutable graph of text, choice and end nodes (see pkg/domain). A Runner
walks one graph step by step; choices apply integer deltas to named variables and every
change is queued as an event the host drains after each step. Nothing in the runtime touches
player progress, so the host decides what a date is worth.

# Usage

Load the built-in cast and every Lua script of a plugin directory, then play a date:

	sim := fishdating.Load(ctx, "plugins")
	r := sim.Runner(domain.BuiltinID(domain.Bubbles), 0)

	for !r.Ended() {
		view := r.Current()
		switch view.Kind {
		case domain.ViewText:
			fmt.Println(view.SpeakerName(), view.Text)
			_ = r.Advance()
		case domain.ViewChoice:
			_ = r.SelectChoice(0)
		}
		for {
			ev, ok := r.PollEvent()
			if !ok {
				break
			}
			fmt.Println(ev)
		}
	}

Broken plugins never stop the game: their failures are logged and listed in the load report.
*/
package fishdating
