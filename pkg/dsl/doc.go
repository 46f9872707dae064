/*
Package dsl provides a fluent builder for constructing dialogue graphs in Go.

Compiled-in character dates are authored with it instead of data files, which keeps them
type-checked and lets tests validate every graph at build time.

Example usage:

	tree, err := dsl.New("start").
		Title("Coffee at the Coral Cafe").
		Speaker("bubbles", "Bubbles").
		Text("start", "bubbles", "Oh! You actually showed up!", "q1").
		Choice("q1", "What do you say?",
			dsl.Option("Of course I did.", "happy").Affection(3),
			dsl.Option("I was in the area.", "meh").Affection(1),
		).
		Text("happy", "bubbles", "Blub blub!", "end").
		Text("meh", "bubbles", "Oh. Okay.", "end").
		End("end").
		Build()

Build validates referential integrity. BuildUnchecked skips it for callers that accept
run-time degradation instead.
*/
package dsl
