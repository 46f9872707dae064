/*
Package plugin loads third-party characters from sandboxed Lua scripts.

Each script in the plugins directory runs in its own interpreter with only the base, table,
string and math libraries, a cap on executed VM instructions and a wall-clock timeout. Values
handed to the host are capped too (table entries, text size, no self-containing tables). Scripts
build dialogues and submit characters through a small set of globals:

	local d = new_dialogue("Tea Time")
	d:speaker("coral", "Coral")
	d:text("start", "coral", "Oh, hello there.", "q1")
	d:choice("q1", "What do you say?", {
		{ text = "Lovely reef!", next = "happy", affection = 3 },
		{ text = "Is this seaweed?", next = "end" },
	})
	d:text("happy", "coral", "You noticed!", "end")
	d:end_node("end")

	local ok, err = register_fish({
		id = "coral", name = "Coral", species = "Angelfish",
		difficulty = 0.4, color = { 1.0, 0.5, 0.6 },
		dates = { d },
	})

register_fish returns false and a message for a rejected record and the script keeps running.
Registrations are committed only if the whole script completes; a script that errors, exhausts
its budget or times out contributes nothing, and the remaining scripts still load.
*/
package plugin
