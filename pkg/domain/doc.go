/*
Package domain contains the core data model of the dialogue engine and the game around it.

It defines the conversation graph (Tree, Node, ChoiceOption, Speaker), the presentation view a
Runner exposes to the host (View), the variable events a Runner emits (VariableChanged), the
dateable character record (FishDef) and the persistent player record (PlayerState).
This package is kept pure and free of I/O, scripting and persistence concerns.

# Key Entities

  - Tree: An immutable, named-node conversation graph with a designated start node.
  - Node: A tagged union of Text (display and advance), Choice (branch) and End (terminal).
  - View: What the host should render for the node a Runner currently points at.
  - VariableChanged: One variable mutation, queued for the host to drain.
  - FishDef: A complete dateable character, built-in or plugin-sourced.
  - PlayerState: The save record the host commits date results into.
*/
package domain
