package game

// Screen is the active page of the game.
type Screen int

const (
	MainMenu Screen = iota
	PondSelect
	Fishing
	CatchResult
	Collection
	DateSelect
	Dating
	DateResult
	GameOver
)

var screenNames = [...]string{
	MainMenu:    "main-menu",
	PondSelect:  "pond-select",
	Fishing:     "fishing",
	CatchResult: "catch-result",
	Collection:  "collection",
	DateSelect:  "date-select",
	Dating:      "dating",
	DateResult:  "date-result",
	GameOver:    "game-over",
}

func (s Screen) String() string {
	if s < 0 || int(s) >= len(screenNames) {
		return "unknown"
	}
	return screenNames[s]
}

// Main menu entries.
const (
	ItemFish       = "Go Fishing"
	ItemDate       = "Go on a Date"
	ItemCollection = "Fish Collection"
	ItemSave       = "Save Game"
	ItemNewGame    = "New Game"
	ItemQuit       = "Quit"
)
