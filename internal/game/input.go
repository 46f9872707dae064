package game

// Key is a discrete player action.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyConfirm
	KeyBack
	KeySelect // direct pick of a menu entry, see Input.Index
)

// Input is one player action fed to Game.Update.
type Input struct {
	Key   Key
	Index int // only for KeySelect
}

// Convenience inputs.
var (
	Up      = Input{Key: KeyUp}
	Down    = Input{Key: KeyDown}
	Confirm = Input{Key: KeyConfirm}
	Back    = Input{Key: KeyBack}
)

// Select picks the n-th entry of the current menu.
func Select(n int) Input {
	return Input{Key: KeySelect, Index: n}
}

// Menu is a vertical list with one highlighted entry.
type Menu struct {
	Items    []string
	Selected int
}

func newMenu(items ...string) Menu {
	return Menu{Items: items}
}

// handle moves the cursor for Up/Down and reports the entry picked by Confirm or Select.
func (m *Menu) handle(in Input) (int, bool) {
	switch in.Key {
	case KeyUp:
		if m.Selected > 0 {
			m.Selected--
		}
	case KeyDown:
		if m.Selected+1 < len(m.Items) {
			m.Selected++
		}
	case KeyConfirm:
		if len(m.Items) > 0 {
			return m.Selected, true
		}
	case KeySelect:
		if in.Index >= 0 && in.Index < len(m.Items) {
			m.Selected = in.Index
			return in.Index, true
		}
	}
	return 0, false
}
