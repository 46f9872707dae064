package plugin

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	lua "github.com/yuin/gopher-lua"
)

const (
	dialogueTypeName = "DialogueDef"
	maxConvertDepth  = 16

	// Per-call limits for turning script tables into Go values.
	maxConvertElements = 10_000
	maxConvertBytes    = 1 << 20
)

// session collects what one script registers. Records only reach the registry after the script
// finishes without error.
type session struct {
	script   string
	logger   *slog.Logger
	records  []submission
	rejected []error
}

type submission struct {
	def      *domain.FishDef
	warnings []error
}

// install exposes the host API as Lua globals.
func (s *session) install(L *lua.LState) {
	mt := L.NewTypeMetatable(dialogueTypeName)
	methods := L.SetFuncs(L.NewTable(), map[string]lua.LGFunction{
		"speaker":  dialogueSpeaker,
		"text":     dialogueText,
		"choice":   dialogueChoice,
		"end_node": dialogueEnd,
		"end":      dialogueEnd,
	})
	L.SetField(mt, "__index", methods)
	L.SetField(mt, "__tostring", L.NewFunction(func(L *lua.LState) int {
		d := checkDialogue(L, 1)
		L.Push(lua.LString("DialogueDef(" + d.Title + ")"))
		return 1
	}))

	L.SetGlobal("new_dialogue", L.NewFunction(newDialogue))
	L.SetGlobal("register_fish", L.NewFunction(s.registerFish))
	L.SetGlobal("print", L.NewFunction(s.print))
}

func newDialogue(L *lua.LState) int {
	ud := L.NewUserData()
	ud.Value = NewDialogueDef(L.OptString(1, ""))
	L.SetMetatable(ud, L.GetTypeMetatable(dialogueTypeName))
	L.Push(ud)
	return 1
}

func checkDialogue(L *lua.LState, n int) *DialogueDef {
	ud := L.CheckUserData(n)
	if d, ok := ud.Value.(*DialogueDef); ok {
		return d
	}
	L.ArgError(n, "DialogueDef expected")
	return nil
}

// d:speaker(id, display_name)
func dialogueSpeaker(L *lua.LState) int {
	d := checkDialogue(L, 1)
	d.AddSpeaker(L.CheckString(2), L.CheckString(3))
	return 0
}

// d:text(id, speaker, text, next)
func dialogueText(L *lua.LState) int {
	d := checkDialogue(L, 1)
	d.AddText(L.CheckString(2), L.OptString(3, ""), L.CheckString(4), L.OptString(5, ""))
	return 0
}

// d:choice(id, prompt, { {text=..., next=..., affection=...}, ... })
func dialogueChoice(L *lua.LState) int {
	d := checkDialogue(L, 1)
	id := L.CheckString(2)
	prompt := L.OptString(3, "")
	var items []any
	if tbl, ok := L.Get(4).(*lua.LTable); ok {
		if list, ok := newConverter(L).value(tbl, 0).([]any); ok {
			items = list
		}
	}
	d.AddChoice(id, prompt, ParseChoiceOptions(items))
	return 0
}

// d:end_node(id)
func dialogueEnd(L *lua.LState) int {
	d := checkDialogue(L, 1)
	d.AddEnd(L.CheckString(2))
	return 0
}

// register_fish(record) returns true, or false and a message. A rejected record never stops
// the script.
func (s *session) registerFish(L *lua.LState) int {
	tbl := L.CheckTable(1)
	raw, _ := newConverter(L).value(tbl, 0).(map[string]any)
	if raw == nil {
		raw = map[string]any{}
	}

	def, warnings, err := DecodeFishRecord(raw)
	if err != nil {
		s.logger.Error("failed to register fish", "script", s.script, "error", err)
		s.rejected = append(s.rejected, err)
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}

	s.records = append(s.records, submission{def: def, warnings: warnings})
	L.Push(lua.LTrue)
	return 1
}

func (s *session) print(L *lua.LState) int {
	parts := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		parts = append(parts, L.ToStringMeta(L.Get(i)).String())
	}
	s.logger.Debug(strings.Join(parts, "\t"), "script", s.script)
	return 0
}

// converter turns Lua values into plain Go values: strings, float64, bool, []any for
// sequences, map[string]any for other tables and *DialogueDef for dialogue userdata.
// Functions, threads and foreign userdata become nil.
//
// Conversion runs in Go, outside the instruction budget, so it charges its own: every table
// entry and string byte visited counts, shared tables once per visit. Running out, or a table
// that contains itself, raises a Lua error in the calling script.
type converter struct {
	L     *lua.LState
	path  map[*lua.LTable]bool
	left  int
	bytes int
}

func newConverter(L *lua.LState) *converter {
	return &converter{
		L:     L,
		path:  make(map[*lua.LTable]bool),
		left:  maxConvertElements,
		bytes: maxConvertBytes,
	}
}

func (c *converter) charge() {
	c.left--
	if c.left < 0 {
		c.L.RaiseError("value too large: more than %d table entries", maxConvertElements)
	}
}

func (c *converter) value(v lua.LValue, depth int) any {
	switch lv := v.(type) {
	case lua.LString:
		c.bytes -= len(lv)
		if c.bytes < 0 {
			c.L.RaiseError("value too large: more than %d bytes of text", maxConvertBytes)
		}
		return string(lv)
	case lua.LNumber:
		return float64(lv)
	case lua.LBool:
		return bool(lv)
	case *lua.LUserData:
		if d, ok := lv.Value.(*DialogueDef); ok {
			return d
		}
		return nil
	case *lua.LTable:
		if depth >= maxConvertDepth {
			return nil
		}
		if c.path[lv] {
			c.L.RaiseError("value contains itself")
		}
		c.path[lv] = true
		out := c.table(lv, depth+1)
		delete(c.path, lv)
		return out
	}
	return nil
}

func (c *converter) table(tbl *lua.LTable, depth int) any {
	n := tbl.MaxN()
	if n > 0 && c.isSequence(tbl, n) {
		list := make([]any, 0, n)
		for i := 1; i <= n; i++ {
			c.charge()
			list = append(list, c.value(tbl.RawGetInt(i), depth))
		}
		return list
	}

	m := make(map[string]any)
	for k, v := tbl.Next(lua.LNil); k != lua.LNil; k, v = tbl.Next(k) {
		c.charge()
		var key string
		switch kv := k.(type) {
		case lua.LString:
			key = string(kv)
		case lua.LNumber:
			key = strconv.FormatFloat(float64(kv), 'f', -1, 64)
		default:
			continue
		}
		m[key] = c.value(v, depth)
	}
	return m
}

// isSequence reports whether the table holds exactly the keys 1..n.
func (c *converter) isSequence(tbl *lua.LTable, n int) bool {
	count := 0
	for k, _ := tbl.Next(lua.LNil); k != lua.LNil; k, _ = tbl.Next(k) {
		c.charge()
		count++
		if count > n {
			return false
		}
	}
	return count == n
}
