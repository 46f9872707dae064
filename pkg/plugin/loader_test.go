package plugin_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/quinnjr/fish-dating-simulator/internal/runtime"
	"github.com/quinnjr/fish-dating-simulator/pkg/domain"
	"github.com/quinnjr/fish-dating-simulator/pkg/plugin"
	"github.com/quinnjr/fish-dating-simulator/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
}

func loadScript(t *testing.T, src string) (plugin.ScriptResult, *registry.Registry) {
	t.Helper()
	reg := registry.NewRegistry()
	l := &plugin.Loader{}
	return l.LoadScript(context.Background(), "test.lua", strings.NewReader(src), reg), reg
}

func TestLoader_MissingRequiredFieldContinues(t *testing.T) {
	res, reg := loadScript(t, `
		local ok, err = register_fish({ id = "broken", name = "Broken" })
		assert(ok == false, "missing species must fail")
		assert(string.find(err, "species"), "message names the field: " .. tostring(err))

		local ok2 = register_fish({ id = "fine", name = "Fine", species = "Guppy" })
		assert(ok2 == true)
	`)

	require.NoError(t, res.Err)
	require.Len(t, res.Rejected, 1)
	var recErr *plugin.RecordError
	require.ErrorAs(t, res.Rejected[0], &recErr)
	assert.Equal(t, "species", recErr.Field)

	assert.Equal(t, []string{"fine"}, res.Registered)
	assert.Equal(t, []string{"fine"}, reg.IDs())
	_, ok := reg.Get("broken")
	assert.False(t, ok)
}

func TestLoader_DuplicateAcrossScriptsFirstWins(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "b_second.lua", `register_fish({ id = "coral", name = "Second", species = "Angelfish" })`)
	writeScript(t, dir, "a_first.lua", `register_fish({ id = "coral", name = "First", species = "Angelfish" })`)

	reg := registry.NewRegistry()
	report := (&plugin.Loader{Dir: dir}).Load(context.Background(), reg)

	assert.Equal(t, 1, reg.Count())
	coral, ok := reg.Get("coral")
	require.True(t, ok)
	assert.Equal(t, "First", coral.Name)

	require.Len(t, report.Scripts, 2)
	assert.Equal(t, "a_first.lua", report.Scripts[0].Script)
	assert.Equal(t, []string{"coral"}, report.Scripts[1].Duplicates)
	assert.Equal(t, []string{"coral"}, report.Loaded())
}

func TestLoader_OptionWithoutAffectionEmitsNothing(t *testing.T) {
	res, reg := loadScript(t, `
		local d = new_dialogue("Quiet")
		d:choice("start", "Say something?", {
			{ text = "...", next = "end" },
		})
		d:end_node("end")
		register_fish({ id = "quiet", name = "Quiet", species = "Eel", dates = { d } })
	`)
	require.NoError(t, res.Err)
	require.Empty(t, res.Warnings)

	def, ok := reg.Get("quiet")
	require.True(t, ok)
	require.Len(t, def.Dialogues, 1)

	tree := def.Dialogues[0]
	start, ok := tree.Node("start")
	require.True(t, ok)
	require.Len(t, start.Choices, 1)
	assert.Empty(t, start.Choices[0].Deltas)

	r := runtime.NewRunner(tree)
	require.NoError(t, r.SelectChoice(0))
	_, ok = r.PollEvent()
	assert.False(t, ok)
	assert.True(t, r.Ended())
}

func TestLoader_IsolatesFailingScripts(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "01_loop.lua", `
		register_fish({ id = "never", name = "Never", species = "Loop" })
		while true do end
	`)
	writeScript(t, dir, "02_error.lua", `
		register_fish({ id = "also_never", name = "Nope", species = "Crash" })
		error("boom")
	`)
	writeScript(t, dir, "03_syntax.lua", `register_fish({ id = `)
	writeScript(t, dir, "04_good.lua", `register_fish({ id = "good", name = "Good", species = "Carp" })`)
	writeScript(t, dir, "notes.txt", `not a script`)

	reg := registry.NewRegistry()
	report := (&plugin.Loader{Dir: dir, Budget: 10_000}).Load(context.Background(), reg)

	assert.Equal(t, []string{"good"}, reg.IDs())
	require.Len(t, report.Scripts, 4)

	failed := report.Failed()
	require.Len(t, failed, 3)
	assert.ErrorIs(t, failed[0].Err, plugin.ErrBudgetExceeded)
	assert.Contains(t, failed[1].Err.Error(), "boom")
	var scriptErr *plugin.ScriptError
	require.ErrorAs(t, failed[2].Err, &scriptErr)
	assert.Equal(t, "03_syntax.lua", scriptErr.Script)
}

func TestLoader_BudgetCannotBeSwallowedByPcall(t *testing.T) {
	res, reg := loadScript(t, `
		for i = 1, 100 do
			pcall(function() while true do end end)
		end
		register_fish({ id = "sneaky", name = "Sneaky", species = "Eel" })
	`)
	assert.ErrorIs(t, res.Err, plugin.ErrBudgetExceeded)
	assert.Zero(t, reg.Count())
}

func TestLoader_Timeout(t *testing.T) {
	reg := registry.NewRegistry()
	l := &plugin.Loader{Budget: 1 << 50, Timeout: 20 * time.Millisecond}

	res := l.LoadScript(context.Background(), "slow.lua", strings.NewReader(`while true do end`), reg)
	require.Error(t, res.Err)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
}

func TestLoader_MissingDirectory(t *testing.T) {
	reg := registry.NewRegistry()
	report := (&plugin.Loader{Dir: filepath.Join(t.TempDir(), "absent")}).Load(context.Background(), reg)

	assert.NoError(t, report.Err)
	assert.Empty(t, report.Scripts)
	assert.Zero(t, reg.Count())
}

func TestLoader_EmptyScriptWarns(t *testing.T) {
	res, reg := loadScript(t, `local x = 1 + 1`)
	require.NoError(t, res.Err)
	assert.Equal(t, []error{plugin.ErrNoRegistrations}, res.Warnings)
	assert.Zero(t, reg.Count())
}

func TestLoader_SandboxHidesDangerousGlobals(t *testing.T) {
	res, reg := loadScript(t, `
		assert(os == nil, "os")
		assert(io == nil, "io")
		assert(package == nil, "package")
		assert(debug == nil, "debug")
		assert(require == nil, "require")
		assert(dofile == nil, "dofile")
		assert(loadfile == nil, "loadfile")
		assert(load == nil, "load")
		assert(loadstring == nil, "loadstring")
		assert(string.upper("x") == "X")
		assert(math.floor(1.5) == 1)
		assert(table.concat({ "a", "b" }) == "ab")
		print("sandbox ok")
		register_fish({ id = "safe", name = "Safe", species = "Cod" })
	`)
	require.NoError(t, res.Err)
	assert.Equal(t, 1, reg.Count())
}

func TestLoader_StringRepIsBounded(t *testing.T) {
	res, _ := loadScript(t, `local s = string.rep("x", 1e9)`)
	require.Error(t, res.Err)
	assert.Contains(t, res.Err.Error(), "string.rep")
}

func TestLoader_InvalidDialogueFallsBackUnchecked(t *testing.T) {
	res, reg := loadScript(t, `
		local d = new_dialogue("Broken")
		d:text("start", "eel", "Where am I going?", "nowhere")
		register_fish({ id = "lost", name = "Lost", species = "Eel", dates = { d, "not a dialogue" } })
	`)
	require.NoError(t, res.Err)
	require.Len(t, res.Warnings, 1)
	assert.ErrorIs(t, res.Warnings[0], domain.ErrUnknownNext)

	def, _ := reg.Get("lost")
	require.Len(t, def.Dialogues, 1)

	r := runtime.NewRunner(def.DialogueForDate(0))
	assert.Equal(t, "Where am I going?", r.Current().Text)
	require.NoError(t, r.Advance())
	assert.True(t, r.Ended())
}

func TestLoader_EndAlias(t *testing.T) {
	res, reg := loadScript(t, `
		local d = new_dialogue("Alias")
		d:text("start", "", "Bye", "fin")
		d["end"](d, "fin")
		register_fish({ id = "alias", name = "Alias", species = "Koi", dates = { d } })
	`)
	require.NoError(t, res.Err)
	require.Empty(t, res.Warnings)
	def, _ := reg.Get("alias")
	n, ok := def.Dialogues[0].Node("fin")
	require.True(t, ok)
	assert.Equal(t, domain.NodeTypeEnd, n.Type)
}

// loadScriptWithin fails the test instead of hanging when a script is not stopped in time.
func loadScriptWithin(t *testing.T, limit time.Duration, src string) (plugin.ScriptResult, *registry.Registry) {
	t.Helper()
	type outcome struct {
		res plugin.ScriptResult
		reg *registry.Registry
	}
	done := make(chan outcome, 1)
	go func() {
		reg := registry.NewRegistry()
		res := (&plugin.Loader{}).LoadScript(context.Background(), "test.lua", strings.NewReader(src), reg)
		done <- outcome{res, reg}
	}()
	select {
	case o := <-done:
		return o.res, o.reg
	case <-time.After(limit):
		t.Fatalf("script still running after %s", limit)
		return plugin.ScriptResult{}, nil
	}
}

func TestLoader_ConversionIsBounded(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{
			name: "self-referencing record field",
			src: `local t = {} for i = 1, 40 do t[i] = t end
				register_fish({ id = "x", name = "X", species = "Y", color = t })`,
			msg: "contains itself",
		},
		{
			name: "self-referencing choice list",
			src: `local t = {} for i = 1, 40 do t[i] = t end
				local d = new_dialogue("Loop")
				d:choice("c", "p", t)
				register_fish({ id = "x", name = "X", species = "Y", dates = { d } })`,
			msg: "contains itself",
		},
		{
			name: "shared tables fan out",
			src: `local t = { 1 }
				for depth = 1, 12 do local n = {} for i = 1, 8 do n[i] = t end t = n end
				register_fish({ id = "x", name = "X", species = "Y", color = t })`,
			msg: "table entries",
		},
		{
			name: "wide table",
			src: `local t = {} for i = 1, 12000 do t[i] = i end
				register_fish({ id = "x", name = "X", species = "Y", color = t })`,
			msg: "table entries",
		},
		{
			name: "huge text",
			src: `local s = string.rep("x", 65536) for i = 1, 5 do s = s .. s end
				register_fish({ id = "x", name = "X", species = "Y", description = s })`,
			msg: "bytes of text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, reg := loadScriptWithin(t, 5*time.Second, tt.src)
			require.Error(t, res.Err)
			assert.Contains(t, res.Err.Error(), tt.msg)
			assert.Zero(t, reg.Count())
		})
	}
}

func TestLoader_SharedTablesConvert(t *testing.T) {
	res, reg := loadScript(t, `
		local opt = { text = "Hi", next = "end", affection = 1 }
		local d = new_dialogue("Twice")
		d:choice("start", "Say it", { opt, opt })
		d:end_node("end")
		register_fish({ id = "echo", name = "Echo", species = "Dolphin", dates = { d } })
	`)
	require.NoError(t, res.Err)
	def, ok := reg.Get("echo")
	require.True(t, ok)
	n, _ := def.Dialogues[0].Node("start")
	assert.Len(t, n.Choices, 2)
}
