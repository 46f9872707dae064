package plugin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"
)

// DefaultTimeout bounds the wall-clock time of a single script.
const DefaultTimeout = 2 * time.Second

const (
	callStackSize   = 120
	registrySize    = 1024 * 4
	registryMaxSize = 1024 * 64
	maxRepeatLen    = 1 << 16
)

// Unsafe or file-system touching globals removed after the base library is opened.
var strippedGlobals = []string{
	"dofile", "loadfile", "load", "loadstring", "require", "module", "collectgarbage",
	"getfenv", "setfenv", "newproxy", "_printregs",
}

// newSandbox creates an interpreter with only the base, table, string and math libraries.
func newSandbox() (*lua.LState, error) {
	L := lua.NewState(lua.Options{
		SkipOpenLibs:        true,
		CallStackSize:       callStackSize,
		RegistrySize:        registrySize,
		RegistryMaxSize:     registryMaxSize,
		IncludeGoStackTrace: false,
	})

	libs := []struct {
		name string
		open lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	}
	for _, lib := range libs {
		if err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name)); err != nil {
			L.Close()
			return nil, fmt.Errorf("open %q library: %w", lib.name, err)
		}
	}

	for _, name := range strippedGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	// string.rep runs natively, so one call could do unbounded work under a single instruction.
	// Memory is not capped: concatenation in a loop is only stopped by the budget or the timeout.
	if str, ok := L.GetGlobal(lua.StringLibName).(*lua.LTable); ok {
		str.RawSetString("rep", L.NewFunction(boundedRep))
	}
	return L, nil
}

func boundedRep(L *lua.LState) int {
	s := L.CheckString(1)
	n := L.CheckInt(2)
	if n <= 0 || s == "" {
		L.Push(lua.LString(""))
		return 1
	}
	if len(s)*n > maxRepeatLen {
		L.RaiseError("string.rep result exceeds %d bytes", maxRepeatLen)
		return 0
	}
	L.Push(lua.LString(strings.Repeat(s, n)))
	return 1
}

// execute compiles and runs src under an instruction budget and a wall-clock timeout.
func execute(ctx context.Context, L *lua.LState, name string, src io.Reader, budget int64, timeout time.Duration) error {
	fn, err := L.Load(src, name)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	bctx := withBudget(ctx, budget)
	L.SetContext(bctx)
	defer L.RemoveContext()

	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		switch {
		case bctx.Exceeded():
			return ErrBudgetExceeded
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			return fmt.Errorf("timed out after %s: %w", timeout, context.DeadlineExceeded)
		case ctx.Err() != nil:
			return ctx.Err()
		}
		return err
	}
	return nil
}
