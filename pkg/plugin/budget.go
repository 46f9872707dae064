package plugin

import (
	"context"
	"sync/atomic"
)

// DefaultBudget is the number of VM instructions a script may execute.
const DefaultBudget = 100_000

var closedchan = make(chan struct{})

func init() {
	close(closedchan)
}

// budgetContext counts calls to Done. The Lua VM polls Done once per executed instruction when a
// context is attached, so the count is the number of instructions run. Once the budget is spent
// Done reports closed and Err returns ErrBudgetExceeded.
type budgetContext struct {
	context.Context
	remaining atomic.Int64
	exceeded  atomic.Bool
}

func withBudget(parent context.Context, budget int64) *budgetContext {
	c := &budgetContext{Context: parent}
	c.remaining.Store(budget)
	return c
}

func (c *budgetContext) Done() <-chan struct{} {
	if c.exceeded.Load() {
		return closedchan
	}
	if c.remaining.Add(-1) < 0 {
		c.exceeded.Store(true)
		return closedchan
	}
	return c.Context.Done()
}

func (c *budgetContext) Err() error {
	if c.exceeded.Load() {
		return ErrBudgetExceeded
	}
	return c.Context.Err()
}

// Exceeded reports whether the budget ran out.
func (c *budgetContext) Exceeded() bool {
	return c.exceeded.Load()
}
