// Package scripting runs user-supplied Lua objectives in a locked-down
// GopherLua VM. It knows nothing about raids: callers pass Lua values in and
// read Lua values back.
package scripting

import (
	"context"
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"
)

// DefaultOpLimit is the opcode budget used when none is configured.
const DefaultOpLimit = 100_000

// removedGlobals can reach the filesystem or the loader.
var removedGlobals = []string{"dofile", "loadfile", "load", "collectgarbage", "require"}

// opBudget is a context that cancels itself once Done has been polled more
// than its remaining count. GopherLua polls Done once per opcode.
type opBudget struct {
	context.Context
	left atomic.Int64
	stop context.CancelFunc
}

func (b *opBudget) Done() <-chan struct{} {
	if b.left.Add(-1) < 0 {
		b.stop()
	}
	return b.Context.Done()
}

// Sandbox is one VM with base, table, string and math only.
//
// A Sandbox is not safe for concurrent use.
type Sandbox struct {
	L     *lua.LState
	limit int
	stop  context.CancelFunc
}

// NewSandbox creates a VM whose every run is bounded by limit opcodes. A
// limit <= 0 selects DefaultOpLimit.
//
// Postcondition: the returned Sandbox is armed with a full budget.
func NewSandbox(limit int) *Sandbox {
	if limit <= 0 {
		limit = DefaultOpLimit
	}
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, open := range []lua.LGFunction{lua.OpenBase, lua.OpenTable, lua.OpenString, lua.OpenMath} {
		open(L)
	}
	for _, name := range removedGlobals {
		L.SetGlobal(name, lua.LNil)
	}
	sb := &Sandbox{L: L, limit: limit}
	sb.Rearm()
	return sb
}

// Limit returns the opcode budget granted by each Rearm.
func (sb *Sandbox) Limit() int { return sb.limit }

// Rearm discards what is left of the current budget and grants a fresh one.
func (sb *Sandbox) Rearm() {
	if sb.stop != nil {
		sb.stop()
	}
	ctx, stop := context.WithCancel(context.Background())
	b := &opBudget{Context: ctx, stop: stop}
	b.left.Store(int64(sb.limit))
	sb.stop = stop
	sb.L.SetContext(b)
}

// Close releases the VM.
func (sb *Sandbox) Close() {
	if sb.stop != nil {
		sb.stop()
	}
	sb.L.Close()
}
