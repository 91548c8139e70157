package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// globalSet is the reserved key for shared scripts loaded via LoadGlobal.
// CallHook falls back to this VM when no set VM is found.
const globalSet = "__global__"

// vm is one loaded script set. mu serializes hook calls into its sandbox.
type vm struct {
	mu sync.Mutex
	sb *Sandbox
}

// Manager owns one sandboxed LState per script set and exposes hook dispatch.
//
// Manager is safe for concurrent CallHook. Calls into the same set are
// serialized; different sets run concurrently.
type Manager struct {
	mu     sync.RWMutex
	vms    map[string]*vm
	logger *zap.Logger
}

// NewManager creates a Manager.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns a non-nil Manager with no script sets.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		panic("scripting: NewManager precondition violated: nil logger")
	}
	return &Manager{
		vms:    make(map[string]*vm),
		logger: logger,
	}
}

// LoadDir creates a sandboxed VM for set, registers the engine.* modules,
// then executes every *.lua file in scriptDir in lexicographic order.
//
// Precondition: set must be non-empty; scriptDir must be a readable directory.
// Postcondition: The set VM is registered, replacing any previous one;
// returns error on Lua load failure.
func (m *Manager) LoadDir(set, scriptDir string, instLimit int) error {
	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		return fmt.Errorf("scripting: reading script dir %q for %q: %w", scriptDir, set, err)
	}
	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)
	return m.loadInto(set, luaFiles, instLimit)
}

// LoadFile creates a sandboxed VM for set from the single script at path.
//
// Precondition: set must be non-empty.
// Postcondition: The set VM is registered; returns error on read or Lua failure.
func (m *Manager) LoadFile(set, path string, instLimit int) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("scripting: reading script %q for %q: %w", path, set, err)
	}
	return m.loadInto(set, []string{path}, instLimit)
}

// LoadGlobal creates the "__global__" VM for shared scripts accessible
// as a CallHook fallback from any set.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: Global VM is registered; returns error on Lua load failure.
func (m *Manager) LoadGlobal(scriptDir string, instLimit int) error {
	return m.LoadDir(globalSet, scriptDir, instLimit)
}

func (m *Manager) loadInto(key string, paths []string, instLimit int) error {
	sb := NewSandbox(instLimit)
	m.RegisterModules(sb.L)

	for _, path := range paths {
		if err := sb.L.DoFile(path); err != nil {
			sb.Close()
			return fmt.Errorf("scripting: loading %q for %q: %w", path, key, err)
		}
	}

	m.mu.Lock()
	if old, ok := m.vms[key]; ok {
		old.mu.Lock()
		old.sb.Close()
		old.mu.Unlock()
	}
	m.vms[key] = &vm{sb: sb}
	m.mu.Unlock()
	m.logger.Debug("scripting: loaded script set",
		zap.String("set", key),
		zap.Int("files", len(paths)),
	)
	return nil
}

// CallHook calls the named Lua global function in set's VM. If the set has
// no VM, the __global__ VM is tried as a fallback. Returns (LNil, nil) if the
// hook is not defined or no VM exists. Every call gets a fresh instruction
// budget. Lua runtime errors are logged at Warn level and never propagated.
//
// Precondition: args must be valid lua.LValue instances.
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(set, hook string, args ...lua.LValue) (lua.LValue, error) {
	m.mu.RLock()
	v, ok := m.vms[set]
	if !ok {
		v = m.vms[globalSet]
	}
	m.mu.RUnlock()

	if v == nil {
		m.logger.Info("scripting: no VM for script set",
			zap.String("set", set),
			zap.String("hook", hook),
		)
		return lua.LNil, nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	L := v.sb.L
	fn := L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil, nil
	}

	v.sb.Rearm()
	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.String("set", set),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, nil
	}

	ret := L.Get(-1)
	L.Pop(1)
	return ret, nil
}

// Close releases every VM. Later CallHook calls find no VM.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for key, v := range m.vms {
		v.mu.Lock()
		v.sb.Close()
		v.mu.Unlock()
		delete(m.vms, key)
	}
}
