package scripting

import (
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RegisterModules registers all engine.* Lua tables into L:
//
//	engine.log.debug|info|warn|error(msg)  writes msg to the Manager's logger
//
// Precondition: L must belong to a Sandbox.
// Postcondition: engine global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	engine := L.NewTable()
	log := L.NewTable()
	L.SetFuncs(log, map[string]lua.LGFunction{
		"debug": m.luaLog(zapcore.DebugLevel),
		"info":  m.luaLog(zapcore.InfoLevel),
		"warn":  m.luaLog(zapcore.WarnLevel),
		"error": m.luaLog(zapcore.ErrorLevel),
	})
	engine.RawSetString("log", log)
	L.SetGlobal("engine", engine)
}

func (m *Manager) luaLog(level zapcore.Level) lua.LGFunction {
	return func(L *lua.LState) int {
		msg := L.CheckString(1)
		if ce := m.logger.Check(level, msg); ce != nil {
			ce.Write(zap.String("source", "lua"))
		}
		return 0
	}
}
