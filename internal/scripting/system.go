package scripting

import (
	"fmt"
	"time"

	"github.com/l1jgo/engine/internal/core/ecs"
	"github.com/l1jgo/engine/internal/core/system"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// System is an update system whose body is a Lua function update(dt), with
// dt in seconds. Scripts may declare ordering through the global string
// lists run_after and run_before, holding system keys.
//
// The script sees these functions:
//
//	create_entity() -> id
//	destroy_entity(id)     destroyed after the script returns
//	entities_created() -> n
//	log(msg)
//
// All script systems share one Go type, so a group holds at most one.
// Single-goroutine access only.
type System struct {
	vm     *lua.LState
	log    *zap.Logger
	world  *ecs.World
	doomed []ecs.EntityID // destroy_entity calls of the running update
	calls  int
	fails  int
}

// NewSystem runs source once to define its globals.
func NewSystem(name, source string, log *zap.Logger) (*System, error) {
	s := newSystem(log)
	if err := s.vm.DoString(source); err != nil {
		s.vm.Close()
		return nil, fmt.Errorf("load script %s: %w", name, err)
	}
	return s.checked(name)
}

// LoadSystem reads and runs a script file.
func LoadSystem(path string, log *zap.Logger) (*System, error) {
	s := newSystem(log)
	if err := s.vm.DoFile(path); err != nil {
		s.vm.Close()
		return nil, fmt.Errorf("load script %s: %w", path, err)
	}
	return s.checked(path)
}

func newSystem(log *zap.Logger) *System {
	if log == nil {
		log = zap.NewNop()
	}
	s := &System{vm: lua.NewState(), log: log}
	s.vm.SetGlobal("API_VERSION", lua.LNumber(1))
	s.vm.SetGlobal("create_entity", s.vm.NewFunction(s.luaCreateEntity))
	s.vm.SetGlobal("destroy_entity", s.vm.NewFunction(s.luaDestroyEntity))
	s.vm.SetGlobal("entities_created", s.vm.NewFunction(s.luaEntitiesCreated))
	s.vm.SetGlobal("log", s.vm.NewFunction(s.luaLog))
	return s
}

func (s *System) checked(name string) (*System, error) {
	if _, ok := s.vm.GetGlobal("update").(*lua.LFunction); !ok {
		s.vm.Close()
		return nil, fmt.Errorf("script %s: no update function", name)
	}
	s.log.Debug("loaded lua system", zap.String("script", name))
	return s, nil
}

// Update calls the script. Script errors are logged, not propagated, so a
// broken script cannot stop the frame.
func (s *System) Update(w *ecs.World, dt time.Duration) {
	s.world = w
	s.calls++
	err := s.vm.CallByParam(lua.P{
		Fn:      s.vm.GetGlobal("update"),
		NRet:    0,
		Protect: true,
	}, lua.LNumber(dt.Seconds()))
	if err != nil {
		s.fails++
		s.log.Error("lua update error", zap.Error(err))
	}
	for _, id := range s.doomed {
		w.DestroyEntity(id)
	}
	s.doomed = s.doomed[:0]
	s.world = nil
}

// Ordering reads run_after and run_before from the script globals.
func (s *System) Ordering() []system.Constraint {
	var cs []system.Constraint
	for _, k := range s.stringList("run_after") {
		cs = append(cs, system.AfterKey(system.Key(k)))
	}
	for _, k := range s.stringList("run_before") {
		cs = append(cs, system.BeforeKey(system.Key(k)))
	}
	return cs
}

func (s *System) stringList(global string) []string {
	t, ok := s.vm.GetGlobal(global).(*lua.LTable)
	if !ok {
		return nil
	}
	var out []string
	t.ForEach(func(_, v lua.LValue) {
		if str, ok := v.(lua.LString); ok {
			out = append(out, string(str))
		}
	})
	return out
}

// Calls returns how many times update ran and how many of those failed.
func (s *System) Calls() (calls, fails int) { return s.calls, s.fails }

func (s *System) Close() { s.vm.Close() }

func (s *System) luaCreateEntity(L *lua.LState) int {
	if s.world == nil {
		L.RaiseError("create_entity called outside update")
		return 0
	}
	L.Push(lua.LNumber(s.world.CreateEntity()))
	return 1
}

func (s *System) luaDestroyEntity(L *lua.LState) int {
	if s.world == nil {
		L.RaiseError("destroy_entity called outside update")
		return 0
	}
	id := L.CheckInt(1)
	if id <= 0 {
		L.ArgError(1, "entity id must be positive")
		return 0
	}
	s.doomed = append(s.doomed, ecs.EntityID(id))
	return 0
}

func (s *System) luaEntitiesCreated(L *lua.LState) int {
	if s.world == nil {
		L.Push(lua.LNumber(0))
		return 1
	}
	L.Push(lua.LNumber(s.world.Pool().Allocated()))
	return 1
}

func (s *System) luaLog(L *lua.LState) int {
	s.log.Info("lua", zap.String("msg", L.CheckString(1)))
	return 0
}
