// Package scripting runs the Lua rules that score a finished run.
package scripting

import (
	_ "embed"
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

//go:embed scripts/score.lua
var scoreLua string

// FallbackMedal is reported when the medal script fails.
const FallbackMedal = "EXPLORER"

// Engine wraps a single gopher-lua VM. Single-goroutine access only.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine with the built-in scoring rules loaded.
func NewEngine(log *zap.Logger) (*Engine, error) {
	return NewEngineFromSource(scoreLua, log)
}

// NewEngineFromSource loads src instead of the built-in rules.
func NewEngineFromSource(src string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load score script: %w", err)
	}
	return &Engine{vm: vm, log: log}, nil
}

// Close releases the VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// RunStats is the input to Score.
type RunStats struct {
	Steps          int
	Sad            int
	Neutral        int
	Happy          int
	Traps          int
	Puzzles        int
	Bonuses        int
	PhilosophyUses int
}

// Achievement is one award granted by the score script.
type Achievement struct {
	Name string `json:"name"`
	Desc string `json:"desc"`
	XP   int    `json:"xp"`
}

// Score is the result of score_run.
type Score struct {
	XP           int
	Achievements []Achievement
}

// Medal is the result of speedrun_medal.
type Medal struct {
	Name  string
	Blurb string
}

// Score calls the Lua score_run function. Script failures yield zero XP.
func (e *Engine) Score(st RunStats) Score {
	fn := e.vm.GetGlobal("score_run")
	if fn == lua.LNil {
		e.log.Error("lua function score_run not found")
		return Score{}
	}

	t := e.vm.NewTable()
	t.RawSetString("steps", lua.LNumber(st.Steps))
	t.RawSetString("sad", lua.LNumber(st.Sad))
	t.RawSetString("neutral", lua.LNumber(st.Neutral))
	t.RawSetString("happy", lua.LNumber(st.Happy))
	t.RawSetString("traps", lua.LNumber(st.Traps))
	t.RawSetString("puzzles", lua.LNumber(st.Puzzles))
	t.RawSetString("bonuses", lua.LNumber(st.Bonuses))
	t.RawSetString("philosophy", lua.LNumber(st.PhilosophyUses))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua score_run error", zap.Error(err))
		return Score{}
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua score_run returned non-table")
		return Score{}
	}

	sc := Score{XP: int(lua.LVAsNumber(rt.RawGetString("xp")))}
	if list, ok := rt.RawGetString("achievements").(*lua.LTable); ok {
		for i := 1; i <= list.Len(); i++ {
			at, ok := list.RawGetInt(i).(*lua.LTable)
			if !ok {
				continue
			}
			sc.Achievements = append(sc.Achievements, Achievement{
				Name: lua.LVAsString(at.RawGetString("name")),
				Desc: lua.LVAsString(at.RawGetString("desc")),
				XP:   int(lua.LVAsNumber(at.RawGetString("xp"))),
			})
		}
	}
	return sc
}

// Medal calls the Lua speedrun_medal function. Script failures yield
// FallbackMedal.
func (e *Engine) Medal(steps int) Medal {
	fallback := Medal{Name: FallbackMedal}
	fn := e.vm.GetGlobal("speedrun_medal")
	if fn == lua.LNil {
		e.log.Error("lua function speedrun_medal not found")
		return fallback
	}
	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(steps)); err != nil {
		e.log.Error("lua speedrun_medal error", zap.Error(err))
		return fallback
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua speedrun_medal returned non-table")
		return fallback
	}
	name := lua.LVAsString(rt.RawGetString("name"))
	if name == "" {
		return fallback
	}
	return Medal{Name: name, Blurb: lua.LVAsString(rt.RawGetString("blurb"))}
}
