package lua

import (
	"sync/atomic"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/reelkeys/internal/hotkey"
	"github.com/dshills/reelkeys/internal/input/key"
	"github.com/dshills/reelkeys/internal/logging"
	"github.com/dshills/reelkeys/internal/player"
)

// HandlerName is the global function called after each action.
const HandlerName = "on_action"

// Observer feeds dispatched hotkey actions to a Lua script.
type Observer struct {
	state  *State
	player player.Player
	logger *logging.Logger

	calls  atomic.Uint64
	errors atomic.Uint64
}

// NewObserver creates a state bound to p and loads the script at path.
func NewObserver(p player.Player, path string, logger *logging.Logger, opts ...StateOption) (*Observer, error) {
	o := newObserver(p, logger, opts...)
	if err := o.state.DoFile(path); err != nil {
		o.state.Close()
		return nil, err
	}
	o.logger.Info("loaded observer script %s", path)
	return o, nil
}

// NewObserverString is NewObserver for a script held in memory.
func NewObserverString(p player.Player, code string, logger *logging.Logger, opts ...StateOption) (*Observer, error) {
	o := newObserver(p, logger, opts...)
	if err := o.state.DoString(code); err != nil {
		o.state.Close()
		return nil, err
	}
	return o, nil
}

func newObserver(p player.Player, logger *logging.Logger, opts ...StateOption) *Observer {
	o := &Observer{
		state:  NewState(opts...),
		player: p,
		logger: logging.OrDiscard(logger).WithComponent("lua"),
	}
	o.state.RegisterModule("player", map[string]lua.LGFunction{
		"notice": o.luaNotice,
		"state":  o.luaState,
	})
	return o
}

// OnAction calls the script's on_action handler. It has the hotkey.Observer
// signature. Script errors are logged and never reach the dispatcher.
func (o *Observer) OnAction(ev key.Event, rule string, a hotkey.Action) {
	if !o.state.HasFunction(HandlerName) {
		return
	}

	info := o.state.NewTable(0, 3)
	info.RawSetString("rule", lua.LString(rule))
	info.RawSetString("key", lua.LString(ev.String()))
	if a.Kind == hotkey.ActionToggleFullscreen {
		info.RawSetString("scope", lua.LString(a.Scope.String()))
	}

	o.calls.Add(1)
	if _, err := o.state.Call(HandlerName, lua.LString(a.Kind.String()), lua.LNumber(a.Value), info); err != nil {
		o.errors.Add(1)
		o.logger.WithField("rule", rule).Warn("%s failed: %v", HandlerName, err)
	}
}

// Observe returns OnAction as a hotkey.Observer.
func (o *Observer) Observe() hotkey.Observer {
	return o.OnAction
}

// Stats returns the number of handler calls and failures.
func (o *Observer) Stats() (calls, failures uint64) {
	return o.calls.Load(), o.errors.Load()
}

// Close releases the Lua state.
func (o *Observer) Close() error {
	return o.state.Close()
}

// luaNotice implements player.notice(msg).
func (o *Observer) luaNotice(L *lua.LState) int {
	o.player.Notice(L.CheckString(1))
	return 0
}

// luaState implements player.state().
func (o *Observer) luaState(L *lua.LState) int {
	v := o.player.Video()
	t := L.NewTable()
	t.RawSetString("current_time", lua.LNumber(v.CurrentTime()))
	t.RawSetString("duration", lua.LNumber(v.Duration()))
	t.RawSetString("rate", lua.LNumber(v.PlaybackRate()))
	t.RawSetString("volume", lua.LNumber(o.player.Volume()))
	t.RawSetString("muted", lua.LBool(v.Muted()))
	t.RawSetString("live", lua.LBool(o.player.Options().Live))
	t.RawSetString("focused", lua.LBool(o.player.Focused()))
	L.Push(t)
	return 1
}
