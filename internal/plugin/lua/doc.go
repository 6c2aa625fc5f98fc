// Package lua runs sandboxed Lua observer scripts.
//
// A script may define a global on_action function, which is called after
// every hotkey that the engine acted on:
//
//	function on_action(name, value, info)
//	    if name == "take-screenshot" then
//	        player.notice("saved at " .. player.state().current_time)
//	    end
//	end
//
// info is a table with the fields rule, key and scope. The player module
// exposes notice(msg) and a read-only state() snapshot. Scripts observe
// actions; they cannot change which action a key produces.
//
// Only the base, table, string and math libraries are opened. dofile,
// loadfile, load and loadstring are removed, and every call runs under an
// execution timeout.
package lua
