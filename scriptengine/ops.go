/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package scriptengine

import (
	"github.com/dop251/goja"

	"smudgy/styledline"
)

// registerOps installs smudgy_ops's surface (session I/O, automation
// registration, line mutation) as global functions the bootstrap script
// wraps into the friendlier smudgy.* API. Every op that converts a JS
// value at the boundary swallows conversion failures as a silent no-op,
// matching "the ops layer does not throw back into user code for
// malformed arguments".
func (e *Engine) registerOps() {
	rt := e.runtime

	must := func(name string, fn any) {
		if err := rt.Set(name, fn); err != nil {
			logErrorf("scriptengine: register op %s: %v", name, err)
		}
	}

	must("__op_get_current_session", func() int { return e.host.CurrentSessionID() })
	must("__op_get_sessions", func() []int { return e.host.SessionIDs() })
	must("__op_get_session_character", func(id int) map[string]string {
		name, subtext, ok := e.host.SessionCharacter(id)
		if !ok {
			return map[string]string{}
		}
		return map[string]string{"name": name, "subtext": subtext}
	})

	must("__op_session_echo", func(_ int, line string) { e.host.Echo(line) })
	must("__op_session_send", func(_ int, line string) { e.host.Send(line) })
	must("__op_session_send_raw", func(_ int, line string) { e.host.SendRaw(line) })

	must("__op_create_simple_alias", func(name string, patterns []string, script string) {
		if err := e.host.AddAlias(name, patterns, script); err != nil {
			logErrorf("scriptengine: create_simple_alias %q: %v", name, err)
		}
	})
	must("__op_create_simple_trigger", func(name string, patterns, rawPatterns, antiPatterns []string, script string, prompt, enabled bool) {
		if err := e.host.AddTrigger(name, patterns, rawPatterns, antiPatterns, script, prompt, enabled); err != nil {
			logErrorf("scriptengine: create_simple_trigger %q: %v", name, err)
		}
	})

	must("__op_create_javascript_function_alias", func(call goja.FunctionCall) goja.Value {
		name, patterns, ok := parseNamePatterns(call, 0, 1)
		if !ok {
			return goja.Undefined()
		}
		fn, ok := goja.AssertFunction(call.Argument(2))
		if !ok {
			return goja.Undefined()
		}
		id := e.registerFunction(fn)
		if err := e.host.AddJavascriptFunctionAlias(name, patterns, id); err != nil {
			logErrorf("scriptengine: create_javascript_function_alias %q: %v", name, err)
		}
		return goja.Undefined()
	})

	must("__op_create_javascript_function_trigger", func(call goja.FunctionCall) goja.Value {
		name, patterns, ok := parseNamePatterns(call, 0, 1)
		if !ok {
			return goja.Undefined()
		}
		rawPatterns, ok := toStringSlice(call.Argument(2))
		if !ok {
			return goja.Undefined()
		}
		antiPatterns, ok := toStringSlice(call.Argument(3))
		if !ok {
			return goja.Undefined()
		}
		fn, ok := goja.AssertFunction(call.Argument(4))
		if !ok {
			return goja.Undefined()
		}
		prompt := call.Argument(5).ToBoolean()
		enabled := call.Argument(6).ToBoolean()
		id := e.registerFunction(fn)
		if err := e.host.AddJavascriptFunctionTrigger(name, patterns, rawPatterns, antiPatterns, id, prompt, enabled); err != nil {
			logErrorf("scriptengine: create_javascript_function_trigger %q: %v", name, err)
		}
		return goja.Undefined()
	})

	must("__op_set_alias_enabled", func(name string, enabled bool) { e.host.SetAliasEnabled(name, enabled) })
	must("__op_set_trigger_enabled", func(name string, enabled bool) { e.host.SetTriggerEnabled(name, enabled) })

	must("__op_line_insert", func(str string, begin, end int) {
		e.host.MutateCurrentLine(styledline.LineOperation{Kind: styledline.OpInsert, Str: str, Begin: begin, End: end})
	})
	must("__op_line_replace", func(str string, begin, end int) {
		e.host.MutateCurrentLine(styledline.LineOperation{Kind: styledline.OpReplace, Str: str, Begin: begin, End: end})
	})
	must("__op_line_highlight", func(begin, end int) {
		e.host.MutateCurrentLine(styledline.LineOperation{Kind: styledline.OpHighlight, Begin: begin, End: end})
	})
	must("__op_line_remove", func(begin, end int) {
		e.host.MutateCurrentLine(styledline.LineOperation{Kind: styledline.OpRemove, Begin: begin, End: end})
	})
	must("__op_line_gag", func() {
		e.host.MutateCurrentLine(styledline.LineOperation{Kind: styledline.OpGag})
	})
}

// parseNamePatterns pulls a (string, []string) pair out of call at the
// given argument indices, reporting ok=false on any conversion failure.
func parseNamePatterns(call goja.FunctionCall, nameIdx, patternsIdx int) (name string, patterns []string, ok bool) {
	nameVal := call.Argument(nameIdx)
	if goja.IsUndefined(nameVal) {
		return "", nil, false
	}
	patterns, ok = toStringSlice(call.Argument(patternsIdx))
	if !ok {
		return "", nil, false
	}
	return nameVal.String(), patterns, true
}

func toStringSlice(v goja.Value) ([]string, bool) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil, true
	}
	exported := v.Export()
	raw, ok := exported.([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, len(raw))
	for i, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out[i] = s
	}
	return out, true
}
