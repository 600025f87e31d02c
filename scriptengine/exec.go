/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package scriptengine

import (
	"time"

	"github.com/dop251/goja"

	"smudgy/clilog"
	"smudgy/trigger"
)

func logDebugf(format string, args ...any) {
	if clilog.Writer != nil {
		clilog.Writer.Debugf(format, args...)
	}
}

// Engine implements trigger.ScriptRunner: a *Engine is handed to
// trigger.Manager's Dispatch*/ProcessOutgoing calls so matched
// EvalJavascript/CallJavascriptFunction actions re-enter compiled scripts
// and captured functions.
var _ trigger.ScriptRunner = (*Engine)(nil)

// EvalJavascript runs a whole compiled script (run_script). A thrown
// exception is echoed to the session directly rather than propagated, so
// the returned ok is false and err is nil in that case — the caller
// (trigger.Manager) has nothing further to recurse into.
func (e *Engine) EvalJavascript(id trigger.ScriptID, captures []trigger.Capture, depth int) (string, bool, error) {
	prog, err := e.scriptByID(id)
	if err != nil {
		return "", false, err
	}

	e.runtime.Set("matches", e.buildMatchesObject(captures))
	start := time.Now()
	v, runErr := e.runtime.RunProgram(prog)
	logInfof("scriptengine: ran script %s at depth %d in %s", id, depth, time.Since(start))

	if runErr != nil {
		if exc, ok := runErr.(*goja.Exception); ok {
			e.host.Echo(exc.String())
			return "", false, nil
		}
		return "", false, runErr
	}
	if s, ok := stringReturn(v); ok {
		return s, true, nil
	}
	return "", false, nil
}

// CallJavascriptFunction invokes a previously captured function
// (call_javascript_function), passing the matches object as its sole
// positional argument instead of installing it as a global. Otherwise
// identical semantics to EvalJavascript; logged at debug level, matching
// the original's distinction between the two execution contracts.
func (e *Engine) CallJavascriptFunction(id trigger.FunctionID, captures []trigger.Capture, depth int) (string, bool, error) {
	fn, err := e.functionByID(id)
	if err != nil {
		return "", false, err
	}

	matches := e.buildMatchesObject(captures)
	start := time.Now()
	v, runErr := fn(goja.Undefined(), e.runtime.ToValue(matches))
	logDebugf("scriptengine: called function %s at depth %d in %s", id, depth, time.Since(start))

	if runErr != nil {
		if exc, ok := runErr.(*goja.Exception); ok {
			e.host.Echo(exc.String())
			return "", false, nil
		}
		return "", false, runErr
	}
	if s, ok := stringReturn(v); ok {
		return s, true, nil
	}
	return "", false, nil
}

// buildMatchesObject turns captures into the {key: value} object both
// execution contracts expose to script code as "matches".
func (e *Engine) buildMatchesObject(captures []trigger.Capture) *goja.Object {
	obj := e.runtime.NewObject()
	for _, c := range captures {
		obj.Set(c.Key, c.Value)
	}
	return obj
}

// stringReturn reports whether v is a JS string, unwrapping it if so.
func stringReturn(v goja.Value) (string, bool) {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return "", false
	}
	exported := v.Export()
	s, ok := exported.(string)
	return s, ok
}
