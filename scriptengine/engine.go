/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

// Package scriptengine embeds a JS runtime per session. It loads a
// server's modules/*.{js,ts} on construction, exposes host ops for
// session I/O, automation registration, line mutation, and map access,
// and compiles/caches scripts and captured function handles so the
// trigger package (which never imports this package) can re-enter them
// through the trigger.ScriptRunner interface.
package scriptengine

import (
	"fmt"
	"strconv"

	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"

	"smudgy/clilog"
	"smudgy/mapcache"
	"smudgy/trigger"
)

func logInfof(format string, args ...any) {
	if clilog.Writer != nil {
		clilog.Writer.Infof(format, args...)
	}
}

func logErrorf(format string, args ...any) {
	if clilog.Writer != nil {
		clilog.Writer.Errorf(format, args...)
	}
}

// Engine is a per-session JS runtime. It is not safe for concurrent use:
// like the original's current-thread executor, an Engine is owned
// exclusively by its session's single goroutine.
type Engine struct {
	runtime  *goja.Runtime
	registry *require.Registry
	host     Host
	mapper   *mapcache.Mapper

	serverName string

	scripts   []*goja.Program
	functions []goja.Callable
}

// New constructs an Engine for serverName, wires host and mapper ops, runs
// the bootstrap script, and loads every module under
// <server>/modules/*.{js,ts}. mapper may be nil — the mapper ops then
// report ErrMapperNotEnabled to scripts the way the original's
// MapperError::MapperNotEnabled does (listAreaIds returns no ids instead).
func New(serverName string, host Host, mapper *mapcache.Mapper) (*Engine, error) {
	if host == nil {
		host = NullHost{}
	}
	e := &Engine{
		runtime:    goja.New(),
		host:       host,
		mapper:     mapper,
		serverName: serverName,
	}

	e.registry = require.NewRegistry(require.WithGlobalFolders(modulesDir(serverName)))
	e.registry.Enable(e.runtime)
	console.Enable(e.runtime)

	e.registerOps()
	e.registerMapperOps()

	if _, err := e.runtime.RunString(bootstrapScript); err != nil {
		return nil, fmt.Errorf("scriptengine: bootstrap: %w", err)
	}

	if err := e.loadModules(); err != nil {
		return nil, err
	}

	return e, nil
}

// Reload clears the compiled-script and captured-function caches and
// reloads every module from disk, matching the original's "both vectors
// are cleared on Reload" contract. The runtime's global state (anything
// a module assigned to globalThis) is NOT reset — callers that want a
// fully clean slate should discard the Engine and call New again.
func (e *Engine) Reload() error {
	e.scripts = nil
	e.functions = nil
	return e.loadModules()
}

// AddScript compiles source to a bound program and appends it to the
// script cache, returning a ScriptID whose string form is the cache
// index (mirrors add_script's Vec<Global<Script>> index-as-id scheme).
func (e *Engine) AddScript(source string) (trigger.ScriptID, error) {
	prog, err := goja.Compile("<script>", source, false)
	if err != nil {
		return "", fmt.Errorf("scriptengine: compile: %w", err)
	}
	e.scripts = append(e.scripts, prog)
	return trigger.ScriptID(strconv.Itoa(len(e.scripts) - 1)), nil
}

// CompileTypeScript transpiles source from TypeScript to ECMAScript
// before compiling it, for automation definitions authored with
// config.LanguageTS. Plain config.LanguageJS sources go through AddScript
// directly; this extra step exists only because goja cannot parse TS
// syntax on its own.
func (e *Engine) CompileTypeScript(source string) (trigger.ScriptID, error) {
	js, err := transpileTypeScript("<automation>", source)
	if err != nil {
		return "", fmt.Errorf("scriptengine: transpile: %w", err)
	}
	return e.AddScript(js)
}

func (e *Engine) scriptByID(id trigger.ScriptID) (*goja.Program, error) {
	idx, err := strconv.Atoi(string(id))
	if err != nil || idx < 0 || idx >= len(e.scripts) {
		return nil, ErrUnknownScript
	}
	return e.scripts[idx], nil
}

// registerFunction stores f (captured from a create_javascript_function_*
// op) and returns its FunctionID, mirroring script_functions's
// index-as-id scheme.
func (e *Engine) registerFunction(f goja.Callable) trigger.FunctionID {
	e.functions = append(e.functions, f)
	return trigger.FunctionID(strconv.Itoa(len(e.functions) - 1))
}

func (e *Engine) functionByID(id trigger.FunctionID) (goja.Callable, error) {
	idx, err := strconv.Atoi(string(id))
	if err != nil || idx < 0 || idx >= len(e.functions) {
		return nil, ErrUnknownFunction
	}
	return e.functions[idx], nil
}
