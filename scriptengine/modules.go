/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package scriptengine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"smudgy/config"
	"smudgy/utilities/cfgdir"
)

// modulesDir returns <server-dir>/modules, the root the module resolver
// and the module scan are both rooted at.
func modulesDir(server string) string {
	serverDir, err := cfgdir.ServerDir(server)
	if err != nil {
		return ""
	}
	return filepath.Join(serverDir, "modules")
}

// loadModules runs every *.js/*.ts file under the server's modules
// directory as a top-level script, transpiling .ts files to ECMAScript
// with esbuild first since goja only accepts ECMAScript. Modules are run
// in directory-listing order; a module that throws on load aborts the
// whole load (surfaced to the caller, same as a failed New).
func (e *Engine) loadModules() error {
	paths, err := config.ListModules(e.serverName)
	if err != nil {
		return fmt.Errorf("scriptengine: list modules: %w", err)
	}
	for _, path := range paths {
		source, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("scriptengine: read module %s: %w", path, err)
		}
		js := string(source)
		if strings.EqualFold(filepath.Ext(path), ".ts") {
			js, err = transpileTypeScript(path, js)
			if err != nil {
				return fmt.Errorf("scriptengine: transpile module %s: %w", path, err)
			}
		}
		if _, err := e.runtime.RunScript(path, js); err != nil {
			return fmt.Errorf("scriptengine: load module %s: %w", path, err)
		}
		logInfof("scriptengine: loaded module %s", path)
	}
	return nil
}

// transpileTypeScript strips types and lowers a .ts module to plain
// ECMAScript with a single esbuild Transform call.
func transpileTypeScript(path, source string) (string, error) {
	result := api.Transform(source, api.TransformOptions{
		Loader:     api.LoaderTS,
		Sourcefile: path,
		Target:     api.ES2020,
	})
	if len(result.Errors) > 0 {
		msgs := make([]string, len(result.Errors))
		for i, m := range result.Errors {
			msgs[i] = m.Text
		}
		return "", fmt.Errorf("%s", strings.Join(msgs, "; "))
	}
	return string(result.Code), nil
}
