/*
The build system for smudgy, built on Mage.
Because it is self-contained, you can also just use go build inside of the smudgy directory
(or go build -C smudgy from the top-level gravwell directory.)
The Magefile serves mostly to corral the testing into a single location.
*/
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"time"

	"smudgy/utilities/cfgdir"
	"github.com/magefile/mage/mg"
)

const (
	_BINARY_TARGET string = "smudgy"
)

var (
	green = "\u001b[32m"
	reset = "\u001b[0m"
)

//#region helper functions

// Only prints the given string if verbose mode is enabled.
func verboseln(s string) {
	if mg.Verbose() {
		fmt.Println(s)
	}
}

// Prints out "ok" iff verbose mode is enabled.
func ok() {
	verboseln(green + "ok" + reset)
}

// Runs the given test and outputs (verbose-dependent) its error log (or "ok").
// If testPattern is empty, runs all tests found in testPath (omitting "-run").
// Returns the error that occurred (if applicable).
func runTest(timeout time.Duration, testPattern, testPath string) error {
	var cmd *exec.Cmd
	if testPattern == "" {
		cmd = exec.Command("go", "test", "-v", "-timeout", timeout.String(), testPath)
	} else {
		cmd = exec.Command("go", "test", "-v", "-timeout", timeout.String(), "-run", testPattern, testPath)
	}
	verboseln(cmd.String())
	if out, err := cmd.CombinedOutput(); err != nil {
		fmt.Printf("%s", out)
		return err
	}
	ok()
	return nil
}

//#endregion

//#region setup

func init() {
	// if color has been disabled, set all of the color prefixes (and reset suffix) to the empty string
	if !mg.EnableColor() {
		green = ""
		reset = ""
	}
}

//#endregion

// Default target to run when none is specified
// If not set, running mage will list available targets
//var Default = Build

// Compiles smudgy for your local architecture and outputs it to pwd.
func Build() error {
	pwd, err := os.Getwd()
	if err != nil {
		verboseln(fmt.Sprintf("failed to get pwd: %s. Defaulting to local directory.", err))
		pwd = "."
	}

	output := path.Join(pwd, _BINARY_TARGET)
	verboseln("Building " + output + "...")
	cmd := exec.Command("go", "build", "-o", output, ".")
	return cmd.Run()
}

// Runs all smudgy tests, according to their subsystem.
func TestAll() error {
	verboseln("Testing the runtime core...")
	mg.Deps(TestCore)

	verboseln("Testing configuration and the CLI tree...")
	mg.Deps(TestConfig, TestScaffold, TestMother, TestTree)

	return nil
}

// Tests the runtime core: styledline, vt, trigger, connection, mapcache,
// scriptengine, and session.
func TestCore() error {
	const _TIMEOUT time.Duration = time.Minute
	for _, pkg := range []string{
		"smudgy/styledline",
		"smudgy/vt",
		"smudgy/trigger",
		"smudgy/connection",
		"smudgy/mapcache",
		"smudgy/scriptengine",
		"smudgy/session",
	} {
		if err := runTest(_TIMEOUT, "", pkg); err != nil {
			return err
		}
	}
	return nil
}

// Tests the on-disk configuration layer.
func TestConfig() error {
	const _TIMEOUT time.Duration = 30 * time.Second
	if err := runTest(_TIMEOUT, "", "smudgy/config"); err != nil {
		return err
	}
	return nil
}

// Tests the scaffold builder functions.
func TestScaffold() error {
	const _TIMEOUT time.Duration = 30 * time.Second
	if err := runTest(_TIMEOUT, "", "smudgy/utilities/scaffold"); err != nil {
		return err
	}
	return nil
}

// Tests Mother's history and interactive walk logic.
func TestMother() error {
	const _TIMEOUT time.Duration = 30 * time.Second
	if err := runTest(_TIMEOUT, "", "smudgy/mother"); err != nil {
		return err
	}
	return nil
}

// Tests the CLI tree's root command (isNoColor, skimPassFile) and group
// assembly.
func TestTree() error {
	const _TIMEOUT time.Duration = 30 * time.Second
	if err := runTest(_TIMEOUT, "", "smudgy/tree"); err != nil {
		return err
	}
	if err := runTest(_TIMEOUT, "", "smudgy/group"); err != nil {
		return err
	}
	return nil
}

// A custom install step if you need your bin someplace other than go/bin
/*func Install() error {
	mg.Deps(Build)
	fmt.Println("Installing...")
	// check that we are root prior to moving
	return os.Rename("./smudgy", "/bin/smudgy")
} */

// Clean up the binary and any and all logs.
// Does not destroy login token.
//
// Running with dryrun prints out what files would be deleted, but does not actually delete them.
// You probably want to run it with -v.
//
// If an error occurs, it will immediately stop processing if !dryrun.
func Clean(dryrun bool) (err error) {
	// Destroy the binary
	binPath := path.Join(".", _BINARY_TARGET)
	if err := dryRM(binPath, dryrun); err != nil {
		return err
	}

	// Destroy log files in the config directory
	if err := dryRM(cfgdir.DefaultStdLogPath, dryrun); err != nil {
		return err
	}

	return nil
}

// Deletes or faux-deletes the given path according to dry run, verbose-printing the result.
// Returns errors if they occur while !dryrun
func dryRM(path string, dryrun bool) error {
	const _DRYRUN_PREFIX string = "DRYRUN: "
	var result string
	if dryrun {
		if _, err := os.Stat(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			result = _DRYRUN_PREFIX + "failed to remove file: " + err.Error()
		} else if errors.Is(err, fs.ErrNotExist) {
			// do nothing
		} else {
			result = _DRYRUN_PREFIX + path + " would have been deleted"
		}
	} else {
		if err := os.Remove(path); err == nil {
			result = "Deleted " + path

		} else if errors.Is(err, fs.ErrNotExist) {
			// do nothing, file doesn't exist
		} else {
			return fmt.Errorf("failed to remove file: %v", err)
		}
	}

	if result != "" {
		verboseln(result)
	}
	return nil
}
