/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

/*
Package tree supplies the root node of the command tree and the true "main" function.
Initializes itself and `Executes()`, triggering Cobra to assemble itself.
All invocations of the program operate via root, whether or not it hands off control to Mother.
All singletons are instantiated here or via the cobra pre-run.
*/
package tree

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	"smudgy/action"
	"smudgy/clilog"
	"smudgy/group"
	"smudgy/stylesheet"
	ft "smudgy/stylesheet/flagtext"
	"smudgy/tree/aliases"
	"smudgy/tree/connect"
	"smudgy/tree/hotkeys"
	"smudgy/tree/profiles"
	"smudgy/tree/servers"
	treetree "smudgy/tree/tree"
	"smudgy/tree/triggers"
	"smudgy/utilities/cfgdir"
	"smudgy/utilities/treeutils"
	"smudgy/utilities/uniques"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var profilerFile *os.File

// global PersistentPreRunE.
//
// Ensures the logger is set up and the active stylesheet matches
// --no-color/NO_COLOR/--no-interactive before any command or Mother runs.
func ppre(cmd *cobra.Command, args []string) error {
	if clilog.Writer == nil {
		path, err := cmd.Flags().GetString("log")
		if err != nil {
			return err
		}
		lvl, err := cmd.Flags().GetString("loglevel")
		if err != nil {
			return err
		}
		if err := clilog.Init(path, lvl); err != nil {
			return err
		}
	}

	if isNoColor(cmd.Flags()) {
		stylesheet.SetSheet(stylesheet.NoColor())
	}

	// if this is a 'complete' request, skip profiler setup
	if cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == cobra.ShellCompNoDescRequestCmd {
		return nil
	}
	if cmd.Name() == "help" {
		return nil
	}

	if fn, err := cmd.Flags().GetString("cpuprofile"); err != nil {
		panic(err)
	} else if fn = strings.TrimSpace(fn); fn != "" {
		profilerFile, err = os.Create(fn)
		if err != nil {
			clilog.Writer.Warnf("Failed to create file for profiler: %v", err)
			profilerFile = nil
		} else {
			if err := pprof.StartCPUProfile(profilerFile); err != nil {
				clilog.Writer.Infof("failed to enable cpu profiler: %v", err)
			} else {
				clilog.Writer.Infof("started cpu profiler on %v", profilerFile.Name())
			}
		}
	}

	return nil
}

// isNoColor reports whether colorized output should be disabled: the
// --no-color flag was given, the NO_COLOR environment variable is set
// (https://no-color.org, any value counts), or --no-interactive was
// given (a non-interactive invocation gets plain output by default,
// since there is no terminal session to negotiate styling with).
func isNoColor(fs *pflag.FlagSet) bool {
	if nc, err := fs.GetBool(ft.NoColor.Name()); err == nil && nc {
		return true
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return true
	}
	if ni, err := fs.GetBool(ft.NoInteractive.Name()); err == nil && ni {
		return true
	}
	return false
}

// skimPassFile slurps the file at the given path if path != "".
// Returns the password found, an error opening/slurping the file, or "" (if path is empty).
func skimPassFile(path string) (password string, err error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read password from %v: %v", path, err)
		}
		return strings.TrimSpace(string(b)), nil
	}
	return "", nil
}

// global PersistentPostRunE. Flushes the CPU profiler, if one was started.
func ppost(cmd *cobra.Command, args []string) error {
	pprof.StopCPUProfile() // idempotent if no profiler is running
	if profilerFile != nil {
		profilerFile.Sync()
		profilerFile.Close()
	}
	return nil
}

// GenerateFlags populates all root-relevant flags (global plus root-local).
func GenerateFlags(root *cobra.Command) {
	uniques.AttachPersistentFlags(root)

	root.PersistentFlags().String("cpuprofile", "", "spins up the native CPU profiler to log samples (in pprof format) into the given path")
	root.PersistentFlags().MarkHidden("cpuprofile")
}

const ( // usage
	use   string = "smudgy"
	short string = "an extensible client for line-oriented telnet/MUD servers"
)

// must be variable to allow lipgloss formatting
var long string = "smudgy is a client for connecting to and automating interactive " +
	"line-oriented telnet/MUD servers.\n" +
	"Manage saved servers, profiles, aliases, triggers, and hotkeys from your scripts, or run " +
	stylesheet.ExampleStyle.Render("smudgy") + " to drop into the interactive shell.\n" +
	"A session can be driven headlessly via " + stylesheet.ExampleStyle.Render("smudgy connect") + ".\n" +
	"You can view help for any submenu or action by providing help a path.\n" +
	"For instance, try: " + stylesheet.ExampleStyle.Render("smudgy help aliases add") +
	" or " + stylesheet.ExampleStyle.Render("smudgy connect -h")

const ( // mousetrap
	mousetrapText string = "This is a command line tool.\n" +
		"You need to open smudgy.exe and run it from there.\n" +
		"Press Return to close.\n"
	mousetrapDuration time.Duration = (0 * time.Second)
)

// Execute adds all child commands to the root command, sets flags appropriately, and launches the
// program according to the given parameters
// (via cobra.Command.Execute()).
func Execute(args []string) int {
	navs := []*cobra.Command{
		servers.NewServersNav(),
		profiles.NewProfilesNav(),
		aliases.NewAliasesNav(),
		triggers.NewTriggersNav(),
		hotkeys.NewHotkeysNav(),
	}

	rootCmd := treeutils.GenerateNav(use, short, long, []string{},
		navs,
		[]action.Pair{
			connect.NewConnectAction(),
			treetree.NewTreeAction(),
		})
	rootCmd.SilenceUsage = true
	rootCmd.PersistentPreRunE = ppre
	rootCmd.PersistentPostRunE = ppost
	rootCmd.Version = uniques.Version

	GenerateFlags(rootCmd)

	if !rootCmd.AllChildCommandsHaveGroup() {
		panic("some children missing a group")
	}

	rootCmd.SetCompletionCommandGroupID(group.ActionID)

	cobra.MousetrapHelpText = mousetrapText
	cobra.MousetrapDisplayDuration = mousetrapDuration

	// configure root's Run to launch Mother
	rootCmd.Run = treeutils.NavRun

	// if args were given (ex: we are in testing mode)
	// use those instead of os.Args
	if args != nil {
		rootCmd.SetArgs(args)
	}

	rootCmd.SetUsageFunc(Usage)

	err := rootCmd.Execute()
	if err != nil {
		return 1
	}

	return 0
}

// Usage provides a replacement for cobra's usage command, dynamically building the usage based on pwd (/ the full path the user gave).
func Usage(c *cobra.Command) error {
	var bldr strings.Builder
	// pull off first string, recombine the rest to retrieve a usable path sans root
	root, path := func() (string, string) {
		// could do all of this in a one-liner in the fmt.Sprintf, but this is clearer
		p := strings.Split(c.CommandPath(), " ")
		if len(p) < 1 { // should be impossible
			clilog.Writer.Critical("exploded command path is zero-length")
			return "UNKNOWN", "UNKNOWN"
		}
		return p[0], strings.Join(p[1:], " ")
	}()

	bldr.WriteString(stylesheet.Header1Style.Render("Usage:") +
		strings.TrimRight(fmt.Sprintf(" %v %s",
			root, path,
		), " "))

	if c.GroupID == group.NavID { // nav
		bldr.WriteString(" [subcommand]\n")
	} else { // action
		bldr.WriteString(" [flags]\n\n")
		bldr.WriteString(stylesheet.Header1Style.Render("Local Flags:") + "\n")
		bldr.WriteString(c.LocalNonPersistentFlags().FlagUsages())
	}

	bldr.WriteRune('\n')

	if c.HasExample() {
		bldr.WriteString(stylesheet.Header1Style.Render("Example:") + " " + c.Example + "\n\n")
	}

	bldr.WriteString(stylesheet.Header1Style.Render("Global Flags:") + "\n")
	bldr.WriteString(c.Root().PersistentFlags().FlagUsages())

	bldr.WriteRune('\n')

	// print aliases
	if len(c.Aliases) != 0 {
		var s strings.Builder
		s.WriteString(stylesheet.Header1Style.Render("Aliases:") + " ")
		for _, a := range c.Aliases {
			s.WriteString(a + ", ")
		}
		bldr.WriteString(strings.TrimRight(s.String(), ", ") + "\n") // chomp
	}

	// split children by group
	childNavs := make([]*cobra.Command, 0)
	childActions := make([]*cobra.Command, 0)
	children := c.Commands()
	for _, child := range children {
		if child.GroupID == group.NavID {
			childNavs = append(childNavs, child)
		} else {
			childActions = append(childActions, child)
		}
	}

	// output navs as submenus
	if len(childNavs) > 0 {
		var s strings.Builder
		s.WriteString(stylesheet.Header1Style.Render("Submenus"))
		for _, n := range childNavs {
			s.WriteString("\n  " + stylesheet.NavStyle.Render(n.Name()))
		}
		bldr.WriteString(s.String() + "\n")
	}

	// output actions
	if len(childActions) > 0 {
		var s strings.Builder
		s.WriteString("\n" + stylesheet.Header1Style.Render("Actions"))
		for _, a := range childActions {
			s.WriteString("\n  " + stylesheet.ActionStyle.Render(a.Name()))
		}
		bldr.WriteString(s.String())
	}

	fmt.Fprintln(c.OutOrStdout(), strings.TrimSpace(bldr.String()))
	return nil
}
