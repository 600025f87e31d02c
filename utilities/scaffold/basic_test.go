/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package scaffold

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestNewBasicActionPanics(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected a panic")
				}
			}()
			fn()
		})
	}

	noopAct := func(*cobra.Command, *pflag.FlagSet) (string, tea.Cmd) { return "", nil }

	mustPanic("empty use", func() { NewBasicAction("", "short", "long", noopAct, BasicOptions{}) })
	mustPanic("empty short", func() { NewBasicAction("use", "", "long", noopAct, BasicOptions{}) })
	mustPanic("nil act", func() { NewBasicAction("use", "short", "long", nil, BasicOptions{}) })
}

func TestBasicActionCobraMode(t *testing.T) {
	pair := NewBasicAction("greet", "says hello", "says hello, longer",
		func(*cobra.Command, *pflag.FlagSet) (string, tea.Cmd) {
			return "hello world", nil
		}, BasicOptions{})

	var out strings.Builder
	pair.Action.SetOut(&out)
	pair.Action.SetArgs([]string{})
	if err := pair.Action.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "hello world" {
		t.Fatalf("got %q, want %q", got, "hello world")
	}
}

func TestBasicActionInteractiveMode(t *testing.T) {
	pair := NewBasicAction("count", "counts", "counts, longer",
		func(_ *cobra.Command, fs *pflag.FlagSet) (string, tea.Cmd) {
			n, _ := fs.GetInt("n")
			return fmt.Sprintf("n=%d", n), nil
		}, BasicOptions{AddtlFlagFunc: func() pflag.FlagSet {
			fs := pflag.FlagSet{}
			fs.Int("n", 0, "a number")
			return fs
		}})

	ba, ok := pair.Model.(*basicAction)
	if !ok {
		t.Fatal("expected *basicAction")
	}

	if inv, onStart, err := ba.SetArgs(nil, []string{"--n", "5"}); err != nil || inv != "" {
		t.Fatalf("SetArgs() = %q, %v, %v", inv, onStart, err)
	}
	if ba.Done() {
		t.Fatal("should not be done before Update")
	}
	if cmd := ba.Update(nil); cmd == nil {
		t.Fatal("Update should return a tea.Cmd")
	}
	if !ba.Done() {
		t.Fatal("should be done after Update")
	}
	if err := ba.Reset(); err != nil {
		t.Fatal(err)
	}
	if ba.Done() {
		t.Fatal("should not be done after Reset")
	}
}

func TestBasicActionValidateArgs(t *testing.T) {
	pair := NewBasicAction("check", "checks", "checks, longer",
		func(*cobra.Command, *pflag.FlagSet) (string, tea.Cmd) { return "ok", nil },
		BasicOptions{
			AddtlFlagFunc: func() pflag.FlagSet {
				fs := pflag.FlagSet{}
				fs.Int("n", 0, "must be positive")
				return fs
			},
			ValidateArgs: func(fs *pflag.FlagSet) (string, error) {
				n, _ := fs.GetInt("n")
				if n <= 0 {
					return "--n must be positive", nil
				}
				return "", nil
			},
		})

	ba := pair.Model.(*basicAction)
	inv, _, err := ba.SetArgs(nil, []string{"--n", "-1"})
	if err != nil {
		t.Fatal(err)
	}
	if inv == "" {
		t.Fatal("expected invalid due to failed validation")
	}
}
