/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package scaffold

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

type widget struct {
	Name  string
	Count int
}

func widgets(*pflag.FlagSet) ([]widget, error) {
	return []widget{{Name: "gear", Count: 3}, {Name: "sprocket", Count: 7}}, nil
}

func TestNewListActionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a non-struct dataStruct")
		}
	}()
	NewListAction[int]("short", "long", 0, func(*pflag.FlagSet) ([]int, error) { return nil, nil }, ListOptions{})
}

func TestListActionCobraModeTable(t *testing.T) {
	pair := NewListAction("lists widgets", "lists widgets, longer", widget{}, widgets, ListOptions{})

	var out strings.Builder
	pair.Action.SetOut(&out)
	pair.Action.SetArgs([]string{})
	if err := pair.Action.Execute(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "gear") || !strings.Contains(got, "sprocket") {
		t.Fatalf("expected table output to contain both widgets, got %q", got)
	}
}

func TestListActionCobraModeCSV(t *testing.T) {
	pair := NewListAction("lists widgets", "lists widgets, longer", widget{}, widgets, ListOptions{})

	var out strings.Builder
	pair.Action.SetOut(&out)
	pair.Action.SetArgs([]string{"--csv"})
	if err := pair.Action.Execute(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	if !strings.Contains(got, "gear") || !strings.Contains(got, "Name") {
		t.Fatalf("expected CSV output with header and data, got %q", got)
	}
}

func TestListActionInteractiveMode(t *testing.T) {
	pair := NewListAction("lists widgets", "lists widgets, longer", widget{}, widgets, ListOptions{})
	la, ok := pair.Model.(*listAction[widget])
	if !ok {
		t.Fatal("expected *listAction[widget]")
	}

	if inv, _, err := la.SetArgs(nil, []string{"--json"}); err != nil || inv != "" {
		t.Fatalf("SetArgs() = %q, %v", inv, err)
	}
	if la.Done() {
		t.Fatal("should not be done before Update")
	}
	if cmd := la.Update(nil); cmd == nil {
		t.Fatal("Update should return a tea.Cmd")
	}
	if !la.Done() {
		t.Fatal("should be done after Update")
	}
	if err := la.Reset(); err != nil {
		t.Fatal(err)
	}
}

func TestListActionShowColumns(t *testing.T) {
	pair := NewListAction("lists widgets", "lists widgets, longer", widget{}, widgets, ListOptions{})

	var out strings.Builder
	pair.Action.SetOut(&out)
	pair.Action.SetArgs([]string{"--show-columns"})
	if err := pair.Action.Execute(); err != nil {
		t.Fatal(err)
	}
	got := strings.TrimSpace(out.String())
	if got != "Name Count" {
		t.Fatalf("got %q, want %q", got, "Name Count")
	}
}
