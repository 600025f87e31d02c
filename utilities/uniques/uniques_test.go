/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

package uniques

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func TestAttachPersistentFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "root"}
	AttachPersistentFlags(cmd)

	for _, name := range []string{"no-interactive", "no-color", "server", "profile", "passfile", "log", "loglevel"} {
		if cmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag --%v to be registered", name)
		}
	}
}

func TestFetchWindowSize(t *testing.T) {
	// stdin is not a terminal under `go test`, so term.GetSize errors and we
	// get the zero-value dimensions back; this only asserts the shape of
	// the returned message, not real dimensions.
	msg := FetchWindowSize()
	if _, ok := msg.(tea.WindowSizeMsg); !ok {
		t.Fatalf("expected a tea.WindowSizeMsg, got %T", msg)
	}
}
