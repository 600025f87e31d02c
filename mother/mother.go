/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

/*
Package mother drives the interactive side of smudgy's configuration shell:
the nav/action command tree rooted at smudgy's servers/profiles/aliases/
triggers/hotkeys verbs (see treeutils.GenerateNav), not the live MUD
terminal itself (that is termbuf/vt's domain, reached through the
"connect"/"play" action this shell hands off to). Mother is the top-level
implementation of tea.Model and drives tree navigation and handoff to
child Actions the same way the command's own --help text would, but
interactively and with history/tab-suggestion support.
*/
package mother

import (
	"fmt"
	"strings"

	"smudgy/action"
	"smudgy/clilog"
	"smudgy/stylesheet"
	"smudgy/utilities/killer"
	"smudgy/utilities/uniques"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// builtins are the names Mother recognizes directly, rather than looking
// them up in the command tree.
var builtins = []string{"help", "quit", "exit"}

// Mother, a struct satisfying the tea.Model interface and containing
// information required for cobra.Command tree traversal.
type Mother struct {
	mode mode

	root *cobra.Command
	pwd  *cobra.Command

	ti textinput.Model

	active struct {
		command *cobra.Command
		model   action.Model
	}

	history *history
}

// Spawn spins up a new instance of Mother in a fresh tea program, runs the
// program, and returns on Mother's exit. The caller is expected to exit on
// Spawn's return.
func Spawn(root, cur *cobra.Command, trailingTokens []string) error {
	interactive := tea.NewProgram(newMother(root, cur))
	_, err := interactive.Run()
	return err
}

func newMother(root, cur *cobra.Command) Mother {
	if cur == nil {
		cur = root
	}

	ti := textinput.New()
	ti.Placeholder = "help"
	ti.Prompt = stylesheet.TIPromptPrefix
	ti.Focus()
	ti.Width = stylesheet.TIWidth

	return Mother{
		root:    root,
		pwd:     cur,
		mode:    prompting,
		ti:      ti,
		history: newHistory(),
	}
}

var _ tea.Model = Mother{}

func (m Mother) Init() tea.Cmd {
	return uniques.FetchWindowSize
}

func (m Mother) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch killer.CheckKillKeys(msg) {
	case killer.Global:
		if m.mode == handoff {
			m.unsetAction()
			return m, tea.Batch(tea.ExitAltScreen, textinput.Blink)
		}
		return m, tea.Quit
	case killer.Child:
		if m.mode == handoff {
			m.unsetAction()
		}
		return m, tea.Batch(tea.ExitAltScreen, textinput.Blink)
	}

	if m.mode == handoff {
		if m.active.model == nil {
			m.mode = prompting
		} else if !m.active.model.Done() {
			return m, m.active.model.Update(msg)
		} else {
			clilog.Writer.Infof("%v done. Reasserting...", m.active.command.Name())
			m.unsetAction()
			return m, textinput.Blink
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ti.Width = msg.Width - lipgloss.Width(m.pwd.CommandPath()) - 3
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyUp:
			m.ti.SetValue(m.history.getOlderRecord())
			m.ti.CursorEnd()
			return m, nil
		case tea.KeyDown:
			m.ti.SetValue(m.history.getNewerRecord())
			m.ti.CursorEnd()
			return m, nil
		case tea.KeyEnter:
			m.history.unsetFetch()
			return m, m.processInput()
		}
	}

	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m Mother) View() string {
	if m.active.model != nil {
		return m.active.model.View()
	}
	return fmt.Sprintf("%s%v", stylesheet.PromptStyle.Render(m.pwd.CommandPath()), m.ti.View())
}

// processInput consumes and clears the prompt, walks it against the
// command tree, and either moves pwd, hands off to an action, or quits.
func (m *Mother) processInput() tea.Cmd {
	input := m.ti.Value()
	m.history.insert(input)
	printed := tea.Println(stylesheet.PromptStyle.Render(m.pwd.CommandPath()) + input)
	m.ti.Reset()

	trimmed := strings.TrimSpace(input)
	if trimmed == "quit" || trimmed == "exit" {
		return tea.Sequence(printed, tea.Quit)
	}

	wr, err := uniques.Walk(m.pwd, input, builtins)
	if err != nil {
		return tea.Sequence(printed, tea.Println(stylesheet.Cur.ErrorText.Render(err.Error())))
	}

	if wr.HelpMode || wr.Builtin == "help" {
		target := wr.EndCmd
		if target == nil {
			target = m.pwd
		}
		return tea.Sequence(printed, tea.Println(strings.TrimSpace(target.UsageString())))
	}

	if wr.EndCmd == nil {
		return printed
	}

	if action.Is(wr.EndCmd) {
		return tea.Sequence(printed, m.handoff(wr.EndCmd, wr.RemainingTokens))
	}

	m.pwd = wr.EndCmd
	return printed
}

// handoff prepares the named action for control, parsing its remaining
// tokens into flags and bare args via the action's own flag set.
func (m *Mother) handoff(cmd *cobra.Command, remaining []string) tea.Cmd {
	mdl, err := action.GetModel(cmd)
	if err != nil || mdl == nil {
		return tea.Println(stylesheet.Cur.ErrorText.Render("no actor associated to '" + cmd.Name() + "'"))
	}

	if err := cmd.Flags().Parse(remaining); err != nil {
		return tea.Println(stylesheet.Cur.ErrorText.Render(err.Error()))
	}

	invalid, onStart, err := mdl.SetArgs(cmd.Flags(), cmd.Flags().Args())
	if err != nil {
		return tea.Println(stylesheet.Cur.ErrorText.Render(err.Error()))
	}
	if invalid != "" {
		return tea.Println(stylesheet.Cur.ErrorText.Render("invalid arguments: " + invalid))
	}

	m.mode = handoff
	m.active.command = cmd
	m.active.model = mdl
	return onStart
}

func (m *Mother) unsetAction() {
	if m.active.model != nil {
		m.active.model.Reset()
	}
	m.mode = prompting
	m.active.model = nil
	m.active.command = nil
}

// CommandPath returns the present working directory, styled as a prompt.
func CommandPath(m *Mother) string {
	return stylesheet.PromptStyle.Render(m.pwd.CommandPath())
}
