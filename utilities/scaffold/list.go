/*************************************************************************
 * Copyright 2024 Gravwell, Inc. All rights reserved.
 * Contact: <legal@gravwell.io>
 *
 * This software may be modified and distributed under the terms of the
 * BSD 2-clause license. See the LICENSE file for details.
 **************************************************************************/

/*
List actions fetch and print data, typically tabular (every server's
profiles, every alias/trigger/hotkey on a server). They come with
--csv/--json/--table/--columns/--show-columns/--output/--append for free.
*/
package scaffold

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"smudgy/action"
	"smudgy/clilog"
	"smudgy/stylesheet"
	ft "smudgy/stylesheet/flagtext"
	"smudgy/utilities/treeutils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gravwell/gravwell/v3/utils/weave"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type outputFormat uint

const (
	tbl outputFormat = iota
	csvFmt
	jsonFmt
)

const outFilePerm os.FileMode = 0644

// ListDataFunction retrieves the rows to list.
type ListDataFunction[dataStruct_t any] func(*pflag.FlagSet) ([]dataStruct_t, error)

// ListOptions modifies a list action's generated command.
type ListOptions struct {
	Use            string
	Aliases        []string
	DefaultColumns []string
	AddtlFlagFunc  func() pflag.FlagSet
	CmdMods        func(*cobra.Command)
}

// NewListAction builds a cobra.Command/action.Model pair that lists rows
// of dataStruct_t, fetched by dataFn, as a table, CSV, or JSON.
func NewListAction[dataStruct_t any](short, long string, dataStruct dataStruct_t,
	dataFn ListDataFunction[dataStruct_t], options ListOptions) action.Pair {
	if reflect.TypeOf(dataStruct).Kind() != reflect.Struct {
		panic("dataStruct must be a struct")
	} else if dataFn == nil {
		panic("data function cannot be nil")
	}

	use := "list"
	if options.Use != "" {
		use = options.Use
	}

	availCols, err := weave.StructFields(dataStruct, true)
	if err != nil {
		panic(fmt.Sprintf("failed to cache available columns: %v", err))
	}
	if options.DefaultColumns == nil {
		options.DefaultColumns = availCols
	}

	cmd := treeutils.GenerateAction(use, short, long, options.Aliases,
		generateListRun(dataFn, options, availCols))
	cmd.Flags().AddFlagSet(buildListFlagSet(options.AddtlFlagFunc))
	cmd.Flags().SortFlags = false
	cmd.MarkFlagsMutuallyExclusive(ft.Name.CSV, ft.Name.JSON, ft.Name.Table)

	if options.CmdMods != nil {
		options.CmdMods(cmd)
	}

	la := &listAction[dataStruct_t]{
		cmd:            cmd,
		columns:        options.DefaultColumns,
		defaultColumns: options.DefaultColumns,
		availColumns:   availCols,
		dataFn:         dataFn,
		addtlFlagFunc:  options.AddtlFlagFunc,
	}
	return action.Pair{Action: cmd, Model: la}
}

func buildListFlagSet(addtl func() pflag.FlagSet) *pflag.FlagSet {
	fs := pflag.FlagSet{}
	fs.Bool(ft.Name.CSV, false, ft.Usage.CSV)
	fs.Bool(ft.Name.JSON, false, ft.Usage.JSON)
	fs.Bool(ft.Name.Table, true, ft.Usage.Table)
	fs.StringSlice("columns", []string{}, "comma-separated list of columns to include.\n"+
		"Use --show-columns to see the full list of columns.")
	fs.Bool("show-columns", false, "display the list of column names and exit.")
	fs.StringP(ft.Name.Output, "o", "", ft.Usage.Output)
	fs.Bool(ft.Name.Append, false, ft.Usage.Append)
	fs.Bool(ft.Name.ListAll, false, "displays all columns, ignoring the default column set.\nOverrides --columns.")
	if addtl != nil {
		a := addtl()
		fs.AddFlagSet(&a)
	}
	return &fs
}

func determineListFormat(fs *pflag.FlagSet) outputFormat {
	if fm, err := fs.GetBool(ft.Name.CSV); err == nil && fm {
		return csvFmt
	}
	if fm, err := fs.GetBool(ft.Name.JSON); err == nil && fm {
		return jsonFmt
	}
	return tbl
}

func initListOutFile(fs *pflag.FlagSet) (*os.File, error) {
	outPath, err := fs.GetString(ft.Name.Output)
	if err != nil {
		return nil, err
	} else if strings.TrimSpace(outPath) == "" {
		return nil, nil
	}
	flags := os.O_CREATE | os.O_WRONLY
	if append, err := fs.GetBool(ft.Name.Append); err != nil {
		return nil, err
	} else if append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	return os.OpenFile(outPath, flags, outFilePerm)
}

func listOutput[T any](fs *pflag.FlagSet, format outputFormat, columns []string, dataFn ListDataFunction[T]) (string, error) {
	data, err := dataFn(fs)
	if err != nil {
		return "", err
	} else if len(data) < 1 {
		return "", nil
	}

	switch format {
	case csvFmt:
		return weave.ToCSV(data, columns), nil
	case jsonFmt:
		return weave.ToJSON(data, columns)
	default:
		return weave.ToTable(data, columns), nil
	}
}

// generateListRun builds the Cobra-mode Run func.
func generateListRun[T any](dataFn ListDataFunction[T], options ListOptions, availCols []string) func(*cobra.Command, []string) {
	return func(c *cobra.Command, _ []string) {
		if sc, _ := c.Flags().GetBool("show-columns"); sc {
			fmt.Fprintln(c.OutOrStdout(), strings.Join(availCols, " "))
			return
		}

		outFile, err := initListOutFile(c.Flags())
		if err != nil {
			clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error())
			return
		}
		if outFile != nil {
			defer outFile.Close()
		}

		columns, _ := c.Flags().GetStringSlice("columns")
		if len(columns) == 0 {
			columns = options.DefaultColumns
		}
		if all, _ := c.Flags().GetBool(ft.Name.ListAll); all {
			columns = availCols
		}

		s, err := listOutput(c.Flags(), determineListFormat(c.Flags()), columns, dataFn)
		if err != nil {
			clilog.Tee(clilog.ERROR, c.ErrOrStderr(), err.Error())
			return
		}
		if s == "" {
			if outFile == nil {
				fmt.Fprintln(c.OutOrStdout(), "no data found")
			}
			return
		}
		if outFile != nil {
			fmt.Fprintln(outFile, s)
		} else {
			fmt.Fprintln(c.OutOrStdout(), s)
		}
	}
}

//#region interactive mode (model) implementation

type listAction[T any] struct {
	done        bool
	columns     []string
	showColumns bool
	fs          *pflag.FlagSet
	outFile     *os.File

	cmd            *cobra.Command
	defaultColumns []string
	availColumns   []string
	dataFn         ListDataFunction[T]
	addtlFlagFunc  func() pflag.FlagSet
}

var _ action.Model = &listAction[struct{}]{}

func (la *listAction[T]) Update(msg tea.Msg) tea.Cmd {
	if la.done {
		return nil
	}
	la.done = true

	if la.showColumns {
		return tea.Println(strings.Join(la.availColumns, " "))
	}

	s, err := listOutput(la.fs, determineListFormat(la.fs), la.columns, la.dataFn)
	if err != nil {
		clilog.Writer.Errorf("list action failed: %v", err)
		return tea.Println(stylesheet.Cur.ErrorText.Render(err.Error()))
	}
	if s == "" {
		if la.outFile != nil {
			return nil
		}
		return tea.Println("no data found")
	}
	if la.outFile != nil {
		fmt.Fprint(la.outFile, s)
		return tea.Println("wrote results to " + la.outFile.Name())
	}
	return tea.Println(s)
}

func (*listAction[T]) View() string { return "" }

func (la *listAction[T]) Done() bool { return la.done }

func (la *listAction[T]) Reset() error {
	la.done = false
	la.columns = la.defaultColumns
	la.showColumns = false
	la.fs = buildListFlagSet(la.addtlFlagFunc)
	if la.outFile != nil {
		la.outFile.Close()
	}
	la.outFile = nil
	return nil
}

func (la *listAction[T]) SetArgs(inherited *pflag.FlagSet, tokens []string) (invalid string, onStart tea.Cmd, err error) {
	la.fs = buildListFlagSet(la.addtlFlagFunc)
	if err := la.fs.Parse(tokens); err != nil {
		return err.Error(), nil, nil
	}

	la.columns = la.defaultColumns
	if la.showColumns, err = la.fs.GetBool("show-columns"); err != nil {
		return "", nil, err
	}
	if !la.showColumns {
		if cols, err := la.fs.GetStringSlice("columns"); err != nil {
			return "", nil, err
		} else if len(cols) > 0 {
			la.columns = cols
		}
	}
	if all, err := la.fs.GetBool(ft.Name.ListAll); err != nil {
		return "", nil, err
	} else if all {
		la.columns = la.availColumns
	}

	if f, err := initListOutFile(la.fs); err != nil {
		return "", nil, err
	} else {
		la.outFile = f
	}

	return "", nil, nil
}

//#endregion interactive mode (model) implementation
