/* Copyright 2025 Landsraad Companion Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package todo implements commands for the shared session to-dos and
// the personal general to-dos.
package todo

import (
	"strings"

	"github.com/landsraad/landsraad/pkg/cli/context"
	"github.com/landsraad/landsraad/pkg/cli/infra"
	"github.com/landsraad/landsraad/pkg/cli/log"
	"github.com/landsraad/landsraad/pkg/cli/output"
	"github.com/landsraad/landsraad/pkg/cli/state"
	"github.com/landsraad/landsraad/pkg/cli/sync"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * List the shared to-dos
  landsraad todo

  * Add a shared to-do
  landsraad todo add "deliver 500 plastanium"

  * Add a personal to-do instead
  landsraad todo add --personal "respec skill tree"

  * Toggle and remove by id
  landsraad todo done 8f41
  landsraad todo rm 8f41`

var personalFlag bool

// NewCmd returns a new todo command
func NewCmd(ctx context.LandsraadCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "todo",
		Aliases: []string{"t"},
		Short:   "Manage shared and personal to-dos",
		Example: example,
		RunE:    newListRun(ctx),
	}

	cmd.PersistentFlags().BoolVar(&personalFlag, "personal", false, "operate on your personal to-dos instead of the shared list")

	cmd.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a to-do",
		RunE:  newAddRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a to-do",
		RunE:  newToggleRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a to-do",
		RunE:  newRemoveRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "edit <id> <text>",
		Short: "Edit a to-do",
		RunE:  newEditRun(ctx),
	})

	return cmd
}

func newListRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		if personalFlag {
			output.Todos("personal to-dos", o.State().GeneralTodos)
		} else {
			output.Todos("shared to-dos", o.SharedTodos())
		}
		output.Advisories(o.Advisories())

		return nil
	}
}

func newAddRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("Missing to-do text")
		}
		text := strings.Join(args, " ")

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		added := false
		if personalFlag {
			err = o.Update(func(st *state.AppState) {
				added = st.AddGeneralTodo(text)
			})
		} else {
			err = o.UpdateSharedTodos(func(todos []state.Todo) []state.Todo {
				trimmed := strings.TrimSpace(text)
				if trimmed == "" {
					return todos
				}
				added = true
				return append([]state.Todo{{ID: state.NewID(), Text: trimmed}}, todos...)
			})
		}
		if err != nil {
			return errors.Wrap(err, "adding to-do")
		}
		if !added {
			log.Error("empty to-do text\n")
			return nil
		}

		log.Success("added\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newToggleRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("Incorrect number of arguments")
		}
		id := args[0]

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		found := false
		if personalFlag {
			err = o.Update(func(st *state.AppState) {
				found = st.ToggleGeneralTodo(id)
			})
		} else {
			err = o.UpdateSharedTodos(func(todos []state.Todo) []state.Todo {
				for i := range todos {
					if todos[i].ID == id {
						todos[i].Done = !todos[i].Done
						found = true
					}
				}
				return todos
			})
		}
		if err != nil {
			return errors.Wrap(err, "toggling to-do")
		}
		if !found {
			log.Errorf("to-do %s not found\n", id)
			return nil
		}

		log.Success("toggled\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newRemoveRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("Incorrect number of arguments")
		}
		id := args[0]

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		found := false
		if personalFlag {
			err = o.Update(func(st *state.AppState) {
				found = st.RemoveGeneralTodo(id)
			})
		} else {
			err = o.UpdateSharedTodos(func(todos []state.Todo) []state.Todo {
				out := todos[:0]
				for _, t := range todos {
					if t.ID == id {
						found = true
						continue
					}
					out = append(out, t)
				}
				return out
			})
		}
		if err != nil {
			return errors.Wrap(err, "removing to-do")
		}
		if !found {
			log.Errorf("to-do %s not found\n", id)
			return nil
		}

		log.Success("removed\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newEditRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return errors.New("Incorrect number of arguments")
		}
		id := args[0]
		text := strings.Join(args[1:], " ")

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		found := false
		if personalFlag {
			err = o.Update(func(st *state.AppState) {
				found = st.EditGeneralTodo(id, text)
			})
		} else {
			err = o.UpdateSharedTodos(func(todos []state.Todo) []state.Todo {
				trimmed := strings.TrimSpace(text)
				if trimmed == "" {
					return todos
				}
				for i := range todos {
					if todos[i].ID == id {
						todos[i].Text = trimmed
						found = true
					}
				}
				return todos
			})
		}
		if err != nil {
			return errors.Wrap(err, "editing to-do")
		}
		if !found {
			log.Errorf("to-do %s not found\n", id)
			return nil
		}

		log.Success("edited\n")
		output.Advisories(o.Advisories())

		return nil
	}
}
