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

package material

import (
	"strconv"

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
  * List materials
  landsraad material

  * Add 200 titanium ore to the list
  landsraad material add "Titanium Ore" 200

  * Toggle and remove by id
  landsraad material done 8f41
  landsraad material rm 8f41`

// NewCmd returns a new material command
func NewCmd(ctx context.LandsraadCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "material",
		Aliases: []string{"m", "mat"},
		Short:   "Manage the material shopping list",
		Example: example,
		RunE:    newListRun(ctx),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <amount>",
		Short: "Add a material",
		RunE:  newAddRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a material",
		RunE:  newToggleRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a material",
		RunE:  newRemoveRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "edit <id> <name> <amount>",
		Short: "Edit a material",
		RunE:  newEditRun(ctx),
	})

	return cmd
}

func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrap(err, "parsing amount")
	}

	return amount, nil
}

func newListRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		output.Materials(o.State().Materials)
		output.Advisories(o.Advisories())

		return nil
	}
}

func newAddRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("Incorrect number of arguments")
		}

		amount, err := parseAmount(args[1])
		if err != nil {
			return err
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		added := false
		err = o.Update(func(st *state.AppState) {
			added = st.AddMaterial(args[0], amount)
		})
		if err != nil {
			return errors.Wrap(err, "adding material")
		}
		if !added {
			log.Error("invalid material. the name must not be empty and the amount must be a positive number\n")
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

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		found := false
		err = o.Update(func(st *state.AppState) {
			found = st.ToggleMaterial(args[0])
		})
		if err != nil {
			return errors.Wrap(err, "toggling material")
		}
		if !found {
			log.Errorf("material %s not found\n", args[0])
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

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		found := false
		err = o.Update(func(st *state.AppState) {
			found = st.RemoveMaterial(args[0])
		})
		if err != nil {
			return errors.Wrap(err, "removing material")
		}
		if !found {
			log.Errorf("material %s not found\n", args[0])
			return nil
		}

		log.Success("removed\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newEditRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			return errors.New("Incorrect number of arguments")
		}

		amount, err := parseAmount(args[2])
		if err != nil {
			return err
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		edited := false
		err = o.Update(func(st *state.AppState) {
			edited = st.EditMaterial(args[0], args[1], amount)
		})
		if err != nil {
			return errors.Wrap(err, "editing material")
		}
		if !edited {
			log.Errorf("could not edit material %s. check the id, the name and the amount\n", args[0])
			return nil
		}

		log.Success("edited\n")
		output.Advisories(o.Advisories())

		return nil
	}
}
