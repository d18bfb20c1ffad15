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

package farm

import (
	"strings"

	"github.com/landsraad/landsraad/pkg/cli/context"
	"github.com/landsraad/landsraad/pkg/cli/infra"
	"github.com/landsraad/landsraad/pkg/cli/log"
	"github.com/landsraad/landsraad/pkg/cli/output"
	"github.com/landsraad/landsraad/pkg/cli/state"
	"github.com/landsraad/landsraad/pkg/cli/sync"
	"github.com/landsraad/landsraad/pkg/cli/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * List the farm list grouped by source
  landsraad farm

  * Add an item, optionally tagged with a source
  landsraad farm add "Spice Sand" --source "Deep Desert"

  * Manage the source list
  landsraad farm source add "Sietch Vendor"
  landsraad farm source rm "Sietch Vendor"`

var sourceFlag string

// NewCmd returns a new farm command
func NewCmd(ctx context.LandsraadCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "farm",
		Aliases: []string{"f"},
		Short:   "Manage the farm list and its sources",
		Example: example,
		RunE:    newListRun(ctx),
	}

	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a farm item",
		RunE:  newAddRun(ctx),
	}
	addCmd.Flags().StringVar(&sourceFlag, "source", "", "the source to farm the item from")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a farm item",
		RunE:  newToggleRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a farm item",
		RunE:  newRemoveRun(ctx),
	})

	sourceCmd := &cobra.Command{
		Use:   "source",
		Short: "Manage the farm source list",
		RunE:  newSourceListRun(ctx),
	}
	sourceCmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Add a farm source",
		RunE:  newSourceAddRun(ctx),
	})
	sourceCmd.AddCommand(&cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a farm source and untag its items",
		RunE:  newSourceRemoveRun(ctx),
	})
	cmd.AddCommand(sourceCmd)

	return cmd
}

func newListRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		st := o.State()
		output.FarmItems(st.FarmItems, st.FarmSources)
		output.Advisories(o.Advisories())

		return nil
	}
}

func newAddRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("Missing item name")
		}
		name := strings.Join(args, " ")

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		added := false
		err = o.Update(func(st *state.AppState) {
			added = st.AddFarmItem(name, sourceFlag)
		})
		if err != nil {
			return errors.Wrap(err, "adding farm item")
		}
		if !added {
			log.Error("empty item name\n")
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
			found = st.ToggleFarmItem(args[0])
		})
		if err != nil {
			return errors.Wrap(err, "toggling farm item")
		}
		if !found {
			log.Errorf("farm item %s not found\n", args[0])
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
			found = st.RemoveFarmItem(args[0])
		})
		if err != nil {
			return errors.Wrap(err, "removing farm item")
		}
		if !found {
			log.Errorf("farm item %s not found\n", args[0])
			return nil
		}

		log.Success("removed\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newSourceListRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		output.FarmSources(o.State().FarmSources)
		output.Advisories(o.Advisories())

		return nil
	}
}

func newSourceAddRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("Missing source name")
		}
		name := strings.Join(args, " ")

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		added := false
		err = o.Update(func(st *state.AppState) {
			added = st.AddFarmSource(name)
		})
		if err != nil {
			return errors.Wrap(err, "adding farm source")
		}
		if !added {
			log.Error("the source is empty or already exists\n")
			return nil
		}

		log.Success("added\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newSourceRemoveRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("Missing source name")
		}
		name := strings.Join(args, " ")

		ok, err := ui.Confirm("removing a source untags every item farmed from it. proceed?", false)
		if err != nil {
			return errors.Wrap(err, "getting confirmation")
		}
		if !ok {
			log.Infof("aborted\n")
			return nil
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		err = o.Update(func(st *state.AppState) {
			st.RemoveFarmSource(name)
		})
		if err != nil {
			return errors.Wrap(err, "removing farm source")
		}

		log.Success("removed\n")
		output.Advisories(o.Advisories())

		return nil
	}
}
