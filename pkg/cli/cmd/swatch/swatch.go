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

package swatch

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
  * List the swatch checklist
  landsraad swatch

  * Add a custom entry
  landsraad swatch add "Moritani Placeable Swatch (event)"

  * Toggle and remove by id
  landsraad swatch done 8f41
  landsraad swatch rm 8f41`

// NewCmd returns a new swatch command
func NewCmd(ctx context.LandsraadCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "swatch",
		Short:   "Track placeable swatch rewards",
		Example: example,
		RunE:    newListRun(ctx),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <text>",
		Short: "Add a custom swatch entry",
		RunE:  newAddRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a swatch",
		RunE:  newToggleRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a custom swatch entry",
		RunE:  newRemoveRun(ctx),
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

		output.Swatches(o.State().Swatches)
		output.Advisories(o.Advisories())

		return nil
	}
}

func newAddRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("Missing swatch text")
		}
		text := strings.Join(args, " ")

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		added := false
		err = o.Update(func(st *state.AppState) {
			added = st.AddSwatch(text)
		})
		if err != nil {
			return errors.Wrap(err, "adding swatch")
		}
		if !added {
			log.Error("empty swatch text\n")
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
			found = st.ToggleSwatch(args[0])
		})
		if err != nil {
			return errors.Wrap(err, "toggling swatch")
		}
		if !found {
			log.Errorf("swatch %s not found\n", args[0])
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

		removed := false
		err = o.Update(func(st *state.AppState) {
			removed = st.RemoveSwatch(args[0])
		})
		if err != nil {
			return errors.Wrap(err, "removing swatch")
		}
		if !removed {
			log.Errorf("swatch %s not found, or it is one of the house swatches which cannot be removed\n", args[0])
			return nil
		}

		log.Success("removed\n")
		output.Advisories(o.Advisories())

		return nil
	}
}
