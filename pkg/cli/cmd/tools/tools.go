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

package tools

import (
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
  * List the curated tool links
  landsraad tools

  * Add and remove links (admin only)
  landsraad tools add "Dune Awakening Map" "https://duneawakening.th.gl/"
  landsraad tools rm 8f41`

var notesFlag string

// NewCmd returns a new tools command
func NewCmd(ctx context.LandsraadCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tools",
		Short:   "Show the curated companion tool links",
		Example: example,
		RunE:    newListRun(ctx),
	}

	addCmd := &cobra.Command{
		Use:   "add <name> <url>",
		Short: "Add a tool link (admin only)",
		RunE:  newAddRun(ctx),
	}
	addCmd.Flags().StringVar(&notesFlag, "notes", "", "a short note shown next to the link")
	cmd.AddCommand(addCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a tool link (admin only)",
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

		output.Tools(o.SharedContent().Tools)
		output.Advisories(o.Advisories())

		return nil
	}
}

func newAddRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("Incorrect number of arguments")
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		added := false
		err = o.UpdateSharedContent(func(c *state.SharedContent) {
			added = c.AddTool(args[0], args[1], notesFlag)
		})
		if errors.Is(err, sync.ErrNotAdmin) {
			log.Error("only the admin can edit the tool list\n")
			return nil
		} else if err != nil {
			return errors.Wrap(err, "adding tool")
		}
		if !added {
			log.Error("the name and the url must not be empty\n")
			return nil
		}

		log.Success("added\n")
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
		err = o.UpdateSharedContent(func(c *state.SharedContent) {
			removed = c.RemoveTool(args[0])
		})
		if errors.Is(err, sync.ErrNotAdmin) {
			log.Error("only the admin can edit the tool list\n")
			return nil
		} else if err != nil {
			return errors.Wrap(err, "removing tool")
		}
		if !removed {
			log.Errorf("tool %s not found\n", args[0])
			return nil
		}

		log.Success("removed\n")
		output.Advisories(o.Advisories())

		return nil
	}
}
