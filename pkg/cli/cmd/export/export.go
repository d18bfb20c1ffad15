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

package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/landsraad/landsraad/pkg/cli/context"
	"github.com/landsraad/landsraad/pkg/cli/infra"
	"github.com/landsraad/landsraad/pkg/cli/localstore"
	"github.com/landsraad/landsraad/pkg/cli/log"
	"github.com/landsraad/landsraad/pkg/cli/state"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * Print the backup to stdout
  landsraad export

  * Write it to a file
  landsraad export -o landsraad-backup.json`

var outputFlag string

// NewCmd returns a new export command
func NewCmd(ctx context.LandsraadCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Export the snapshot as a backup file",
		Example: example,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&outputFlag, "output", "o", "", "the file to write the backup to (defaults to stdout)")

	return cmd
}

func newRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		store := localstore.New(ctx.DB)
		st, _, err := store.LoadSnapshot()
		if err != nil {
			return errors.Wrap(err, "loading snapshot")
		}

		backup := state.NewBackup(st, ctx.Clock.Now())
		b, err := json.MarshalIndent(backup, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding backup")
		}

		if outputFlag == "" {
			fmt.Printf("%s\n", b)
			return nil
		}

		if err := os.WriteFile(outputFlag, b, 0644); err != nil {
			return errors.Wrap(err, "writing backup file")
		}
		log.Successf("exported to %s\n", outputFlag)

		return nil
	}
}
