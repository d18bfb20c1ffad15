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

// Package imp implements the import command. The package is named imp
// because import is a reserved word.
package imp

import (
	"encoding/json"
	"os"

	"github.com/fatih/color"
	"github.com/landsraad/landsraad/pkg/cli/context"
	"github.com/landsraad/landsraad/pkg/cli/infra"
	"github.com/landsraad/landsraad/pkg/cli/log"
	"github.com/landsraad/landsraad/pkg/cli/output"
	"github.com/landsraad/landsraad/pkg/cli/state"
	"github.com/landsraad/landsraad/pkg/cli/sync"
	"github.com/landsraad/landsraad/pkg/cli/ui"
	"github.com/landsraad/landsraad/pkg/cli/utils/diff"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * Import a backup file
  landsraad import landsraad-backup.json

  * Preview the changes without applying them
  landsraad import --dry-run landsraad-backup.json`

var dryRunFlag bool

// NewCmd returns a new import command
func NewCmd(ctx context.LandsraadCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "import <file>",
		Short:   "Import a backup file into the snapshot",
		Example: example,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVar(&dryRunFlag, "dry-run", false, "show the resulting changes without applying them")

	return cmd
}

func printDiff(before, after string) {
	for _, d := range diff.Do(before, after) {
		switch d.Type {
		case diff.DiffInsert:
			color.New(color.FgGreen).Printf("+%s", d.Text)
		case diff.DiffDelete:
			color.New(color.FgRed).Printf("-%s", d.Text)
		}
	}
}

func newRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("Incorrect number of arguments")
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(err, "reading the backup file")
		}

		doc, err := state.UnwrapBackup(raw)
		if err != nil {
			return errors.Wrap(err, "parsing the backup file")
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		before := o.State()
		after := before
		after.Apply(doc)

		if dryRunFlag {
			beforeJSON, err := json.MarshalIndent(before, "", "  ")
			if err != nil {
				return errors.Wrap(err, "encoding current snapshot")
			}
			afterJSON, err := json.MarshalIndent(after, "", "  ")
			if err != nil {
				return errors.Wrap(err, "encoding resulting snapshot")
			}

			if string(beforeJSON) == string(afterJSON) {
				log.Infof("the import would change nothing\n")
				return nil
			}

			printDiff(string(beforeJSON)+"\n", string(afterJSON)+"\n")
			return nil
		}

		ok, err := ui.Confirm("importing overwrites the fields present in the backup. proceed?", false)
		if err != nil {
			return errors.Wrap(err, "getting confirmation")
		}
		if !ok {
			log.Infof("aborted\n")
			return nil
		}

		err = o.Update(func(st *state.AppState) {
			st.Apply(doc)
		})
		if err != nil {
			return errors.Wrap(err, "applying the backup")
		}

		log.Success("imported\n")
		output.Advisories(o.Advisories())

		return nil
	}
}
