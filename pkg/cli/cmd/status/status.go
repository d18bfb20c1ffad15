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

package status

import (
	"github.com/landsraad/landsraad/pkg/cli/context"
	"github.com/landsraad/landsraad/pkg/cli/infra"
	"github.com/landsraad/landsraad/pkg/cli/localstore"
	"github.com/landsraad/landsraad/pkg/cli/log"
	"github.com/landsraad/landsraad/pkg/cli/output"
	"github.com/landsraad/landsraad/pkg/cli/reset"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * Show the weekly reset countdown
  landsraad status

  * Silence the reset warning for the current week
  landsraad status --dismiss`

var dismissFlag bool

// NewCmd returns a new status command
func NewCmd(ctx context.LandsraadCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Show the weekly landsraad reset countdown",
		Example: example,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVar(&dismissFlag, "dismiss", false, "silence the reset warning for the current week")

	return cmd
}

func newRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		loc, err := reset.Location()
		if err != nil {
			return errors.Wrap(err, "loading the reset timezone")
		}

		now := ctx.Clock.Now()
		weekKey := reset.WeekKey(now, loc)
		store := localstore.New(ctx.DB)

		if dismissFlag {
			if err := store.SetResetWarningDismissed(ctx.UserID, weekKey, true); err != nil {
				return errors.Wrap(err, "dismissing the reset warning")
			}
			log.Success("reset warning dismissed for this week\n")
			return nil
		}

		dismissed := store.ResetWarningDismissed(ctx.UserID, weekKey)
		output.ResetStatus(now, loc, dismissed)
		log.Infof("week key: %s\n", weekKey)

		if ctx.SessionKey == "" {
			log.Infof("not logged in. changes stay on this machine until you log in\n")
		}

		return nil
	}
}
