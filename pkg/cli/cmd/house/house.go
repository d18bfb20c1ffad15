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

// Package house implements commands for weekly landsraad house
// progress: delivery counts, pins and goals.
package house

import (
	"strconv"

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
  * List every house, or only the pinned ones
  landsraad house
  landsraad house --tracked

  * Make the pinned-only view stick across invocations
  landsraad house tracked

  * Record your delivery count for a house
  landsraad house current Atreides 3500

  * Clear the count
  landsraad house current Atreides unset

  * Pin a house and add a weekly goal
  landsraad house pin Ecaz
  landsraad house goal add Ecaz "deliver plastanium" 7000

  * Clear all weekly progress
  landsraad house reset-week`

var trackedFlag bool

// NewCmd returns a new house command
func NewCmd(ctx context.LandsraadCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "house",
		Aliases: []string{"h"},
		Short:   "Track weekly landsraad house progress",
		Example: example,
		RunE:    newListRun(ctx),
	}

	cmd.Flags().BoolVar(&trackedFlag, "tracked", false, "list only pinned houses")

	cmd.AddCommand(&cobra.Command{
		Use:   "current <house> <amount|unset>",
		Short: "Record the delivery count for a house",
		RunE:  newCurrentRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "pin <house>",
		Short: "Toggle a house pin",
		RunE:  newPinRun(ctx),
	})

	goalCmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage weekly goals for a house",
	}
	goalCmd.AddCommand(&cobra.Command{
		Use:   "add <house> <name> <required>",
		Short: "Add a goal",
		RunE:  newGoalAddRun(ctx),
	})
	goalCmd.AddCommand(&cobra.Command{
		Use:   "done <house> <id>",
		Short: "Toggle a goal",
		RunE:  newGoalToggleRun(ctx),
	})
	goalCmd.AddCommand(&cobra.Command{
		Use:   "rm <house> <id>",
		Short: "Remove a goal",
		RunE:  newGoalRemoveRun(ctx),
	})
	cmd.AddCommand(goalCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "tracked",
		Short: "Toggle the persistent pinned-houses-only view",
		RunE:  newTrackedRun(ctx),
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset-week",
		Short: "Clear delivery counts, goals and swatch progress for a new week",
		RunE:  newResetWeekRun(ctx),
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

		st := o.State()
		output.Houses(st.Houses, trackedFlag || st.TrackedOnly)
		output.Advisories(o.Advisories())

		return nil
	}
}

func newCurrentRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("Incorrect number of arguments")
		}

		var p state.Progress
		if args[1] != "unset" && args[1] != "" {
			v, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrap(err, "parsing amount")
			}
			p = state.ProgressOf(v)
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		found := false
		err = o.Update(func(st *state.AppState) {
			found = st.SetHouseCurrent(args[0], p)
		})
		if err != nil {
			return errors.Wrap(err, "setting house progress")
		}
		if !found {
			log.Errorf("house %s not found\n", args[0])
			return nil
		}

		log.Success("recorded\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newPinRun(ctx context.LandsraadCtx) infra.RunEFunc {
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
			found = st.ToggleHousePin(args[0])
		})
		if err != nil {
			return errors.Wrap(err, "toggling pin")
		}
		if !found {
			log.Errorf("house %s not found\n", args[0])
			return nil
		}

		log.Success("toggled\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newGoalAddRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			return errors.New("Incorrect number of arguments")
		}

		required, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return errors.Wrap(err, "parsing required amount")
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		added := false
		err = o.Update(func(st *state.AppState) {
			added = st.AddGoal(args[0], args[1], required)
		})
		if err != nil {
			return errors.Wrap(err, "adding goal")
		}
		if !added {
			log.Error("could not add the goal. check the house name, the goal name and the required amount\n")
			return nil
		}

		log.Success("added\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newGoalToggleRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("Incorrect number of arguments")
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		found := false
		err = o.Update(func(st *state.AppState) {
			found = st.ToggleGoal(args[0], args[1])
		})
		if err != nil {
			return errors.Wrap(err, "toggling goal")
		}
		if !found {
			log.Errorf("goal %s not found for house %s\n", args[1], args[0])
			return nil
		}

		log.Success("toggled\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newGoalRemoveRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("Incorrect number of arguments")
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		found := false
		err = o.Update(func(st *state.AppState) {
			found = st.RemoveGoal(args[0], args[1])
		})
		if err != nil {
			return errors.Wrap(err, "removing goal")
		}
		if !found {
			log.Errorf("goal %s not found for house %s\n", args[1], args[0])
			return nil
		}

		log.Success("removed\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newTrackedRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		enabled := false
		err = o.Update(func(st *state.AppState) {
			enabled = st.ToggleTrackedOnly()
		})
		if err != nil {
			return errors.Wrap(err, "toggling tracked-only mode")
		}

		if enabled {
			log.Success("tracked-only view on\n")
		} else {
			log.Success("tracked-only view off\n")
		}
		output.Advisories(o.Advisories())

		return nil
	}
}

func newResetWeekRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		ok, err := ui.Confirm("clear all delivery counts, goals and swatch progress?", false)
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
			st.ResetWeek()
		})
		if err != nil {
			return errors.Wrap(err, "resetting the week")
		}

		log.Success("week reset\n")
		output.Advisories(o.Advisories())

		return nil
	}
}
