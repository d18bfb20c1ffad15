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

// Package location implements commands for the shared house location
// intel: map labels, notes and screenshots.
package location

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/landsraad/landsraad/pkg/cli/client"
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
  * List the location intel for every house
  landsraad location

  * Show one house in detail
  landsraad location show Wydras

  * Update the intel (admin only)
  landsraad location set-map Wydras "Deep Desert"
  landsraad location edit-notes Wydras
  landsraad location set-image Wydras ./wydras.png
  landsraad location rm-image Wydras`

// NewCmd returns a new location command
func NewCmd(ctx context.LandsraadCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "location",
		Aliases: []string{"loc"},
		Short:   "Show and edit shared house location intel",
		Example: example,
		RunE:    newListRun(ctx),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <house>",
		Short: "Show the intel for a house",
		RunE:  newShowRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set-map <house> <map>",
		Short: "Set the map a house spawns on (admin only)",
		Long:  "Set the map a house spawns on. Known maps: " + strings.Join(state.MapLocations, ", "),
		RunE:  newSetMapRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "edit-notes <house>",
		Short: "Edit the notes for a house in your editor (admin only)",
		RunE:  newEditNotesRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "set-image <house> <file>",
		Short: "Upload a location screenshot for a house (admin only)",
		RunE:  newSetImageRun(ctx),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm-image <house>",
		Short: "Remove the location screenshot for a house (admin only)",
		RunE:  newRemoveImageRun(ctx),
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

		output.Locations(o.SharedContent())
		output.Advisories(o.Advisories())

		return nil
	}
}

func newShowRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("Incorrect number of arguments")
		}
		houseName, ok := state.ResolveHouse(args[0])
		if !ok {
			log.Errorf("house %s not found\n", args[0])
			return nil
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		entry := o.SharedContent().Entries[houseName]

		output.Location(houseName, entry)
		output.Advisories(o.Advisories())

		return nil
	}
}

func newSetMapRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("Incorrect number of arguments")
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		set := false
		err = o.UpdateSharedContent(func(c *state.SharedContent) {
			set = c.SetLocationMap(args[0], args[1])
		})
		if errors.Is(err, sync.ErrNotAdmin) {
			log.Error("only the admin can edit location intel\n")
			return nil
		} else if err != nil {
			return errors.Wrap(err, "setting the map")
		}
		if !set {
			log.Errorf("unknown house or map. known maps: %s\n", strings.Join(state.MapLocations, ", "))
			return nil
		}

		log.Success("map set\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newEditNotesRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("Incorrect number of arguments")
		}
		houseName, ok := state.ResolveHouse(args[0])
		if !ok {
			log.Errorf("house %s not found\n", args[0])
			return nil
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		entry := o.SharedContent().Entries[houseName]

		fpath, err := ui.GetTmpContentPath(ctx)
		if err != nil {
			return errors.Wrap(err, "getting temporary content file path")
		}
		if entry.Notes != "" {
			if err := os.WriteFile(fpath, []byte(entry.Notes), 0644); err != nil {
				return errors.Wrap(err, "writing current notes")
			}
		}

		notes, err := ui.GetEditorInput(ctx, fpath)
		if err != nil {
			return errors.Wrap(err, "getting editor input")
		}

		set := false
		err = o.UpdateSharedContent(func(c *state.SharedContent) {
			set = c.SetLocationNotes(houseName, strings.TrimSpace(notes))
		})
		if errors.Is(err, sync.ErrNotAdmin) {
			log.Error("only the admin can edit location intel\n")
			return nil
		} else if err != nil {
			return errors.Wrap(err, "setting the notes")
		}
		if !set {
			log.Errorf("house %s not found\n", houseName)
			return nil
		}

		log.Success("notes updated\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newSetImageRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			return errors.New("Incorrect number of arguments")
		}
		houseName, ok := state.ResolveHouse(args[0])
		if !ok {
			log.Errorf("house %s not found\n", args[0])
			return nil
		}

		if !ctx.IsAdmin() {
			log.Error("only the admin can edit location intel\n")
			return nil
		}

		data, err := os.ReadFile(args[1])
		if err != nil {
			return errors.Wrap(err, "reading the image file")
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		oldPath := o.SharedContent().Entries[houseName].StoragePath

		images := client.NewImageStore(ctx)
		storagePath, publicURL, err := images.Upload(filepath.Base(args[1]), data)
		if err != nil {
			return errors.Wrap(err, "uploading the image")
		}

		err = o.UpdateSharedContent(func(c *state.SharedContent) {
			c.SetLocationImage(houseName, publicURL, storagePath)
		})
		if err != nil {
			return errors.Wrap(err, "recording the image")
		}

		// drop the previous blob only after the new one is in place
		if oldPath != "" && oldPath != storagePath {
			if err := images.Remove(oldPath); err != nil {
				log.Warnf("could not remove the previous image: %v\n", err)
			}
		}

		log.Success("image uploaded\n")
		output.Advisories(o.Advisories())

		return nil
	}
}

func newRemoveImageRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("Incorrect number of arguments")
		}
		houseName, ok := state.ResolveHouse(args[0])
		if !ok {
			log.Errorf("house %s not found\n", args[0])
			return nil
		}

		if !ctx.IsAdmin() {
			log.Error("only the admin can edit location intel\n")
			return nil
		}

		o, err := sync.Open(ctx)
		if err != nil {
			return errors.Wrap(err, "opening sync session")
		}
		defer o.Close()

		entry := o.SharedContent().Entries[houseName]
		if entry.StoragePath == "" && entry.ImageURL == "" {
			log.Infof("no image recorded for %s\n", houseName)
			return nil
		}

		err = o.UpdateSharedContent(func(c *state.SharedContent) {
			c.SetLocationImage(houseName, "", "")
		})
		if err != nil {
			return errors.Wrap(err, "clearing the image")
		}

		if entry.StoragePath != "" {
			images := client.NewImageStore(ctx)
			if err := images.Remove(entry.StoragePath); err != nil {
				log.Warnf("could not remove the stored image: %v\n", err)
			}
		}

		log.Success("image removed\n")
		output.Advisories(o.Advisories())

		return nil
	}
}
