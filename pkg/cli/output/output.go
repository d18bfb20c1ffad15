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

// Package output renders companion collections for the terminal
package output

import (
	"fmt"
	"time"

	"github.com/landsraad/landsraad/pkg/cli/log"
	"github.com/landsraad/landsraad/pkg/cli/reset"
	"github.com/landsraad/landsraad/pkg/cli/state"
)

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// Advisories prints the non-fatal problems from a sync session.
func Advisories(advisories []string) {
	for _, a := range advisories {
		log.Warnf("%s\n", a)
	}
}

// Todos prints a to-do list.
func Todos(heading string, todos []state.Todo) {
	log.Infof("%s\n", heading)

	if len(todos) == 0 {
		log.Plain("  (empty)\n")
		return
	}

	for _, t := range todos {
		log.Plainf("  %s %s (%s)\n", checkbox(t.Done), t.Text, t.ID)
	}
}

// Materials prints the material shopping list.
func Materials(materials []state.Material) {
	log.Infof("materials (%d)\n", len(materials))

	for _, m := range materials {
		log.Plainf("  %s %s x%s (%s)\n", checkbox(m.Done), m.Name, formatAmount(m.Amount), m.ID)
	}
}

// FarmItems prints the farm list grouped by source.
func FarmItems(items []state.FarmItem, sources []string) {
	log.Infof("farm list (%d)\n", len(items))

	grouped := map[string][]state.FarmItem{}
	for _, it := range items {
		grouped[it.Source] = append(grouped[it.Source], it)
	}

	for _, src := range sources {
		group := grouped[src]
		if len(group) == 0 {
			continue
		}
		log.Plainf("  %s\n", src)
		for _, it := range group {
			log.Plainf("    %s %s (%s)\n", checkbox(it.Done), it.Name, it.ID)
		}
		delete(grouped, src)
	}

	// items whose source fell off the curated list
	for src, group := range grouped {
		log.Plainf("  %s\n", src)
		for _, it := range group {
			log.Plainf("    %s %s (%s)\n", checkbox(it.Done), it.Name, it.ID)
		}
	}
}

// FarmSources prints the farm source list.
func FarmSources(sources []string) {
	log.Infof("farm sources (%d)\n", len(sources))
	for _, s := range sources {
		log.Plainf("  %s\n", s)
	}
}

// Houses prints the landsraad house roster.
func Houses(houses []state.House, trackedOnly bool) {
	for _, h := range houses {
		if trackedOnly && !h.Pinned {
			continue
		}

		pin := " "
		if h.Pinned {
			pin = "*"
		}

		current := "?"
		if !h.Current.Unset {
			current = formatAmount(h.Current.Value)
		}

		log.Plainf("%s %s: %s\n", pin, h.Name, current)
		for _, g := range h.Goals {
			log.Plainf("    %s %s (%s / %s) (%s)\n", checkbox(g.Done), g.Name, current, formatAmount(g.Required), g.ID)
		}
	}
}

// Swatches prints the swatch tracker.
func Swatches(swatches []state.Swatch) {
	log.Infof("swatches (%d)\n", len(swatches))
	for _, s := range swatches {
		log.Plainf("  %s %s (%s)\n", checkbox(s.Done), s.Text, s.ID)
	}
}

// Tools prints the curated tool list.
func Tools(tools []state.Tool) {
	log.Infof("tools (%d)\n", len(tools))
	for _, t := range tools {
		log.Plainf("  %s: %s\n", t.Name, t.URL)
		if t.Notes != "" {
			log.Plainf("    %s\n", t.Notes)
		}
	}
}

// Location prints a house's location intel.
func Location(houseName string, entry state.LocationEntry) {
	log.Infof("%s\n", houseName)

	mapLabel := entry.MapLocation
	if mapLabel == "" {
		mapLabel = state.DefaultMapLabel(houseName)
	}
	log.Plainf("  map: %s\n", mapLabel)
	if entry.Notes != "" {
		log.Plainf("  notes: %s\n", entry.Notes)
	}
	if entry.ImageURL != "" {
		log.Plainf("  image: %s\n", entry.ImageURL)
	}
}

// Locations prints the location intel for every known house.
func Locations(content state.SharedContent) {
	for _, name := range state.AllHouses {
		entry, ok := content.Entries[name]
		if !ok || entry.MapLocation == "" {
			entry.MapLocation = state.DefaultMapLabel(name)
		}
		line := fmt.Sprintf("%s: %s", name, entry.MapLocation)
		if entry.Notes != "" {
			line += " (notes)"
		}
		if entry.ImageURL != "" {
			line += " (image)"
		}
		log.Plainf("%s\n", line)
	}
}

// ResetStatus prints the weekly reset countdown.
func ResetStatus(now time.Time, loc *time.Location, dismissed bool) {
	next := reset.NextReset(now, loc)
	remaining := reset.Remaining(now, loc)

	log.Infof("next reset: %s\n", next.Format("Mon Jan 2 15:04 MST"))
	log.Infof("time left: %s\n", reset.FormatCountdown(remaining))

	if reset.InWarningWindow(now, loc) && !dismissed {
		log.Warnf("the landsraad week resets in less than a day\n")
	}
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}
