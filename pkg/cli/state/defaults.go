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

package state

import (
	"fmt"
	"strings"
)

// AllHouses is the canonical landsraad house enumeration. Order is
// meaningful: normalized collections list houses in this order.
var AllHouses = []string{
	"House Alexin",
	"House Argosaz",
	"House Dyvetz",
	"House Ecaz",
	"House Hagal",
	"House Hurata",
	"House Imota",
	"House Kenola",
	"House Lindaren",
	"House Maros",
	"House Mikarrol",
	"House Moritani",
	"House Mutelli",
	"House Novebruns",
	"House Richese",
	"House Sor",
	"House Spinette",
	"House Taligari",
	"House Thorvald",
	"House Tseida",
	"House Varota",
	"House Vernius",
	"House Wallach",
	"House Wayku",
	"House Wydras",
}

// MapLocations is the closed set of values a location entry's map
// label may take.
var MapLocations = []string{
	"Hagga Basin",
	"Deep Desert",
	"Arakeen",
	"Harko Village",
}

const defaultMapLocation = "Hagga Basin"

var houseMapOverrides = map[string]string{
	"House Alexin":   "Harko Village",
	"House Maros":    "Deep Desert",
	"House Mutelli":  "Arakeen",
	"House Spinette": "Harko Village",
	"House Varota":   "Arakeen",
	"House Wallach":  "Arakeen",
	"House Wayku":    "Deep Desert",
}

// DefaultMapLabel returns the map label a house's location entry
// starts with.
func DefaultMapLabel(houseName string) string {
	if label, ok := houseMapOverrides[houseName]; ok {
		return label
	}

	return defaultMapLocation
}

// ResolveHouse maps user input to a canonical house name. Matching is
// case-insensitive and the "House " prefix is optional, so "ecaz" and
// "House Ecaz" both resolve.
func ResolveHouse(name string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return "", false
	}

	for _, canonical := range AllHouses {
		lower := strings.ToLower(canonical)
		if needle == lower || needle == strings.TrimPrefix(lower, "house ") {
			return canonical, true
		}
	}

	return "", false
}

// IsMapLocation reports whether the given label is a known map location.
func IsMapLocation(label string) bool {
	for _, l := range MapLocations {
		if l == label {
			return true
		}
	}

	return false
}

// DefaultSwatchText returns the canonical swatch text for a house.
func DefaultSwatchText(houseName string) string {
	return fmt.Sprintf("%s Placeable Swatch", houseName)
}

// DefaultHouses returns the seeded house collection: every canonical
// house with zero progress, no goals and no pin.
func DefaultHouses() []House {
	houses := make([]House, 0, len(AllHouses))
	for _, name := range AllHouses {
		houses = append(houses, House{
			ID:   NewID(),
			Name: name,
		})
	}

	return houses
}

// DefaultSwatches returns the seeded swatch list, one per house.
func DefaultSwatches() []Swatch {
	swatches := make([]Swatch, 0, len(AllHouses))
	for _, name := range AllHouses {
		swatches = append(swatches, Swatch{
			ID:   NewID(),
			Text: DefaultSwatchText(name),
		})
	}

	return swatches
}

// DefaultLocationEntries returns the seeded location map, one entry
// per canonical house.
func DefaultLocationEntries() map[string]LocationEntry {
	entries := make(map[string]LocationEntry, len(AllHouses))
	for _, name := range AllHouses {
		entries[name] = LocationEntry{MapLocation: DefaultMapLabel(name)}
	}

	return entries
}

// DefaultTools returns the built-in companion tool links.
func DefaultTools() []Tool {
	return []Tool{
		{
			ID:    NewID(),
			Name:  "Dune: Awakening Intel Map",
			URL:   "https://duneawakeningtracker.com/",
			Notes: "Interactive map and community tracking resources.",
		},
		{
			ID:    NewID(),
			Name:  "Dune: Awakening Database",
			URL:   "https://awakening.wiki/",
			Notes: "Guides, references, and item information.",
		},
	}
}

// DefaultFarmSources returns the starter farm source list.
func DefaultFarmSources() []string {
	return []string{"Contracts", "Deep Desert", "Testing Labs"}
}

// Default returns a fresh per-user snapshot with starter data.
func Default() AppState {
	return AppState{
		ThemeMode: "dark",
		Materials: []Material{
			{ID: NewID(), Name: "Plasteel", Amount: 300},
			{ID: NewID(), Name: "Silicone Blocks", Amount: 120},
		},
		FarmItems: []FarmItem{
			{ID: NewID(), Name: "Regis Disruptor Pistol parts", Source: "Labs + Contracts"},
		},
		FarmSources: DefaultFarmSources(),
		GeneralTodos: []Todo{
			{ID: NewID(), Text: "Refill water before run"},
			{ID: NewID(), Text: "Move old loot to storage"},
		},
		Houses:   DefaultHouses(),
		Swatches: DefaultSwatches(),
		Tools:    DefaultTools(),
	}
}

// DefaultSharedContent returns the seeded shared content document.
func DefaultSharedContent() SharedContent {
	return SharedContent{
		Entries:     DefaultLocationEntries(),
		FarmSources: NormalizeFarmSources(DefaultFarmSources()),
		Tools:       DefaultTools(),
	}
}
