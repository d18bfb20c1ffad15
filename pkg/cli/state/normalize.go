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
	"sort"
	"strings"
)

// seededMerge reconciles an untrusted collection against a canonical
// seed list. Every seed appears in the result exactly once, in seed
// order, merged with the matching input item when one exists. With
// keepExtras set, unmatched input items follow the seeded block in
// input order.
func seededMerge[T any](seeds, input []T, key func(T) string, merge func(seed, found T) T, keepExtras bool) []T {
	byKey := make(map[string]T, len(input))
	for _, item := range input {
		k := key(item)
		if k == "" {
			continue
		}
		byKey[k] = item
	}

	out := make([]T, 0, len(seeds))
	seedKeys := make(map[string]bool, len(seeds))
	for _, seed := range seeds {
		k := key(seed)
		seedKeys[k] = true

		if found, ok := byKey[k]; ok {
			out = append(out, merge(seed, found))
		} else {
			out = append(out, seed)
		}
	}

	if keepExtras {
		for _, item := range input {
			if k := key(item); k != "" && !seedKeys[k] {
				out = append(out, item)
			}
		}
	}

	return out
}

// NormalizeHouses merges an untrusted house collection against the
// canonical enumeration. Matching is by exact house name; houses
// outside the enumeration are dropped. Existing ids, progress, goals
// and pins survive the merge.
func NormalizeHouses(houses []House) []House {
	return seededMerge(DefaultHouses(), houses, func(h House) string {
		return h.Name
	}, func(seed, found House) House {
		merged := found
		merged.Name = seed.Name
		if merged.ID == "" {
			merged.ID = seed.ID
		}
		return merged
	}, false)
}

func swatchKey(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// NormalizeSwatches merges an untrusted swatch list against the
// per-house defaults. Matching is by trimmed, lowercased text. Custom
// swatches are preserved after the seeded block.
func NormalizeSwatches(swatches []Swatch) []Swatch {
	return seededMerge(DefaultSwatches(), swatches, func(s Swatch) string {
		return swatchKey(s.Text)
	}, func(seed, found Swatch) Swatch {
		merged := seed
		if found.ID != "" {
			merged.ID = found.ID
		}
		merged.Done = found.Done
		return merged
	}, true)
}

// IsDefaultSwatchText reports whether the text names one of the
// canonical per-house swatches, ignoring case and surrounding space.
func IsDefaultSwatchText(text string) bool {
	k := swatchKey(text)
	if k == "" {
		return false
	}

	for _, name := range AllHouses {
		if swatchKey(DefaultSwatchText(name)) == k {
			return true
		}
	}

	return false
}

// HasEarnedSwatch reports whether the canonical swatch for the given
// house is marked done.
func HasEarnedSwatch(houseName string, swatches []Swatch) bool {
	target := swatchKey(DefaultSwatchText(houseName))
	for _, s := range swatches {
		if swatchKey(s.Text) == target && s.Done {
			return true
		}
	}

	return false
}

// NormalizeLocationEntries reconciles a location map against the
// canonical house enumeration. Unknown houses are dropped, missing
// houses get a default entry, and an unrecognized map label falls
// back to the house's default.
func NormalizeLocationEntries(entries map[string]LocationEntry) map[string]LocationEntry {
	out := make(map[string]LocationEntry, len(AllHouses))
	for _, name := range AllHouses {
		entry := entries[name]
		if !IsMapLocation(entry.MapLocation) {
			entry.MapLocation = DefaultMapLabel(name)
		}
		out[name] = entry
	}

	return out
}

// NormalizeFarmSources trims entries, drops empties and duplicates,
// and sorts the remainder.
func NormalizeFarmSources(sources []string) []string {
	seen := make(map[string]bool, len(sources))
	out := make([]string, 0, len(sources))
	for _, source := range sources {
		trimmed := strings.TrimSpace(source)
		key := strings.ToLower(trimmed)
		if trimmed == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, trimmed)
	}

	sort.Strings(out)
	return out
}

// NormalizeTools drops entries missing a name or url and trims the
// rest. An empty result falls back to the built-in tool list.
func NormalizeTools(tools []Tool) []Tool {
	out := make([]Tool, 0, len(tools))
	for _, tool := range tools {
		name := strings.TrimSpace(tool.Name)
		url := strings.TrimSpace(tool.URL)
		if name == "" || url == "" {
			continue
		}

		id := tool.ID
		if id == "" {
			id = NewID()
		}

		out = append(out, Tool{
			ID:    id,
			Name:  name,
			URL:   url,
			Notes: strings.TrimSpace(tool.Notes),
		})
	}

	if len(out) == 0 {
		return DefaultTools()
	}

	return out
}

// NormalizeSharedContent normalizes every collection of a shared
// content document.
func NormalizeSharedContent(c SharedContent) SharedContent {
	return SharedContent{
		Entries:     NormalizeLocationEntries(c.Entries),
		FarmSources: NormalizeFarmSources(c.FarmSources),
		Tools:       NormalizeTools(c.Tools),
	}
}
