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
	"testing"

	"github.com/landsraad/landsraad/pkg/assert"
)

func TestNormalizeHouses_empty(t *testing.T) {
	result := NormalizeHouses(nil)

	assert.Equal(t, len(result), len(AllHouses), "house count mismatch")

	for i, h := range result {
		assert.Equal(t, h.Name, AllHouses[i], fmt.Sprintf("house %d name mismatch", i))
		assert.Equal(t, h.Current, Progress{}, fmt.Sprintf("house %d current mismatch", i))
		assert.Equal(t, len(h.Goals), 0, fmt.Sprintf("house %d goals mismatch", i))
		assert.Equal(t, h.Pinned, false, fmt.Sprintf("house %d pinned mismatch", i))
		assert.NotEqual(t, h.ID, "", fmt.Sprintf("house %d id mismatch", i))
	}
}

func TestNormalizeHouses_preservesExisting(t *testing.T) {
	input := []House{
		{
			ID:      "h1",
			Name:    "House Hagal",
			Current: ProgressOf(4200),
			Goals:   []Goal{{ID: "g1", Name: "Deliver plasteel", Required: 500}},
			Pinned:  true,
		},
	}

	result := NormalizeHouses(input)

	var hagal House
	for _, h := range result {
		if h.Name == "House Hagal" {
			hagal = h
		}
	}

	assert.Equal(t, hagal.ID, "h1", "id mismatch")
	assert.Equal(t, hagal.Current, ProgressOf(4200), "current mismatch")
	assert.Equal(t, len(hagal.Goals), 1, "goal count mismatch")
	assert.Equal(t, hagal.Goals[0].Name, "Deliver plasteel", "goal name mismatch")
	assert.Equal(t, hagal.Pinned, true, "pinned mismatch")
}

func TestNormalizeHouses_dropsUnknown(t *testing.T) {
	input := []House{
		{ID: "x1", Name: "House Atreides", Current: ProgressOf(100)},
		{ID: "h1", Name: "House Ecaz"},
	}

	result := NormalizeHouses(input)

	assert.Equal(t, len(result), len(AllHouses), "house count mismatch")
	for _, h := range result {
		assert.NotEqual(t, h.Name, "House Atreides", "unknown house survived")
	}
}

func TestNormalizeHouses_sentinel(t *testing.T) {
	input := []House{
		{Name: "House Sor", Current: Progress{Unset: true}},
		{Name: "House Ecaz", Current: ProgressOf(0)},
	}

	result := NormalizeHouses(input)

	for _, h := range result {
		switch h.Name {
		case "House Sor":
			assert.Equal(t, h.Current, Progress{Unset: true}, "sentinel lost")
		case "House Ecaz":
			assert.Equal(t, h.Current, ProgressOf(0), "explicit zero lost")
		}
	}
}

func TestNormalizeHouses_idempotent(t *testing.T) {
	input := []House{
		{ID: "h1", Name: "House Wayku", Current: ProgressOf(77), Pinned: true},
		{ID: "x", Name: "not a house"},
	}

	once := NormalizeHouses(input)
	twice := NormalizeHouses(once)

	assert.DeepEqual(t, twice, once, "normalization not idempotent")
}

func TestNormalizeSwatches(t *testing.T) {
	input := []Swatch{
		{ID: "s1", Text: "  house ecaz placeable swatch ", Done: true},
		{ID: "s2", Text: "Sandworm Banner", Done: false},
	}

	result := NormalizeSwatches(input)

	assert.Equal(t, len(result), len(AllHouses)+1, "swatch count mismatch")

	var ecaz Swatch
	for _, s := range result[:len(AllHouses)] {
		if swatchKey(s.Text) == swatchKey(DefaultSwatchText("House Ecaz")) {
			ecaz = s
		}
	}

	// the canonical text wins but id and done come from the input
	assert.Equal(t, ecaz.ID, "s1", "merged swatch id mismatch")
	assert.Equal(t, ecaz.Text, "House Ecaz Placeable Swatch", "merged swatch text mismatch")
	assert.Equal(t, ecaz.Done, true, "merged swatch done mismatch")

	extra := result[len(AllHouses)]
	assert.Equal(t, extra.Text, "Sandworm Banner", "extra swatch lost")
}

func TestIsDefaultSwatchText(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{input: "House Ecaz Placeable Swatch", expected: true},
		{input: "  house wayku placeable swatch  ", expected: true},
		{input: "Sandworm Banner", expected: false},
		{input: "", expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			assert.Equal(t, IsDefaultSwatchText(tc.input), tc.expected, "result mismatch")
		})
	}
}

func TestHasEarnedSwatch(t *testing.T) {
	swatches := NormalizeSwatches(nil)
	assert.Equal(t, HasEarnedSwatch("House Ecaz", swatches), false, "unearned swatch reported earned")

	for i := range swatches {
		if swatchKey(swatches[i].Text) == swatchKey(DefaultSwatchText("House Ecaz")) {
			swatches[i].Done = true
		}
	}

	assert.Equal(t, HasEarnedSwatch("House Ecaz", swatches), true, "earned swatch not reported")
}

func TestNormalizeFarmSources(t *testing.T) {
	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil input",
			input:    nil,
			expected: []string{},
		},
		{
			name:     "trims dedupes and sorts",
			input:    []string{" Deep Desert ", "Contracts", "Deep Desert", "", "  "},
			expected: []string{"Contracts", "Deep Desert"},
		},
		{
			name:     "dedup ignores case and keeps the first spelling",
			input:    []string{"Contracts", "contracts", "CONTRACTS", "deep desert", "Deep Desert"},
			expected: []string{"Contracts", "deep desert"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.DeepEqual(t, NormalizeFarmSources(tc.input), tc.expected, "result mismatch")
		})
	}
}

func TestResolveHouse(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
		ok       bool
	}{
		{input: "House Ecaz", expected: "House Ecaz", ok: true},
		{input: "ecaz", expected: "House Ecaz", ok: true},
		{input: "  HOUSE WAYKU  ", expected: "House Wayku", ok: true},
		{input: "House Atreides", expected: "", ok: false},
		{input: "", expected: "", ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ResolveHouse(tc.input)

			assert.Equal(t, ok, tc.ok, "ok mismatch")
			assert.Equal(t, got, tc.expected, "name mismatch")
		})
	}
}

func TestNormalizeTools(t *testing.T) {
	t.Run("filters invalid entries", func(t *testing.T) {
		input := []Tool{
			{ID: "t1", Name: "Intel Map", URL: "https://example.com"},
			{ID: "t2", Name: "", URL: "https://example.com"},
			{ID: "t3", Name: "No URL", URL: "  "},
		}

		result := NormalizeTools(input)

		assert.Equal(t, len(result), 1, "tool count mismatch")
		assert.Equal(t, result[0].ID, "t1", "tool id mismatch")
	})

	t.Run("falls back to defaults when nothing survives", func(t *testing.T) {
		result := NormalizeTools([]Tool{{Name: "broken"}})

		assert.Equal(t, len(result), 2, "default tool count mismatch")
		assert.Equal(t, result[0].Name, "Dune: Awakening Intel Map", "default tool name mismatch")
		assert.Equal(t, result[0].Notes, "Interactive map and community tracking resources.", "default tool notes mismatch")
	})
}

func TestNormalizeLocationEntries(t *testing.T) {
	input := map[string]LocationEntry{
		"House Ecaz":     {Notes: "North of the ridge", MapLocation: "Deep Desert"},
		"House Atreides": {Notes: "should be dropped"},
		"House Sor":      {MapLocation: "Atlantis"},
	}

	result := NormalizeLocationEntries(input)

	assert.Equal(t, len(result), len(AllHouses), "entry count mismatch")
	assert.Equal(t, result["House Ecaz"].Notes, "North of the ridge", "notes lost")
	assert.Equal(t, result["House Ecaz"].MapLocation, "Deep Desert", "map label lost")
	assert.Equal(t, result["House Sor"].MapLocation, DefaultMapLabel("House Sor"), "bad label not defaulted")

	_, ok := result["House Atreides"]
	assert.Equal(t, ok, false, "unknown house survived")

	assert.Equal(t, result["House Alexin"].MapLocation, "Harko Village", "override label mismatch")
	assert.Equal(t, result["House Hagal"].MapLocation, "Hagga Basin", "default label mismatch")
}
