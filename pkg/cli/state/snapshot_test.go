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
	"testing"
	"time"

	"github.com/landsraad/landsraad/pkg/assert"
)

func TestApply_partialDocument(t *testing.T) {
	s := Default()
	originalTodos := len(s.GeneralTodos)

	raw := []byte(`{
		"materials": [{"id": "m1", "name": "Plasteel", "amount": 300, "done": false}],
		"landsraadHouses": "not an array",
		"trackedOnlyMode": true
	}`)

	s.Apply(raw)

	assert.Equal(t, len(s.Materials), 1, "materials not applied")
	assert.Equal(t, s.Materials[0].ID, "m1", "material id mismatch")
	assert.Equal(t, s.TrackedOnly, true, "trackedOnlyMode not applied")

	// malformed and absent fields leave the state untouched
	assert.Equal(t, len(s.Houses), len(AllHouses), "houses clobbered by malformed field")
	assert.Equal(t, len(s.GeneralTodos), originalTodos, "todos clobbered by absent field")
}

func TestApply_legacyTheme(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "themeMode wins", raw: `{"themeMode": "spice", "isDark": false}`, expected: "spice"},
		{name: "legacy dark", raw: `{"isDark": true}`, expected: "dark"},
		{name: "legacy light", raw: `{"isDark": false}`, expected: "light"},
		{name: "nothing", raw: `{}`, expected: "dark"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := Default()
			s.Apply([]byte(tc.raw))

			assert.Equal(t, s.ThemeMode, tc.expected, "theme mismatch")
		})
	}
}

func TestApply_garbage(t *testing.T) {
	s := Default()
	expected := len(s.Materials)

	s.Apply([]byte(`[1,2,3]`))
	s.Apply([]byte(`not json`))
	s.Apply(nil)

	assert.Equal(t, len(s.Materials), expected, "garbage document mutated state")
}

func TestApply_normalizesCollections(t *testing.T) {
	s := AppState{}
	s.Apply([]byte(`{
		"landsraadHouses": [{"name": "House Ecaz", "current": "450"}],
		"houseSwatches": [],
		"farmSources": ["b", "a", "b", " "]
	}`))

	assert.Equal(t, len(s.Houses), len(AllHouses), "houses not normalized")
	assert.Equal(t, len(s.Swatches), len(AllHouses), "swatches not normalized")
	assert.DeepEqual(t, s.FarmSources, []string{"a", "b"}, "farm sources not normalized")

	h := s.findHouse("House Ecaz")
	assert.Equal(t, h.Current, ProgressOf(450), "numeric string not coerced")
}

func TestUnwrapBackup(t *testing.T) {
	t.Run("wrapper", func(t *testing.T) {
		raw := []byte(`{"version": 1, "app": "x", "data": {"trackedOnlyMode": true}}`)

		data, err := UnwrapBackup(raw)
		assert.Equal(t, err, nil, "unexpected error")

		s := AppState{}
		s.Apply(data)
		assert.Equal(t, s.TrackedOnly, true, "wrapped data not applied")
	})

	t.Run("bare snapshot", func(t *testing.T) {
		raw := []byte(`{"trackedOnlyMode": true}`)

		data, err := UnwrapBackup(raw)
		assert.Equal(t, err, nil, "unexpected error")

		s := AppState{}
		s.Apply(data)
		assert.Equal(t, s.TrackedOnly, true, "bare data not applied")
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := UnwrapBackup([]byte(`[1,2]`))
		assert.NotEqual(t, err, nil, "invalid payload accepted")
	})
}

func TestSnapshotRoundTrip(t *testing.T) {
	s := Default()
	s.SetHouseCurrent("House Ecaz", Progress{Unset: true})
	s.SetHouseCurrent("House Sor", ProgressOf(0))

	b, err := EncodeSnapshot(s)
	assert.Equal(t, err, nil, "unexpected encode error")

	restored := AppState{}
	restored.Apply(b)

	assert.Equal(t, restored.findHouse("House Ecaz").Current, Progress{Unset: true}, "sentinel lost in round trip")
	assert.Equal(t, restored.findHouse("House Sor").Current, ProgressOf(0), "zero lost in round trip")
}

func TestNewBackup(t *testing.T) {
	now := time.Date(2025, time.June, 2, 12, 0, 0, 0, time.UTC)
	b := NewBackup(Default(), now)

	assert.Equal(t, b.Version, 1, "version mismatch")
	assert.Equal(t, b.App, BackupApp, "app mismatch")
	assert.Equal(t, b.ExportedAt, now, "timestamp mismatch")
}
