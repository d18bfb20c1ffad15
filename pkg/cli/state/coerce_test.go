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
	"encoding/json"
	"testing"

	"github.com/landsraad/landsraad/pkg/assert"
)

func TestProgress_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Progress
	}{
		{
			name:     "empty string is the unset sentinel",
			input:    `""`,
			expected: Progress{Unset: true},
		},
		{
			name:     "number",
			input:    `4200`,
			expected: ProgressOf(4200),
		},
		{
			name:     "zero",
			input:    `0`,
			expected: ProgressOf(0),
		},
		{
			name:     "numeric string",
			input:    `"450"`,
			expected: ProgressOf(450),
		},
		{
			name:     "garbage string",
			input:    `"spice"`,
			expected: ProgressOf(0),
		},
		{
			name:     "null",
			input:    `null`,
			expected: ProgressOf(0),
		},
		{
			name:     "object",
			input:    `{"a":1}`,
			expected: ProgressOf(0),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var p Progress
			err := json.Unmarshal([]byte(tc.input), &p)

			assert.Equal(t, err, nil, "unexpected error")
			assert.Equal(t, p, tc.expected, "progress mismatch")
		})
	}
}

func TestProgress_roundTrip(t *testing.T) {
	testCases := []Progress{
		{Unset: true},
		ProgressOf(0),
		ProgressOf(1337),
	}

	for _, tc := range testCases {
		b, err := json.Marshal(tc)
		assert.Equal(t, err, nil, "unexpected marshal error")

		var got Progress
		assert.Equal(t, json.Unmarshal(b, &got), nil, "unexpected unmarshal error")
		assert.Equal(t, got, tc, "round trip mismatch")
	}
}

func TestHouse_UnmarshalJSON_lenient(t *testing.T) {
	input := `{"id": 12, "name": "House Ecaz", "current": "", "goals": "nope", "pinned": "yes"}`

	var h House
	err := json.Unmarshal([]byte(input), &h)

	assert.Equal(t, err, nil, "unexpected error")
	assert.Equal(t, h.ID, "", "id not defaulted")
	assert.Equal(t, h.Name, "House Ecaz", "name mismatch")
	assert.Equal(t, h.Current, Progress{Unset: true}, "current mismatch")
	assert.Equal(t, len(h.Goals), 0, "goals not defaulted")
	assert.Equal(t, h.Pinned, false, "pinned not defaulted")
}

func TestMaterial_UnmarshalJSON_lenient(t *testing.T) {
	input := `{"id": "m1", "name": "Plasteel", "amount": "300", "done": 1}`

	var m Material
	err := json.Unmarshal([]byte(input), &m)

	assert.Equal(t, err, nil, "unexpected error")
	assert.Equal(t, m.Amount, float64(300), "amount mismatch")
	assert.Equal(t, m.Done, false, "done not defaulted")
}
