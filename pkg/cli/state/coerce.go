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
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Progress is a numeric progress value that distinguishes "not yet
// entered" from an explicit zero. The unset form round-trips through
// JSON as the empty string so snapshots written by older builds keep
// their meaning.
type Progress struct {
	Unset bool
	Value float64
}

// ProgressOf returns a set progress value.
func ProgressOf(v float64) Progress {
	return Progress{Value: v}
}

// MarshalJSON encodes the unset sentinel as the empty string.
func (p Progress) MarshalJSON() ([]byte, error) {
	if p.Unset {
		return []byte(`""`), nil
	}

	return json.Marshal(p.Value)
}

// UnmarshalJSON accepts the empty string, a number, or a numeric
// string. Anything else coerces to zero. It never returns an error.
func (p *Progress) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	if bytes.Equal(b, []byte(`""`)) {
		*p = Progress{Unset: true}
		return nil
	}

	*p = Progress{Value: coerceNumber(b)}
	return nil
}

// rawFields splits a JSON object into its raw fields. Any non-object
// input yields an empty map so the caller's field coercions produce a
// zero-valued entity.
func rawFields(b []byte) map[string]json.RawMessage {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return map[string]json.RawMessage{}
	}

	return raw
}

func coerceString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}

	return s
}

func coerceBool(raw json.RawMessage) bool {
	var v bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	return v
}

// coerceNumber mirrors the loose numeric conversion snapshots written
// by the web app rely on: numbers pass through, numeric strings parse,
// booleans map to 0/1, and everything else becomes zero.
func coerceNumber(raw json.RawMessage) float64 {
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return 0
		}
		return parsed
	}

	var v bool
	if err := json.Unmarshal(raw, &v); err == nil && v {
		return 1
	}

	return 0
}
