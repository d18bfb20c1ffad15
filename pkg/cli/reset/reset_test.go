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

package reset

import (
	"testing"
	"time"

	"github.com/landsraad/landsraad/pkg/assert"
)

func mustLocation(t *testing.T) *time.Location {
	t.Helper()

	loc, err := Location()
	if err != nil {
		t.Fatalf("loading location: %v", err)
	}

	return loc
}

func TestNextReset(t *testing.T) {
	loc := mustLocation(t)

	testCases := []struct {
		name     string
		now      time.Time
		expected time.Time
	}{
		{
			name: "mid week",
			// Thursday June 5 2025, noon ET
			now:      time.Date(2025, time.June, 5, 12, 0, 0, 0, loc),
			expected: time.Date(2025, time.June, 10, 0, 0, 0, 0, loc),
		},
		{
			name: "monday night is almost there",
			now:      time.Date(2025, time.June, 9, 23, 59, 59, 0, loc),
			expected: time.Date(2025, time.June, 10, 0, 0, 0, 0, loc),
		},
		{
			name: "exactly at the boundary rolls a full week",
			now:      time.Date(2025, time.June, 10, 0, 0, 0, 0, loc),
			expected: time.Date(2025, time.June, 17, 0, 0, 0, 0, loc),
		},
		{
			name: "late tuesday still points at next week",
			now:      time.Date(2025, time.June, 10, 23, 0, 0, 0, loc),
			expected: time.Date(2025, time.June, 17, 0, 0, 0, 0, loc),
		},
		{
			name: "spring forward week",
			// DST starts Sunday March 9 2025 in New York
			now:      time.Date(2025, time.March, 8, 12, 0, 0, 0, loc),
			expected: time.Date(2025, time.March, 11, 0, 0, 0, 0, loc),
		},
		{
			name: "fall back week",
			// DST ends Sunday November 2 2025 in New York
			now:      time.Date(2025, time.November, 1, 12, 0, 0, 0, loc),
			expected: time.Date(2025, time.November, 4, 0, 0, 0, 0, loc),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextReset(tc.now, loc)

			assert.Equal(t, got.Equal(tc.expected), true, "reset instant mismatch")
		})
	}
}

func TestNextReset_observerZoneIrrelevant(t *testing.T) {
	loc := mustLocation(t)

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	if err != nil {
		t.Fatalf("loading location: %v", err)
	}

	instant := time.Date(2025, time.June, 5, 12, 0, 0, 0, loc)

	fromET := NextReset(instant, loc)
	fromTokyo := NextReset(instant.In(tokyo), loc)

	assert.Equal(t, fromET.Equal(fromTokyo), true, "observer zone changed the reset instant")
}

func TestRemaining(t *testing.T) {
	loc := mustLocation(t)

	t.Run("one second before the boundary", func(t *testing.T) {
		now := time.Date(2025, time.June, 9, 23, 59, 59, 0, loc)

		assert.Equal(t, Remaining(now, loc), time.Second, "remaining mismatch")
	})

	t.Run("at the boundary a full week remains", func(t *testing.T) {
		now := time.Date(2025, time.June, 10, 0, 0, 0, 0, loc)

		assert.Equal(t, Remaining(now, loc), 7*24*time.Hour, "remaining mismatch")
	})

	t.Run("spring forward week is an hour short", func(t *testing.T) {
		now := time.Date(2025, time.March, 8, 0, 0, 0, 0, loc)

		// Saturday midnight to Tuesday midnight spans the skipped hour
		assert.Equal(t, Remaining(now, loc), 3*24*time.Hour-time.Hour, "remaining mismatch")
	})
}

func TestWeekKey(t *testing.T) {
	loc := mustLocation(t)

	t.Run("stable within a week", func(t *testing.T) {
		wednesday := time.Date(2025, time.June, 4, 9, 0, 0, 0, loc)
		monday := time.Date(2025, time.June, 9, 22, 0, 0, 0, loc)

		assert.Equal(t, WeekKey(wednesday, loc), WeekKey(monday, loc), "key changed within a week")
	})

	t.Run("changes across the boundary", func(t *testing.T) {
		before := time.Date(2025, time.June, 9, 23, 0, 0, 0, loc)
		after := time.Date(2025, time.June, 10, 1, 0, 0, 0, loc)

		assert.NotEqual(t, WeekKey(before, loc), WeekKey(after, loc), "key survived the boundary")
	})

	t.Run("utc form", func(t *testing.T) {
		now := time.Date(2025, time.June, 5, 12, 0, 0, 0, loc)

		// Tuesday midnight EDT is 04:00 UTC
		assert.Equal(t, WeekKey(now, loc), "2025-06-10T04:00:00Z", "key mismatch")
	})
}

func TestInWarningWindow(t *testing.T) {
	loc := mustLocation(t)

	inside := time.Date(2025, time.June, 9, 12, 0, 0, 0, loc)
	outside := time.Date(2025, time.June, 8, 12, 0, 0, 0, loc)

	assert.Equal(t, InWarningWindow(inside, loc), true, "inside window not detected")
	assert.Equal(t, InWarningWindow(outside, loc), false, "outside window detected")
}

func TestFormatCountdown(t *testing.T) {
	testCases := []struct {
		input    time.Duration
		expected string
	}{
		{input: 49*time.Hour + 30*time.Minute, expected: "2d 1h 30m"},
		{input: 3*time.Hour + 4*time.Minute + 5*time.Second, expected: "3h 4m 5s"},
		{input: 42 * time.Second, expected: "0m 42s"},
		{input: -time.Second, expected: "0m 0s"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, FormatCountdown(tc.input), tc.expected, "format mismatch")
		})
	}
}
