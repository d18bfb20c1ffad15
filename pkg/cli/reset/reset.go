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

// Package reset computes the weekly landsraad reset schedule. The
// game resets every Tuesday at midnight US Eastern time regardless of
// where the player is, so all calculations project the current
// instant into the fixed game zone first.
package reset

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// TimeZone is the fixed zone the weekly reset is anchored to.
const TimeZone = "America/New_York"

// WarningWindow is how long before a reset the companion starts
// warning about the deep desert wipe.
const WarningWindow = 24 * time.Hour

// Location loads the reset zone.
func Location() (*time.Location, error) {
	loc, err := time.LoadLocation(TimeZone)
	if err != nil {
		return nil, errors.Wrap(err, "loading reset time zone")
	}

	return loc, nil
}

// NextReset returns the instant of the next Tuesday midnight in the
// reset zone, strictly after now. During any part of a Tuesday in the
// reset zone the answer is the following Tuesday, so at the boundary
// itself the delta is a full seven days.
func NextReset(now time.Time, loc *time.Location) time.Time {
	local := now.In(loc)

	days := (int(time.Tuesday) - int(local.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}

	// time.Date normalizes the day overflow and resolves the civil
	// time against the zone's rules, which keeps the result correct
	// across DST transitions.
	return time.Date(local.Year(), local.Month(), local.Day()+days, 0, 0, 0, 0, loc)
}

// Remaining returns the time left until the next reset, clamped at
// zero.
func Remaining(now time.Time, loc *time.Location) time.Duration {
	d := NextReset(now, loc).Sub(now)
	if d < 0 {
		return 0
	}

	return d
}

// WeekKey identifies the current landsraad week by its upcoming reset
// instant. Two calls within the same week yield the same key no
// matter the caller's zone.
func WeekKey(now time.Time, loc *time.Location) string {
	return NextReset(now, loc).UTC().Format(time.RFC3339)
}

// InWarningWindow reports whether the next reset is close enough to
// warrant the wipe warning.
func InWarningWindow(now time.Time, loc *time.Location) bool {
	return Remaining(now, loc) <= WarningWindow
}

// FormatCountdown renders a duration for the countdown display.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60

	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	}

	return fmt.Sprintf("%dm %ds", minutes, seconds)
}
