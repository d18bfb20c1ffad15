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

package job

import (
	"testing"
	"time"

	"github.com/landsraad/landsraad/pkg/assert"
	"github.com/landsraad/landsraad/pkg/server/app"
	"github.com/landsraad/landsraad/pkg/server/database"
	"github.com/landsraad/landsraad/pkg/server/testutils"
)

func TestRunnerStartStop(t *testing.T) {
	a := app.NewTest(t)
	runner := NewRunner(&a)

	err := runner.Start()
	assert.Equal(t, err, nil, "starting the runner")

	runner.Stop()
}

func TestPurgeExpiredSessions(t *testing.T) {
	a := app.NewTest(t)
	user := testutils.SetupUserData(a.DB, "paul@example.com", "oldsecret")

	now := a.Clock.Now()
	expired := database.Session{
		Key:       "expired-key",
		UserID:    user.ID,
		ExpiresAt: now.Add(-time.Hour),
	}
	testutils.MustExec(t, a.DB.Save(&expired), "preparing expired session")
	live := database.Session{
		Key:       "live-key",
		UserID:    user.ID,
		ExpiresAt: now.Add(time.Hour),
	}
	testutils.MustExec(t, a.DB.Save(&live), "preparing live session")

	runner := NewRunner(&a)
	runner.purgeExpiredSessions()

	var count int64
	testutils.MustExec(t, a.DB.Model(database.Session{}).Count(&count), "counting sessions")
	assert.Equal(t, count, int64(1), "session count mismatch")

	var remaining database.Session
	testutils.MustExec(t, a.DB.First(&remaining), "finding remaining session")
	assert.Equal(t, remaining.Key, "live-key", "remaining session mismatch")
}
