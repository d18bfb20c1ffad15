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

// Package job schedules the server's background jobs
package job

import (
	"github.com/landsraad/landsraad/pkg/server/app"
	"github.com/landsraad/landsraad/pkg/server/log"
	"github.com/robfig/cron"
	"github.com/pkg/errors"
)

// Runner owns the background job scheduler
type Runner struct {
	app  *app.App
	cron *cron.Cron
}

// NewRunner creates a job runner for the given app
func NewRunner(a *app.App) *Runner {
	return &Runner{
		app:  a,
		cron: cron.New(),
	}
}

// purgeExpiredSessions removes sessions that are past their expiry
func (r *Runner) purgeExpiredSessions() {
	count, err := r.app.DeleteExpiredSessions()
	if err != nil {
		log.ErrorWrap(err, "purging expired sessions")
		return
	}

	if count > 0 {
		log.WithFields(log.Fields{
			"count": count,
		}).Info("purged expired sessions")
	}
}

// Start registers the background jobs and starts the scheduler
func (r *Runner) Start() error {
	// daily at 00:00
	if err := r.cron.AddFunc("0 0 0 * * *", r.purgeExpiredSessions); err != nil {
		return errors.Wrap(err, "scheduling session purge")
	}

	r.cron.Start()
	log.Info("started background jobs")

	return nil
}

// Stop stops the scheduler. Running jobs are not interrupted.
func (r *Runner) Stop() {
	r.cron.Stop()
}
