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

// Package upgrade provides a way to check for an update of the
// companion against the GitHub releases
package upgrade

import (
	gocontext "context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/go-github/github"
	"github.com/landsraad/landsraad/pkg/cli/consts"
	"github.com/landsraad/landsraad/pkg/cli/context"
	"github.com/landsraad/landsraad/pkg/cli/database"
	"github.com/landsraad/landsraad/pkg/cli/log"
	"github.com/pkg/errors"
)

// checkInterval is the minimum number of seconds between two upgrade checks
var checkInterval int64 = 3600 * 24 * 7

func shouldCheck(ctx context.LandsraadCtx) (bool, error) {
	if !ctx.EnableUpgradeCheck {
		return false, nil
	}

	db := ctx.DB

	var lastChecked int64
	err := database.GetSystem(db, consts.SystemLastUpgrade, &lastChecked)
	if errors.Cause(err) == sql.ErrNoRows {
		return true, nil
	} else if err != nil {
		return false, errors.Wrap(err, "getting last upgrade timestamp")
	}

	now := ctx.Clock.Now().Unix()

	return now-lastChecked > checkInterval, nil
}

func touchLastChecked(ctx context.LandsraadCtx) error {
	now := ctx.Clock.Now().Unix()

	err := database.UpsertSystem(ctx.DB, consts.SystemLastUpgrade, strconv.FormatInt(now, 10))
	if err != nil {
		return errors.Wrap(err, "updating last upgrade timestamp")
	}

	return nil
}

func fetchLatestTag(ctx context.LandsraadCtx) (string, error) {
	gh := github.NewClient(ctx.HTTPClient)

	release, _, err := gh.Repositories.GetLatestRelease(gocontext.Background(), "landsraad", "landsraad")
	if err != nil {
		return "", errors.Wrap(err, "fetching the latest release")
	}

	return release.GetTagName(), nil
}

// Check checks if a newer release of the companion exists and prints
// a notice. It runs at most once per check interval.
func Check(ctx context.LandsraadCtx) error {
	ok, err := shouldCheck(ctx)
	if err != nil {
		return errors.Wrap(err, "checking if upgrade check is due")
	}
	if !ok {
		return nil
	}

	tag, err := fetchLatestTag(ctx)
	if err != nil {
		return errors.Wrap(err, "getting the latest version")
	}

	if err := touchLastChecked(ctx); err != nil {
		return err
	}

	latest := strings.TrimPrefix(tag, "v")
	current := strings.TrimPrefix(ctx.Version, "v")

	if latest != "" && latest != current && current != "master" {
		log.Infof("a new version is available: %s (you have %s)\n", latest, current)
		fmt.Println("  visit https://github.com/landsraad/landsraad/releases to upgrade")
	}

	return nil
}
