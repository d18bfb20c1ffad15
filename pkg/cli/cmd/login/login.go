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

package login

import (
	"net/url"
	"strconv"

	"github.com/landsraad/landsraad/pkg/cli/client"
	"github.com/landsraad/landsraad/pkg/cli/consts"
	"github.com/landsraad/landsraad/pkg/cli/context"
	"github.com/landsraad/landsraad/pkg/cli/database"
	"github.com/landsraad/landsraad/pkg/cli/infra"
	"github.com/landsraad/landsraad/pkg/cli/log"
	"github.com/landsraad/landsraad/pkg/cli/ui"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  landsraad login`

var apiEndpointFlag string

// NewCmd returns a new login command
func NewCmd(ctx context.LandsraadCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Login to the companion server",
		Example: example,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVar(&apiEndpointFlag, "apiEndpoint", "", "API endpoint to connect to (defaults to value in config)")

	return cmd
}

// getServerDisplayURL derives the user-facing URL of the server from
// the configured api endpoint.
func getServerDisplayURL(ctx context.LandsraadCtx) string {
	u, err := url.Parse(ctx.APIEndpoint)
	if err != nil {
		return ""
	}
	if u.Scheme == "" || u.Host == "" {
		return ""
	}

	u.Path = ""
	return u.String()
}

// SaveSession records a session in the local database so later runs
// are authenticated.
func SaveSession(ctx context.LandsraadCtx, resp client.SigninResponse) error {
	db := ctx.DB
	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning a transaction")
	}

	if err := database.UpsertSystem(tx, consts.SystemSessionKey, resp.Key); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "inserting session key")
	}
	if err := database.UpsertSystem(tx, consts.SystemSessionKeyExpiry, strconv.FormatInt(resp.ExpiresAt, 10)); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "inserting session key expiry")
	}
	if err := database.UpsertSystem(tx, consts.SystemSessionUserID, resp.UserID); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "inserting session user id")
	}
	if err := database.UpsertSystem(tx, consts.SystemSessionEmail, resp.Email); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "inserting session email")
	}

	return tx.Commit()
}

// Do prompts for credentials and signs in
func Do(ctx context.LandsraadCtx) error {
	var email, password string

	if displayURL := getServerDisplayURL(ctx); displayURL != "" {
		log.Infof("logging in to %s\n", displayURL)
	}

	if err := ui.PromptInput("email", &email); err != nil {
		return errors.Wrap(err, "getting email input")
	}
	if email == "" {
		return errors.New("Email is empty")
	}

	if err := ui.PromptPassword("password", &password); err != nil {
		return errors.Wrap(err, "getting password input")
	}
	if password == "" {
		return errors.New("Password is empty")
	}

	resp, err := client.Signin(ctx, email, password)
	if err != nil {
		return errors.Wrap(err, "requesting login")
	}

	if err := SaveSession(ctx, resp); err != nil {
		return errors.Wrap(err, "saving session")
	}

	return nil
}

func newRun(ctx context.LandsraadCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if apiEndpointFlag != "" {
			ctx.APIEndpoint = apiEndpointFlag
		}

		err := Do(ctx)
		if errors.Cause(err) == client.ErrInvalidLogin {
			log.Error("wrong login\n")
			return nil
		} else if err != nil {
			return errors.Wrap(err, "logging in")
		}

		log.Success("logged in\n")

		return nil
	}
}
