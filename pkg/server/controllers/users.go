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

package controllers

import (
	"net/http"

	"github.com/landsraad/landsraad/pkg/server/app"
	"github.com/landsraad/landsraad/pkg/server/log"
	mw "github.com/landsraad/landsraad/pkg/server/middleware"
	pkgErrors "github.com/pkg/errors"
)

// NewUsers creates a new Users controller
func NewUsers(app *app.App) *Users {
	return &Users{app: app}
}

// Users is a user controller.
type Users struct {
	app *app.App
}

// CredentialsForm is the JSON payload for signup and signin
type CredentialsForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// V3Register handles POST /v3/signup
func (u *Users) V3Register(w http.ResponseWriter, r *http.Request) {
	var form CredentialsForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	user, err := u.app.CreateUser(form.Email, form.Password)
	if err != nil {
		handleJSONError(w, err, "creating user")
		return
	}

	if err := u.app.SendWelcomeEmail(form.Email); err != nil {
		log.ErrorWrap(err, "sending welcome email")
	}

	session, err := u.app.SignIn(&user)
	if err != nil {
		handleJSONError(w, err, "signing in")
		return
	}

	respondWithSession(w, http.StatusCreated, session, &user)
}

// V3Login handles POST /v3/signin
func (u *Users) V3Login(w http.ResponseWriter, r *http.Request) {
	var form CredentialsForm
	if err := parseRequestData(r, &form); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	user, err := u.app.Authenticate(form.Email, form.Password)
	if err != nil {
		// Treat a nonexistent account the same as a bad password
		if pkgErrors.Cause(err) == app.ErrNotFound {
			err = app.ErrLoginInvalid
		}
		handleJSONError(w, err, "authenticating")
		return
	}

	session, err := u.app.SignIn(user)
	if err != nil {
		handleJSONError(w, err, "signing in")
		return
	}

	respondWithSession(w, http.StatusOK, session, user)
}

// V3Logout handles POST /v3/signout
func (u *Users) V3Logout(w http.ResponseWriter, r *http.Request) {
	key, err := mw.GetCredential(r)
	if err != nil {
		handleJSONError(w, err, "getting credentials")
		return
	}

	if key != "" {
		if err := u.app.DeleteSession(key); err != nil {
			handleJSONError(w, err, "deleting session")
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
