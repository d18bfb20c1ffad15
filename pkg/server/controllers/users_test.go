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
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/landsraad/landsraad/pkg/assert"
	"github.com/landsraad/landsraad/pkg/server/app"
	"github.com/landsraad/landsraad/pkg/server/database"
	"github.com/landsraad/landsraad/pkg/server/mailer"
	"github.com/landsraad/landsraad/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestV3Register(t *testing.T) {
	a := app.NewTest(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/api/v3/signup", `{"email":"paul@example.com","password":"oldsecret"}`)
	res := testutils.HTTPDo(t, req)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusCreated, "status mismatch")

	var resp SessionResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatal(errors.Wrap(err, "decoding response"))
	}

	if resp.Key == "" {
		t.Error("session key should be set")
	}
	if resp.UserID == "" {
		t.Error("user id should be set")
	}
	assert.Equal(t, resp.Email, "paul@example.com", "email mismatch")

	var userCount int64
	testutils.MustExec(t, a.DB.Model(database.User{}).Count(&userCount), "counting users")
	assert.Equal(t, userCount, int64(1), "user count mismatch")

	backend := a.EmailBackend.(*testutils.MockEmailbackendImplementation)
	assert.Equal(t, len(backend.Emails), 1, "email count mismatch")
	assert.Equal(t, backend.Emails[0].TemplateType, mailer.EmailTypeWelcome, "email type mismatch")
}

func TestV3Register_duplicateEmail(t *testing.T) {
	a := app.NewTest(t)
	testutils.SetupUserData(a.DB, "paul@example.com", "oldsecret")
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/api/v3/signup", `{"email":"paul@example.com","password":"newsecret"}`)
	res := testutils.HTTPDo(t, req)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusConflict, "status mismatch")
}

func TestV3Register_disabled(t *testing.T) {
	a := app.NewTest(t)
	a.DisableRegistration = true
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/api/v3/signup", `{"email":"paul@example.com","password":"oldsecret"}`)
	res := testutils.HTTPDo(t, req)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusNotFound, "signup route should not exist")
}

func TestV3Login(t *testing.T) {
	a := app.NewTest(t)
	user := testutils.SetupUserData(a.DB, "paul@example.com", "oldsecret")
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/api/v3/signin", `{"email":"paul@example.com","password":"oldsecret"}`)
	res := testutils.HTTPDo(t, req)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusOK, "status mismatch")

	var resp SessionResponse
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatal(errors.Wrap(err, "decoding response"))
	}

	assert.Equal(t, resp.UserID, user.UUID, "user id mismatch")
	assert.Equal(t, resp.Email, "paul@example.com", "email mismatch")

	var session database.Session
	testutils.MustExec(t, a.DB.Where("key = ?", resp.Key).First(&session), "finding session")
	assert.Equal(t, session.UserID, user.ID, "session user mismatch")
	assert.Equal(t, resp.ExpiresAt, session.ExpiresAt.Unix(), "expiry mismatch")
}

func TestV3Login_badCredentials(t *testing.T) {
	a := app.NewTest(t)
	testutils.SetupUserData(a.DB, "paul@example.com", "oldsecret")
	server := MustNewServer(t, &a)
	defer server.Close()

	testCases := []struct {
		name    string
		payload string
	}{
		{
			name:    "wrong password",
			payload: `{"email":"paul@example.com","password":"wrongpass"}`,
		},
		{
			name:    "nonexistent account",
			payload: `{"email":"feyd@example.com","password":"oldsecret"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutils.MakeReq(server.URL, "POST", "/api/v3/signin", tc.payload)
			res := testutils.HTTPDo(t, req)
			defer res.Body.Close()

			assert.Equal(t, res.StatusCode, http.StatusUnauthorized, "status mismatch")
		})
	}
}

func TestV3Logout(t *testing.T) {
	a := app.NewTest(t)
	user := testutils.SetupUserData(a.DB, "paul@example.com", "oldsecret")
	session := testutils.SetupSession(a.DB, user)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/api/v3/signout", "")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", session.Key))
	res := testutils.HTTPDo(t, req)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusNoContent, "status mismatch")

	var count int64
	testutils.MustExec(t, a.DB.Model(database.Session{}).Count(&count), "counting sessions")
	assert.Equal(t, count, int64(0), "session should have been deleted")
}

func TestV3Logout_withoutCredential(t *testing.T) {
	a := app.NewTest(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "POST", "/api/v3/signout", "")
	res := testutils.HTTPDo(t, req)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusNoContent, "status mismatch")
}
