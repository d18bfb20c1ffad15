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
	"io"
	"net/http"
	"testing"

	"github.com/landsraad/landsraad/pkg/assert"
	"github.com/landsraad/landsraad/pkg/server/app"
	"github.com/landsraad/landsraad/pkg/server/testutils"
	"github.com/pkg/errors"
)

func TestV3SharedTodos(t *testing.T) {
	a := app.NewTest(t)
	user := testutils.SetupUserData(a.DB, "paul@example.com", "oldsecret")
	server := MustNewServer(t, &a)
	defer server.Close()

	t.Run("missing", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "GET", "/api/v3/shared/todos", "")
		res := testutils.HTTPAuthDo(t, a.DB, req, user)
		defer res.Body.Close()

		assert.Equal(t, res.StatusCode, http.StatusNotFound, "status mismatch")
	})

	doc := `{"todos":[{"id":"todo-1","text":"Deliver 40 plastanium ingots","done":false}]}`

	t.Run("put", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "PUT", "/api/v3/shared/todos", doc)
		res := testutils.HTTPAuthDo(t, a.DB, req, user)
		defer res.Body.Close()

		assert.Equal(t, res.StatusCode, http.StatusOK, "status mismatch")
	})

	t.Run("get returns the stored doc", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "GET", "/api/v3/shared/todos", "")
		res := testutils.HTTPAuthDo(t, a.DB, req, user)
		defer res.Body.Close()

		assert.Equal(t, res.StatusCode, http.StatusOK, "status mismatch")
		assert.Equal(t, res.Header.Get("Content-Type"), "application/json", "content type mismatch")

		body, err := io.ReadAll(res.Body)
		if err != nil {
			t.Fatal(errors.Wrap(err, "reading body"))
		}

		assert.Equal(t, string(body), doc, "body mismatch")
	})
}

func TestV3PutSharedTodos_invalidJSON(t *testing.T) {
	a := app.NewTest(t)
	user := testutils.SetupUserData(a.DB, "paul@example.com", "oldsecret")
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "PUT", "/api/v3/shared/todos", "{not json")
	res := testutils.HTTPAuthDo(t, a.DB, req, user)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusBadRequest, "status mismatch")
}

func TestV3PutSharedContent(t *testing.T) {
	a := app.NewTest(t)
	a.AdminEmail = "irulan@example.com"
	admin := testutils.SetupUserData(a.DB, "irulan@example.com", "oldsecret")
	member := testutils.SetupUserData(a.DB, "paul@example.com", "oldsecret")
	server := MustNewServer(t, &a)
	defer server.Close()

	doc := `{"locations":[{"id":"loc-1","name":"Spice field delta"}],"updated_at":1756700000}`

	t.Run("member is forbidden", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "PUT", "/api/v3/shared/content", doc)
		res := testutils.HTTPAuthDo(t, a.DB, req, member)
		defer res.Body.Close()

		assert.Equal(t, res.StatusCode, http.StatusForbidden, "status mismatch")
	})

	t.Run("admin can write", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "PUT", "/api/v3/shared/content", doc)
		res := testutils.HTTPAuthDo(t, a.DB, req, admin)
		defer res.Body.Close()

		assert.Equal(t, res.StatusCode, http.StatusOK, "status mismatch")
	})

	t.Run("member can read", func(t *testing.T) {
		req := testutils.MakeReq(server.URL, "GET", "/api/v3/shared/content", "")
		res := testutils.HTTPAuthDo(t, a.DB, req, member)
		defer res.Body.Close()

		assert.Equal(t, res.StatusCode, http.StatusOK, "status mismatch")

		body, err := io.ReadAll(res.Body)
		if err != nil {
			t.Fatal(errors.Wrap(err, "reading body"))
		}

		assert.Equal(t, string(body), doc, "body mismatch")
	})
}
