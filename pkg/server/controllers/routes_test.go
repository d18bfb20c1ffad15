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

func TestHealth(t *testing.T) {
	a := app.NewTest(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := testutils.MakeReq(server.URL, "GET", "/health", "")
	res := testutils.HTTPDo(t, req)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusOK, "status mismatch")

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading body"))
	}
	assert.Equal(t, string(body), "ok", "body mismatch")
}

func TestUnsupportedAPIVersions(t *testing.T) {
	a := app.NewTest(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	testCases := []string{
		"/api/v1/sync",
		"/api/v2/state",
	}

	for _, tc := range testCases {
		t.Run(tc, func(t *testing.T) {
			req := testutils.MakeReq(server.URL, "GET", tc, "")
			res := testutils.HTTPDo(t, req)
			defer res.Body.Close()

			assert.Equal(t, res.StatusCode, http.StatusGone, "status mismatch")
		})
	}
}

func TestNewRouter_invalidApp(t *testing.T) {
	a := app.NewTest(t)
	a.WebURL = ""

	_, err := NewServer(&a)
	if err == nil {
		t.Fatal("expected an error for an invalid app")
	}
}
