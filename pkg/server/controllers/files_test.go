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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/landsraad/landsraad/pkg/assert"
	"github.com/landsraad/landsraad/pkg/server/app"
	"github.com/landsraad/landsraad/pkg/server/testutils"
	"github.com/pkg/errors"
)

func makeUploadReq(t *testing.T, endpoint, bucket, filename string, content []byte) *http.Request {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(errors.Wrap(err, "creating form file"))
	}
	if _, err := part.Write(content); err != nil {
		t.Fatal(errors.Wrap(err, "writing form file"))
	}
	if err := mw.Close(); err != nil {
		t.Fatal(errors.Wrap(err, "closing multipart writer"))
	}

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/api/v3/files/%s", endpoint, bucket), &buf)
	if err != nil {
		t.Fatal(errors.Wrap(err, "constructing http request"))
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return req
}

func TestV3Upload(t *testing.T) {
	a := app.NewTest(t)
	user := testutils.SetupUserData(a.DB, "paul@example.com", "oldsecret")
	server := MustNewServer(t, &a)
	defer server.Close()

	content := []byte("fake png bytes")
	req := makeUploadReq(t, server.URL, app.BucketLocationImages, "spice-field.png", content)
	res := testutils.HTTPAuthDo(t, a.DB, req, user)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusOK, "status mismatch")

	var resp UploadResp
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		t.Fatal(errors.Wrap(err, "decoding response"))
	}

	if !strings.HasSuffix(resp.Path, ".png") {
		t.Errorf("path should keep the extension, got %s", resp.Path)
	}
	if !strings.HasPrefix(resp.URL, a.WebURL+"/files/") {
		t.Errorf("url should be under the public file root, got %s", resp.URL)
	}

	saved, err := os.ReadFile(filepath.Join(a.UploadDir, app.BucketLocationImages, filepath.Base(resp.Path)))
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading saved file"))
	}
	assert.DeepEqual(t, saved, content, "saved content mismatch")
}

func TestV3Upload_unknownBucket(t *testing.T) {
	a := app.NewTest(t)
	user := testutils.SetupUserData(a.DB, "paul@example.com", "oldsecret")
	server := MustNewServer(t, &a)
	defer server.Close()

	req := makeUploadReq(t, server.URL, "not-a-bucket", "spice-field.png", []byte("data"))
	res := testutils.HTTPAuthDo(t, a.DB, req, user)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusBadRequest, "status mismatch")
}

func TestV3Upload_unauthenticated(t *testing.T) {
	a := app.NewTest(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	req := makeUploadReq(t, server.URL, app.BucketLocationImages, "spice-field.png", []byte("data"))
	res := testutils.HTTPDo(t, req)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusUnauthorized, "status mismatch")
}

func TestV3DeleteFile(t *testing.T) {
	a := app.NewTest(t)
	user := testutils.SetupUserData(a.DB, "paul@example.com", "oldsecret")
	server := MustNewServer(t, &a)
	defer server.Close()

	name, _, err := a.SaveFile(app.BucketLocationImages, "spice-field.png", []byte("data"))
	if err != nil {
		t.Fatal(errors.Wrap(err, "saving fixture file"))
	}

	req := testutils.MakeReq(server.URL, "DELETE", fmt.Sprintf("/api/v3/files/%s/%s", app.BucketLocationImages, filepath.Base(name)), "")
	res := testutils.HTTPAuthDo(t, a.DB, req, user)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusNoContent, "status mismatch")

	if _, err := os.Stat(filepath.Join(a.UploadDir, app.BucketLocationImages, filepath.Base(name))); !os.IsNotExist(err) {
		t.Errorf("file should have been removed, stat err: %v", err)
	}
}

func TestV3ServeFile(t *testing.T) {
	a := app.NewTest(t)
	server := MustNewServer(t, &a)
	defer server.Close()

	name, _, err := a.SaveFile(app.BucketLocationImages, "spice-field.png", []byte("public bytes"))
	if err != nil {
		t.Fatal(errors.Wrap(err, "saving fixture file"))
	}

	req := testutils.MakeReq(server.URL, "GET", fmt.Sprintf("/files/%s/%s", app.BucketLocationImages, filepath.Base(name)), "")
	res := testutils.HTTPDo(t, req)
	defer res.Body.Close()

	assert.Equal(t, res.StatusCode, http.StatusOK, "status mismatch")

	body, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading body"))
	}
	assert.Equal(t, string(body), "public bytes", "body mismatch")
}
