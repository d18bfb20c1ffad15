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

	"github.com/landsraad/landsraad/pkg/server/app"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

// maxUploadBytes caps the size of an uploaded file
const maxUploadBytes = 10 << 20

// NewFiles creates a new Files controller
func NewFiles(app *app.App) *Files {
	return &Files{app: app}
}

// Files serves uploads of location screenshots
type Files struct {
	app *app.App
}

// UploadResp is the response from the file upload endpoint
type UploadResp struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

// V3Upload handles POST /v3/files/{bucket}
func (f *Files) V3Upload(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bucket := vars["bucket"]

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "file too large or malformed form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		handleJSONError(w, errors.Wrap(err, "reading upload"), "reading upload")
		return
	}

	path, url, err := f.app.SaveFile(bucket, header.Filename, data)
	if err != nil {
		handleJSONError(w, err, "saving file")
		return
	}

	respondJSON(w, http.StatusOK, UploadResp{Path: path, URL: url})
}

// V3Delete handles DELETE /v3/files/{bucket}/{filename}
func (f *Files) V3Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	if err := f.app.RemoveFile(vars["bucket"], vars["filename"]); err != nil {
		handleJSONError(w, err, "removing file")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
