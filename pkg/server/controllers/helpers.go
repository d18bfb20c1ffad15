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
	"io"
	"net/http"

	"github.com/landsraad/landsraad/pkg/server/app"
	"github.com/landsraad/landsraad/pkg/server/database"
	"github.com/landsraad/landsraad/pkg/server/log"
	"github.com/pkg/errors"
)

// maxBodyBytes caps the request body size for JSON endpoints
const maxBodyBytes = 1 << 20

// parseRequestData decodes the JSON request body into the given value
func parseRequestData(r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		return errors.Wrap(err, "decoding payload")
	}

	return nil
}

// readBody reads the raw request body
func readBody(r *http.Request) ([]byte, error) {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	b, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(err, "reading body")
	}

	return b, nil
}

// statusCodeForError maps an application error to an HTTP status code
func statusCodeForError(err error) int {
	cause := errors.Cause(err)

	switch cause {
	case app.ErrNotFound:
		return http.StatusNotFound
	case app.ErrLoginInvalid:
		return http.StatusUnauthorized
	case app.ErrDuplicateEmail:
		return http.StatusConflict
	case app.ErrEmailRequired,
		app.ErrPasswordTooShort,
		app.ErrInvalidStateDoc,
		app.ErrInvalidSharedDoc,
		app.ErrUnknownBucket,
		app.ErrUnsupportedFileType,
		app.ErrInvalidFilePath:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// handleJSONError logs the error and responds with a status code
// derived from the error. Client errors echo the message; server
// errors do not.
func handleJSONError(w http.ResponseWriter, err error, msg string) {
	statusCode := statusCodeForError(err)

	if statusCode >= 500 {
		log.WithFields(log.Fields{
			"statusCode": statusCode,
			"error":      err,
		}).Error(msg)
		http.Error(w, http.StatusText(statusCode), statusCode)
		return
	}

	http.Error(w, errors.Cause(err).Error(), statusCode)
}

// respondJSON writes the JSON-encoding of the given value
func respondJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ErrorWrap(err, "encoding response")
	}
}

// respondRawJSON writes a document that is already JSON-encoded
func respondRawJSON(w http.ResponseWriter, statusCode int, doc []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if _, err := w.Write(doc); err != nil {
		log.ErrorWrap(err, "writing response")
	}
}

// resultResp is a minimal JSON acknowledgement for write endpoints
type resultResp struct {
	Result string `json:"result"`
}

// SessionResponse is the JSON response for a newly issued session
type SessionResponse struct {
	Key       string `json:"key"`
	ExpiresAt int64  `json:"expires_at"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
}

func respondWithSession(w http.ResponseWriter, statusCode int, session *database.Session, user *database.User) {
	resp := SessionResponse{
		Key:       session.Key,
		ExpiresAt: session.ExpiresAt.Unix(),
		UserID:    user.UUID,
		Email:     user.Email.String,
	}

	respondJSON(w, statusCode, resp)
}
