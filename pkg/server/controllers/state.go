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
	"net/http"

	"github.com/landsraad/landsraad/pkg/server/app"
	"github.com/landsraad/landsraad/pkg/server/context"
)

// NewState creates a new State controller
func NewState(app *app.App) *State {
	return &State{app: app}
}

// State serves the per-user companion state document.
type State struct {
	app *app.App
}

// GetStateResp is the response from the state endpoint
type GetStateResp struct {
	State json.RawMessage `json:"state"`
}

// PutStatePayload is the payload for replacing the state document
type PutStatePayload struct {
	State json.RawMessage `json:"state"`
}

// V3Get handles GET /v3/state
func (s *State) V3Get(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	doc, ok, err := s.app.GetUserState(user.ID)
	if err != nil {
		handleJSONError(w, err, "getting state")
		return
	}
	if !ok {
		handleJSONError(w, app.ErrNotFound, "state not found")
		return
	}

	respondJSON(w, http.StatusOK, GetStateResp{State: doc})
}

// V3Put handles PUT /v3/state
func (s *State) V3Put(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())

	var payload PutStatePayload
	if err := parseRequestData(r, &payload); err != nil {
		handleJSONError(w, err, "parsing payload")
		return
	}

	if err := s.app.PutUserState(user.ID, payload.State); err != nil {
		handleJSONError(w, err, "putting state")
		return
	}

	respondJSON(w, http.StatusOK, resultResp{Result: "ok"})
}
