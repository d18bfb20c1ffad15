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
	"github.com/landsraad/landsraad/pkg/server/context"
	"github.com/landsraad/landsraad/pkg/server/database"
)

// NewShared creates a new Shared controller
func NewShared(app *app.App) *Shared {
	return &Shared{app: app}
}

// Shared serves the guild-wide documents that every signed-in user
// shares. The curated content document is writable by the admin only.
type Shared struct {
	app *app.App
}

func (s *Shared) get(w http.ResponseWriter, r *http.Request, key string) {
	doc, ok, err := s.app.GetSharedDoc(key)
	if err != nil {
		handleJSONError(w, err, "getting shared doc")
		return
	}
	if !ok {
		handleJSONError(w, app.ErrNotFound, "shared doc not found")
		return
	}

	respondRawJSON(w, http.StatusOK, doc)
}

func (s *Shared) put(w http.ResponseWriter, r *http.Request, key string) {
	body, err := readBody(r)
	if err != nil {
		handleJSONError(w, err, "reading payload")
		return
	}

	if err := s.app.PutSharedDoc(key, body); err != nil {
		handleJSONError(w, err, "putting shared doc")
		return
	}

	respondJSON(w, http.StatusOK, resultResp{Result: "ok"})
}

// V3GetTodos handles GET /v3/shared/todos
func (s *Shared) V3GetTodos(w http.ResponseWriter, r *http.Request) {
	s.get(w, r, database.SharedDocTodos)
}

// V3PutTodos handles PUT /v3/shared/todos
func (s *Shared) V3PutTodos(w http.ResponseWriter, r *http.Request) {
	s.put(w, r, database.SharedDocTodos)
}

// V3GetContent handles GET /v3/shared/content
func (s *Shared) V3GetContent(w http.ResponseWriter, r *http.Request) {
	s.get(w, r, database.SharedDocContent)
}

// V3PutContent handles PUT /v3/shared/content
func (s *Shared) V3PutContent(w http.ResponseWriter, r *http.Request) {
	user := context.User(r.Context())
	if !s.app.IsAdmin(user) {
		http.Error(w, "only the guild admin can update the curated content", http.StatusForbidden)
		return
	}

	s.put(w, r, database.SharedDocContent)
}
