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

// Package localstore persists companion documents in the local
// database so the app works fully offline. Each document is a JSON
// blob under a fixed key. Reads are forgiving: a missing or corrupt
// blob falls back to defaults instead of failing.
package localstore

import (
	"encoding/json"

	"github.com/landsraad/landsraad/pkg/cli/consts"
	"github.com/landsraad/landsraad/pkg/cli/database"
	"github.com/landsraad/landsraad/pkg/cli/state"
	"github.com/pkg/errors"
)

// Store is the local persistence adapter.
type Store struct {
	db *database.DB
}

// New returns a store backed by the given database.
func New(db *database.DB) *Store {
	return &Store{db: db}
}

// LoadSnapshot returns the saved per-user snapshot layered over the
// default state. The second return reports whether a usable snapshot
// existed.
func (s *Store) LoadSnapshot() (state.AppState, bool, error) {
	st := state.Default()

	raw, found, err := database.GetBlob(s.db, consts.BlobAppState)
	if err != nil {
		return st, false, errors.Wrap(err, "reading snapshot blob")
	}
	if !found {
		return st, false, nil
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		// corrupt blob, treat as absent
		return st, false, nil
	}

	st.Apply(raw)
	return st, true, nil
}

// SaveSnapshot overwrites the saved snapshot.
func (s *Store) SaveSnapshot(st state.AppState) error {
	raw, err := state.EncodeSnapshot(st)
	if err != nil {
		return err
	}

	if err := database.UpsertBlob(s.db, consts.BlobAppState, raw); err != nil {
		return errors.Wrap(err, "writing snapshot blob")
	}

	return nil
}

// LoadSharedTodosCache returns the cached shared to-do list, if any.
func (s *Store) LoadSharedTodosCache() ([]state.Todo, bool, error) {
	raw, found, err := database.GetBlob(s.db, consts.BlobSharedTodosCache)
	if err != nil {
		return nil, false, errors.Wrap(err, "reading shared todos cache")
	}
	if !found {
		return nil, false, nil
	}

	var todos []state.Todo
	if err := json.Unmarshal(raw, &todos); err != nil {
		return nil, false, nil
	}

	return todos, true, nil
}

// SaveSharedTodosCache overwrites the shared to-do cache.
func (s *Store) SaveSharedTodosCache(todos []state.Todo) error {
	raw, err := json.Marshal(todos)
	if err != nil {
		return errors.Wrap(err, "encoding shared todos cache")
	}

	if err := database.UpsertBlob(s.db, consts.BlobSharedTodosCache, raw); err != nil {
		return errors.Wrap(err, "writing shared todos cache")
	}

	return nil
}

func (s *Store) readDismissals() map[string]string {
	raw, found, err := database.GetBlob(s.db, consts.BlobResetWarningDismissals)
	if err != nil || !found {
		return map[string]string{}
	}

	var dismissals map[string]string
	if err := json.Unmarshal(raw, &dismissals); err != nil || dismissals == nil {
		return map[string]string{}
	}

	return dismissals
}

// ResetWarningDismissed reports whether the user dismissed the reset
// warning for the week identified by weekKey.
func (s *Store) ResetWarningDismissed(userID, weekKey string) bool {
	if userID == "" || weekKey == "" {
		return false
	}

	return s.readDismissals()[userID] == weekKey
}

// SetResetWarningDismissed records or clears a user's dismissal for
// the given week. An older week's dismissal is simply overwritten, so
// the warning returns every week.
func (s *Store) SetResetWarningDismissed(userID, weekKey string, dismissed bool) error {
	if userID == "" {
		return nil
	}

	dismissals := s.readDismissals()
	if dismissed {
		dismissals[userID] = weekKey
	} else {
		delete(dismissals, userID)
	}

	raw, err := json.Marshal(dismissals)
	if err != nil {
		return errors.Wrap(err, "encoding dismissals")
	}

	if err := database.UpsertBlob(s.db, consts.BlobResetWarningDismissals, raw); err != nil {
		return errors.Wrap(err, "writing dismissals")
	}

	return nil
}
