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

package state

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// BackupApp identifies backups written by this application.
const BackupApp = "Dune Awakening: Landsraad Companion"

// Backup is the export wrapper around a snapshot.
type Backup struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`
	App        string    `json:"app"`
	Data       AppState  `json:"data"`
}

// NewBackup wraps a snapshot for export.
func NewBackup(s AppState, now time.Time) Backup {
	return Backup{
		Version:    1,
		ExportedAt: now.UTC(),
		App:        BackupApp,
		Data:       s,
	}
}

// Apply merges a raw snapshot document into s, one field at a time.
// A field applies only when it is present and of the expected shape;
// anything missing or malformed leaves the corresponding field of s
// untouched. Collections with canonical schemas are normalized on the
// way in. Apply never fails: a document that is not an object at all
// is a no-op.
func (s *AppState) Apply(raw []byte) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return
	}

	var theme string
	if v, ok := doc["themeMode"]; ok && json.Unmarshal(v, &theme) == nil {
		s.ThemeMode = theme
	} else if v, ok := doc["isDark"]; ok {
		// snapshots from before theme modes carried a boolean
		var isDark bool
		if json.Unmarshal(v, &isDark) == nil {
			if isDark {
				s.ThemeMode = "dark"
			} else {
				s.ThemeMode = "light"
			}
		}
	}

	var sessionTodos []Todo
	if applyArray(doc, "sessionTodos", &sessionTodos) {
		s.SessionTodos = sessionTodos
	}

	var materials []Material
	if applyArray(doc, "materials", &materials) {
		s.Materials = materials
	}

	var farmItems []FarmItem
	if applyArray(doc, "farmItems", &farmItems) {
		s.FarmItems = farmItems
	}

	var farmSources []string
	if applyArray(doc, "farmSources", &farmSources) {
		s.FarmSources = NormalizeFarmSources(farmSources)
	}

	var generalTodos []Todo
	if applyArray(doc, "generalTodos", &generalTodos) {
		s.GeneralTodos = generalTodos
	}

	var houses []House
	if applyArray(doc, "landsraadHouses", &houses) {
		s.Houses = NormalizeHouses(houses)
	}

	var swatches []Swatch
	if applyArray(doc, "houseSwatches", &swatches) {
		s.Swatches = NormalizeSwatches(swatches)
	}

	var trackedOnly bool
	if v, ok := doc["trackedOnlyMode"]; ok && json.Unmarshal(v, &trackedOnly) == nil {
		s.TrackedOnly = trackedOnly
	}

	var tools []Tool
	if applyArray(doc, "duneTools", &tools) {
		s.Tools = NormalizeTools(tools)
	}
}

func applyArray(doc map[string]json.RawMessage, key string, dst interface{}) bool {
	v, ok := doc[key]
	if !ok {
		return false
	}

	return json.Unmarshal(v, dst) == nil
}

// UnwrapBackup extracts the snapshot document from an import payload.
// It accepts either the export wrapper or a bare snapshot object.
func UnwrapBackup(raw []byte) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return nil, errors.New("invalid backup format")
	}

	if data, ok := doc["data"]; ok {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(data, &inner); err == nil && inner != nil {
			return data, nil
		}
	}

	return raw, nil
}

// EncodeSnapshot serializes a snapshot for storage.
func EncodeSnapshot(s AppState) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, errors.Wrap(err, "encoding snapshot")
	}

	return b, nil
}

// EncodeRemote serializes the fields of a snapshot that belong in the
// per-user remote row. The shared to-do mirror and the tool list are
// owned by the shared collections and stay local.
func EncodeRemote(s AppState) ([]byte, error) {
	doc := map[string]interface{}{
		"themeMode":       s.ThemeMode,
		"materials":       s.Materials,
		"farmItems":       s.FarmItems,
		"farmSources":     s.FarmSources,
		"generalTodos":    s.GeneralTodos,
		"landsraadHouses": s.Houses,
		"houseSwatches":   s.Swatches,
		"trackedOnlyMode": s.TrackedOnly,
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "encoding remote snapshot")
	}

	return b, nil
}
