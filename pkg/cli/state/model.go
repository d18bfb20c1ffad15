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

// Package state defines the companion's tracked collections and the
// normalizers that reconcile untrusted snapshots against the canonical
// schema. Everything in this package is pure: no I/O, no clocks.
package state

import (
	"encoding/json"

	"github.com/google/uuid"
)

// NewID returns a unique identifier for a newly created item.
func NewID() string {
	return uuid.New().String()
}

// Todo is a single checklist entry. The same shape backs the shared
// to-do list, the personal to-do list and house swatches.
type Todo struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Material is a tracked resource with a target amount.
type Material struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Done   bool    `json:"done"`
}

// FarmItem is a thing to farm, optionally tagged with a source.
type FarmItem struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Source string `json:"source"`
	Done   bool   `json:"done"`
}

// Goal is a weekly house delivery goal.
type Goal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Required float64 `json:"required"`
	Done     bool    `json:"done"`
}

// House is one of the canonical landsraad houses along with the
// user's weekly progress against it.
type House struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Current Progress `json:"current"`
	Goals   []Goal   `json:"goals"`
	Pinned  bool     `json:"pinned"`
}

// Swatch is a placeable swatch reward checklist entry.
type Swatch struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Done bool   `json:"done"`
}

// Tool is an external companion tool link.
type Tool struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	URL   string `json:"url"`
	Notes string `json:"notes"`
}

// LocationEntry is the shared intel recorded for a house: where it
// spawns and an optional screenshot.
type LocationEntry struct {
	ImageURL    string `json:"imageUrl"`
	StoragePath string `json:"storagePath"`
	Notes       string `json:"notes"`
	MapLocation string `json:"mapLocation"`
}

// AppState is the per-user snapshot. SessionTodos mirrors the shared
// to-do collection so the app stays usable offline.
type AppState struct {
	ThemeMode    string     `json:"themeMode"`
	SessionTodos []Todo     `json:"sessionTodos"`
	Materials    []Material `json:"materials"`
	FarmItems    []FarmItem `json:"farmItems"`
	FarmSources  []string   `json:"farmSources"`
	GeneralTodos []Todo     `json:"generalTodos"`
	Houses       []House    `json:"landsraadHouses"`
	Swatches     []Swatch   `json:"houseSwatches"`
	TrackedOnly  bool       `json:"trackedOnlyMode"`
	Tools        []Tool     `json:"duneTools"`
}

// SharedContent is the global collection every signed-in user reads
// and admins write: house location intel plus the curated farm source
// and tool lists.
type SharedContent struct {
	Entries     map[string]LocationEntry `json:"entries"`
	FarmSources []string                 `json:"farm_sources"`
	Tools       []Tool                   `json:"dune_tools"`
}

// UnmarshalJSON decodes a todo leniently. Fields of the wrong type
// fall back to their zero value instead of failing the decode.
func (t *Todo) UnmarshalJSON(b []byte) error {
	raw := rawFields(b)
	t.ID = coerceString(raw["id"])
	t.Text = coerceString(raw["text"])
	t.Done = coerceBool(raw["done"])
	return nil
}

func (m *Material) UnmarshalJSON(b []byte) error {
	raw := rawFields(b)
	m.ID = coerceString(raw["id"])
	m.Name = coerceString(raw["name"])
	m.Amount = coerceNumber(raw["amount"])
	m.Done = coerceBool(raw["done"])
	return nil
}

func (f *FarmItem) UnmarshalJSON(b []byte) error {
	raw := rawFields(b)
	f.ID = coerceString(raw["id"])
	f.Name = coerceString(raw["name"])
	f.Source = coerceString(raw["source"])
	f.Done = coerceBool(raw["done"])
	return nil
}

func (g *Goal) UnmarshalJSON(b []byte) error {
	raw := rawFields(b)
	g.ID = coerceString(raw["id"])
	g.Name = coerceString(raw["name"])
	g.Required = coerceNumber(raw["required"])
	g.Done = coerceBool(raw["done"])
	return nil
}

func (h *House) UnmarshalJSON(b []byte) error {
	raw := rawFields(b)
	h.ID = coerceString(raw["id"])
	h.Name = coerceString(raw["name"])

	h.Current = Progress{}
	if cur, ok := raw["current"]; ok {
		// Progress.UnmarshalJSON never fails
		_ = json.Unmarshal(cur, &h.Current)
	}

	h.Goals = nil
	if goals, ok := raw["goals"]; ok {
		var parsed []Goal
		if err := json.Unmarshal(goals, &parsed); err == nil {
			h.Goals = parsed
		}
	}

	h.Pinned = coerceBool(raw["pinned"])
	return nil
}

func (s *Swatch) UnmarshalJSON(b []byte) error {
	raw := rawFields(b)
	s.ID = coerceString(raw["id"])
	s.Text = coerceString(raw["text"])
	s.Done = coerceBool(raw["done"])
	return nil
}

func (t *Tool) UnmarshalJSON(b []byte) error {
	raw := rawFields(b)
	t.ID = coerceString(raw["id"])
	t.Name = coerceString(raw["name"])
	t.URL = coerceString(raw["url"])
	t.Notes = coerceString(raw["notes"])
	return nil
}

func (l *LocationEntry) UnmarshalJSON(b []byte) error {
	raw := rawFields(b)
	l.ImageURL = coerceString(raw["imageUrl"])
	l.StoragePath = coerceString(raw["storagePath"])
	l.Notes = coerceString(raw["notes"])
	l.MapLocation = coerceString(raw["mapLocation"])
	return nil
}
