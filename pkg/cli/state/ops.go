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
	"math"
	"strings"
)

// validAmount reports whether an amount passes the guard shared by
// materials and goals: finite and strictly positive.
func validAmount(amount float64) bool {
	return !math.IsNaN(amount) && !math.IsInf(amount, 0) && amount > 0
}

// CycleTheme advances the theme through its fixed rotation.
func (s *AppState) CycleTheme() {
	switch s.ThemeMode {
	case "dark":
		s.ThemeMode = "light"
	case "light":
		s.ThemeMode = "atreides"
	case "atreides":
		s.ThemeMode = "spice"
	default:
		s.ThemeMode = "dark"
	}
}

// ToggleTrackedOnly flips the persistent pinned-houses-only view and
// returns the new value.
func (s *AppState) ToggleTrackedOnly() bool {
	s.TrackedOnly = !s.TrackedOnly
	return s.TrackedOnly
}

func addTodo(items []Todo, text string) ([]Todo, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return items, false
	}

	return append([]Todo{{ID: NewID(), Text: trimmed}}, items...), true
}

func toggleTodo(items []Todo, id string) bool {
	for i := range items {
		if items[i].ID == id {
			items[i].Done = !items[i].Done
			return true
		}
	}

	return false
}

func removeTodo(items []Todo, id string) ([]Todo, bool) {
	for i := range items {
		if items[i].ID == id {
			return append(items[:i:i], items[i+1:]...), true
		}
	}

	return items, false
}

func editTodo(items []Todo, id, text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	for i := range items {
		if items[i].ID == id {
			items[i].Text = trimmed
			return true
		}
	}

	return false
}

// AddSessionTodo prepends an entry to the shared to-do list.
func (s *AppState) AddSessionTodo(text string) bool {
	items, ok := addTodo(s.SessionTodos, text)
	s.SessionTodos = items
	return ok
}

// ToggleSessionTodo flips an entry's done flag.
func (s *AppState) ToggleSessionTodo(id string) bool {
	return toggleTodo(s.SessionTodos, id)
}

// RemoveSessionTodo deletes an entry.
func (s *AppState) RemoveSessionTodo(id string) bool {
	items, ok := removeTodo(s.SessionTodos, id)
	s.SessionTodos = items
	return ok
}

// EditSessionTodo rewrites an entry's text.
func (s *AppState) EditSessionTodo(id, text string) bool {
	return editTodo(s.SessionTodos, id, text)
}

// AddGeneralTodo prepends an entry to the personal to-do list.
func (s *AppState) AddGeneralTodo(text string) bool {
	items, ok := addTodo(s.GeneralTodos, text)
	s.GeneralTodos = items
	return ok
}

// ToggleGeneralTodo flips an entry's done flag.
func (s *AppState) ToggleGeneralTodo(id string) bool {
	return toggleTodo(s.GeneralTodos, id)
}

// RemoveGeneralTodo deletes an entry.
func (s *AppState) RemoveGeneralTodo(id string) bool {
	items, ok := removeTodo(s.GeneralTodos, id)
	s.GeneralTodos = items
	return ok
}

// EditGeneralTodo rewrites an entry's text.
func (s *AppState) EditGeneralTodo(id, text string) bool {
	return editTodo(s.GeneralTodos, id, text)
}

// AddMaterial prepends a material. An empty name or a non-positive
// amount rejects the addition.
func (s *AppState) AddMaterial(name string, amount float64) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || !validAmount(amount) {
		return false
	}

	s.Materials = append([]Material{{ID: NewID(), Name: trimmed, Amount: amount}}, s.Materials...)
	return true
}

// ToggleMaterial flips a material's done flag.
func (s *AppState) ToggleMaterial(id string) bool {
	for i := range s.Materials {
		if s.Materials[i].ID == id {
			s.Materials[i].Done = !s.Materials[i].Done
			return true
		}
	}

	return false
}

// RemoveMaterial deletes a material.
func (s *AppState) RemoveMaterial(id string) bool {
	for i := range s.Materials {
		if s.Materials[i].ID == id {
			s.Materials = append(s.Materials[:i:i], s.Materials[i+1:]...)
			return true
		}
	}

	return false
}

// EditMaterial rewrites a material's name and amount under the same
// guard as AddMaterial.
func (s *AppState) EditMaterial(id, name string, amount float64) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" || !validAmount(amount) {
		return false
	}

	for i := range s.Materials {
		if s.Materials[i].ID == id {
			s.Materials[i].Name = trimmed
			s.Materials[i].Amount = amount
			return true
		}
	}

	return false
}

// AddFarmItem prepends a farm item. The name is required; the source
// is free-form and may be empty.
func (s *AppState) AddFarmItem(name, source string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}

	s.FarmItems = append([]FarmItem{{ID: NewID(), Name: trimmed, Source: strings.TrimSpace(source)}}, s.FarmItems...)
	return true
}

// ToggleFarmItem flips a farm item's done flag.
func (s *AppState) ToggleFarmItem(id string) bool {
	for i := range s.FarmItems {
		if s.FarmItems[i].ID == id {
			s.FarmItems[i].Done = !s.FarmItems[i].Done
			return true
		}
	}

	return false
}

// RemoveFarmItem deletes a farm item.
func (s *AppState) RemoveFarmItem(id string) bool {
	for i := range s.FarmItems {
		if s.FarmItems[i].ID == id {
			s.FarmItems = append(s.FarmItems[:i:i], s.FarmItems[i+1:]...)
			return true
		}
	}

	return false
}

// EditFarmItem rewrites a farm item's name and source.
func (s *AppState) EditFarmItem(id, name, source string) bool {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return false
	}

	for i := range s.FarmItems {
		if s.FarmItems[i].ID == id {
			s.FarmItems[i].Name = trimmed
			s.FarmItems[i].Source = strings.TrimSpace(source)
			return true
		}
	}

	return false
}

// AddFarmSource adds a source to the curated list.
func (s *AppState) AddFarmSource(source string) bool {
	trimmed := strings.TrimSpace(source)
	if trimmed == "" {
		return false
	}

	s.FarmSources = NormalizeFarmSources(append(s.FarmSources, trimmed))
	return true
}

// RemoveFarmSource drops a source from the curated list and clears it
// from any farm item that referenced it.
func (s *AppState) RemoveFarmSource(source string) {
	s.FarmSources = RemoveSource(s.FarmSources, source)

	for i := range s.FarmItems {
		if s.FarmItems[i].Source == source {
			s.FarmItems[i].Source = ""
		}
	}
}

// RemoveSource returns sources without the given entry.
func RemoveSource(sources []string, source string) []string {
	out := make([]string, 0, len(sources))
	for _, s := range sources {
		if s != source {
			out = append(out, s)
		}
	}

	return out
}

func (s *AppState) findHouse(name string) *House {
	canonical, ok := ResolveHouse(name)
	if !ok {
		return nil
	}

	for i := range s.Houses {
		if s.Houses[i].Name == canonical {
			return &s.Houses[i]
		}
	}

	return nil
}

// SetHouseCurrent sets a house's weekly progress.
func (s *AppState) SetHouseCurrent(name string, p Progress) bool {
	h := s.findHouse(name)
	if h == nil {
		return false
	}

	h.Current = p
	return true
}

// ToggleHousePin flips a house's pinned flag.
func (s *AppState) ToggleHousePin(name string) bool {
	h := s.findHouse(name)
	if h == nil {
		return false
	}

	h.Pinned = !h.Pinned
	return true
}

// AddGoal prepends a delivery goal to a house under the amount guard.
func (s *AppState) AddGoal(houseName, goalName string, required float64) bool {
	trimmed := strings.TrimSpace(goalName)
	if trimmed == "" || !validAmount(required) {
		return false
	}

	h := s.findHouse(houseName)
	if h == nil {
		return false
	}

	h.Goals = append([]Goal{{ID: NewID(), Name: trimmed, Required: required}}, h.Goals...)
	return true
}

// ToggleGoal flips a goal's done flag.
func (s *AppState) ToggleGoal(houseName, goalID string) bool {
	h := s.findHouse(houseName)
	if h == nil {
		return false
	}

	for i := range h.Goals {
		if h.Goals[i].ID == goalID {
			h.Goals[i].Done = !h.Goals[i].Done
			return true
		}
	}

	return false
}

// RemoveGoal deletes a goal from a house.
func (s *AppState) RemoveGoal(houseName, goalID string) bool {
	h := s.findHouse(houseName)
	if h == nil {
		return false
	}

	for i := range h.Goals {
		if h.Goals[i].ID == goalID {
			h.Goals = append(h.Goals[:i:i], h.Goals[i+1:]...)
			return true
		}
	}

	return false
}

// ResetWeek zeroes every house's progress and clears its goals. Pins
// survive the reset.
func (s *AppState) ResetWeek() {
	for i := range s.Houses {
		s.Houses[i].Current = Progress{}
		s.Houses[i].Goals = nil
	}
}

// AddSwatch prepends a custom swatch.
func (s *AppState) AddSwatch(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	s.Swatches = append([]Swatch{{ID: NewID(), Text: trimmed}}, s.Swatches...)
	return true
}

// ToggleSwatch flips a swatch's done flag.
func (s *AppState) ToggleSwatch(id string) bool {
	for i := range s.Swatches {
		if s.Swatches[i].ID == id {
			s.Swatches[i].Done = !s.Swatches[i].Done
			return true
		}
	}

	return false
}

// RemoveSwatch deletes a custom swatch. The canonical per-house
// swatches cannot be removed.
func (s *AppState) RemoveSwatch(id string) bool {
	for i := range s.Swatches {
		if s.Swatches[i].ID != id {
			continue
		}
		if IsDefaultSwatchText(s.Swatches[i].Text) {
			return false
		}

		s.Swatches = append(s.Swatches[:i:i], s.Swatches[i+1:]...)
		return true
	}

	return false
}

// AddTool appends a tool link. Name and url are required.
func (c *SharedContent) AddTool(name, url, notes string) bool {
	n := strings.TrimSpace(name)
	u := strings.TrimSpace(url)
	if n == "" || u == "" {
		return false
	}

	c.Tools = append(c.Tools, Tool{ID: NewID(), Name: n, URL: u, Notes: strings.TrimSpace(notes)})
	return true
}

// RemoveTool deletes a tool link.
func (c *SharedContent) RemoveTool(id string) bool {
	for i := range c.Tools {
		if c.Tools[i].ID == id {
			c.Tools = append(c.Tools[:i:i], c.Tools[i+1:]...)
			return true
		}
	}

	return false
}

func (c *SharedContent) entryFor(houseName string) (string, LocationEntry, bool) {
	canonical, ok := ResolveHouse(houseName)
	if !ok {
		return "", LocationEntry{}, false
	}

	if c.Entries == nil {
		c.Entries = DefaultLocationEntries()
	}

	return canonical, c.Entries[canonical], true
}

// SetLocationNotes updates the shared notes for a house.
func (c *SharedContent) SetLocationNotes(houseName, notes string) bool {
	name, entry, ok := c.entryFor(houseName)
	if !ok {
		return false
	}

	entry.Notes = notes
	c.Entries[name] = entry
	return true
}

// SetLocationMap updates the map label for a house. Labels outside
// the known set are rejected.
func (c *SharedContent) SetLocationMap(houseName, label string) bool {
	if !IsMapLocation(label) {
		return false
	}

	name, entry, ok := c.entryFor(houseName)
	if !ok {
		return false
	}

	entry.MapLocation = label
	c.Entries[name] = entry
	return true
}

// SetLocationImage points a house's entry at an uploaded screenshot.
func (c *SharedContent) SetLocationImage(houseName, imageURL, storagePath string) bool {
	name, entry, ok := c.entryFor(houseName)
	if !ok {
		return false
	}

	entry.ImageURL = imageURL
	entry.StoragePath = storagePath
	c.Entries[name] = entry
	return true
}
