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

package localstore

import (
	"testing"

	"github.com/landsraad/landsraad/pkg/assert"
	"github.com/landsraad/landsraad/pkg/cli/consts"
	"github.com/landsraad/landsraad/pkg/cli/database"
	"github.com/landsraad/landsraad/pkg/cli/state"
)

func TestSnapshotRoundTrip(t *testing.T) {
	db := database.InitTestMemoryDB(t)
	store := New(db)

	st, found, err := store.LoadSnapshot()
	assert.Equal(t, err, nil, "unexpected error")
	assert.Equal(t, found, false, "empty store reported a snapshot")
	assert.Equal(t, len(st.Houses), len(state.AllHouses), "default snapshot missing houses")

	st.AddMaterial("Plasteel", 300)
	st.SetHouseCurrent("House Ecaz", state.ProgressOf(4200))

	if err := store.SaveSnapshot(st); err != nil {
		t.Fatal(err)
	}

	loaded, found, err := store.LoadSnapshot()
	assert.Equal(t, err, nil, "unexpected error")
	assert.Equal(t, found, true, "saved snapshot not found")
	assert.Equal(t, loaded.Materials[0].Name, "Plasteel", "material lost")

	for _, h := range loaded.Houses {
		if h.Name == "House Ecaz" {
			assert.Equal(t, h.Current, state.ProgressOf(4200), "house progress lost")
		}
	}
}

func TestLoadSnapshot_corrupt(t *testing.T) {
	db := database.InitTestMemoryDB(t)
	store := New(db)

	if err := database.UpsertBlob(db, consts.BlobAppState, []byte("{invalid")); err != nil {
		t.Fatal(err)
	}

	st, found, err := store.LoadSnapshot()
	assert.Equal(t, err, nil, "unexpected error")
	assert.Equal(t, found, false, "corrupt snapshot reported found")
	assert.Equal(t, len(st.Houses), len(state.AllHouses), "defaults not returned")
}

func TestSharedTodosCache(t *testing.T) {
	db := database.InitTestMemoryDB(t)
	store := New(db)

	_, found, err := store.LoadSharedTodosCache()
	assert.Equal(t, err, nil, "unexpected error")
	assert.Equal(t, found, false, "empty cache reported found")

	todos := []state.Todo{{ID: "t1", Text: "Water the deathstill", Done: false}}
	if err := store.SaveSharedTodosCache(todos); err != nil {
		t.Fatal(err)
	}

	loaded, found, err := store.LoadSharedTodosCache()
	assert.Equal(t, err, nil, "unexpected error")
	assert.Equal(t, found, true, "cache not found")
	assert.DeepEqual(t, loaded, todos, "cache mismatch")
}

func TestResetWarningDismissals(t *testing.T) {
	db := database.InitTestMemoryDB(t)
	store := New(db)

	week1 := "2025-06-10T04:00:00Z"
	week2 := "2025-06-17T04:00:00Z"

	assert.Equal(t, store.ResetWarningDismissed("u1", week1), false, "fresh store reported dismissal")

	if err := store.SetResetWarningDismissed("u1", week1, true); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, store.ResetWarningDismissed("u1", week1), true, "dismissal not recorded")
	assert.Equal(t, store.ResetWarningDismissed("u2", week1), false, "dismissal leaked across users")
	assert.Equal(t, store.ResetWarningDismissed("u1", week2), false, "dismissal leaked across weeks")

	if err := store.SetResetWarningDismissed("u1", week1, false); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, store.ResetWarningDismissed("u1", week1), false, "dismissal not cleared")
}
