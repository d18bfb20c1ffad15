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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/landsraad/landsraad/pkg/assert"
	"github.com/landsraad/landsraad/pkg/cli/consts"
	"github.com/landsraad/landsraad/pkg/cli/database"
	"github.com/landsraad/landsraad/pkg/cli/state"
	"github.com/landsraad/landsraad/pkg/cli/testutils"
)

var binaryName = "test-landsraad"

// setupTestEnv creates a unique test directory for parallel test execution
func setupTestEnv(t *testing.T) (string, testutils.RunCmdOptions) {
	testDir := t.TempDir()
	opts := testutils.RunCmdOptions{
		Env: []string{
			fmt.Sprintf("XDG_CONFIG_HOME=%s", testDir),
			fmt.Sprintf("XDG_DATA_HOME=%s", testDir),
			fmt.Sprintf("XDG_CACHE_HOME=%s", testDir),
		},
	}
	return testDir, opts
}

func loadSnapshot(t *testing.T, testDir string) state.AppState {
	t.Helper()

	dbPath := filepath.Join(testDir, consts.AppDirName, consts.DBFileName)
	db := testutils.MustOpenDatabase(t, dbPath)
	defer db.Close()

	data, found, err := database.GetBlob(db, consts.BlobAppState)
	if err != nil {
		t.Fatalf("reading snapshot blob: %s", err)
	}
	if !found {
		t.Fatal("no snapshot blob found")
	}

	st := state.Default()
	st.Apply(data)
	return st
}

func TestMain(m *testing.M) {
	if _, err := os.Stat(binaryName); os.IsNotExist(err) {
		fmt.Printf("%s binary not found. skipping the binary tests.\n", binaryName)
		os.Exit(0)
	}

	os.Exit(m.Run())
}

func TestMaterialFlow(t *testing.T) {
	t.Parallel()
	testDir, opts := setupTestEnv(t)

	seeded := len(state.Default().Materials)
	testutils.RunCmd(t, opts, binaryName, "material", "add", "Titanium Ore", "200")

	st := loadSnapshot(t, testDir)
	assert.Equal(t, len(st.Materials), seeded+1, "material count mismatch")
	assert.Equal(t, st.Materials[0].Name, "Titanium Ore", "material name mismatch")
	assert.Equal(t, st.Materials[0].Amount, float64(200), "material amount mismatch")

	testutils.RunCmd(t, opts, binaryName, "material", "done", st.Materials[0].ID)

	st = loadSnapshot(t, testDir)
	assert.Equal(t, st.Materials[0].Done, true, "material should be done")

	testutils.RunCmd(t, opts, binaryName, "material", "rm", st.Materials[0].ID)

	st = loadSnapshot(t, testDir)
	assert.Equal(t, len(st.Materials), seeded, "material should be removed")
}

func TestPersonalTodoFlow(t *testing.T) {
	t.Parallel()
	testDir, opts := setupTestEnv(t)

	seeded := len(state.Default().GeneralTodos)
	testutils.RunCmd(t, opts, binaryName, "todo", "add", "--personal", "respec skill tree")

	st := loadSnapshot(t, testDir)
	assert.Equal(t, len(st.GeneralTodos), seeded+1, "todo count mismatch")
	assert.Equal(t, st.GeneralTodos[0].Text, "respec skill tree", "todo text mismatch")

	testutils.RunCmd(t, opts, binaryName, "todo", "done", "--personal", st.GeneralTodos[0].ID)

	st = loadSnapshot(t, testDir)
	assert.Equal(t, st.GeneralTodos[0].Done, true, "todo should be done")
}

func TestHouseRoster(t *testing.T) {
	t.Parallel()
	testDir, opts := setupTestEnv(t)

	// short names without the "House " prefix resolve too
	testutils.RunCmd(t, opts, binaryName, "house", "current", "hagal", "3500")
	testutils.RunCmd(t, opts, binaryName, "house", "pin", "Ecaz")

	st := loadSnapshot(t, testDir)
	assert.Equal(t, len(st.Houses), len(state.AllHouses), "house roster size mismatch")

	for _, h := range st.Houses {
		switch h.Name {
		case "House Hagal":
			assert.Equal(t, h.Current.Unset, false, "Hagal progress should be set")
			assert.Equal(t, h.Current.Value, float64(3500), "Hagal progress mismatch")
		case "House Ecaz":
			assert.Equal(t, h.Pinned, true, "Ecaz should be pinned")
		}
	}
}

func TestFarmSourceRemoveCascade(t *testing.T) {
	t.Parallel()
	testDir, opts := setupTestEnv(t)

	testutils.RunCmd(t, opts, binaryName, "farm", "source", "add", "Sietch Vendor")
	testutils.RunCmd(t, opts, binaryName, "farm", "add", "Spice Sand", "--source", "Sietch Vendor")

	testutils.MustWaitCmd(t, opts, testutils.ConfirmRemoveSource, binaryName, "farm", "source", "rm", "Sietch Vendor")

	st := loadSnapshot(t, testDir)
	for _, s := range st.FarmSources {
		assert.NotEqual(t, s, "Sietch Vendor", "source should be removed")
	}
	assert.Equal(t, len(st.FarmItems), len(state.Default().FarmItems)+1, "farm item should survive")
	assert.Equal(t, st.FarmItems[0].Source, "", "farm item should be untagged")
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	testDir, opts := setupTestEnv(t)

	testutils.RunCmd(t, opts, binaryName, "material", "add", "Stravidium Mass", "50")

	backupPath := filepath.Join(testDir, "backup.json")
	testutils.RunCmd(t, opts, binaryName, "export", "-o", backupPath)

	raw, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("reading backup: %s", err)
	}

	var backup state.Backup
	testutils.MustUnmarshalJSON(t, raw, &backup)
	assert.Equal(t, backup.Version, 1, "backup version mismatch")
	assert.Equal(t, backup.App, "Dune Awakening: Landsraad Companion", "backup app mismatch")

	// import into a fresh environment
	otherDir, otherOpts := setupTestEnv(t)
	testutils.MustWaitCmd(t, otherOpts, testutils.ConfirmImport, binaryName, "import", backupPath)

	st := loadSnapshot(t, otherDir)
	assert.Equal(t, len(st.Materials), len(state.Default().Materials)+1, "imported material count mismatch")
	assert.Equal(t, st.Materials[0].Name, "Stravidium Mass", "imported material name mismatch")
}

func TestImportDryRunDoesNotApply(t *testing.T) {
	t.Parallel()
	testDir, opts := setupTestEnv(t)

	doc := map[string]interface{}{
		"themeMode": "spice",
		"materials": []map[string]interface{}{
			{"id": "m1", "name": "Plastanium", "amount": 70, "done": false},
		},
	}
	b, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshalling fixture: %s", err)
	}

	backupPath := filepath.Join(testDir, "backup.json")
	if err := os.WriteFile(backupPath, b, 0644); err != nil {
		t.Fatalf("writing fixture: %s", err)
	}

	// seed a snapshot so there is a blob to compare against
	testutils.RunCmd(t, opts, binaryName, "theme")
	testutils.RunCmd(t, opts, binaryName, "import", "--dry-run", backupPath)

	st := loadSnapshot(t, testDir)
	for _, m := range st.Materials {
		assert.NotEqual(t, m.Name, "Plastanium", "dry run should not apply the backup")
	}
	assert.NotEqual(t, st.ThemeMode, "spice", "dry run should not change the theme")
}

func TestResetWeekKeepsPins(t *testing.T) {
	t.Parallel()
	testDir, opts := setupTestEnv(t)

	testutils.RunCmd(t, opts, binaryName, "house", "pin", "Ecaz")
	testutils.RunCmd(t, opts, binaryName, "house", "current", "Ecaz", "900")
	testutils.RunCmd(t, opts, binaryName, "house", "goal", "add", "Ecaz", "deliver plastanium", "7000")

	testutils.MustWaitCmd(t, opts, testutils.ConfirmResetWeek, binaryName, "house", "reset-week")

	st := loadSnapshot(t, testDir)
	for _, h := range st.Houses {
		if h.Name != "House Ecaz" {
			continue
		}
		assert.Equal(t, h.Pinned, true, "pin should survive the reset")
		assert.Equal(t, h.Current, state.ProgressOf(0), "progress should be zeroed")
		assert.Equal(t, len(h.Goals), 0, "goals should be cleared")
	}
}

func TestStatusPrintsWeekKey(t *testing.T) {
	t.Parallel()
	_, opts := setupTestEnv(t)

	output := testutils.MustWaitCmd(t, opts, func(stdout io.Reader, stdin io.WriteCloser) error {
		return nil
	}, binaryName, "status")

	if !strings.Contains(output, "week key:") {
		t.Errorf("status output should contain the week key. got: %s", output)
	}
}
