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

package context

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/landsraad/landsraad/pkg/assert"
	"github.com/landsraad/landsraad/pkg/cli/consts"
)

func assertDirsExist(t *testing.T, paths Paths) {
	configDir := filepath.Join(paths.Config, consts.AppDirName)
	info, err := os.Stat(configDir)
	assert.Equal(t, err, nil, "config dir should exist")
	assert.Equal(t, info.IsDir(), true, "config should be a directory")

	dataDir := filepath.Join(paths.Data, consts.AppDirName)
	info, err = os.Stat(dataDir)
	assert.Equal(t, err, nil, "data dir should exist")
	assert.Equal(t, info.IsDir(), true, "data should be a directory")

	cacheDir := filepath.Join(paths.Cache, consts.AppDirName)
	info, err = os.Stat(cacheDir)
	assert.Equal(t, err, nil, "cache dir should exist")
	assert.Equal(t, info.IsDir(), true, "cache should be a directory")
}

func TestInitDirs(t *testing.T) {
	tmpDir := t.TempDir()

	paths := Paths{
		Config: filepath.Join(tmpDir, "config"),
		Data:   filepath.Join(tmpDir, "data"),
		Cache:  filepath.Join(tmpDir, "cache"),
	}

	err := InitDirs(paths)
	assert.Equal(t, err, nil, "InitDirs should succeed")
	assertDirsExist(t, paths)

	// idempotent
	err = InitDirs(paths)
	assert.Equal(t, err, nil, "InitDirs should succeed when dirs already exist")
	assertDirsExist(t, paths)
}

func TestIsAdmin(t *testing.T) {
	testCases := []struct {
		name     string
		ctx      LandsraadCtx
		expected bool
	}{
		{
			name:     "matching email",
			ctx:      LandsraadCtx{Email: "chani@sietch.org", AdminEmail: "chani@sietch.org"},
			expected: true,
		},
		{
			name:     "case insensitive",
			ctx:      LandsraadCtx{Email: "Chani@Sietch.org", AdminEmail: "chani@sietch.org"},
			expected: true,
		},
		{
			name:     "different email",
			ctx:      LandsraadCtx{Email: "stilgar@sietch.org", AdminEmail: "chani@sietch.org"},
			expected: false,
		},
		{
			name:     "no admin configured",
			ctx:      LandsraadCtx{Email: "chani@sietch.org"},
			expected: false,
		},
		{
			name:     "signed out",
			ctx:      LandsraadCtx{AdminEmail: "chani@sietch.org"},
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ctx.IsAdmin(), tc.expected, "result mismatch")
		})
	}
}
