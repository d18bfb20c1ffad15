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

// Package consts provides definitions of constants
package consts

var (
	// AppDirName is the name of the directory containing companion files
	AppDirName = "landsraad"
	// DBFileName is the filename for the companion SQLite database
	DBFileName = "landsraad.db"
	// ConfigFilename is the name of the config file
	ConfigFilename = "landsraadrc"
	// TmpContentFileBase is the base for the filename for a temporary content
	TmpContentFileBase = "LANDSRAAD_TMPCONTENT"
	// TmpContentFileExt is the extension for the temporary content file
	TmpContentFileExt = "md"

	// BlobAppState is the blob key for the per-user snapshot
	BlobAppState = "dune_landsraad_companion_v1"
	// BlobSharedTodosCache is the blob key for the shared to-do fallback cache
	BlobSharedTodosCache = "dune_landsraad_shared_todos_cache_v1"
	// BlobResetWarningDismissals is the blob key for per-user reset warning
	// dismissals, keyed by week
	BlobResetWarningDismissals = "dune_landsraad_reset_warning_dismissals_v1"

	// SystemSessionKey is the session key
	SystemSessionKey = "session_token"
	// SystemSessionKeyExpiry is the timestamp at which the session key will expire
	SystemSessionKeyExpiry = "session_token_expiry"
	// SystemSessionUserID is the id of the signed-in user
	SystemSessionUserID = "session_user_id"
	// SystemSessionEmail is the email of the signed-in user
	SystemSessionEmail = "session_email"
	// SystemLastUpgrade is the timestamp at which the system most recently checked for an upgrade
	SystemLastUpgrade = "last_upgrade"

	// SharedKey is the row key shared collections live under
	SharedKey = "global"
	// ImageBucket is the object storage bucket for location screenshots
	ImageBucket = "landsraad-location-images"
)
