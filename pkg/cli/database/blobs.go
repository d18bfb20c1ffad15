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

package database

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"
)

// GetBlob fetches the blob under the given key. The second return is
// false when no blob exists.
func GetBlob(db *DB, key string) ([]byte, bool, error) {
	var value []byte
	err := db.QueryRow("SELECT value FROM blobs WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "getting blob for %s", key)
	}

	return value, true, nil
}

// UpsertBlob overwrites the blob under the given key.
func UpsertBlob(db *DB, key string, value []byte) error {
	_, err := db.Exec(`INSERT INTO blobs (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().Unix())
	if err != nil {
		return errors.Wrapf(err, "upserting blob for %s", key)
	}

	return nil
}

// DeleteBlob removes the blob under the given key.
func DeleteBlob(db *DB, key string) error {
	if _, err := db.Exec("DELETE FROM blobs WHERE key = ?", key); err != nil {
		return errors.Wrapf(err, "deleting blob for %s", key)
	}

	return nil
}
