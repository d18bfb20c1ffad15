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
	"encoding/json"
	"time"
)

// NullString is a nullable string column that serializes to JSON as a
// plain string
type NullString struct {
	sql.NullString
}

// ToNullString builds a valid NullString from the given string
func ToNullString(s string) NullString {
	return NullString{sql.NullString{String: s, Valid: true}}
}

// MarshalJSON implements json.Marshaler
func (s NullString) MarshalJSON() ([]byte, error) {
	if !s.Valid {
		return []byte("null"), nil
	}

	return json.Marshal(s.String)
}

// Model is the base model definition
type Model struct {
	ID        int       `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// User is a model for a user
type User struct {
	Model
	UUID        string     `json:"uuid" gorm:"type:text;index"`
	Email       NullString `gorm:"uniqueIndex"`
	Password    NullString `json:"-"`
	LastLoginAt *time.Time `json:"-"`
}

// Session represents a user session
type Session struct {
	Model
	UserID     int    `gorm:"index"`
	Key        string `gorm:"index"`
	LastUsedAt time.Time
	ExpiresAt  time.Time
}

// StateDoc is a per-user companion state document. The document body
// is opaque JSON produced by the client.
type StateDoc struct {
	Model
	UserID int    `gorm:"uniqueIndex"`
	Doc    string `gorm:"type:text"`
}

// SharedDoc is a guild-wide document keyed by kind. Every user reads
// and writes the same row.
type SharedDoc struct {
	Model
	Key string `gorm:"uniqueIndex;type:text"`
	Doc string `gorm:"type:text"`
}
