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

package app

import (
	"encoding/json"
	"errors"

	"github.com/landsraad/landsraad/pkg/server/database"
	pkgErrors "github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetSharedDoc returns the guild-wide document stored under the given
// key. The second return is false when the document does not exist.
func (a *App) GetSharedDoc(key string) (json.RawMessage, bool, error) {
	var row database.SharedDoc
	err := a.DB.Where("key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, pkgErrors.Wrapf(err, "finding shared doc %s", key)
	}

	return json.RawMessage(row.Doc), true, nil
}

// PutSharedDoc stores the guild-wide document under the given key,
// replacing any previous document.
func (a *App) PutSharedDoc(key string, doc json.RawMessage) error {
	if !json.Valid(doc) {
		return ErrInvalidSharedDoc
	}

	row := database.SharedDoc{
		Key: key,
		Doc: string(doc),
	}
	err := a.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"doc", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return pkgErrors.Wrapf(err, "upserting shared doc %s", key)
	}

	return nil
}
