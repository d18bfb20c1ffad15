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

// GetUserState returns the companion state document for the given
// user. The second return is false when no document has been stored.
func (a *App) GetUserState(userID int) (json.RawMessage, bool, error) {
	var row database.StateDoc
	err := a.DB.Where("user_id = ?", userID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	} else if err != nil {
		return nil, false, pkgErrors.Wrap(err, "finding state doc")
	}

	return json.RawMessage(row.Doc), true, nil
}

// PutUserState stores the companion state document for the given
// user, replacing any previous document.
func (a *App) PutUserState(userID int, doc json.RawMessage) error {
	var probe map[string]interface{}
	if err := json.Unmarshal(doc, &probe); err != nil {
		return ErrInvalidStateDoc
	}

	row := database.StateDoc{
		UserID: userID,
		Doc:    string(doc),
	}
	err := a.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"doc", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return pkgErrors.Wrap(err, "upserting state doc")
	}

	return nil
}
