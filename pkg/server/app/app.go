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
	"github.com/landsraad/landsraad/pkg/clock"
	"github.com/landsraad/landsraad/pkg/server/database"
	"github.com/landsraad/landsraad/pkg/server/mailer"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var (
	// ErrEmptyDB is an error for missing database connection in the app configuration
	ErrEmptyDB = errors.New("No database connection was provided")
	// ErrEmptyClock is an error for missing clock in the app configuration
	ErrEmptyClock = errors.New("No clock was provided")
	// ErrEmptyWebURL is an error for missing WebURL content in the app configuration
	ErrEmptyWebURL = errors.New("No WebURL was provided")
	// ErrEmptyEmailBackend is an error for missing EmailBackend content in the app configuration
	ErrEmptyEmailBackend = errors.New("No EmailBackend was provided")
	// ErrEmptyUploadDir is an error for missing upload directory in the app configuration
	ErrEmptyUploadDir = errors.New("No upload directory was provided")
)

var (
	// ErrNotFound is an error for an entity that does not exist
	ErrNotFound = errors.New("not found")
	// ErrLoginInvalid is an error for invalid login credentials
	ErrLoginInvalid = errors.New("wrong email and password combination")
	// ErrEmailRequired is an error for a missing email
	ErrEmailRequired = errors.New("email is required")
	// ErrPasswordTooShort is an error for a password that is too short
	ErrPasswordTooShort = errors.New("password should be longer than 8 characters")
	// ErrDuplicateEmail is an error for an email that already has an account
	ErrDuplicateEmail = errors.New("email is already taken")
	// ErrInvalidStateDoc is an error for a state document that is not a JSON object
	ErrInvalidStateDoc = errors.New("state document is not a JSON object")
	// ErrInvalidSharedDoc is an error for a shared document that is not valid JSON
	ErrInvalidSharedDoc = errors.New("shared document is not valid JSON")
)

// App is an application context
type App struct {
	DB                  *gorm.DB
	Clock               clock.Clock
	EmailBackend        mailer.Backend
	WebURL              string
	AppEnv              string
	DisableRegistration bool
	Port                string
	DBPath              string
	UploadDir           string
	AdminEmail          string
}

// Validate validates the app configuration
func (a *App) Validate() error {
	if a.WebURL == "" {
		return ErrEmptyWebURL
	}
	if a.Clock == nil {
		return ErrEmptyClock
	}
	if a.EmailBackend == nil {
		return ErrEmptyEmailBackend
	}
	if a.DB == nil {
		return ErrEmptyDB
	}
	if a.UploadDir == "" {
		return ErrEmptyUploadDir
	}

	return nil
}

// IsAdmin checks if the given user is the configured guild admin
func (a *App) IsAdmin(user *database.User) bool {
	if user == nil || a.AdminEmail == "" {
		return false
	}

	return user.Email.Valid && user.Email.String == a.AdminEmail
}
