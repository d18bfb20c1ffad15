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

package mailer

import (
	"strings"
	"testing"

	"github.com/landsraad/landsraad/pkg/assert"
)

func TestExecuteWelcome(t *testing.T) {
	T := NewTemplates()

	subject, body, err := T.Execute(EmailTypeWelcome, EmailKindText, WelcomeTmplData{
		AccountEmail: "paul@arrakis.example.com",
		BaseURL:      "http://example.com",
	})
	if err != nil {
		t.Fatalf("executing template: %v", err)
	}

	assert.Equal(t, subject, "Welcome to the Landsraad Companion!", "subject mismatch")

	if !strings.Contains(body, "paul@arrakis.example.com") {
		t.Errorf("body should contain the account email. got: %s", body)
	}
	if !strings.Contains(body, "http://example.com") {
		t.Errorf("body should contain the base url. got: %s", body)
	}
}

func TestExecuteUnknownTemplate(t *testing.T) {
	T := NewTemplates()

	_, _, err := T.Execute("bogus", EmailKindText, nil)
	if err == nil {
		t.Fatal("expected an error for an unknown template")
	}
}
