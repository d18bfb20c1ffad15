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

package sync

import (
	"encoding/json"

	"github.com/landsraad/landsraad/pkg/cli/client"
	"github.com/landsraad/landsraad/pkg/cli/context"
	"github.com/landsraad/landsraad/pkg/cli/localstore"
	"github.com/landsraad/landsraad/pkg/cli/state"
)

type remoteUserState struct {
	ctx context.LandsraadCtx
}

func (r remoteUserState) Get() (json.RawMessage, bool, error) {
	return client.GetUserState(r.ctx)
}

func (r remoteUserState) Put(doc json.RawMessage) error {
	return client.PutUserState(r.ctx, doc)
}

type remoteSharedTodos struct {
	ctx context.LandsraadCtx
}

func (r remoteSharedTodos) Get() ([]state.Todo, bool, error) {
	return client.GetSharedTodos(r.ctx)
}

func (r remoteSharedTodos) Put(todos []state.Todo) error {
	return client.PutSharedTodos(r.ctx, todos)
}

type remoteSharedContent struct {
	ctx context.LandsraadCtx
}

func (r remoteSharedContent) Get() (state.SharedContent, bool, error) {
	return client.GetSharedContent(r.ctx)
}

func (r remoteSharedContent) Put(content state.SharedContent) error {
	return client.PutSharedContent(r.ctx, content)
}

// NewConfig wires an orchestrator config to the companion server and
// the local database from the runtime context.
func NewConfig(ctx context.LandsraadCtx) Config {
	return Config{
		Local:         localstore.New(ctx.DB),
		UserState:     remoteUserState{ctx},
		SharedTodos:   remoteSharedTodos{ctx},
		SharedContent: remoteSharedContent{ctx},
		IsAdmin:       ctx.IsAdmin(),
	}
}

// Open builds an orchestrator for the current runtime and hydrates it
// when a session exists. Signed-out runs operate purely locally.
func Open(ctx context.LandsraadCtx) (*Orchestrator, error) {
	c := NewConfig(ctx)
	c.Offline = ctx.SessionKey == ""

	o, err := New(c)
	if err != nil {
		return nil, err
	}

	if err := o.Hydrate(); err != nil {
		return nil, err
	}

	return o, nil
}
