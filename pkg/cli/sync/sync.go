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

// Package sync reconciles the local snapshot with the three remote
// collections: the per-user state row, the shared to-do list and the
// shared content document.
package sync

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/landsraad/landsraad/pkg/cli/localstore"
	"github.com/landsraad/landsraad/pkg/cli/state"
	"github.com/pkg/errors"
)

// Debounce delays before a local edit is pushed to the server. Bursts
// of edits within the window coalesce into one write.
const (
	UserStateDelay = 700 * time.Millisecond
	SharedDelay    = 500 * time.Millisecond
)

// UserStateStore reads and writes the signed-in user's state row.
type UserStateStore interface {
	Get() (json.RawMessage, bool, error)
	Put(doc json.RawMessage) error
}

// SharedTodosStore reads and writes the global shared to-do list.
type SharedTodosStore interface {
	Get() ([]state.Todo, bool, error)
	Put(todos []state.Todo) error
}

// SharedContentStore reads and writes the global shared content
// document. Writes are rejected server-side for non-admins.
type SharedContentStore interface {
	Get() (state.SharedContent, bool, error)
	Put(content state.SharedContent) error
}

// Config holds the collaborators of an orchestrator. Zero delays fall
// back to the package defaults. Offline sessions never talk to the
// server; edits persist locally and sync on the next signed-in run.
type Config struct {
	Local          *localstore.Store
	UserState      UserStateStore
	SharedTodos    SharedTodosStore
	SharedContent  SharedContentStore
	IsAdmin        bool
	Offline        bool
	UserStateDelay time.Duration
	SharedDelay    time.Duration
}

// ErrNotAdmin is returned when a non-admin attempts to edit the
// shared content document.
var ErrNotAdmin = errors.New("only the configured admin can edit shared content")

// ErrClosed is returned when an operation is attempted on a closed
// orchestrator.
var ErrClosed = errors.New("sync session is closed")

// Orchestrator owns the in-memory snapshot for the duration of a
// session. It hydrates each collection from the server at most once,
// seeds a missing row at most once, and pushes local edits back on a
// debounce. A remote failure never blocks local work; it is recorded
// as an advisory and the session continues from the local cache.
type Orchestrator struct {
	c Config

	mu         sync.Mutex
	st         state.AppState
	todos      []state.Todo
	content    state.SharedContent
	advisories []string
	hydrated   bool
	closed     bool

	pushState   *debouncer
	pushTodos   *debouncer
	pushContent *debouncer
}

// New returns an orchestrator primed with the local snapshot. Call
// Hydrate to reconcile with the server.
func New(c Config) (*Orchestrator, error) {
	if c.UserStateDelay == 0 {
		c.UserStateDelay = UserStateDelay
	}
	if c.SharedDelay == 0 {
		c.SharedDelay = SharedDelay
	}

	o := &Orchestrator{c: c}

	st, _, err := c.Local.LoadSnapshot()
	if err != nil {
		return nil, errors.Wrap(err, "loading local snapshot")
	}
	o.st = st

	todos, found, err := c.Local.LoadSharedTodosCache()
	if err != nil {
		return nil, errors.Wrap(err, "loading shared todos cache")
	}
	if found {
		o.todos = todos
	} else {
		o.todos = st.SessionTodos
	}

	o.content = state.DefaultSharedContent()

	o.pushState = newDebouncer(c.UserStateDelay, o.doPushState)
	o.pushTodos = newDebouncer(c.SharedDelay, o.doPushTodos)
	o.pushContent = newDebouncer(c.SharedDelay, o.doPushContent)

	return o, nil
}

// Hydrate reconciles the three collections with the server. It runs
// at most once per session; later calls are no-ops. Remote failures
// do not fail the call. Each failed collection leaves an advisory and
// the session keeps its local copy.
func (o *Orchestrator) Hydrate() error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return ErrClosed
	}
	if o.hydrated {
		o.mu.Unlock()
		return nil
	}
	o.hydrated = true
	o.mu.Unlock()

	if o.c.Offline {
		return nil
	}

	o.hydrateUserState()
	o.hydrateSharedTodos()
	o.hydrateSharedContent()

	return nil
}

func (o *Orchestrator) hydrateUserState() {
	doc, found, err := o.c.UserState.Get()
	if err != nil {
		o.advise("could not fetch your state from the server: %v", err)
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !found {
		// First session on this account. Seed the row with the
		// local snapshot so other devices start from it.
		o.schedule(o.pushState)
		return
	}

	o.st.Apply(doc)
	if err := o.c.Local.SaveSnapshot(o.st); err != nil {
		o.advisories = append(o.advisories, fmt.Sprintf("could not save snapshot: %v", err))
	}
}

func (o *Orchestrator) hydrateSharedTodos() {
	todos, found, err := o.c.SharedTodos.Get()
	if err != nil {
		o.advise("could not fetch shared to-dos: %v", err)
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !found {
		o.schedule(o.pushTodos)
		return
	}

	o.todos = todos
	o.st.SessionTodos = todos
	if err := o.c.Local.SaveSharedTodosCache(todos); err != nil {
		o.advisories = append(o.advisories, fmt.Sprintf("could not cache shared to-dos: %v", err))
	}
	if err := o.c.Local.SaveSnapshot(o.st); err != nil {
		o.advisories = append(o.advisories, fmt.Sprintf("could not save snapshot: %v", err))
	}
}

func (o *Orchestrator) hydrateSharedContent() {
	content, found, err := o.c.SharedContent.Get()
	if err != nil {
		o.advise("could not fetch shared content: %v", err)
		return
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if !found {
		// Seed the document with the curated defaults. Only the
		// admin may write it, so others keep working from defaults.
		if o.c.IsAdmin {
			o.schedule(o.pushContent)
		}
		return
	}

	o.content = state.NormalizeSharedContent(content)
}

// State returns a copy of the current snapshot.
func (o *Orchestrator) State() state.AppState {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.st
}

// SharedTodos returns the current shared to-do list.
func (o *Orchestrator) SharedTodos() []state.Todo {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.todos
}

// SharedContent returns the current shared content document.
func (o *Orchestrator) SharedContent() state.SharedContent {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.content
}

// Advisories returns the non-fatal problems recorded so far.
func (o *Orchestrator) Advisories() []string {
	o.mu.Lock()
	defer o.mu.Unlock()

	out := make([]string, len(o.advisories))
	copy(out, o.advisories)
	return out
}

// Update mutates the snapshot, persists it locally and schedules a
// debounced push of the per-user row.
func (o *Orchestrator) Update(fn func(*state.AppState)) error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return ErrClosed
	}

	fn(&o.st)
	err := o.c.Local.SaveSnapshot(o.st)
	o.mu.Unlock()

	if err != nil {
		return errors.Wrap(err, "saving snapshot")
	}

	o.schedule(o.pushState)
	return nil
}

// UpdateSharedTodos mutates the shared to-do list, mirrors it into
// the snapshot and schedules a debounced push.
func (o *Orchestrator) UpdateSharedTodos(fn func([]state.Todo) []state.Todo) error {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return ErrClosed
	}

	o.todos = fn(o.todos)
	o.st.SessionTodos = o.todos

	if err := o.c.Local.SaveSharedTodosCache(o.todos); err != nil {
		o.mu.Unlock()
		return errors.Wrap(err, "caching shared to-dos")
	}
	err := o.c.Local.SaveSnapshot(o.st)
	o.mu.Unlock()

	if err != nil {
		return errors.Wrap(err, "saving snapshot")
	}

	o.schedule(o.pushTodos)
	o.schedule(o.pushState)
	return nil
}

// UpdateSharedContent mutates the shared content document and
// schedules a debounced push. Only the admin may call it.
func (o *Orchestrator) UpdateSharedContent(fn func(*state.SharedContent)) error {
	if !o.c.IsAdmin {
		return ErrNotAdmin
	}

	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return ErrClosed
	}

	fn(&o.content)
	o.content = state.NormalizeSharedContent(o.content)
	o.mu.Unlock()

	o.schedule(o.pushContent)
	return nil
}

// Flush pushes any pending writes immediately. Call it before the
// process exits so debounced edits are not lost.
func (o *Orchestrator) Flush() {
	o.pushState.Flush()
	o.pushTodos.Flush()
	o.pushContent.Flush()
}

// Close flushes pending writes and ends the session. Later operations
// return ErrClosed.
func (o *Orchestrator) Close() {
	o.Flush()

	o.mu.Lock()
	o.closed = true
	o.mu.Unlock()

	o.pushState.Cancel()
	o.pushTodos.Cancel()
	o.pushContent.Cancel()
}

// Abandon ends the session without pushing pending writes. Use it
// when the session key changed underneath a running command.
func (o *Orchestrator) Abandon() {
	o.mu.Lock()
	o.closed = true
	o.mu.Unlock()

	o.pushState.Cancel()
	o.pushTodos.Cancel()
	o.pushContent.Cancel()
}

func (o *Orchestrator) schedule(d *debouncer) {
	if o.c.Offline {
		return
	}

	d.Schedule()
}

// The push paths serialize under the mutex. Update mutates slice
// elements and map entries in place, so a shallow copy would still
// share backing storage with a marshal running off the debounce timer.
func (o *Orchestrator) doPushState() {
	o.mu.Lock()
	doc, err := state.EncodeRemote(o.st)
	o.mu.Unlock()

	if err != nil {
		o.advise("could not encode state: %v", err)
		return
	}

	if err := o.c.UserState.Put(doc); err != nil {
		o.advise("could not push your state to the server: %v", err)
	}
}

func (o *Orchestrator) doPushTodos() {
	o.mu.Lock()
	todos := append([]state.Todo(nil), o.todos...)
	o.mu.Unlock()

	if err := o.c.SharedTodos.Put(todos); err != nil {
		o.advise("could not push shared to-dos: %v", err)
	}
}

func (o *Orchestrator) doPushContent() {
	o.mu.Lock()
	content := copySharedContent(o.content)
	o.mu.Unlock()

	if err := o.c.SharedContent.Put(content); err != nil {
		o.advise("could not push shared content: %v", err)
	}
}

func copySharedContent(c state.SharedContent) state.SharedContent {
	out := state.SharedContent{
		FarmSources: append([]string(nil), c.FarmSources...),
		Tools:       append([]state.Tool(nil), c.Tools...),
	}
	if c.Entries != nil {
		out.Entries = make(map[string]state.LocationEntry, len(c.Entries))
		for name, entry := range c.Entries {
			out.Entries[name] = entry
		}
	}

	return out
}

// advise records an advisory. The caller must not hold the mutex.
func (o *Orchestrator) advise(format string, args ...interface{}) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.advisories = append(o.advisories, fmt.Sprintf(format, args...))
}
