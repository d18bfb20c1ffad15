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

package client

import (
	"encoding/json"
	"io"

	"github.com/landsraad/landsraad/pkg/cli/context"
	"github.com/landsraad/landsraad/pkg/cli/state"
	"github.com/pkg/errors"
)

// notFound translates a 404 response into a found=false return.
func notFound(err error) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.IsNotFound()
}

// GetUserStateResp is the response from the get user state endpoint
type GetUserStateResp struct {
	State json.RawMessage `json:"state"`
}

// GetUserState fetches the signed-in user's state document. The
// second return is false when the user has no row yet.
func GetUserState(ctx context.LandsraadCtx) (json.RawMessage, bool, error) {
	res, err := doAuthorizedReq(ctx, "GET", "/v3/state", "", nil)
	if err != nil {
		if notFound(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "making the request")
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, false, errors.Wrap(err, "reading the response body")
	}

	var resp GetUserStateResp
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, false, errors.Wrap(err, "unmarshalling the payload")
	}

	return resp.State, true, nil
}

// PutUserStatePayload is the payload for the put user state endpoint
type PutUserStatePayload struct {
	State json.RawMessage `json:"state"`
}

// PutUserState replaces the signed-in user's state document.
func PutUserState(ctx context.LandsraadCtx, doc json.RawMessage) error {
	b, err := json.Marshal(PutUserStatePayload{State: doc})
	if err != nil {
		return errors.Wrap(err, "marshaling payload")
	}

	_, err = doAuthorizedReq(ctx, "PUT", "/v3/state", string(b), nil)
	if err != nil {
		return errors.Wrap(err, "making the request")
	}

	return nil
}

// SharedTodosResp is the response from the shared todos endpoint
type SharedTodosResp struct {
	Todos []state.Todo `json:"todos"`
}

// GetSharedTodos fetches the global shared to-do list. The second
// return is false when the row does not exist yet.
func GetSharedTodos(ctx context.LandsraadCtx) ([]state.Todo, bool, error) {
	res, err := doAuthorizedReq(ctx, "GET", "/v3/shared/todos", "", nil)
	if err != nil {
		if notFound(err) {
			return nil, false, nil
		}
		return nil, false, errors.Wrap(err, "making the request")
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, false, errors.Wrap(err, "reading the response body")
	}

	var resp SharedTodosResp
	if err = json.Unmarshal(body, &resp); err != nil {
		return nil, false, errors.Wrap(err, "unmarshalling the payload")
	}

	return resp.Todos, true, nil
}

// PutSharedTodos replaces the global shared to-do list.
func PutSharedTodos(ctx context.LandsraadCtx, todos []state.Todo) error {
	b, err := json.Marshal(SharedTodosResp{Todos: todos})
	if err != nil {
		return errors.Wrap(err, "marshaling payload")
	}

	_, err = doAuthorizedReq(ctx, "PUT", "/v3/shared/todos", string(b), nil)
	if err != nil {
		return errors.Wrap(err, "making the request")
	}

	return nil
}

// GetSharedContent fetches the global shared content document. The
// second return is false when the row does not exist yet.
func GetSharedContent(ctx context.LandsraadCtx) (state.SharedContent, bool, error) {
	var content state.SharedContent

	res, err := doAuthorizedReq(ctx, "GET", "/v3/shared/content", "", nil)
	if err != nil {
		if notFound(err) {
			return content, false, nil
		}
		return content, false, errors.Wrap(err, "making the request")
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return content, false, errors.Wrap(err, "reading the response body")
	}

	if err = json.Unmarshal(body, &content); err != nil {
		return content, false, errors.Wrap(err, "unmarshalling the payload")
	}

	return content, true, nil
}

// PutSharedContent replaces the global shared content document. The
// server accepts this only from the configured admin.
func PutSharedContent(ctx context.LandsraadCtx, content state.SharedContent) error {
	b, err := json.Marshal(content)
	if err != nil {
		return errors.Wrap(err, "marshaling payload")
	}

	_, err = doAuthorizedReq(ctx, "PUT", "/v3/shared/content", string(b), nil)
	if err != nil {
		return errors.Wrap(err, "making the request")
	}

	return nil
}
