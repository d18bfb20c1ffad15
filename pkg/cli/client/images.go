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
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/landsraad/landsraad/pkg/cli/consts"
	"github.com/landsraad/landsraad/pkg/cli/context"
	"github.com/pkg/errors"
)

// ImageStore is the object storage collaborator for location
// screenshots. Implementations upload a blob, yield a stable storage
// path plus a public URL, and remove blobs by path.
type ImageStore interface {
	Upload(filename string, data []byte) (path string, publicURL string, err error)
	Remove(path string) error
}

// UploadImageResp is the response from the file upload endpoint
type UploadImageResp struct {
	Path string `json:"path"`
	URL  string `json:"url"`
}

type httpImageStore struct {
	ctx context.LandsraadCtx
}

// NewImageStore returns an image store backed by the companion server.
func NewImageStore(ctx context.LandsraadCtx) ImageStore {
	return &httpImageStore{ctx: ctx}
}

func (s *httpImageStore) Upload(filename string, data []byte) (string, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return "", "", errors.Wrap(err, "creating form file")
	}
	if _, err := part.Write(data); err != nil {
		return "", "", errors.Wrap(err, "writing form file")
	}
	if err := w.Close(); err != nil {
		return "", "", errors.Wrap(err, "closing multipart writer")
	}

	path := fmt.Sprintf("/v3/files/%s", consts.ImageBucket)
	req, err := getReq(s.ctx, path, "POST", "")
	if err != nil {
		return "", "", errors.Wrap(err, "getting request")
	}
	req.Body = io.NopCloser(&buf)
	req.ContentLength = int64(buf.Len())
	req.Header.Set("Content-Type", w.FormDataContentType())

	hc := getHTTPClient(s.ctx, nil)
	res, err := hc.Do(req)
	if err != nil {
		return "", "", errors.Wrap(err, "making http request")
	}
	defer res.Body.Close()

	if err := checkRespErr(res); err != nil {
		return "", "", errors.Wrap(err, "server responded with an error")
	}

	var resp UploadImageResp
	if err := json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return "", "", errors.Wrap(err, "decoding payload")
	}

	return resp.Path, resp.URL, nil
}

func (s *httpImageStore) Remove(path string) error {
	reqPath := fmt.Sprintf("/v3/files/%s/%s", consts.ImageBucket, url.PathEscape(path))

	opts := requestOptions{ExpectedContentType: &contentTypeNone}
	res, err := doAuthorizedReq(s.ctx, "DELETE", reqPath, "", &opts)
	if err != nil {
		return errors.Wrap(err, "making the request")
	}
	if res.StatusCode != http.StatusNoContent && res.StatusCode != http.StatusOK {
		return errors.Errorf("unexpected status %d", res.StatusCode)
	}

	return nil
}
