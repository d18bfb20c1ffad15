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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/landsraad/landsraad/pkg/server/helpers"
	"github.com/pkg/errors"
)

// BucketLocationImages is the bucket that stores location screenshots
const BucketLocationImages = "landsraad-location-images"

var (
	// ErrUnknownBucket is an error for a file bucket that is not served
	ErrUnknownBucket = errors.New("unknown bucket")
	// ErrUnsupportedFileType is an error for a file extension that is not accepted
	ErrUnsupportedFileType = errors.New("unsupported file type")
	// ErrInvalidFilePath is an error for a stored file path that is malformed
	ErrInvalidFilePath = errors.New("invalid file path")
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

func validateBucket(bucket string) error {
	if bucket != BucketLocationImages {
		return ErrUnknownBucket
	}

	return nil
}

// SaveFile stores the given blob in a bucket under a generated name.
// It returns the stored name and the public URL the file is served at.
func (a *App) SaveFile(bucket, filename string, data []byte) (string, string, error) {
	if err := validateBucket(bucket); err != nil {
		return "", "", err
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExts[ext] {
		return "", "", ErrUnsupportedFileType
	}

	uuid, err := helpers.GenUUID()
	if err != nil {
		return "", "", errors.Wrap(err, "generating file name")
	}
	name := uuid + ext

	dir := filepath.Join(a.UploadDir, bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", "", errors.Wrap(err, "creating bucket directory")
	}

	if err := os.WriteFile(filepath.Join(dir, name), data, 0644); err != nil {
		return "", "", errors.Wrap(err, "writing file")
	}

	url := fmt.Sprintf("%s/files/%s/%s", a.WebURL, bucket, name)

	return name, url, nil
}

// RemoveFile deletes the stored file with the given name from a
// bucket. Removing a file that does not exist is not an error.
func (a *App) RemoveFile(bucket, name string) error {
	if err := validateBucket(bucket); err != nil {
		return err
	}

	// Stored names are flat. Anything that resolves outside the
	// bucket directory is rejected.
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return ErrInvalidFilePath
	}

	err := os.Remove(filepath.Join(a.UploadDir, bucket, name))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing file")
	}

	return nil
}
