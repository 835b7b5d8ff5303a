/*
 * Copyright 2025 inmobilia.
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

// Package storage keeps uploaded property images on the local filesystem and
// hands out URL paths relative to the server root.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/inmobilia/realestate/utils"
)

var log = utils.NewLogger("STORAGE")

// FileStore saves files under a root directory and maps them to URLs below a
// fixed prefix, e.g. /images/properties/<name>.
type FileStore struct {
	root      string
	urlPrefix string
}

// NewFileStore creates a store rooted at dir, serving files under urlPrefix.
func NewFileStore(dir, urlPrefix string) *FileStore {
	return &FileStore{root: dir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

// Root returns the directory files are stored under.
func (s *FileStore) Root() string { return s.root }

// Save writes the reader's content under the given file name and returns the
// URL path the file is served from. The name must be a bare file name.
func (s *FileStore) Save(name string, r io.Reader) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}
	dst, err := os.Create(filepath.Join(s.root, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, r); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}
	return s.urlPrefix + "/" + name, nil
}

// Remove deletes the file behind a URL previously returned by Save. A file
// that is already gone is not an error.
func (s *FileStore) Remove(url string) error {
	name := path.Base(url)
	if name == "." || name == "/" {
		return fmt.Errorf("invalid file url %q", url)
	}
	err := os.Remove(filepath.Join(s.root, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if os.IsNotExist(err) {
		log.Warnf("remove %s: file already gone", name)
	}
	return nil
}
