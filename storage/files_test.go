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

package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndRemove(t *testing.T) {
	store := NewFileStore(t.TempDir(), "/images/properties")

	url, err := store.Save("house.jpg", strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/images/properties/house.jpg", url)

	data, err := os.ReadFile(filepath.Join(store.Root(), "house.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg bytes", string(data))

	require.NoError(t, store.Remove(url))
	_, err = os.Stat(filepath.Join(store.Root(), "house.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestSaveRejectsPathTraversal(t *testing.T) {
	store := NewFileStore(t.TempDir(), "/images/properties")

	_, err := store.Save("../escape.jpg", strings.NewReader("x"))
	assert.Error(t, err)
	_, err = store.Save("", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestRemoveMissingFileIsNoError(t *testing.T) {
	store := NewFileStore(t.TempDir(), "/images/properties")
	assert.NoError(t, store.Remove("/images/properties/gone.jpg"))
}
