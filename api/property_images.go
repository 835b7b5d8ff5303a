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

package api

import (
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/inmobilia/realestate/service"
	"github.com/inmobilia/realestate/storage"
)

// maxUploadSize bounds the multipart form held in memory per upload.
const maxUploadSize = 32 << 20

type PropertyImagesHandler struct {
	images *service.PropertyImageService
	store  *storage.FileStore
}

func NewPropertyImagesHandler(images *service.PropertyImageService, store *storage.FileStore) *PropertyImagesHandler {
	return &PropertyImagesHandler{images: images, store: store}
}

func (h *PropertyImagesHandler) Routes(r chi.Router) {
	r.Post("/{propertyId}", h.upload)
	r.Get("/{imageId}", h.getByID)
	r.Put("/{imageId}", h.replace)
	r.Delete("/{imageId}", h.remove)
	r.Get("/property/{propertyId}", h.listByProperty)
}

// upload stores the multipart "file" part on disk and attaches its URL to the
// property. If the property turns out not to exist the stored file is removed
// again so no orphan remains.
func (h *PropertyImagesHandler) upload(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := parseUUID(chi.URLParam(r, "propertyId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	file, header, err := h.formFile(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "multipart field 'file' is required")
		return
	}
	defer file.Close()

	name := uuid.New().String() + filepath.Ext(header.Filename)
	url, err := h.store.Save(name, file)
	if err != nil {
		log.Errorf("store upload: %v", err)
		writeError(w, http.StatusInternalServerError, "could not store file")
		return
	}

	image, err := h.images.Add(r.Context(), propertyID, url)
	if err != nil {
		h.discard(url)
		writeServiceError(w, err)
		return
	}
	if image == nil {
		h.discard(url)
		writeError(w, http.StatusNotFound, "property not found")
		return
	}
	writeJSON(w, http.StatusCreated, image)
}

// replace updates an image record either from a multipart "file" re-upload or
// from a plain form field "newUrl" pointing at an already stored location.
func (h *PropertyImagesHandler) replace(w http.ResponseWriter, r *http.Request) {
	imageID, ok := parseUUID(chi.URLParam(r, "imageId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid image id")
		return
	}
	file, header, err := h.formFile(r)
	if err != nil {
		h.replaceURL(w, r, imageID)
		return
	}
	defer file.Close()

	existing, err := h.images.GetByID(r.Context(), imageID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if existing == nil {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}

	name := uuid.New().String() + filepath.Ext(header.Filename)
	url, err := h.store.Save(name, file)
	if err != nil {
		log.Errorf("store upload: %v", err)
		writeError(w, http.StatusInternalServerError, "could not store file")
		return
	}

	updated, err := h.images.UpdateURL(r.Context(), imageID, url)
	if err != nil {
		h.discard(url)
		writeServiceError(w, err)
		return
	}
	if updated == nil {
		h.discard(url)
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	h.discard(existing.URL)
	writeJSON(w, http.StatusOK, updated)
}

// replaceURL rewrites only the stored URL. The previous file is kept, since
// the new URL may point anywhere.
func (h *PropertyImagesHandler) replaceURL(w http.ResponseWriter, r *http.Request, imageID uuid.UUID) {
	newURL := r.FormValue("newUrl")
	if newURL == "" {
		writeError(w, http.StatusBadRequest, "multipart field 'file' or form field 'newUrl' is required")
		return
	}
	updated, err := h.images.UpdateURL(r.Context(), imageID, newURL)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PropertyImagesHandler) remove(w http.ResponseWriter, r *http.Request) {
	imageID, ok := parseUUID(chi.URLParam(r, "imageId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid image id")
		return
	}
	image, err := h.images.GetByID(r.Context(), imageID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if image == nil {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	removed, err := h.images.Remove(r.Context(), imageID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if !removed {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	h.discard(image.URL)
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *PropertyImagesHandler) getByID(w http.ResponseWriter, r *http.Request) {
	imageID, ok := parseUUID(chi.URLParam(r, "imageId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid image id")
		return
	}
	image, err := h.images.GetByID(r.Context(), imageID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if image == nil {
		writeError(w, http.StatusNotFound, "image not found")
		return
	}
	writeJSON(w, http.StatusOK, image)
}

func (h *PropertyImagesHandler) listByProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := parseUUID(chi.URLParam(r, "propertyId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	images, err := h.images.GetByProperty(r.Context(), propertyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, images)
}

func (h *PropertyImagesHandler) formFile(r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, nil, err
	}
	return r.FormFile("file")
}

func (h *PropertyImagesHandler) discard(url string) {
	if err := h.store.Remove(url); err != nil {
		log.Warnf("discard %s: %v", url, err)
	}
}
