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
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/inmobilia/realestate/model"
	"github.com/inmobilia/realestate/service"
)

type OwnersHandler struct {
	owners *service.OwnerService
}

func NewOwnersHandler(owners *service.OwnerService) *OwnersHandler {
	return &OwnersHandler{owners: owners}
}

func (h *OwnersHandler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{ownerId}", h.getByID)
}

func (h *OwnersHandler) create(w http.ResponseWriter, r *http.Request) {
	var m model.OwnerModel
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if m.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	created, err := h.owners.Create(r.Context(), &m)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *OwnersHandler) list(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePageParams(r)
	owners, err := h.owners.List(r.Context(), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, owners)
}

func (h *OwnersHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(chi.URLParam(r, "ownerId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid owner id")
		return
	}
	owner, err := h.owners.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if owner == nil {
		writeError(w, http.StatusNotFound, "owner not found")
		return
	}
	writeJSON(w, http.StatusOK, owner)
}
