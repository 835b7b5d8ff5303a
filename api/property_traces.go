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

type PropertyTracesHandler struct {
	traces *service.PropertyTraceService
}

func NewPropertyTracesHandler(traces *service.PropertyTraceService) *PropertyTracesHandler {
	return &PropertyTracesHandler{traces: traces}
}

func (h *PropertyTracesHandler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/{traceId}", h.getByID)
	r.Get("/property/{propertyId}", h.listByProperty)
}

func (h *PropertyTracesHandler) create(w http.ResponseWriter, r *http.Request) {
	var m model.PropertyTraceModel
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	created, err := h.traces.Add(r.Context(), &m)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if created == nil {
		writeError(w, http.StatusNotFound, "property not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *PropertyTracesHandler) getByID(w http.ResponseWriter, r *http.Request) {
	traceID, ok := parseUUID(chi.URLParam(r, "traceId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid trace id")
		return
	}
	trace, err := h.traces.GetByID(r.Context(), traceID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if trace == nil {
		writeError(w, http.StatusNotFound, "trace not found")
		return
	}
	writeJSON(w, http.StatusOK, trace)
}

func (h *PropertyTracesHandler) listByProperty(w http.ResponseWriter, r *http.Request) {
	propertyID, ok := parseUUID(chi.URLParam(r, "propertyId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	traces, err := h.traces.GetByProperty(r.Context(), propertyID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, traces)
}
