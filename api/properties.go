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

type PropertiesHandler struct {
	properties *service.PropertyService
}

func NewPropertiesHandler(properties *service.PropertyService) *PropertiesHandler {
	return &PropertiesHandler{properties: properties}
}

func (h *PropertiesHandler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{propertyId}", h.getByID)
	r.Put("/{propertyId}", h.update)
	r.Patch("/{propertyId}/price", h.changePrice)
}

func (h *PropertiesHandler) create(w http.ResponseWriter, r *http.Request) {
	var m model.PropertyModel
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if m.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	created, err := h.properties.Create(r.Context(), &m)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if created == nil {
		writeError(w, http.StatusNotFound, "owner not found")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// list serves the filtered property listing. All filters are optional and
// combine conjunctively; price bounds are inclusive.
func (h *PropertiesHandler) list(w http.ResponseWriter, r *http.Request) {
	minPrice, ok := parseFloatParam(r, "minPrice")
	if !ok {
		writeError(w, http.StatusBadRequest, "minPrice must be a number")
		return
	}
	maxPrice, ok := parseFloatParam(r, "maxPrice")
	if !ok {
		writeError(w, http.StatusBadRequest, "maxPrice must be a number")
		return
	}
	page, pageSize := parsePageParams(r)

	filter := service.ListPropertiesFilter{
		Name:     r.URL.Query().Get("name"),
		Address:  r.URL.Query().Get("address"),
		MinPrice: minPrice,
		MaxPrice: maxPrice,
		Page:     page,
		PageSize: pageSize,
	}
	properties, err := h.properties.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, properties)
}

func (h *PropertiesHandler) getByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(chi.URLParam(r, "propertyId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	property, err := h.properties.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if property == nil {
		writeError(w, http.StatusNotFound, "property not found")
		return
	}
	writeJSON(w, http.StatusOK, property)
}

func (h *PropertiesHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(chi.URLParam(r, "propertyId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	var m model.PropertyModel
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.properties.Update(r.Context(), id, &m)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "property not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *PropertiesHandler) changePrice(w http.ResponseWriter, r *http.Request) {
	id, ok := parseUUID(chi.URLParam(r, "propertyId"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid property id")
		return
	}
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	updated, err := h.properties.ChangePrice(r.Context(), id, body.Price)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "property not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}
