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

// Package api exposes the HTTP surface of the real-estate service: JSON CRUD
// routes under /api/v1 plus a health endpoint. Handlers translate the service
// layer's results to status codes: nil result means 404, a wrapped
// ErrInvalidInput means 400, everything else is a persistence failure.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/inmobilia/realestate/database"
	"github.com/inmobilia/realestate/service"
	"github.com/inmobilia/realestate/utils"
)

var log = utils.NewLogger("API")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps a service-layer error to an HTTP status. Invalid
// input becomes 400, duplicate keys 409, and anything else 500.
func writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, service.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if is, sqlErr := database.IsSqlError(err); is {
		switch sqlErr {
		case database.DuplicateKeyErr:
			writeError(w, http.StatusConflict, "resource already exists")
			return
		case database.ForeignKeyViolationErr:
			writeError(w, http.StatusBadRequest, "referenced resource does not exist")
			return
		}
	}
	log.Errorf("request failed: %v", err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}

func parseUUID(raw string) (uuid.UUID, bool) {
	id, err := uuid.Parse(raw)
	return id, err == nil
}

// parsePageParams reads page and pageSize query parameters. Absent or
// malformed values come back as zero and get normalized downstream.
func parsePageParams(r *http.Request) (page, pageSize int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ = strconv.Atoi(r.URL.Query().Get("pageSize"))
	return page, pageSize
}

// parseFloatParam reads an optional float query parameter. The second return
// is false when the parameter is present but not a number.
func parseFloatParam(r *http.Request, name string) (*float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}
