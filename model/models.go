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

// Package model holds the request-scoped API shapes exposed to callers.
// Models are transient copies of entities; mapping between the two is a pure
// field-for-field transformation done by the services.
package model

import (
	"time"

	"github.com/google/uuid"
)

// OwnerModel is the external shape of an owner.
type OwnerModel struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Photo    string    `json:"photo,omitempty"`
	Birthday time.Time `json:"birthday,omitempty"`
}

// PropertyModel is the external shape of a property listing.
type PropertyModel struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Address           string    `json:"address"`
	Price             float64   `json:"price"`
	CodeInternational string    `json:"codeInternational,omitempty"`
	Year              int       `json:"year,omitempty"`
	OwnerID           uuid.UUID `json:"ownerId"`
}

// PropertyImageModel is the external shape of a property image record. URL is
// the stored file reference relative to the server root.
type PropertyImageModel struct {
	ID  uuid.UUID `json:"id"`
	URL string    `json:"url"`
}

// PropertyTraceModel is the external shape of a property sale-trace record.
type PropertyTraceModel struct {
	ID         uuid.UUID `json:"id"`
	PropertyID uuid.UUID `json:"propertyId"`
	DateSale   time.Time `json:"dateSale"`
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	Tax        float64   `json:"tax"`
}
