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

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PropertyTrace records a sale (or comparable valuation event) of a property.
// It must reference an existing property at creation time.
type PropertyTrace struct {
	bun.BaseModel `bun:"table:property_traces,alias:pt"`

	ID       uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	DateSale time.Time `bun:"date_sale,notnull" json:"dateSale"`
	Name     string    `bun:"name,notnull" json:"name"`
	Value    float64   `bun:"value,notnull" json:"value"`
	Tax      float64   `bun:"tax,notnull" json:"tax"`

	PropertyID uuid.UUID `bun:"property_id,notnull,type:uuid" json:"propertyId"`
	Property   *Property `bun:"rel:belongs-to,join:property_id=id" json:"-"`
}
