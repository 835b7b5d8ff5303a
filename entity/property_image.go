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
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PropertyImage is a stored image file reference attached to a property.
// It must reference an existing property at creation time.
type PropertyImage struct {
	bun.BaseModel `bun:"table:property_images,alias:pi"`

	ID      uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	File    string    `bun:"file,notnull" json:"file"`
	Enabled bool      `bun:"enabled,notnull,default:false" json:"enabled"`

	PropertyID uuid.UUID `bun:"property_id,notnull,type:uuid" json:"propertyId"`
	Property   *Property `bun:"rel:belongs-to,join:property_id=id" json:"-"`
}
