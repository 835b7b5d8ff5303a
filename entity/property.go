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

// Property is a real-estate listing. CreatedAt is set once at creation;
// UpdatedAt is set on every mutation of property fields or price.
type Property struct {
	bun.BaseModel `bun:"table:properties,alias:p"`

	ID                uuid.UUID  `bun:"id,pk,type:uuid" json:"id"`
	Name              string     `bun:"name,notnull" json:"name"`
	Address           string     `bun:"address" json:"address"`
	Price             float64    `bun:"price,notnull" json:"price"`
	CodeInternational string     `bun:"code_international" json:"codeInternational"`
	Year              int        `bun:"year" json:"year"`
	CreatedAt         time.Time  `bun:"created_at,notnull" json:"createdAt"`
	UpdatedAt         *time.Time `bun:"updated_at,nullzero" json:"updatedAt,omitempty"`

	OwnerID uuid.UUID `bun:"owner_id,notnull,type:uuid" json:"ownerId"`
	Owner   *Owner    `bun:"rel:belongs-to,join:owner_id=id" json:"-"`

	Images []*PropertyImage `bun:"rel:has-many,join:id=property_id" json:"-"`
	Traces []*PropertyTrace `bun:"rel:has-many,join:id=property_id" json:"-"`
}
