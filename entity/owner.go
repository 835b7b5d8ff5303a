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

// Owner is a person or company that owns zero or more properties.
type Owner struct {
	bun.BaseModel `bun:"table:owners,alias:o"`

	ID       uuid.UUID `bun:"id,pk,type:uuid" json:"id"`
	Name     string    `bun:"name,notnull" json:"name"`
	Address  string    `bun:"address" json:"address"`
	Photo    string    `bun:"photo" json:"photo"`
	Birthday time.Time `bun:"birthday,nullzero" json:"birthday"`

	Properties []*Property `bun:"rel:has-many,join:id=owner_id" json:"-"`
}
