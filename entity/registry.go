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
	"sync"

	"github.com/inmobilia/realestate/database"
)

var registerOnce sync.Once

// RegisterModels adds every entity to the database model registry. Priority
// follows reference order: owners before properties, properties before their
// dependents, so table creation can honor foreign keys.
func RegisterModels() {
	registerOnce.Do(func() {
		database.RegisteredModel(database.NewModelAdapter((*Owner)(nil), 10))
		database.RegisteredModel(database.NewModelAdapter((*Property)(nil), 20))
		database.RegisteredModel(database.NewModelAdapter((*PropertyImage)(nil), 30))
		database.RegisteredModel(database.NewModelAdapter((*PropertyTrace)(nil), 40))
	})
}
