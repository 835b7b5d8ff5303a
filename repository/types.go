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

package repository

import (
	"context"

	"github.com/inmobilia/realestate/types"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

// CrudRepository defines basic CRUD operations for a generic entity type.
// Lookups return (nil, nil) when no row matches: absence is a result, not an
// error. Writes execute against the owning unit of work's transaction and
// stay invisible to other connections until that unit of work commits.
type CrudRepository[T any] interface {
	// GetByID returns the entity with the given primary key, or nil if absent.
	GetByID(ctx context.Context, id any) (*T, error)

	// GetAll returns every row of T, in store-default order.
	GetAll(ctx context.Context) ([]*T, error)

	// Find returns the entities matching the filter, pushed down to the store.
	Find(ctx context.Context, filter *types.QueryFilter) ([]*T, error)

	// Add stages one or more inserts.
	Add(ctx context.Context, entity ...*T) error

	// Update stages a full-row replace identified by primary key. A missing
	// row surfaces as a persistence failure.
	Update(ctx context.Context, entity *T) error

	// Remove stages a delete by the entity's primary key.
	Remove(ctx context.Context, entity *T) error
}

// PageQueryRepository defines pagination functionality for listing entities.
type PageQueryRepository[T any] interface {
	Page(ctx context.Context, page *types.PageRequest) (*types.Pagination[T], error)
}

// Repository combines CRUD and pagination operations and exposes an open Bun
// select builder so callers can compose server-side filtering, sorting, and
// offset/limit without materializing the table.
type Repository[T any] interface {
	CrudRepository[T]
	PageQueryRepository[T]
	Query() *bun.SelectQuery
	Dialect() schema.Dialect
}
