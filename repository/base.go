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
	"database/sql"
	"errors"
	"fmt"

	"github.com/inmobilia/realestate/types"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/schema"
)

type baseRepositoryImpl[T any] struct {
	conn bun.IDB
	// affected accumulates rows written through this repository so the owning
	// unit of work can report a total at commit time. Nil for standalone use.
	affected *int64
}

// NewRepository returns a generic repository backed by the provided Bun
// connection, which may be a *bun.DB or an open transaction.
func NewRepository[T any](conn bun.IDB) Repository[T] {
	return &baseRepositoryImpl[T]{conn: conn}
}

func newTrackedRepository[T any](conn bun.IDB, affected *int64) Repository[T] {
	return &baseRepositoryImpl[T]{conn: conn, affected: affected}
}

func (r *baseRepositoryImpl[T]) Dialect() schema.Dialect { return r.conn.Dialect() }

func (r *baseRepositoryImpl[T]) Query() *bun.SelectQuery {
	return r.conn.NewSelect().Model((*T)(nil))
}

func (r *baseRepositoryImpl[T]) track(res sql.Result) {
	if r.affected == nil || res == nil {
		return
	}
	if n, err := res.RowsAffected(); err == nil {
		*r.affected += n
	}
}

func (r *baseRepositoryImpl[T]) GetByID(ctx context.Context, id any) (*T, error) {
	var entity T
	err := r.conn.NewSelect().Model(&entity).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

func (r *baseRepositoryImpl[T]) GetAll(ctx context.Context) ([]*T, error) {
	var entities []*T
	err := r.conn.NewSelect().Model(&entities).Scan(ctx)
	return entities, err
}

func (r *baseRepositoryImpl[T]) Find(ctx context.Context, filter *types.QueryFilter) ([]*T, error) {
	var entities []*T
	query := r.conn.NewSelect().Model(&entities)
	if filter != nil {
		query = query.Where(filter.Schema, filter.Args...)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *baseRepositoryImpl[T]) Page(ctx context.Context, pageRequest *types.PageRequest) (*types.Pagination[T], error) {
	var entities []*T
	query := r.conn.NewSelect().Model(&entities)
	if pageRequest.GetFilter() != nil {
		query = query.Where(pageRequest.GetFilter().Schema, pageRequest.GetFilter().Args...)
	}
	pagination := types.NewDefaultPagination[T](pageRequest.GetPage(), pageRequest.GetPageSize())
	total, err := query.Count(ctx)
	if err != nil || total == 0 {
		return pagination, err
	}
	err = query.
		Offset(pageRequest.GetOffset()).
		Limit(pageRequest.GetPageSize()).
		Order(pageRequest.GetOrders()...).
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	pagination.Total = total
	pagination.Items = entities
	return pagination, nil
}

func (r *baseRepositoryImpl[T]) Add(ctx context.Context, entity ...*T) error {
	entities := make([]*T, len(entity))
	copy(entities, entity)
	res, err := r.conn.NewInsert().Model(&entities).Exec(ctx)
	if err != nil {
		return err
	}
	r.track(res)
	return nil
}

func (r *baseRepositoryImpl[T]) Update(ctx context.Context, entity *T) error {
	res, err := r.conn.NewUpdate().Model(entity).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update %T: no row matched primary key", entity)
	}
	r.track(res)
	return nil
}

func (r *baseRepositoryImpl[T]) Remove(ctx context.Context, entity *T) error {
	res, err := r.conn.NewDelete().Model(entity).WherePK().Exec(ctx)
	if err != nil {
		return err
	}
	r.track(res)
	return nil
}
