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

// Package service implements the application use cases over the generic
// repositories. Every operation runs inside its own unit of work; reads share
// the same path as writes so a single transaction sees a consistent snapshot.
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/inmobilia/realestate/entity"
	"github.com/inmobilia/realestate/model"
	"github.com/inmobilia/realestate/repository"
	"github.com/inmobilia/realestate/types"
)

// OwnerService manages property owners.
type OwnerService struct {
	db *bun.DB
}

func NewOwnerService(db *bun.DB) *OwnerService {
	return &OwnerService{db: db}
}

// Create persists a new owner and returns it with its generated id.
func (s *OwnerService) Create(ctx context.Context, m *model.OwnerModel) (*model.OwnerModel, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: owner model is nil", ErrInvalidInput)
	}
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	owner := &entity.Owner{
		ID:       uuid.New(),
		Name:     m.Name,
		Address:  m.Address,
		Photo:    m.Photo,
		Birthday: m.Birthday,
	}
	if err := uow.Owners.Add(ctx, owner); err != nil {
		return nil, err
	}
	if _, err := uow.Complete(ctx); err != nil {
		return nil, err
	}
	return ownerToModel(owner), nil
}

// GetByID returns the owner with the given id, or nil when absent.
func (s *OwnerService) GetByID(ctx context.Context, id uuid.UUID) (*model.OwnerModel, error) {
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	owner, err := uow.Owners.GetByID(ctx, id)
	if err != nil || owner == nil {
		return nil, err
	}
	return ownerToModel(owner), nil
}

// List returns one page of owners sorted by name ascending.
func (s *OwnerService) List(ctx context.Context, page, pageSize int) (*types.Pagination[model.OwnerModel], error) {
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	req := types.NewPageRequestWithOrders(page, pageSize, []string{"name ASC"})
	owners, err := uow.Owners.Page(ctx, req)
	if err != nil {
		return nil, err
	}

	result := types.NewDefaultPagination[model.OwnerModel](owners.Page, owners.PageSize)
	result.Total = owners.Total
	for _, o := range owners.Items {
		result.Items = append(result.Items, ownerToModel(o))
	}
	return result, nil
}

func ownerToModel(o *entity.Owner) *model.OwnerModel {
	return &model.OwnerModel{
		ID:       o.ID,
		Name:     o.Name,
		Address:  o.Address,
		Photo:    o.Photo,
		Birthday: o.Birthday,
	}
}
