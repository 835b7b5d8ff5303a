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

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/inmobilia/realestate/entity"
	"github.com/inmobilia/realestate/model"
	"github.com/inmobilia/realestate/repository"
	"github.com/inmobilia/realestate/types"
)

// ListPropertiesFilter carries the optional listing filters. All present
// filters combine conjunctively. Nil price bounds mean "unbounded"; present
// bounds are inclusive and must be non-negative.
type ListPropertiesFilter struct {
	Name     string
	Address  string
	MinPrice *float64
	MaxPrice *float64
	Page     int
	PageSize int
}

// PropertyService manages property listings and their price changes.
type PropertyService struct {
	db *bun.DB
}

func NewPropertyService(db *bun.DB) *PropertyService {
	return &PropertyService{db: db}
}

// Create persists a new property owned by m.OwnerID and returns it with its
// generated id. The owner must already exist.
func (s *PropertyService) Create(ctx context.Context, m *model.PropertyModel) (*model.PropertyModel, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: property model is nil", ErrInvalidInput)
	}
	if m.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	owner, err := uow.Owners.GetByID(ctx, m.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, nil
	}

	property := &entity.Property{
		ID:                uuid.New(),
		Name:              m.Name,
		Address:           m.Address,
		Price:             m.Price,
		CodeInternational: m.CodeInternational,
		Year:              m.Year,
		CreatedAt:         time.Now().UTC(),
		OwnerID:           m.OwnerID,
	}
	if err := uow.Properties.Add(ctx, property); err != nil {
		return nil, err
	}
	if _, err := uow.Complete(ctx); err != nil {
		return nil, err
	}
	return propertyToModel(property), nil
}

// GetByID returns the property with the given id, or nil when absent.
func (s *PropertyService) GetByID(ctx context.Context, id uuid.UUID) (*model.PropertyModel, error) {
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	property, err := uow.Properties.GetByID(ctx, id)
	if err != nil || property == nil {
		return nil, err
	}
	return propertyToModel(property), nil
}

// Update replaces the mutable fields of an existing property. It returns nil
// when no property has the given id.
func (s *PropertyService) Update(ctx context.Context, id uuid.UUID, m *model.PropertyModel) (*model.PropertyModel, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: property model is nil", ErrInvalidInput)
	}
	if m.Price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	property, err := uow.Properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, nil
	}

	now := time.Now().UTC()
	property.Name = m.Name
	property.Address = m.Address
	property.Price = m.Price
	property.CodeInternational = m.CodeInternational
	property.Year = m.Year
	property.UpdatedAt = &now
	if m.OwnerID != uuid.Nil {
		property.OwnerID = m.OwnerID
	}

	if err := uow.Properties.Update(ctx, property); err != nil {
		return nil, err
	}
	if _, err := uow.Complete(ctx); err != nil {
		return nil, err
	}
	return propertyToModel(property), nil
}

// ChangePrice sets a new price on an existing property. Negative prices are
// rejected before any query runs; a missing property yields a nil result.
func (s *PropertyService) ChangePrice(ctx context.Context, id uuid.UUID, price float64) (*model.PropertyModel, error) {
	if price < 0 {
		return nil, fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	property, err := uow.Properties.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, nil
	}

	now := time.Now().UTC()
	property.Price = price
	property.UpdatedAt = &now
	if err := uow.Properties.Update(ctx, property); err != nil {
		return nil, err
	}
	if _, err := uow.Complete(ctx); err != nil {
		return nil, err
	}
	return propertyToModel(property), nil
}

// List returns one page of properties matching the filter. The total count is
// computed over the filtered set before pagination, and offset/limit are
// pushed down to the store. Results keep the store-default order.
func (s *PropertyService) List(ctx context.Context, f ListPropertiesFilter) (*types.Pagination[model.PropertyModel], error) {
	if f.MinPrice != nil && *f.MinPrice < 0 {
		return nil, fmt.Errorf("%w: minPrice must be non-negative", ErrInvalidInput)
	}
	if f.MaxPrice != nil && *f.MaxPrice < 0 {
		return nil, fmt.Errorf("%w: maxPrice must be non-negative", ErrInvalidInput)
	}

	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	query := uow.Properties.Query()
	if f.Name != "" {
		query = query.Where("name LIKE ?", "%"+f.Name+"%")
	}
	if f.Address != "" {
		query = query.Where("address LIKE ?", "%"+f.Address+"%")
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}

	req := types.NewDefaultPageRequest(f.Page, f.PageSize)
	result := types.NewDefaultPagination[model.PropertyModel](req.GetPage(), req.GetPageSize())

	total, err := query.Count(ctx)
	if err != nil {
		return nil, err
	}
	result.Total = total
	if total == 0 {
		return result, nil
	}

	var properties []*entity.Property
	err = query.
		Offset(req.GetOffset()).
		Limit(req.GetPageSize()).
		Scan(ctx, &properties)
	if err != nil {
		return nil, err
	}
	for _, p := range properties {
		result.Items = append(result.Items, propertyToModel(p))
	}
	return result, nil
}

func propertyToModel(p *entity.Property) *model.PropertyModel {
	return &model.PropertyModel{
		ID:                p.ID,
		Name:              p.Name,
		Address:           p.Address,
		Price:             p.Price,
		CodeInternational: p.CodeInternational,
		Year:              p.Year,
		OwnerID:           p.OwnerID,
	}
}
