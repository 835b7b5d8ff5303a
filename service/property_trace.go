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

// PropertyTraceService manages the sale-history records of properties.
type PropertyTraceService struct {
	db *bun.DB
}

func NewPropertyTraceService(db *bun.DB) *PropertyTraceService {
	return &PropertyTraceService{db: db}
}

// Add records a sale trace against an existing property. It returns nil when
// the property does not exist. A zero DateSale defaults to the current time.
func (s *PropertyTraceService) Add(ctx context.Context, m *model.PropertyTraceModel) (*model.PropertyTraceModel, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: trace model is nil", ErrInvalidInput)
	}
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	property, err := uow.Properties.GetByID(ctx, m.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, nil
	}

	dateSale := m.DateSale
	if dateSale.IsZero() {
		dateSale = time.Now().UTC()
	}
	trace := &entity.PropertyTrace{
		ID:         uuid.New(),
		DateSale:   dateSale,
		Name:       m.Name,
		Value:      m.Value,
		Tax:        m.Tax,
		PropertyID: m.PropertyID,
	}
	if err := uow.PropertyTraces.Add(ctx, trace); err != nil {
		return nil, err
	}
	if _, err := uow.Complete(ctx); err != nil {
		return nil, err
	}
	return traceToModel(trace), nil
}

// GetByID returns the trace with the given id, or nil when absent.
func (s *PropertyTraceService) GetByID(ctx context.Context, traceID uuid.UUID) (*model.PropertyTraceModel, error) {
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	trace, err := uow.PropertyTraces.GetByID(ctx, traceID)
	if err != nil || trace == nil {
		return nil, err
	}
	return traceToModel(trace), nil
}

// GetByProperty returns every sale trace recorded against a property.
func (s *PropertyTraceService) GetByProperty(ctx context.Context, propertyID uuid.UUID) ([]*model.PropertyTraceModel, error) {
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	traces, err := uow.PropertyTraces.Find(ctx, types.NewQueryFilter("property_id = ?", propertyID))
	if err != nil {
		return nil, err
	}
	models := make([]*model.PropertyTraceModel, 0, len(traces))
	for _, t := range traces {
		models = append(models, traceToModel(t))
	}
	return models, nil
}

func traceToModel(t *entity.PropertyTrace) *model.PropertyTraceModel {
	return &model.PropertyTraceModel{
		ID:         t.ID,
		PropertyID: t.PropertyID,
		DateSale:   t.DateSale,
		Name:       t.Name,
		Value:      t.Value,
		Tax:        t.Tax,
	}
}
