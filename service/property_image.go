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

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/inmobilia/realestate/entity"
	"github.com/inmobilia/realestate/model"
	"github.com/inmobilia/realestate/repository"
	"github.com/inmobilia/realestate/types"
)

// PropertyImageService manages the image records attached to properties. The
// image bytes themselves live in the file store; the service only tracks the
// stored URL.
type PropertyImageService struct {
	db *bun.DB
}

func NewPropertyImageService(db *bun.DB) *PropertyImageService {
	return &PropertyImageService{db: db}
}

// Add attaches a stored file URL to an existing property. It returns nil when
// the property does not exist, so the caller can clean up the stored file.
func (s *PropertyImageService) Add(ctx context.Context, propertyID uuid.UUID, fileURL string) (*model.PropertyImageModel, error) {
	if fileURL == "" {
		return nil, fmt.Errorf("%w: file url is empty", ErrInvalidInput)
	}
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	property, err := uow.Properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, nil
	}

	image := &entity.PropertyImage{
		ID:         uuid.New(),
		File:       fileURL,
		PropertyID: propertyID,
	}
	if err := uow.PropertyImages.Add(ctx, image); err != nil {
		return nil, err
	}
	if _, err := uow.Complete(ctx); err != nil {
		return nil, err
	}
	return imageToModel(image), nil
}

// UpdateURL replaces the stored file URL of an existing image record.
func (s *PropertyImageService) UpdateURL(ctx context.Context, imageID uuid.UUID, fileURL string) (*model.PropertyImageModel, error) {
	if fileURL == "" {
		return nil, fmt.Errorf("%w: file url is empty", ErrInvalidInput)
	}
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	image, err := uow.PropertyImages.GetByID(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if image == nil {
		return nil, nil
	}

	image.File = fileURL
	if err := uow.PropertyImages.Update(ctx, image); err != nil {
		return nil, err
	}
	if _, err := uow.Complete(ctx); err != nil {
		return nil, err
	}
	return imageToModel(image), nil
}

// Remove deletes an image record. It reports whether a record was deleted.
func (s *PropertyImageService) Remove(ctx context.Context, imageID uuid.UUID) (bool, error) {
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return false, err
	}
	defer uow.Rollback()

	image, err := uow.PropertyImages.GetByID(ctx, imageID)
	if err != nil {
		return false, err
	}
	if image == nil {
		return false, nil
	}

	if err := uow.PropertyImages.Remove(ctx, image); err != nil {
		return false, err
	}
	rows, err := uow.Complete(ctx)
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// GetByID returns the image record with the given id, or nil when absent.
func (s *PropertyImageService) GetByID(ctx context.Context, imageID uuid.UUID) (*model.PropertyImageModel, error) {
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	image, err := uow.PropertyImages.GetByID(ctx, imageID)
	if err != nil || image == nil {
		return nil, err
	}
	return imageToModel(image), nil
}

// GetByProperty returns every image record attached to a property.
func (s *PropertyImageService) GetByProperty(ctx context.Context, propertyID uuid.UUID) ([]*model.PropertyImageModel, error) {
	uow, err := repository.NewUnitOfWork(ctx, s.db)
	if err != nil {
		return nil, err
	}
	defer uow.Rollback()

	images, err := uow.PropertyImages.Find(ctx, types.NewQueryFilter("property_id = ?", propertyID))
	if err != nil {
		return nil, err
	}
	models := make([]*model.PropertyImageModel, 0, len(images))
	for _, img := range images {
		models = append(models, imageToModel(img))
	}
	return models, nil
}

func imageToModel(img *entity.PropertyImage) *model.PropertyImageModel {
	return &model.PropertyImageModel{ID: img.ID, URL: img.File}
}
