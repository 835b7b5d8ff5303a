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

package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/inmobilia/realestate/database"
	"github.com/inmobilia/realestate/entity"
	"github.com/inmobilia/realestate/model"
	"github.com/inmobilia/realestate/repository"
	"github.com/inmobilia/realestate/service"
)

var (
	setupOnce sync.Once
	setupErr  error
	testDB    *bun.DB
)

func setupDB(t *testing.T) *bun.DB {
	t.Helper()
	setupOnce.Do(func() {
		entity.RegisterModels()
		cfg := database.DefaultConnectionConfig()
		cfg.Type = "sqlite"
		cfg.DBName = ":memory:"
		cfg.EnableReconnect = false
		manager := database.NewDatabaseManager(cfg)
		ctx := context.Background()
		if setupErr = manager.Connect(ctx); setupErr != nil {
			return
		}
		schemaCfg := &database.SchemaConfig{CreateTablesOnStartup: true, EnableForeignKey: true}
		if setupErr = manager.BootstrapSchema(ctx, schemaCfg); setupErr != nil {
			return
		}
		testDB = manager.GetDB()
	})
	require.NoError(t, setupErr)
	return testDB
}

func createOwner(t *testing.T, db *bun.DB, name string) *model.OwnerModel {
	t.Helper()
	owner, err := service.NewOwnerService(db).Create(context.Background(), &model.OwnerModel{
		Name:    name,
		Address: "Calle 10 #4-21",
	})
	require.NoError(t, err)
	require.NotNil(t, owner)
	return owner
}

func createProperty(t *testing.T, db *bun.DB, ownerID uuid.UUID, name string, price float64) *model.PropertyModel {
	t.Helper()
	property, err := service.NewPropertyService(db).Create(context.Background(), &model.PropertyModel{
		Name:    name,
		Address: "Calle 10 #4-21",
		Price:   price,
		OwnerID: ownerID,
	})
	require.NoError(t, err)
	require.NotNil(t, property)
	return property
}

func floatPtr(v float64) *float64 { return &v }

func TestOwnerRoundTrip(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owners := service.NewOwnerService(db)

	created := createOwner(t, db, "Rosa Camargo")
	assert.NotEqual(t, uuid.Nil, created.ID)

	got, err := owners.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Rosa Camargo", got.Name)
	assert.Equal(t, "Calle 10 #4-21", got.Address)
}

func TestOwnerGetByIDAbsent(t *testing.T) {
	db := setupDB(t)
	owners := service.NewOwnerService(db)

	got, err := owners.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOwnerListSortedByName(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	owners := service.NewOwnerService(db)

	tag := uuid.New().String()[:8]
	createOwner(t, db, tag+"-zulema")
	createOwner(t, db, tag+"-andres")

	page, err := owners.List(ctx, 1, 1000)
	require.NoError(t, err)

	idxAndres, idxZulema := -1, -1
	for i, o := range page.Items {
		switch o.Name {
		case tag + "-andres":
			idxAndres = i
		case tag + "-zulema":
			idxZulema = i
		}
	}
	require.GreaterOrEqual(t, idxAndres, 0)
	require.GreaterOrEqual(t, idxZulema, 0)
	assert.Less(t, idxAndres, idxZulema)
}

func TestPropertyCreateRequiresOwner(t *testing.T) {
	db := setupDB(t)
	properties := service.NewPropertyService(db)

	created, err := properties.Create(context.Background(), &model.PropertyModel{
		Name:    "Casa Fantasma",
		Price:   100,
		OwnerID: uuid.New(),
	})
	require.NoError(t, err)
	assert.Nil(t, created)
}

func TestPropertyListPagination(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	properties := service.NewPropertyService(db)

	owner := createOwner(t, db, "Pedro Lemos")
	tag := uuid.New().String()[:8]
	for i := 0; i < 12; i++ {
		createProperty(t, db, owner.ID, fmt.Sprintf("pag-%s-%02d", tag, i), 100)
	}

	filter := service.ListPropertiesFilter{Name: "pag-" + tag}

	filter.Page, filter.PageSize = 1, 10
	page1, err := properties.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 12, page1.Total)
	assert.Len(t, page1.Items, 10)

	filter.Page = 2
	page2, err := properties.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 12, page2.Total)
	assert.Len(t, page2.Items, 2)

	filter.Page = 3
	page3, err := properties.List(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, 12, page3.Total)
	assert.Empty(t, page3.Items)
}

func TestPropertyListNormalizesPaging(t *testing.T) {
	db := setupDB(t)
	properties := service.NewPropertyService(db)

	page, err := properties.List(context.Background(), service.ListPropertiesFilter{
		Name:     "no-match-" + uuid.New().String(),
		Page:     0,
		PageSize: -5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Zero(t, page.Total)
	assert.Empty(t, page.Items)
}

func TestPropertyListFiltersAreConjunctive(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	properties := service.NewPropertyService(db)

	owner := createOwner(t, db, "Lucia Prada")
	tag := uuid.New().String()[:8]
	createProperty(t, db, owner.ID, "Casa-"+tag+"-barata", 150)
	createProperty(t, db, owner.ID, "Casa-"+tag+"-cara", 400)
	createProperty(t, db, owner.ID, "Apto-"+tag+"-caro", 500)

	page, err := properties.List(ctx, service.ListPropertiesFilter{
		Name:     "Casa-" + tag,
		MinPrice: floatPtr(200),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Casa-"+tag+"-cara", page.Items[0].Name)

	// inclusive bounds
	page, err = properties.List(ctx, service.ListPropertiesFilter{
		Name:     "Casa-" + tag,
		MinPrice: floatPtr(150),
		MaxPrice: floatPtr(400),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
}

func TestPropertyListRejectsNegativeBounds(t *testing.T) {
	db := setupDB(t)
	properties := service.NewPropertyService(db)

	_, err := properties.List(context.Background(), service.ListPropertiesFilter{MinPrice: floatPtr(-1)})
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = properties.List(context.Background(), service.ListPropertiesFilter{MaxPrice: floatPtr(-0.5)})
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}

func TestPropertyUpdate(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	properties := service.NewPropertyService(db)

	owner := createOwner(t, db, "Mario Duque")
	created := createProperty(t, db, owner.ID, "Finca Vieja", 900)

	updated, err := properties.Update(ctx, created.ID, &model.PropertyModel{
		Name:    "Finca Renovada",
		Address: "Vereda El Roble",
		Price:   1200,
		Year:    2019,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Finca Renovada", updated.Name)
	assert.Equal(t, 1200.0, updated.Price)
	assert.Equal(t, owner.ID, updated.OwnerID)

	missing, err := properties.Update(ctx, uuid.New(), &model.PropertyModel{Name: "x", Price: 1})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestChangePrice(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	properties := service.NewPropertyService(db)

	owner := createOwner(t, db, "Nora Pineda")
	created := createProperty(t, db, owner.ID, "Loft Centro", 300)

	updated, err := properties.ChangePrice(ctx, created.ID, 275)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, 275.0, updated.Price)

	_, err = properties.ChangePrice(ctx, created.ID, -10)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	// the rejected change must not have touched the row
	got, err := properties.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 275.0, got.Price)

	missing, err := properties.ChangePrice(ctx, uuid.New(), 100)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestImageRequiresExistingProperty(t *testing.T) {
	db := setupDB(t)
	images := service.NewPropertyImageService(db)

	image, err := images.Add(context.Background(), uuid.New(), "/images/properties/x.jpg")
	require.NoError(t, err)
	assert.Nil(t, image)
}

func TestImageLifecycle(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	images := service.NewPropertyImageService(db)

	owner := createOwner(t, db, "Olga Marin")
	property := createProperty(t, db, owner.ID, "Duplex Norte", 220)

	first, err := images.Add(ctx, property.ID, "/images/properties/a.jpg")
	require.NoError(t, err)
	require.NotNil(t, first)
	second, err := images.Add(ctx, property.ID, "/images/properties/b.jpg")
	require.NoError(t, err)
	require.NotNil(t, second)

	all, err := images.GetByProperty(ctx, property.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	updated, err := images.UpdateURL(ctx, first.ID, "/images/properties/a2.jpg")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "/images/properties/a2.jpg", updated.URL)

	removed, err := images.Remove(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = images.Remove(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	all, err = images.GetByProperty(ctx, property.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestImageStartsDisabled(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	images := service.NewPropertyImageService(db)

	owner := createOwner(t, db, "Sergio Toro")
	property := createProperty(t, db, owner.ID, "Estudio Chico", 60)

	created, err := images.Add(ctx, property.ID, "/images/properties/c.jpg")
	require.NoError(t, err)
	require.NotNil(t, created)

	row, err := repository.NewRepository[entity.PropertyImage](db).GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.False(t, row.Enabled)
}

func TestTraceRequiresExistingProperty(t *testing.T) {
	db := setupDB(t)
	traces := service.NewPropertyTraceService(db)

	trace, err := traces.Add(context.Background(), &model.PropertyTraceModel{
		PropertyID: uuid.New(),
		Name:       "venta",
		Value:      100,
	})
	require.NoError(t, err)
	assert.Nil(t, trace)
}

func TestTraceLifecycle(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	traces := service.NewPropertyTraceService(db)

	owner := createOwner(t, db, "Raul Ospina")
	property := createProperty(t, db, owner.ID, "Lote Sur", 80)

	created, err := traces.Add(ctx, &model.PropertyTraceModel{
		PropertyID: property.ID,
		Name:       "venta inicial",
		Value:      80,
		Tax:        8,
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.False(t, created.DateSale.IsZero())

	got, err := traces.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, property.ID, got.PropertyID)

	byProperty, err := traces.GetByProperty(ctx, property.ID)
	require.NoError(t, err)
	assert.Len(t, byProperty, 1)
}
