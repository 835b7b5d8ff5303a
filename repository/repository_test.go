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

package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/inmobilia/realestate/database"
	"github.com/inmobilia/realestate/entity"
	"github.com/inmobilia/realestate/repository"
	"github.com/inmobilia/realestate/types"
)

var (
	setupOnce sync.Once
	setupErr  error
	testDB    *bun.DB
)

// setupDB connects one shared in-memory sqlite database for the package. Each
// test works with its own uuid-keyed rows, so tests do not interfere.
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

func newOwner(name string) *entity.Owner {
	return &entity.Owner{ID: uuid.New(), Name: name, Address: "Main St 1"}
}

func newProperty(name string, price float64, ownerID uuid.UUID) *entity.Property {
	return &entity.Property{
		ID:        uuid.New(),
		Name:      name,
		Address:   "Main St 1",
		Price:     price,
		CreatedAt: time.Now().UTC(),
		OwnerID:   ownerID,
	}
}

func TestGetByIDReturnsNilWhenAbsent(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewRepository[entity.Owner](db)

	missing := uuid.New()
	for i := 0; i < 2; i++ {
		owner, err := repo.GetByID(ctx, missing)
		require.NoError(t, err)
		assert.Nil(t, owner)
	}
}

func TestAddAndGetByID(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewRepository[entity.Owner](db)

	owner := newOwner("Alice Quintero")
	require.NoError(t, repo.Add(ctx, owner))

	got, err := repo.GetByID(ctx, owner.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, owner.ID, got.ID)
	assert.Equal(t, "Alice Quintero", got.Name)
}

func TestFindPushesFilterToStore(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewRepository[entity.Owner](db)

	tag := uuid.New().String()
	a := newOwner("find-" + tag + "-a")
	b := newOwner("find-" + tag + "-b")
	require.NoError(t, repo.Add(ctx, a, b))

	owners, err := repo.Find(ctx, types.NewQueryFilter("name LIKE ?", "find-"+tag+"-%"))
	require.NoError(t, err)
	assert.Len(t, owners, 2)

	owners, err = repo.Find(ctx, types.NewQueryFilter("name = ?", a.Name))
	require.NoError(t, err)
	require.Len(t, owners, 1)
	assert.Equal(t, a.ID, owners[0].ID)
}

func TestPageCountsBeforePagination(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewRepository[entity.Owner](db)

	tag := uuid.New().String()
	names := []string{"a", "b", "c", "d", "e"}
	for _, n := range names {
		require.NoError(t, repo.Add(ctx, newOwner("page-"+tag+"-"+n)))
	}

	filter := types.NewQueryFilter("name LIKE ?", "page-"+tag+"-%")
	page1, err := repo.Page(ctx, types.NewPageRequest(1, 2, filter, []string{"name ASC"}))
	require.NoError(t, err)
	assert.Equal(t, 5, page1.Total)
	require.Len(t, page1.Items, 2)
	assert.Equal(t, "page-"+tag+"-a", page1.Items[0].Name)
	assert.Equal(t, "page-"+tag+"-b", page1.Items[1].Name)

	page3, err := repo.Page(ctx, types.NewPageRequest(3, 2, filter, []string{"name ASC"}))
	require.NoError(t, err)
	assert.Equal(t, 5, page3.Total)
	require.Len(t, page3.Items, 1)
	assert.Equal(t, "page-"+tag+"-e", page3.Items[0].Name)
}

func TestUpdateMissingRowFails(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewRepository[entity.Owner](db)

	ghost := newOwner("never inserted")
	assert.Error(t, repo.Update(ctx, ghost))
}

func TestForeignKeysEnforced(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := repository.NewRepository[entity.Property](db)

	orphan := newProperty("no owner", 100, uuid.New())
	assert.Error(t, repo.Add(ctx, orphan))
}

func TestUnitOfWorkCommitSpansRepositories(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	uow, err := repository.NewUnitOfWork(ctx, db)
	require.NoError(t, err)
	defer uow.Rollback()

	owner := newOwner("Bruno Vidal")
	require.NoError(t, uow.Owners.Add(ctx, owner))
	property := newProperty("Casa Vidal", 350000, owner.ID)
	require.NoError(t, uow.Properties.Add(ctx, property))

	rows, err := uow.Complete(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	owners := repository.NewRepository[entity.Owner](db)
	properties := repository.NewRepository[entity.Property](db)
	gotOwner, err := owners.GetByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.NotNil(t, gotOwner)
	gotProperty, err := properties.GetByID(ctx, property.ID)
	require.NoError(t, err)
	assert.NotNil(t, gotProperty)
}

func TestUnitOfWorkRollbackDiscardsEverything(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	uow, err := repository.NewUnitOfWork(ctx, db)
	require.NoError(t, err)

	owner := newOwner("Carla Reyes")
	require.NoError(t, uow.Owners.Add(ctx, owner))
	require.NoError(t, uow.Rollback())

	repo := repository.NewRepository[entity.Owner](db)
	got, err := repo.GetByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUnitOfWorkCompleteIsOneShot(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	uow, err := repository.NewUnitOfWork(ctx, db)
	require.NoError(t, err)

	require.NoError(t, uow.Owners.Add(ctx, newOwner("Dora Ibanez")))
	_, err = uow.Complete(ctx)
	require.NoError(t, err)

	_, err = uow.Complete(ctx)
	assert.Error(t, err)
	assert.NoError(t, uow.Rollback())
}

func TestRemoveCountsInCompletedRows(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	owner := newOwner("Elena Fuentes")
	seed, err := repository.NewUnitOfWork(ctx, db)
	require.NoError(t, err)
	require.NoError(t, seed.Owners.Add(ctx, owner))
	rows, err := seed.Complete(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	uow, err := repository.NewUnitOfWork(ctx, db)
	require.NoError(t, err)
	defer uow.Rollback()
	require.NoError(t, uow.Owners.Remove(ctx, owner))
	rows, err = uow.Complete(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, rows)

	repo := repository.NewRepository[entity.Owner](db)
	got, err := repo.GetByID(ctx, owner.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
