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

package database

import (
	"fmt"
	"os"
	"reflect"

	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect"
)

// SchemaManager bootstraps the schema for all registered models: CREATE TABLE
// IF NOT EXISTS per model plus the configured foreign key constraints. This is
// deliberately not a versioned migration system; it only brings an empty
// database up to the current model set.
type SchemaManager struct {
	db     *bun.DB
	logger Logger
}

// NewSchemaManager constructs a SchemaManager using the provided Bun database.
func NewSchemaManager(db *bun.DB, logger Logger) *SchemaManager {
	return &SchemaManager{db: db, logger: logger}
}

// Bootstrap creates tables for every registered model and applies foreign key
// constraints when the configuration asks for them.
func (sm *SchemaManager) Bootstrap(ctx context.Context, cfg *SchemaConfig) error {
	if sm.db == nil {
		return fmt.Errorf("database not initialized")
	}

	// silent bootstrap unless explicitly requested
	if _, ok := os.LookupEnv("SQL_LOG_BOOTSTRAP"); !ok {
		EnableSqlSilent(true)
		defer EnableSqlSilent(false)
	}

	if err := sm.CreateTables(ctx); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if cfg != nil && cfg.EnableForeignKey {
		if err := sm.ApplyForeignKeys(ctx, cfg); err != nil {
			return fmt.Errorf("failed to apply foreign keys: %w", err)
		}
	}

	if sm.logger != nil {
		sm.logger.Info("Schema bootstrap completed", "models", len(GetRegisteredModels()))
	}
	return nil
}

// CreateTables issues CREATE TABLE IF NOT EXISTS for every registered model in
// priority order.
func (sm *SchemaManager) CreateTables(ctx context.Context) error {
	for _, model := range GetRegisteredModels() {
		instance := model.Instance()
		_, err := sm.db.NewCreateTable().
			Model(instance).
			IfNotExists().
			WithForeignKeys().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("create table for model %s: %w", getModelName(instance), err)
		}
		if sm.logger != nil {
			sm.logger.Debug("Table ensured", "model", getModelName(instance))
		}
	}
	return nil
}

// ApplyForeignKeys adds named foreign key constraints via ALTER TABLE.
// SQLite gets its foreign keys inline at table creation and does not support
// ALTER TABLE ADD CONSTRAINT, so it is skipped here.
func (sm *SchemaManager) ApplyForeignKeys(ctx context.Context, cfg *SchemaConfig) error {
	if sm.db.Dialect().Name() == dialect.SQLite {
		return nil
	}

	var fkm *ForeignKeyManager
	if cfg.ForeignKeyFile != "" {
		fkm = NewConfigurableForeignKeyManager(sm.logger, cfg.ForeignKeyFile)
	} else {
		fkm = NewForeignKeyManager(sm.logger)
	}

	if errs := fkm.ValidateConstraints(); len(errs) > 0 {
		return fmt.Errorf("invalid foreign key configuration: %v", errs)
	}
	return fkm.AddAllForeignKeys(ctx, sm.db)
}

func getModelName(model interface{}) string {
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
