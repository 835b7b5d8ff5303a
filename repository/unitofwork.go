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

	"github.com/inmobilia/realestate/entity"

	"github.com/uptrace/bun"
)

// UnitOfWork aggregates one repository per entity family over a single open
// transaction. Changes staged through any of its repositories become durable
// together when Complete is called, or not at all.
//
// A unit of work is scoped to one logical operation: create one per request,
// call Complete exactly once, and never share an instance between goroutines.
type UnitOfWork struct {
	tx        bun.Tx
	affected  int64
	completed bool

	Owners         Repository[entity.Owner]
	Properties     Repository[entity.Property]
	PropertyImages Repository[entity.PropertyImage]
	PropertyTraces Repository[entity.PropertyTrace]
}

// NewUnitOfWork begins a transaction on db and returns a unit of work whose
// repositories all borrow that transaction.
func NewUnitOfWork(ctx context.Context, db *bun.DB) (*UnitOfWork, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin unit of work: %w", err)
	}

	u := &UnitOfWork{tx: tx}
	u.Owners = newTrackedRepository[entity.Owner](tx, &u.affected)
	u.Properties = newTrackedRepository[entity.Property](tx, &u.affected)
	u.PropertyImages = newTrackedRepository[entity.PropertyImage](tx, &u.affected)
	u.PropertyTraces = newTrackedRepository[entity.PropertyTrace](tx, &u.affected)
	return u, nil
}

// Complete commits all staged changes atomically and returns the number of
// rows affected. On commit failure nothing is persisted and the error is
// returned as-is for the caller to surface.
func (u *UnitOfWork) Complete(ctx context.Context) (int, error) {
	if u.completed {
		return 0, fmt.Errorf("unit of work already completed")
	}
	if err := u.tx.Commit(); err != nil {
		return 0, err
	}
	u.completed = true
	return int(u.affected), nil
}

// Rollback discards all staged changes. It is a no-op after Complete, so it
// is safe to defer alongside a conditional Complete.
func (u *UnitOfWork) Rollback() error {
	if u.completed {
		return nil
	}
	u.completed = true
	if err := u.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}
