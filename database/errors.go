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
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// SQLError classifies persistence failures across the supported engines so
// callers can map constraint violations to user-visible outcomes without
// depending on driver-specific error types.
type SQLError int

const (
	UnknownErr SQLError = iota
	NoRowsErr
	NoTableErr
	ExistTableErr
	DuplicateKeyErr
	NotNullViolationErr
	ForeignKeyViolationErr
	CheckConstraintViolationErr
	DataTruncatedErr
)

func IsSqlError(err error) (is bool, sqlErr SQLError) {
	if err == nil {
		return false, UnknownErr
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case 1062:
			return true, DuplicateKeyErr
		case 1048:
			return true, NotNullViolationErr
		case 1216, 1217, 1451, 1452:
			return true, ForeignKeyViolationErr
		case 3819:
			return true, CheckConstraintViolationErr
		case 1265:
			return true, DataTruncatedErr
		case 1146:
			return true, NoTableErr
		case 1050:
			return true, ExistTableErr
		default:
			return true, UnknownErr
		}
	}

	// Postgres and SQLite surface SQLSTATE codes or fixed phrases in the
	// error text rather than a common typed error.
	s := strings.ToLower(err.Error())
	matchers := []struct {
		kind    SQLError
		needles []string
	}{
		{NoTableErr, []string{"sqlstate 42p01", "undefined table", "no such table"}},
		{ExistTableErr, []string{"relation already exists", "table already exists"}},
		{DuplicateKeyErr, []string{"duplicate key value", "unique constraint failed", "sqlstate 23505"}},
		{NotNullViolationErr, []string{"not-null constraint", "not null constraint failed", "sqlstate 23502"}},
		{ForeignKeyViolationErr, []string{"foreign key violation", "foreign key constraint failed", "sqlstate 23503"}},
		{CheckConstraintViolationErr, []string{"check constraint", "sqlstate 23514"}},
		{DataTruncatedErr, []string{"string data right truncation", "sqlstate 22001", "data truncated"}},
	}
	for _, m := range matchers {
		for _, needle := range m.needles {
			if strings.Contains(s, needle) {
				return true, m.kind
			}
		}
	}
	return false, UnknownErr
}
