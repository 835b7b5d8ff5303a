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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestNormalization(t *testing.T) {
	cases := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
		wantOffset   int
	}{
		{"defaults kick in", 0, 0, 1, 10, 0},
		{"negative values", -3, -5, 1, 10, 0},
		{"valid values kept", 2, 25, 2, 25, 25},
		{"third page", 3, 10, 3, 10, 20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := NewDefaultPageRequest(tc.page, tc.pageSize)
			assert.Equal(t, tc.wantPage, req.GetPage())
			assert.Equal(t, tc.wantPageSize, req.GetPageSize())
			assert.Equal(t, tc.wantOffset, req.GetOffset())
		})
	}
}

func TestPageRequestFilterAndOrders(t *testing.T) {
	filter := NewQueryFilter("name LIKE ?", "%casa%")
	req := NewPageRequest(1, 10, filter, []string{"name ASC"})
	assert.Same(t, filter, req.GetFilter())
	assert.Equal(t, []string{"name ASC"}, req.GetOrders())

	assert.Nil(t, NewDefaultPageRequest(1, 10).GetFilter())
	assert.Empty(t, NewDefaultPageRequest(1, 10).GetOrders())
}

func TestNewDefaultPagination(t *testing.T) {
	p := NewDefaultPagination[int](2, 5)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 5, p.PageSize)
	assert.Zero(t, p.Total)
	assert.NotNil(t, p.Items)
	assert.Empty(t, p.Items)
}
