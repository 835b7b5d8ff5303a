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

package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inmobilia/realestate/api"
	"github.com/inmobilia/realestate/database"
	"github.com/inmobilia/realestate/entity"
	"github.com/inmobilia/realestate/service"
	"github.com/inmobilia/realestate/storage"
)

var (
	setupOnce sync.Once
	setupErr  error
	handler   http.Handler
)

func setupServer(t *testing.T) http.Handler {
	t.Helper()
	setupOnce.Do(func() {
		entity.RegisterModels()
		conn := database.DefaultConnectionConfig()
		conn.Type = "sqlite"
		conn.DBName = ":memory:"
		conn.EnableReconnect = false
		// InitDB wires the global factory, so /healthz reports real status
		db, err := database.InitDB(&database.Config{
			ConnectionConfig: *conn,
			SchemaConfig:     database.SchemaConfig{CreateTablesOnStartup: true, EnableForeignKey: true},
		})
		if err != nil {
			setupErr = err
			return
		}

		store := storage.NewFileStore(os.TempDir(), "/images/properties")
		handlers := api.Handlers{
			Owners:         api.NewOwnersHandler(service.NewOwnerService(db)),
			Properties:     api.NewPropertiesHandler(service.NewPropertyService(db)),
			PropertyImages: api.NewPropertyImagesHandler(service.NewPropertyImageService(db), store),
			PropertyTraces: api.NewPropertyTracesHandler(service.NewPropertyTraceService(db)),
		}
		handler = api.NewServer("0", handlers, store).Handler()
	})
	require.NoError(t, setupErr)
	return handler
}

func doJSON(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

type ownerResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address string    `json:"address"`
}

type propertyResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Price   float64   `json:"price"`
	OwnerID uuid.UUID `json:"ownerId"`
}

func postOwner(t *testing.T, h http.Handler, name string) ownerResponse {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/v1/owners", map[string]string{
		"name":    name,
		"address": "Av Siempre Viva 742",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var owner ownerResponse
	decode(t, rec, &owner)
	return owner
}

func postProperty(t *testing.T, h http.Handler, ownerID uuid.UUID, name string, price float64) propertyResponse {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/api/v1/properties", map[string]interface{}{
		"name":    name,
		"address": "Av Siempre Viva 742",
		"price":   price,
		"ownerId": ownerID,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var property propertyResponse
	decode(t, rec, &property)
	return property
}

func TestOwnerEndpoints(t *testing.T) {
	h := setupServer(t)

	owner := postOwner(t, h, "Tania Salcedo")
	assert.NotEqual(t, uuid.Nil, owner.ID)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/owners/"+owner.ID.String(), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/owners/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/owners/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/owners", map[string]string{"address": "no name"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPropertyListEndpoint(t *testing.T) {
	h := setupServer(t)

	owner := postOwner(t, h, "Victor Lara")
	tag := uuid.New().String()[:8]
	postProperty(t, h, owner.ID, "lst-"+tag+"-one", 100)
	postProperty(t, h, owner.ID, "lst-"+tag+"-two", 300)

	rec := doJSON(t, h, http.MethodGet, "/api/v1/properties?name=lst-"+tag+"&minPrice=200", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Page     int                `json:"page"`
		PageSize int                `json:"pageSize"`
		Total    int                `json:"totalCount"`
		Items    []propertyResponse `json:"items"`
	}
	decode(t, rec, &page)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "lst-"+tag+"-two", page.Items[0].Name)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/properties?minPrice=-1", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/properties?minPrice=abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangePriceEndpoint(t *testing.T) {
	h := setupServer(t)

	owner := postOwner(t, h, "Wilson Mora")
	property := postProperty(t, h, owner.ID, "Penthouse Rio", 800)

	rec := doJSON(t, h, http.MethodPatch, "/api/v1/properties/"+property.ID.String()+"/price",
		map[string]float64{"price": 750})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated propertyResponse
	decode(t, rec, &updated)
	assert.Equal(t, 750.0, updated.Price)

	rec = doJSON(t, h, http.MethodPatch, "/api/v1/properties/"+property.ID.String()+"/price",
		map[string]float64{"price": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, h, http.MethodPatch, "/api/v1/properties/"+uuid.New().String()+"/price",
		map[string]float64{"price": 10})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestImageUploadEndpoint(t *testing.T) {
	h := setupServer(t)

	owner := postOwner(t, h, "Ximena Rojas")
	property := postProperty(t, h, owner.ID, "Cabana Lago", 120)

	body, contentType := multipartFile(t, "front.jpg")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/property-images/"+property.ID.String(), body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var image struct {
		ID  uuid.UUID `json:"id"`
		URL string    `json:"url"`
	}
	decode(t, rec, &image)
	assert.True(t, strings.HasPrefix(image.URL, "/images/properties/"))

	listRec := doJSON(t, h, http.MethodGet, "/api/v1/property-images/property/"+property.ID.String(), nil)
	require.Equal(t, http.StatusOK, listRec.Code)

	// a bare newUrl form field updates the record without a re-upload
	put := httptest.NewRequest(http.MethodPut, "/api/v1/property-images/"+image.ID.String(),
		strings.NewReader("newUrl=/images/properties/renamed.jpg"))
	put.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, put)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var replaced struct {
		URL string `json:"url"`
	}
	decode(t, rec, &replaced)
	assert.Equal(t, "/images/properties/renamed.jpg", replaced.URL)

	put = httptest.NewRequest(http.MethodPut, "/api/v1/property-images/"+image.ID.String(),
		strings.NewReader(""))
	put.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, put)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// uploads against a missing property must not leave an image behind
	body, contentType = multipartFile(t, "ghost.jpg")
	req = httptest.NewRequest(http.MethodPost, "/api/v1/property-images/"+uuid.New().String(), body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func multipartFile(t *testing.T, name string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = io.Copy(part, strings.NewReader("jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestTraceEndpoints(t *testing.T) {
	h := setupServer(t)

	owner := postOwner(t, h, "Yolanda Ruiz")
	property := postProperty(t, h, owner.ID, "Bodega Central", 95)

	rec := doJSON(t, h, http.MethodPost, "/api/v1/property-traces", map[string]interface{}{
		"propertyId": property.ID,
		"name":       "venta",
		"value":      95,
		"tax":        9.5,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, h, http.MethodPost, "/api/v1/property-traces", map[string]interface{}{
		"propertyId": uuid.New(),
		"name":       "venta",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/property-traces/property/"+property.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var traces []struct {
		ID uuid.UUID `json:"id"`
	}
	decode(t, rec, &traces)
	assert.Len(t, traces, 1)
}

func TestHealthz(t *testing.T) {
	h := setupServer(t)
	rec := doJSON(t, h, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var status struct {
		Healthy   bool `json:"healthy"`
		Connected bool `json:"connected"`
	}
	decode(t, rec, &status)
	assert.True(t, status.Healthy)
	assert.True(t, status.Connected)
}
