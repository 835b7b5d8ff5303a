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

package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/inmobilia/realestate/database"
	"github.com/inmobilia/realestate/storage"
)

// Handlers bundles the per-entity handlers mounted by the server.
type Handlers struct {
	Owners         *OwnersHandler
	Properties     *PropertiesHandler
	PropertyImages *PropertyImagesHandler
	PropertyTraces *PropertyTracesHandler
}

type Server struct {
	httpServer *http.Server
}

// NewServer builds the chi router and binds all API routes under /api/v1.
// Uploaded images are served read-only from the file store's root.
func NewServer(port string, h Handlers, store *storage.FileStore) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/owners", h.Owners.Routes)
		r.Route("/properties", h.Properties.Routes)
		r.Route("/property-images", h.PropertyImages.Routes)
		r.Route("/property-traces", h.PropertyTraces.Routes)
	})

	r.Get("/healthz", healthz)

	if store != nil {
		fileServer := http.StripPrefix("/images/properties/", http.FileServer(http.Dir(store.Root())))
		r.Get("/images/properties/*", fileServer.ServeHTTP)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:    ":" + port,
			Handler: r,
		},
	}
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

func (s *Server) Start() error {
	log.Infof("starting REST server on %s", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	log.Info("stopping REST server")
	return s.httpServer.Shutdown(ctx)
}

func healthz(w http.ResponseWriter, r *http.Request) {
	status := database.GetHealthStatus(r.Context())
	if status == nil {
		writeError(w, http.StatusServiceUnavailable, "database not initialized")
		return
	}
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, status)
}
