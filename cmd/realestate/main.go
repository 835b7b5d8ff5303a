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

package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inmobilia/realestate/api"
	"github.com/inmobilia/realestate/config"
	"github.com/inmobilia/realestate/database"
	"github.com/inmobilia/realestate/entity"
	"github.com/inmobilia/realestate/service"
	"github.com/inmobilia/realestate/storage"
	"github.com/inmobilia/realestate/utils"
)

const shutdownTimeout = 15 * time.Second

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		utils.NewLogger("MAIN").Fatalf("load config: %v", err)
	}
	utils.ConfigureConsoleLogFormat(cfg.Log.Format)
	utils.ConfigureLogLevel(cfg.Log.Level)
	log := utils.NewLogger("MAIN")

	entity.RegisterModels()
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	defer database.CloseDB()

	store := storage.NewFileStore(cfg.Uploads.Dir, cfg.Uploads.URLPrefix)

	handlers := api.Handlers{
		Owners:         api.NewOwnersHandler(service.NewOwnerService(db)),
		Properties:     api.NewPropertiesHandler(service.NewPropertyService(db)),
		PropertyImages: api.NewPropertyImagesHandler(service.NewPropertyImageService(db), store),
		PropertyTraces: api.NewPropertyTracesHandler(service.NewPropertyTraceService(db)),
	}
	server := api.NewServer(cfg.Server.Port, handlers, store)

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("server error: %v", err)
	case sig := <-quit:
		log.Infof("received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Stop(ctx); err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
