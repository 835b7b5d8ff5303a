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

// Package config loads application settings in layers: built-in defaults,
// then an optional YAML file, then environment variables. A .env file in the
// working directory is folded into the environment first. Database connection
// overrides (DB_HOST and friends) are applied later by the database factory.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/inmobilia/realestate/database"
	"github.com/inmobilia/realestate/utils"
)

type ServerConfig struct {
	Port string `yaml:"port"`
}

type UploadConfig struct {
	Dir       string `yaml:"dir"`
	URLPrefix string `yaml:"urlPrefix"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Config struct {
	Server   ServerConfig    `yaml:"server"`
	Uploads  UploadConfig    `yaml:"uploads"`
	Log      LogConfig       `yaml:"log"`
	Database database.Config `yaml:"database"`
}

// Default returns the configuration used when nothing is overridden: a local
// sqlite database file and local image storage, suitable for a dev run.
func Default() *Config {
	conn := database.DefaultConnectionConfig()
	conn.Type = "sqlite"
	conn.DBName = "realestate"
	return &Config{
		Server:  ServerConfig{Port: "8080"},
		Uploads: UploadConfig{Dir: "data/images", URLPrefix: "/images/properties"},
		Log:     LogConfig{Level: "info", Format: "text"},
		Database: database.Config{
			ConnectionConfig: *conn,
			SchemaConfig: database.SchemaConfig{
				CreateTablesOnStartup: true,
				EnableForeignKey:      true,
			},
		},
	}
}

// Load assembles the configuration. When path is empty the CONFIG_FILE
// environment variable is consulted; a missing file is not an error.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err == nil {
		utils.NewLogger("CONFIG").Debug("loaded .env file")
	}

	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config file %s: %w", path, err)
			}
		} else if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Server.Port = utils.EnvDefaultString("PORT", cfg.Server.Port)
	cfg.Uploads.Dir = utils.EnvDefaultString("UPLOAD_DIR", cfg.Uploads.Dir)
	cfg.Log.Level = utils.EnvDefaultString("LOG_LEVEL", cfg.Log.Level)
	cfg.Log.Format = utils.EnvDefaultString("LOG_FORMAT", cfg.Log.Format)
	return cfg, nil
}
