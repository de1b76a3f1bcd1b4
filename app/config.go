// Copyright 2016 Martin Hebnes Pedersen (LA5NTA). All rights reserved.
// Use of this source code is governed by the MIT-license that can be
// found in the LICENSE file.

package app

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/geoconv/geoconv/cfg"
	"github.com/geoconv/geoconv/internal/debug"
)

// EnvPrefix is the prefix of environment variables overriding config values.
const EnvPrefix = "GEOCONV"

func LoadConfig(cfgPath string, fallback cfg.Config) (config cfg.Config, err error) {
	config, err = ReadConfig(cfgPath)
	if os.IsNotExist(err) {
		return fallback, WriteConfig(fallback, cfgPath)
	} else if err != nil {
		return config, err
	}

	// Ensure OutputStyles has a default value
	if len(config.OutputStyles) == 0 {
		config.OutputStyles = fallback.OutputStyles
	}

	// Ensure MapCenter has a default value
	if config.MapCenter == (cfg.LatLng{}) {
		config.MapCenter = fallback.MapCenter
	}

	if config.Locale == "" {
		config.Locale = fallback.Locale
	}

	return config, nil
}

func ReadConfig(path string) (config cfg.Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	err = json.Unmarshal(data, &config)
	return
}

func WriteConfig(config cfg.Config, filePath string) error {
	b, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	// Add trailing new-line
	b = append(b, '\n')

	// Ensure path dir is available
	os.MkdirAll(filepath.Dir(filePath), os.ModePerm|os.ModeDir)

	return os.WriteFile(filePath, b, 0o600)
}

// readEnv overrides config values from GEOCONV_* environment variables.
func readEnv(config *cfg.Config) error {
	return envconfig.Process(EnvPrefix, config)
}

// loadEnvFile loads variables from path into the environment, without
// overriding variables already set. An empty path loads ./.env if present.
func loadEnvFile(path string) error {
	if path != "" {
		return godotenv.Load(path)
	}
	if err := godotenv.Load(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		debug.Printf("No .env file found (using environment variables)")
	}
	return nil
}
