// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	envFileVariable = "ENV_FILE"
	defaultEnvFile  = ".env"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags.
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// loadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set.
//
// The file path is taken from ENV_FILE. A missing default .env is not an
// error; a missing file named explicitly by ENV_FILE is.
func loadDotEnv() error {
	path, explicit := os.LookupEnv(envFileVariable)
	if !explicit || path == "" {
		path = defaultEnvFile
		explicit = false
	}

	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading env file %q: %w", path, err)
	}

	return nil
}
