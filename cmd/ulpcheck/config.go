// Copyright 2025 external-arm-optimized-routines Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config tunes a verification run. All fields are optional; zero values fall
// back to the command-line flags. Tolerance entries override the declared
// ULP bound per function, for platforms whose scalar reference library is
// known to be less accurate.
//
// Example:
//
//	scale = 10.0
//	seed = 1234
//
//	[tolerance]
//	atanf = 4.0
type Config struct {
	Scale     float64            `toml:"scale"`
	Seed      int64              `toml:"seed"`
	Tolerance map[string]float64 `toml:"tolerance"`
}

// loadConfig reads a TOML config file. An empty path yields a zero Config.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Scale < 0 {
		return fmt.Errorf("scale must be non-negative, got %g", c.Scale)
	}
	for name, tol := range c.Tolerance {
		if tol <= 0 {
			return fmt.Errorf("tolerance for %s must be positive, got %g", name, tol)
		}
	}
	return nil
}
