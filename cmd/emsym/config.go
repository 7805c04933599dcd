/*
 * config.go, part of emsym.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//Config holds the options of the fold command that can be given in a YAML file.
//Flags given in the command line override them.
type Config struct {
	Symmetry  string  `yaml:"symmetry"`
	Tolerance float64 `yaml:"tolerance"`
	Cpus      int     `yaml:"cpus"`
	Plot      string  `yaml:"plot"`
	LogLevel  string  `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{Tolerance: 1e-3, LogLevel: "info"}
}

//loadConfig reads the YAML file path over the default configuration. An empty
//path gives the defaults. Unknown keys are an error.
func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("failed to read config: %w", err)
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if c.Tolerance < 0 {
		return c, fmt.Errorf("config %s: negative tolerance %g", path, c.Tolerance)
	}
	return c, nil
}
