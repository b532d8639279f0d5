// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Open reads the given config file into the given config object,
// decoding it as TOML or YAML based on its extension (.toml, .yaml or .yml).
// Fields not present in the file keep their current values.
func Open(cfg any, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".toml":
		err = toml.Unmarshal(b, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, cfg)
	default:
		return fmt.Errorf("cli.Open: unsupported config file extension %q for %q", ext, file)
	}
	if err != nil {
		return fmt.Errorf("cli.Open: %s: %w", file, err)
	}
	return nil
}

// Save writes the given config object to the given file,
// encoding it as TOML or YAML based on its extension.
func Save(cfg any, file string) error {
	b, err := Marshal(cfg, filepath.Ext(file))
	if err != nil {
		return err
	}
	return os.WriteFile(file, b, 0666)
}

// Marshal encodes the given config object in the format
// of the given file extension (.toml, .yaml or .yml).
func Marshal(cfg any, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Marshal(cfg)
	case ".yaml", ".yml":
		return yaml.Marshal(cfg)
	}
	return nil, fmt.Errorf("cli.Marshal: unsupported config format %q", ext)
}
