// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path and filesystem helpers for texelpad configuration.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"

	"github.com/framegrace/texelpad/defaults"
)

// FsFactory returns the filesystem config files are read from and written to.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// configRoot is $XDG_CONFIG_HOME/texelpad, falling back to ~/.config/texelpad.
func configRoot() (string, error) {
	xdgHome := os.Getenv("XDG_CONFIG_HOME")
	if xdgHome == "" {
		home, err := homedir.Dir()
		if err != nil {
			return "", fmt.Errorf("find home directory: %w", err)
		}
		xdgHome = filepath.Join(home, ".config")
	}
	return filepath.Join(xdgHome, configName), nil
}

// DefaultPath is where texelpad.yaml is looked up when no --config is given.
func DefaultPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, defaults.FileName), nil
}

// ErrExists is returned by WriteDefault when the target file is already there.
var ErrExists = errors.New("config file already exists")

// WriteDefault writes the embedded default config to path, creating parent
// directories. An existing file is only replaced when force is set.
func WriteDefault(path string, force bool) error {
	path, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("expand config path: %w", err)
	}
	fs := FsFactory()
	if !force {
		if _, err := fs.Stat(path); err == nil {
			return fmt.Errorf("%s: %w", path, ErrExists)
		}
	}
	if err := fs.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := afero.WriteFile(fs, path, defaults.Config(), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
