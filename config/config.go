// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: Settings store for texelpad backed by viper, with hot reload.

package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/framegrace/texelpad/internal/logging"
)

const (
	configName = "texelpad"
	envPrefix  = "TEXELPAD"
)

// Settings is the typed view of the configuration file.
type Settings struct {
	DefaultApp string                       `mapstructure:"default_app" yaml:"default_app"`
	Panes      int                          `mapstructure:"panes" yaml:"panes"`
	LogLevel   string                       `mapstructure:"log_level" yaml:"log_level"`
	LogFile    string                       `mapstructure:"log_file" yaml:"log_file"`
	Theme      map[string]map[string]string `mapstructure:"theme" yaml:"theme"`
	Apps       map[string]map[string]any    `mapstructure:"apps" yaml:"apps"`
}

// App returns the per-app section for name, or nil.
func (s *Settings) App(name string) map[string]any {
	if s == nil || s.Apps == nil {
		return nil
	}
	return s.Apps[strings.ToLower(name)]
}

// Store owns a viper instance and the most recently decoded Settings.
type Store struct {
	v       *viper.Viper
	mu      sync.RWMutex
	current *Settings
	// watchable is false for in-memory filesystems fsnotify cannot observe.
	watchable bool
}

// Open loads settings. An explicit path must exist; otherwise texelpad.{yaml,json,toml}
// is looked up in the user config directory and defaults apply when it is absent.
func Open(path string) (*Store, error) {
	v := viper.New()
	fs := FsFactory()
	v.SetFs(fs)
	if err := applyDefaults(v); err != nil {
		return nil, err
	}

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, fmt.Errorf("expand config path: %w", err)
		}
		v.SetConfigFile(expanded)
	} else {
		v.SetConfigName(configName)
		if dir, err := configRoot(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_, onDisk := fs.(*afero.OsFs)
	s := &Store{v: v, watchable: onDisk}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		s.logger().Debug("no config file, using defaults")
	}
	if err := s.decode(); err != nil {
		return nil, err
	}
	return s, nil
}

// Settings returns the current snapshot. Callers must treat it as read-only.
func (s *Store) Settings() *Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Path returns the config file in use, or "" when running on defaults.
func (s *Store) Path() string {
	return s.v.ConfigFileUsed()
}

// Reload re-reads the config file and replaces the snapshot.
func (s *Store) Reload() error {
	if s.Path() != "" {
		if err := s.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return s.decode()
}

// Watch calls fn with fresh settings whenever the config file changes.
// It does nothing when no file is in use or the file is not on disk. fn runs
// on the watcher goroutine.
func (s *Store) Watch(fn func(*Settings)) {
	if s.Path() == "" || fn == nil || !s.watchable {
		return
	}
	s.v.OnConfigChange(func(ev fsnotify.Event) {
		if err := s.decode(); err != nil {
			s.logger().Warn("reload failed", zap.String("file", ev.Name), zap.Error(err))
			return
		}
		s.logger().Info("settings reloaded", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
		fn(s.Settings())
	})
	s.v.WatchConfig()
}

// logger is looked up on each use because logging is set up after Open.
func (s *Store) logger() *zap.Logger { return logging.Named("config") }

func (s *Store) decode() error {
	var next Settings
	if err := s.v.Unmarshal(&next); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	normalize(&next)
	s.mu.Lock()
	s.current = &next
	s.mu.Unlock()
	return nil
}

func normalize(s *Settings) {
	if s.DefaultApp == "" {
		s.DefaultApp = defaultApp
	}
	if s.Panes < 1 {
		s.Panes = 1
	}
	if s.Theme == nil {
		s.Theme = map[string]map[string]string{}
	}
}
