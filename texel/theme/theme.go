// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: texel/theme/theme.go
// Summary: Process-wide resource dictionary of themed colors.
// Usage: Widgets look colors up by section and key at construction time.

package theme

import (
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// Section maps keys to color specs ("#rrggbb" or a tcell color name).
type Section map[string]string

// Config maps section names to sections.
type Config map[string]Section

var (
	mu      sync.RWMutex
	current = Config{}
)

// Get returns the active theme. The returned value must not be mutated.
func Get() Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the active theme. A nil config clears every resource.
func Set(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg == nil {
		cfg = Config{}
	}
	current = cfg
}

// FromMap converts a generic nested map (as decoded from settings) into a Config.
func FromMap(m map[string]map[string]string) Config {
	cfg := make(Config, len(m))
	for name, sec := range m {
		s := make(Section, len(sec))
		for k, v := range sec {
			s[strings.ToLower(k)] = v
		}
		cfg[strings.ToLower(name)] = s
	}
	return cfg
}

// WithOverrides returns base with every key of overrides layered on top.
func WithOverrides(base, overrides Config) Config {
	out := make(Config, len(base)+len(overrides))
	for name, sec := range base {
		cp := make(Section, len(sec))
		for k, v := range sec {
			cp[k] = v
		}
		out[name] = cp
	}
	for name, sec := range overrides {
		dst, ok := out[name]
		if !ok {
			dst = make(Section, len(sec))
			out[name] = dst
		}
		for k, v := range sec {
			dst[k] = v
		}
	}
	return out
}

// Lookup resolves a color resource. ok is false when the key is missing or
// its value does not parse as a color.
func (c Config) Lookup(section, key string) (tcell.Color, bool) {
	sec, ok := c[section]
	if !ok {
		return tcell.ColorDefault, false
	}
	spec, ok := sec[key]
	if !ok {
		return tcell.ColorDefault, false
	}
	return parseColor(spec)
}

// GetColor resolves a color resource or returns def.
func (c Config) GetColor(section, key string, def tcell.Color) tcell.Color {
	if col, ok := c.Lookup(section, key); ok {
		return col
	}
	return def
}

func parseColor(spec string) (tcell.Color, bool) {
	spec = strings.TrimSpace(strings.ToLower(spec))
	if spec == "" {
		return tcell.ColorDefault, false
	}
	if spec == "default" {
		return tcell.ColorDefault, true
	}
	col := tcell.GetColor(spec)
	if col == tcell.ColorDefault {
		return tcell.ColorDefault, false
	}
	return col, true
}
