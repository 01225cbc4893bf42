// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/theming/for_app.go
// Summary: Installs the configured theme and resolves per-app overrides.

package theming

import (
	"fmt"
	"strings"
	"sync"

	"github.com/framegrace/texelpad/config"
	"github.com/framegrace/texelpad/texel/theme"
)

var (
	mu        sync.RWMutex
	overrides = map[string]theme.Config{}
)

// Apply installs settings.Theme as the global theme and records each app's
// apps.<name>.theme_overrides section.
func Apply(settings *config.Settings) {
	if settings == nil {
		return
	}
	theme.Set(theme.FromMap(settings.Theme))

	next := make(map[string]theme.Config, len(settings.Apps))
	for app := range settings.Apps {
		if o := parseOverrides(settings.App(app)["theme_overrides"]); len(o) > 0 {
			next[strings.ToLower(app)] = o
		}
	}
	mu.Lock()
	overrides = next
	mu.Unlock()
}

// ForApp returns the base theme merged with any per-app overrides.
func ForApp(app string) theme.Config {
	base := theme.Get()
	mu.RLock()
	o := overrides[strings.ToLower(app)]
	mu.RUnlock()
	if len(o) == 0 {
		return base
	}
	return theme.WithOverrides(base, o)
}

// parseOverrides accepts the nested maps produced by the config decoder.
func parseOverrides(raw any) theme.Config {
	sections, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]map[string]string, len(sections))
	for name, sec := range sections {
		keys := make(map[string]string)
		switch v := sec.(type) {
		case map[string]any:
			for k, val := range v {
				keys[k] = fmt.Sprint(val)
			}
		case map[string]string:
			for k, val := range v {
				keys[k] = val
			}
		default:
			continue
		}
		out[name] = keys
	}
	return theme.FromMap(out)
}
