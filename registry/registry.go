// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/registry.go
// Summary: Registry of pane content kinds the shell can instantiate by name.

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sahilm/fuzzy"
	"go.uber.org/zap"

	"github.com/framegrace/texelpad/internal/logging"
	"github.com/framegrace/texelpad/texel"
)

// AppFactory creates a new pane content instance.
type AppFactory func() texel.PaneContent

// AppEntry represents a registered app with its metadata and factory.
type AppEntry struct {
	Manifest *Manifest
	Factory  AppFactory
}

// Registry manages the collection of available apps.
type Registry struct {
	mu   sync.RWMutex
	apps map[string]*AppEntry
	log  *zap.Logger
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{
		apps: make(map[string]*AppEntry),
		log:  logging.Named("registry"),
	}
}

// RegisterBuiltIn registers an app compiled into the binary. A later
// registration under the same name replaces the earlier one.
func (r *Registry) RegisterBuiltIn(manifest *Manifest, factory AppFactory) error {
	if manifest.Type == "" {
		manifest.Type = AppTypeBuiltIn
	}
	if err := manifest.Validate(); err != nil {
		return fmt.Errorf("register %q: %w", manifest.Name, err)
	}
	if factory == nil {
		return fmt.Errorf("register %q: nil factory", manifest.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[manifest.Name] = &AppEntry{Manifest: manifest, Factory: factory}
	r.log.Debug("registered built-in app", zap.String("app", manifest.Name))
	return nil
}

// Get retrieves an app entry by name, or nil.
func (r *Registry) Get(name string) *AppEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.apps[name]
}

// List returns all apps sorted by display name.
func (r *Registry) List() []*AppEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*AppEntry, 0, len(r.apps))
	for _, entry := range r.apps {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Manifest.DisplayName < entries[j].Manifest.DisplayName
	})
	return entries
}

// ListByCategory returns apps grouped by category.
func (r *Registry) ListByCategory() map[string][]*AppEntry {
	categories := make(map[string][]*AppEntry)
	for _, entry := range r.List() {
		category := entry.Manifest.Category
		if category == "" {
			category = "other"
		}
		categories[category] = append(categories[category], entry)
	}
	return categories
}

// Search fuzzy-matches query against app names and display names, best match
// first. An empty query returns List().
func (r *Registry) Search(query string) []*AppEntry {
	all := r.List()
	if query == "" {
		return all
	}
	source := make([]string, len(all))
	for i, entry := range all {
		source[i] = entry.Manifest.Name + " " + entry.Manifest.DisplayName
	}
	matches := fuzzy.Find(query, source)
	results := make([]*AppEntry, 0, len(matches))
	for _, m := range matches {
		results = append(results, all[m.Index])
	}
	return results
}

// CreateApp creates a new instance of the named app.
func (r *Registry) CreateApp(name string) (texel.PaneContent, error) {
	entry := r.Get(name)
	if entry == nil {
		return nil, fmt.Errorf("app not found: %s", name)
	}
	content := entry.Factory()
	if content == nil {
		return nil, fmt.Errorf("app %q factory returned nil", name)
	}
	return content, nil
}

// Count returns the total number of registered apps.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.apps)
}
