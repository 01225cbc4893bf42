// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry/manifest.go
// Summary: Defines app manifest structure for the registry system.

package registry

import "fmt"

// AppType specifies how the app is provided.
type AppType string

const (
	// AppTypeBuiltIn uses a factory compiled into the binary
	AppTypeBuiltIn AppType = "built-in"
)

// Manifest describes an application's metadata.
type Manifest struct {
	// Name is the unique identifier for this app (e.g., "scratchpad")
	Name string `json:"name"`

	// DisplayName is the human-readable name shown in listings
	DisplayName string `json:"displayName"`

	Description string  `json:"description"`
	Version     string  `json:"version,omitempty"`
	Type        AppType `json:"type,omitempty"`

	// Icon is a single glyph for visual identification
	Icon string `json:"icon"`

	// Category groups apps in listings (e.g., "system", "utility")
	Category string   `json:"category"`
	Tags     []string `json:"tags,omitempty"`
}

// Validate checks that the manifest is well-formed.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if m.DisplayName == "" {
		return fmt.Errorf("displayName cannot be empty")
	}
	switch m.Type {
	case AppTypeBuiltIn:
	default:
		return fmt.Errorf("unknown app type: %s", m.Type)
	}
	return nil
}
