// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/scratchpad/register.go
// Summary: Registers the scratchpad with the texelpad registry.

package scratchpad

import (
	"github.com/framegrace/texelpad/registry"
	"github.com/framegrace/texelpad/texel"
)

// Manifest describes the scratchpad to the registry.
func Manifest() *registry.Manifest {
	return &registry.Manifest{
		Name:        "scratchpad",
		DisplayName: "Scratchpad",
		Description: "Blank text area for notes next to your terminals",
		Icon:        Glyph,
		Category:    "utility",
		Tags:        []string{"notes", "text"},
	}
}

func init() {
	registry.RegisterBuiltInProvider(func(*registry.Registry) (*registry.Manifest, registry.AppFactory) {
		return Manifest(), func() texel.PaneContent { return New() }
	})
}
