// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration file.

package defaults

import _ "embed"

// FileName is the name the default config is written under.
const FileName = "texelpad.yaml"

//go:embed texelpad.yaml
var config []byte

// Config returns a copy of the embedded default config YAML.
func Config() []byte {
	return append([]byte(nil), config...)
}
