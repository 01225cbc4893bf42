// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Seeds viper defaults from the embedded default config.

package config

import (
	"bytes"
	"fmt"

	"github.com/spf13/viper"

	"github.com/framegrace/texelpad/defaults"
)

const defaultApp = "scratchpad"

// applyDefaults registers every key of the embedded file as a viper default,
// so a user file only needs the keys it changes.
func applyDefaults(v *viper.Viper) error {
	embedded := viper.New()
	embedded.SetConfigType("yaml")
	if err := embedded.ReadConfig(bytes.NewReader(defaults.Config())); err != nil {
		return fmt.Errorf("read embedded defaults: %w", err)
	}
	for _, key := range embedded.AllKeys() {
		v.SetDefault(key, embedded.Get(key))
	}
	return nil
}
