// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/stacklok/headerinspect/env"
)

// PathEnv overrides the configuration file location.
const PathEnv = "HEADERINSPECT_CONFIG"

// DefaultPath returns the configuration path under the XDG config home,
// $XDG_CONFIG_HOME/headerinspect/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "headerinspect", "config.yaml")
}

// Resolve returns the configuration path: the value of HEADERINSPECT_CONFIG
// when it is set and not empty, otherwise DefaultPath. The second result
// reports whether the path was chosen explicitly.
func Resolve(envReader env.Reader) (path string, explicit bool) {
	if p, ok := envReader.LookupEnv(PathEnv); ok && p != "" {
		return p, true
	}
	return DefaultPath(), false
}
