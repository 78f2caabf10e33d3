// SPDX-FileCopyrightText: Copyright 2026 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

/*
Package config loads the YAML configuration of headerinspect and resolves it
into inspection policies.

# File Format

	log:
	  format: json
	  level: info
	defaults:
	  inspect: true
	  log_violations: true
	  range_max_bytesets: 5
	locations:
	  - name: downloads
	    path_prefix: /downloads/
	    block_violations: true
	    range_max_bytesets: 10
	    block_when: 'violation.header == "Range"'

A directive left out of a location inherits its value from defaults, and a
directive left out of defaults inherits from inspect.DefaultPolicy. This
includes block_when.

The document is validated against an embedded JSON schema before it is
decoded, so unknown keys and out-of-range limits are reported together as a
*ValidationError. Location names follow the rules of package
validation/location and block_when expressions are compiled with package rule.

# Locating the File

	path, explicit := config.Resolve(&env.OSReader{})
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		cfg = config.Default()
	}

HEADERINSPECT_CONFIG names the file explicitly. Otherwise the file is
$XDG_CONFIG_HOME/headerinspect/config.yaml.

# Selecting a Policy

	policy := cfg.PolicyFor(r.URL.Path)

The location with the longest matching path_prefix wins. Requests matching no
location use the defaults.
*/
package config
