// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads textkit settings from TOML or YAML files,
//              .env files and TEXTKIT_ environment variables.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-12 v0.2.0: Typed Settings with struct tag validation

/*
Package config provides configuration loading for the textkit CLI.

Configuration files are TOML (default) or YAML, detected by extension.
Values are addressed with dotted keys; an environment variable built from the
prefix and the upper-cased key overrides the file:

	[json]
	max_depth = 64        # TEXTKIT_JSON_MAX_DEPTH=8 overrides this

Before the file is read, LoadSettings loads a .env file from the working
directory into the environment. Variables that are already set are kept.

The typed view is Settings:

	settings, _, err := config.LoadSettings("")
	if err != nil {
		return err
	}
	conv := convertx.New(convertx.WithWhitespaceAsAbsent(settings.Convert.WhitespaceAsAbsent))

Settings.Validate reports the first invalid key as an INVALID_CONFIG error
with the offending key and value in its details.

Recognized keys:

	convert.whitespace_as_absent  bool    default true
	phone.min_length              int     default 0 (unbounded)
	phone.max_length              int     default 0 (unbounded)
	json.max_bytes                int     default 1048576
	json.max_depth                int     default 512
	json.indent                   string  default two spaces
	format.locale                 string  default "invariant"
	log.level                     string  default "warn"
	log.format                    string  default "text"
*/
package config
