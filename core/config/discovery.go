// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Locates textkit configuration files and loads .env files into
//              the process environment before overrides are resolved.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-12
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2026-10-12 v0.2.0: Added .env loading, dropped env-only configuration

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	tkerror "github.com/msto63/textkit/core/error"
	"github.com/msto63/textkit/utils/filex"
)

// EnvPrefix is the prefix of environment variables that override settings
const EnvPrefix = "TEXTKIT"

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search locations used by the CLI
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "textkit"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"textkit"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  EnvPrefix,
	}
}

// Discover searches for a configuration file and loads the first match. When
// nothing is found and the file is optional, an empty Config is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"textkit"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	candidates := ListPossibleConfigFiles(options)
	for _, configPath := range candidates {
		if !filex.IsFile(configPath) {
			continue
		}

		cfg, err := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
		if err != nil {
			return nil, tkerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return cfg, nil
	}

	if options.Required {
		return nil, tkerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(candidates, ", "))).
			WithCode(tkerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("searchPaths", candidates)
	}

	return Empty(options.EnvPrefix), nil
}

// ListPossibleConfigFiles returns every path Discover would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}

// LoadDotEnv loads the given .env files into the environment. Missing files
// are skipped; variables already set in the environment are kept.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if !filex.Exists(file) {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return tkerror.Wrap(err, "failed to load env file").
				WithCode(tkerror.CodeEnvironmentError).
				WithOperation("config.LoadDotEnv").
				WithDetail("file", file)
		}
	}
	return nil
}
