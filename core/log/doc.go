// Package log provides structured logging for textkit binaries.
//
// Package: log
// Title: textkit Structured Logging
// Description: Level-filtered logging with persistent fields and pluggable
//              formatters (JSON, text, logfmt). The conversion and
//              classification packages never log; the CLI and the
//              configuration loader do.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-12
//
// Usage:
//   logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//   logger.WithName("config").Debug("loaded settings", log.Field("path", path))
package log
