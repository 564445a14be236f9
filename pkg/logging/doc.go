// Package logging provides structured logging utilities for gridcraft components.
//
// # Overview
//
// This package wraps the standard library slog package with gridcraft defaults
// and conventions for consistent logging across all components. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: per-craft traces (matched offsets, resolved outputs) with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: recovered problems such as undecodable host recipes
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("gridcraft", "v1.0.0")
//	    slog.Info("recipes loaded", "count", n)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("gridcraft", "v1.0.0", "debug")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity when no
// explicit level is given:
//
//	LOG_LEVEL=debug gridcraft craft -s recipes.lua -g grid.yaml
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "recipe added",
//	    "module": "gridcraft",
//	    "version": "v1.0.0",
//	    "tier": "exact"
//	}
package logging
