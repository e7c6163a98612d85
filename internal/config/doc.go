// Package config provides configuration management for the costing
// allocations formatter. It replaces the editable directory constants of the
// legacy tool with a typed configuration structure loaded from multiple
// sources.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//	1. Environment variables (highest priority)
//	2. Configuration file (YAML)
//	3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern COSTING_* for namespacing:
//
//	COSTING_PATHS_SOURCE_DIR=/mnt/exports/workday
//	COSTING_PATHS_OUTPUT_DIR=/mnt/payroll/formatted
//	COSTING_LOGGING_LEVEL=debug
package config
