// File: doc.go
// Title: Configuration Package Documentation
// Description: Loads dbgcon configuration from TOML or YAML files with
//              environment variable overlays.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14
//
// Change History:
// - 2026-03-14 v0.1.0: Initial configuration implementation

/*
Package config loads the dbgcon configuration.

Configuration is layered: built-in defaults, then an optional TOML or YAML
file selected by extension, then DBGCON_* environment variables. Every layer
only overrides what it sets.
*/
package config
