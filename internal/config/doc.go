// Package config resolves the runtime configuration of a CLI built on the engine.
//
// # Configuration Precedence
//
// Values are resolved from five layers (highest to lowest priority):
//
//  1. Options passed to Build (version, skipAnalytics, install)
//  2. Environment variables
//  3. The per-user settings file (~/.config/<dirname>/config.json)
//  4. The host CLI's manifest (name, version, cli-engine.dirname)
//  5. Hardcoded defaults
//
// Not every field reads every layer; Build documents the chain for each one.
//
// # Installation Identifier
//
// Unless analytics are skipped, Build ensures the settings file holds an
// anonymous installation identifier, generating and persisting one on
// first use. An identifier that could not be persisted is not reported.
//
// # Environment Variables
//
//   - CLI_ENGINE_DEBUG: integer debug level; enables debug logging to stderr
//   - CLI_ENGINE_SKIP_ANALYTICS: "1" disables analytics
//   - TESTING: "1" or "true" disables analytics
//   - CLI_ENGINE_UPDATE_DISABLED: "1" or a message; disables self-update
//   - SHELL, COMSPEC: shell detection
//   - HOME, USERPROFILE, LOCALAPPDATA, XDG_CONFIG_HOME, XDG_CACHE_HOME,
//     XDG_DATA_HOME: per-user directory resolution
package config
