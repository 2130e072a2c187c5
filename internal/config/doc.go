// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file ($XDG_CONFIG_HOME/todo/config.toml or ~/.config/todo/config.toml)
// 3. Project config file (./.todo.toml)
// 4. Environment variables (TODO_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
// Only presentation settings live here; todos are never written to disk.
package config
