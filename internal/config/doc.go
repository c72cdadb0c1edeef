// Package config loads and validates montage configuration.
//
// Configuration lives in a TOML file (default ~/.config/montage/config.toml,
// with a project-local montage.toml fallback). Load applies defaults,
// normalizes every path field to an absolute location, and validates the
// result so downstream packages never re-check directories or log settings.
package config
