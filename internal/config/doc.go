// Package config loads, normalizes, and validates marquee configuration data.
//
// It supplies repository defaults rooted in the XDG base directories, expands
// user paths (including tilde shortcuts), reads TOML files, and honours the
// MARQUEE_DATA_FILE environment fallback. The Config type centralizes every
// knob the CLI needs so the catalog file location, genre matching behaviour,
// and log output are discovered in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
