// Package config loads, normalizes, and validates eplotdb configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// EPLOTDB_REPO_URL. The Config type centralizes every knob the CLI needs so
// the database location, the markdown source, and logging are discovered in
// one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
