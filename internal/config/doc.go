// Package config loads, normalizes, and validates video2gif configuration.
//
// It discovers the TOML file (explicit path, user config dir, or project-local
// video2gif.toml), applies defaults for every section, expands user paths, and
// checks enumerated values with the same parsers the command line uses. The
// package also ships the sample file written by `video2gif config init`.
package config
