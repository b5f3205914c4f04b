// Package config loads, normalizes, and validates wordoverlap configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// WORDOVERLAP_LOG_LEVEL. The Config type centralizes every knob the CLI
// needs: the tokenizer policy, output rendering, the history database, and
// logging.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical enum values, and clear validation errors.
package config
