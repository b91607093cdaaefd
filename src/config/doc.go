// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads binspan settings from a JSON or YAML file.
//
// Defaults are applied first, then values from the file named by the
// caller or by the BINSPAN_CONFIG_FILE environment variable, then
// environment overrides. Invalid numeric values fall back to defaults.
// Command-line flags are applied on top by the cli package.
package config
