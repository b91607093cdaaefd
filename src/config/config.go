// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/binspan/src/gc"
	"github.com/H0llyW00dzZ/binspan/src/stopwatch"
	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigFile names the environment variable holding the config path.
	EnvConfigFile = "BINSPAN_CONFIG_FILE"
	// EnvLogFile names the environment variable overriding Log.File.
	EnvLogFile = "BINSPAN_LOG_FILE"
)

// Default values.
const (
	DefaultDelimiter  = "-"
	DefaultWidth      = 16
	DefaultChunkSize  = 4096
	DefaultWorkers    = 4
	DefaultLogMaxSize = 10
	DefaultLogBackups = 3
	DefaultLogMaxAge  = 28
)

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config represents the binspan configuration structure.
type Config struct {
	// Output: How hex text is rendered
	Output struct {
		// Delimiter: Separator between byte pairs; doubled every 8 bytes
		Delimiter string `json:"delimiter" yaml:"delimiter"`
		// Lowercase: Use lowercase hex digits
		Lowercase bool `json:"lowercase" yaml:"lowercase"`
		// Width: Bytes per output line, 0 for a single line
		Width int `json:"width" yaml:"width"`
	} `json:"output" yaml:"output"`

	// Input: How input files are read
	Input struct {
		// ChunkSize: Bytes read per append into the window span
		ChunkSize int `json:"chunkSize" yaml:"chunkSize"`
		// Workers: Files processed concurrently
		Workers int `json:"workers" yaml:"workers"`
	} `json:"input" yaml:"input"`

	// Pools: Capacity of the shared object pools
	Pools struct {
		// TextBuffers: Idle text buffers retained by the text pool
		TextBuffers int `json:"textBuffers" yaml:"textBuffers"`
		// Stopwatches: Idle stopwatches retained by the stopwatch pool
		Stopwatches int `json:"stopwatches" yaml:"stopwatches"`
	} `json:"pools" yaml:"pools"`

	// Log: Optional rotating JSON log file
	Log struct {
		// File: Log file path, empty disables file logging
		File string `json:"file,omitempty" yaml:"file,omitempty"`
		// MaxSizeMB: Rotate after this many megabytes
		MaxSizeMB int `json:"maxSizeMB,omitempty" yaml:"maxSizeMB,omitempty"`
		// MaxBackups: Rotated files to keep
		MaxBackups int `json:"maxBackups,omitempty" yaml:"maxBackups,omitempty"`
		// MaxAgeDays: Days to keep rotated files
		MaxAgeDays int `json:"maxAgeDays,omitempty" yaml:"maxAgeDays,omitempty"`
		// Compress: Gzip rotated files
		Compress bool `json:"compress,omitempty" yaml:"compress,omitempty"`
	} `json:"log" yaml:"log"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	c := &Config{}
	c.Output.Delimiter = DefaultDelimiter
	c.Output.Width = DefaultWidth
	c.Input.ChunkSize = DefaultChunkSize
	c.Input.Workers = DefaultWorkers
	c.Pools.TextBuffers = gc.MaxItems
	c.Pools.Stopwatches = stopwatch.DefaultMaxItems
	c.Log.MaxSizeMB = DefaultLogMaxSize
	c.Log.MaxBackups = DefaultLogBackups
	c.Log.MaxAgeDays = DefaultLogMaxAge
	return c
}

// detectFormat determines the configuration file format based on file extension.
// Extension matching is case-insensitive; anything other than .yaml or .yml is JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

func unmarshal(data []byte, c *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads configuration from a JSON or YAML file or applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. BINSPAN_CONFIG_FILE environment variable is checked if path is empty
//  3. Config file values override defaults (if a path is known)
//  4. BINSPAN_LOG_FILE overrides Log.File when set
//
// A missing or malformed file is an error; an absent path is not.
func Load(path string) (*Config, error) {
	c := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := unmarshal(data, c, detectFormat(path)); err != nil {
			return nil, err
		}

		c.sanitize()
	}

	if f := os.Getenv(EnvLogFile); f != "" {
		c.Log.File = f
	}

	return c, nil
}

// sanitize resets invalid values to their defaults.
func (c *Config) sanitize() {
	if c.Output.Width < 0 {
		c.Output.Width = DefaultWidth
	}
	if c.Input.ChunkSize <= 0 {
		c.Input.ChunkSize = DefaultChunkSize
	}
	if c.Input.Workers <= 0 {
		c.Input.Workers = DefaultWorkers
	}
	if c.Pools.TextBuffers <= 0 {
		c.Pools.TextBuffers = gc.MaxItems
	}
	if c.Pools.Stopwatches <= 0 {
		c.Pools.Stopwatches = stopwatch.DefaultMaxItems
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = DefaultLogMaxSize
	}
	if c.Log.MaxBackups < 0 {
		c.Log.MaxBackups = DefaultLogBackups
	}
	if c.Log.MaxAgeDays < 0 {
		c.Log.MaxAgeDays = DefaultLogMaxAge
	}
}
