// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"strings"
)

// ExecutableName returns the program name from args[0] without directories
// or a trailing ".exe". Both "/" and "\" separate directories, so Windows
// paths are handled on any OS. It returns fallback when args is empty or
// args[0] has no name component.
//
//   - "/usr/local/bin/binspan" → "binspan"
//   - "C:\tools\binspan.exe" → "binspan"
func ExecutableName(args []string, fallback string) string {
	if len(args) == 0 {
		return fallback
	}

	path := strings.TrimRight(args[0], `/\`)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}

	name := strings.TrimSuffix(path, ".exe")
	if name == "" || name == "." {
		return fallback
	}
	return name
}
