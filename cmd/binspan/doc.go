// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// binspan is a command-line hex dump tool built on pooled byte spans.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/binspan/cmd/binspan@latest
//
// # Usage
//
//	binspan [FLAGS] [FILE...]
//
// Without FILE, or when FILE is -, standard input is read.
//
// # Flags
//
//	-d, --delimiter   Separator between byte pairs, doubled every 8 bytes (default "-")
//	-l, --lower       Use lowercase hex digits
//	-w, --width       Bytes per line, 0 for a single line (default 16)
//	-c, --chunk       Bytes read per chunk (default 4096)
//	    --workers     Files processed concurrently (default 4)
//	    --skip        Discard N leading bytes of each input
//	    --limit       Emit at most N bytes of each input
//	-j, --json        Emit a JSON summary
//	    --stats       Print per-input summaries and pool metrics to stderr
//	    --config      JSON or YAML config file (env BINSPAN_CONFIG_FILE)
//	    --log-file    Append JSON log entries to a rotating file
//	-o, --output      Destination file (default: stdout)
//
// # Examples
//
// Dump a file sixteen bytes per line:
//
//	binspan firmware.bin
//
// Render a compact lowercase string:
//
//	printf 'hello' | binspan -d '' -l -w 0
//
// Compare several files and show pool metrics:
//
//	binspan --stats a.bin b.bin c.bin
package main
