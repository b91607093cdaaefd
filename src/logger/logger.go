// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/H0llyW00dzZ/binspan/src/gc"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger by writing one JSON object per line:
//
//	{"level":"info","message":"..."}
//
// Entries are encoded into a buffer rented from a [gc.TextPool] and written
// with a single Write call.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	closer io.Closer
	texts  *gc.TextPool
	silent bool
}

// entry is the JSON shape of a log line.
type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NewJSONLogger creates a new JSON logger writing to writer.
// A nil writer discards output. When silent is true nothing is written.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		texts:  gc.Default,
		silent: silent,
	}
}

// FileConfig describes a size-rotated log file.
type FileConfig struct {
	Path       string // Log file path
	MaxSizeMB  int    // Rotate after this many megabytes
	MaxBackups int    // Old files to keep
	MaxAgeDays int    // Days to keep old files
	Compress   bool   // Gzip rotated files
}

// NewRotatingJSONLogger creates a JSON logger writing to a file rotated by
// [lumberjack]. Call Close to release the file.
//
// [lumberjack]: https://github.com/natefinch/lumberjack
func NewRotatingJSONLogger(cfg FileConfig) *JSONLogger {
	rotator := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		Compress:   cfg.Compress,
	}
	l := NewJSONLogger(rotator, false)
	l.closer = rotator
	return l
}

// Printf formats and logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprint(v...))
}

func (j *JSONLogger) write(msg string) {
	buf := j.texts.Rent()
	defer j.texts.Free(buf)

	// Encode appends the trailing newline.
	if err := json.NewEncoder(buf).Encode(entry{Level: "info", Message: msg}); err != nil {
		return
	}

	j.mu.Lock()
	j.writer.Write(buf.Bytes())
	j.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
// A previously opened log file is not closed.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}

// Close releases the log file opened by [NewRotatingJSONLogger].
// It is a no-op for other loggers.
func (j *JSONLogger) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.closer == nil {
		return nil
	}
	err := j.closer.Close()
	j.closer = nil
	j.writer = io.Discard
	return err
}
