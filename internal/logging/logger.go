// Copyright (c) 2026 Keymaster Team
// keycalc - keypad calculator
// This source code is licensed under the MIT license found in the LICENSE file.

// Package logging holds the process-wide logger. While the terminal UI owns
// the screen, log output goes to a rotating file or nowhere.
package logging

import (
	"fmt"
	"io"
	"strings"

	clog "github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// L is the package-level logger. Callers should use the helper functions
// below for compatibility with existing calls.
var L = clog.New(io.Discard)

// Options selects the level and target of the package logger.
type Options struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// Setup replaces L. With a File set, output goes to a lumberjack rotated
// log; otherwise it goes to fallback, which may be io.Discard. The returned
// closer releases the log file and is never nil.
func Setup(opts Options, fallback io.Writer) (io.Closer, error) {
	if opts.Level == "" {
		opts.Level = "info"
	}
	level, err := clog.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		return nopCloser{}, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
	}

	var w io.Writer = fallback
	var closer io.Closer = nopCloser{}
	if opts.File != "" {
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,  // megabytes
			MaxAge:     opts.MaxAgeDays, // days
			MaxBackups: opts.MaxBackups,
			Compress:   opts.Compress,
		}
		w, closer = lj, lj
	}
	if w == nil {
		w = io.Discard
	}

	L = clog.NewWithOptions(w, clog.Options{
		Level:           level,
		ReportTimestamp: opts.File != "",
		Prefix:          "keycalc",
	})
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Debugf logs a debug-level formatted message.
func Debugf(format string, v ...interface{}) {
	L.Debug(fmt.Sprintf(format, v...))
}

// Infof logs an info-level formatted message.
func Infof(format string, v ...interface{}) {
	L.Info(fmt.Sprintf(format, v...))
}

// Warnf logs a warning-level formatted message.
func Warnf(format string, v ...interface{}) {
	L.Warn(fmt.Sprintf(format, v...))
}

// Errorf logs an error-level formatted message.
func Errorf(format string, v ...interface{}) {
	L.Error(fmt.Sprintf(format, v...))
}
