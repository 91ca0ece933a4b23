// SPDX-License-Identifier: EPL-2.0

// Package config provides the job file schema and loader for the audsplit
// command.
package config

import "log/slog"

// LogLevel controls log verbosity.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// SlogLevel maps l to a slog level. Empty and unknown values map to info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogDebug:
		return slog.LevelDebug
	case LogWarn:
		return slog.LevelWarn
	case LogError:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Config is the root of a job file.
type Config struct {
	LogLevel LogLevel `yaml:"log_level"`

	// Jobs run in file order.
	Jobs []Job `yaml:"jobs"`
}

// Job splits one source file.
type Job struct {
	// Source is a WAV or AIFF file.
	Source string `yaml:"source"`

	// Destination directory; created when missing.
	Destination string `yaml:"destination"`

	// Prefix for the slice file names. Defaults to the source base name.
	Prefix string `yaml:"prefix"`

	// Slices is the number of output files.
	Slices int `yaml:"slices"`
}
