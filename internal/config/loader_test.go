package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/audsplit/internal/config"
	"github.com/ik5/audsplit/split"
)

func TestLoadFromReader_Valid(t *testing.T) {
	t.Parallel()
	yaml := `
log_level: debug
jobs:
  - source: takes/take1.wav
    destination: out
    slices: 3
  - source: takes/drums.aiff
    destination: out
    prefix: drum
    slices: 8
`
	cfg, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("LoadFromReader() error = %v", err)
	}

	if cfg.LogLevel != config.LogDebug {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if len(cfg.Jobs) != 2 {
		t.Fatalf("got %d jobs, want 2", len(cfg.Jobs))
	}

	want := config.Job{Source: "takes/drums.aiff", Destination: "out", Prefix: "drum", Slices: 8}
	if cfg.Jobs[1] != want {
		t.Errorf("Jobs[1] = %+v, want %+v", cfg.Jobs[1], want)
	}
}

func TestLoadFromReader_UnknownField(t *testing.T) {
	t.Parallel()
	yaml := `
jobs:
  - source: a.wav
    destination: out
    slices: 2
    number_of_slices: 2
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for unknown field, got nil")
	}
	if !strings.Contains(err.Error(), "number_of_slices") {
		t.Errorf("error should name the unknown field, got: %v", err)
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()
	yaml := `
log_level: verbose
jobs:
  - slices: 0
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	for _, want := range []string{
		`log_level "verbose" is invalid`,
		"jobs[0].source is required",
		"jobs[0].destination is required",
		"jobs[0].slices 0",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should contain %q, got: %v", want, err)
		}
	}
	if !errors.Is(err, split.ErrInvalidSliceCount) {
		t.Errorf("errors.Is(err, ErrInvalidSliceCount) = false; err = %v", err)
	}
}

func TestValidate_NoJobs(t *testing.T) {
	t.Parallel()

	err := config.Validate(&config.Config{})
	if err == nil || !strings.Contains(err.Error(), "at least one job") {
		t.Errorf("Validate() error = %v, want missing jobs error", err)
	}
}

func TestValidate_CollidingOutputs(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Jobs: []config.Job{
		{Source: "a/take.wav", Destination: "out", Slices: 2},
		{Source: "b/take.aiff", Destination: "./out/", Slices: 4},
		{Source: "b/take.aiff", Destination: "out", Prefix: "b", Slices: 4},
	}}

	err := config.Validate(cfg)
	if err == nil {
		t.Fatal("expected collision error, got nil")
	}
	if !strings.Contains(err.Error(), "jobs[1] writes the same slice files as jobs[0]") {
		t.Errorf("unexpected error: %v", err)
	}
	if strings.Contains(err.Error(), "jobs[2]") {
		t.Errorf("prefixed job should not collide: %v", err)
	}
}

func TestJob_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		job     config.Job
		wantErr bool
	}{
		{"valid", config.Job{Source: "a.wav", Destination: "out", Slices: 1}, false},
		{"negative slices", config.Job{Source: "a.wav", Destination: "out", Slices: -1}, true},
		{"missing source", config.Job{Destination: "out", Slices: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.job.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "jobs.yaml")
	content := "jobs:\n  - source: a.wav\n    destination: out\n    slices: 2\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Jobs) != 1 || cfg.Jobs[0].Slices != 2 {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() error = %v, want os.ErrNotExist", err)
	}
}

func TestLogLevel_SlogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level config.LogLevel
		want  slog.Level
	}{
		{config.LogDebug, slog.LevelDebug},
		{config.LogInfo, slog.LevelInfo},
		{config.LogWarn, slog.LevelWarn},
		{config.LogError, slog.LevelError},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := tt.level.SlogLevel(); got != tt.want {
			t.Errorf("LogLevel(%q).SlogLevel() = %v, want %v", tt.level, got, tt.want)
		}
	}
}
