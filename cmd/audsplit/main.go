// SPDX-License-Identifier: EPL-2.0

// Command audsplit cuts a WAV or AIFF recording into equal-length WAV slices.
//
// Usage:
//
//	audsplit -s take.aiff -d out -n 4
//	audsplit -config jobs.yaml
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/ik5/audsplit"
	"github.com/ik5/audsplit/audio"
	"github.com/ik5/audsplit/internal/config"
	"github.com/ik5/audsplit/split"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("audsplit", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var job config.Job
	fs.StringVar(&job.Source, "s", "", "source WAV or AIFF file (shorthand)")
	fs.StringVar(&job.Source, "source", "", "source WAV or AIFF file")
	fs.StringVar(&job.Destination, "d", "", "destination directory (shorthand)")
	fs.StringVar(&job.Destination, "destination", "", "destination directory")
	fs.StringVar(&job.Prefix, "p", "", "slice file name prefix (shorthand)")
	fs.StringVar(&job.Prefix, "prefix", "", "slice file name prefix, defaults to the source name")
	fs.IntVar(&job.Slices, "n", 0, "number of slices (shorthand)")
	fs.IntVar(&job.Slices, "slices", 0, "number of slices")
	configPath := fs.String("config", "", "YAML job file; replaces the single job flags")
	logLevel := fs.String("log-level", "", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := loadConfig(*configPath, job)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(stderr, "audsplit: job file %q not found\n", *configPath)
		} else {
			fmt.Fprintf(stderr, "audsplit: %v\n", err)
		}
		return 2
	}

	// The flag wins over the job file.
	if *logLevel != "" {
		cfg.LogLevel = config.LogLevel(*logLevel)
		if !cfg.LogLevel.IsValid() {
			fmt.Fprintf(stderr, "audsplit: log level %q is invalid; valid values: debug, info, warn, error\n", *logLevel)
			return 2
		}
	}

	logger := newLogger(stderr, cfg.LogLevel)

	for i, j := range cfg.Jobs {
		if err := runJob(logger, j); err != nil {
			logFailure(logger, j, err)
			if len(cfg.Jobs) > 1 {
				logger.Error("stopping", "job", i+1, "jobs", len(cfg.Jobs))
			}
			return 1
		}
	}

	return 0
}

// loadConfig reads the job file when path is set, otherwise builds a
// single job from the command line.
func loadConfig(path string, job config.Job) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}

	cfg := &config.Config{Jobs: []config.Job{job}}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runJob(logger *slog.Logger, job config.Job) error {
	logger.Info("audsplit starting",
		"source", job.Source,
		"destination", job.Destination,
		"slices", job.Slices,
		"prefix", split.Stem(job.Source, job.Prefix),
	)

	if err := os.MkdirAll(job.Destination, 0o755); err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	res, err := audsplit.SplitFile(job.Source, audsplit.Options{
		Slices:      job.Slices,
		Prefix:      job.Prefix,
		Destination: job.Destination,
		Observer:    split.NewLogObserver(logger),
	})
	if err != nil {
		return err
	}

	logger.Info("split complete", "destination", res.Dir, "files", len(res.Files))
	return nil
}

func logFailure(logger *slog.Logger, job config.Job, err error) {
	var sliceErr *split.SliceError
	switch {
	case errors.As(err, &sliceErr):
		logger.Error("failed to write slice",
			"source", job.Source,
			"slice", sliceErr.Index+1,
			"path", sliceErr.Path,
			"err", sliceErr.Err,
		)
	case errors.Is(err, audio.ErrUnsupportedFormat):
		logger.Error("unsupported source type",
			"source", job.Source,
			"supported", supportedExtensions(),
			"err", err,
		)
	default:
		logger.Error("split failed", "source", job.Source, "err", err)
	}
}

func supportedExtensions() string {
	exts := audsplit.DefaultRegistry().Extensions()
	slices.Sort(exts)
	return strings.Join(exts, ", ")
}

func newLogger(w io.Writer, level config.LogLevel) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.SlogLevel()}))
}
