// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ik5/audsplit/split"
	"gopkg.in/yaml.v3"
)

// Load reads the YAML job file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader] and [Validate].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML job file from r and validates the result.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.LogLevel != "" && !cfg.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("log_level %q is invalid; valid values: debug, info, warn, error", cfg.LogLevel))
	}

	if len(cfg.Jobs) == 0 {
		errs = append(errs, errors.New("at least one job is required"))
	}

	// Two jobs producing the same file names would overwrite each other
	outputs := make(map[string]int, len(cfg.Jobs))

	for i, job := range cfg.Jobs {
		prefix := fmt.Sprintf("jobs[%d]", i)
		problems := job.problems()
		for _, err := range problems {
			errs = append(errs, fmt.Errorf("%s.%w", prefix, err))
		}
		if len(problems) > 0 {
			continue
		}

		key := filepath.Join(filepath.Clean(job.Destination), split.Stem(job.Source, job.Prefix))
		if prev, ok := outputs[key]; ok {
			errs = append(errs, fmt.Errorf("%s writes the same slice files as jobs[%d] (%s_NNN.wav)", prefix, prev, key))
			continue
		}
		outputs[key] = i
	}

	return errors.Join(errs...)
}

// Validate checks a single job. Errors name the offending field.
func (j Job) Validate() error {
	return errors.Join(j.problems()...)
}

func (j Job) problems() []error {
	var errs []error

	if j.Source == "" {
		errs = append(errs, errors.New("source is required"))
	}
	if j.Destination == "" {
		errs = append(errs, errors.New("destination is required"))
	}
	if j.Slices < 1 {
		errs = append(errs, fmt.Errorf("slices %d: %w", j.Slices, split.ErrInvalidSliceCount))
	}

	return errs
}
