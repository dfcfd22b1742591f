// Package config holds the settings of the superstring command: defaults,
// an optional YAML file, and their translation into solver options.
package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"

	"github.com/tamirms/superstring"
	sserrors "github.com/tamirms/superstring/errors"
)

// Config is the command configuration. Field names double as YAML keys.
type Config struct {
	Workers            int    `json:"workers"`
	Partitions         int    `json:"partitions,omitempty"`
	Partition          string `json:"partition"`
	Algorithm          string `json:"algorithm"`
	ParallelCompactMin int    `json:"parallelCompactMin,omitempty"`
	Dedupe             bool   `json:"dedupe"`
	Checksum           bool   `json:"checksum"`
	LogLevel           string `json:"logLevel"`
}

// Default returns the configuration used when no file or flag overrides it.
func Default() Config {
	return Config{
		Workers:   1,
		Partition: superstring.PartitionFlat.String(),
		Algorithm: superstring.OverlapDescending.String(),
		LogLevel:  logrus.InfoLevel.String(),
	}
}

// Load reads a YAML file over the defaults. Keys missing from the file keep
// their default values; unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %v", sserrors.ErrInvalidConfig, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", sserrors.ErrInvalidConfig, c.Workers)
	}
	if c.Partitions < 0 {
		return fmt.Errorf("%w: partitions must be >= 0, got %d", sserrors.ErrInvalidConfig, c.Partitions)
	}
	if c.ParallelCompactMin < 0 {
		return fmt.Errorf("%w: parallelCompactMin must be >= 0, got %d", sserrors.ErrInvalidConfig, c.ParallelCompactMin)
	}
	if _, err := superstring.ParsePartition(c.Partition); err != nil {
		return fmt.Errorf("%w: %w", sserrors.ErrInvalidConfig, err)
	}
	if _, err := superstring.ParseOverlapAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("%w: %w", sserrors.ErrInvalidConfig, err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", sserrors.ErrInvalidConfig, err)
	}
	return nil
}

// Level returns the configured log level.
func (c Config) Level() (logrus.Level, error) {
	return logrus.ParseLevel(c.LogLevel)
}

// SolveOptions translates the configuration into solver options.
func (c Config) SolveOptions() ([]superstring.SolveOption, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	partition, _ := superstring.ParsePartition(c.Partition)
	algo, _ := superstring.ParseOverlapAlgorithm(c.Algorithm)

	opts := []superstring.SolveOption{
		superstring.WithWorkers(c.Workers),
		superstring.WithPartition(partition),
		superstring.WithOverlapAlgorithm(algo),
	}
	if c.Partitions > 0 {
		opts = append(opts, superstring.WithPartitions(c.Partitions))
	}
	if c.ParallelCompactMin > 0 {
		opts = append(opts, superstring.WithParallelCompactMin(c.ParallelCompactMin))
	}
	if c.Dedupe {
		opts = append(opts, superstring.WithDedupe())
	}
	return opts, nil
}
