package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/filepress-io/filepress/internal/core/domain"
)

type Config struct {
	Compression     CompressionConfig `yaml:"compression"`
	DestinationPath string            `yaml:"destination_path"` // Directory compressed files are written into
}

// Holds compression-specific configuration.
type CompressionConfig struct {
	Format     string `yaml:"format"`      // Container format: "gzip" or "zip"
	Level      int    `yaml:"level"`       // Compression level (0-9)
	BufferSize int    `yaml:"buffer_size"` // Size of the streaming buffers in bytes
}

// Returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		DestinationPath: "",
		Compression: CompressionConfig{
			Format:     domain.FormatGzip.String(),
			Level:      domain.DefaultLevel,
			BufferSize: 1024 * 1024, // 1MB
		},
	}
}

// Loads configuration from a YAML file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Format resolves the configured format name.
func (c *Config) Format() domain.Format {
	format, _ := domain.ParseFormat(c.Compression.Format)
	return format
}

func validateConfig(config *Config) error {
	format, ok := domain.ParseFormat(config.Compression.Format)
	if !ok || format == domain.FormatNone {
		return fmt.Errorf("format must be %q or %q", domain.FormatGzip, domain.FormatZip)
	}

	if config.Compression.Level < domain.MinLevel || config.Compression.Level > domain.MaxLevel {
		return fmt.Errorf("level must be between %d and %d", domain.MinLevel, domain.MaxLevel)
	}

	if config.Compression.BufferSize <= 0 {
		return fmt.Errorf("buffer_size must be greater than 0")
	}

	return nil
}
