package config

import (
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Load reads and parses the configuration file. A missing file yields the
// default configuration; keys absent from the file keep their defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "failed to parse config file")
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.Wrap(err, "failed to read config file")
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			URL:  UpstreamURL,
			Path: "lsrc2source.php",
		},
		Output: OutputConfig{
			Path: "lsrc2client.py",
		},
		Fetch: FetchConfig{
			Timeout:    60 * time.Second,
			MaxRetries: 3,
			RetryDelay: time.Second,
			Preflight:  true,
		},
		Watch: WatchConfig{
			Debounce: 500 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config) {
	if url := os.Getenv("LSRC2_SOURCE_URL"); url != "" {
		cfg.Source.URL = url
	}
	if path := os.Getenv("LSRC2_SOURCE_PATH"); path != "" {
		cfg.Source.Path = path
	}
	if path := os.Getenv("LSRC2_OUTPUT_PATH"); path != "" {
		cfg.Output.Path = path
	}
	if tmpl := os.Getenv("LSRC2_OUTPUT_TEMPLATE"); tmpl != "" {
		cfg.Output.Template = tmpl
	}

	if timeout := os.Getenv("LSRC2_FETCH_TIMEOUT"); timeout != "" {
		if v, err := time.ParseDuration(timeout); err == nil {
			cfg.Fetch.Timeout = v
		}
	}
	if retries := os.Getenv("LSRC2_FETCH_MAX_RETRIES"); retries != "" {
		if v, err := strconv.Atoi(retries); err == nil {
			cfg.Fetch.MaxRetries = v
		}
	}
	if preflight := os.Getenv("LSRC2_FETCH_PREFLIGHT"); preflight != "" {
		if v, err := strconv.ParseBool(preflight); err == nil {
			cfg.Fetch.Preflight = v
		}
	}

	if level := os.Getenv("LSRC2_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if format := os.Getenv("LSRC2_LOG_FORMAT"); format != "" {
		cfg.Logging.Format = format
	}
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.Source.Path == "" {
		return errors.New("source.path is required")
	}
	if cfg.Output.Path == "" {
		return errors.New("output.path is required")
	}

	// Zero values mean "use the default"
	if cfg.Fetch.MaxRetries <= 0 {
		cfg.Fetch.MaxRetries = 1
	}
	if cfg.Fetch.Timeout <= 0 {
		cfg.Fetch.Timeout = 60 * time.Second
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	case "":
		cfg.Logging.Level = "info"
	default:
		return errors.Newf("logging.level must be one of debug, info, warn, error (got %q)", cfg.Logging.Level)
	}

	switch cfg.Logging.Format {
	case "json", "text":
	case "":
		cfg.Logging.Format = "text"
	default:
		return errors.Newf("logging.format must be json or text (got %q)", cfg.Logging.Format)
	}

	return nil
}
