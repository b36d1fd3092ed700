package config

import (
	"time"
)

// UpstreamURL is the canonical location of the RemoteControl 2 handler.
const UpstreamURL = "https://raw.githubusercontent.com/LimeSurvey/LimeSurvey/master/" +
	"application/helpers/remotecontrol/remotecontrol_handle.php"

// Config represents the global application configuration
type Config struct {
	// Source describes where the PHP handler comes from
	Source SourceConfig `yaml:"source"`

	// Output describes the generated client
	Output OutputConfig `yaml:"output"`

	// Fetch configuration for the download command
	Fetch FetchConfig `yaml:"fetch"`

	// Watch configuration for the watch command
	Watch WatchConfig `yaml:"watch"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`
}

// SourceConfig contains the PHP source settings
type SourceConfig struct {
	URL  string `yaml:"url"`  // Upstream URL used by download
	Path string `yaml:"path"` // Local copy read by generate
}

// OutputConfig contains the generated client settings
type OutputConfig struct {
	Path string `yaml:"path"`

	// Template optionally points to a client template replacing the
	// embedded one. It must contain the #METHODSPLACEHOLDER marker.
	Template string `yaml:"template"`
}

// FetchConfig contains download settings
type FetchConfig struct {
	Timeout    time.Duration `yaml:"timeout"`
	MaxRetries int           `yaml:"max_retries"`
	RetryDelay time.Duration `yaml:"retry_delay"`
	// Preflight probes the URL before downloading and logs the result
	Preflight bool `yaml:"preflight"`
}

// WatchConfig contains settings for regenerating on source changes
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}
