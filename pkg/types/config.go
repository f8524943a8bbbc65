package types

import "time"

// HTTPConfig holds HTTP settings for requests to the OpenSearch endpoint.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero leaves the request bounded
	// only by the caller's context.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "cinii-research/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// CiNiiConfig holds settings for the CiNii Research client.
type CiNiiConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// AppID is the CiNii application id sent as appId. When empty the client
	// reads CINII_APP_ID from the environment at construction time.
	AppID string `json:"app_id,omitempty" yaml:"app_id,omitempty" mapstructure:"app_id"`

	// BaseURL is the OpenSearch endpoint; the search type is appended as a
	// path segment (default https://cir.nii.ac.jp/opensearch).
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`
}

// LoggingConfig selects how the CLI logs.
type LoggingConfig struct {
	// Level is the minimum level: trace, debug, info, warn, error.
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is json or console.
	Format string `json:"format" yaml:"format" mapstructure:"format"`

	// Output is stdout or stderr (default stderr).
	Output string `json:"output" yaml:"output" mapstructure:"output"`
}
