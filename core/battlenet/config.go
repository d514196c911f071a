package battlenet

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

// Regions supported by the upstream API.
var Regions = []string{"us", "eu", "kr", "tw"}

// Config holds the API client configuration.
type Config struct {
	// ClientID is the OAuth client id.
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret is the OAuth client secret.
	ClientSecret string `mapstructure:"client_secret" default:""`
	// Region selects the API host and the namespace suffix.
	Region string `mapstructure:"region" default:"us"`
	// Locale is sent with every request unless the caller overrides it.
	Locale string `mapstructure:"locale" default:"en_US"`
	// APIHost overrides the regional API host (tests, proxies).
	APIHost string `mapstructure:"api_host" default:""`
	// TokenURL overrides the regional OAuth token endpoint.
	TokenURL string `mapstructure:"token_url" default:""`
	// MaxAttempts is the number of tries for a request answered with a transient status.
	MaxAttempts int `mapstructure:"max_attempts" default:"3"`
	// BaseBackoff is the wait before the first retry; it doubles per attempt.
	BaseBackoff time.Duration `mapstructure:"base_backoff" default:"1s"`
	// TokenMargin is subtracted from the token lifetime.
	TokenMargin time.Duration `mapstructure:"token_margin" default:"180s"`
	// TransientCodes are retried.
	TransientCodes []int `mapstructure:"transient_codes" default:"429,502"`
	// NotFoundCodes fail immediately with a NotFound error.
	NotFoundCodes []int `mapstructure:"not_found_codes" default:"404"`
	// RequestsPerSecond paces outbound requests. Zero disables pacing.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"50"`
	// Burst is the pacing bucket size.
	Burst int `mapstructure:"burst" default:"10"`
	// TimeoutSeconds bounds a single HTTP exchange.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Validate reports missing credentials or an unsupported region.
func (c Config) Validate() error {
	if c.ClientID == "" || c.ClientSecret == "" {
		return errors.New("battlenet: client id and client secret cannot be empty")
	}
	if !slices.Contains(Regions, c.Region) {
		return fmt.Errorf("battlenet: unsupported region %q", c.Region)
	}
	return nil
}

// BaseURL returns the API host for the configured region.
func (c Config) BaseURL() string {
	if c.APIHost != "" {
		return c.APIHost
	}
	return fmt.Sprintf("https://%s.api.blizzard.com", c.Region)
}

// TokenEndpoint returns the OAuth token URL for the configured region.
func (c Config) TokenEndpoint() string {
	if c.TokenURL != "" {
		return c.TokenURL
	}
	return fmt.Sprintf("https://%s.battle.net/oauth/token", c.Region)
}
