package httpclient

import (
	"fmt"
	"time"

	"github.com/kbukum/promostandards/resilience"
	"github.com/kbukum/promostandards/version"
)

const (
	defaultTimeout = 30 * time.Second
)

// Config configures the HTTP client.
type Config struct {
	// Timeout bounds a single attempt. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// TLS configures the transport's TLS settings.
	TLS *TLSConfig `yaml:"tls" mapstructure:"tls"`

	// Headers are sent with every request. Request headers win.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`

	// UserAgent defaults to version.UserAgent().
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`

	// Retry configures retry behavior. Nil disables retry.
	Retry *resilience.RetryConfig `yaml:"retry" mapstructure:"retry"`

	// CircuitBreaker configures circuit breaker behavior. Nil disables it.
	CircuitBreaker *resilience.CircuitBreakerConfig `yaml:"circuit_breaker" mapstructure:"circuit_breaker"`

	// RateLimiter configures rate limiting. Nil disables it.
	RateLimiter *resilience.RateLimiterConfig `yaml:"rate_limiter" mapstructure:"rate_limiter"`
}

// Clone returns a copy that shares no pointers or maps with c, so defaults
// applied to the copy never reach c.
func (c Config) Clone() Config {
	if c.TLS != nil {
		tls := *c.TLS
		c.TLS = &tls
	}
	if c.Headers != nil {
		headers := make(map[string]string, len(c.Headers))
		for k, v := range c.Headers {
			headers[k] = v
		}
		c.Headers = headers
	}
	if c.Retry != nil {
		retry := *c.Retry
		c.Retry = &retry
	}
	if c.CircuitBreaker != nil {
		cb := *c.CircuitBreaker
		c.CircuitBreaker = &cb
	}
	if c.RateLimiter != nil {
		rl := *c.RateLimiter
		c.RateLimiter = &rl
	}
	return c
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
	if c.UserAgent == "" {
		c.UserAgent = version.UserAgent()
	}
	if c.Retry != nil {
		if c.Retry.RetryIf == nil {
			c.Retry.RetryIf = IsRetryable
		}
		c.Retry.ApplyDefaults()
	}
	if c.CircuitBreaker != nil {
		if c.CircuitBreaker.IsFailure == nil {
			c.CircuitBreaker.IsFailure = IsRetryable
		}
		c.CircuitBreaker.ApplyDefaults()
	}
	if c.RateLimiter != nil {
		c.RateLimiter.ApplyDefaults()
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("httpclient: timeout must be positive")
	}
	if err := c.TLS.Validate(); err != nil {
		return err
	}
	if c.Retry != nil {
		if err := c.Retry.Validate(); err != nil {
			return fmt.Errorf("httpclient: %w", err)
		}
	}
	if c.CircuitBreaker != nil {
		if err := c.CircuitBreaker.Validate(); err != nil {
			return fmt.Errorf("httpclient: %w", err)
		}
	}
	if c.RateLimiter != nil {
		if err := c.RateLimiter.Validate(); err != nil {
			return fmt.Errorf("httpclient: %w", err)
		}
	}
	return nil
}

// DefaultRetryConfig returns a retry config that only retries retryable
// HTTP failures.
func DefaultRetryConfig() *resilience.RetryConfig {
	cfg := resilience.RetryConfig{RetryIf: IsRetryable}
	cfg.ApplyDefaults()
	return &cfg
}

// DefaultCircuitBreakerConfig returns a breaker config that trips on
// retryable HTTP failures only.
func DefaultCircuitBreakerConfig(name string) *resilience.CircuitBreakerConfig {
	cfg := resilience.CircuitBreakerConfig{Name: name, IsFailure: IsRetryable}
	cfg.ApplyDefaults()
	return &cfg
}
