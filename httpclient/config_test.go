package httpclient

import (
	"strings"
	"testing"
	"time"

	"github.com/kbukum/promostandards/resilience"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected default timeout 30s, got %v", cfg.Timeout)
	}
	if !strings.HasPrefix(cfg.UserAgent, "promostandards-go/") {
		t.Errorf("expected default user agent, got %q", cfg.UserAgent)
	}
	if cfg.Retry != nil || cfg.CircuitBreaker != nil || cfg.RateLimiter != nil {
		t.Error("expected resilience policies to stay off")
	}
}

func TestConfig_ApplyDefaults_PreservesExisting(t *testing.T) {
	cfg := Config{Timeout: 10 * time.Second, UserAgent: "acme/1.0"}
	cfg.ApplyDefaults()
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected timeout 10s, got %v", cfg.Timeout)
	}
	if cfg.UserAgent != "acme/1.0" {
		t.Errorf("expected user agent to be kept, got %q", cfg.UserAgent)
	}
}

func TestConfig_ApplyDefaults_FileLoadedRetry(t *testing.T) {
	// Loaded from a file, the func fields are nil.
	cfg := Config{
		Retry:          &resilience.RetryConfig{MaxAttempts: 4},
		CircuitBreaker: &resilience.CircuitBreakerConfig{MaxFailures: 2},
	}
	cfg.ApplyDefaults()
	if cfg.Retry.RetryIf == nil {
		t.Fatal("expected RetryIf to be set")
	}
	if cfg.Retry.RetryIf(NewRequestError(errTest)) {
		t.Error("expected client errors not to be retried")
	}
	if !cfg.Retry.RetryIf(ClassifyStatusCode(503, nil)) {
		t.Error("expected 503 to be retried")
	}
	if cfg.CircuitBreaker.IsFailure == nil {
		t.Error("expected IsFailure to be set")
	}
	if cfg.Retry.MaxAttempts != 4 {
		t.Errorf("expected MaxAttempts 4, got %d", cfg.Retry.MaxAttempts)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Timeout: 10 * time.Second}, false},
		{"invalid timeout", Config{Timeout: -1}, true},
		{"mismatched tls", Config{Timeout: time.Second, TLS: &TLSConfig{CertFile: "cert.pem"}}, true},
		{"bad tls version", Config{Timeout: time.Second, TLS: &TLSConfig{MinVersion: "1.0"}}, true},
		{"bad retry", Config{Timeout: time.Second, Retry: &resilience.RetryConfig{Jitter: 3}}, true},
		{"bad rate limiter", Config{Timeout: time.Second, RateLimiter: &resilience.RateLimiterConfig{}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()
	if cfg.MaxAttempts <= 0 {
		t.Error("expected positive MaxAttempts")
	}
	if cfg.RetryIf == nil {
		t.Error("expected RetryIf to be set")
	}
}

func TestDefaultCircuitBreakerConfig(t *testing.T) {
	cfg := DefaultCircuitBreakerConfig("supplier")
	if cfg.Name != "supplier" {
		t.Errorf("expected name 'supplier', got %q", cfg.Name)
	}
	if cfg.IsFailure == nil {
		t.Error("expected IsFailure to be set")
	}
}

func TestConfig_Clone(t *testing.T) {
	cfg := Config{
		TLS:            &TLSConfig{ServerName: "supplier"},
		Headers:        map[string]string{"X-Team": "a"},
		Retry:          &resilience.RetryConfig{},
		CircuitBreaker: &resilience.CircuitBreakerConfig{},
		RateLimiter:    &resilience.RateLimiterConfig{},
	}
	clone := cfg.Clone()
	clone.ApplyDefaults()
	clone.TLS.ServerName = "other"
	clone.Headers["X-Team"] = "b"

	if cfg.Retry.MaxAttempts != 0 || cfg.Retry.RetryIf != nil {
		t.Errorf("expected retry config untouched, got %+v", *cfg.Retry)
	}
	if cfg.CircuitBreaker.MaxFailures != 0 || cfg.CircuitBreaker.IsFailure != nil {
		t.Errorf("expected circuit breaker config untouched, got %+v", *cfg.CircuitBreaker)
	}
	if cfg.RateLimiter.Rate != 0 {
		t.Errorf("expected rate limiter config untouched, got %+v", *cfg.RateLimiter)
	}
	if cfg.TLS.ServerName != "supplier" {
		t.Errorf("expected server name supplier, got %q", cfg.TLS.ServerName)
	}
	if cfg.Headers["X-Team"] != "a" {
		t.Errorf("expected header a, got %q", cfg.Headers["X-Team"])
	}
}

func TestConfig_Clone_Nil(t *testing.T) {
	clone := Config{}.Clone()
	if clone.TLS != nil || clone.Headers != nil || clone.Retry != nil || clone.CircuitBreaker != nil || clone.RateLimiter != nil {
		t.Errorf("expected nil fields to stay nil, got %+v", clone)
	}
}
