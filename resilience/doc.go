// Package resilience provides the fault-tolerance policies the HTTP client
// applies to calls against supplier endpoints.
//
//   - Retry: re-issues failed calls with exponential backoff and jitter
//   - CircuitBreaker: fails fast once an endpoint keeps failing
//   - RateLimiter: token bucket that paces outgoing calls
//
// Each policy has a mapstructure-tagged config with ApplyDefaults and
// Validate, so it can be set from the promostandards.http section of a
// configuration file:
//
//	promostandards:
//	  http:
//	    retry:
//	      max_attempts: 3
//	      initial_backoff: 200ms
//	    circuit_breaker:
//	      max_failures: 5
//	      timeout: 30s
//	    rate_limiter:
//	      rate: 5
//	      burst: 10
package resilience
