package promostandards

import (
	"context"
	"reflect"
	"sync"
	"testing"

	"github.com/kbukum/promostandards/errors"
	"github.com/kbukum/promostandards/httpclient"
	"github.com/kbukum/promostandards/logger"
	"github.com/kbukum/promostandards/resilience"
	"github.com/kbukum/promostandards/soap"
	"github.com/kbukum/promostandards/testutil"
)

type transportCall struct {
	endpoint string
	op       soap.Operation
	payload  map[string]any
}

// fakeTransport records calls and answers with a canned envelope or error.
type fakeTransport struct {
	mu       sync.Mutex
	calls    []transportCall
	response []byte
	err      error
}

func (f *fakeTransport) PerformRequest(_ context.Context, endpoint string, op soap.Operation, payload map[string]any) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, transportCall{endpoint: endpoint, op: op, payload: payload})
	if f.err != nil {
		return nil, f.err
	}
	if f.response != nil {
		return f.response, nil
	}
	return []byte(testutil.Envelope("<Response><ok>true</ok></Response>")), nil
}

func (f *fakeTransport) Calls() []transportCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]transportCall(nil), f.calls...)
}

func (f *fakeTransport) last(t *testing.T) transportCall {
	t.Helper()
	calls := f.Calls()
	if len(calls) == 0 {
		t.Fatal("expected a transport call")
	}
	return calls[len(calls)-1]
}

// newTestClient builds a client over a fakeTransport with quiet logging.
func newTestClient(t *testing.T, opts Options) (*Client, *fakeTransport) {
	t.Helper()
	ft := &fakeTransport{}
	if opts.Transport == nil {
		opts.Transport = ft
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	c, err := New(opts)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c, ft
}

func TestNew_MissingCredentials(t *testing.T) {
	resetGlobal(t)

	tests := []struct {
		name    string
		opts    Options
		missing []string
	}{
		{"none", Options{}, []string{"id", "password"}},
		{"no password", Options{ID: "a"}, []string{"password"}},
		{"no id", Options{Password: "b"}, []string{"id"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.opts)
			if !errors.IsMissingCredentials(err) {
				t.Fatalf("expected MissingCredentials, got %v", err)
			}
			appErr, _ := errors.AsAppError(err)
			if appErr.Message != "Customer ID (id) and Password (password) are required" {
				t.Errorf("unexpected message %q", appErr.Message)
			}
			if !reflect.DeepEqual(appErr.Details["fields"], []string{"id", "password"}) {
				t.Errorf("expected fields [id password], got %v", appErr.Details["fields"])
			}
			if !reflect.DeepEqual(appErr.Details["missing"], tc.missing) {
				t.Errorf("expected missing %v, got %v", tc.missing, appErr.Details["missing"])
			}
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	resetGlobal(t)

	c, _ := newTestClient(t, Options{ID: "a", Password: "b"})
	s := c.Settings()

	if s.Currency() != "USD" || s.LocalizationCountry() != "US" || s.LocalizationLanguage() != "EN" {
		t.Errorf("expected USD/US/EN, got %s/%s/%s", s.Currency(), s.LocalizationCountry(), s.LocalizationLanguage())
	}
	if s.ID() != "a" || s.Password() != "b" {
		t.Errorf("expected a/b, got %s/%s", s.ID(), s.Password())
	}
	if s.Logger() == nil {
		t.Error("expected a logger")
	}
}

func TestNew_UsesGlobalConfiguration(t *testing.T) {
	resetGlobal(t)
	Configure(func(c *Configuration) {
		c.ID = "x"
		c.Password = "y"
	})

	c, _ := newTestClient(t, Options{})
	if c.Settings().ID() != "x" {
		t.Errorf("expected id x, got %q", c.Settings().ID())
	}
	if c.Settings().Password() != "y" {
		t.Errorf("expected password y, got %q", c.Settings().Password())
	}
}

func TestNew_ResolutionPrecedence(t *testing.T) {
	resetGlobal(t)
	globalLogger := logger.Nop()
	Configure(func(c *Configuration) {
		c.ID = "global-id"
		c.Password = "global-secret"
		c.PricingServiceURL = "https://a"
		c.ProductDataServiceURL = "https://product"
		c.Currency = "CAD"
		c.LocalizationLanguage = "FR"
		c.Logger = globalLogger
	})

	optLogger := logger.Nop()
	c, err := New(Options{
		ID:                "opt-id",
		PricingServiceURL: "https://b",
		Currency:          "EUR",
		Logger:            optLogger,
		Transport:         &fakeTransport{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := c.Settings()

	tests := []struct {
		field string
		got   string
		want  string
	}{
		{"id", s.ID(), "opt-id"},
		{"password", s.Password(), "global-secret"},
		{"pricing_service_url", s.PricingServiceURL(), "https://b"},
		{"product_data_service_url", s.ProductDataServiceURL(), "https://product"},
		{"media_content_service_url", s.MediaContentServiceURL(), ""},
		{"inventory_service_url", s.InventoryServiceURL(), ""},
		{"currency", s.Currency(), "EUR"},
		{"localization_country", s.LocalizationCountry(), "US"},
		{"localization_language", s.LocalizationLanguage(), "FR"},
	}
	for _, tc := range tests {
		t.Run(tc.field, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, tc.got)
			}
		})
	}
	if s.Logger() != optLogger {
		t.Error("expected option logger to win")
	}
}

func TestNew_GlobalLoggerUsedWhenNoOption(t *testing.T) {
	resetGlobal(t)
	globalLogger := logger.Nop()
	Configure(func(c *Configuration) {
		c.ID = "x"
		c.Password = "y"
		c.Logger = globalLogger
	})

	c, err := New(Options{Transport: &fakeTransport{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Settings().Logger() != globalLogger {
		t.Error("expected global logger")
	}
}

func TestNew_EmptyOptionDoesNotOverride(t *testing.T) {
	resetGlobal(t)
	Configure(func(c *Configuration) {
		c.ID = "x"
		c.Password = "y"
		c.Currency = "GBP"
	})

	c, _ := newTestClient(t, Options{Currency: ""})
	if c.Settings().Currency() != "GBP" {
		t.Errorf("expected GBP, got %q", c.Settings().Currency())
	}
}

func TestNew_FreshDefaultsNotStored(t *testing.T) {
	resetGlobal(t)

	newTestClient(t, Options{ID: "a", Password: "b"})

	if GlobalConfiguration() != nil {
		t.Error("expected New not to create the global configuration")
	}
}

func TestNew_AfterReset(t *testing.T) {
	resetGlobal(t)
	Configure(func(c *Configuration) {
		c.ID = "x"
		c.Password = "y"
	})
	ResetConfiguration()

	_, err := New(Options{})
	if !errors.IsMissingCredentials(err) {
		t.Errorf("expected MissingCredentials after reset, got %v", err)
	}
}

func TestNew_ClientIsIndependentOfLaterConfigure(t *testing.T) {
	resetGlobal(t)
	Configure(func(c *Configuration) {
		c.ID = "x"
		c.Password = "y"
	})
	c, _ := newTestClient(t, Options{})

	Configure(func(c *Configuration) { c.ID = "z" })

	if c.Settings().ID() != "x" {
		t.Errorf("expected settings to stay x, got %q", c.Settings().ID())
	}
}

func TestNew_ConcurrentDoesNotMutateGlobalHTTP(t *testing.T) {
	resetGlobal(t)
	Configure(func(c *Configuration) {
		c.ID = "x"
		c.Password = "y"
		c.HTTP.Retry = &resilience.RetryConfig{}
		c.HTTP.CircuitBreaker = &resilience.CircuitBreakerConfig{}
	})

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := New(Options{Logger: logger.Nop()}); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}

	cfg := GlobalConfiguration()
	if cfg.HTTP.Retry.MaxAttempts != 0 || cfg.HTTP.Retry.RetryIf != nil {
		t.Errorf("expected global retry config untouched, got %+v", *cfg.HTTP.Retry)
	}
	if cfg.HTTP.CircuitBreaker.IsFailure != nil {
		t.Error("expected global IsFailure to stay nil")
	}
}

func TestGlobalConfiguration_CopiesHTTPPolicies(t *testing.T) {
	resetGlobal(t)
	Configure(func(c *Configuration) {
		c.HTTP.Retry = &resilience.RetryConfig{MaxAttempts: 2}
	})

	GlobalConfiguration().HTTP.Retry.MaxAttempts = 9

	if got := GlobalConfiguration().HTTP.Retry.MaxAttempts; got != 2 {
		t.Errorf("expected MaxAttempts 2, got %d", got)
	}
}

func TestNewWithConfiguration(t *testing.T) {
	resetGlobal(t)
	Configure(func(c *Configuration) {
		c.ID = "global"
		c.Password = "global"
	})

	cfg := &Configuration{ID: "explicit", Password: "secret"}
	c, err := NewWithConfiguration(cfg, Options{Transport: &fakeTransport{}, Logger: logger.Nop()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Settings().ID() != "explicit" {
		t.Errorf("expected explicit configuration to be used, got %q", c.Settings().ID())
	}
	if c.Settings().Currency() != "USD" {
		t.Errorf("expected default currency for empty configuration field, got %q", c.Settings().Currency())
	}
}

func TestNewWithConfiguration_NilConfiguration(t *testing.T) {
	_, err := NewWithConfiguration(nil, Options{})
	if !errors.IsMissingCredentials(err) {
		t.Errorf("expected MissingCredentials, got %v", err)
	}

	c, err := NewWithConfiguration(nil, Options{ID: "a", Password: "b", Transport: &fakeTransport{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Settings().Currency() != "USD" {
		t.Errorf("expected USD, got %q", c.Settings().Currency())
	}
}

func TestNew_DefaultTransportAndParser(t *testing.T) {
	cfg := &Configuration{ID: "a", Password: "b"}
	c, err := NewWithConfiguration(cfg, Options{Logger: logger.Nop()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Pricing.r.transport.(*soap.Transport); !ok {
		t.Errorf("expected *soap.Transport, got %T", c.Pricing.r.transport)
	}
	if _, ok := c.Pricing.r.parser.(*soap.Parser); !ok {
		t.Errorf("expected *soap.Parser, got %T", c.Pricing.r.parser)
	}
}

func TestNew_InvalidHTTPConfiguration(t *testing.T) {
	cfg := &Configuration{
		ID:       "a",
		Password: "b",
		HTTP:     httpclient.Config{TLS: &httpclient.TLSConfig{CertFile: "cert.pem"}},
	}
	_, err := NewWithConfiguration(cfg, Options{Logger: logger.Nop()})
	if !errors.HasCode(err, errors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestNew_ServicesShareOneRequester(t *testing.T) {
	resetGlobal(t)
	c, _ := newTestClient(t, Options{ID: "a", Password: "b"})
	r := c.Pricing.r
	if c.ProductData.r != r || c.MediaContent.r != r || c.Inventory.r != r {
		t.Error("expected all services to share one requester")
	}
}
