package promostandards

import (
	"sync"

	"github.com/kbukum/promostandards/errors"
	"github.com/kbukum/promostandards/logger"
	"github.com/kbukum/promostandards/observability"
	"github.com/kbukum/promostandards/soap"
	"github.com/kbukum/promostandards/validation"
)

// Client calls every PromoStandards service with one set of resolved
// Settings. It is safe for concurrent use.
type Client struct {
	*Pricing
	*ProductData
	*MediaContent
	*Inventory

	settings Settings
}

// New builds a Client from opts and the global Configuration. When Configure
// has never been called, built-in defaults are used.
func New(opts Options) (*Client, error) {
	return NewWithConfiguration(snapshot(), opts)
}

// NewWithConfiguration builds a Client from opts and cfg. A nil cfg means
// built-in defaults. No network traffic happens here.
func NewWithConfiguration(cfg *Configuration, opts Options) (*Client, error) {
	if cfg == nil {
		cfg = NewConfiguration()
	}

	settings := resolveSettings(cfg, opts)
	if err := validation.Validate(settings.credentials()); err != nil {
		return nil, errors.MissingCredentials().
			WithDetail("missing", validation.FieldNames(err))
	}
	if settings.logger == nil {
		settings.logger = logger.NewDefault(ConfigName)
	}

	transport := opts.Transport
	if transport == nil {
		t, err := soap.NewDefaultTransport(cfg.HTTP, settings.logger)
		if err != nil {
			return nil, errors.Validation("invalid HTTP configuration").WithCause(err)
		}
		transport = t
	}

	var parser Parser = soap.NewParser()
	if opts.Parser != nil {
		parser = opts.Parser
	}

	metrics := opts.Metrics
	if metrics == nil {
		metrics = defaultMetrics()
	}

	r := &requester{
		settings:  settings,
		transport: transport,
		parser:    parser,
		metrics:   metrics,
		log:       settings.logger.WithComponent("client"),
	}
	return &Client{
		Pricing:      &Pricing{r: r},
		ProductData:  &ProductData{r: r},
		MediaContent: &MediaContent{r: r},
		Inventory:    &Inventory{r: r},
		settings:     settings,
	}, nil
}

// Settings returns the values resolved at construction.
func (c *Client) Settings() Settings {
	return c.settings
}

// defaultMetrics creates the call instruments on the global meter once. A
// meter provider installed later still receives them.
var defaultMetrics = sync.OnceValue(func() *observability.Metrics {
	m, err := observability.NewMetrics(observability.Meter())
	if err != nil {
		logger.Warn("call metrics disabled", logger.Fields(logger.FieldError, err.Error()))
		return nil
	}
	return m
})
