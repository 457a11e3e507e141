package promostandards

import (
	"fmt"
	"sync"

	"github.com/kbukum/promostandards/config"
	"github.com/kbukum/promostandards/httpclient"
	"github.com/kbukum/promostandards/logger"
	"github.com/kbukum/promostandards/validation"
)

// Built-in defaults for fields neither Options nor Configuration supply.
const (
	DefaultCurrency             = "USD"
	DefaultLocalizationCountry  = "US"
	DefaultLocalizationLanguage = "EN"

	// ConfigName is the file, section and environment prefix read by
	// LoadConfiguration: promostandards.yml, "promostandards:",
	// PROMOSTANDARDS_*.
	ConfigName = "promostandards"
)

// Configuration holds process-wide defaults for every Client.
type Configuration struct {
	ProductDataServiceURL  string `yaml:"product_data_service_url" mapstructure:"product_data_service_url"`
	MediaContentServiceURL string `yaml:"media_content_service_url" mapstructure:"media_content_service_url"`
	PricingServiceURL      string `yaml:"pricing_service_url" mapstructure:"pricing_service_url"`
	InventoryServiceURL    string `yaml:"inventory_service_url" mapstructure:"inventory_service_url"`

	ID       string `yaml:"id" mapstructure:"id"`
	Password string `yaml:"password" mapstructure:"password"`

	Currency             string `yaml:"currency" mapstructure:"currency"`
	LocalizationCountry  string `yaml:"localization_country" mapstructure:"localization_country"`
	LocalizationLanguage string `yaml:"localization_language" mapstructure:"localization_language"`

	// Logger is used by clients that do not bring their own.
	Logger *logger.Logger `yaml:"-" mapstructure:"-"`

	// Logging builds Logger when it is loaded from a file.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`

	// HTTP configures the default SOAP transport.
	HTTP httpclient.Config `yaml:"http" mapstructure:"http"`
}

// NewConfiguration returns a Configuration with the built-in defaults and a
// console logger writing to stdout.
func NewConfiguration() *Configuration {
	c := &Configuration{
		Currency:             DefaultCurrency,
		LocalizationCountry:  DefaultLocalizationCountry,
		LocalizationLanguage: DefaultLocalizationLanguage,
	}
	c.Logging.ApplyDefaults()
	c.Logger = logger.NewDefault(ConfigName)
	return c
}

// ApplyDefaults fills empty fields with the built-in defaults.
func (c *Configuration) ApplyDefaults() {
	if c.Currency == "" {
		c.Currency = DefaultCurrency
	}
	if c.LocalizationCountry == "" {
		c.LocalizationCountry = DefaultLocalizationCountry
	}
	if c.LocalizationLanguage == "" {
		c.LocalizationLanguage = DefaultLocalizationLanguage
	}
	c.Logging.ApplyDefaults()
	c.HTTP.ApplyDefaults()
	if c.Logger == nil {
		c.Logger = logger.New(&c.Logging, ConfigName)
	}
}

// Validate checks value formats. Empty values pass; credentials are
// checked when a Client is built.
func (c *Configuration) Validate() error {
	if appErr := validation.New().
		URL("product_data_service_url", c.ProductDataServiceURL).
		URL("media_content_service_url", c.MediaContentServiceURL).
		URL("pricing_service_url", c.PricingServiceURL).
		URL("inventory_service_url", c.InventoryServiceURL).
		Pattern("currency", c.Currency, `^[A-Z]{3}$`).
		Pattern("localization_country", c.LocalizationCountry, `^[A-Z]{2}$`).
		Pattern("localization_language", c.LocalizationLanguage, `^[A-Za-z]{2}$`).
		Validate(); appErr != nil {
		return appErr
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.HTTP.Validate(); err != nil {
		return err
	}
	return nil
}

// LoadConfiguration reads the "promostandards" section of
// promostandards.{yml,yaml,json,toml}, a .env file and PROMOSTANDARDS_*
// environment variables, then applies defaults and validates the result.
// Environment variables win over the file.
func LoadConfiguration(opts ...config.LoaderOption) (*Configuration, error) {
	var file struct {
		PromoStandards Configuration `mapstructure:"promostandards"`
	}
	if err := config.LoadConfig(ConfigName, &file, opts...); err != nil {
		return nil, err
	}

	cfg := &file.PromoStandards
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("promostandards: invalid configuration: %w", err)
	}
	return cfg, nil
}

var (
	globalMu     sync.Mutex
	globalConfig *Configuration
)

// Configure passes the global Configuration to fn, creating it with the
// built-in defaults on first use.
func Configure(fn func(*Configuration)) {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalConfig == nil {
		globalConfig = NewConfiguration()
	}
	if fn != nil {
		fn(globalConfig)
	}
}

// GlobalConfiguration returns a copy of the global Configuration, or nil if
// Configure has not been called.
func GlobalConfiguration() *Configuration {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalConfig == nil {
		return nil
	}
	c := *globalConfig
	c.HTTP = c.HTTP.Clone()
	return &c
}

// ResetConfiguration discards the global Configuration.
func ResetConfiguration() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = nil
}

// snapshot returns a copy of the global Configuration, or a fresh default
// one that is not stored.
func snapshot() *Configuration {
	if c := GlobalConfiguration(); c != nil {
		return c
	}
	return NewConfiguration()
}
