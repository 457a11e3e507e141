package promostandards

import (
	"github.com/kbukum/promostandards/logger"
	"github.com/kbukum/promostandards/util"
)

// Settings are the values a Client resolved at construction. They never
// change afterwards.
type Settings struct {
	id       string
	password string

	productDataServiceURL  string
	mediaContentServiceURL string
	pricingServiceURL      string
	inventoryServiceURL    string

	currency             string
	localizationCountry  string
	localizationLanguage string

	logger *logger.Logger
}

// resolveSettings picks each field from opts, then cfg, then the built-in
// default where one exists.
func resolveSettings(cfg *Configuration, opts Options) Settings {
	return Settings{
		id:       util.Coalesce(opts.ID, cfg.ID),
		password: util.Coalesce(opts.Password, cfg.Password),

		productDataServiceURL:  util.Coalesce(opts.ProductDataServiceURL, cfg.ProductDataServiceURL),
		mediaContentServiceURL: util.Coalesce(opts.MediaContentServiceURL, cfg.MediaContentServiceURL),
		pricingServiceURL:      util.Coalesce(opts.PricingServiceURL, cfg.PricingServiceURL),
		inventoryServiceURL:    util.Coalesce(opts.InventoryServiceURL, cfg.InventoryServiceURL),

		currency:             util.Coalesce(opts.Currency, cfg.Currency, DefaultCurrency),
		localizationCountry:  util.Coalesce(opts.LocalizationCountry, cfg.LocalizationCountry, DefaultLocalizationCountry),
		localizationLanguage: util.Coalesce(opts.LocalizationLanguage, cfg.LocalizationLanguage, DefaultLocalizationLanguage),

		logger: util.Coalesce(opts.Logger, cfg.Logger),
	}
}

// credentials is validated before a Client is returned.
type credentials struct {
	ID       string `json:"id" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (s Settings) credentials() credentials {
	return credentials{ID: s.id, Password: s.password}
}

func (s Settings) ID() string                     { return s.id }
func (s Settings) Password() string               { return s.password }
func (s Settings) ProductDataServiceURL() string  { return s.productDataServiceURL }
func (s Settings) MediaContentServiceURL() string { return s.mediaContentServiceURL }
func (s Settings) PricingServiceURL() string      { return s.pricingServiceURL }
func (s Settings) InventoryServiceURL() string    { return s.inventoryServiceURL }
func (s Settings) Currency() string               { return s.currency }
func (s Settings) LocalizationCountry() string    { return s.localizationCountry }
func (s Settings) LocalizationLanguage() string   { return s.localizationLanguage }

// Logger returns the resolved logger. It is never nil on a Client's Settings.
func (s Settings) Logger() *logger.Logger { return s.logger }
