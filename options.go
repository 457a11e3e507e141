package promostandards

import (
	"github.com/kbukum/promostandards/logger"
	"github.com/kbukum/promostandards/observability"
)

// Options are per-client values. Empty strings and nil fields are treated as
// not supplied and fall back to the global Configuration.
type Options struct {
	ID       string `json:"id"`
	Password string `json:"password"`

	ProductDataServiceURL  string `json:"product_data_service_url"`
	MediaContentServiceURL string `json:"media_content_service_url"`
	PricingServiceURL      string `json:"pricing_service_url"`
	InventoryServiceURL    string `json:"inventory_service_url"`

	Currency             string `json:"currency"`
	LocalizationCountry  string `json:"localization_country"`
	LocalizationLanguage string `json:"localization_language"`

	Logger *logger.Logger `json:"-"`

	// Transport replaces the SOAP-over-HTTP transport.
	Transport Transport `json:"-"`
	// Parser replaces the generic SOAP response parser.
	Parser Parser `json:"-"`
	// Metrics records call metrics. Nil uses instruments on the global meter.
	Metrics *observability.Metrics `json:"-"`
}
