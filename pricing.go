package promostandards

import (
	"context"

	"github.com/kbukum/promostandards/soap"
)

var pricingService = service{
	name:            "PricingAndConfiguration",
	urlKey:          "pricing_service_url",
	namespace:       "http://www.promostandards.org/WSDL/PricingAndConfiguration/1.0.0/",
	sharedNamespace: "http://www.promostandards.org/WSDL/PricingAndConfiguration/1.0.0/SharedObjects/",
	version:         "1.0.0",
}

var (
	opConfigurationAndPricing = pricingService.operation("getConfigurationAndPricing",
		"wsVersion", "id", "password", "productId", "partId", "currency", "fobId",
		"priceType", "localizationCountry", "localizationLanguage", "configurationType")
	opAvailableLocations = pricingService.operation("getAvailableLocations",
		"wsVersion", "id", "password", "productId", "localizationCountry", "localizationLanguage")
	opDecorationColors = pricingService.operation("getDecorationColors",
		"wsVersion", "id", "password", "locationId", "productId", "decorationId",
		"localizationCountry", "localizationLanguage")
	opFobPoints = pricingService.operation("getFobPoints",
		"wsVersion", "id", "password", "productId", "localizationCountry", "localizationLanguage")
	opAvailableCharges = pricingService.operation("getAvailableCharges",
		"wsVersion", "id", "password", "productId", "localizationCountry", "localizationLanguage")
)

// Pricing calls the Product Pricing and Configuration service.
type Pricing struct {
	r *requester
}

// GetConfigurationAndPricing returns the price configuration of a product.
// Suppliers usually expect fobId, priceType and configurationType in params.
func (p *Pricing) GetConfigurationAndPricing(ctx context.Context, productID string, params Params) (Result, error) {
	return p.call(ctx, opConfigurationAndPricing, Params{"productId": productID}, params)
}

// GetAvailableLocations returns the decoration locations of a product.
func (p *Pricing) GetAvailableLocations(ctx context.Context, productID string, params Params) (Result, error) {
	return p.call(ctx, opAvailableLocations, Params{"productId": productID}, params)
}

// GetDecorationColors returns the colors available at a decoration location.
func (p *Pricing) GetDecorationColors(ctx context.Context, productID, locationID string, params Params) (Result, error) {
	return p.call(ctx, opDecorationColors, Params{"productId": productID, "locationId": locationID}, params)
}

// GetFobPoints returns the shipping points of a product.
func (p *Pricing) GetFobPoints(ctx context.Context, productID string, params Params) (Result, error) {
	return p.call(ctx, opFobPoints, Params{"productId": productID}, params)
}

// GetAvailableCharges returns the charges that may apply to a product.
func (p *Pricing) GetAvailableCharges(ctx context.Context, productID string, params Params) (Result, error) {
	return p.call(ctx, opAvailableCharges, Params{"productId": productID}, params)
}

func (p *Pricing) call(ctx context.Context, op soap.Operation, fields, params Params) (Result, error) {
	return p.r.invoke(ctx, pricingService, p.r.settings.pricingServiceURL, op, fields, params)
}
