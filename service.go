package promostandards

import (
	"context"
	"time"

	"github.com/kbukum/promostandards/soap"
)

// Params are extra request fields for one call. They win over every
// resolved default.
type Params map[string]any

// Result is the parsed response of one call.
type Result map[string]any

// Transport sends one encoded operation and returns the raw response.
type Transport interface {
	PerformRequest(ctx context.Context, endpoint string, op soap.Operation, payload map[string]any) ([]byte, error)
}

// Parser turns a raw response into a Result.
type Parser interface {
	Parse(raw []byte) (map[string]any, error)
}

// PricingService is the Product Pricing and Configuration service.
type PricingService interface {
	GetConfigurationAndPricing(ctx context.Context, productID string, params Params) (Result, error)
	GetAvailableLocations(ctx context.Context, productID string, params Params) (Result, error)
	GetDecorationColors(ctx context.Context, productID, locationID string, params Params) (Result, error)
	GetFobPoints(ctx context.Context, productID string, params Params) (Result, error)
	GetAvailableCharges(ctx context.Context, productID string, params Params) (Result, error)
}

// ProductDataService is the Product Data service.
type ProductDataService interface {
	GetProduct(ctx context.Context, productID string, params Params) (Result, error)
	GetProductDateModified(ctx context.Context, since time.Time, params Params) (Result, error)
	GetProductCloseOut(ctx context.Context, params Params) (Result, error)
	GetProductSellable(ctx context.Context, params Params) (Result, error)
}

// MediaContentService is the Media Content service.
type MediaContentService interface {
	GetMediaContent(ctx context.Context, productID, mediaType string, params Params) (Result, error)
	GetMediaDateModified(ctx context.Context, since time.Time, params Params) (Result, error)
}

// InventoryService is the Inventory service.
type InventoryService interface {
	GetInventoryLevels(ctx context.Context, productID string, params Params) (Result, error)
	GetFilterValues(ctx context.Context, productID string, params Params) (Result, error)
}

var (
	_ PricingService      = (*Client)(nil)
	_ ProductDataService  = (*Client)(nil)
	_ MediaContentService = (*Client)(nil)
	_ InventoryService    = (*Client)(nil)

	_ Transport = (*soap.Transport)(nil)
	_ Parser    = (*soap.Parser)(nil)
)

// service describes one PromoStandards service family.
type service struct {
	name            string
	urlKey          string
	namespace       string
	sharedNamespace string
	version         string
}

func (s service) operation(name string, fields ...string) soap.Operation {
	return soap.Operation{
		Service:         s.name,
		Name:            name,
		Namespace:       s.namespace,
		SharedNamespace: s.sharedNamespace,
		Version:         s.version,
		Fields:          fields,
	}
}
