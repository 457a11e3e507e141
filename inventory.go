package promostandards

import (
	"context"

	"github.com/kbukum/promostandards/soap"
)

var inventoryService = service{
	name:            "Inventory",
	urlKey:          "inventory_service_url",
	namespace:       "http://www.promostandards.org/WSDL/Inventory/2.0.0/",
	sharedNamespace: "http://www.promostandards.org/WSDL/Inventory/2.0.0/SharedObjects/",
	version:         "2.0.0",
}

var (
	opInventoryLevels = inventoryService.operation("getInventoryLevels",
		"wsVersion", "id", "password", "productId", "Filter")
	opFilterValues = inventoryService.operation("getFilterValues",
		"wsVersion", "id", "password", "productId")
)

// Inventory calls the Inventory service.
type Inventory struct {
	r *requester
}

// GetInventoryLevels returns stock levels of a product. A "Filter" param
// narrows the result to parts, colors or sizes.
func (i *Inventory) GetInventoryLevels(ctx context.Context, productID string, params Params) (Result, error) {
	return i.call(ctx, opInventoryLevels, Params{"productId": productID}, params)
}

// GetFilterValues returns the filter values GetInventoryLevels accepts.
func (i *Inventory) GetFilterValues(ctx context.Context, productID string, params Params) (Result, error) {
	return i.call(ctx, opFilterValues, Params{"productId": productID}, params)
}

func (i *Inventory) call(ctx context.Context, op soap.Operation, fields, params Params) (Result, error) {
	return i.r.invoke(ctx, inventoryService, i.r.settings.inventoryServiceURL, op, fields, params)
}
