package promostandards

import (
	"context"
	"time"

	"github.com/kbukum/promostandards/soap"
)

var productDataService = service{
	name:            "ProductData",
	urlKey:          "product_data_service_url",
	namespace:       "http://www.promostandards.org/WSDL/ProductDataService/2.0.0/",
	sharedNamespace: "http://www.promostandards.org/WSDL/ProductDataService/2.0.0/SharedObjects/",
	version:         "2.0.0",
}

var (
	opProduct = productDataService.operation("getProduct",
		"wsVersion", "id", "password", "localizationCountry", "localizationLanguage",
		"productId", "partId", "colorName", "ApparelSizeArray")
	opProductDateModified = productDataService.operation("getProductDateModified",
		"wsVersion", "id", "password", "changeTimeStamp")
	opProductCloseOut = productDataService.operation("getProductCloseOut",
		"wsVersion", "id", "password")
	opProductSellable = productDataService.operation("getProductSellable",
		"wsVersion", "id", "password", "productId", "partId", "isSellable")
)

// ProductData calls the Product Data service.
type ProductData struct {
	r *requester
}

// GetProduct returns the full product record.
func (p *ProductData) GetProduct(ctx context.Context, productID string, params Params) (Result, error) {
	return p.call(ctx, opProduct, Params{"productId": productID}, params)
}

// GetProductDateModified lists products changed since the given time.
func (p *ProductData) GetProductDateModified(ctx context.Context, since time.Time, params Params) (Result, error) {
	return p.call(ctx, opProductDateModified, Params{"changeTimeStamp": since}, params)
}

// GetProductCloseOut lists closed-out products.
func (p *ProductData) GetProductCloseOut(ctx context.Context, params Params) (Result, error) {
	return p.call(ctx, opProductCloseOut, nil, params)
}

// GetProductSellable lists sellable products and parts. Suppliers expect
// isSellable in params.
func (p *ProductData) GetProductSellable(ctx context.Context, params Params) (Result, error) {
	return p.call(ctx, opProductSellable, nil, params)
}

func (p *ProductData) call(ctx context.Context, op soap.Operation, fields, params Params) (Result, error) {
	return p.r.invoke(ctx, productDataService, p.r.settings.productDataServiceURL, op, fields, params)
}
