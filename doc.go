// Package promostandards is a client for the PromoStandards vendor web
// services: Product Pricing and Configuration, Product Data, Media Content
// and Inventory.
//
// Process-wide defaults live in a Configuration set once at startup:
//
//	promostandards.Configure(func(c *promostandards.Configuration) {
//		c.ID = "account"
//		c.Password = os.Getenv("PS_PASSWORD")
//		c.PricingServiceURL = "https://vendor.example.com/pricing"
//	})
//
// A Client resolves every setting from its Options first, then the global
// Configuration, then built-in defaults:
//
//	client, err := promostandards.New(promostandards.Options{Currency: "CAD"})
//	if err != nil {
//		return err
//	}
//	result, err := client.GetConfigurationAndPricing(ctx, "G500", promostandards.Params{
//		"fobId":             "1",
//		"priceType":         "List",
//		"configurationType": "Blank",
//	})
//
// Every call posts a SOAP envelope through a Transport and reduces the
// response with a Parser. Both are replaceable through Options. Errors are
// *errors.AppError values from the errors package.
package promostandards
