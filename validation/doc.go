// Package validation provides input validation for client settings.
//
// It supports both struct tag validation (using the go-playground validator
// library) and programmatic validation with error collection. Failures are
// reported as *errors.AppError values with code INVALID_INPUT and a
// "fields" detail listing every offending field.
//
// # Struct Tag Validation
//
//	type credentials struct {
//	    ID       string `json:"id" validate:"required"`
//	    Password string `json:"password" validate:"required"`
//	}
//	err := validation.Validate(credentials{ID: id, Password: password})
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.URL("pricing_service_url", cfg.PricingServiceURL)
//	v.Pattern("currency", cfg.Currency, `^[A-Z]{3}$`)
//	if appErr := v.Validate(); appErr != nil { ... }
package validation
