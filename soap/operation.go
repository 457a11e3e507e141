package soap

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// EnvelopeNamespace is the SOAP 1.1 envelope namespace.
const EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"

// Operation describes one PromoStandards web service method.
type Operation struct {
	// Service is the PromoStandards service family, e.g. "PricingAndConfiguration".
	Service string
	// Name is the operation name as published in the WSDL, e.g. "getProduct".
	Name string
	// Namespace is the service namespace holding the request element.
	Namespace string
	// SharedNamespace holds the request's child elements. Empty means Namespace.
	SharedNamespace string
	// Version is the wsVersion the service expects.
	Version string
	// Fields lists request children in schema order. Payload keys not listed
	// here are written after them in sorted order.
	Fields []string
}

// Request returns the request element name, e.g. "GetProductRequest".
func (o Operation) Request() string {
	r, size := utf8.DecodeRuneInString(o.Name)
	if r == utf8.RuneError {
		return "Request"
	}
	return string(unicode.ToUpper(r)) + o.Name[size:] + "Request"
}

// SOAPAction returns the SOAPAction header value.
func (o Operation) SOAPAction() string {
	return o.Name
}

// childNamespace returns the namespace used for request children.
func (o Operation) childNamespace() string {
	if o.SharedNamespace != "" {
		return o.SharedNamespace
	}
	return o.Namespace
}

// String returns "Service.name".
func (o Operation) String() string {
	var b strings.Builder
	b.WriteString(o.Service)
	b.WriteByte('.')
	b.WriteString(o.Name)
	return b.String()
}
