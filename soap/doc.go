// Package soap speaks the SOAP 1.1 dialect used by PromoStandards web
// services.
//
// Encode turns an Operation and a flat payload map into a request envelope,
// Transport posts it through the HTTP client and surfaces SOAP faults as
// transport errors, and Parser reduces a response envelope to a generic map
// keyed by element local names.
//
// A request for getConfigurationAndPricing looks like:
//
//	<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"
//	    xmlns:ns="http://www.promostandards.org/WSDL/PricingAndConfiguration/1.0.0/"
//	    xmlns:shar="http://www.promostandards.org/WSDL/PricingAndConfiguration/1.0.0/SharedObjects/">
//	  <soapenv:Header/>
//	  <soapenv:Body>
//	    <ns:GetConfigurationAndPricingRequest>
//	      <shar:wsVersion>1.0.0</shar:wsVersion>
//	      <shar:id>acct-1</shar:id>
//	      ...
//	    </ns:GetConfigurationAndPricingRequest>
//	  </soapenv:Body>
//	</soapenv:Envelope>
package soap
