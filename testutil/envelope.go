package testutil

import (
	"encoding/xml"
	"fmt"
	"strings"
)

const envelopeTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<S:Envelope xmlns:S="http://schemas.xmlsoap.org/soap/envelope/">
  <S:Body>%s</S:Body>
</S:Envelope>`

// Envelope wraps body content in a SOAP 1.1 response envelope.
func Envelope(body string) string {
	return fmt.Sprintf(envelopeTemplate, body)
}

// FaultEnvelope returns a SOAP 1.1 fault response.
func FaultEnvelope(code, message string) string {
	return Envelope(fmt.Sprintf(
		`<S:Fault><faultcode>%s</faultcode><faultstring>%s</faultstring></S:Fault>`,
		escape(code), escape(message),
	))
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
