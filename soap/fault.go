package soap

import (
	"fmt"
	"strings"
)

// Fault is a SOAP fault returned by a service.
type Fault struct {
	Code   string
	String string
	Actor  string
	Detail string
}

func (f *Fault) Error() string {
	if f.Code == "" {
		return "soap fault: " + f.String
	}
	return fmt.Sprintf("soap fault %s: %s", f.Code, f.String)
}

// DetectFault returns the fault carried by a response envelope, if any.
// Documents that are not SOAP envelopes report no fault.
func DetectFault(raw []byte) (*Fault, bool) {
	root, err := decodeTree(raw)
	if err != nil {
		return nil, false
	}
	body, err := soapBody(root)
	if err != nil {
		return nil, false
	}
	f := body.child("Fault")
	if f == nil {
		return nil, false
	}
	return faultFrom(f), true
}

// faultFrom reads SOAP 1.1 fields, falling back to SOAP 1.2 Code/Reason.
func faultFrom(n *node) *Fault {
	fault := &Fault{
		Code:   n.childText("faultcode"),
		String: n.childText("faultstring"),
		Actor:  n.childText("faultactor"),
	}
	if d := n.child("detail"); d != nil {
		fault.Detail = strings.TrimSpace(d.text.String())
		if fault.Detail == "" && len(d.children) > 0 {
			fault.Detail = strings.TrimSpace(d.children[0].text.String())
		}
	}
	if fault.Code == "" {
		if code := n.child("Code"); code != nil {
			fault.Code = code.childText("Value")
		}
	}
	if fault.String == "" {
		if reason := n.child("Reason"); reason != nil {
			fault.String = reason.childText("Text")
		}
	}
	return fault
}
