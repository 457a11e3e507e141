package soap

import (
	"bytes"
	"strings"

	"github.com/kbukum/promostandards/errors"
)

// Parser reduces response envelopes to generic maps.
type Parser struct{}

// NewParser returns a Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse returns the children of the single element inside the SOAP Body,
// keyed by local name. Leaf elements become strings, xsi:nil elements nil,
// and repeated siblings a []any in document order. Attributes are dropped.
// A response element holding only text is returned under its own name.
func (p *Parser) Parse(raw []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, errors.ParseError("empty response", nil)
	}

	root, err := decodeTree(raw)
	if err != nil {
		return nil, errors.ParseError("malformed XML", err)
	}
	body, err := soapBody(root)
	if err != nil {
		return nil, errors.ParseError(err.Error(), nil)
	}

	if f := body.child("Fault"); f != nil {
		fault := faultFrom(f)
		return nil, errors.ParseError("response is a SOAP fault", fault).
			WithDetail("fault_code", fault.Code).
			WithDetail("fault_string", fault.String)
	}

	switch len(body.children) {
	case 0:
		return nil, errors.ParseError("empty SOAP Body", nil)
	case 1:
	default:
		return nil, errors.ParseError("SOAP Body holds more than one element", nil)
	}

	child := body.children[0]
	switch v := toValue(child).(type) {
	case map[string]any:
		return v, nil
	case string:
		if v != "" {
			return map[string]any{child.name.Local: v}, nil
		}
	}
	return map[string]any{}, nil
}

// toValue converts an element into a string, nil or map[string]any.
func toValue(n *node) any {
	if n.isNil() {
		return nil
	}
	if len(n.children) == 0 {
		return strings.TrimSpace(n.text.String())
	}

	m := make(map[string]any, len(n.children))
	for _, c := range n.children {
		key := c.name.Local
		v := toValue(c)
		existing, ok := m[key]
		if !ok {
			m[key] = v
			continue
		}
		// Element values are never []any, so a list here is one we built.
		if list, isList := existing.([]any); isList {
			m[key] = append(list, v)
		} else {
			m[key] = []any{existing, v}
		}
	}
	return m
}
