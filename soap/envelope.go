package soap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"reflect"
	"strconv"
	"time"
	"unicode"

	"github.com/kbukum/promostandards/util"
)

const (
	prefixEnvelope = "soapenv"
	prefixService  = "ns"
	prefixShared   = "shar"
)

// Encode builds the SOAP request envelope for op carrying payload.
//
// Keys listed in op.Fields come first in that order, the rest follow
// sorted. Nested maps become nested elements, slices repeat their element,
// nil values are skipped and time.Time is written as RFC 3339 in UTC.
func Encode(op Operation, payload map[string]any) ([]byte, error) {
	if op.Name == "" || op.Namespace == "" {
		return nil, fmt.Errorf("soap: operation name and namespace are required")
	}

	childPrefix := prefixService
	attrs := []xml.Attr{
		xmlnsAttr(prefixEnvelope, EnvelopeNamespace),
		xmlnsAttr(prefixService, op.Namespace),
	}
	if op.SharedNamespace != "" && op.SharedNamespace != op.Namespace {
		childPrefix = prefixShared
		attrs = append(attrs, xmlnsAttr(prefixShared, op.SharedNamespace))
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	e := &encoder{enc: enc, prefix: childPrefix}

	envelope := prefixed(prefixEnvelope, "Envelope")
	body := prefixed(prefixEnvelope, "Body")
	request := prefixed(prefixService, op.Request())

	e.start(envelope, attrs...)
	e.start(prefixed(prefixEnvelope, "Header"))
	e.end(prefixed(prefixEnvelope, "Header"))
	e.start(body)
	e.start(request)
	for _, key := range orderedKeys(payload, op.Fields) {
		e.value(key, payload[key])
	}
	e.end(request)
	e.end(body)
	e.end(envelope)

	if e.err == nil {
		e.err = enc.Flush()
	}
	if e.err != nil {
		return nil, fmt.Errorf("soap: encode %s: %w", op.Request(), e.err)
	}
	return buf.Bytes(), nil
}

// orderedKeys returns the declared fields present in payload, then the
// remaining keys sorted.
func orderedKeys(payload map[string]any, declared []string) []string {
	keys := make([]string, 0, len(payload))
	seen := make(map[string]bool, len(declared))
	for _, k := range declared {
		if _, ok := payload[k]; ok && !seen[k] {
			keys = append(keys, k)
			seen[k] = true
		}
	}
	for _, k := range util.SortedKeys(payload) {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	return keys
}

// encoder writes elements with namespace prefixes baked into local names,
// which keeps encoding/xml from generating its own xmlns declarations.
type encoder struct {
	enc    *xml.Encoder
	prefix string
	err    error
}

func (e *encoder) start(name xml.Name, attrs ...xml.Attr) {
	if e.err == nil {
		e.err = e.enc.EncodeToken(xml.StartElement{Name: name, Attr: attrs})
	}
}

func (e *encoder) end(name xml.Name) {
	if e.err == nil {
		e.err = e.enc.EncodeToken(xml.EndElement{Name: name})
	}
}

func (e *encoder) text(s string) {
	if e.err == nil && s != "" {
		e.err = e.enc.EncodeToken(xml.CharData(s))
	}
}

func (e *encoder) value(key string, v any) {
	if e.err != nil || v == nil {
		return
	}
	if key == "" {
		e.err = fmt.Errorf("empty element name")
		return
	}
	if !isNCName(key) {
		e.err = fmt.Errorf("invalid element name %q", key)
		return
	}
	name := prefixed(e.prefix, key)

	switch t := v.(type) {
	case string:
		e.leaf(name, t)
	case time.Time:
		e.leaf(name, t.UTC().Format(time.RFC3339))
	case *time.Time:
		if t != nil {
			e.leaf(name, t.UTC().Format(time.RFC3339))
		}
	case fmt.Stringer:
		e.leaf(name, t.String())
	case map[string]any:
		e.start(name)
		for _, k := range util.SortedKeys(t) {
			e.value(k, t[k])
		}
		e.end(name)
	case []any:
		for _, item := range t {
			e.value(key, item)
		}
	default:
		e.reflectValue(key, reflect.ValueOf(v))
	}
}

func (e *encoder) reflectValue(key string, rv reflect.Value) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			e.value(key, rv.Elem().Interface())
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			e.value(key, rv.Index(i).Interface())
		}
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			e.err = fmt.Errorf("element %s: map keys must be strings, got %s", key, rv.Type().Key())
			return
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		e.value(key, m)
	case reflect.Bool:
		e.leaf(prefixed(e.prefix, key), strconv.FormatBool(rv.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.leaf(prefixed(e.prefix, key), strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		e.leaf(prefixed(e.prefix, key), strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		e.leaf(prefixed(e.prefix, key), strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits()))
	case reflect.String:
		e.leaf(prefixed(e.prefix, key), rv.String())
	default:
		e.err = fmt.Errorf("element %s: unsupported value of type %s", key, rv.Type())
	}
}

func (e *encoder) leaf(name xml.Name, s string) {
	e.start(name)
	e.text(s)
	e.end(name)
}

func prefixed(prefix, local string) xml.Name {
	return xml.Name{Local: prefix + ":" + local}
}

func xmlnsAttr(prefix, uri string) xml.Attr {
	return xml.Attr{Name: xml.Name{Local: "xmlns:" + prefix}, Value: uri}
}

// isNCName reports whether s is an XML name without a colon.
func isNCName(s string) bool {
	for i, r := range s {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return s != ""
}
