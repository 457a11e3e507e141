package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeMissingField, "missing")
	if err.Code != ErrCodeMissingField {
		t.Errorf("expected code %s, got %s", ErrCodeMissingField, err.Code)
	}
	if err.Message != "missing" {
		t.Errorf("expected message 'missing', got %q", err.Message)
	}
	if err.Retryable {
		t.Error("MISSING_FIELD should not be retryable")
	}
}

func TestAppError_New_Retryable(t *testing.T) {
	err := New(ErrCodeTransport, "boom")
	if !err.Retryable {
		t.Error("TRANSPORT_ERROR should be retryable by default")
	}
}

func TestAppError_MissingCredentials_Message(t *testing.T) {
	err := MissingCredentials()
	if err.Code != ErrCodeMissingCredentials {
		t.Errorf("expected MISSING_CREDENTIALS, got %s", err.Code)
	}
	if err.Message != "Customer ID (id) and Password (password) are required" {
		t.Errorf("unexpected message %q", err.Message)
	}
	fields, ok := err.Details["fields"].([]string)
	if !ok || len(fields) != 2 || fields[0] != "id" || fields[1] != "password" {
		t.Errorf("expected fields [id password], got %v", err.Details["fields"])
	}
	if err.Retryable {
		t.Error("MissingCredentials should not be retryable")
	}
}

func TestAppError_MissingServiceURL_NamesField(t *testing.T) {
	err := MissingServiceURL("pricing_service_url")
	if err.Details["field"] != "pricing_service_url" {
		t.Errorf("expected field=pricing_service_url, got %v", err.Details["field"])
	}
	if !strings.Contains(err.Message, "pricing_service_url") {
		t.Errorf("expected message to name the field, got %q", err.Message)
	}
}

func TestAppError_TransportError_Details(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := TransportError("PricingAndConfiguration", "connection", cause)
	if err.Details["service"] != "PricingAndConfiguration" {
		t.Errorf("expected service detail, got %v", err.Details["service"])
	}
	if err.Details["kind"] != "connection" {
		t.Errorf("expected kind=connection, got %v", err.Details["kind"])
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
	if err.WithRetryable(false).Retryable {
		t.Error("expected WithRetryable to override the hint")
	}
}

func TestAppError_ParseError_Cause(t *testing.T) {
	cause := fmt.Errorf("unexpected EOF")
	err := ParseError("malformed envelope", cause)
	if err.Code != ErrCodeParse {
		t.Errorf("expected PARSE_ERROR, got %s", err.Code)
	}
	if !strings.Contains(err.Error(), "unexpected EOF") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestAppError_WithDetails_Merge(t *testing.T) {
	err := MissingServiceURL("inventory_service_url").WithDetails(map[string]any{
		"extra": "info",
	})
	if err.Details["extra"] != "info" {
		t.Errorf("expected extra=info in details")
	}
	if err.Details["field"] != "inventory_service_url" {
		t.Error("expected original details to be preserved")
	}
}

func TestAppError_WithDetail_NilMap(t *testing.T) {
	err := &AppError{}
	err.WithDetail("key", "value")
	if err.Details == nil {
		t.Fatal("expected Details map to be initialized")
	}
	if err.Details["key"] != "value" {
		t.Errorf("expected key=value, got %v", err.Details["key"])
	}
}

func TestAppError_Unwrap_Success(t *testing.T) {
	cause := fmt.Errorf("underlying")
	err := ParseError("x", cause)
	if err.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}
	if MissingCredentials().Unwrap() != nil {
		t.Error("Unwrap should return nil when no cause")
	}
}

func TestAppError_Predicates_Table(t *testing.T) {
	tests := []struct {
		name string
		err  error
		pred func(error) bool
	}{
		{"MissingCredentials", MissingCredentials(), IsMissingCredentials},
		{"MissingServiceURL", MissingServiceURL("pricing_service_url"), IsMissingServiceURL},
		{"TransportError", TransportError("Inventory", "timeout", nil), IsTransport},
		{"ParseError", ParseError("empty", nil), IsParse},
		{"Wrapped", fmt.Errorf("call: %w", ParseError("empty", nil)), IsParse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if !tc.pred(tc.err) {
				t.Errorf("expected predicate to match %v", tc.err)
			}
		})
	}

	if IsTransport(fmt.Errorf("plain")) {
		t.Error("plain errors should not match")
	}
}

func TestAppError_AsAppError(t *testing.T) {
	wrapped := fmt.Errorf("wrapped: %w", MissingCredentials())
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to unwrap")
	}
	if appErr.Code != ErrCodeMissingCredentials {
		t.Errorf("expected MISSING_CREDENTIALS, got %s", appErr.Code)
	}
	if _, ok := AsAppError(fmt.Errorf("plain")); ok {
		t.Error("expected AsAppError to fail for plain errors")
	}
}
