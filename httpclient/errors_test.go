package httpclient

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

var errTest = errors.New("boom")

func TestErrorCode_String(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want string
	}{
		{ErrCodeTimeout, "timeout"},
		{ErrCodeConnection, "connection"},
		{ErrCodeAuth, "auth"},
		{ErrCodeNotFound, "not_found"},
		{ErrCodeRateLimit, "rate_limit"},
		{ErrCodeClient, "client"},
		{ErrCodeServer, "server"},
		{ErrCodeCircuitOpen, "circuit_open"},
		{ErrorCode(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.want)
		}
	}
}

func TestError_Error(t *testing.T) {
	e := &Error{StatusCode: 404, Code: ErrCodeNotFound, Message: "Not Found"}
	want := "httpclient: not_found (HTTP 404): Not Found"
	if got := e.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	e2 := &Error{Code: ErrCodeConnection, Message: "connection refused"}
	want2 := "httpclient: connection: connection refused"
	if got := e2.Error(); got != want2 {
		t.Errorf("got %q, want %q", got, want2)
	}
}

func TestClassifyStatusCode(t *testing.T) {
	tests := []struct {
		status    int
		code      ErrorCode
		retryable bool
	}{
		{401, ErrCodeAuth, false},
		{403, ErrCodeAuth, false},
		{404, ErrCodeNotFound, false},
		{408, ErrCodeTimeout, true},
		{429, ErrCodeRateLimit, true},
		{400, ErrCodeClient, false},
		{422, ErrCodeClient, false},
		{500, ErrCodeServer, true},
		{501, ErrCodeServer, false},
		{503, ErrCodeServer, true},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			e := ClassifyStatusCode(tt.status, []byte("body"))
			if e == nil {
				t.Fatal("expected error")
			}
			if e.Code != tt.code {
				t.Errorf("expected %s, got %s", tt.code, e.Code)
			}
			if e.Retryable != tt.retryable {
				t.Errorf("expected retryable=%v, got %v", tt.retryable, e.Retryable)
			}
			if string(e.Body) != "body" {
				t.Errorf("expected body to be kept, got %q", e.Body)
			}
		})
	}

	for _, ok := range []int{200, 201, 204} {
		if ClassifyStatusCode(ok, nil) != nil {
			t.Errorf("expected nil for %d", ok)
		}
	}
}

func TestPredicates(t *testing.T) {
	wrapped := fmt.Errorf("call: %w", ClassifyStatusCode(503, nil))
	if !IsServerError(wrapped) || !IsRetryable(wrapped) {
		t.Error("expected wrapped 503 to be a retryable server error")
	}
	if !IsTimeout(NewTimeoutError(errTest)) {
		t.Error("expected IsTimeout")
	}
	if !IsConnection(NewConnectionError(errTest)) {
		t.Error("expected IsConnection")
	}
	if !IsAuth(ClassifyStatusCode(401, nil)) || !IsNotFound(ClassifyStatusCode(404, nil)) || !IsRateLimit(ClassifyStatusCode(429, nil)) {
		t.Error("expected status predicates to match")
	}
	if !IsCircuitOpen(NewCircuitOpenError(errTest)) || IsRetryable(NewCircuitOpenError(errTest)) {
		t.Error("expected non-retryable circuit_open error")
	}
	if IsRetryable(errTest) {
		t.Error("plain errors should not be retryable")
	}
}

func TestAsError_ContextErrors(t *testing.T) {
	err := asError(context.Background(), context.DeadlineExceeded)
	e, ok := AsError(err)
	if !ok || e.Code != ErrCodeTimeout {
		t.Fatalf("expected timeout error, got %v", err)
	}
	if e.Retryable {
		t.Error("expected a spent context not to be retryable")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Error("expected the context error to be wrapped")
	}
}
