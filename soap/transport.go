package soap

import (
	"context"
	"net/http"
	"time"

	"github.com/kbukum/promostandards/errors"
	"github.com/kbukum/promostandards/httpclient"
	"github.com/kbukum/promostandards/logger"
)

// ContentType is the SOAP 1.1 request content type.
const ContentType = "text/xml; charset=utf-8"

// Transport posts SOAP envelopes over HTTP.
type Transport struct {
	client *httpclient.Client
	log    *logger.Logger
}

// NewTransport creates a Transport over client. A nil log discards output.
func NewTransport(client *httpclient.Client, log *logger.Logger) *Transport {
	if log == nil {
		log = logger.Nop()
	}
	return &Transport{client: client, log: log.WithComponent("soap")}
}

// NewDefaultTransport builds the HTTP client from cfg and wraps it.
func NewDefaultTransport(cfg httpclient.Config, log *logger.Logger) (*Transport, error) {
	client, err := httpclient.New(cfg)
	if err != nil {
		return nil, err
	}
	return NewTransport(client, log), nil
}

// PerformRequest encodes payload for op, posts it to endpoint and returns
// the raw response body. Every failure is an errors.TransportError, faults
// included, whatever the HTTP status.
func (t *Transport) PerformRequest(ctx context.Context, endpoint string, op Operation, payload map[string]any) ([]byte, error) {
	body, err := Encode(op, payload)
	if err != nil {
		return nil, t.fail(op, "encode", err).WithRetryable(false)
	}

	start := time.Now()
	resp, err := t.client.Do(ctx, httpclient.Request{
		Method: http.MethodPost,
		URL:    endpoint,
		Headers: map[string]string{
			"Content-Type": ContentType,
			"SOAPAction":   `"` + op.SOAPAction() + `"`,
		},
		Body: body,
	})

	fields := logger.Fields(
		logger.FieldOperation, op.Name,
		logger.FieldEndpoint, endpoint,
		logger.FieldDuration, time.Since(start).Milliseconds(),
	)

	if err != nil {
		httpErr, _ := httpclient.AsError(err)
		if httpErr != nil {
			if fault, ok := DetectFault(httpErr.Body); ok {
				t.log.Debug("soap fault", fields)
				return nil, faultError(op, fault, httpErr.StatusCode)
			}
			appErr := t.fail(op, httpErr.Code.String(), err).WithRetryable(httpErr.Retryable)
			if httpErr.StatusCode > 0 {
				appErr.WithDetail("status", httpErr.StatusCode)
			}
			t.log.Debug("soap request failed", fields)
			return nil, appErr
		}
		t.log.Debug("soap request failed", fields)
		return nil, t.fail(op, "unknown", err)
	}

	if fault, ok := DetectFault(resp.Body); ok {
		t.log.Debug("soap fault", fields)
		return nil, faultError(op, fault, resp.StatusCode)
	}

	fields[logger.FieldStatus] = resp.StatusCode
	fields["bytes"] = len(resp.Body)
	t.log.Debug("soap response received", fields)
	return resp.Body, nil
}

func (t *Transport) fail(op Operation, kind string, cause error) *errors.AppError {
	return errors.TransportError(op.Service, kind, cause).WithDetail("operation", op.Name)
}

func faultError(op Operation, fault *Fault, status int) *errors.AppError {
	return errors.TransportError(op.Service, "fault", fault).
		WithRetryable(false).
		WithDetails(map[string]any{
			"operation":    op.Name,
			"status":       status,
			"fault_code":   fault.Code,
			"fault_string": fault.String,
		})
}
