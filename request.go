package promostandards

import (
	"context"
	"net/url"

	"github.com/google/uuid"

	"github.com/kbukum/promostandards/errors"
	"github.com/kbukum/promostandards/logger"
	"github.com/kbukum/promostandards/observability"
	"github.com/kbukum/promostandards/soap"
	"github.com/kbukum/promostandards/util"
)

// requester runs one operation for every service of a Client.
type requester struct {
	settings  Settings
	transport Transport
	parser    Parser
	metrics   *observability.Metrics
	log       *logger.Logger
}

// invoke checks the service URL, builds the payload, sends it and parses the
// response. Transport and parser errors are returned as they are.
func (r *requester) invoke(ctx context.Context, svc service, endpoint string, op soap.Operation, fields, params Params) (Result, error) {
	if endpoint == "" {
		return nil, errors.MissingServiceURL(svc.urlKey).WithDetail("operation", op.Name)
	}

	requestID := uuid.NewString()
	payload := util.Merge(r.defaults(op), fields, params)

	call := observability.NewCall(op.Service, op.Name, requestID, r.metrics)
	call.WSVersion = op.Version
	call.Endpoint = host(endpoint)
	ctx = call.Start(ctx)

	log := r.log.WithFields(logger.Fields(
		logger.FieldService, op.Service,
		logger.FieldOperation, op.Name,
		logger.FieldRequestID, requestID,
	))
	log.Debug("calling service", logger.Fields(logger.FieldEndpoint, endpoint))

	result, err := r.roundTrip(ctx, endpoint, op, payload)
	if err != nil {
		call.End(ctx, err, errorCode(err))
		log.Error("service call failed", logger.Fields(
			logger.FieldError, err.Error(),
			logger.FieldDuration, call.Duration().Milliseconds(),
		))
		return nil, err
	}

	call.End(ctx, nil, "")
	log.Debug("service call succeeded", logger.DurationFields(op.Name, call.Duration()))
	return result, nil
}

func (r *requester) roundTrip(ctx context.Context, endpoint string, op soap.Operation, payload map[string]any) (Result, error) {
	raw, err := r.transport.PerformRequest(ctx, endpoint, op, payload)
	if err != nil {
		return nil, err
	}
	parsed, err := r.parser.Parse(raw)
	if err != nil {
		return nil, err
	}
	return Result(parsed), nil
}

// defaults returns the resolved request fields the operation's schema
// carries. wsVersion, id and password are always sent.
func (r *requester) defaults(op soap.Operation) Params {
	d := Params{
		"wsVersion": op.Version,
		"id":        r.settings.id,
		"password":  r.settings.password,
	}
	optional := map[string]string{
		"currency":             r.settings.currency,
		"localizationCountry":  r.settings.localizationCountry,
		"localizationLanguage": r.settings.localizationLanguage,
	}
	for key, value := range optional {
		if util.Contains(op.Fields, key) {
			d[key] = value
		}
	}
	return d
}

func errorCode(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return ""
}

func host(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}
