// Package errors provides the error taxonomy of the PromoStandards client.
//
// Every failure surfaced by the client is an *AppError carrying a
// machine-readable ErrorCode, a human-readable message, a retryable hint
// and optional structured details. Configuration problems
// (MissingCredentials, MissingServiceURL) are raised by the client itself;
// TransportError and ParseError are raised by the SOAP collaborators and
// propagated unmodified.
package errors
