// Package httpclient is the HTTP layer under the SOAP transport. It sends
// fully built requests to supplier endpoints and classifies failures so the
// caller can tell a timeout from a refused connection or a 5xx.
//
// Timeouts, TLS, default headers and the resilience policies (retry, circuit
// breaker, rate limiting) come from Config. Each policy is off while its
// config is nil.
//
//	client, err := httpclient.New(httpclient.Config{
//	    Timeout: 15 * time.Second,
//	    Retry:   httpclient.DefaultRetryConfig(),
//	})
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method:  http.MethodPost,
//	    URL:     "https://supplier.example.com/pricing",
//	    Headers: map[string]string{"SOAPAction": "getConfigurationAndPricing"},
//	    Body:    envelope,
//	})
package httpclient
