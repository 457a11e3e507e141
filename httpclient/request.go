package httpclient

// Request describes an outbound HTTP request.
type Request struct {
	// Method defaults to POST.
	Method string
	// URL is the absolute endpoint URL.
	URL string
	// Headers are request-specific headers (merged over client defaults).
	Headers map[string]string
	// Body is sent as-is.
	Body []byte
}

// Response is the result of an HTTP request.
type Response struct {
	StatusCode int
	// Headers holds the first value of each response header.
	Headers map[string]string
	Body    []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
