package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Request is a SOAP request captured by Server.
type Request struct {
	Method      string
	Path        string
	ContentType string
	// SOAPAction is the header value without surrounding quotes.
	SOAPAction string
	UserAgent  string
	Body       string
}

// Reply is the canned answer for a request.
type Reply struct {
	Status int
	Body   string
}

// Server is a fake SOAP endpoint.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
	reply    func(Request) Reply
}

// NewServer starts a Server that answers 200 with an empty response body
// element until told otherwise. It is closed when t ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{}
	s.Reset()
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// Respond answers every following request with status and body.
func (s *Server) Respond(status int, body string) {
	s.RespondWith(func(Request) Reply { return Reply{Status: status, Body: body} })
}

// RespondWith answers requests with fn.
func (s *Server) RespondWith(fn func(Request) Reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reply = fn
}

// Requests returns the captured requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, or a zero Request.
func (s *Server) LastRequest() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}
	}
	return s.requests[len(s.requests)-1]
}

// Reset forgets captured requests and restores the default reply.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	s.reply = func(Request) Reply {
		return Reply{Status: http.StatusOK, Body: Envelope("<Response/>")}
	}
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	req := Request{
		Method:      r.Method,
		Path:        r.URL.Path,
		ContentType: r.Header.Get("Content-Type"),
		SOAPAction:  strings.Trim(r.Header.Get("SOAPAction"), `"`),
		UserAgent:   r.UserAgent(),
		Body:        string(body),
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	reply := s.reply
	s.mu.Unlock()

	out := reply(req)
	if out.Status == 0 {
		out.Status = http.StatusOK
	}
	w.Header().Set("Content-Type", "text/xml; charset=utf-8")
	w.WriteHeader(out.Status)
	_, _ = io.WriteString(w, out.Body)
}
