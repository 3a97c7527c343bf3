package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
)

// MockProvider creates a test HTTP server standing in for the Pushover API.
// Returns the server URL. The server is automatically closed when the test finishes.
func MockProvider(t *testing.T, handler http.HandlerFunc) string {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return server.URL
}

// ProviderResponse creates an http.HandlerFunc that returns a fixed messages API response.
func ProviderResponse(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}
}

// ProviderRecorder is a fake messages endpoint that records every request it receives.
type ProviderRecorder struct {
	URL string

	mu          sync.Mutex
	forms       []url.Values
	contentType string
	method      string
}

// NewProviderRecorder starts a recording server replying with status and body.
func NewProviderRecorder(t *testing.T, status int, body string) *ProviderRecorder {
	t.Helper()

	rec := &ProviderRecorder{}
	respond := ProviderResponse(status, body)
	rec.URL = MockProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		rec.mu.Lock()
		rec.forms = append(rec.forms, r.PostForm)
		rec.contentType = r.Header.Get("Content-Type")
		rec.method = r.Method
		rec.mu.Unlock()
		respond(w, r)
	})
	return rec
}

// Calls returns the number of requests received.
func (r *ProviderRecorder) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.forms)
}

// LastForm returns the form body of the most recent request, or nil.
func (r *ProviderRecorder) LastForm() url.Values {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.forms) == 0 {
		return nil
	}
	return r.forms[len(r.forms)-1]
}

// ContentType returns the Content-Type header of the most recent request.
func (r *ProviderRecorder) ContentType() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contentType
}

// Method returns the HTTP method of the most recent request.
func (r *ProviderRecorder) Method() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.method
}
