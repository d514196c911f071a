// Package battlenettest provides an in-process upstream for tests of code
// that talks to the API through battlenet.Client.
package battlenettest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"wowsync/core/battlenet"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Server answers the OAuth token endpoint and any registered API path.
// Unregistered paths answer 500, which the client treats as fatal.
type Server struct {
	srv *httptest.Server

	mu     sync.Mutex
	bodies map[string][]byte
	codes  map[string]int
	hits   map[string]int
}

// New starts a Server that is closed when t finishes.
func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		bodies: map[string][]byte{},
		codes:  map[string]int{},
		hits:   map[string]int{},
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.srv.Close)
	return s
}

func (s *Server) serve(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/oauth/token" {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"test-token","token_type":"bearer","expires_in":86400}`)
		return
	}

	s.mu.Lock()
	s.hits[r.URL.Path]++
	code, failing := s.codes[r.URL.Path]
	body, ok := s.bodies[r.URL.Path]
	s.mu.Unlock()

	switch {
	case failing:
		w.WriteHeader(code)
	case ok:
		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	default:
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// Handle registers a JSON response for path. v is marshalled unless it is
// already a string or a byte slice.
func (s *Server) Handle(path string, v any) {
	var body []byte
	switch b := v.(type) {
	case string:
		body = []byte(b)
	case []byte:
		body = b
	default:
		var err error
		if body, err = json.Marshal(v); err != nil {
			panic(err)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies[strings.ToLower(path)] = body
}

// Fail makes path answer with status.
func (s *Server) Fail(path string, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[strings.ToLower(path)] = status
}

// Hits returns how often path was requested.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[strings.ToLower(path)]
}

// Config returns a client configuration pointing at the server.
func (s *Server) Config() battlenet.Config {
	return battlenet.Config{
		ClientID:       "id",
		ClientSecret:   "secret",
		Region:         "us",
		Locale:         "en_US",
		APIHost:        s.srv.URL,
		TokenURL:       s.srv.URL + "/oauth/token",
		MaxAttempts:    1,
		BaseBackoff:    time.Millisecond,
		TokenMargin:    time.Minute,
		TransientCodes: []int{429, 502},
		NotFoundCodes:  []int{404},
		TimeoutSeconds: 5,
	}
}

// Client returns a client for the server that never sleeps between retries.
func (s *Server) Client(t testing.TB) *battlenet.Client {
	t.Helper()
	client, err := battlenet.NewClient(s.Config(), zap.NewNop(),
		battlenet.WithSleep(func(context.Context, time.Duration) error { return nil }),
	)
	if err != nil {
		t.Fatalf("battlenettest: %v", err)
	}
	return client
}
