package gateway

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"shareit/pkg/log"
)

const testHeader = "X-Sharer-User-Id"

type seen struct {
	mu          sync.Mutex
	method      string
	path        string
	query       string
	body        string
	contentType string
	caller      string
}

func newUpstream(t *testing.T, status int, reply string) (*httptest.Server, *seen) {
	t.Helper()
	got := &seen{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got.mu.Lock()
		got.method = r.Method
		got.path = r.URL.Path
		got.query = r.URL.RawQuery
		got.body = string(b)
		got.contentType = r.Header.Get("Content-Type")
		got.caller = r.Header.Get(testHeader)
		got.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, got
}

type upstreamCall struct {
	method      string
	path        string
	query       string
	body        string
	contentType string
	caller      string
}

func (s *seen) snapshot() upstreamCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return upstreamCall{
		method:      s.method,
		path:        s.path,
		query:       s.query,
		body:        s.body,
		contentType: s.contentType,
		caller:      s.caller,
	}
}

func (s *seen) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.method, s.path, s.query, s.body, s.contentType, s.caller = "", "", "", "", "", ""
}

func newTestGateway(t *testing.T, serverURL string, perMin int) *Gateway {
	t.Helper()
	g, err := New(Config{
		Logger:          log.NewNop(),
		Mode:            gin.TestMode,
		ServerURL:       serverURL,
		Timeout:         2 * time.Second,
		Header:          testHeader,
		RateLimitPerMin: perMin,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func do(g *Gateway, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	g.Handler().ServeHTTP(w, req)
	return w
}

func TestProxyForwardsRequest(t *testing.T) {
	upstream, rec := newUpstream(t, http.StatusCreated, `{"error_code":0,"data":{"id":7}}`)
	g := newTestGateway(t, upstream.URL, 0)

	w := do(g, http.MethodPatch, "/bookings/7?approved=true", `{}`, map[string]string{
		testHeader:     " 42 ",
		"Content-Type": "application/json",
	})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected upstream status 201, got %d", w.Code)
	}
	if w.Body.String() != `{"error_code":0,"data":{"id":7}}` {
		t.Errorf("body not relayed verbatim: %s", w.Body.String())
	}
	got := rec.snapshot()
	if got.method != http.MethodPatch || got.path != "/bookings/7" || got.query != "approved=true" {
		t.Errorf("unexpected upstream request: %s %s?%s", got.method, got.path, got.query)
	}
	if got.caller != "42" {
		t.Errorf("expected normalized caller 42, got %q", got.caller)
	}
	if got.contentType != "application/json" || got.body != "{}" {
		t.Errorf("unexpected body forwarding: %q %q", got.contentType, got.body)
	}
}

func TestProxyRelaysUpstreamErrors(t *testing.T) {
	upstream, _ := newUpstream(t, http.StatusNotFound, `{"error_code":404,"message":"booking not found"}`)
	g := newTestGateway(t, upstream.URL, 0)

	w := do(g, http.MethodGet, "/bookings/1", "", map[string]string{testHeader: "1"})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "booking not found") {
		t.Errorf("unexpected body: %s", w.Body.String())
	}
}

func TestCallerHeaderValidation(t *testing.T) {
	upstream, got := newUpstream(t, http.StatusOK, `{}`)
	g := newTestGateway(t, upstream.URL, 0)

	tests := []struct {
		name    string
		method  string
		target  string
		header  string
		want    int
		reached bool
	}{
		{"required missing", http.MethodGet, "/bookings", "", http.StatusBadRequest, false},
		{"required zero", http.MethodGet, "/requests", "0", http.StatusBadRequest, false},
		{"required text", http.MethodPost, "/items", "abc", http.StatusBadRequest, false},
		{"required ok", http.MethodGet, "/bookings/owner", "5", http.StatusOK, true},
		{"optional missing", http.MethodGet, "/items/3", "", http.StatusOK, true},
		{"optional malformed", http.MethodGet, "/items/3", "-1", http.StatusBadRequest, false},
		{"anonymous", http.MethodGet, "/users", "", http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got.reset()
			headers := map[string]string{}
			if tt.header != "" {
				headers[testHeader] = tt.header
			}
			w := do(g, tt.method, tt.target, "", headers)
			if w.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, w.Code)
			}
			if reached := got.snapshot().path != ""; reached != tt.reached {
				t.Errorf("upstream reached = %v, want %v", reached, tt.reached)
			}
		})
	}
}

func TestRateLimitPerCaller(t *testing.T) {
	upstream, _ := newUpstream(t, http.StatusOK, `{}`)
	// 6 per minute gives a burst of 1.
	g := newTestGateway(t, upstream.URL, 6)

	if w := do(g, http.MethodGet, "/bookings", "", map[string]string{testHeader: "1"}); w.Code != http.StatusOK {
		t.Fatalf("first call: expected 200, got %d", w.Code)
	}
	if w := do(g, http.MethodGet, "/bookings", "", map[string]string{testHeader: "1"}); w.Code != http.StatusTooManyRequests {
		t.Fatalf("second call: expected 429, got %d", w.Code)
	}
	if w := do(g, http.MethodGet, "/bookings", "", map[string]string{testHeader: "2"}); w.Code != http.StatusOK {
		t.Fatalf("other caller: expected 200, got %d", w.Code)
	}
}

func TestLimiterConcurrentFirstRequests(t *testing.T) {
	// 10 per minute gives a burst of 1 and a refill every 6s.
	rl := newRateLimiter(10)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("caller:1") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 1 {
		t.Errorf("expected exactly one request through, got %d", allowed)
	}
	if n := rl.limiters.Len(); n != 1 {
		t.Errorf("expected one bucket, got %d", n)
	}
}

func TestOversizedBodyIsRejected(t *testing.T) {
	upstream, rec := newUpstream(t, http.StatusOK, `{}`)
	g := newTestGateway(t, upstream.URL, 0)

	body := strings.Repeat("a", maxBodyBytes+1)
	w := do(g, http.MethodPost, "/bookings", body, map[string]string{
		testHeader:     "1",
		"Content-Type": "application/json",
	})

	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", w.Code)
	}
	if got := rec.snapshot(); got.method != "" {
		t.Errorf("oversized body must not reach upstream, saw %s %s", got.method, got.path)
	}
}

func TestUpstreamDownIsBadGateway(t *testing.T) {
	upstream, _ := newUpstream(t, http.StatusOK, `{}`)
	url := upstream.URL
	upstream.Close()

	g := newTestGateway(t, url, 0)
	w := do(g, http.MethodGet, "/users/1", "", nil)
	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestHealthAndMetrics(t *testing.T) {
	g := newTestGateway(t, "http://127.0.0.1:1", 0)

	if w := do(g, http.MethodGet, "/health", "", nil); w.Code != http.StatusOK {
		t.Errorf("health: expected 200, got %d", w.Code)
	}
	w := do(g, http.MethodGet, "/metrics", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "shareit_gateway_http_requests_total") {
		t.Errorf("metrics output missing request counter")
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := New(Config{Header: testHeader, ServerURL: "http://x"}); err == nil {
		t.Error("expected error without logger")
	}
	if _, err := New(Config{Logger: log.NewNop(), Header: testHeader}); err == nil {
		t.Error("expected error without server url")
	}
}
