package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddlewareAllowAll(t *testing.T) {
	handler := CORSMiddleware(CORSConfig{}, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected wildcard origin, got %q", got)
	}
	if resp.Header.Get("Access-Control-Allow-Credentials") != "" {
		t.Error("credentials must not be allowed with wildcard origin")
	}
}

func TestCORSMiddlewareAllowedOrigin(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: []string{"http://example.com"}}
	handler := CORSMiddleware(cfg, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://example.com" {
		t.Errorf("expected origin echoed, got %q", got)
	}
	if resp.Header.Get("Access-Control-Allow-Credentials") != "true" {
		t.Error("expected credentials to be allowed for a named origin")
	}
}

func TestCORSMiddlewareRejectedOrigin(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: []string{"http://example.com"}}
	handler := CORSMiddleware(cfg, okHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://evil.test")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.Header.Get("Access-Control-Allow-Origin") != "" {
		t.Error("expected no CORS headers for a rejected origin")
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("non-preflight request should still pass through, got %d", resp.StatusCode)
	}
}

func TestCORSMiddlewareRejectedPreflight(t *testing.T) {
	cfg := CORSConfig{AllowedOrigins: []string{"http://example.com"}}
	handler := CORSMiddleware(cfg, okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/health", nil)
	req.Header.Set("Origin", "http://evil.test")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Result().StatusCode != http.StatusForbidden {
		t.Errorf("expected 403 for rejected preflight, got %d", w.Result().StatusCode)
	}
}

func TestCORSMiddlewarePreflight(t *testing.T) {
	handler := CORSMiddleware(CORSConfig{}, okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/parse", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for preflight, got %d", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Methods") == "" {
		t.Error("expected allowed methods header")
	}
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	handler := SecurityHeadersMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	resp := w.Result()
	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for name, want := range headers {
		if got := resp.Header.Get(name); got != want {
			t.Errorf("expected %s %q, got %q", name, want, got)
		}
	}
	if resp.Header.Get("Content-Security-Policy") == "" {
		t.Error("expected a content security policy")
	}
}
