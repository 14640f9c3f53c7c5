package logging

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer.
func captureLogOutput(f func()) string {
	var buf bytes.Buffer

	oldLogger := defaultLogger
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	f()

	defaultLogger = oldLogger
	return buf.String()
}

func TestLogHelpers(t *testing.T) {
	tests := []struct {
		name      string
		log       func()
		wantLevel string
		wantMsg   string
	}{
		{"debug", func() { Debug("debug msg", "k", "v") }, "DEBUG", "debug msg"},
		{"info", func() { Info("info msg") }, "INFO", "info msg"},
		{"warn", func() { Warn("warn msg") }, "WARN", "warn msg"},
		{"error", func() { Error("error msg") }, "ERROR", "error msg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureLogOutput(tt.log)
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("output %q missing level %q", out, tt.wantLevel)
			}
			if !strings.Contains(out, tt.wantMsg) {
				t.Errorf("output %q missing message %q", out, tt.wantMsg)
			}
		})
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	if got := GetRequestID(ctx); got != "" {
		t.Errorf("GetRequestID(empty ctx) = %q, want empty", got)
	}

	ctx = WithRequestID(ctx, "req-123")
	if got := GetRequestID(ctx); got != "req-123" {
		t.Errorf("GetRequestID = %q, want req-123", got)
	}

	out := captureLogOutput(func() {
		InfoContext(ctx, "with id")
	})
	if !strings.Contains(out, "req-123") {
		t.Errorf("output %q missing request id", out)
	}
}

func TestHTTPRequest(t *testing.T) {
	out := captureLogOutput(func() {
		HTTPRequest("GET", "/api/books", "127.0.0.1:9999", 200, 42*time.Millisecond)
	})

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &entry); err != nil {
		t.Fatalf("log output is not JSON: %v\n%s", err, out)
	}
	if entry["msg"] != "http_request" {
		t.Errorf("msg = %v, want http_request", entry["msg"])
	}
	if entry["method"] != "GET" || entry["path"] != "/api/books" {
		t.Errorf("entry = %v, want method/path fields", entry)
	}
	if entry["status_code"] != float64(200) {
		t.Errorf("status_code = %v, want 200", entry["status_code"])
	}
}

func TestDomainEvents(t *testing.T) {
	tests := []struct {
		name string
		log  func()
		want []string
	}{
		{
			"locale loaded",
			func() { LocaleLoaded("de", "builtin") },
			[]string{"locale_loaded", `"code":"de"`, `"source":"builtin"`},
		},
		{
			"export progress",
			func() { ExportProgress("sqlite", "Genesis", 1, 66) },
			[]string{"export_progress", `"book":"Genesis"`, `"total":66`},
		},
		{
			"job event",
			func() { JobEvent("7b2d", "started") },
			[]string{"job_event", `"job_id":"7b2d"`, `"state":"started"`},
		},
		{
			"websocket event",
			func() { WebSocketEvent("client_connected", 3) },
			[]string{"websocket_event", `"client_count":3`},
		},
		{
			"server startup",
			func() { ServerStartup("api", "http", 8765) },
			[]string{"server_startup", `"port":8765`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureLogOutput(tt.log)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output %q missing %q", out, want)
				}
			}
		})
	}
}

func TestGenerateRequestID(t *testing.T) {
	id := generateRequestID()
	if len(id) != 16 {
		t.Errorf("len(id) = %d, want 16", len(id))
	}
	if _, err := hex.DecodeString(id); err != nil {
		t.Errorf("id %q is not hex: %v", id, err)
	}
	if other := generateRequestID(); other == id {
		t.Errorf("two ids are equal: %q", id)
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		if seen == "" {
			t.Error("handler saw no request id")
		}
		if got := rec.Header().Get("X-Request-ID"); got != seen {
			t.Errorf("X-Request-ID = %q, want %q", got, seen)
		}
	})

	t.Run("honors existing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-Request-ID", "given-id")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if seen != "given-id" {
			t.Errorf("request id = %q, want given-id", seen)
		}
	})
}

func TestLoggingMiddleware(t *testing.T) {
	handler := LoggingMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	out := captureLogOutput(func() {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/parse", nil))
	})
	if !strings.Contains(out, "http_request") {
		t.Errorf("output %q missing http_request", out)
	}
	if !strings.Contains(out, "418") {
		t.Errorf("output %q missing captured status code", out)
	}
}

func TestResponseWriterSingleHeader(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

	rw.WriteHeader(http.StatusNotFound)
	rw.WriteHeader(http.StatusOK)
	if rw.statusCode != http.StatusNotFound {
		t.Errorf("statusCode = %d, want first write (404)", rw.statusCode)
	}

	rec = httptest.NewRecorder()
	rw = &responseWriter{ResponseWriter: rec, statusCode: http.StatusOK}
	if _, err := rw.Write([]byte("body")); err != nil {
		t.Fatal(err)
	}
	if rw.statusCode != http.StatusOK {
		t.Errorf("statusCode = %d, want implicit 200", rw.statusCode)
	}
}
