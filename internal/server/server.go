// Package server provides the Versicle reference HTTP API.
//
// The server exposes parse, format, translate, validate, and expand over
// JSON endpoints, serves canon and language metadata, and streams the
// progress of long expansions over a WebSocket hub. Expansions submitted
// as jobs run asynchronously and are tracked in an in-memory store.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/FocuswithJustin/Versicle/core/canon"
	"github.com/FocuswithJustin/Versicle/core/locale"
	"github.com/FocuswithJustin/Versicle/internal/logging"
)

// apiVersion is reported by the root and health endpoints.
const apiVersion = "0.1.0"

// Config holds the server configuration.
type Config struct {
	Port           int
	AllowedOrigins []string
}

// ServerConfig is the active configuration, set by Start.
var ServerConfig Config

var startTime = time.Now()

// Start runs the API server until the listener fails.
func Start(cfg Config) error {
	ServerConfig = cfg

	GlobalHub = NewHub()
	go GlobalHub.Run()

	mux := setupRoutes()

	logging.ServerStartup("reference_api", "http", cfg.Port,
		"websocket_protocol", "ws",
		"languages", len(locale.Codes()),
		"canon_fingerprint", canon.Fingerprint())

	var handler http.Handler = SecurityHeadersMiddleware(mux)
	handler = CORSMiddleware(CORSConfig{AllowedOrigins: cfg.AllowedOrigins}, handler)
	handler = logging.CombinedMiddleware(handler)

	return http.ListenAndServe(fmt.Sprintf(":%d", cfg.Port), handler)
}

// setupRoutes wires all endpoints onto a fresh mux.
func setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", handleRoot)
	mux.HandleFunc("/health", handleHealth)
	mux.HandleFunc("/languages", handleLanguages)
	mux.HandleFunc("/books", handleBooks)
	mux.HandleFunc("/parse", handleParse)
	mux.HandleFunc("/format", handleFormat)
	mux.HandleFunc("/translate", handleTranslate)
	mux.HandleFunc("/validate", handleValidate)
	mux.HandleFunc("/expand", handleExpand)
	mux.HandleFunc("/jobs", handleJobs)
	mux.HandleFunc("/jobs/", handleJobByID)
	mux.HandleFunc("/ws", handleWebSocket)
	return mux
}
