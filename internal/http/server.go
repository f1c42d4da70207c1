// Package http is the delivery layer: a server-rendered dashboard over
// the ledger service. It owns presentation concerns only — the shared
// amount-visibility flag, confirmation before delete, filter selection —
// and calls the ledger for everything else.
package http

import (
	"context"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"kobo/internal/export"
	"kobo/internal/ledger"
	"kobo/internal/log"
	appweb "kobo/web"
)

type Server struct {
	http.Server
	templates *template.Template
	service   *ledger.Service
	delivery  export.Delivery // optional directory copy of exports

	// Single shared visibility flag: masking applies to summary cards and
	// list rows at the same time.
	mu          sync.Mutex
	showAmounts bool
}

// NewServer configures routes and templates, returning a ready-to-run server.
func NewServer(addr string, service *ledger.Service, delivery export.Delivery) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		service:     service,
		delivery:    delivery,
		showAmounts: true,
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", log.FieldError, err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", log.FieldError, err)
	}

	mux.HandleFunc("/", s.withRequestContext(s.handleIndex))
	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)
	mux.HandleFunc("/transactions", s.withRequestContext(s.handleAddTransaction))
	mux.HandleFunc("/transactions/confirm-delete", s.withRequestContext(s.handleConfirmDelete))
	mux.HandleFunc("/transactions/delete", s.withRequestContext(s.handleDeleteTransaction))
	mux.HandleFunc("/visibility", s.withRequestContext(s.handleToggleVisibility))
	mux.HandleFunc("/export", s.withRequestContext(s.handleExport))

	return s
}

// withRequestContext adds security headers and request logging.
func (s *Server) withRequestContext(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := generateRequestID()

		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; style-src 'self' 'unsafe-inline'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		slog.InfoContext(ctx, "Request completed",
			log.FieldRequestID, requestID,
			log.FieldMethod, r.Method,
			log.FieldPath, r.URL.Path,
			log.FieldStatusCode, rw.statusCode,
			log.FieldDuration, time.Since(start).Milliseconds())
	}
}

type requestIDKey struct{}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (s *Server) amountsVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showAmounts
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
