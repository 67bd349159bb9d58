// Package http exposes rxdocs services over HTTP. The storage core never
// depends on this package; it is the outward-facing surface an agent or
// browser talks to.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rxdocs/rxdocs"
)

// ShutdownTimeout is the maximum time to wait for in-flight requests when
// closing the server.
const ShutdownTimeout = 5 * time.Second

// Server wraps net/http to serve the rxdocs API.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Bind address, e.g. ":8000".
	Addr string

	// Services backing the endpoints. Set before calling Open.
	Sections   rxdocs.SectionService
	Components rxdocs.ComponentService
	Search     rxdocs.SearchService
	Stats      rxdocs.StatsService

	Logger *slog.Logger
}

// NewServer creates a new Server with routes registered.
func NewServer() *Server {
	s := &Server{
		server: &http.Server{},
		Logger: slog.Default(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHealth)
	mux.HandleFunc("GET /search", s.handleSearch)
	mux.HandleFunc("GET /doc/{slug...}", s.handleDoc)
	mux.HandleFunc("GET /components", s.handleComponents)
	mux.HandleFunc("GET /component/{name}", s.handleComponent)
	mux.HandleFunc("GET /stats", s.handleStats)

	s.server.Handler = s.logRequests(mux)

	return s
}

// Open begins listening on Addr. It returns immediately; use Close to shut
// the server down.
func (s *Server) Open() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.ln = ln

	go func() {
		if err := s.server.Serve(ln); err != nil && err != http.ErrServerClosed {
			s.Logger.Error("server terminated", "error", err)
		}
	}()

	return nil
}

// URL returns the base URL the server is listening on. Useful in tests where
// Addr is ":0".
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	return "http://" + s.ln.Addr().String()
}

// Close gracefully shuts down the server, waiting up to ShutdownTimeout for
// in-flight requests.
func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Handler returns the server's root handler. Exposed for handler-level tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// logRequests logs every request with a generated request ID, the route, the
// status code, and the latency.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		rw := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rw, r)

		s.Logger.Info("request",
			"id", uuid.NewString(),
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"latency", time.Since(begin),
		)
	})
}

// statusRecorder captures the response status code for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// writeJSON writes v as a JSON response with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("failed to encode response", "error", err)
	}
}

// errorResponse is the JSON body returned for failed requests.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps a domain error to an HTTP status and a JSON body. Internal
// errors are logged in full but surfaced with a masked message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := rxdocs.ErrorCode(err)
	if code == rxdocs.EINTERNAL {
		s.Logger.Error("internal error", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	s.writeJSON(w, statusFromCode(code), errorResponse{Error: rxdocs.ErrorMessage(err)})
}

// statusFromCode translates domain error codes to HTTP status codes.
func statusFromCode(code string) int {
	switch code {
	case rxdocs.ENOTFOUND:
		return http.StatusNotFound
	case rxdocs.EINVALID:
		return http.StatusBadRequest
	case rxdocs.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
