package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/agbru/primegen/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// Server serves the metrics and health endpoints on a dedicated listener.
type Server struct {
	addr    string
	metrics *Metrics
	logger  logging.Logger
	httpSrv *http.Server
}

// New creates a metrics server bound to addr.
func New(addr string, metrics *Metrics, logger logging.Logger) *Server {
	s := &Server{
		addr:    addr,
		metrics: metrics,
		logger:  logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", s.metricsMiddleware(s.handleMetrics))
	mux.HandleFunc("/healthz", s.metricsMiddleware(s.handleHealth))

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           securityHeaders(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Start serves until ctx is canceled, then shuts down gracefully. It only
// returns listener errors; a clean shutdown returns nil.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("metrics server listening", logging.String("addr", s.addr))
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("metrics server shutdown", err)
	}
	return nil
}

// metricsMiddleware tracks in-flight and total request counts.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		s.metrics.CountRequest(r.URL.Path)
		next(w, r)
	}
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// securityHeaders sets conservative response headers on every reply.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		next.ServeHTTP(w, r)
	})
}
