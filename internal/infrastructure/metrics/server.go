package metrics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/bnema/dumbshell/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 2 * time.Second

// DialogStatus describes one dialog kind for /debug/dialogs.
type DialogStatus struct {
	Kind          string `json:"kind"`
	Visible       bool   `json:"visible"`
	InteractionID string `json:"interaction_id,omitempty"`
	Title         string `json:"title,omitempty"`
	Message       string `json:"message,omitempty"`
	Queued        int    `json:"queued"`
}

// StatusFunc returns the current dialog status. It is called from HTTP
// handler goroutines and must be safe for concurrent use.
type StatusFunc func() []DialogStatus

// Server is the optional debug HTTP endpoint.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
}

// NewHandler builds the debug router.
func NewHandler(gatherer prometheus.Gatherer, status StatusFunc) http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/debug/dialogs", func(w http.ResponseWriter, _ *http.Request) {
		var dialogs []DialogStatus
		if status != nil {
			dialogs = status()
		}
		if dialogs == nil {
			dialogs = []DialogStatus{}
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dialogs); err != nil {
			http.Error(w, "failed to encode dialog status", http.StatusInternalServerError)
		}
	})
	return r
}

// Start listens on addr and serves in the background until ctx is done
// or Shutdown is called.
func Start(ctx context.Context, addr string, handler http.Handler) (*Server, error) {
	log := logging.FromContext(ctx).With().Str("component", "metrics").Logger()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	s := &Server{
		httpServer: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		listener: listener,
	}

	go func() {
		if err := s.httpServer.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("debug server stopped")
		}
	}()
	go func() {
		<-ctx.Done()
		_ = s.Shutdown()
	}()

	log.Info().Str("addr", listener.Addr().String()).Msg("debug server listening")
	return s, nil
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Shutdown stops the server, waiting briefly for in-flight requests.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
