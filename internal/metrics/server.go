package metrics

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Server serves the exporter's registry over plain net/http, on its own
// address next to the API server.
type Server struct {
	addr     string
	registry *prometheus.Registry
	server   *http.Server
	log      *zap.Logger
}

// NewServer builds a metrics server with a private registry holding the
// exporter and the standard runtime collectors.
func NewServer(addr string, exporter *Exporter, log *zap.Logger) *Server {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		exporter,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{
		ErrorLog:      zap.NewStdLog(log),
		ErrorHandling: promhttp.ContinueOnError,
	}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &Server{
		addr:     addr,
		registry: registry,
		server:   &http.Server{Addr: addr, Handler: mux},
		log:      log,
	}
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info("metrics server listening", zap.String("addr", s.addr))
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the server, honoring the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
