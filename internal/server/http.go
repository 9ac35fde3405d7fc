package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/config"
	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

// Pinger reports whether a dependency is reachable; *pgxpool.Pool satisfies it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouteRegistrar mounts a group of API routes.
type RouteRegistrar interface {
	Register(mux *http.ServeMux)
}

// NewHTTPServer wires the API routes plus health, readiness and metrics endpoints behind the
// request logging and CORS middleware.
func NewHTTPServer(cfg *config.App, logger zerolog.Logger, db Pinger, routes ...RouteRegistrar) *http.Server {
	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      NewHandler(cfg, logger, db, routes...),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// NewHandler builds the root handler used by NewHTTPServer.
func NewHandler(cfg *config.App, logger zerolog.Logger, db Pinger, routes ...RouteRegistrar) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"status":"ok"}`))
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if db == nil {
			httperrors.RespondStatus(w, http.StatusServiceUnavailable)
			return
		}
		if err := db.Ping(ctx); err != nil {
			l := logging.FromContext(ctx, logger)
			l.Error().Err(err).Msg("dependency ping failed")
			httperrors.RespondStatus(w, http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"status":"ready"}`))
	})

	if cfg.Metrics.Enabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	for _, r := range routes {
		r.Register(mux)
	}

	return requestLogger(logger, corsHandler(cfg.CORS, jsonFallback(mux)))
}

// jsonFallback replaces the mux's plain-text 404 and 405 replies with the JSON error envelope.
func jsonFallback(mux *http.ServeMux) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, pattern := mux.Handler(r)
		if pattern != "" {
			mux.ServeHTTP(w, r)
			return
		}

		dw := &discardWriter{header: http.Header{}}
		h.ServeHTTP(dw, r)
		if dw.status == http.StatusMethodNotAllowed {
			w.Header().Set("Allow", dw.header.Get("Allow"))
			httperrors.RespondMethodNotAllowed(w)
			return
		}
		httperrors.RespondNotFound(w)
	})
}

// discardWriter captures headers and status of a handler while dropping its body.
type discardWriter struct {
	header http.Header
	status int
}

func (d *discardWriter) Header() http.Header { return d.header }

func (d *discardWriter) Write(b []byte) (int, error) { return len(b), nil }

func (d *discardWriter) WriteHeader(status int) {
	if d.status == 0 {
		d.status = status
	}
}
