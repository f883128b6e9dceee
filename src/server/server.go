package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"masqr-license/src/config"
	"masqr-license/src/license"
	"masqr-license/src/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InvalidPSKMessage is the only error message license callers ever see.
const InvalidPSKMessage = "Invalid PSK; Cannot assign licenses"

// NewLogger returns the console logger used by the API server.
func NewLogger(level zerolog.Level) zerolog.Logger {
	return log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Caller().Logger().Level(level)
}

// ErrorRes is a JSON response containing an error message from the API.
type ErrorRes struct {
	Error string `json:"error"`
}

type appContext struct {
	logger  zerolog.Logger
	issuer  *license.Issuer
	metrics *metrics.Metrics
}

// appHandler adapts handlers that report failures as (status, error).
type appHandler struct {
	ctx appContext
	h   func(ctx appContext, w http.ResponseWriter, req *http.Request) (int, error)
}

func (ah appHandler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	status, err := ah.h(ah.ctx, w, req)
	if err == nil {
		return
	}

	reason := license.Reason(err)
	evt := ah.ctx.logger.Warn()
	if errors.Is(err, license.ErrConfigUnavailable) || errors.Is(err, license.ErrConfigMalformed) {
		evt = ah.ctx.logger.Error()
	}
	evt.Err(err).Str("reason", reason).Int("status", status).Str("path", req.URL.Path).Msg("request failed")

	message := http.StatusText(status)
	if reason != "unknown" {
		message = InvalidPSKMessage
	}
	writeError(status, message, w)
}

func writeError(code int, message string, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(ErrorRes{Error: message})
}

// Serve is an instance of the license API web server.
type Serve struct {
	cfg      config.Config
	ctx      appContext
	registry *prometheus.Registry
}

// NewServe wires an issuer into a server with its own metrics registry.
func NewServe(cfg config.Config, logger zerolog.Logger, issuer *license.Issuer) *Serve {
	reg := prometheus.NewRegistry()
	return &Serve{
		cfg: cfg,
		ctx: appContext{
			logger:  logger,
			issuer:  issuer,
			metrics: metrics.New(reg),
		},
		registry: reg,
	}
}

// Handler returns the routed HTTP handler.
func (s *Serve) Handler() http.Handler {
	return newRouter(s.ctx, s.registry)
}

// CheckAllowList logs whether the allow-list can currently be read. It never fails.
func (s *Serve) CheckAllowList() {
	n, err := s.ctx.issuer.Check()
	if err != nil {
		s.ctx.logger.Warn().Err(err).Msgf("couldn't interpret %s environment variable", config.AllowListKey)
		return
	}
	s.ctx.logger.Info().Int("psks", n).Msg("allow-list loaded")
}

// Run listens until ctx is cancelled, then shuts down gracefully.
func (s *Serve) Run(ctx context.Context) error {
	s.CheckAllowList()

	srv := &http.Server{
		Addr:         s.cfg.ListenAddr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.ctx.logger.Info().Msgf("Web server now listening on %s", s.cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.ctx.logger.Info().Msg("shutting down web server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
