package preview

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-qr-studio/internal/config"
	"github.com/MKhiriev/go-qr-studio/internal/logger"
)

// Server wraps the preview HTTP server. It runs alongside the TUI and is
// shut down when the studio exits.
type Server struct {
	server *http.Server
	logger *logger.Logger
}

// NewServer creates the preview server listening on cfg.HTTPAddress.
func NewServer(handler *Handler, cfg config.StudioPreview, logger *logger.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:    cfg.HTTPAddress,
			Handler: handler.Init(),
		},
		logger: logger,
	}
}

// Run starts serving in a background goroutine and returns immediately.
func (s *Server) Run() {
	s.logger.Info().Str("address", s.server.Addr).Msg("preview server starting")

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error().Err(err).Msg("preview server stopped")
		}
	}()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) {
	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("preview server shutdown failed")
	}
}
