package handler

import (
	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler/http"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers. In the development environment
// every CORS origin is allowed regardless of the configured list.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	serverCfg := cfg.Server
	if cfg.App.IsDevelopment() {
		serverCfg.CORSOrigins = []string{"*"}
	}

	return &Handlers{HTTP: http.NewHandler(services, serverCfg, logger)}, nil
}
