package handler

import (
	"github.com/edukite/face-auth/internal/config"
	"github.com/edukite/face-auth/internal/handler/http"
	"github.com/edukite/face-auth/internal/logger"
	"github.com/edukite/face-auth/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
