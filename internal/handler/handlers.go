package handler

import (
	"github.com/tecnoscan/tecnoscan-api/internal/config"
	"github.com/tecnoscan/tecnoscan-api/internal/handler/http"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/payment"
	"github.com/tecnoscan/tecnoscan-api/internal/service"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, payments *payment.Client, db *store.DB, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, payments, db, cfg, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
