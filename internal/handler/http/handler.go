package http

import (
	"github.com/tecnoscan/tecnoscan-api/internal/config"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/payment"
	"github.com/tecnoscan/tecnoscan-api/internal/service"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
)

type Handler struct {
	services *service.Services
	payments *payment.Client

	// db and cfg serve the operator endpoints: /migrate runs the embedded
	// migrations against the live connection, /generate-migration scaffolds
	// into the configured migrations directory.
	db  *store.DB
	cfg config.StructuredConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, payments *payment.Client, db *store.DB, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		payments: payments,
		db:       db,
		cfg:      cfg,
		logger:   logger,
	}
}
