package service

import (
	"github.com/tecnoscan/tecnoscan-api/internal/config"
	"github.com/tecnoscan/tecnoscan-api/internal/crypto"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
)

type Services struct {
	AuthService        AuthService
	UserService        UserService
	CarService         CarService
	ApplicationService ApplicationService
	LookupService      LookupService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	passwords := crypto.NewPasswordCodec(cfg.Auth.PasswordSecret)

	return &Services{
		AuthService:        NewAuthService(repositories.UserRepository, passwords, cfg.Auth, logger),
		UserService:        NewUserService(repositories.UserRepository, logger),
		CarService:         NewCarService(repositories.CarRepository, logger),
		ApplicationService: NewApplicationService(repositories.ApplicationRepository, repositories.CarRepository, logger),
		LookupService: NewLookupService(
			repositories.CarBrandRepository,
			repositories.EngineVolumeRepository,
			repositories.TransmissionTypeRepository,
			logger,
		),
	}
}
