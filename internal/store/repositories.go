package store

import (
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
)

// Repositories bundles every repository of the persistence layer.
type Repositories struct {
	UserRepository             UserRepository
	CarRepository              CarRepository
	ApplicationRepository      ApplicationRepository
	CarBrandRepository         CarBrandRepository
	EngineVolumeRepository     EngineVolumeRepository
	TransmissionTypeRepository TransmissionTypeRepository
}

// NewRepositories wires all repositories over a single database connection.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:             NewUserRepository(db, logger),
		CarRepository:              NewCarRepository(db, logger),
		ApplicationRepository:      NewApplicationRepository(db, logger),
		CarBrandRepository:         NewCarBrandRepository(db, logger),
		EngineVolumeRepository:     NewEngineVolumeRepository(db, logger),
		TransmissionTypeRepository: NewTransmissionTypeRepository(db, logger),
	}
}
