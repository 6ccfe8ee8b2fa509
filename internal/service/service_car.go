package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// carService manages per-user vehicles. Reads check ownership after the
// fetch; writes push the ownership check into the repository's WHERE clause,
// so a foreign row is indistinguishable from a missing one.
type carService struct {
	carRepository store.CarRepository
	logger        *logger.Logger
}

func NewCarService(carRepository store.CarRepository, logger *logger.Logger) CarService {
	return &carService{
		carRepository: carRepository,
		logger:        logger,
	}
}

// CreateCar persists a new vehicle for the owner recorded in car.UserID.
//
// Returns ErrInvalidDataProvided when the required fields are missing; VIN
// duplicates and dangling lookup references surface as the store sentinels
// ErrVINCodeAlreadyExists and ErrReferencedRowNotFound.
func (c *carService) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	if car.UserID == uuid.Nil || car.BrandID == uuid.Nil || car.Model == "" || car.VINCode == "" {
		log.Error().Str("vin", car.VINCode).Msg("invalid car data provided")
		return models.Car{}, ErrInvalidDataProvided
	}

	created, err := c.carRepository.CreateCar(ctx, car)
	if err != nil {
		log.Err(err).Str("vin", car.VINCode).Msg("car creation ended with error")
		return models.Car{}, fmt.Errorf("car creation ended with error: %w", err)
	}

	return created, nil
}

// GetCar returns the vehicle with the given ID if it belongs to userID.
// A car owned by another user comes back as ErrForbidden.
func (c *carService) GetCar(ctx context.Context, userID uuid.UUID, carID uuid.UUID) (models.Car, error) {
	log := logger.FromContext(ctx)

	car, err := c.carRepository.GetCar(ctx, carID)
	if err != nil {
		log.Err(err).Str("carID", carID.String()).Msg("car lookup failed")
		return models.Car{}, fmt.Errorf("car lookup failed: %w", err)
	}

	if car.UserID != userID {
		log.Error().
			Str("carID", carID.String()).
			Str("userID", userID.String()).
			Msg("car belongs to another user")
		return models.Car{}, ErrForbidden
	}

	return car, nil
}

func (c *carService) GetUserCars(ctx context.Context, userID uuid.UUID) ([]models.Car, error) {
	log := logger.FromContext(ctx)

	cars, err := c.carRepository.GetUserCars(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID.String()).Msg("car listing failed")
		return nil, fmt.Errorf("car listing failed: %w", err)
	}

	return cars, nil
}

func (c *carService) UpdateCar(ctx context.Context, userID uuid.UUID, carID uuid.UUID, patch models.CarUpdate) (models.Car, error) {
	log := logger.FromContext(ctx)

	updated, err := c.carRepository.UpdateCar(ctx, carID, userID, patch)
	if err != nil {
		log.Err(err).Str("carID", carID.String()).Msg("car update failed")
		return models.Car{}, fmt.Errorf("car update failed: %w", err)
	}

	return updated, nil
}

func (c *carService) DeleteCar(ctx context.Context, userID uuid.UUID, carID uuid.UUID) error {
	log := logger.FromContext(ctx)

	if err := c.carRepository.DeleteCar(ctx, carID, userID); err != nil {
		log.Err(err).Str("carID", carID.String()).Msg("car deletion failed")
		return fmt.Errorf("car deletion failed: %w", err)
	}

	return nil
}
