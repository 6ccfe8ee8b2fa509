// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tecnoscan

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// applicationService manages service requests. An application references one
// of the caller's cars, so every write verifies that the car belongs to the
// caller before touching the row.
type applicationService struct {
	applicationRepository store.ApplicationRepository
	carRepository         store.CarRepository
	logger                *logger.Logger
}

func NewApplicationService(applicationRepository store.ApplicationRepository, carRepository store.CarRepository, logger *logger.Logger) ApplicationService {
	return &applicationService{
		applicationRepository: applicationRepository,
		carRepository:         carRepository,
		logger:                logger,
	}
}

// CreateApplication persists a new service request.
//
// The referenced car must exist and belong to application.UserID; a car owned
// by someone else returns ErrForbidden.
func (a *applicationService) CreateApplication(ctx context.Context, application models.Application) (models.Application, error) {
	log := logger.FromContext(ctx)

	if application.UserID == uuid.Nil || application.CarID == uuid.Nil || application.Problem == "" {
		log.Error().Str("carID", application.CarID.String()).Msg("invalid application data provided")
		return models.Application{}, ErrInvalidDataProvided
	}

	if err := a.checkCarOwnership(ctx, application.UserID, application.CarID); err != nil {
		return models.Application{}, err
	}

	created, err := a.applicationRepository.CreateApplication(ctx, application)
	if err != nil {
		log.Err(err).Str("carID", application.CarID.String()).Msg("application creation ended with error")
		return models.Application{}, fmt.Errorf("application creation ended with error: %w", err)
	}

	return created, nil
}

// GetApplication returns the detailed projection of one service request,
// with the referenced car and its lookup names resolved. Applications of
// other users come back as ErrForbidden.
func (a *applicationService) GetApplication(ctx context.Context, userID uuid.UUID, applicationID uuid.UUID) (models.ApplicationDetails, error) {
	log := logger.FromContext(ctx)

	details, err := a.applicationRepository.GetApplicationDetails(ctx, applicationID)
	if err != nil {
		log.Err(err).Str("applicationID", applicationID.String()).Msg("application lookup failed")
		return models.ApplicationDetails{}, fmt.Errorf("application lookup failed: %w", err)
	}

	if details.UserID != userID {
		log.Error().
			Str("applicationID", applicationID.String()).
			Str("userID", userID.String()).
			Msg("application belongs to another user")
		return models.ApplicationDetails{}, ErrForbidden
	}

	return details, nil
}

func (a *applicationService) GetUserApplications(ctx context.Context, userID uuid.UUID) ([]models.ApplicationDetails, error) {
	log := logger.FromContext(ctx)

	applications, err := a.applicationRepository.GetUserApplications(ctx, userID)
	if err != nil {
		log.Err(err).Str("userID", userID.String()).Msg("application listing failed")
		return nil, fmt.Errorf("application listing failed: %w", err)
	}

	return applications, nil
}

// GetAllApplications returns every service request on the platform.
// Serves the operator dashboard, so it is not scoped by user.
func (a *applicationService) GetAllApplications(ctx context.Context) ([]models.ApplicationDetails, error) {
	log := logger.FromContext(ctx)

	applications, err := a.applicationRepository.GetAllApplications(ctx)
	if err != nil {
		log.Err(err).Msg("full application listing failed")
		return nil, fmt.Errorf("full application listing failed: %w", err)
	}

	return applications, nil
}

// UpdateApplication applies the non-nil fields of patch. When the patch moves
// the application to a different car, the new car must also belong to the
// caller.
func (a *applicationService) UpdateApplication(ctx context.Context, userID uuid.UUID, applicationID uuid.UUID, patch models.ApplicationUpdate) (models.Application, error) {
	log := logger.FromContext(ctx)

	current, err := a.applicationRepository.GetApplication(ctx, applicationID)
	if err != nil {
		log.Err(err).Str("applicationID", applicationID.String()).Msg("application lookup failed")
		return models.Application{}, fmt.Errorf("application lookup failed: %w", err)
	}
	if current.UserID != userID {
		return models.Application{}, ErrForbidden
	}

	if patch.CarID != nil {
		if err := a.checkCarOwnership(ctx, userID, *patch.CarID); err != nil {
			return models.Application{}, err
		}
	}

	updated, err := a.applicationRepository.UpdateApplication(ctx, applicationID, patch)
	if err != nil {
		log.Err(err).Str("applicationID", applicationID.String()).Msg("application update failed")
		return models.Application{}, fmt.Errorf("application update failed: %w", err)
	}

	return updated, nil
}

func (a *applicationService) DeleteApplication(ctx context.Context, userID uuid.UUID, applicationID uuid.UUID) error {
	log := logger.FromContext(ctx)

	current, err := a.applicationRepository.GetApplication(ctx, applicationID)
	if err != nil {
		log.Err(err).Str("applicationID", applicationID.String()).Msg("application lookup failed")
		return fmt.Errorf("application lookup failed: %w", err)
	}
	if current.UserID != userID {
		return ErrForbidden
	}

	if err := a.applicationRepository.DeleteApplication(ctx, applicationID); err != nil {
		log.Err(err).Str("applicationID", applicationID.String()).Msg("application deletion failed")
		return fmt.Errorf("application deletion failed: %w", err)
	}

	return nil
}

func (a *applicationService) checkCarOwnership(ctx context.Context, userID, carID uuid.UUID) error {
	log := logger.FromContext(ctx)

	car, err := a.carRepository.GetCar(ctx, carID)
	if err != nil {
		log.Err(err).Str("carID", carID.String()).Msg("referenced car lookup failed")
		return fmt.Errorf("referenced car lookup failed: %w", err)
	}
	if car.UserID != userID {
		log.Error().
			Str("carID", carID.String()).
			Str("userID", userID.String()).
			Msg("referenced car belongs to another user")
		return ErrForbidden
	}

	return nil
}
