// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tecnoscan

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
	"github.com/tecnoscan/tecnoscan-api/models"
)

func newTestApplicationService(appRepo *mockApplicationRepository, carRepo *mockCarRepository) ApplicationService {
	return NewApplicationService(appRepo, carRepo, logger.Nop())
}

// ─────────────────────────────────────────────
// CreateApplication
// ─────────────────────────────────────────────

func TestCreateApplication_InvalidData(t *testing.T) {
	svc := newTestApplicationService(&mockApplicationRepository{}, &mockCarRepository{})

	for _, application := range []models.Application{
		{CarID: uuid.New(), Problem: "стук в подвеске"},
		{UserID: uuid.New(), Problem: "стук в подвеске"},
		{UserID: uuid.New(), CarID: uuid.New()},
	} {
		_, err := svc.CreateApplication(context.Background(), application)
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	}
}

func TestCreateApplication_ForeignCar(t *testing.T) {
	carOwner := uuid.New()
	carRepo := &mockCarRepository{
		getFn: func(ctx context.Context, carID uuid.UUID) (models.Car, error) {
			return models.Car{ID: carID, UserID: carOwner}, nil
		},
	}
	svc := newTestApplicationService(&mockApplicationRepository{}, carRepo)

	_, err := svc.CreateApplication(context.Background(), models.Application{
		UserID:  uuid.New(),
		CarID:   uuid.New(),
		Problem: "стук в подвеске",
	})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestCreateApplication_MissingCar(t *testing.T) {
	carRepo := &mockCarRepository{
		getFn: func(ctx context.Context, carID uuid.UUID) (models.Car, error) {
			return models.Car{}, store.ErrCarNotFound
		},
	}
	svc := newTestApplicationService(&mockApplicationRepository{}, carRepo)

	_, err := svc.CreateApplication(context.Background(), models.Application{
		UserID:  uuid.New(),
		CarID:   uuid.New(),
		Problem: "стук в подвеске",
	})
	assert.ErrorIs(t, err, store.ErrCarNotFound)
}

func TestCreateApplication_Success(t *testing.T) {
	userID := uuid.New()
	carID := uuid.New()
	appID := uuid.New()

	carRepo := &mockCarRepository{
		getFn: func(ctx context.Context, cID uuid.UUID) (models.Car, error) {
			return models.Car{ID: cID, UserID: userID}, nil
		},
	}
	appRepo := &mockApplicationRepository{
		createFn: func(ctx context.Context, application models.Application) (models.Application, error) {
			application.ID = appID
			return application, nil
		},
	}
	svc := newTestApplicationService(appRepo, carRepo)

	created, err := svc.CreateApplication(context.Background(), models.Application{
		UserID:  userID,
		CarID:   carID,
		Problem: "не заводится в мороз",
	})
	require.NoError(t, err)
	assert.Equal(t, appID, created.ID)
}

// ─────────────────────────────────────────────
// GetApplication / listings
// ─────────────────────────────────────────────

func TestGetApplication_ForeignApplication(t *testing.T) {
	owner := uuid.New()
	appRepo := &mockApplicationRepository{
		getDetailsFn: func(ctx context.Context, appID uuid.UUID) (models.ApplicationDetails, error) {
			return models.ApplicationDetails{UserID: owner}, nil
		},
	}
	svc := newTestApplicationService(appRepo, &mockCarRepository{})

	_, err := svc.GetApplication(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestGetApplication_Success(t *testing.T) {
	userID := uuid.New()
	appRepo := &mockApplicationRepository{
		getDetailsFn: func(ctx context.Context, appID uuid.UUID) (models.ApplicationDetails, error) {
			return models.ApplicationDetails{UserID: userID, Car: models.CarDetails{BrandName: "LADA"}}, nil
		},
	}
	svc := newTestApplicationService(appRepo, &mockCarRepository{})

	details, err := svc.GetApplication(context.Background(), userID, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, "LADA", details.Car.BrandName)
}

func TestGetAllApplications_NotScopedByUser(t *testing.T) {
	called := false
	appRepo := &mockApplicationRepository{
		getAllFn: func(ctx context.Context) ([]models.ApplicationDetails, error) {
			called = true
			return []models.ApplicationDetails{{}, {}}, nil
		},
	}
	svc := newTestApplicationService(appRepo, &mockCarRepository{})

	applications, err := svc.GetAllApplications(context.Background())
	require.NoError(t, err)
	assert.True(t, called)
	assert.Len(t, applications, 2)
}

// ─────────────────────────────────────────────
// UpdateApplication / DeleteApplication
// ─────────────────────────────────────────────

func TestUpdateApplication_ForeignApplication(t *testing.T) {
	appRepo := &mockApplicationRepository{
		getFn: func(ctx context.Context, appID uuid.UUID) (models.Application, error) {
			return models.Application{ID: appID, UserID: uuid.New()}, nil
		},
	}
	svc := newTestApplicationService(appRepo, &mockCarRepository{})

	problem := "шум при торможении"
	_, err := svc.UpdateApplication(context.Background(), uuid.New(), uuid.New(), models.ApplicationUpdate{Problem: &problem})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateApplication_MovingToForeignCar(t *testing.T) {
	userID := uuid.New()
	appRepo := &mockApplicationRepository{
		getFn: func(ctx context.Context, appID uuid.UUID) (models.Application, error) {
			return models.Application{ID: appID, UserID: userID}, nil
		},
	}
	carRepo := &mockCarRepository{
		getFn: func(ctx context.Context, carID uuid.UUID) (models.Car, error) {
			return models.Car{ID: carID, UserID: uuid.New()}, nil
		},
	}
	svc := newTestApplicationService(appRepo, carRepo)

	foreignCarID := uuid.New()
	_, err := svc.UpdateApplication(context.Background(), userID, uuid.New(), models.ApplicationUpdate{CarID: &foreignCarID})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateApplication_Success(t *testing.T) {
	userID := uuid.New()
	appID := uuid.New()

	appRepo := &mockApplicationRepository{
		getFn: func(ctx context.Context, aID uuid.UUID) (models.Application, error) {
			return models.Application{ID: aID, UserID: userID}, nil
		},
		updateFn: func(ctx context.Context, aID uuid.UUID, patch models.ApplicationUpdate) (models.Application, error) {
			return models.Application{ID: aID, UserID: userID, Problem: *patch.Problem}, nil
		},
	}
	svc := newTestApplicationService(appRepo, &mockCarRepository{})

	problem := "шум при торможении"
	updated, err := svc.UpdateApplication(context.Background(), userID, appID, models.ApplicationUpdate{Problem: &problem})
	require.NoError(t, err)
	assert.Equal(t, "шум при торможении", updated.Problem)
}

func TestDeleteApplication_ForeignApplication(t *testing.T) {
	deleted := false
	appRepo := &mockApplicationRepository{
		getFn: func(ctx context.Context, appID uuid.UUID) (models.Application, error) {
			return models.Application{ID: appID, UserID: uuid.New()}, nil
		},
		deleteFn: func(ctx context.Context, appID uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	svc := newTestApplicationService(appRepo, &mockCarRepository{})

	err := svc.DeleteApplication(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, ErrForbidden)
	assert.False(t, deleted, "delete must not reach the repository for a foreign application")
}

func TestDeleteApplication_NotFound(t *testing.T) {
	appRepo := &mockApplicationRepository{
		getFn: func(ctx context.Context, appID uuid.UUID) (models.Application, error) {
			return models.Application{}, store.ErrApplicationNotFound
		},
	}
	svc := newTestApplicationService(appRepo, &mockCarRepository{})

	err := svc.DeleteApplication(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, store.ErrApplicationNotFound)
}
