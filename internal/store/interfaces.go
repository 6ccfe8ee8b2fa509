package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// UserRepository is the data-access layer for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns the row with its
	// server-assigned ID.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the user whose login matches, or
	// [ErrNoUserWasFound].
	FindUserByLogin(ctx context.Context, login string) (models.User, error)

	// FindUserByLoginOrEmail returns the first user whose login or email
	// matches, or [ErrNoUserWasFound]. Used for registration duplicate
	// checks: login uniqueness is enforced here, not at the schema level.
	FindUserByLoginOrEmail(ctx context.Context, login, email string) (models.User, error)

	// GetUser returns the user with the given ID, or [ErrNoUserWasFound].
	GetUser(ctx context.Context, userID uuid.UUID) (models.User, error)

	// UpdateUser applies the non-nil fields of patch and returns the
	// resulting row, or [ErrNoUserWasFound].
	UpdateUser(ctx context.Context, userID uuid.UUID, patch models.UserUpdate) (models.User, error)

	// DeleteUser removes the user; cars and applications cascade at the
	// schema level. Returns [ErrNoUserWasFound] for a missing row.
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}

// CarRepository is the data-access layer for per-user vehicles. Update and
// Delete are scoped by owner: rows of other users behave as missing.
type CarRepository interface {
	CreateCar(ctx context.Context, car models.Car) (models.Car, error)
	GetCar(ctx context.Context, carID uuid.UUID) (models.Car, error)
	GetUserCars(ctx context.Context, userID uuid.UUID) ([]models.Car, error)
	UpdateCar(ctx context.Context, carID, userID uuid.UUID, patch models.CarUpdate) (models.Car, error)
	DeleteCar(ctx context.Context, carID, userID uuid.UUID) error
}

// ApplicationRepository is the data-access layer for service requests.
// Read operations return the [models.ApplicationDetails] projection that
// joins the car, brand, and transmission rows in a single query.
type ApplicationRepository interface {
	CreateApplication(ctx context.Context, application models.Application) (models.Application, error)
	GetApplication(ctx context.Context, appID uuid.UUID) (models.Application, error)
	GetApplicationDetails(ctx context.Context, appID uuid.UUID) (models.ApplicationDetails, error)
	GetUserApplications(ctx context.Context, userID uuid.UUID) ([]models.ApplicationDetails, error)
	GetAllApplications(ctx context.Context) ([]models.ApplicationDetails, error)
	UpdateApplication(ctx context.Context, appID uuid.UUID, patch models.ApplicationUpdate) (models.Application, error)
	DeleteApplication(ctx context.Context, appID uuid.UUID) error
}

// CarBrandRepository is the data-access layer for the car-brand lookup
// registry. CreateBrand surfaces [ErrNameAlreadyExists] on duplicates so the
// bulk-import path can tally them.
type CarBrandRepository interface {
	CreateBrand(ctx context.Context, name string) (models.CarBrand, error)
	GetBrand(ctx context.Context, brandID uuid.UUID) (models.CarBrand, error)
	GetAllBrands(ctx context.Context) ([]models.CarBrand, error)
	UpdateBrand(ctx context.Context, brandID uuid.UUID, name string) (models.CarBrand, error)
	DeleteBrand(ctx context.Context, brandID uuid.UUID) error
}

// EngineVolumeRepository is the data-access layer for the engine-volume
// lookup registry.
type EngineVolumeRepository interface {
	CreateEngineVolume(ctx context.Context, name float64) (models.EngineVolume, error)
	GetEngineVolume(ctx context.Context, volumeID uuid.UUID) (models.EngineVolume, error)
	GetAllEngineVolumes(ctx context.Context) ([]models.EngineVolume, error)
	UpdateEngineVolume(ctx context.Context, volumeID uuid.UUID, name float64) (models.EngineVolume, error)
	DeleteEngineVolume(ctx context.Context, volumeID uuid.UUID) error
}

// TransmissionTypeRepository is the data-access layer for the transmission
// lookup registry. The table has no unique constraint on name, so the import
// path deduplicates via FindByName.
type TransmissionTypeRepository interface {
	CreateTransmissionType(ctx context.Context, name string) (models.TransmissionType, error)
	GetTransmissionType(ctx context.Context, typeID uuid.UUID) (models.TransmissionType, error)
	GetAllTransmissionTypes(ctx context.Context) ([]models.TransmissionType, error)
	UpdateTransmissionType(ctx context.Context, typeID uuid.UUID, name string) (models.TransmissionType, error)
	DeleteTransmissionType(ctx context.Context, typeID uuid.UUID) error
	FindByName(ctx context.Context, name string) (models.TransmissionType, error)
}
