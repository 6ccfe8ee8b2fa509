package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/tecnoscan/tecnoscan-api/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, registration models.Registration) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.UserUpdate) (models.User, error)
	DeleteProfile(ctx context.Context, userID uuid.UUID) error
}

type CarService interface {
	CreateCar(ctx context.Context, car models.Car) (models.Car, error)
	GetCar(ctx context.Context, userID uuid.UUID, carID uuid.UUID) (models.Car, error)
	GetUserCars(ctx context.Context, userID uuid.UUID) ([]models.Car, error)
	UpdateCar(ctx context.Context, userID uuid.UUID, carID uuid.UUID, patch models.CarUpdate) (models.Car, error)
	DeleteCar(ctx context.Context, userID uuid.UUID, carID uuid.UUID) error
}

type ApplicationService interface {
	CreateApplication(ctx context.Context, application models.Application) (models.Application, error)
	GetApplication(ctx context.Context, userID uuid.UUID, applicationID uuid.UUID) (models.ApplicationDetails, error)
	GetUserApplications(ctx context.Context, userID uuid.UUID) ([]models.ApplicationDetails, error)
	GetAllApplications(ctx context.Context) ([]models.ApplicationDetails, error)
	UpdateApplication(ctx context.Context, userID uuid.UUID, applicationID uuid.UUID, patch models.ApplicationUpdate) (models.Application, error)
	DeleteApplication(ctx context.Context, userID uuid.UUID, applicationID uuid.UUID) error
}

// LookupService manages the three reference registries used when describing a
// vehicle: brands, engine volumes and transmission types.
type LookupService interface {
	CreateBrand(ctx context.Context, name string) (models.CarBrand, error)
	GetBrand(ctx context.Context, brandID uuid.UUID) (models.CarBrand, error)
	GetAllBrands(ctx context.Context) ([]models.CarBrand, error)
	UpdateBrand(ctx context.Context, brandID uuid.UUID, name string) (models.CarBrand, error)
	DeleteBrand(ctx context.Context, brandID uuid.UUID) error
	ImportBrands(ctx context.Context, file io.Reader) (models.ImportReport, error)

	CreateEngineVolume(ctx context.Context, name float64) (models.EngineVolume, error)
	GetEngineVolume(ctx context.Context, volumeID uuid.UUID) (models.EngineVolume, error)
	GetAllEngineVolumes(ctx context.Context) ([]models.EngineVolume, error)
	UpdateEngineVolume(ctx context.Context, volumeID uuid.UUID, name float64) (models.EngineVolume, error)
	DeleteEngineVolume(ctx context.Context, volumeID uuid.UUID) error
	ImportEngineVolumes(ctx context.Context, file io.Reader) (models.ImportReport, error)

	CreateTransmissionType(ctx context.Context, name string) (models.TransmissionType, error)
	GetTransmissionType(ctx context.Context, typeID uuid.UUID) (models.TransmissionType, error)
	GetAllTransmissionTypes(ctx context.Context) ([]models.TransmissionType, error)
	UpdateTransmissionType(ctx context.Context, typeID uuid.UUID, name string) (models.TransmissionType, error)
	DeleteTransmissionType(ctx context.Context, typeID uuid.UUID) error
	ImportTransmissionTypes(ctx context.Context, file io.Reader) (models.ImportReport, error)
}
