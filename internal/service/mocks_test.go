package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn             func(ctx context.Context, user models.User) (models.User, error)
	findByLoginFn        func(ctx context.Context, login string) (models.User, error)
	findByLoginOrEmailFn func(ctx context.Context, login, email string) (models.User, error)
	getFn                func(ctx context.Context, userID uuid.UUID) (models.User, error)
	updateFn             func(ctx context.Context, userID uuid.UUID, patch models.UserUpdate) (models.User, error)
	deleteFn             func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	if m.findByLoginFn != nil {
		return m.findByLoginFn(ctx, login)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) FindUserByLoginOrEmail(ctx context.Context, login, email string) (models.User, error) {
	if m.findByLoginOrEmailFn != nil {
		return m.findByLoginOrEmailFn(ctx, login, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) GetUser(ctx context.Context, userID uuid.UUID) (models.User, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, userID uuid.UUID, patch models.UserUpdate) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, patch)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.CarRepository
// ─────────────────────────────────────────────

type mockCarRepository struct {
	createFn      func(ctx context.Context, car models.Car) (models.Car, error)
	getFn         func(ctx context.Context, carID uuid.UUID) (models.Car, error)
	getUserCarsFn func(ctx context.Context, userID uuid.UUID) ([]models.Car, error)
	updateFn      func(ctx context.Context, carID, userID uuid.UUID, patch models.CarUpdate) (models.Car, error)
	deleteFn      func(ctx context.Context, carID, userID uuid.UUID) error
}

func (m *mockCarRepository) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	if m.createFn != nil {
		return m.createFn(ctx, car)
	}
	return car, nil
}

func (m *mockCarRepository) GetCar(ctx context.Context, carID uuid.UUID) (models.Car, error) {
	if m.getFn != nil {
		return m.getFn(ctx, carID)
	}
	return models.Car{}, nil
}

func (m *mockCarRepository) GetUserCars(ctx context.Context, userID uuid.UUID) ([]models.Car, error) {
	if m.getUserCarsFn != nil {
		return m.getUserCarsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockCarRepository) UpdateCar(ctx context.Context, carID, userID uuid.UUID, patch models.CarUpdate) (models.Car, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, carID, userID, patch)
	}
	return models.Car{}, nil
}

func (m *mockCarRepository) DeleteCar(ctx context.Context, carID, userID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, carID, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ApplicationRepository
// ─────────────────────────────────────────────

type mockApplicationRepository struct {
	createFn     func(ctx context.Context, application models.Application) (models.Application, error)
	getFn        func(ctx context.Context, appID uuid.UUID) (models.Application, error)
	getDetailsFn func(ctx context.Context, appID uuid.UUID) (models.ApplicationDetails, error)
	getUserFn    func(ctx context.Context, userID uuid.UUID) ([]models.ApplicationDetails, error)
	getAllFn     func(ctx context.Context) ([]models.ApplicationDetails, error)
	updateFn     func(ctx context.Context, appID uuid.UUID, patch models.ApplicationUpdate) (models.Application, error)
	deleteFn     func(ctx context.Context, appID uuid.UUID) error
}

func (m *mockApplicationRepository) CreateApplication(ctx context.Context, application models.Application) (models.Application, error) {
	if m.createFn != nil {
		return m.createFn(ctx, application)
	}
	return application, nil
}

func (m *mockApplicationRepository) GetApplication(ctx context.Context, appID uuid.UUID) (models.Application, error) {
	if m.getFn != nil {
		return m.getFn(ctx, appID)
	}
	return models.Application{}, nil
}

func (m *mockApplicationRepository) GetApplicationDetails(ctx context.Context, appID uuid.UUID) (models.ApplicationDetails, error) {
	if m.getDetailsFn != nil {
		return m.getDetailsFn(ctx, appID)
	}
	return models.ApplicationDetails{}, nil
}

func (m *mockApplicationRepository) GetUserApplications(ctx context.Context, userID uuid.UUID) ([]models.ApplicationDetails, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockApplicationRepository) GetAllApplications(ctx context.Context) ([]models.ApplicationDetails, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockApplicationRepository) UpdateApplication(ctx context.Context, appID uuid.UUID, patch models.ApplicationUpdate) (models.Application, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, appID, patch)
	}
	return models.Application{}, nil
}

func (m *mockApplicationRepository) DeleteApplication(ctx context.Context, appID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, appID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mocks: lookup repositories
// ─────────────────────────────────────────────

type mockCarBrandRepository struct {
	createFn func(ctx context.Context, name string) (models.CarBrand, error)
	getFn    func(ctx context.Context, brandID uuid.UUID) (models.CarBrand, error)
	getAllFn func(ctx context.Context) ([]models.CarBrand, error)
	updateFn func(ctx context.Context, brandID uuid.UUID, name string) (models.CarBrand, error)
	deleteFn func(ctx context.Context, brandID uuid.UUID) error
}

func (m *mockCarBrandRepository) CreateBrand(ctx context.Context, name string) (models.CarBrand, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name)
	}
	return models.CarBrand{ID: uuid.New(), Name: name}, nil
}

func (m *mockCarBrandRepository) GetBrand(ctx context.Context, brandID uuid.UUID) (models.CarBrand, error) {
	if m.getFn != nil {
		return m.getFn(ctx, brandID)
	}
	return models.CarBrand{}, nil
}

func (m *mockCarBrandRepository) GetAllBrands(ctx context.Context) ([]models.CarBrand, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockCarBrandRepository) UpdateBrand(ctx context.Context, brandID uuid.UUID, name string) (models.CarBrand, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, brandID, name)
	}
	return models.CarBrand{}, nil
}

func (m *mockCarBrandRepository) DeleteBrand(ctx context.Context, brandID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, brandID)
	}
	return nil
}

type mockEngineVolumeRepository struct {
	createFn func(ctx context.Context, name float64) (models.EngineVolume, error)
	getFn    func(ctx context.Context, volumeID uuid.UUID) (models.EngineVolume, error)
	getAllFn func(ctx context.Context) ([]models.EngineVolume, error)
	updateFn func(ctx context.Context, volumeID uuid.UUID, name float64) (models.EngineVolume, error)
	deleteFn func(ctx context.Context, volumeID uuid.UUID) error
}

func (m *mockEngineVolumeRepository) CreateEngineVolume(ctx context.Context, name float64) (models.EngineVolume, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name)
	}
	return models.EngineVolume{ID: uuid.New(), Name: name}, nil
}

func (m *mockEngineVolumeRepository) GetEngineVolume(ctx context.Context, volumeID uuid.UUID) (models.EngineVolume, error) {
	if m.getFn != nil {
		return m.getFn(ctx, volumeID)
	}
	return models.EngineVolume{}, nil
}

func (m *mockEngineVolumeRepository) GetAllEngineVolumes(ctx context.Context) ([]models.EngineVolume, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockEngineVolumeRepository) UpdateEngineVolume(ctx context.Context, volumeID uuid.UUID, name float64) (models.EngineVolume, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, volumeID, name)
	}
	return models.EngineVolume{}, nil
}

func (m *mockEngineVolumeRepository) DeleteEngineVolume(ctx context.Context, volumeID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, volumeID)
	}
	return nil
}

type mockTransmissionTypeRepository struct {
	createFn     func(ctx context.Context, name string) (models.TransmissionType, error)
	getFn        func(ctx context.Context, typeID uuid.UUID) (models.TransmissionType, error)
	getAllFn     func(ctx context.Context) ([]models.TransmissionType, error)
	updateFn     func(ctx context.Context, typeID uuid.UUID, name string) (models.TransmissionType, error)
	deleteFn     func(ctx context.Context, typeID uuid.UUID) error
	findByNameFn func(ctx context.Context, name string) (models.TransmissionType, error)
}

func (m *mockTransmissionTypeRepository) CreateTransmissionType(ctx context.Context, name string) (models.TransmissionType, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name)
	}
	return models.TransmissionType{ID: uuid.New(), Name: name}, nil
}

func (m *mockTransmissionTypeRepository) GetTransmissionType(ctx context.Context, typeID uuid.UUID) (models.TransmissionType, error) {
	if m.getFn != nil {
		return m.getFn(ctx, typeID)
	}
	return models.TransmissionType{}, nil
}

func (m *mockTransmissionTypeRepository) GetAllTransmissionTypes(ctx context.Context) ([]models.TransmissionType, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockTransmissionTypeRepository) UpdateTransmissionType(ctx context.Context, typeID uuid.UUID, name string) (models.TransmissionType, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, typeID, name)
	}
	return models.TransmissionType{}, nil
}

func (m *mockTransmissionTypeRepository) DeleteTransmissionType(ctx context.Context, typeID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, typeID)
	}
	return nil
}

func (m *mockTransmissionTypeRepository) FindByName(ctx context.Context, name string) (models.TransmissionType, error) {
	if m.findByNameFn != nil {
		return m.findByNameFn(ctx, name)
	}
	return models.TransmissionType{}, nil
}
