// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tecnoscan

package http

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/tecnoscan/tecnoscan-api/internal/config"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/service"
	"github.com/tecnoscan/tecnoscan-api/internal/utils"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given service set and no-op
// dependencies. Tests that need the payment client or database wire those
// separately.
func newTestHandler(t *testing.T, services *service.Services) *Handler {
	t.Helper()
	return NewHandler(services, nil, nil, config.StructuredConfig{}, logger.Nop())
}

// authorised returns the request with the given user ID injected the way the
// auth middleware would inject it.
func authorised(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), utils.UserIDCtxKey, userID))
}

// withURLParam returns the request with a chi route parameter attached, as if
// the router had matched it.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// ─────────────────────────────────────────────
// Mock service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerUserFn func(ctx context.Context, registration models.Registration) (models.User, error)
	loginFn        func(ctx context.Context, credentials models.Credentials) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, registration models.Registration) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, registration)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, credentials)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed.jwt.token"}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{}, nil
}

// ─────────────────────────────────────────────
// Mock service.UserService
// ─────────────────────────────────────────────

type mockUserService struct {
	getProfileFn    func(ctx context.Context, userID uuid.UUID) (models.User, error)
	updateProfileFn func(ctx context.Context, userID uuid.UUID, patch models.UserUpdate) (models.User, error)
	deleteProfileFn func(ctx context.Context, userID uuid.UUID) error
}

func (m *mockUserService) GetProfile(ctx context.Context, userID uuid.UUID) (models.User, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, userID)
	}
	return models.User{}, nil
}

func (m *mockUserService) UpdateProfile(ctx context.Context, userID uuid.UUID, patch models.UserUpdate) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, patch)
	}
	return models.User{}, nil
}

func (m *mockUserService) DeleteProfile(ctx context.Context, userID uuid.UUID) error {
	if m.deleteProfileFn != nil {
		return m.deleteProfileFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock service.CarService
// ─────────────────────────────────────────────

type mockCarService struct {
	createCarFn   func(ctx context.Context, car models.Car) (models.Car, error)
	getCarFn      func(ctx context.Context, userID, carID uuid.UUID) (models.Car, error)
	getUserCarsFn func(ctx context.Context, userID uuid.UUID) ([]models.Car, error)
	updateCarFn   func(ctx context.Context, userID, carID uuid.UUID, patch models.CarUpdate) (models.Car, error)
	deleteCarFn   func(ctx context.Context, userID, carID uuid.UUID) error
}

func (m *mockCarService) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	if m.createCarFn != nil {
		return m.createCarFn(ctx, car)
	}
	return car, nil
}

func (m *mockCarService) GetCar(ctx context.Context, userID uuid.UUID, carID uuid.UUID) (models.Car, error) {
	if m.getCarFn != nil {
		return m.getCarFn(ctx, userID, carID)
	}
	return models.Car{}, nil
}

func (m *mockCarService) GetUserCars(ctx context.Context, userID uuid.UUID) ([]models.Car, error) {
	if m.getUserCarsFn != nil {
		return m.getUserCarsFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockCarService) UpdateCar(ctx context.Context, userID uuid.UUID, carID uuid.UUID, patch models.CarUpdate) (models.Car, error) {
	if m.updateCarFn != nil {
		return m.updateCarFn(ctx, userID, carID, patch)
	}
	return models.Car{}, nil
}

func (m *mockCarService) DeleteCar(ctx context.Context, userID uuid.UUID, carID uuid.UUID) error {
	if m.deleteCarFn != nil {
		return m.deleteCarFn(ctx, userID, carID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock service.ApplicationService
// ─────────────────────────────────────────────

type mockApplicationService struct {
	createFn  func(ctx context.Context, application models.Application) (models.Application, error)
	getFn     func(ctx context.Context, userID, applicationID uuid.UUID) (models.ApplicationDetails, error)
	getUserFn func(ctx context.Context, userID uuid.UUID) ([]models.ApplicationDetails, error)
	getAllFn  func(ctx context.Context) ([]models.ApplicationDetails, error)
	updateFn  func(ctx context.Context, userID, applicationID uuid.UUID, patch models.ApplicationUpdate) (models.Application, error)
	deleteFn  func(ctx context.Context, userID, applicationID uuid.UUID) error
}

func (m *mockApplicationService) CreateApplication(ctx context.Context, application models.Application) (models.Application, error) {
	if m.createFn != nil {
		return m.createFn(ctx, application)
	}
	return application, nil
}

func (m *mockApplicationService) GetApplication(ctx context.Context, userID uuid.UUID, applicationID uuid.UUID) (models.ApplicationDetails, error) {
	if m.getFn != nil {
		return m.getFn(ctx, userID, applicationID)
	}
	return models.ApplicationDetails{}, nil
}

func (m *mockApplicationService) GetUserApplications(ctx context.Context, userID uuid.UUID) ([]models.ApplicationDetails, error) {
	if m.getUserFn != nil {
		return m.getUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockApplicationService) GetAllApplications(ctx context.Context) ([]models.ApplicationDetails, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockApplicationService) UpdateApplication(ctx context.Context, userID uuid.UUID, applicationID uuid.UUID, patch models.ApplicationUpdate) (models.Application, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, applicationID, patch)
	}
	return models.Application{}, nil
}

func (m *mockApplicationService) DeleteApplication(ctx context.Context, userID uuid.UUID, applicationID uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID, applicationID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock service.LookupService
// ─────────────────────────────────────────────

type mockLookupService struct {
	createBrandFn  func(ctx context.Context, name string) (models.CarBrand, error)
	getBrandFn     func(ctx context.Context, brandID uuid.UUID) (models.CarBrand, error)
	getAllBrandsFn func(ctx context.Context) ([]models.CarBrand, error)
	updateBrandFn  func(ctx context.Context, brandID uuid.UUID, name string) (models.CarBrand, error)
	deleteBrandFn  func(ctx context.Context, brandID uuid.UUID) error
	importBrandsFn func(ctx context.Context, file io.Reader) (models.ImportReport, error)

	createEngineVolumeFn  func(ctx context.Context, name float64) (models.EngineVolume, error)
	getEngineVolumeFn     func(ctx context.Context, volumeID uuid.UUID) (models.EngineVolume, error)
	getAllEngineVolumesFn func(ctx context.Context) ([]models.EngineVolume, error)
	updateEngineVolumeFn  func(ctx context.Context, volumeID uuid.UUID, name float64) (models.EngineVolume, error)
	deleteEngineVolumeFn  func(ctx context.Context, volumeID uuid.UUID) error
	importEngineVolumesFn func(ctx context.Context, file io.Reader) (models.ImportReport, error)

	createTransmissionTypeFn  func(ctx context.Context, name string) (models.TransmissionType, error)
	getTransmissionTypeFn     func(ctx context.Context, typeID uuid.UUID) (models.TransmissionType, error)
	getAllTransmissionTypesFn func(ctx context.Context) ([]models.TransmissionType, error)
	updateTransmissionTypeFn  func(ctx context.Context, typeID uuid.UUID, name string) (models.TransmissionType, error)
	deleteTransmissionTypeFn  func(ctx context.Context, typeID uuid.UUID) error
	importTransmissionTypesFn func(ctx context.Context, file io.Reader) (models.ImportReport, error)
}

func (m *mockLookupService) CreateBrand(ctx context.Context, name string) (models.CarBrand, error) {
	if m.createBrandFn != nil {
		return m.createBrandFn(ctx, name)
	}
	return models.CarBrand{Name: name}, nil
}

func (m *mockLookupService) GetBrand(ctx context.Context, brandID uuid.UUID) (models.CarBrand, error) {
	if m.getBrandFn != nil {
		return m.getBrandFn(ctx, brandID)
	}
	return models.CarBrand{}, nil
}

func (m *mockLookupService) GetAllBrands(ctx context.Context) ([]models.CarBrand, error) {
	if m.getAllBrandsFn != nil {
		return m.getAllBrandsFn(ctx)
	}
	return nil, nil
}

func (m *mockLookupService) UpdateBrand(ctx context.Context, brandID uuid.UUID, name string) (models.CarBrand, error) {
	if m.updateBrandFn != nil {
		return m.updateBrandFn(ctx, brandID, name)
	}
	return models.CarBrand{}, nil
}

func (m *mockLookupService) DeleteBrand(ctx context.Context, brandID uuid.UUID) error {
	if m.deleteBrandFn != nil {
		return m.deleteBrandFn(ctx, brandID)
	}
	return nil
}

func (m *mockLookupService) ImportBrands(ctx context.Context, file io.Reader) (models.ImportReport, error) {
	if m.importBrandsFn != nil {
		return m.importBrandsFn(ctx, file)
	}
	return models.ImportReport{}, nil
}

func (m *mockLookupService) CreateEngineVolume(ctx context.Context, name float64) (models.EngineVolume, error) {
	if m.createEngineVolumeFn != nil {
		return m.createEngineVolumeFn(ctx, name)
	}
	return models.EngineVolume{Name: name}, nil
}

func (m *mockLookupService) GetEngineVolume(ctx context.Context, volumeID uuid.UUID) (models.EngineVolume, error) {
	if m.getEngineVolumeFn != nil {
		return m.getEngineVolumeFn(ctx, volumeID)
	}
	return models.EngineVolume{}, nil
}

func (m *mockLookupService) GetAllEngineVolumes(ctx context.Context) ([]models.EngineVolume, error) {
	if m.getAllEngineVolumesFn != nil {
		return m.getAllEngineVolumesFn(ctx)
	}
	return nil, nil
}

func (m *mockLookupService) UpdateEngineVolume(ctx context.Context, volumeID uuid.UUID, name float64) (models.EngineVolume, error) {
	if m.updateEngineVolumeFn != nil {
		return m.updateEngineVolumeFn(ctx, volumeID, name)
	}
	return models.EngineVolume{}, nil
}

func (m *mockLookupService) DeleteEngineVolume(ctx context.Context, volumeID uuid.UUID) error {
	if m.deleteEngineVolumeFn != nil {
		return m.deleteEngineVolumeFn(ctx, volumeID)
	}
	return nil
}

func (m *mockLookupService) ImportEngineVolumes(ctx context.Context, file io.Reader) (models.ImportReport, error) {
	if m.importEngineVolumesFn != nil {
		return m.importEngineVolumesFn(ctx, file)
	}
	return models.ImportReport{}, nil
}

func (m *mockLookupService) CreateTransmissionType(ctx context.Context, name string) (models.TransmissionType, error) {
	if m.createTransmissionTypeFn != nil {
		return m.createTransmissionTypeFn(ctx, name)
	}
	return models.TransmissionType{Name: name}, nil
}

func (m *mockLookupService) GetTransmissionType(ctx context.Context, typeID uuid.UUID) (models.TransmissionType, error) {
	if m.getTransmissionTypeFn != nil {
		return m.getTransmissionTypeFn(ctx, typeID)
	}
	return models.TransmissionType{}, nil
}

func (m *mockLookupService) GetAllTransmissionTypes(ctx context.Context) ([]models.TransmissionType, error) {
	if m.getAllTransmissionTypesFn != nil {
		return m.getAllTransmissionTypesFn(ctx)
	}
	return nil, nil
}

func (m *mockLookupService) UpdateTransmissionType(ctx context.Context, typeID uuid.UUID, name string) (models.TransmissionType, error) {
	if m.updateTransmissionTypeFn != nil {
		return m.updateTransmissionTypeFn(ctx, typeID, name)
	}
	return models.TransmissionType{}, nil
}

func (m *mockLookupService) DeleteTransmissionType(ctx context.Context, typeID uuid.UUID) error {
	if m.deleteTransmissionTypeFn != nil {
		return m.deleteTransmissionTypeFn(ctx, typeID)
	}
	return nil
}

func (m *mockLookupService) ImportTransmissionTypes(ctx context.Context, file io.Reader) (models.ImportReport, error) {
	if m.importTransmissionTypesFn != nil {
		return m.importTransmissionTypesFn(ctx, file)
	}
	return models.ImportReport{}, nil
}
