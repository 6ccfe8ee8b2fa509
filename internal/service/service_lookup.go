package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/internal/store"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// lookupService manages the three vehicle reference registries. The CRUD
// paths are thin delegates over the repositories; the XLSX import paths live
// in service_import.go.
type lookupService struct {
	brandRepository        store.CarBrandRepository
	engineRepository       store.EngineVolumeRepository
	transmissionRepository store.TransmissionTypeRepository
	logger                 *logger.Logger
}

func NewLookupService(
	brandRepository store.CarBrandRepository,
	engineRepository store.EngineVolumeRepository,
	transmissionRepository store.TransmissionTypeRepository,
	logger *logger.Logger,
) LookupService {
	return &lookupService{
		brandRepository:        brandRepository,
		engineRepository:       engineRepository,
		transmissionRepository: transmissionRepository,
		logger:                 logger,
	}
}

func (l *lookupService) CreateBrand(ctx context.Context, name string) (models.CarBrand, error) {
	if name == "" {
		return models.CarBrand{}, ErrInvalidDataProvided
	}

	created, err := l.brandRepository.CreateBrand(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", name).Msg("brand creation ended with error")
		return models.CarBrand{}, fmt.Errorf("brand creation ended with error: %w", err)
	}

	return created, nil
}

func (l *lookupService) GetBrand(ctx context.Context, brandID uuid.UUID) (models.CarBrand, error) {
	brand, err := l.brandRepository.GetBrand(ctx, brandID)
	if err != nil {
		return models.CarBrand{}, fmt.Errorf("brand lookup failed: %w", err)
	}

	return brand, nil
}

func (l *lookupService) GetAllBrands(ctx context.Context) ([]models.CarBrand, error) {
	brands, err := l.brandRepository.GetAllBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("brand listing failed: %w", err)
	}

	return brands, nil
}

func (l *lookupService) UpdateBrand(ctx context.Context, brandID uuid.UUID, name string) (models.CarBrand, error) {
	if name == "" {
		return models.CarBrand{}, ErrInvalidDataProvided
	}

	updated, err := l.brandRepository.UpdateBrand(ctx, brandID, name)
	if err != nil {
		return models.CarBrand{}, fmt.Errorf("brand update failed: %w", err)
	}

	return updated, nil
}

func (l *lookupService) DeleteBrand(ctx context.Context, brandID uuid.UUID) error {
	if err := l.brandRepository.DeleteBrand(ctx, brandID); err != nil {
		return fmt.Errorf("brand deletion failed: %w", err)
	}

	return nil
}

func (l *lookupService) CreateEngineVolume(ctx context.Context, name float64) (models.EngineVolume, error) {
	if name <= 0 {
		return models.EngineVolume{}, ErrInvalidDataProvided
	}

	created, err := l.engineRepository.CreateEngineVolume(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Float64("name", name).Msg("engine volume creation ended with error")
		return models.EngineVolume{}, fmt.Errorf("engine volume creation ended with error: %w", err)
	}

	return created, nil
}

func (l *lookupService) GetEngineVolume(ctx context.Context, volumeID uuid.UUID) (models.EngineVolume, error) {
	volume, err := l.engineRepository.GetEngineVolume(ctx, volumeID)
	if err != nil {
		return models.EngineVolume{}, fmt.Errorf("engine volume lookup failed: %w", err)
	}

	return volume, nil
}

func (l *lookupService) GetAllEngineVolumes(ctx context.Context) ([]models.EngineVolume, error) {
	volumes, err := l.engineRepository.GetAllEngineVolumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("engine volume listing failed: %w", err)
	}

	return volumes, nil
}

func (l *lookupService) UpdateEngineVolume(ctx context.Context, volumeID uuid.UUID, name float64) (models.EngineVolume, error) {
	if name <= 0 {
		return models.EngineVolume{}, ErrInvalidDataProvided
	}

	updated, err := l.engineRepository.UpdateEngineVolume(ctx, volumeID, name)
	if err != nil {
		return models.EngineVolume{}, fmt.Errorf("engine volume update failed: %w", err)
	}

	return updated, nil
}

func (l *lookupService) DeleteEngineVolume(ctx context.Context, volumeID uuid.UUID) error {
	if err := l.engineRepository.DeleteEngineVolume(ctx, volumeID); err != nil {
		return fmt.Errorf("engine volume deletion failed: %w", err)
	}

	return nil
}

func (l *lookupService) CreateTransmissionType(ctx context.Context, name string) (models.TransmissionType, error) {
	if name == "" {
		return models.TransmissionType{}, ErrInvalidDataProvided
	}

	created, err := l.transmissionRepository.CreateTransmissionType(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("name", name).Msg("transmission type creation ended with error")
		return models.TransmissionType{}, fmt.Errorf("transmission type creation ended with error: %w", err)
	}

	return created, nil
}

func (l *lookupService) GetTransmissionType(ctx context.Context, typeID uuid.UUID) (models.TransmissionType, error) {
	transmissionType, err := l.transmissionRepository.GetTransmissionType(ctx, typeID)
	if err != nil {
		return models.TransmissionType{}, fmt.Errorf("transmission type lookup failed: %w", err)
	}

	return transmissionType, nil
}

func (l *lookupService) GetAllTransmissionTypes(ctx context.Context) ([]models.TransmissionType, error) {
	types, err := l.transmissionRepository.GetAllTransmissionTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("transmission type listing failed: %w", err)
	}

	return types, nil
}

func (l *lookupService) UpdateTransmissionType(ctx context.Context, typeID uuid.UUID, name string) (models.TransmissionType, error) {
	if name == "" {
		return models.TransmissionType{}, ErrInvalidDataProvided
	}

	updated, err := l.transmissionRepository.UpdateTransmissionType(ctx, typeID, name)
	if err != nil {
		return models.TransmissionType{}, fmt.Errorf("transmission type update failed: %w", err)
	}

	return updated, nil
}

func (l *lookupService) DeleteTransmissionType(ctx context.Context, typeID uuid.UUID) error {
	if err := l.transmissionRepository.DeleteTransmissionType(ctx, typeID); err != nil {
		return fmt.Errorf("transmission type deletion failed: %w", err)
	}

	return nil
}
