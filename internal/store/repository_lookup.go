package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
	"github.com/tecnoscan/tecnoscan-api/models"
)

// The three lookup repositories share the same two-column CRUD shape and
// live together in this file. Only engine_vol stores a numeric name, and
// only transmission_types lacks a unique constraint (deduplication for its
// import path goes through FindByName instead of the constraint).

type carBrandRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCarBrandRepository constructs a [CarBrandRepository] backed by the
// provided database connection and logger.
func NewCarBrandRepository(db *DB, logger *logger.Logger) CarBrandRepository {
	logger.Debug().Msg("creating car brand repository")
	return &carBrandRepository{db: db, logger: logger}
}

func (r *carBrandRepository) CreateBrand(ctx context.Context, name string) (models.CarBrand, error) {
	log := logger.FromContext(ctx)

	var created models.CarBrand
	row := r.db.QueryRowContext(ctx, createCarBrand, uuid.New(), name)
	if err := row.Scan(&created.ID, &created.Name); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.CarBrand{}, ErrNameAlreadyExists
		}
		log.Err(err).Str("func", "*carBrandRepository.CreateBrand").Msg("error saving car brand")
		return models.CarBrand{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *carBrandRepository) GetBrand(ctx context.Context, brandID uuid.UUID) (models.CarBrand, error) {
	var found models.CarBrand
	row := r.db.QueryRowContext(ctx, getCarBrand, brandID)
	if err := row.Scan(&found.ID, &found.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CarBrand{}, ErrLookupValueNotFound
		}
		return models.CarBrand{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *carBrandRepository) GetAllBrands(ctx context.Context) ([]models.CarBrand, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllCarBrands)
	if err != nil {
		log.Err(err).Str("func", "*carBrandRepository.GetAllBrands").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	brands := make([]models.CarBrand, 0, 32)
	for rows.Next() {
		var brand models.CarBrand
		if err := rows.Scan(&brand.ID, &brand.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		brands = append(brands, brand)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return brands, nil
}

func (r *carBrandRepository) UpdateBrand(ctx context.Context, brandID uuid.UUID, name string) (models.CarBrand, error) {
	var updated models.CarBrand
	row := r.db.QueryRowContext(ctx, updateCarBrand, brandID, name)
	if err := row.Scan(&updated.ID, &updated.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CarBrand{}, ErrLookupValueNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.CarBrand{}, ErrNameAlreadyExists
		}
		return models.CarBrand{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *carBrandRepository) DeleteBrand(ctx context.Context, brandID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, deleteCarBrand, brandID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrLookupValueNotFound
	}

	return nil
}

type engineVolumeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEngineVolumeRepository constructs an [EngineVolumeRepository] backed by
// the provided database connection and logger.
func NewEngineVolumeRepository(db *DB, logger *logger.Logger) EngineVolumeRepository {
	logger.Debug().Msg("creating engine volume repository")
	return &engineVolumeRepository{db: db, logger: logger}
}

func (r *engineVolumeRepository) CreateEngineVolume(ctx context.Context, name float64) (models.EngineVolume, error) {
	log := logger.FromContext(ctx)

	var created models.EngineVolume
	row := r.db.QueryRowContext(ctx, createEngineVolume, uuid.New(), name)
	if err := row.Scan(&created.ID, &created.Name); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.EngineVolume{}, ErrNameAlreadyExists
		}
		log.Err(err).Str("func", "*engineVolumeRepository.CreateEngineVolume").Msg("error saving engine volume")
		return models.EngineVolume{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *engineVolumeRepository) GetEngineVolume(ctx context.Context, volumeID uuid.UUID) (models.EngineVolume, error) {
	var found models.EngineVolume
	row := r.db.QueryRowContext(ctx, getEngineVolume, volumeID)
	if err := row.Scan(&found.ID, &found.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EngineVolume{}, ErrLookupValueNotFound
		}
		return models.EngineVolume{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *engineVolumeRepository) GetAllEngineVolumes(ctx context.Context) ([]models.EngineVolume, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllEngineVolumes)
	if err != nil {
		log.Err(err).Str("func", "*engineVolumeRepository.GetAllEngineVolumes").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	volumes := make([]models.EngineVolume, 0, 32)
	for rows.Next() {
		var volume models.EngineVolume
		if err := rows.Scan(&volume.ID, &volume.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		volumes = append(volumes, volume)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return volumes, nil
}

func (r *engineVolumeRepository) UpdateEngineVolume(ctx context.Context, volumeID uuid.UUID, name float64) (models.EngineVolume, error) {
	var updated models.EngineVolume
	row := r.db.QueryRowContext(ctx, updateEngineVolume, volumeID, name)
	if err := row.Scan(&updated.ID, &updated.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.EngineVolume{}, ErrLookupValueNotFound
		}
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.EngineVolume{}, ErrNameAlreadyExists
		}
		return models.EngineVolume{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *engineVolumeRepository) DeleteEngineVolume(ctx context.Context, volumeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, deleteEngineVolume, volumeID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrLookupValueNotFound
	}

	return nil
}

type transmissionTypeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTransmissionTypeRepository constructs a [TransmissionTypeRepository]
// backed by the provided database connection and logger.
func NewTransmissionTypeRepository(db *DB, logger *logger.Logger) TransmissionTypeRepository {
	logger.Debug().Msg("creating transmission type repository")
	return &transmissionTypeRepository{db: db, logger: logger}
}

func (r *transmissionTypeRepository) CreateTransmissionType(ctx context.Context, name string) (models.TransmissionType, error) {
	log := logger.FromContext(ctx)

	var created models.TransmissionType
	row := r.db.QueryRowContext(ctx, createTransmissionType, uuid.New(), name)
	if err := row.Scan(&created.ID, &created.Name); err != nil {
		log.Err(err).Str("func", "*transmissionTypeRepository.CreateTransmissionType").Msg("error saving transmission type")
		return models.TransmissionType{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *transmissionTypeRepository) GetTransmissionType(ctx context.Context, typeID uuid.UUID) (models.TransmissionType, error) {
	var found models.TransmissionType
	row := r.db.QueryRowContext(ctx, getTransmissionType, typeID)
	if err := row.Scan(&found.ID, &found.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TransmissionType{}, ErrLookupValueNotFound
		}
		return models.TransmissionType{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *transmissionTypeRepository) GetAllTransmissionTypes(ctx context.Context) ([]models.TransmissionType, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getAllTransmissionTypes)
	if err != nil {
		log.Err(err).Str("func", "*transmissionTypeRepository.GetAllTransmissionTypes").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	types := make([]models.TransmissionType, 0, 8)
	for rows.Next() {
		var transmissionType models.TransmissionType
		if err := rows.Scan(&transmissionType.ID, &transmissionType.Name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		types = append(types, transmissionType)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return types, nil
}

func (r *transmissionTypeRepository) UpdateTransmissionType(ctx context.Context, typeID uuid.UUID, name string) (models.TransmissionType, error) {
	var updated models.TransmissionType
	row := r.db.QueryRowContext(ctx, updateTransmissionType, typeID, name)
	if err := row.Scan(&updated.ID, &updated.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TransmissionType{}, ErrLookupValueNotFound
		}
		return models.TransmissionType{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return updated, nil
}

func (r *transmissionTypeRepository) DeleteTransmissionType(ctx context.Context, typeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, deleteTransmissionType, typeID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrLookupValueNotFound
	}

	return nil
}

// FindByName returns the first transmission type whose name matches.
// The import path uses it to deduplicate, since the table carries no unique
// constraint on name.
func (r *transmissionTypeRepository) FindByName(ctx context.Context, name string) (models.TransmissionType, error) {
	var found models.TransmissionType
	row := r.db.QueryRowContext(ctx, findTransmissionTypeByName, name)
	if err := row.Scan(&found.ID, &found.Name); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TransmissionType{}, ErrLookupValueNotFound
		}
		return models.TransmissionType{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
