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

// carRepository is the PostgreSQL-backed implementation of [CarRepository].
//
// Ownership scoping happens in SQL: update and delete statements carry
// "AND user_id = $n", so a row belonging to another user is simply not
// matched and surfaces as [ErrCarNotFound].
type carRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCarRepository constructs a [CarRepository] backed by the provided
// database connection and logger.
func NewCarRepository(db *DB, logger *logger.Logger) CarRepository {
	logger.Debug().Msg("creating car repository")
	return &carRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCar persists a new car and returns the stored row.
//
// Error handling:
//   - unique_violation on vin_code → [ErrVINCodeAlreadyExists]
//   - foreign_key_violation (brand/engine/transmission/user) →
//     [ErrReferencedRowNotFound]
func (r *carRepository) CreateCar(ctx context.Context, car models.Car) (models.Car, error) {
	log := logger.FromContext(ctx)

	if car.ID == uuid.Nil {
		car.ID = uuid.New()
	}

	row := r.db.QueryRowContext(ctx, createCar,
		car.ID, car.UserID, car.BrandID, car.Model, car.Year,
		car.EngineVolumeID, car.TransmissionTypeID, car.VINCode)

	var created models.Car
	if err := scanCar(row, &created); err != nil {
		log.Err(err).Str("func", "*carRepository.CreateCar").Msg("error saving car")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Car{}, ErrVINCodeAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Car{}, ErrReferencedRowNotFound
		default:
			return models.Car{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetCar retrieves a car by ID without ownership scoping; the service
// layer compares the row's owner against the requester and refuses
// foreign reads.
func (r *carRepository) GetCar(ctx context.Context, carID uuid.UUID) (models.Car, error) {
	log := logger.FromContext(ctx)

	var found models.Car
	row := r.db.QueryRowContext(ctx, getCar, carID)
	if err := scanCar(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Car{}, ErrCarNotFound
		}
		log.Err(err).Str("func", "*carRepository.GetCar").Msg("error: scanning error")
		return models.Car{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetUserCars returns every car owned by the given user.
// An empty result is a valid empty slice, not an error.
func (r *carRepository) GetUserCars(ctx context.Context, userID uuid.UUID) ([]models.Car, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getUserCars, userID)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.GetUserCars").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	cars := make([]models.Car, 0, 8)
	for rows.Next() {
		var car models.Car
		if err := rows.Scan(
			&car.ID, &car.UserID, &car.BrandID, &car.Model, &car.Year,
			&car.EngineVolumeID, &car.TransmissionTypeID, &car.VINCode,
		); err != nil {
			log.Err(err).Str("func", "*carRepository.GetUserCars").Msg("failed to scan car row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		cars = append(cars, car)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*carRepository.GetUserCars").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cars, nil
}

// UpdateCar applies the non-nil fields of patch to the car owned by userID.
// A row that is missing or owned by another user yields [ErrCarNotFound].
// An empty patch returns the current row unchanged (still ownership-checked).
func (r *carRepository) UpdateCar(ctx context.Context, carID, userID uuid.UUID, patch models.CarUpdate) (models.Car, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateCarQuery(carID, userID, patch)
	if errors.Is(err, errNothingToUpdate) {
		car, getErr := r.GetCar(ctx, carID)
		if getErr != nil {
			return models.Car{}, getErr
		}
		if car.UserID != userID {
			return models.Car{}, ErrCarNotFound
		}
		return car, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*carRepository.UpdateCar").Msg("failed to build update query")
		return models.Car{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Car
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanCar(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Car{}, ErrCarNotFound
		}

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Car{}, ErrVINCodeAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return models.Car{}, ErrReferencedRowNotFound
		default:
			log.Err(err).Str("func", "*carRepository.UpdateCar").Msg("error: scanning error")
			return models.Car{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteCar removes the car owned by userID. Applications referencing the
// car are removed by the schema-level ON DELETE CASCADE.
func (r *carRepository) DeleteCar(ctx context.Context, carID, userID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteCar, carID, userID)
	if err != nil {
		log.Err(err).Str("func", "*carRepository.DeleteCar").Msg("error deleting car")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrCarNotFound
	}

	return nil
}

// scanCar scans one car row into dst.
func scanCar(row *sql.Row, dst *models.Car) error {
	return row.Scan(
		&dst.ID,
		&dst.UserID,
		&dst.BrandID,
		&dst.Model,
		&dst.Year,
		&dst.EngineVolumeID,
		&dst.TransmissionTypeID,
		&dst.VINCode,
	)
}
