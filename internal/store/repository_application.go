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

// applicationRepository is the PostgreSQL-backed implementation of
// [ApplicationRepository].
//
// Read operations return the [models.ApplicationDetails] projection built by
// a single JOIN over car, car_brand, and transmission_types instead of
// loading the relation graph row by row.
type applicationRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewApplicationRepository constructs an [ApplicationRepository] backed by
// the provided database connection and logger.
func NewApplicationRepository(db *DB, logger *logger.Logger) ApplicationRepository {
	logger.Debug().Msg("creating application repository")
	return &applicationRepository{
		db:     db,
		logger: logger,
	}
}

// CreateApplication persists a new service request and returns the stored row.
//
// Error handling:
//   - foreign_key_violation (car or user) → [ErrReferencedRowNotFound]
func (r *applicationRepository) CreateApplication(ctx context.Context, application models.Application) (models.Application, error) {
	log := logger.FromContext(ctx)

	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}

	row := r.db.QueryRowContext(ctx, createApplication,
		application.ID, application.UserID, application.CarID, application.Problem)

	var created models.Application
	if err := scanApplication(row, &created); err != nil {
		log.Err(err).Str("func", "*applicationRepository.CreateApplication").Msg("error saving application")

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Application{}, ErrReferencedRowNotFound
		default:
			return models.Application{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetApplication retrieves the bare application row without relations.
func (r *applicationRepository) GetApplication(ctx context.Context, appID uuid.UUID) (models.Application, error) {
	log := logger.FromContext(ctx)

	var found models.Application
	row := r.db.QueryRowContext(ctx, getApplication, appID)
	if err := scanApplication(row, &found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Application{}, ErrApplicationNotFound
		}
		log.Err(err).Str("func", "*applicationRepository.GetApplication").Msg("error: scanning error")
		return models.Application{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// GetApplicationDetails retrieves one application joined with its car and
// the car's brand and transmission lookups.
func (r *applicationRepository) GetApplicationDetails(ctx context.Context, appID uuid.UUID) (models.ApplicationDetails, error) {
	log := logger.FromContext(ctx)

	var details models.ApplicationDetails
	row := r.db.QueryRowContext(ctx, getApplicationDetails, appID)
	if err := row.Scan(
		&details.ID, &details.UserID, &details.Problem,
		&details.Car.ID, &details.Car.Model, &details.Car.Year, &details.Car.VINCode,
		&details.Car.BrandID, &details.Car.BrandName,
		&details.Car.TransmissionTypeID, &details.Car.TransmissionTypeName,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ApplicationDetails{}, ErrApplicationNotFound
		}
		log.Err(err).Str("func", "*applicationRepository.GetApplicationDetails").Msg("error: scanning error")
		return models.ApplicationDetails{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return details, nil
}

// GetUserApplications returns the detail projection for every application
// filed by the given user. An empty result is a valid empty slice.
func (r *applicationRepository) GetUserApplications(ctx context.Context, userID uuid.UUID) ([]models.ApplicationDetails, error) {
	return r.queryDetails(ctx, getUserApplicationsDetails, userID)
}

// GetAllApplications returns the detail projection for every application,
// unscoped. Used by the operator-facing list.
func (r *applicationRepository) GetAllApplications(ctx context.Context) ([]models.ApplicationDetails, error) {
	return r.queryDetails(ctx, getAllApplicationsDetails)
}

// UpdateApplication applies the non-nil fields of patch and returns the
// resulting row. An empty patch returns the current row unchanged.
func (r *applicationRepository) UpdateApplication(ctx context.Context, appID uuid.UUID, patch models.ApplicationUpdate) (models.Application, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateApplicationQuery(appID, patch)
	if errors.Is(err, errNothingToUpdate) {
		return r.GetApplication(ctx, appID)
	}
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.UpdateApplication").Msg("failed to build update query")
		return models.Application{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.Application
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := scanApplication(row, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Application{}, ErrApplicationNotFound
		}

		switch postgresError(err) {
		case pgerrcode.ForeignKeyViolation:
			return models.Application{}, ErrReferencedRowNotFound
		default:
			log.Err(err).Str("func", "*applicationRepository.UpdateApplication").Msg("error: scanning error")
			return models.Application{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteApplication removes the application row.
func (r *applicationRepository) DeleteApplication(ctx context.Context, appID uuid.UUID) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteApplication, appID)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.DeleteApplication").Msg("error deleting application")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

// queryDetails runs one of the detail-projection list queries and scans all
// rows.
func (r *applicationRepository) queryDetails(ctx context.Context, query string, args ...any) ([]models.ApplicationDetails, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*applicationRepository.queryDetails").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.ApplicationDetails, 0, 16)
	for rows.Next() {
		var details models.ApplicationDetails
		if err := rows.Scan(
			&details.ID, &details.UserID, &details.Problem,
			&details.Car.ID, &details.Car.Model, &details.Car.Year, &details.Car.VINCode,
			&details.Car.BrandID, &details.Car.BrandName,
			&details.Car.TransmissionTypeID, &details.Car.TransmissionTypeName,
		); err != nil {
			log.Err(err).Str("func", "*applicationRepository.queryDetails").Msg("failed to scan application row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		results = append(results, details)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*applicationRepository.queryDetails").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}

// scanApplication scans one application row into dst.
func scanApplication(row *sql.Row, dst *models.Application) error {
	return row.Scan(&dst.ID, &dst.UserID, &dst.CarID, &dst.Problem)
}
