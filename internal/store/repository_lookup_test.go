package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/tecnoscan/tecnoscan-api/internal/logger"
)

func newTestLookupRepos(t *testing.T) (*carBrandRepository, *engineVolumeRepository, *transmissionTypeRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	wrapped := &DB{DB: db, logger: l}
	return &carBrandRepository{db: wrapped, logger: l},
		&engineVolumeRepository{db: wrapped, logger: l},
		&transmissionTypeRepository{db: wrapped, logger: l},
		mock, db
}

func TestCreateBrand_Success(t *testing.T) {
	brands, _, _, mock, db := newTestLookupRepos(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(id.String(), "LADA")

	mock.ExpectQuery("INSERT INTO car_brand").
		WillReturnRows(rows)

	created, err := brands.CreateBrand(ctx, "LADA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Name != "LADA" {
		t.Errorf("expected name LADA, got %s", created.Name)
	}
}

func TestCreateBrand_Duplicate(t *testing.T) {
	brands, _, _, mock, db := newTestLookupRepos(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO car_brand").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := brands.CreateBrand(ctx, "LADA")
	if !errors.Is(err, ErrNameAlreadyExists) {
		t.Fatalf("expected ErrNameAlreadyExists, got %v", err)
	}
}

func TestGetBrand_NotFound(t *testing.T) {
	brands, _, _, mock, db := newTestLookupRepos(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM car_brand").
		WillReturnError(sql.ErrNoRows)

	_, err := brands.GetBrand(ctx, uuid.New())
	if !errors.Is(err, ErrLookupValueNotFound) {
		t.Fatalf("expected ErrLookupValueNotFound, got %v", err)
	}
}

func TestDeleteBrand_NotFound(t *testing.T) {
	brands, _, _, mock, db := newTestLookupRepos(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM car_brand").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := brands.DeleteBrand(ctx, uuid.New())
	if !errors.Is(err, ErrLookupValueNotFound) {
		t.Fatalf("expected ErrLookupValueNotFound, got %v", err)
	}
}

func TestCreateEngineVolume_Duplicate(t *testing.T) {
	_, volumes, _, mock, db := newTestLookupRepos(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO engine_vol").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := volumes.CreateEngineVolume(ctx, 1.6)
	if !errors.Is(err, ErrNameAlreadyExists) {
		t.Fatalf("expected ErrNameAlreadyExists, got %v", err)
	}
}

func TestGetAllEngineVolumes_Success(t *testing.T) {
	_, volumes, _, mock, db := newTestLookupRepos(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(uuid.New().String(), 1.6).
		AddRow(uuid.New().String(), 2.0)

	mock.ExpectQuery("SELECT (.+) FROM engine_vol").
		WillReturnRows(rows)

	all, err := volumes.GetAllEngineVolumes(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 volumes, got %d", len(all))
	}
	if all[0].Name != 1.6 {
		t.Errorf("expected first volume 1.6, got %v", all[0].Name)
	}
}

func TestUpdateTransmissionType_NotFound(t *testing.T) {
	_, _, transmissions, mock, db := newTestLookupRepos(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE transmission_types SET").
		WillReturnError(sql.ErrNoRows)

	_, err := transmissions.UpdateTransmissionType(ctx, uuid.New(), "вариатор")
	if !errors.Is(err, ErrLookupValueNotFound) {
		t.Fatalf("expected ErrLookupValueNotFound, got %v", err)
	}
}

func TestFindTransmissionTypeByName(t *testing.T) {
	_, _, transmissions, mock, db := newTestLookupRepos(t)
	defer db.Close()

	ctx := context.Background()
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "name"}).AddRow(id.String(), "автомат")

	mock.ExpectQuery("SELECT (.+) FROM transmission_types").
		WithArgs("автомат").
		WillReturnRows(rows)

	found, err := transmissions.FindByName(ctx, "автомат")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.ID != id {
		t.Errorf("expected ID=%s, got %s", id, found.ID)
	}
}

func TestFindTransmissionTypeByName_NotFound(t *testing.T) {
	_, _, transmissions, mock, db := newTestLookupRepos(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM transmission_types").
		WillReturnError(sql.ErrNoRows)

	_, err := transmissions.FindByName(ctx, "робот")
	if !errors.Is(err, ErrLookupValueNotFound) {
		t.Fatalf("expected ErrLookupValueNotFound, got %v", err)
	}
}
