// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Tecnoscan

package store

import (
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/tecnoscan/tecnoscan-api/models"
)

const (
	createUser = `INSERT INTO users (id, lastname, firstname, middlename, initials, phone, email, login, password, iv)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    RETURNING id, lastname, firstname, middlename, initials, phone, email, login, password, iv;`

	findUserByLogin = `SELECT id, lastname, firstname, middlename, initials, phone, email, login, password, iv
    FROM users
    WHERE login = $1;`

	findUserByLoginOrEmail = `SELECT id, lastname, firstname, middlename, initials, phone, email, login, password, iv
    FROM users
    WHERE login = $1 OR email = $2;`

	getUser = `SELECT id, lastname, firstname, middlename, initials, phone, email, login, password, iv
    FROM users
    WHERE id = $1;`

	deleteUser = `DELETE FROM users WHERE id = $1;`

	createCar = `INSERT INTO car (id, user_id, brand_id, model, year, engine_volume, transmission_type_id, vin_code)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING id, user_id, brand_id, model, year, engine_volume, transmission_type_id, vin_code;`

	getCar = `SELECT id, user_id, brand_id, model, year, engine_volume, transmission_type_id, vin_code
    FROM car
    WHERE id = $1;`

	getUserCars = `SELECT id, user_id, brand_id, model, year, engine_volume, transmission_type_id, vin_code
    FROM car
    WHERE user_id = $1;`

	deleteCar = `DELETE FROM car WHERE id = $1 AND user_id = $2;`

	createApplication = `INSERT INTO application (id, user_id, car_id, problem)
    VALUES ($1, $2, $3, $4)
    RETURNING id, user_id, car_id, problem;`

	getApplication = `SELECT id, user_id, car_id, problem
    FROM application
    WHERE id = $1;`

	deleteApplication = `DELETE FROM application WHERE id = $1;`

	// applicationDetails joins the application with its car and the car's
	// brand and transmission lookups. One query per read instead of per-row
	// relation loading.
	applicationDetailsBase = `SELECT a.id, a.user_id, a.problem,
        c.id, c.model, c.year, c.vin_code,
        b.id, b.name,
        t.id, t.name
    FROM application a
    JOIN car c ON c.id = a.car_id
    JOIN car_brand b ON b.id = c.brand_id
    JOIN transmission_types t ON t.id = c.transmission_type_id`

	getApplicationDetails      = applicationDetailsBase + ` WHERE a.id = $1;`
	getUserApplicationsDetails = applicationDetailsBase + ` WHERE a.user_id = $1;`
	getAllApplicationsDetails  = applicationDetailsBase + `;`
)

// Lookup registry queries. The three tables share the same two-column shape;
// only engine_vol stores a numeric name.
const (
	createCarBrand  = `INSERT INTO car_brand (id, name) VALUES ($1, $2) RETURNING id, name;`
	getCarBrand     = `SELECT id, name FROM car_brand WHERE id = $1;`
	getAllCarBrands = `SELECT id, name FROM car_brand;`
	updateCarBrand  = `UPDATE car_brand SET name = $2 WHERE id = $1 RETURNING id, name;`
	deleteCarBrand  = `DELETE FROM car_brand WHERE id = $1;`

	createEngineVolume  = `INSERT INTO engine_vol (id, name) VALUES ($1, $2) RETURNING id, name;`
	getEngineVolume     = `SELECT id, name FROM engine_vol WHERE id = $1;`
	getAllEngineVolumes = `SELECT id, name FROM engine_vol;`
	updateEngineVolume  = `UPDATE engine_vol SET name = $2 WHERE id = $1 RETURNING id, name;`
	deleteEngineVolume  = `DELETE FROM engine_vol WHERE id = $1;`

	createTransmissionType     = `INSERT INTO transmission_types (id, name) VALUES ($1, $2) RETURNING id, name;`
	getTransmissionType        = `SELECT id, name FROM transmission_types WHERE id = $1;`
	getAllTransmissionTypes    = `SELECT id, name FROM transmission_types;`
	updateTransmissionType     = `UPDATE transmission_types SET name = $2 WHERE id = $1 RETURNING id, name;`
	deleteTransmissionType     = `DELETE FROM transmission_types WHERE id = $1;`
	findTransmissionTypeByName = `SELECT id, name FROM transmission_types WHERE name = $1;`
)

// errNothingToUpdate signals that a patch carried no fields; callers fall
// back to returning the current row instead of issuing an empty UPDATE.
var errNothingToUpdate = errors.New("no fields to update")

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery builds a partial UPDATE for the users table.
// Only non-nil patch fields become SET clauses.
func buildUpdateUserQuery(userID uuid.UUID, patch models.UserUpdate) (string, []any, error) {
	update := psql.Update("users")

	fields := 0
	if patch.Lastname != nil {
		update = update.Set("lastname", *patch.Lastname)
		fields++
	}
	if patch.Firstname != nil {
		update = update.Set("firstname", *patch.Firstname)
		fields++
	}
	if patch.Middlename != nil {
		update = update.Set("middlename", *patch.Middlename)
		fields++
	}
	if patch.Initials != nil {
		update = update.Set("initials", *patch.Initials)
		fields++
	}
	if patch.Phone != nil {
		update = update.Set("phone", *patch.Phone)
		fields++
	}
	if patch.Email != nil {
		update = update.Set("email", *patch.Email)
		fields++
	}
	if patch.Login != nil {
		update = update.Set("login", *patch.Login)
		fields++
	}

	if fields == 0 {
		return "", nil, errNothingToUpdate
	}

	return update.
		Where(sq.Eq{"id": userID}).
		Suffix("RETURNING id, lastname, firstname, middlename, initials, phone, email, login, password, iv").
		ToSql()
}

// buildUpdateCarQuery builds a partial UPDATE for the car table scoped to
// the owning user. Only non-nil patch fields become SET clauses.
func buildUpdateCarQuery(carID, userID uuid.UUID, patch models.CarUpdate) (string, []any, error) {
	update := psql.Update("car")

	fields := 0
	if patch.BrandID != nil {
		update = update.Set("brand_id", *patch.BrandID)
		fields++
	}
	if patch.Model != nil {
		update = update.Set("model", *patch.Model)
		fields++
	}
	if patch.Year != nil {
		update = update.Set("year", *patch.Year)
		fields++
	}
	if patch.EngineVolumeID != nil {
		update = update.Set("engine_volume", *patch.EngineVolumeID)
		fields++
	}
	if patch.TransmissionTypeID != nil {
		update = update.Set("transmission_type_id", *patch.TransmissionTypeID)
		fields++
	}
	if patch.VINCode != nil {
		update = update.Set("vin_code", *patch.VINCode)
		fields++
	}

	if fields == 0 {
		return "", nil, errNothingToUpdate
	}

	return update.
		Where(sq.Eq{"id": carID, "user_id": userID}).
		Suffix("RETURNING id, user_id, brand_id, model, year, engine_volume, transmission_type_id, vin_code").
		ToSql()
}

// buildUpdateApplicationQuery builds a partial UPDATE for the application
// table. The contract covers car_id and problem only; vehicle attributes are
// updated through the car surface.
func buildUpdateApplicationQuery(appID uuid.UUID, patch models.ApplicationUpdate) (string, []any, error) {
	update := psql.Update("application")

	fields := 0
	if patch.CarID != nil {
		update = update.Set("car_id", *patch.CarID)
		fields++
	}
	if patch.Problem != nil {
		update = update.Set("problem", *patch.Problem)
		fields++
	}

	if fields == 0 {
		return "", nil, errNothingToUpdate
	}

	return update.
		Where(sq.Eq{"id": appID}).
		Suffix("RETURNING id, user_id, car_id, problem").
		ToSql()
}
