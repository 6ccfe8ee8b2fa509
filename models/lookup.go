package models

import "github.com/google/uuid"

// CarBrand is a lookup registry row for vehicle makes.
// Name is unique and non-null at the schema level.
type CarBrand struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TableName returns the name of the database table
// associated with the CarBrand model.
func (b CarBrand) TableName() string {
	return "car_brand"
}

// EngineVolume is a lookup registry row for engine displacement values.
// Name is a numeric displacement (e.g. 1.6), unique and non-null.
type EngineVolume struct {
	ID   uuid.UUID `json:"id"`
	Name float64   `json:"name"`
}

// TableName returns the name of the database table
// associated with the EngineVolume model.
func (v EngineVolume) TableName() string {
	return "engine_vol"
}

// TransmissionType is a lookup registry row for gearbox types.
type TransmissionType struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TableName returns the name of the database table
// associated with the TransmissionType model.
func (t TransmissionType) TableName() string {
	return "transmission_types"
}

// ImportReport summarises a bulk spreadsheet import into a lookup registry.
// Duplicates are tallied, not treated as failures.
type ImportReport struct {
	// Added is the number of rows created by the import.
	Added int `json:"added"`

	// Existing is the number of spreadsheet values that were already
	// present in the registry (unique-constraint hits).
	Existing int `json:"existing"`
}
