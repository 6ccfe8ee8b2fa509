package models

import "github.com/google/uuid"

// Car is a per-user vehicle referencing the three lookup registries.
type Car struct {
	ID uuid.UUID `json:"id"`

	// UserID is the owning user. All car operations are scoped by owner.
	UserID uuid.UUID `json:"user_id"`

	// BrandID references the car_brand lookup table.
	BrandID uuid.UUID `json:"brand_id"`

	Model string `json:"model"`
	Year  int    `json:"year"`

	// EngineVolumeID references the engine_vol lookup table.
	// The column kept its historical name "engine_volume".
	EngineVolumeID uuid.UUID `json:"engine_volume"`

	// TransmissionTypeID references the transmission_types lookup table.
	TransmissionTypeID uuid.UUID `json:"transmission_type_id"`

	// VINCode is the 17-character vehicle identification number, unique per car.
	VINCode string `json:"vin_code"`
}

// TableName returns the name of the database table
// associated with the Car model.
func (c Car) TableName() string {
	return "car"
}

// CarUpdate represents a partial update of a car.
// Only non-nil fields overwrite stored state.
type CarUpdate struct {
	BrandID            *uuid.UUID `json:"brand_id,omitempty"`
	Model              *string    `json:"model,omitempty"`
	Year               *int       `json:"year,omitempty"`
	EngineVolumeID     *uuid.UUID `json:"engine_volume,omitempty"`
	TransmissionTypeID *uuid.UUID `json:"transmission_type_id,omitempty"`
	VINCode            *string    `json:"vin_code,omitempty"`
}
