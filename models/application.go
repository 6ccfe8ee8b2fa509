package models

import "github.com/google/uuid"

// Application is a filed service request tying a user and one of their cars
// to a free-text problem description.
type Application struct {
	ID uuid.UUID `json:"id"`

	// UserID is the user who filed the request. It must match the owning
	// user of the referenced car; the service layer enforces this.
	UserID uuid.UUID `json:"user_id"`

	// CarID references the car the request was filed against.
	CarID uuid.UUID `json:"car_id"`

	// Problem is the free-text description of the reported issue.
	Problem string `json:"problem"`
}

// TableName returns the name of the database table
// associated with the Application model.
func (a Application) TableName() string {
	return "application"
}

// ApplicationUpdate represents a partial update of an application.
// Only non-nil fields overwrite stored state. Vehicle attributes are not
// part of the contract; they are updated through the car surface.
type ApplicationUpdate struct {
	CarID   *uuid.UUID `json:"car_id,omitempty"`
	Problem *string    `json:"problem,omitempty"`
}

// ApplicationDetails is the read projection returned by single-row and list
// queries. It joins the application with its car and the car's brand and
// transmission lookups so that clients can render a request without extra
// round trips.
type ApplicationDetails struct {
	ID      uuid.UUID `json:"id"`
	UserID  uuid.UUID `json:"user_id"`
	Problem string    `json:"problem"`

	Car CarDetails `json:"car"`
}

// CarDetails is the nested car projection inside [ApplicationDetails].
type CarDetails struct {
	ID                   uuid.UUID `json:"id"`
	Model                string    `json:"model"`
	Year                 int       `json:"year"`
	VINCode              string    `json:"vin_code"`
	BrandID              uuid.UUID `json:"brand_id"`
	BrandName            string    `json:"brand_name"`
	TransmissionTypeID   uuid.UUID `json:"transmission_type_id"`
	TransmissionTypeName string    `json:"transmission_type_name"`
}
