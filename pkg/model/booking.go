package model

import (
	"time"
)

// Booking is an admitted reservation. Start and end dates are inclusive:
// both days belong to the booked period. Bookings are created by the
// admission engine and never mutated.
type Booking struct {
	ID            string    `json:"id" bson:"id"`
	FirstName     string    `json:"first_name" bson:"first_name"`
	LastName      string    `json:"last_name" bson:"last_name"`
	Wheels        int       `json:"wheels" bson:"wheels"`
	VehicleTypeID string    `json:"vehicle_type_id" bson:"vehicle_type_id"`
	VehicleID     string    `json:"vehicle_id" bson:"vehicle_id"`
	StartDate     Date      `json:"start_date" bson:"start_date"`
	EndDate       Date      `json:"end_date" bson:"end_date"`
	CreatedAt     time.Time `json:"created_at" bson:"created_at"`
}

// BookingRequest is the submission payload. The declared wheels and type
// reference are trusted as-is and not cross-checked against the catalog.
type BookingRequest struct {
	FirstName     string `json:"first_name" validate:"required,min=1,max=100"`
	LastName      string `json:"last_name" validate:"required,min=1,max=100"`
	Wheels        int    `json:"wheels" validate:"required,oneof=2 4"`
	VehicleTypeID string `json:"vehicle_type_id" validate:"required,min=1,max=100"`
	VehicleID     string `json:"vehicle_id" validate:"required,min=1,max=100"`
	StartDate     Date   `json:"start_date" validate:"required"`
	EndDate       Date   `json:"end_date" validate:"required"`
}
