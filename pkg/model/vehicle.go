package model

import (
	"time"
)

// VehicleType is a catalog entry. Catalog records are written once by
// seeding and are read-only afterwards.
type VehicleType struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Wheels    int       `json:"wheels" bson:"wheels"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Vehicle is a concrete unit of the fleet. Wheels is a denormalized copy
// of the referenced type's wheel count.
type Vehicle struct {
	ID        string    `json:"id" bson:"id"`
	Model     string    `json:"model" bson:"model"`
	TypeID    string    `json:"type_id" bson:"type_id"`
	Wheels    int       `json:"wheels" bson:"wheels"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
