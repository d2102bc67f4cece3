package model

import "time"

// BookingLock is an advisory lock document keyed by vehicle. Inserting it
// succeeds for exactly one concurrent submission per vehicle; expires_at
// carries a TTL index so a crashed holder cannot wedge the vehicle.
type BookingLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
