package service

import (
	"time"

	"fleetbook/pkg/model"
)

// Reference catalog: three four-wheel types and one two-wheel type, three
// vehicles each. Inserted once per deployment by Seed.
func seedVehicleTypes(now time.Time) []*model.VehicleType {
	return []*model.VehicleType{
		{ID: "hatchback", Name: "Hatchback", Wheels: 4, CreatedAt: now},
		{ID: "suv", Name: "SUV", Wheels: 4, CreatedAt: now},
		{ID: "sedan", Name: "Sedan", Wheels: 4, CreatedAt: now},
		{ID: "cruiser", Name: "Cruiser", Wheels: 2, CreatedAt: now},
	}
}

func seedVehicles(now time.Time) []*model.Vehicle {
	return []*model.Vehicle{
		{ID: "swift", Model: "Maruti Swift", TypeID: "hatchback", Wheels: 4, CreatedAt: now},
		{ID: "i20", Model: "Hyundai i20", TypeID: "hatchback", Wheels: 4, CreatedAt: now},
		{ID: "polo", Model: "Volkswagen Polo", TypeID: "hatchback", Wheels: 4, CreatedAt: now},

		{ID: "creta", Model: "Hyundai Creta", TypeID: "suv", Wheels: 4, CreatedAt: now},
		{ID: "thar", Model: "Mahindra Thar", TypeID: "suv", Wheels: 4, CreatedAt: now},
		{ID: "fortuner", Model: "Toyota Fortuner", TypeID: "suv", Wheels: 4, CreatedAt: now},

		{ID: "city", Model: "Honda City", TypeID: "sedan", Wheels: 4, CreatedAt: now},
		{ID: "verna", Model: "Hyundai Verna", TypeID: "sedan", Wheels: 4, CreatedAt: now},
		{ID: "camry", Model: "Toyota Camry", TypeID: "sedan", Wheels: 4, CreatedAt: now},

		{ID: "bullet", Model: "Royal Enfield Bullet", TypeID: "cruiser", Wheels: 2, CreatedAt: now},
		{ID: "thunderbird", Model: "Royal Enfield Thunderbird", TypeID: "cruiser", Wheels: 2, CreatedAt: now},
		{ID: "harley", Model: "Harley Davidson Street 750", TypeID: "cruiser", Wheels: 2, CreatedAt: now},
	}
}
