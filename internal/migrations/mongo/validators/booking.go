package validators

import "go.mongodb.org/mongo-driver/bson"

var BookingValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"id",
			"first_name",
			"last_name",
			"wheels",
			"vehicle_type_id",
			"vehicle_id",
			"start_date",
			"end_date",
			"created_at",
		},

		"properties": bson.M{
			"id": bson.M{
				"bsonType":  "string",
				"minLength": 36,
				"maxLength": 36,
			},
			"first_name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},
			"last_name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
				"maxLength": 100,
			},
			"wheels": bson.M{
				"bsonType": "int",
				"enum":     []int{2, 4},
			},
			"vehicle_type_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},
			"vehicle_id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},
			"start_date": dateString,
			"end_date":   dateString,
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}

var BookingLockValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"_id", "expires_at", "created_at"},

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "string",
			},
			"expires_at": bson.M{
				"bsonType": "date",
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
