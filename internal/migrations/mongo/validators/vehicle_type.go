package validators

import "go.mongodb.org/mongo-driver/bson"

var dateString = bson.M{
	"bsonType": "string",
	"pattern":  `^\d{4}-\d{2}-\d{2}$`,
}

var VehicleTypeValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"id", "name", "wheels", "created_at"},

		"properties": bson.M{
			"id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},
			"name": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},
			"wheels": bson.M{
				"bsonType": "int",
				"enum":     []int{2, 4},
			},
			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
