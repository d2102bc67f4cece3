package validators

import "go.mongodb.org/mongo-driver/bson"

var VehicleValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{"id", "model", "type_id", "wheels", "created_at"},

		"properties": bson.M{
			"id": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},
			"model": bson.M{
				"bsonType":  "string",
				"minLength": 1,
			},
			"type_id": bson.M{
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
