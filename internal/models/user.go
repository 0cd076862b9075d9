package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is stored in the "users" collection. Username must be unique,
// enforced by a read-before-write in the service layer. ScoreHistory
// holds free-form score records and is the only mutable field.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Username     string             `bson:"username" json:"username"`
	Email        string             `bson:"email" json:"email"`
	ScoreHistory []interface{}      `bson:"score_history" json:"score_history"`
}
