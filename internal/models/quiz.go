package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Quiz is stored in the "quizzes" collection. DateCreated is stamped
// server-side at creation and never updated afterwards; the same goes
// for CreatorUsername.
type Quiz struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Title           string             `bson:"title" json:"title"`
	Description     string             `bson:"description" json:"description"`
	CreatorUsername string             `bson:"creator_username" json:"creator_username"`
	IsPublic        bool               `bson:"is_public" json:"is_public"`
	DateCreated     string             `bson:"date_created" json:"date_created"`
}
