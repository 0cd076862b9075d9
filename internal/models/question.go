package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Question belongs to a quiz. QuizID is stored as a native ObjectID so
// the cascade delete on quiz removal filters on the same representation
// that was written. Answers is kept free-form: only its list shape is
// validated, not its elements.
type Question struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	QuizID        primitive.ObjectID `bson:"quiz_id" json:"quiz_id"`
	Question      string             `bson:"question" json:"question"`
	Answers       []interface{}      `bson:"answers" json:"answers"`
	CorrectAnswer string             `bson:"correct_answer" json:"correct_answer"`
	Explanation   string             `bson:"explanation" json:"explanation"`
}
