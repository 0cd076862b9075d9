package service

import (
	"context"

	"quizzle-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store interfaces over the mongo repositories. Services depend on
// these so tests can run against in-memory implementations.

type QuizStore interface {
	Insert(ctx context.Context, quiz *models.Quiz) (primitive.ObjectID, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Quiz, error)
	FindByCreator(ctx context.Context, username string, isPublic bool) ([]models.Quiz, error)
	FindPublic(ctx context.Context) ([]models.Quiz, error)
}

type QuestionStore interface {
	Insert(ctx context.Context, question *models.Question) (primitive.ObjectID, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	FindByQuiz(ctx context.Context, quizID primitive.ObjectID) ([]models.Question, error)
	FindAll(ctx context.Context) ([]models.Question, error)
	DeleteByQuiz(ctx context.Context, quizID primitive.ObjectID) (int64, error)
}

type UserStore interface {
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}
