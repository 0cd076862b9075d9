package repository

import (
	"context"

	"quizzle-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) Insert(ctx context.Context, question *models.Question) (primitive.ObjectID, error) {
	res, err := r.Col.InsertOne(ctx, question)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return res.InsertedID.(primitive.ObjectID), nil
}

func (r *QuestionRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, error) {
	res, err := r.Col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}
	return res.MatchedCount, nil
}

func (r *QuestionRepository) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.Col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *QuestionRepository) FindByQuiz(ctx context.Context, quizID primitive.ObjectID) ([]models.Question, error) {
	return r.find(ctx, bson.M{"quiz_id": quizID})
}

func (r *QuestionRepository) FindAll(ctx context.Context) ([]models.Question, error) {
	return r.find(ctx, bson.M{})
}

// DeleteByQuiz removes every question belonging to a quiz, returning
// how many were deleted. Zero is a valid outcome.
func (r *QuestionRepository) DeleteByQuiz(ctx context.Context, quizID primitive.ObjectID) (int64, error) {
	res, err := r.Col.DeleteMany(ctx, bson.M{"quiz_id": quizID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (r *QuestionRepository) find(ctx context.Context, filter bson.M) ([]models.Question, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: -1}})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	questions := []models.Question{}
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, cur.Err()
}
