package service

import (
	"context"
	"time"

	"quizzle-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type QuizService struct {
	Quizzes   QuizStore
	Questions QuestionStore
}

func NewQuizService(quizzes QuizStore, questions QuestionStore) *QuizService {
	return &QuizService{Quizzes: quizzes, Questions: questions}
}

// CreateQuiz stamps date_created with the current UTC time and inserts
// the quiz, filling in the generated id.
func (s *QuizService) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	quiz.DateCreated = time.Now().UTC().Format(time.RFC3339Nano)
	id, err := s.Quizzes.Insert(ctx, quiz)
	if err != nil {
		return err
	}
	quiz.ID = id
	return nil
}

// UpdateQuiz sets the mutable quiz fields. The id, creator and creation
// date never change after insert.
func (s *QuizService) UpdateQuiz(ctx context.Context, id, title, description string, isPublic bool) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	matched, err := s.Quizzes.UpdateFields(ctx, objID, bson.M{
		"title":       title,
		"description": description,
		"is_public":   isPublic,
	})
	if err != nil {
		return err
	}
	if matched == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteQuiz removes the quiz and cascades to its questions. How many
// questions go with it doesn't matter; a quiz can have none.
func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	deleted, err := s.Quizzes.Delete(ctx, objID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}
	_, err = s.Questions.DeleteByQuiz(ctx, objID)
	return err
}

// QuizzesByCreator returns one creator's quizzes split by visibility,
// each list most recently created first.
func (s *QuizService) QuizzesByCreator(ctx context.Context, username string) (public, private []models.Quiz, err error) {
	public, err = s.Quizzes.FindByCreator(ctx, username, true)
	if err != nil {
		return nil, nil, err
	}
	private, err = s.Quizzes.FindByCreator(ctx, username, false)
	if err != nil {
		return nil, nil, err
	}
	return public, private, nil
}

func (s *QuizService) PublicQuizzes(ctx context.Context) ([]models.Quiz, error) {
	return s.Quizzes.FindPublic(ctx)
}
